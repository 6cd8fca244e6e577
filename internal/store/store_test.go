package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"endocare/internal/client"
	"endocare/internal/journal"
)

type stubAPI struct {
	mu sync.Mutex

	pingErr   error
	fetchErr  error
	insertErr error

	sleep     []client.SleepEntry
	diet      []client.DietEntry
	menstrual []client.MenstrualEntry
	symptoms  []client.SymptomEntry

	fetchCalls     int
	sleepInserts   []client.InsertSleepRequest
	dietInserts    []client.InsertDietRequest
	periodInserts  []client.InsertMenstrualRequest
	symptomInserts []client.InsertSymptomsRequest
}

func (stub *stubAPI) Ping(ctx context.Context) error {
	return stub.pingErr
}

func (stub *stubAPI) countFetch() error {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	stub.fetchCalls++
	return stub.fetchErr
}

func (stub *stubAPI) GetAllSleep(ctx context.Context) ([]client.SleepEntry, error) {
	if err := stub.countFetch(); err != nil {
		return nil, err
	}
	return stub.sleep, nil
}

func (stub *stubAPI) GetAllDiet(ctx context.Context) ([]client.DietEntry, error) {
	if err := stub.countFetch(); err != nil {
		return nil, err
	}
	return stub.diet, nil
}

func (stub *stubAPI) GetAllMenstrual(ctx context.Context) ([]client.MenstrualEntry, error) {
	if err := stub.countFetch(); err != nil {
		return nil, err
	}
	return stub.menstrual, nil
}

func (stub *stubAPI) GetAllSymptoms(ctx context.Context) ([]client.SymptomEntry, error) {
	if err := stub.countFetch(); err != nil {
		return nil, err
	}
	return stub.symptoms, nil
}

func (stub *stubAPI) InsertSleep(ctx context.Context, req client.InsertSleepRequest) (client.SleepEntry, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	stub.sleepInserts = append(stub.sleepInserts, req)
	return client.SleepEntry{}, stub.insertErr
}

func (stub *stubAPI) InsertDiet(ctx context.Context, req client.InsertDietRequest) (client.DietEntry, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	stub.dietInserts = append(stub.dietInserts, req)
	return client.DietEntry{}, stub.insertErr
}

func (stub *stubAPI) InsertMenstrual(ctx context.Context, req client.InsertMenstrualRequest) (client.MenstrualEntry, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	stub.periodInserts = append(stub.periodInserts, req)
	return client.MenstrualEntry{}, stub.insertErr
}

func (stub *stubAPI) InsertSymptoms(ctx context.Context, req client.InsertSymptomsRequest) (client.SymptomEntry, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	stub.symptomInserts = append(stub.symptomInserts, req)
	return client.SymptomEntry{}, stub.insertErr
}

type recordingNotifier struct {
	mu     sync.Mutex
	alerts []string
	warns  []string
}

func (notifier *recordingNotifier) Alert(title, message string) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.alerts = append(notifier.alerts, title)
}

func (notifier *recordingNotifier) Warn(title, message string) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.warns = append(notifier.warns, title)
}

func newTestStore(api *stubAPI, notifier Notifier) *Store {
	return New(Config{
		API:      api,
		Notifier: notifier,
		Now: func() time.Time {
			return time.Date(2025, 8, 11, 10, 0, 0, 0, time.UTC)
		},
	})
}

func TestAddCommitsLocallyWhenNetworkDown(t *testing.T) {
	api := &stubAPI{insertErr: &client.APIError{Endpoint: "/insert_symptoms", Status: 0, Retryable: true}}
	notifier := &recordingNotifier{}
	store := newTestStore(api, notifier)

	entry := store.AddSymptomLog(journal.SymptomEntry{Date: "2025-08-11", Nausea: 7, Fatigue: 8, Pain: 6})
	if entry.ID == "" {
		t.Fatal("no id generated")
	}

	state := store.Snapshot()
	if len(state.SymptomLogs) != 1 || state.SymptomLogs[0].ID != entry.ID {
		t.Fatalf("entry not committed locally: %+v", state.SymptomLogs)
	}

	store.Close() // drain the sync queue

	state = store.Snapshot()
	if state.ConnectionStatus != StatusOffline {
		t.Errorf("status = %s, want offline", state.ConnectionStatus)
	}
	if state.LastError == "" {
		t.Error("lastError not recorded")
	}
	if len(state.SymptomLogs) != 1 {
		t.Errorf("local entry lost after failed sync")
	}
	// Unreachable servers stay quiet; the entry is safe locally.
	if len(notifier.warns) != 0 || len(notifier.alerts) != 0 {
		t.Errorf("unexpected notifications: %v / %v", notifier.alerts, notifier.warns)
	}
}

func TestAddWarnsWhenServerRejects(t *testing.T) {
	api := &stubAPI{insertErr: &client.APIError{Endpoint: "/insert_sleep", Status: 422, Retryable: false}}
	notifier := &recordingNotifier{}
	store := newTestStore(api, notifier)

	store.AddSleepLog(journal.SleepLog{Date: "2025-08-11", HoursSlept: 7, SleepQuality: 8})
	store.Close()

	if len(notifier.warns) != 1 || notifier.warns[0] != "Sync Warning" {
		t.Fatalf("warns = %v, want one Sync Warning", notifier.warns)
	}
	state := store.Snapshot()
	if len(state.SleepLogs) != 1 {
		t.Errorf("local entry lost after rejection")
	}
}

func TestAddSendsTranslatedPayload(t *testing.T) {
	api := &stubAPI{}
	store := newTestStore(api, nil)

	store.AddFoodLog(journal.FoodLog{Date: "2025-08-11", MealType: "dinner", FoodItems: "pasta, basil", FlareUpScore: 3})
	store.AddPeriodLog(journal.PeriodLog{Date: "2025-08-11", Type: "start", FlowLevel: journal.FlowLevelModerate})
	store.Close()

	if len(api.dietInserts) != 1 {
		t.Fatalf("diet inserts = %d, want 1", len(api.dietInserts))
	}
	diet := api.dietInserts[0]
	if diet.Date != "2025-08-11T08:00:00Z" {
		t.Errorf("diet date = %q", diet.Date)
	}
	if len(diet.Items) != 2 || diet.Items[0] != "pasta" || diet.Items[1] != "basil" {
		t.Errorf("items = %v", diet.Items)
	}

	if len(api.periodInserts) != 1 {
		t.Fatalf("period inserts = %d, want 1", len(api.periodInserts))
	}
	period := api.periodInserts[0]
	if period.FlowLevel != "moderate" || period.PeriodEvent != "start" {
		t.Errorf("period payload = %+v", period)
	}
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	store := newTestStore(&stubAPI{}, nil)
	defer store.Close()

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		entry := store.AddSymptomLog(journal.SymptomEntry{Date: "2025-08-11", Nausea: 1, Fatigue: 1, Pain: 1})
		if seen[entry.ID] {
			t.Fatalf("duplicate id %q with a frozen clock", entry.ID)
		}
		seen[entry.ID] = true
	}
}

func TestLoadAbortsWhenHealthCheckFails(t *testing.T) {
	api := &stubAPI{pingErr: errors.New("connection refused")}
	notifier := &recordingNotifier{}
	store := newTestStore(api, notifier)
	defer store.Close()

	err := store.Load(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	if api.fetchCalls != 0 {
		t.Fatalf("data fetches issued after failed health check: %d", api.fetchCalls)
	}
	state := store.Snapshot()
	if state.ConnectionStatus != StatusOffline {
		t.Errorf("status = %s, want offline", state.ConnectionStatus)
	}
	if state.LastError != "Backend health check failed" {
		t.Errorf("lastError = %q", state.LastError)
	}
	if state.IsLoading {
		t.Error("IsLoading left set")
	}
	if len(notifier.alerts) != 1 || notifier.alerts[0] != "Server Unavailable" {
		t.Errorf("alerts = %v", notifier.alerts)
	}
}

func TestLoadReplacesStateOnSuccess(t *testing.T) {
	api := &stubAPI{
		sleep:     []client.SleepEntry{{ID: 1, Date: "2025-08-11T07:30:00Z", Duration: 7.5, Quality: 70}},
		diet:      []client.DietEntry{{ID: 2, Meal: "lunch", Date: "2025-08-11T08:00:00Z", Items: []string{"rice", "fish"}}},
		menstrual: []client.MenstrualEntry{{ID: 3, PeriodEvent: "start", Date: "2025-08-11T00:00:00Z", FlowLevel: "light"}},
		symptoms:  []client.SymptomEntry{{ID: 4, Date: "2025-08-11T12:00:00Z", Nausea: 6, Fatigue: 7, Pain: 5}},
	}
	store := newTestStore(api, &recordingNotifier{})
	defer store.Close()

	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state := store.Snapshot()
	if state.ConnectionStatus != StatusOnline {
		t.Errorf("status = %s, want online", state.ConnectionStatus)
	}
	if state.IsLoading {
		t.Error("IsLoading left set")
	}
	if state.LastSyncTime.IsZero() {
		t.Error("lastSyncTime not set")
	}

	if got := state.SleepLogs[0]; got.Date != "2025-08-11" || got.SleepQuality != 7 {
		t.Errorf("sleep not transformed: %+v", got)
	}
	if got := state.FoodLogs[0]; got.FoodItems != "rice, fish" {
		t.Errorf("food not transformed: %+v", got)
	}
	if got := state.PeriodLogs[0]; got.FlowLevel != journal.FlowLevelLight {
		t.Errorf("period not transformed: %+v", got)
	}
	if got := state.SymptomLogs[0]; got.Nausea != 7 {
		t.Errorf("symptoms not transformed: %+v", got)
	}
}

func TestLoadFailsWhenAnyFetchFails(t *testing.T) {
	api := &stubAPI{fetchErr: &client.APIError{Endpoint: "/get_all_diet", Status: 500, Retryable: true}}
	notifier := &recordingNotifier{}
	store := newTestStore(api, notifier)
	defer store.Close()

	store.AddSleepLog(journal.SleepLog{Date: "2025-08-10", HoursSlept: 6, SleepQuality: 4})

	err := store.Load(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	state := store.Snapshot()
	if state.ConnectionStatus != StatusOffline {
		t.Errorf("status = %s, want offline", state.ConnectionStatus)
	}
	if state.LastError == "" {
		t.Error("lastError not recorded")
	}
	// Local collections survive a failed bulk load.
	if len(state.SleepLogs) != 1 {
		t.Errorf("local entries dropped on failed load: %+v", state.SleepLogs)
	}
	if len(notifier.alerts) != 1 || notifier.alerts[0] != "Network Error" {
		t.Errorf("alerts = %v", notifier.alerts)
	}
}

func TestSyncIsFullReload(t *testing.T) {
	api := &stubAPI{}
	store := newTestStore(api, nil)
	defer store.Close()

	if err := store.Sync(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.fetchCalls != 4 {
		t.Fatalf("fetchCalls = %d, want 4", api.fetchCalls)
	}
}

// gatedAPI holds the sync worker inside InsertSleep until gate closes,
// signalling on started once the worker is stuck.
type gatedAPI struct {
	*stubAPI
	started chan struct{}
	gate    chan struct{}
}

func (stub *gatedAPI) InsertSleep(ctx context.Context, req client.InsertSleepRequest) (client.SleepEntry, error) {
	select {
	case stub.started <- struct{}{}:
	default:
	}
	<-stub.gate
	return stub.stubAPI.InsertSleep(ctx, req)
}

func TestAddDoesNotBlockWhenSyncQueueIsFull(t *testing.T) {
	api := &gatedAPI{
		stubAPI: &stubAPI{},
		started: make(chan struct{}, 1),
		gate:    make(chan struct{}),
	}
	store := New(Config{
		API:       api,
		Notifier:  NopNotifier{},
		QueueSize: 1,
		Now: func() time.Time {
			return time.Date(2025, 8, 11, 10, 0, 0, 0, time.UTC)
		},
	})

	store.AddSleepLog(journal.SleepLog{Date: "2025-08-11", HoursSlept: 7, SleepQuality: 8})
	<-api.started // worker is now held mid-insert

	store.AddSleepLog(journal.SleepLog{Date: "2025-08-12", HoursSlept: 6, SleepQuality: 7}) // fills the queue
	store.AddSleepLog(journal.SleepLog{Date: "2025-08-13", HoursSlept: 5, SleepQuality: 6}) // dropped, must return

	if got := len(store.Snapshot().SleepLogs); got != 3 {
		t.Fatalf("local commits = %d, want 3", got)
	}

	close(api.gate)
	store.Close()

	api.mu.Lock()
	defer api.mu.Unlock()
	if len(api.sleepInserts) != 2 {
		t.Fatalf("remote inserts = %d, want 2 with the overflow dropped", len(api.sleepInserts))
	}
}
