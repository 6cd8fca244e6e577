// Package store holds the client-side state: a reducer-managed
// snapshot of the four log collections plus connection metadata.
// Mutations commit locally first and sync to the backend best-effort
// through a background worker.
package store

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"endocare/internal/client"
	"endocare/internal/journal"
	"endocare/internal/logging"
	"endocare/internal/transform"
)

// RemoteAPI is the slice of the backend client the store depends on.
// *client.Client satisfies it.
type RemoteAPI interface {
	Ping(ctx context.Context) error
	GetAllSleep(ctx context.Context) ([]client.SleepEntry, error)
	GetAllDiet(ctx context.Context) ([]client.DietEntry, error)
	GetAllMenstrual(ctx context.Context) ([]client.MenstrualEntry, error)
	GetAllSymptoms(ctx context.Context) ([]client.SymptomEntry, error)
	InsertSleep(ctx context.Context, req client.InsertSleepRequest) (client.SleepEntry, error)
	InsertDiet(ctx context.Context, req client.InsertDietRequest) (client.DietEntry, error)
	InsertMenstrual(ctx context.Context, req client.InsertMenstrualRequest) (client.MenstrualEntry, error)
	InsertSymptoms(ctx context.Context, req client.InsertSymptomsRequest) (client.SymptomEntry, error)
}

// Notifier receives the user-facing signals the store emits: blocking
// alerts for failed loads, non-blocking warnings for rejected syncs.
type Notifier interface {
	Alert(title, message string)
	Warn(title, message string)
}

// NopNotifier drops every notification.
type NopNotifier struct{}

func (NopNotifier) Alert(title, message string) {}
func (NopNotifier) Warn(title, message string)  {}

type Config struct {
	API      RemoteAPI
	Notifier Notifier
	Logger   *logging.Logger

	// Now is swapped out by tests for deterministic ids and sync times.
	Now func() time.Time

	// QueueSize bounds the number of pending background syncs.
	QueueSize int
}

// Store owns the State. All reads go through Snapshot, all writes
// through dispatch, so state transitions never interleave mid-update.
type Store struct {
	mu     sync.Mutex
	state  State
	lastID int64

	api      RemoteAPI
	notifier Notifier
	log      *logging.Logger
	now      func() time.Time

	queue     chan syncTask
	wg        sync.WaitGroup
	closeOnce sync.Once
}

type syncTask struct {
	kind string
	send func(ctx context.Context) error
}

func New(cfg Config) *Store {
	if cfg.Notifier == nil {
		cfg.Notifier = NopNotifier{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 16
	}
	store := &Store{
		state:    NewState(),
		api:      cfg.API,
		notifier: cfg.Notifier,
		log:      cfg.Logger,
		now:      cfg.Now,
		queue:    make(chan syncTask, cfg.QueueSize),
	}
	store.wg.Add(1)
	go store.syncWorker()
	return store
}

// Snapshot returns the current state. The contained slices are shared
// with the store and must be treated as read-only; the reducer copies
// before changing them, so the snapshot stays stable.
func (store *Store) Snapshot() State {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.state
}

// Dispatch applies an action to the state.
func (store *Store) Dispatch(action Action) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.state = Reduce(store.state, action)
}

// Close drains the background sync queue and stops the worker. No
// Add* call may follow it.
func (store *Store) Close() {
	store.closeOnce.Do(func() {
		close(store.queue)
	})
	store.wg.Wait()
}

// AddSymptomLog commits the entry locally, then queues a best-effort
// remote sync. The returned entry carries the generated id.
func (store *Store) AddSymptomLog(entry journal.SymptomEntry) journal.SymptomEntry {
	if entry.ID == "" {
		entry.ID = store.nextID()
	}
	store.Dispatch(AddSymptom{Entry: entry})
	request := transform.InsertSymptomsRequest(entry)
	store.enqueue("symptom", func(ctx context.Context) error {
		_, err := store.api.InsertSymptoms(ctx, request)
		return err
	})
	return entry
}

func (store *Store) AddPeriodLog(entry journal.PeriodLog) journal.PeriodLog {
	if entry.ID == "" {
		entry.ID = store.nextID()
	}
	store.Dispatch(AddPeriod{Entry: entry})
	request := transform.InsertMenstrualRequest(entry)
	store.enqueue("period", func(ctx context.Context) error {
		_, err := store.api.InsertMenstrual(ctx, request)
		return err
	})
	return entry
}

func (store *Store) AddFoodLog(entry journal.FoodLog) journal.FoodLog {
	if entry.ID == "" {
		entry.ID = store.nextID()
	}
	store.Dispatch(AddFood{Entry: entry})
	request := transform.InsertDietRequest(entry)
	store.enqueue("food", func(ctx context.Context) error {
		_, err := store.api.InsertDiet(ctx, request)
		return err
	})
	return entry
}

func (store *Store) AddSleepLog(entry journal.SleepLog) journal.SleepLog {
	if entry.ID == "" {
		entry.ID = store.nextID()
	}
	store.Dispatch(AddSleep{Entry: entry})
	request := transform.InsertSleepRequest(entry)
	store.enqueue("sleep", func(ctx context.Context) error {
		_, err := store.api.InsertSleep(ctx, request)
		return err
	})
	return entry
}

// Update and delete stay local-only: they have no server counterpart.

func (store *Store) UpdateSymptomLog(id string, patch SymptomPatch) {
	store.Dispatch(UpdateSymptom{ID: id, Patch: patch})
}

func (store *Store) UpdatePeriodLog(id string, patch PeriodPatch) {
	store.Dispatch(UpdatePeriod{ID: id, Patch: patch})
}

func (store *Store) UpdateFoodLog(id string, patch FoodPatch) {
	store.Dispatch(UpdateFood{ID: id, Patch: patch})
}

func (store *Store) UpdateSleepLog(id string, patch SleepPatch) {
	store.Dispatch(UpdateSleep{ID: id, Patch: patch})
}

func (store *Store) DeleteSymptomLog(id string) { store.Dispatch(DeleteSymptom{ID: id}) }
func (store *Store) DeletePeriodLog(id string)  { store.Dispatch(DeletePeriod{ID: id}) }
func (store *Store) DeleteFoodLog(id string)    { store.Dispatch(DeleteFood{ID: id}) }
func (store *Store) DeleteSleepLog(id string)   { store.Dispatch(DeleteSleep{ID: id}) }

// Load runs the full initial-load sequence: health check, then four
// parallel fetches, then a wholesale state replacement. Any failure
// marks the store offline and surfaces an alert; the local collections
// are left as they were.
func (store *Store) Load(ctx context.Context) error {
	store.Dispatch(SetLoading{Loading: true})
	defer store.Dispatch(SetLoading{Loading: false})

	store.Dispatch(SetConnectionStatus{Status: StatusChecking})
	if err := store.api.Ping(ctx); err != nil {
		store.log.Warn("health check failed", "error", err)
		store.Dispatch(SetConnectionStatus{Status: StatusOffline})
		store.Dispatch(SetLastError{Message: "Backend health check failed"})
		store.notifier.Alert("Server Unavailable",
			"Cannot reach the server. Retry when connection is available.")
		return fmt.Errorf("load: %w", err)
	}

	store.Dispatch(SetConnectionStatus{Status: StatusRetrying})

	var (
		sleep     []client.SleepEntry
		diet      []client.DietEntry
		menstrual []client.MenstrualEntry
		symptoms  []client.SymptomEntry
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		sleep, err = store.api.GetAllSleep(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		diet, err = store.api.GetAllDiet(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		menstrual, err = store.api.GetAllMenstrual(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		symptoms, err = store.api.GetAllSymptoms(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		store.log.Warn("bulk fetch failed", "error", err)
		store.Dispatch(SetConnectionStatus{Status: StatusOffline})
		store.Dispatch(SetLastError{Message: err.Error()})
		store.notifier.Alert("Network Error",
			"Check your internet connection and try again.")
		return fmt.Errorf("load: %w", err)
	}

	store.Dispatch(LoadAPIData{
		Sleep:    transform.SleepLogsFromRemote(sleep),
		Food:     transform.FoodLogsFromRemote(diet),
		Period:   transform.PeriodLogsFromRemote(menstrual),
		Symptoms: transform.SymptomEntriesFromRemote(symptoms),
		SyncedAt: store.now(),
	})
	store.log.Info("data loaded",
		"sleep", len(sleep), "diet", len(diet),
		"menstrual", len(menstrual), "symptoms", len(symptoms))
	return nil
}

// Sync re-runs the full load sequence. The manual retry entry point.
func (store *Store) Sync(ctx context.Context) error {
	return store.Load(ctx)
}

// enqueue hands a remote write to the worker without blocking the
// caller. Syncs are best effort: when the queue is full (the worker is
// stuck on an unreachable server) the write is dropped and logged, and
// the entry stays local until the next full Sync.
func (store *Store) enqueue(kind string, send func(ctx context.Context) error) {
	select {
	case store.queue <- syncTask{kind: kind, send: send}:
	default:
		store.log.Warn("sync queue full, entry kept local only", "kind", kind)
	}
}

// syncWorker drains the queue of best-effort remote writes. A server
// rejection warns the user; an unreachable server only marks the store
// offline, since the entry is already safe locally.
func (store *Store) syncWorker() {
	defer store.wg.Done()
	for task := range store.queue {
		err := task.send(context.Background())
		switch {
		case err == nil:
			store.log.Debug("entry synced", "kind", task.kind)
		case client.IsNetworkFailure(err):
			store.log.Warn("sync skipped, server unreachable",
				"kind", task.kind, "error", err)
			store.Dispatch(SetConnectionStatus{Status: StatusOffline})
			store.Dispatch(SetLastError{Message: err.Error()})
		default:
			store.log.Warn("sync rejected by server",
				"kind", task.kind, "error", err)
			store.notifier.Warn("Sync Warning",
				"Data saved locally but server sync failed.")
		}
	}
}

// nextID mints a millisecond-timestamp id, bumped when two mints land
// in the same millisecond.
func (store *Store) nextID() string {
	store.mu.Lock()
	defer store.mu.Unlock()
	id := store.now().UnixMilli()
	if id <= store.lastID {
		id = store.lastID + 1
	}
	store.lastID = id
	return strconv.FormatInt(id, 10)
}
