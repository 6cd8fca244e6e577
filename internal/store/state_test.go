package store

import (
	"testing"
	"time"

	"endocare/internal/journal"
)

func TestReduceAddAppends(t *testing.T) {
	state := NewState()
	state = Reduce(state, AddSymptom{Entry: journal.SymptomEntry{ID: "1", Date: "2025-08-11"}})
	state = Reduce(state, AddSymptom{Entry: journal.SymptomEntry{ID: "2", Date: "2025-08-01"}})

	if len(state.SymptomLogs) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(state.SymptomLogs))
	}
	// Append order, not date order.
	if state.SymptomLogs[0].ID != "1" || state.SymptomLogs[1].ID != "2" {
		t.Errorf("order broken: %+v", state.SymptomLogs)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := NewState()
	before = Reduce(before, AddSleep{Entry: journal.SleepLog{ID: "1", HoursSlept: 7}})

	after := Reduce(before, AddSleep{Entry: journal.SleepLog{ID: "2", HoursSlept: 5}})
	after = Reduce(after, UpdateSleep{ID: "1", Patch: SleepPatch{HoursSlept: float64Ptr(9)}})
	after = Reduce(after, DeleteSleep{ID: "2"})

	if len(before.SleepLogs) != 1 {
		t.Fatalf("old snapshot grew: %d entries", len(before.SleepLogs))
	}
	if before.SleepLogs[0].HoursSlept != 7 {
		t.Errorf("old snapshot mutated: %+v", before.SleepLogs[0])
	}
	if after.SleepLogs[0].HoursSlept != 9 {
		t.Errorf("update lost: %+v", after.SleepLogs[0])
	}
}

func TestReduceUpdateMergesPatch(t *testing.T) {
	state := NewState()
	state = Reduce(state, AddFood{Entry: journal.FoodLog{
		ID: "1", Date: "2025-08-11", MealType: "lunch", FoodItems: "rice", FlareUpScore: 2, Notes: "fine",
	}})
	state = Reduce(state, UpdateFood{ID: "1", Patch: FoodPatch{
		FlareUpScore: intPtr(8),
		Notes:        stringPtr("bad flare an hour later"),
	}})

	got := state.FoodLogs[0]
	if got.FlareUpScore != 8 || got.Notes != "bad flare an hour later" {
		t.Errorf("patched fields wrong: %+v", got)
	}
	if got.MealType != "lunch" || got.FoodItems != "rice" {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestReduceUpdateUnknownIDIsNoop(t *testing.T) {
	state := NewState()
	state = Reduce(state, AddPeriod{Entry: journal.PeriodLog{ID: "1", Type: "start"}})
	next := Reduce(state, UpdatePeriod{ID: "missing", Patch: PeriodPatch{Type: stringPtr("end")}})

	if next.PeriodLogs[0].Type != "start" {
		t.Errorf("no-op update changed data: %+v", next.PeriodLogs[0])
	}
}

func TestReduceDelete(t *testing.T) {
	state := NewState()
	state = Reduce(state, AddSymptom{Entry: journal.SymptomEntry{ID: "1"}})
	state = Reduce(state, AddSymptom{Entry: journal.SymptomEntry{ID: "2"}})
	state = Reduce(state, DeleteSymptom{ID: "1"})

	if len(state.SymptomLogs) != 1 || state.SymptomLogs[0].ID != "2" {
		t.Fatalf("delete wrong: %+v", state.SymptomLogs)
	}

	next := Reduce(state, DeleteSymptom{ID: "missing"})
	if len(next.SymptomLogs) != 1 {
		t.Errorf("delete of unknown id changed state")
	}
}

func TestReduceConnectionStatusClearsErrorOnlyWhenOnline(t *testing.T) {
	state := NewState()
	state = Reduce(state, SetLastError{Message: "timeout"})

	state = Reduce(state, SetConnectionStatus{Status: StatusRetrying})
	if state.LastError != "timeout" {
		t.Errorf("retrying cleared lastError")
	}
	state = Reduce(state, SetConnectionStatus{Status: StatusOffline})
	if state.LastError != "timeout" {
		t.Errorf("offline cleared lastError")
	}
	state = Reduce(state, SetConnectionStatus{Status: StatusOnline})
	if state.LastError != "" {
		t.Errorf("online kept lastError %q", state.LastError)
	}
}

func TestReduceLoadAPIDataReplacesEverything(t *testing.T) {
	state := NewState()
	state = Reduce(state, AddSleep{Entry: journal.SleepLog{ID: "local-1"}})
	state = Reduce(state, SetLastError{Message: "old error"})

	syncedAt := time.Date(2025, 8, 11, 10, 0, 0, 0, time.UTC)
	state = Reduce(state, LoadAPIData{
		Sleep:    []journal.SleepLog{{ID: "s1"}},
		Food:     []journal.FoodLog{{ID: "f1"}},
		Period:   []journal.PeriodLog{{ID: "p1"}},
		Symptoms: []journal.SymptomEntry{{ID: "y1"}},
		SyncedAt: syncedAt,
	})

	if len(state.SleepLogs) != 1 || state.SleepLogs[0].ID != "s1" {
		t.Errorf("local-only entry survived bulk load: %+v", state.SleepLogs)
	}
	if state.ConnectionStatus != StatusOnline {
		t.Errorf("status = %s, want online", state.ConnectionStatus)
	}
	if state.LastError != "" {
		t.Errorf("lastError not cleared: %q", state.LastError)
	}
	if !state.LastSyncTime.Equal(syncedAt) {
		t.Errorf("lastSyncTime = %v", state.LastSyncTime)
	}
}

func TestReduceSetLoading(t *testing.T) {
	state := Reduce(NewState(), SetLoading{Loading: true})
	if !state.IsLoading {
		t.Fatal("IsLoading not set")
	}
	state = Reduce(state, SetLoading{Loading: false})
	if state.IsLoading {
		t.Fatal("IsLoading not cleared")
	}
}

func intPtr(v int) *int             { return &v }
func stringPtr(v string) *string    { return &v }
func float64Ptr(v float64) *float64 { return &v }
