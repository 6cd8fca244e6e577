package store

import (
	"time"

	"endocare/internal/journal"
)

// ConnectionStatus tracks where the store thinks the backend is.
type ConnectionStatus string

const (
	StatusOnline   ConnectionStatus = "online"
	StatusOffline  ConnectionStatus = "offline"
	StatusChecking ConnectionStatus = "checking"
	StatusRetrying ConnectionStatus = "retrying"
)

// State is the full client-side picture: the four log collections plus
// sync metadata. Collections are append-ordered by call order, not by
// date.
type State struct {
	SymptomLogs []journal.SymptomEntry
	PeriodLogs  []journal.PeriodLog
	FoodLogs    []journal.FoodLog
	SleepLogs   []journal.SleepLog

	IsLoading        bool
	ConnectionStatus ConnectionStatus
	LastSyncTime     time.Time
	LastError        string
}

// NewState returns the pre-load starting state.
func NewState() State {
	return State{ConnectionStatus: StatusChecking}
}

// Action is one reducer input. The set of implementations is closed.
type Action interface {
	isAction()
}

type AddSymptom struct{ Entry journal.SymptomEntry }
type AddPeriod struct{ Entry journal.PeriodLog }
type AddFood struct{ Entry journal.FoodLog }
type AddSleep struct{ Entry journal.SleepLog }

// Patch types carry partial updates: nil fields are left untouched.

type SymptomPatch struct {
	Date    *string
	Nausea  *int
	Fatigue *int
	Pain    *int
	Notes   *string
}

type PeriodPatch struct {
	Date               *string
	Type               *string
	FlowLevel          *int
	AssociatedSymptoms *journal.Symptoms
	Notes              *string
}

type FoodPatch struct {
	Date            *string
	MealType        *string
	FoodItems       *string
	FlareUpScore    *int
	SymptomsAfter   *journal.Symptoms
	TimeAfterEating *string
	Notes           *string
}

type SleepPatch struct {
	Date             *string
	HoursSlept       *float64
	SleepQuality     *int
	MorningSymptoms  *journal.Symptoms
	SleepDisruptions *string
	Notes            *string
}

type UpdateSymptom struct {
	ID    string
	Patch SymptomPatch
}

type UpdatePeriod struct {
	ID    string
	Patch PeriodPatch
}

type UpdateFood struct {
	ID    string
	Patch FoodPatch
}

type UpdateSleep struct {
	ID    string
	Patch SleepPatch
}

type DeleteSymptom struct{ ID string }
type DeletePeriod struct{ ID string }
type DeleteFood struct{ ID string }
type DeleteSleep struct{ ID string }

type SetLoading struct{ Loading bool }

type SetConnectionStatus struct{ Status ConnectionStatus }

type SetLastSync struct{ Time time.Time }

// SetLastError records an error message; an empty message clears it.
type SetLastError struct{ Message string }

// LoadAPIData replaces all four collections wholesale with freshly
// fetched server data. It is the only action that can drop entries
// added locally but never recorded by the server.
type LoadAPIData struct {
	Sleep    []journal.SleepLog
	Food     []journal.FoodLog
	Period   []journal.PeriodLog
	Symptoms []journal.SymptomEntry
	SyncedAt time.Time
}

func (AddSymptom) isAction()          {}
func (AddPeriod) isAction()           {}
func (AddFood) isAction()             {}
func (AddSleep) isAction()            {}
func (UpdateSymptom) isAction()       {}
func (UpdatePeriod) isAction()        {}
func (UpdateFood) isAction()          {}
func (UpdateSleep) isAction()         {}
func (DeleteSymptom) isAction()       {}
func (DeletePeriod) isAction()        {}
func (DeleteFood) isAction()          {}
func (DeleteSleep) isAction()         {}
func (SetLoading) isAction()          {}
func (SetConnectionStatus) isAction() {}
func (SetLastSync) isAction()         {}
func (SetLastError) isAction()        {}
func (LoadAPIData) isAction()         {}

// Reduce applies one action to a state and returns the next state.
// It never mutates its input: collections are copied before changing,
// so an old State value stays valid after any number of dispatches.
func Reduce(state State, action Action) State {
	switch action := action.(type) {
	case AddSymptom:
		state.SymptomLogs = appendEntry(state.SymptomLogs, action.Entry)
	case AddPeriod:
		state.PeriodLogs = appendEntry(state.PeriodLogs, action.Entry)
	case AddFood:
		state.FoodLogs = appendEntry(state.FoodLogs, action.Entry)
	case AddSleep:
		state.SleepLogs = appendEntry(state.SleepLogs, action.Entry)

	case UpdateSymptom:
		state.SymptomLogs = updateEntry(state.SymptomLogs,
			func(entry journal.SymptomEntry) string { return entry.ID },
			action.ID,
			func(entry journal.SymptomEntry) journal.SymptomEntry {
				return applySymptomPatch(entry, action.Patch)
			})
	case UpdatePeriod:
		state.PeriodLogs = updateEntry(state.PeriodLogs,
			func(entry journal.PeriodLog) string { return entry.ID },
			action.ID,
			func(entry journal.PeriodLog) journal.PeriodLog {
				return applyPeriodPatch(entry, action.Patch)
			})
	case UpdateFood:
		state.FoodLogs = updateEntry(state.FoodLogs,
			func(entry journal.FoodLog) string { return entry.ID },
			action.ID,
			func(entry journal.FoodLog) journal.FoodLog {
				return applyFoodPatch(entry, action.Patch)
			})
	case UpdateSleep:
		state.SleepLogs = updateEntry(state.SleepLogs,
			func(entry journal.SleepLog) string { return entry.ID },
			action.ID,
			func(entry journal.SleepLog) journal.SleepLog {
				return applySleepPatch(entry, action.Patch)
			})

	case DeleteSymptom:
		state.SymptomLogs = deleteEntry(state.SymptomLogs,
			func(entry journal.SymptomEntry) string { return entry.ID }, action.ID)
	case DeletePeriod:
		state.PeriodLogs = deleteEntry(state.PeriodLogs,
			func(entry journal.PeriodLog) string { return entry.ID }, action.ID)
	case DeleteFood:
		state.FoodLogs = deleteEntry(state.FoodLogs,
			func(entry journal.FoodLog) string { return entry.ID }, action.ID)
	case DeleteSleep:
		state.SleepLogs = deleteEntry(state.SleepLogs,
			func(entry journal.SleepLog) string { return entry.ID }, action.ID)

	case SetLoading:
		state.IsLoading = action.Loading
	case SetConnectionStatus:
		state.ConnectionStatus = action.Status
		if action.Status == StatusOnline {
			state.LastError = ""
		}
	case SetLastSync:
		state.LastSyncTime = action.Time
	case SetLastError:
		state.LastError = action.Message

	case LoadAPIData:
		state.SleepLogs = action.Sleep
		state.FoodLogs = action.Food
		state.PeriodLogs = action.Period
		state.SymptomLogs = action.Symptoms
		state.LastSyncTime = action.SyncedAt
		state.ConnectionStatus = StatusOnline
		state.LastError = ""
	}
	return state
}

func appendEntry[T any](entries []T, entry T) []T {
	out := make([]T, len(entries), len(entries)+1)
	copy(out, entries)
	return append(out, entry)
}

// updateEntry replaces the entry matching id; missing ids are a no-op
// and return the slice unchanged.
func updateEntry[T any](entries []T, idOf func(T) string, id string, apply func(T) T) []T {
	for i, entry := range entries {
		if idOf(entry) != id {
			continue
		}
		out := make([]T, len(entries))
		copy(out, entries)
		out[i] = apply(entry)
		return out
	}
	return entries
}

func deleteEntry[T any](entries []T, idOf func(T) string, id string) []T {
	for i, entry := range entries {
		if idOf(entry) != id {
			continue
		}
		out := make([]T, 0, len(entries)-1)
		out = append(out, entries[:i]...)
		return append(out, entries[i+1:]...)
	}
	return entries
}

func applySymptomPatch(entry journal.SymptomEntry, patch SymptomPatch) journal.SymptomEntry {
	setString(&entry.Date, patch.Date)
	setInt(&entry.Nausea, patch.Nausea)
	setInt(&entry.Fatigue, patch.Fatigue)
	setInt(&entry.Pain, patch.Pain)
	setString(&entry.Notes, patch.Notes)
	return entry
}

func applyPeriodPatch(entry journal.PeriodLog, patch PeriodPatch) journal.PeriodLog {
	setString(&entry.Date, patch.Date)
	setString(&entry.Type, patch.Type)
	setInt(&entry.FlowLevel, patch.FlowLevel)
	if patch.AssociatedSymptoms != nil {
		symptoms := *patch.AssociatedSymptoms
		entry.AssociatedSymptoms = &symptoms
	}
	setString(&entry.Notes, patch.Notes)
	return entry
}

func applyFoodPatch(entry journal.FoodLog, patch FoodPatch) journal.FoodLog {
	setString(&entry.Date, patch.Date)
	setString(&entry.MealType, patch.MealType)
	setString(&entry.FoodItems, patch.FoodItems)
	setInt(&entry.FlareUpScore, patch.FlareUpScore)
	if patch.SymptomsAfter != nil {
		symptoms := *patch.SymptomsAfter
		entry.SymptomsAfter = &symptoms
	}
	setString(&entry.TimeAfterEating, patch.TimeAfterEating)
	setString(&entry.Notes, patch.Notes)
	return entry
}

func applySleepPatch(entry journal.SleepLog, patch SleepPatch) journal.SleepLog {
	setString(&entry.Date, patch.Date)
	if patch.HoursSlept != nil {
		entry.HoursSlept = *patch.HoursSlept
	}
	setInt(&entry.SleepQuality, patch.SleepQuality)
	if patch.MorningSymptoms != nil {
		symptoms := *patch.MorningSymptoms
		entry.MorningSymptoms = &symptoms
	}
	setString(&entry.SleepDisruptions, patch.SleepDisruptions)
	setString(&entry.Notes, patch.Notes)
	return entry
}

func setString(target *string, value *string) {
	if value != nil {
		*target = *value
	}
}

func setInt(target *int, value *int) {
	if value != nil {
		*target = *value
	}
}
