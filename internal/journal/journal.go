// Package journal defines the local record shapes the client state
// store manages. They are the device-side view of the data: string IDs
// minted locally, calendar dates without a time of day, and optional
// symptom snapshots attached to sleep and food entries.
package journal

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

const (
	PeriodStart = "start"
	PeriodEnd   = "end"
)

// Flow levels as the client stores them. The remote side speaks
// light/moderate/heavy strings instead.
const (
	FlowLevelLight    = 1
	FlowLevelModerate = 3
	FlowLevelHeavy    = 5
)

// Symptoms is a point-in-time severity snapshot, each on a 1-10 scale.
type Symptoms struct {
	Nausea  int `json:"nausea"`
	Fatigue int `json:"fatigue"`
	Pain    int `json:"pain"`
}

// SymptomEntry is a standalone daily symptom check-in.
type SymptomEntry struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Nausea  int    `json:"nausea"`
	Fatigue int    `json:"fatigue"`
	Pain    int    `json:"pain"`
	Notes   string `json:"notes,omitempty"`
}

// PeriodLog marks a menstrual event, either the start or end of a
// period, with an optional flow level.
type PeriodLog struct {
	ID                 string    `json:"id"`
	Date               string    `json:"date"`
	Type               string    `json:"type"`
	FlowLevel          int       `json:"flowLevel,omitempty"`
	AssociatedSymptoms *Symptoms `json:"associatedSymptoms,omitempty"`
	Notes              string    `json:"notes,omitempty"`
}

// FoodLog records a meal and how the body reacted to it.
type FoodLog struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"`
	MealType        string    `json:"mealType"`
	FoodItems       string    `json:"foodItems"`
	FlareUpScore    int       `json:"flareUpScore"`
	SymptomsAfter   *Symptoms `json:"symptomsAfter,omitempty"`
	TimeAfterEating string    `json:"timeAfterEating,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// SleepLog records a night's sleep and the morning after.
type SleepLog struct {
	ID               string    `json:"id"`
	Date             string    `json:"date"`
	HoursSlept       float64   `json:"hoursSlept"`
	SleepQuality     int       `json:"sleepQuality"`
	MorningSymptoms  *Symptoms `json:"morningSymptoms,omitempty"`
	SleepDisruptions string    `json:"sleepDisruptions,omitempty"`
	Notes            string    `json:"notes,omitempty"`
}
