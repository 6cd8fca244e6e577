package client

// Server-side record shapes, exactly as the REST endpoints emit them.
// Scales differ from the local domain: symptom fields are 0-10, sleep
// quality on reads is 0-100, flow_level is a string enum.

// Flow levels as the server stores them.
const (
	FlowLight    = "light"
	FlowModerate = "moderate"
	FlowHeavy    = "heavy"
)

type SleepEntry struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	Duration    float64 `json:"duration"`
	Quality     int     `json:"quality"`
	Disruptions string  `json:"disruptions"`
	Notes       string  `json:"notes"`
}

type DietEntry struct {
	ID    int64    `json:"id"`
	Meal  string   `json:"meal"`
	Date  string   `json:"date"`
	Items []string `json:"items"`
	Notes string   `json:"notes"`
}

type MenstrualEntry struct {
	ID          int64  `json:"id"`
	PeriodEvent string `json:"period_event"`
	Date        string `json:"date"`
	FlowLevel   string `json:"flow_level"`
	Notes       string `json:"notes"`
}

type SymptomEntry struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Nausea  int    `json:"nausea"`
	Fatigue int    `json:"fatigue"`
	Pain    int    `json:"pain"`
	Notes   string `json:"notes"`
}

type InsertSleepRequest struct {
	Date        string  `json:"date"`
	Duration    float64 `json:"duration"`
	Quality     int     `json:"quality"`
	Disruptions string  `json:"disruptions"`
	Notes       string  `json:"notes"`
}

type InsertDietRequest struct {
	Meal  string   `json:"meal"`
	Date  string   `json:"date"`
	Items []string `json:"items"`
	Notes string   `json:"notes"`
}

type InsertMenstrualRequest struct {
	PeriodEvent string `json:"period_event"`
	Date        string `json:"date"`
	FlowLevel   string `json:"flow_level"`
	Notes       string `json:"notes"`
}

type InsertSymptomsRequest struct {
	Date    string `json:"date"`
	Nausea  int    `json:"nausea"`
	Fatigue int    `json:"fatigue"`
	Pain    int    `json:"pain"`
	Notes   string `json:"notes"`
}

// Trigger summary shapes from /find_triggers. The details of the
// keyed categories are maps of lists; low_sleep_hours carries a flat
// list. Aggregation lives in the triggers package.

type TriggerDetail struct {
	Date            string  `json:"date"`
	TriggerSeverity float64 `json:"trigger_severity"`
}

type TriggerCategory struct {
	Counts  map[string]int             `json:"counts"`
	Details map[string][]TriggerDetail `json:"details"`
}

type LowSleepCategory struct {
	Count   int             `json:"count"`
	Details []TriggerDetail `json:"details"`
}

type TriggerSummary struct {
	CommonFoodItems       TriggerCategory  `json:"common_food_items"`
	FlowLevels            TriggerCategory  `json:"flow_levels"`
	LowSleepHours         LowSleepCategory `json:"low_sleep_hours"`
	MenstrualEvents       TriggerCategory  `json:"menstrual_events"`
	StandardDeviation     float64          `json:"standard_deviation"`
	SymptomAverage        float64          `json:"symptom_average"`
	SymptomSpikeThreshold float64          `json:"symptom_spike_threshold"`
}

type SevenDayAverage struct {
	AverageFatigue float64 `json:"average_fatigue"`
	AverageNausea  float64 `json:"average_nausea"`
	AveragePain    float64 `json:"average_pain"`
}

type FlareupPrediction struct {
	FlareupPredictions []string `json:"flareup_predictions"`
	FlareupProbability float64  `json:"flareup_probability"`
}
