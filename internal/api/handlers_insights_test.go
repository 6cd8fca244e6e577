package api

import (
	"net/http"
	"testing"
	"time"
)

func isoDay(daysAgo int) string {
	return time.Now().UTC().AddDate(0, 0, -daysAgo).Format("2006-01-02")
}

func TestFindTriggersEndToEnd(t *testing.T) {
	app := newTestApp(t)

	spikeDay := isoDay(0)
	for _, payload := range []map[string]any{
		{"date": isoDay(2) + "T12:00:00Z", "nausea": 2, "fatigue": 2, "pain": 2},
		{"date": isoDay(1) + "T12:00:00Z", "nausea": 2, "fatigue": 2, "pain": 2},
		{"date": spikeDay + "T12:00:00Z", "nausea": 8, "fatigue": 8, "pain": 8},
	} {
		response := postJSON(t, app, "/insert_symptoms", payload)
		response.Body.Close()
	}
	response := postJSON(t, app, "/insert_diet", map[string]any{
		"meal": "breakfast", "date": spikeDay + "T08:00:00Z", "items": []string{"Bacon", "Eggs"},
	})
	response.Body.Close()
	response = postJSON(t, app, "/insert_sleep", map[string]any{
		"date": spikeDay + "T07:30:00Z", "duration": 4.5, "quality": 30,
	})
	response.Body.Close()
	response = postJSON(t, app, "/insert_menstrual", map[string]any{
		"period_event": "start", "date": spikeDay + "T00:00:00Z", "flow_level": "heavy",
	})
	response.Body.Close()

	var summary struct {
		CommonFoodItems struct {
			Counts  map[string]int `json:"counts"`
			Details map[string][]struct {
				Date            string  `json:"date"`
				TriggerSeverity float64 `json:"trigger_severity"`
			} `json:"details"`
		} `json:"common_food_items"`
		FlowLevels struct {
			Counts map[string]int `json:"counts"`
		} `json:"flow_levels"`
		LowSleepHours struct {
			Count int `json:"count"`
		} `json:"low_sleep_hours"`
		SymptomAverage        float64 `json:"symptom_average"`
		SymptomSpikeThreshold float64 `json:"symptom_spike_threshold"`
	}
	getResponse := getJSON(t, app, "/find_triggers", &summary)
	if getResponse.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", getResponse.StatusCode)
	}

	if summary.CommonFoodItems.Counts["bacon"] != 1 || summary.CommonFoodItems.Counts["eggs"] != 1 {
		t.Errorf("food counts = %v", summary.CommonFoodItems.Counts)
	}
	details := summary.CommonFoodItems.Details["bacon"]
	if len(details) != 1 || details[0].Date != spikeDay || details[0].TriggerSeverity != 8 {
		t.Errorf("bacon details = %+v", details)
	}
	if summary.FlowLevels.Counts["heavy"] != 1 {
		t.Errorf("flow counts = %v", summary.FlowLevels.Counts)
	}
	if summary.LowSleepHours.Count != 1 {
		t.Errorf("low sleep count = %d", summary.LowSleepHours.Count)
	}
	if summary.SymptomAverage != 4 {
		t.Errorf("average = %v", summary.SymptomAverage)
	}
}

func TestSevenDayAverageEndpoint(t *testing.T) {
	app := newTestApp(t)

	response := postJSON(t, app, "/insert_symptoms", map[string]any{
		"date": isoDay(1) + "T12:00:00Z", "nausea": 6, "fatigue": 8, "pain": 4,
	})
	response.Body.Close()
	// Outside the window, must not contribute.
	response = postJSON(t, app, "/insert_symptoms", map[string]any{
		"date": isoDay(30) + "T12:00:00Z", "nausea": 10, "fatigue": 10, "pain": 10,
	})
	response.Body.Close()

	var average struct {
		AverageFatigue float64 `json:"average_fatigue"`
		AverageNausea  float64 `json:"average_nausea"`
		AveragePain    float64 `json:"average_pain"`
	}
	getJSON(t, app, "/seven_day_average", &average)

	if average.AverageNausea != 6 || average.AverageFatigue != 8 || average.AveragePain != 4 {
		t.Fatalf("average = %+v", average)
	}
}

func TestRecommendationsEndpointFallback(t *testing.T) {
	app := newTestApp(t)

	var lines []string
	response := getJSON(t, app, "/recommendations", &lines)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", response.StatusCode)
	}
	if len(lines) != 1 {
		t.Fatalf("lines = %v", lines)
	}
}

func TestPredictFlareupsEndpoint(t *testing.T) {
	app := newTestApp(t)

	for _, payload := range []map[string]any{
		{"date": isoDay(2) + "T12:00:00Z", "nausea": 2, "fatigue": 2, "pain": 2},
		{"date": isoDay(1) + "T12:00:00Z", "nausea": 2, "fatigue": 2, "pain": 2},
		{"date": isoDay(0) + "T12:00:00Z", "nausea": 8, "fatigue": 8, "pain": 8},
	} {
		response := postJSON(t, app, "/insert_symptoms", payload)
		response.Body.Close()
	}

	var prediction struct {
		FlareupPredictions []string `json:"flareup_predictions"`
		FlareupProbability float64  `json:"flareup_probability"`
	}
	response := getJSON(t, app, "/predict_flareups", &prediction)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", response.StatusCode)
	}
	if prediction.FlareupProbability <= 0 {
		t.Errorf("probability = %v, want > 0", prediction.FlareupProbability)
	}
	if prediction.FlareupPredictions == nil {
		t.Error("predictions must serialize as an array")
	}
}
