package services

import (
	"math"
	"reflect"
	"testing"

	"endocare/internal/models"
)

func symptomLog(date string, nausea, fatigue, pain int) models.SymptomLog {
	return models.SymptomLog{Date: date, Nausea: nausea, Fatigue: fatigue, Pain: pain}
}

func TestDayOf(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2025-08-11T12:00:00Z", "2025-08-11"},
		{"2025-08-11", "2025-08-11"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := DayOf(tc.input); got != tc.want {
			t.Errorf("DayOf(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestEntrySymptomScore(t *testing.T) {
	score := EntrySymptomScore(symptomLog("2025-08-11", 6, 7, 5))
	if score != 6 {
		t.Fatalf("score = %v, want 6", score)
	}
}

func TestDailySymptomScoresAveragesPerDay(t *testing.T) {
	scores := DailySymptomScores([]models.SymptomLog{
		symptomLog("2025-08-11T08:00:00Z", 3, 3, 3),
		symptomLog("2025-08-11T20:00:00Z", 9, 9, 9),
		symptomLog("2025-08-12T12:00:00Z", 6, 6, 6),
	})
	want := map[string]float64{"2025-08-11": 6, "2025-08-12": 6}
	if !reflect.DeepEqual(scores, want) {
		t.Fatalf("scores = %v, want %v", scores, want)
	}
}

func TestSortedScoreDays(t *testing.T) {
	days := SortedScoreDays(map[string]float64{
		"2025-08-13": 1, "2025-08-02": 2, "2025-08-11": 3,
	})
	want := []string{"2025-08-02", "2025-08-11", "2025-08-13"}
	if !reflect.DeepEqual(days, want) {
		t.Fatalf("days = %v, want %v", days, want)
	}
}

func TestComputeSymptomScoreStats(t *testing.T) {
	stats := ComputeSymptomScoreStats(map[string]float64{
		"2025-08-11": 2,
		"2025-08-12": 4,
		"2025-08-13": 6,
	})
	if stats.Average != 4 {
		t.Errorf("average = %v, want 4", stats.Average)
	}
	wantDeviation := math.Sqrt(8.0 / 3.0)
	if math.Abs(stats.StandardDeviation-wantDeviation) > 1e-9 {
		t.Errorf("deviation = %v, want %v", stats.StandardDeviation, wantDeviation)
	}
	if math.Abs(stats.SpikeThreshold-(4+wantDeviation)) > 1e-9 {
		t.Errorf("threshold = %v", stats.SpikeThreshold)
	}
}

func TestComputeSymptomScoreStatsEmpty(t *testing.T) {
	stats := ComputeSymptomScoreStats(nil)
	if stats.Average != 0 || stats.StandardDeviation != 0 || stats.SpikeThreshold != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestSpikeDays(t *testing.T) {
	scores := map[string]float64{
		"2025-08-11": 9,
		"2025-08-12": 3,
		"2025-08-13": 7,
	}
	spikes := SpikeDays(scores, 7)
	want := map[string]float64{"2025-08-11": 9, "2025-08-13": 7}
	if !reflect.DeepEqual(spikes, want) {
		t.Fatalf("spikes = %v, want %v", spikes, want)
	}
}

func TestSpikeDaysZeroThresholdMatchesNothing(t *testing.T) {
	spikes := SpikeDays(map[string]float64{"2025-08-11": 5}, 0)
	if len(spikes) != 0 {
		t.Fatalf("zero threshold produced spikes: %v", spikes)
	}
}
