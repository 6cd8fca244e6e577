package services

import (
	"math"
	"sort"

	"endocare/internal/models"
)

// DayOf truncates an ISO-8601 timestamp to its calendar-day prefix.
func DayOf(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}

// EntrySymptomScore is the mean of the three intensity fields of one entry.
func EntrySymptomScore(entry models.SymptomLog) float64 {
	return float64(entry.Nausea+entry.Fatigue+entry.Pain) / 3.0
}

// DailySymptomScores averages entry scores for each calendar day.
func DailySymptomScores(entries []models.SymptomLog) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, entry := range entries {
		day := DayOf(entry.Date)
		sums[day] += EntrySymptomScore(entry)
		counts[day]++
	}

	scores := make(map[string]float64, len(sums))
	for day, sum := range sums {
		scores[day] = sum / float64(counts[day])
	}
	return scores
}

// SortedScoreDays returns the score map keys in ascending date order.
func SortedScoreDays(scores map[string]float64) []string {
	days := make([]string, 0, len(scores))
	for day := range scores {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

type SymptomScoreStats struct {
	Average           float64
	StandardDeviation float64
	SpikeThreshold    float64
}

// ComputeSymptomScoreStats derives the spike threshold as the mean daily
// score plus one population standard deviation.
func ComputeSymptomScoreStats(scores map[string]float64) SymptomScoreStats {
	if len(scores) == 0 {
		return SymptomScoreStats{}
	}

	var sum float64
	for _, score := range scores {
		sum += score
	}
	average := sum / float64(len(scores))

	var variance float64
	for _, score := range scores {
		delta := score - average
		variance += delta * delta
	}
	variance /= float64(len(scores))
	deviation := math.Sqrt(variance)

	return SymptomScoreStats{
		Average:           average,
		StandardDeviation: deviation,
		SpikeThreshold:    average + deviation,
	}
}

// SpikeDays returns the set of days whose score reaches the threshold.
func SpikeDays(scores map[string]float64, threshold float64) map[string]float64 {
	spikes := make(map[string]float64)
	for day, score := range scores {
		if score >= threshold && threshold > 0 {
			spikes[day] = score
		}
	}
	return spikes
}
