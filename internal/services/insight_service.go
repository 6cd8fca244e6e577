package services

import (
	"fmt"
	"sort"
	"time"

	"endocare/internal/models"
)

type SevenDayAverage struct {
	AverageFatigue float64 `json:"average_fatigue"`
	AverageNausea  float64 `json:"average_nausea"`
	AveragePain    float64 `json:"average_pain"`
}

type FlareupPrediction struct {
	FlareupPredictions []string `json:"flareup_predictions"`
	FlareupProbability float64  `json:"flareup_probability"`
}

// InsightService backs the read-only analytics endpoints that the
// client treats as opaque.
type InsightService struct {
	triggers *TriggerService
	symptoms TriggerSymptomReader
}

func NewInsightService(triggers *TriggerService, symptoms TriggerSymptomReader) *InsightService {
	return &InsightService{triggers: triggers, symptoms: symptoms}
}

func (service *InsightService) SevenDayAverage(now time.Time) (SevenDayAverage, error) {
	entries, err := service.symptoms.ListAll()
	if err != nil {
		return SevenDayAverage{}, err
	}
	return ComputeSevenDayAverage(entries, now), nil
}

func (service *InsightService) Recommendations() ([]string, error) {
	summary, err := service.triggers.BuildSummary()
	if err != nil {
		return nil, err
	}
	return BuildRecommendations(summary), nil
}

func (service *InsightService) PredictFlareups(now time.Time) (FlareupPrediction, error) {
	summary, err := service.triggers.BuildSummary()
	if err != nil {
		return FlareupPrediction{}, err
	}
	entries, err := service.symptoms.ListAll()
	if err != nil {
		return FlareupPrediction{}, err
	}
	return ComputeFlareupPrediction(summary, entries, now), nil
}

// ComputeSevenDayAverage averages the raw symptom fields over entries
// from the last seven calendar days, inclusive of today.
func ComputeSevenDayAverage(entries []models.SymptomLog, now time.Time) SevenDayAverage {
	cutoff := now.UTC().AddDate(0, 0, -6).Format("2006-01-02")

	var nausea, fatigue, pain float64
	var count int
	for _, entry := range entries {
		if DayOf(entry.Date) < cutoff {
			continue
		}
		nausea += float64(entry.Nausea)
		fatigue += float64(entry.Fatigue)
		pain += float64(entry.Pain)
		count++
	}
	if count == 0 {
		return SevenDayAverage{}
	}
	return SevenDayAverage{
		AverageFatigue: fatigue / float64(count),
		AverageNausea:  nausea / float64(count),
		AveragePain:    pain / float64(count),
	}
}

// BuildRecommendations turns the trigger summary into plain advice
// strings, worst offenders first.
func BuildRecommendations(summary TriggerSummary) []string {
	recommendations := make([]string, 0, 4)

	for _, item := range topCategoryLabels(summary.CommonFoodItems, 3) {
		recommendations = append(recommendations,
			fmt.Sprintf("Consider limiting %s; it appeared on %d high-symptom day(s).", item, summary.CommonFoodItems.Counts[item]))
	}
	if summary.LowSleepHours.Count > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Short sleep lined up with %d high-symptom day(s); aim for at least %.0f hours.", summary.LowSleepHours.Count, LowSleepThresholdHours))
	}
	for _, level := range topCategoryLabels(summary.FlowLevels, 1) {
		recommendations = append(recommendations,
			fmt.Sprintf("Symptoms tend to spike on %s-flow days; plan rest around them.", level))
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "No trigger patterns detected yet. Keep logging daily to improve detection.")
	}
	return recommendations
}

// ComputeFlareupPrediction estimates near-term flare-up risk from the
// density of spike days over the last two weeks.
func ComputeFlareupPrediction(summary TriggerSummary, entries []models.SymptomLog, now time.Time) FlareupPrediction {
	scores := DailySymptomScores(entries)
	cutoff := now.UTC().AddDate(0, 0, -13).Format("2006-01-02")

	var recentDays, recentSpikes int
	for day, score := range scores {
		if day < cutoff {
			continue
		}
		recentDays++
		if summary.SymptomSpikeThreshold > 0 && score >= summary.SymptomSpikeThreshold {
			recentSpikes++
		}
	}

	prediction := FlareupPrediction{FlareupPredictions: make([]string, 0, 4)}
	if recentDays > 0 {
		prediction.FlareupProbability = float64(recentSpikes) / float64(recentDays) * 100
	}

	prediction.FlareupPredictions = append(prediction.FlareupPredictions, topCategoryLabels(summary.CommonFoodItems, 2)...)
	if summary.LowSleepHours.Count > 0 {
		prediction.FlareupPredictions = append(prediction.FlareupPredictions, "low sleep")
	}
	prediction.FlareupPredictions = append(prediction.FlareupPredictions, topCategoryLabels(summary.MenstrualEvents, 1)...)

	return prediction
}

func topCategoryLabels(category TriggerCategory, limit int) []string {
	labels := make([]string, 0, len(category.Counts))
	for label := range category.Counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if category.Counts[labels[i]] == category.Counts[labels[j]] {
			return labels[i] < labels[j]
		}
		return category.Counts[labels[i]] > category.Counts[labels[j]]
	})
	if len(labels) > limit {
		labels = labels[:limit]
	}
	return labels
}
