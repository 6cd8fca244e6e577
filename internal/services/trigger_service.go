package services

import (
	"sort"
	"strings"

	"endocare/internal/models"
)

// Wire shapes for /find_triggers. Field names match the contract the
// mobile client parses.

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

// LowSleepThresholdHours marks nights short enough to count as a trigger.
const LowSleepThresholdHours = 6.0

type TriggerSleepReader interface {
	ListAll() ([]models.SleepLog, error)
}

type TriggerDietReader interface {
	ListAll() ([]models.DietLog, error)
}

type TriggerMenstrualReader interface {
	ListAll() ([]models.MenstrualLog, error)
}

type TriggerSymptomReader interface {
	ListAll() ([]models.SymptomLog, error)
}

// TriggerService correlates logged events with symptom spike days.
type TriggerService struct {
	sleep     TriggerSleepReader
	diet      TriggerDietReader
	menstrual TriggerMenstrualReader
	symptoms  TriggerSymptomReader
}

func NewTriggerService(sleep TriggerSleepReader, diet TriggerDietReader, menstrual TriggerMenstrualReader, symptoms TriggerSymptomReader) *TriggerService {
	return &TriggerService{
		sleep:     sleep,
		diet:      diet,
		menstrual: menstrual,
		symptoms:  symptoms,
	}
}

func (service *TriggerService) BuildSummary() (TriggerSummary, error) {
	symptomLogs, err := service.symptoms.ListAll()
	if err != nil {
		return TriggerSummary{}, err
	}
	sleepLogs, err := service.sleep.ListAll()
	if err != nil {
		return TriggerSummary{}, err
	}
	dietLogs, err := service.diet.ListAll()
	if err != nil {
		return TriggerSummary{}, err
	}
	menstrualLogs, err := service.menstrual.ListAll()
	if err != nil {
		return TriggerSummary{}, err
	}

	return BuildTriggerSummary(sleepLogs, dietLogs, menstrualLogs, symptomLogs), nil
}

// BuildTriggerSummary is the pure core of /find_triggers: events landing
// on a symptom spike day are counted per category, with the day's mean
// symptom score as the trigger severity.
func BuildTriggerSummary(sleepLogs []models.SleepLog, dietLogs []models.DietLog, menstrualLogs []models.MenstrualLog, symptomLogs []models.SymptomLog) TriggerSummary {
	scores := DailySymptomScores(symptomLogs)
	stats := ComputeSymptomScoreStats(scores)
	spikes := SpikeDays(scores, stats.SpikeThreshold)

	summary := TriggerSummary{
		CommonFoodItems:       newTriggerCategory(),
		FlowLevels:            newTriggerCategory(),
		MenstrualEvents:       newTriggerCategory(),
		LowSleepHours:         LowSleepCategory{Details: make([]TriggerDetail, 0)},
		StandardDeviation:     stats.StandardDeviation,
		SymptomAverage:        stats.Average,
		SymptomSpikeThreshold: stats.SpikeThreshold,
	}

	for _, entry := range dietLogs {
		day := DayOf(entry.Date)
		severity, spiked := spikes[day]
		if !spiked {
			continue
		}
		for _, item := range SplitFoodItems(entry.Items) {
			summary.CommonFoodItems.add(item, TriggerDetail{Date: day, TriggerSeverity: severity})
		}
	}

	for _, entry := range menstrualLogs {
		day := DayOf(entry.Date)
		severity, spiked := spikes[day]
		if !spiked {
			continue
		}
		if level := strings.TrimSpace(entry.FlowLevel); level != "" {
			summary.FlowLevels.add(level, TriggerDetail{Date: day, TriggerSeverity: severity})
		}
		if event := strings.TrimSpace(entry.PeriodEvent); event != "" {
			summary.MenstrualEvents.add(event, TriggerDetail{Date: day, TriggerSeverity: severity})
		}
	}

	for _, entry := range sleepLogs {
		day := DayOf(entry.Date)
		severity, spiked := spikes[day]
		if !spiked || entry.Duration >= LowSleepThresholdHours {
			continue
		}
		summary.LowSleepHours.Count++
		summary.LowSleepHours.Details = append(summary.LowSleepHours.Details, TriggerDetail{Date: day, TriggerSeverity: severity})
	}

	sort.Slice(summary.LowSleepHours.Details, func(i, j int) bool {
		return summary.LowSleepHours.Details[i].Date < summary.LowSleepHours.Details[j].Date
	})

	return summary
}

// SplitFoodItems undoes the comma-joined storage form of diet items.
func SplitFoodItems(items string) []string {
	parts := strings.Split(items, ",")
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.ToLower(strings.TrimSpace(part))
		if item == "" {
			continue
		}
		cleaned = append(cleaned, item)
	}
	return cleaned
}

func newTriggerCategory() TriggerCategory {
	return TriggerCategory{
		Counts:  make(map[string]int),
		Details: make(map[string][]TriggerDetail),
	}
}

func (category *TriggerCategory) add(label string, detail TriggerDetail) {
	category.Counts[label]++
	category.Details[label] = append(category.Details[label], detail)
}
