// Package triggers folds the per-category trigger summary from the
// server into the per-day severity series the heatmap renders.
package triggers

import (
	"sort"

	"endocare/internal/client"
)

// DailySeverity is one heatmap cell: every trigger detail reported for
// the date, summed across categories.
type DailySeverity struct {
	Date     string  `json:"date"`
	Severity float64 `json:"severity"`
}

// Severity bands for rendering. Boundaries are inclusive on the upper
// end: a severity of exactly 3 is still low.
type SeverityLevel int

const (
	LevelNone SeverityLevel = iota
	LevelLow
	LevelMedium
	LevelHigh
)

const (
	lowThreshold    = 3
	mediumThreshold = 6
)

// LevelOf buckets a summed severity into its band.
func LevelOf(severity float64) SeverityLevel {
	switch {
	case severity <= 0:
		return LevelNone
	case severity <= lowThreshold:
		return LevelLow
	case severity <= mediumThreshold:
		return LevelMedium
	default:
		return LevelHigh
	}
}

func (level SeverityLevel) String() string {
	switch level {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	default:
		return "none"
	}
}

// Aggregate sums trigger severities per date across every category of
// the summary. The scalar statistics on the summary do not contribute.
// Details without a date are dropped rather than pooled under an empty
// key. The result is sorted by date ascending.
func Aggregate(summary client.TriggerSummary) []DailySeverity {
	totals := make(map[string]float64)
	addCategory(totals, summary.CommonFoodItems)
	addCategory(totals, summary.FlowLevels)
	addCategory(totals, summary.MenstrualEvents)
	addDetails(totals, summary.LowSleepHours.Details)

	dates := make([]string, 0, len(totals))
	for date := range totals {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]DailySeverity, 0, len(dates))
	for _, date := range dates {
		series = append(series, DailySeverity{Date: date, Severity: totals[date]})
	}
	return series
}

// Entry is one trigger detail tagged with the label it was filed
// under in the summary.
type Entry struct {
	Label    string
	Date     string
	Severity float64
}

// Entries flattens every trigger detail in the summary into one
// labeled list, in category order, without summing. Low-sleep details
// carry the "low sleep" label.
func Entries(summary client.TriggerSummary) []Entry {
	var entries []Entry
	for _, category := range []client.TriggerCategory{
		summary.CommonFoodItems,
		summary.FlowLevels,
		summary.MenstrualEvents,
	} {
		for _, label := range sortedKeys(category.Details) {
			for _, detail := range category.Details[label] {
				entries = append(entries, Entry{
					Label:    label,
					Date:     detail.Date,
					Severity: detail.TriggerSeverity,
				})
			}
		}
	}
	for _, detail := range summary.LowSleepHours.Details {
		entries = append(entries, Entry{
			Label:    "low sleep",
			Date:     detail.Date,
			Severity: detail.TriggerSeverity,
		})
	}
	return entries
}

func addCategory(totals map[string]float64, category client.TriggerCategory) {
	for _, details := range category.Details {
		addDetails(totals, details)
	}
}

func addDetails(totals map[string]float64, details []client.TriggerDetail) {
	for _, detail := range details {
		if detail.Date == "" {
			continue
		}
		totals[detail.Date] += detail.TriggerSeverity
	}
}

func sortedKeys(details map[string][]client.TriggerDetail) []string {
	keys := make([]string, 0, len(details))
	for key := range details {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
