// Package transform converts between the server wire records and the
// local journal shapes. The two sides disagree on scales and formats:
// the server keeps full ISO timestamps, 0-100 sleep quality, 0-10
// symptom scores and string flow levels, while the journal keeps bare
// dates, 1-10 scales and numeric flow levels.
package transform

import (
	"strconv"
	"strings"

	"endocare/internal/client"
	"endocare/internal/journal"
)

// DefaultFlareUpScore fills in the flare-up field on food logs pulled
// from the server, which does not track it.
const DefaultFlareUpScore = 1

// Fixed times of day stamped onto outgoing records, one per category,
// so entries from the same day keep a stable ordering server-side.
const (
	sleepTimeOfDay     = "T07:30:00Z"
	dietTimeOfDay      = "T08:00:00Z"
	menstrualTimeOfDay = "T00:00:00Z"
	symptomTimeOfDay   = "T12:00:00Z"
)

// DatePart truncates an ISO timestamp to its YYYY-MM-DD prefix. Inputs
// without a time component pass through unchanged.
func DatePart(timestamp string) string {
	if i := strings.IndexByte(timestamp, 'T'); i >= 0 {
		return timestamp[:i]
	}
	return timestamp
}

// SleepLogsFromRemote maps server sleep records onto journal entries,
// rescaling the 0-100 quality to the local 1-10 scale.
func SleepLogsFromRemote(entries []client.SleepEntry) []journal.SleepLog {
	logs := make([]journal.SleepLog, 0, len(entries))
	for _, entry := range entries {
		logs = append(logs, journal.SleepLog{
			ID:               strconv.FormatInt(entry.ID, 10),
			Date:             DatePart(entry.Date),
			HoursSlept:       entry.Duration,
			SleepQuality:     rescaleQuality(entry.Quality),
			SleepDisruptions: entry.Disruptions,
			Notes:            entry.Notes,
		})
	}
	return logs
}

// FoodLogsFromRemote maps server diet records onto journal entries.
// The server has no flare-up score, so every entry gets the default.
func FoodLogsFromRemote(entries []client.DietEntry) []journal.FoodLog {
	logs := make([]journal.FoodLog, 0, len(entries))
	for _, entry := range entries {
		logs = append(logs, journal.FoodLog{
			ID:           strconv.FormatInt(entry.ID, 10),
			Date:         DatePart(entry.Date),
			MealType:     entry.Meal,
			FoodItems:    strings.Join(entry.Items, ", "),
			FlareUpScore: DefaultFlareUpScore,
			Notes:        entry.Notes,
		})
	}
	return logs
}

// PeriodLogsFromRemote maps server menstrual records onto journal
// entries, collapsing the string flow levels to numbers.
func PeriodLogsFromRemote(entries []client.MenstrualEntry) []journal.PeriodLog {
	logs := make([]journal.PeriodLog, 0, len(entries))
	for _, entry := range entries {
		logs = append(logs, journal.PeriodLog{
			ID:        strconv.FormatInt(entry.ID, 10),
			Date:      DatePart(entry.Date),
			Type:      entry.PeriodEvent,
			FlowLevel: flowLevelFromRemote(entry.FlowLevel),
			Notes:     entry.Notes,
		})
	}
	return logs
}

// SymptomEntriesFromRemote maps server symptom records onto journal
// entries, shifting the 0-10 server scale onto the 1-10 local one.
func SymptomEntriesFromRemote(entries []client.SymptomEntry) []journal.SymptomEntry {
	logs := make([]journal.SymptomEntry, 0, len(entries))
	for _, entry := range entries {
		logs = append(logs, journal.SymptomEntry{
			ID:      strconv.FormatInt(entry.ID, 10),
			Date:    DatePart(entry.Date),
			Nausea:  rescaleSymptom(entry.Nausea),
			Fatigue: rescaleSymptom(entry.Fatigue),
			Pain:    rescaleSymptom(entry.Pain),
			Notes:   entry.Notes,
		})
	}
	return logs
}

// InsertSleepRequest builds the outgoing payload for a sleep log. The
// quality is sent on the local scale as-is; rescaling only happens on
// the way in.
func InsertSleepRequest(log journal.SleepLog) client.InsertSleepRequest {
	return client.InsertSleepRequest{
		Date:        log.Date + sleepTimeOfDay,
		Duration:    log.HoursSlept,
		Quality:     log.SleepQuality,
		Disruptions: defaultString(log.SleepDisruptions, "None"),
		Notes:       defaultString(log.Notes, "Sleep logged"),
	}
}

func InsertDietRequest(log journal.FoodLog) client.InsertDietRequest {
	return client.InsertDietRequest{
		Meal:  log.MealType,
		Date:  log.Date + dietTimeOfDay,
		Items: splitFoodItems(log.FoodItems),
		Notes: defaultString(log.Notes, "Had a meal"),
	}
}

func InsertMenstrualRequest(log journal.PeriodLog) client.InsertMenstrualRequest {
	return client.InsertMenstrualRequest{
		PeriodEvent: log.Type,
		Date:        log.Date + menstrualTimeOfDay,
		FlowLevel:   flowLevelToRemote(log.FlowLevel),
		Notes:       defaultString(log.Notes, "Period log"),
	}
}

func InsertSymptomsRequest(entry journal.SymptomEntry) client.InsertSymptomsRequest {
	return client.InsertSymptomsRequest{
		Date:    entry.Date + symptomTimeOfDay,
		Nausea:  entry.Nausea,
		Fatigue: entry.Fatigue,
		Pain:    entry.Pain,
		Notes:   defaultString(entry.Notes, "Symptoms logged"),
	}
}

// rescaleQuality converts a 0-100 quality reading to 1-10, rounding to
// the nearest step and clamping the ends.
func rescaleQuality(quality int) int {
	scaled := (quality + 5) / 10
	if scaled < 1 {
		return 1
	}
	if scaled > 10 {
		return 10
	}
	return scaled
}

// rescaleSymptom shifts a 0-10 reading onto 1-10. Out-of-range servers
// values clamp rather than overflow the local scale.
func rescaleSymptom(value int) int {
	shifted := value + 1
	if shifted < 1 {
		return 1
	}
	if shifted > 10 {
		return 10
	}
	return shifted
}

func flowLevelFromRemote(level string) int {
	switch level {
	case client.FlowLight:
		return journal.FlowLevelLight
	case client.FlowModerate:
		return journal.FlowLevelModerate
	default:
		return journal.FlowLevelHeavy
	}
}

func flowLevelToRemote(level int) string {
	switch level {
	case journal.FlowLevelLight:
		return client.FlowLight
	case journal.FlowLevelModerate:
		return client.FlowModerate
	default:
		return client.FlowHeavy
	}
}

func splitFoodItems(items string) []string {
	parts := strings.Split(items, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
