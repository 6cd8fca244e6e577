package api

import (
	"strings"

	"endocare/internal/models"
	"endocare/internal/services"
)

// Wire shapes for the journal resources. Numeric insert fields are
// pointers so a missing field is distinguishable from a zero.

type sleepRecord struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	Duration    float64 `json:"duration"`
	Quality     int     `json:"quality"`
	Disruptions string  `json:"disruptions"`
	Notes       string  `json:"notes"`
}

type insertSleepRequest struct {
	Date        string   `json:"date"`
	Duration    *float64 `json:"duration"`
	Quality     *int     `json:"quality"`
	Disruptions string   `json:"disruptions"`
	Notes       string   `json:"notes"`
}

func (request insertSleepRequest) validate() bool {
	return strings.TrimSpace(request.Date) != "" && request.Duration != nil && request.Quality != nil
}

type dietRecord struct {
	ID    uint     `json:"id"`
	Meal  string   `json:"meal"`
	Date  string   `json:"date"`
	Items []string `json:"items"`
	Notes string   `json:"notes"`
}

type insertDietRequest struct {
	Meal  string   `json:"meal"`
	Date  string   `json:"date"`
	Items []string `json:"items"`
	Notes string   `json:"notes"`
}

func (request insertDietRequest) validate() bool {
	return strings.TrimSpace(request.Meal) != "" && strings.TrimSpace(request.Date) != "" && len(request.Items) > 0
}

type menstrualRecord struct {
	ID          uint   `json:"id"`
	PeriodEvent string `json:"period_event"`
	Date        string `json:"date"`
	FlowLevel   string `json:"flow_level"`
	Notes       string `json:"notes"`
}

type insertMenstrualRequest struct {
	PeriodEvent string `json:"period_event"`
	Date        string `json:"date"`
	FlowLevel   string `json:"flow_level"`
	Notes       string `json:"notes"`
}

func (request insertMenstrualRequest) validate() bool {
	return strings.TrimSpace(request.PeriodEvent) != "" && strings.TrimSpace(request.Date) != ""
}

type symptomRecord struct {
	ID      uint   `json:"id"`
	Date    string `json:"date"`
	Nausea  int    `json:"nausea"`
	Fatigue int    `json:"fatigue"`
	Pain    int    `json:"pain"`
	Notes   string `json:"notes"`
}

type insertSymptomsRequest struct {
	Date    string `json:"date"`
	Nausea  *int   `json:"nausea"`
	Fatigue *int   `json:"fatigue"`
	Pain    *int   `json:"pain"`
	Notes   string `json:"notes"`
}

func (request insertSymptomsRequest) validate() bool {
	return strings.TrimSpace(request.Date) != "" && request.Nausea != nil && request.Fatigue != nil && request.Pain != nil
}

func sleepRecordFromModel(entry models.SleepLog) sleepRecord {
	return sleepRecord{
		ID:          entry.ID,
		Date:        entry.Date,
		Duration:    entry.Duration,
		Quality:     entry.Quality,
		Disruptions: entry.Disruptions,
		Notes:       entry.Notes,
	}
}

func dietRecordFromModel(entry models.DietLog) dietRecord {
	return dietRecord{
		ID:    entry.ID,
		Meal:  entry.Meal,
		Date:  entry.Date,
		Items: services.SplitFoodItems(entry.Items),
		Notes: entry.Notes,
	}
}

func menstrualRecordFromModel(entry models.MenstrualLog) menstrualRecord {
	return menstrualRecord{
		ID:          entry.ID,
		PeriodEvent: entry.PeriodEvent,
		Date:        entry.Date,
		FlowLevel:   entry.FlowLevel,
		Notes:       entry.Notes,
	}
}

func symptomRecordFromModel(entry models.SymptomLog) symptomRecord {
	return symptomRecord{
		ID:      entry.ID,
		Date:    entry.Date,
		Nausea:  entry.Nausea,
		Fatigue: entry.Fatigue,
		Pain:    entry.Pain,
		Notes:   entry.Notes,
	}
}
