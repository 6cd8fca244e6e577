package models

import "time"

const (
	FlowLight    = "light"
	FlowModerate = "moderate"
	FlowHeavy    = "heavy"
)

const (
	PeriodEventStart = "start"
	PeriodEventEnd   = "end"
)

// SleepLog is one night of sleep. Date keeps the full ISO timestamp the
// client sent; readers truncate to the calendar day themselves.
type SleepLog struct {
	ID          uint    `gorm:"primaryKey"`
	Date        string  `gorm:"not null"`
	Duration    float64 `gorm:"not null"`
	Quality     int     `gorm:"not null"`
	Disruptions string
	Notes       string
	CreatedAt   time.Time
}

func (SleepLog) TableName() string { return "sleep_logs" }

// DietLog stores Items comma-joined, matching the original table layout.
type DietLog struct {
	ID        uint   `gorm:"primaryKey"`
	Meal      string `gorm:"not null"`
	Date      string `gorm:"not null"`
	Items     string `gorm:"not null"`
	Notes     string
	CreatedAt time.Time
}

func (DietLog) TableName() string { return "diet_logs" }

type MenstrualLog struct {
	ID          uint   `gorm:"primaryKey"`
	PeriodEvent string `gorm:"column:period_event;not null"`
	Date        string `gorm:"not null"`
	FlowLevel   string `gorm:"column:flow_level"`
	Notes       string
	CreatedAt   time.Time
}

func (MenstrualLog) TableName() string { return "menstrual_logs" }

// SymptomLog scores are on the server's 0-10 scale.
type SymptomLog struct {
	ID        uint   `gorm:"primaryKey"`
	Date      string `gorm:"not null"`
	Nausea    int    `gorm:"not null"`
	Fatigue   int    `gorm:"not null"`
	Pain      int    `gorm:"not null"`
	Notes     string
	CreatedAt time.Time
}

func (SymptomLog) TableName() string { return "symptoms_logs" }
