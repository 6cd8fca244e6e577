package db

import "gorm.io/gorm"

type Repositories struct {
	Sleep     *SleepLogRepository
	Diet      *DietLogRepository
	Menstrual *MenstrualLogRepository
	Symptoms  *SymptomLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Sleep:     NewSleepLogRepository(database),
		Diet:      NewDietLogRepository(database),
		Menstrual: NewMenstrualLogRepository(database),
		Symptoms:  NewSymptomLogRepository(database),
	}
}
