package db

import (
	"endocare/internal/models"
	"gorm.io/gorm"
)

type SleepLogRepository struct {
	database *gorm.DB
}

func NewSleepLogRepository(database *gorm.DB) *SleepLogRepository {
	return &SleepLogRepository{database: database}
}

func (repo *SleepLogRepository) ListAll() ([]models.SleepLog, error) {
	logs := make([]models.SleepLog, 0)
	if err := repo.database.Order("date DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *SleepLogRepository) Insert(entry *models.SleepLog) error {
	return repo.database.Create(entry).Error
}

type DietLogRepository struct {
	database *gorm.DB
}

func NewDietLogRepository(database *gorm.DB) *DietLogRepository {
	return &DietLogRepository{database: database}
}

func (repo *DietLogRepository) ListAll() ([]models.DietLog, error) {
	logs := make([]models.DietLog, 0)
	if err := repo.database.Order("date DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DietLogRepository) Insert(entry *models.DietLog) error {
	return repo.database.Create(entry).Error
}

type MenstrualLogRepository struct {
	database *gorm.DB
}

func NewMenstrualLogRepository(database *gorm.DB) *MenstrualLogRepository {
	return &MenstrualLogRepository{database: database}
}

func (repo *MenstrualLogRepository) ListAll() ([]models.MenstrualLog, error) {
	logs := make([]models.MenstrualLog, 0)
	if err := repo.database.Order("date DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *MenstrualLogRepository) Insert(entry *models.MenstrualLog) error {
	return repo.database.Create(entry).Error
}

type SymptomLogRepository struct {
	database *gorm.DB
}

func NewSymptomLogRepository(database *gorm.DB) *SymptomLogRepository {
	return &SymptomLogRepository{database: database}
}

func (repo *SymptomLogRepository) ListAll() ([]models.SymptomLog, error) {
	logs := make([]models.SymptomLog, 0)
	if err := repo.database.Order("date DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *SymptomLogRepository) Insert(entry *models.SymptomLog) error {
	return repo.database.Create(entry).Error
}
