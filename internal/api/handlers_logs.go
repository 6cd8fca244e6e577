package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"endocare/internal/models"
)

// Read endpoints never fail the client: a storage error degrades to an
// empty list, matching the contract the mobile client was built against.

func (handler *Handler) GetAllSleep(c *fiber.Ctx) error {
	entries, err := handler.repos.Sleep.ListAll()
	if err != nil {
		handler.log.Error("list sleep logs failed", "error", err)
		return c.JSON([]sleepRecord{})
	}
	records := make([]sleepRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, sleepRecordFromModel(entry))
	}
	return c.JSON(records)
}

func (handler *Handler) InsertSleep(c *fiber.Ctx) error {
	var request insertSleepRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if !request.validate() {
		return apiError(c, fiber.StatusBadRequest, "Missing required fields")
	}

	entry := models.SleepLog{
		Date:        request.Date,
		Duration:    *request.Duration,
		Quality:     *request.Quality,
		Disruptions: request.Disruptions,
		Notes:       request.Notes,
	}
	if err := handler.repos.Sleep.Insert(&entry); err != nil {
		handler.log.Error("insert sleep log failed", "error", err)
		return apiError(c, fiber.StatusInternalServerError, "Failed to insert sleep log")
	}
	return c.Status(fiber.StatusCreated).JSON(sleepRecordFromModel(entry))
}

func (handler *Handler) GetAllDiet(c *fiber.Ctx) error {
	entries, err := handler.repos.Diet.ListAll()
	if err != nil {
		handler.log.Error("list diet logs failed", "error", err)
		return c.JSON([]dietRecord{})
	}
	records := make([]dietRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, dietRecordFromModel(entry))
	}
	return c.JSON(records)
}

func (handler *Handler) InsertDiet(c *fiber.Ctx) error {
	var request insertDietRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if !request.validate() {
		return apiError(c, fiber.StatusBadRequest, "Missing required fields")
	}

	entry := models.DietLog{
		Meal:  request.Meal,
		Date:  request.Date,
		Items: strings.Join(request.Items, ","),
		Notes: request.Notes,
	}
	if err := handler.repos.Diet.Insert(&entry); err != nil {
		handler.log.Error("insert diet log failed", "error", err)
		return apiError(c, fiber.StatusInternalServerError, "Failed to insert diet log")
	}
	return c.Status(fiber.StatusCreated).JSON(dietRecordFromModel(entry))
}

func (handler *Handler) GetAllMenstrual(c *fiber.Ctx) error {
	entries, err := handler.repos.Menstrual.ListAll()
	if err != nil {
		handler.log.Error("list menstrual logs failed", "error", err)
		return c.JSON([]menstrualRecord{})
	}
	records := make([]menstrualRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, menstrualRecordFromModel(entry))
	}
	return c.JSON(records)
}

func (handler *Handler) InsertMenstrual(c *fiber.Ctx) error {
	var request insertMenstrualRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if !request.validate() {
		return apiError(c, fiber.StatusBadRequest, "Missing required fields")
	}

	entry := models.MenstrualLog{
		PeriodEvent: request.PeriodEvent,
		Date:        request.Date,
		FlowLevel:   request.FlowLevel,
		Notes:       request.Notes,
	}
	if err := handler.repos.Menstrual.Insert(&entry); err != nil {
		handler.log.Error("insert menstrual log failed", "error", err)
		return apiError(c, fiber.StatusInternalServerError, "Failed to insert menstrual log")
	}
	return c.Status(fiber.StatusCreated).JSON(menstrualRecordFromModel(entry))
}

func (handler *Handler) GetAllSymptoms(c *fiber.Ctx) error {
	entries, err := handler.repos.Symptoms.ListAll()
	if err != nil {
		handler.log.Error("list symptom logs failed", "error", err)
		return c.JSON([]symptomRecord{})
	}
	records := make([]symptomRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, symptomRecordFromModel(entry))
	}
	return c.JSON(records)
}

func (handler *Handler) InsertSymptoms(c *fiber.Ctx) error {
	var request insertSymptomsRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if !request.validate() {
		return apiError(c, fiber.StatusBadRequest, "Missing required fields")
	}

	entry := models.SymptomLog{
		Date:    request.Date,
		Nausea:  *request.Nausea,
		Fatigue: *request.Fatigue,
		Pain:    *request.Pain,
		Notes:   request.Notes,
	}
	if err := handler.repos.Symptoms.Insert(&entry); err != nil {
		handler.log.Error("insert symptom log failed", "error", err)
		return apiError(c, fiber.StatusInternalServerError, "Failed to insert symptoms log")
	}
	return c.Status(fiber.StatusCreated).JSON(symptomRecordFromModel(entry))
}
