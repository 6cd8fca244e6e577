package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"endocare/internal/db"
	"endocare/internal/logging"
	"endocare/internal/services"
	"gorm.io/gorm"
)

// Handler carries the dependencies shared by all route handlers.
type Handler struct {
	db       *gorm.DB
	repos    *db.Repositories
	triggers *services.TriggerService
	insights *services.InsightService
	log      *logging.Logger
	now      func() time.Time
}

func NewHandler(database *gorm.DB, log *logging.Logger) *Handler {
	if log == nil {
		log = logging.NewNop()
	}
	repos := db.NewRepositories(database)
	triggers := services.NewTriggerService(repos.Sleep, repos.Diet, repos.Menstrual, repos.Symptoms)
	insights := services.NewInsightService(triggers, repos.Symptoms)
	return &Handler{
		db:       database,
		repos:    repos,
		triggers: triggers,
		insights: insights,
		log:      log,
		now:      time.Now,
	}
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}
