package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) FindTriggers(c *fiber.Ctx) error {
	summary, err := handler.triggers.BuildSummary()
	if err != nil {
		handler.log.Error("build trigger summary failed", "error", err)
		return apiError(c, fiber.StatusInternalServerError, "Failed to analyze triggers")
	}
	return c.JSON(summary)
}

func (handler *Handler) SevenDayAverage(c *fiber.Ctx) error {
	average, err := handler.insights.SevenDayAverage(handler.now())
	if err != nil {
		handler.log.Error("seven day average failed", "error", err)
		return apiError(c, fiber.StatusInternalServerError, "Failed to compute averages")
	}
	return c.JSON(average)
}

func (handler *Handler) Recommendations(c *fiber.Ctx) error {
	recommendations, err := handler.insights.Recommendations()
	if err != nil {
		handler.log.Error("build recommendations failed", "error", err)
		return apiError(c, fiber.StatusInternalServerError, "Failed to build recommendations")
	}
	return c.JSON(recommendations)
}

func (handler *Handler) PredictFlareups(c *fiber.Ctx) error {
	prediction, err := handler.insights.PredictFlareups(handler.now())
	if err != nil {
		handler.log.Error("flareup prediction failed", "error", err)
		return apiError(c, fiber.StatusInternalServerError, "Failed to predict flareups")
	}
	return c.JSON(prediction)
}
