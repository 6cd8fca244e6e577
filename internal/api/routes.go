package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/health", handler.Health)

	app.Get("/get_all_sleep", handler.GetAllSleep)
	app.Post("/insert_sleep", handler.InsertSleep)
	app.Get("/get_all_diet", handler.GetAllDiet)
	app.Post("/insert_diet", handler.InsertDiet)
	app.Get("/get_all_menstrual", handler.GetAllMenstrual)
	app.Post("/insert_menstrual", handler.InsertMenstrual)
	app.Get("/get_all_symptoms", handler.GetAllSymptoms)
	app.Post("/insert_symptoms", handler.InsertSymptoms)

	app.Get("/find_triggers", handler.FindTriggers)
	app.Get("/seven_day_average", handler.SevenDayAverage)
	app.Get("/recommendations", handler.Recommendations)
	app.Get("/predict_flareups", handler.PredictFlareups)
}
