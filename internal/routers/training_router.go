package routers

import (
	"Tecnofit/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupTrainingRouter(app *fiber.App, server *cmd.Server) {
	trainingHandler := server.TrainingHandler
	app.Get("/trainings", trainingHandler.ListTrainings)
	app.Post("/trainings", trainingHandler.CreateTraining)
	app.Get("/trainings/:id", trainingHandler.GetTraining)
	app.Put("/trainings/:id", trainingHandler.UpdateTraining)
	app.Delete("/trainings/:id", trainingHandler.DeleteTraining)
}
