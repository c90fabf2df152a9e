package routers

import (
	"Tecnofit/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupExerciseRouter(app *fiber.App, server *cmd.Server) {
	exerciseHandler := server.ExerciseHandler
	app.Get("/exercises", exerciseHandler.ListExercises)
	app.Post("/exercises", exerciseHandler.CreateExercise)
	app.Post("/exercises/bulk", exerciseHandler.CreateExercises)
	app.Get("/exercises/:id", exerciseHandler.GetExercise)
	app.Put("/exercises/:id", exerciseHandler.UpdateExercise)
	app.Delete("/exercises/:id", exerciseHandler.DeleteExercise)
	app.Delete("/trainings/:id/exercises", exerciseHandler.DeleteTrainingExercises)
}
