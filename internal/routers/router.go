package routers

import (
	"Tecnofit/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	SetupExerciseRouter(app, server)
	SetupTrainingRouter(app, server)
	SetupUserRouter(app, server)
	SetupJanitorRouter(app, server)
}
