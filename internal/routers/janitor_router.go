package routers

import (
	"Tecnofit/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupJanitorRouter(app *fiber.App, server *cmd.Server) {
	app.Post("/janitor/purge", server.JanitorHandler.ForcePurge)
}
