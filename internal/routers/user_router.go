package routers

import (
	"Tecnofit/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupUserRouter(app *fiber.App, server *cmd.Server) {
	userHandler := server.UserHandler
	app.Get("/users/customers", userHandler.ListCustomers)
	app.Post("/users", userHandler.CreateUser)
	app.Get("/users/:id", userHandler.GetUser)
}
