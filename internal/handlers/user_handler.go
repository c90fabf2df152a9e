package handlers

import (
	"Tecnofit/internal/repository"
	"Tecnofit/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req repository.Attributes
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}
	if email, _ := req["email"].(string); email == "" {
		return badRequest(c, "email is required")
	}
	role, _ := req["role"].(string)

	user, err := h.service.CreateUser(c.UserContext(), req, role)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(user)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid user ID")
	}

	user, err := h.service.GetUser(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) ListCustomers(c *fiber.Ctx) error {
	customers, err := h.service.ListCustomers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customers)
}
