package handlers

import (
	"Tecnofit/internal/mapper"
	"Tecnofit/internal/repository"
	"Tecnofit/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type TrainingHandler struct {
	service services.TrainingService
}

func NewTrainingHandler(service services.TrainingService) *TrainingHandler {
	return &TrainingHandler{service: service}
}

func (h *TrainingHandler) ListTrainings(c *fiber.Ctx) error {
	page, err := h.service.ListTrainings(c.UserContext(), repository.SearchCriteria(c.Queries()))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapper.ToPageDTO(page))
}

func (h *TrainingHandler) GetTraining(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid training ID")
	}

	training, err := h.service.GetTraining(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(training)
}

func (h *TrainingHandler) CreateTraining(c *fiber.Ctx) error {
	var req repository.Attributes
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}
	if name, _ := req["name"].(string); name == "" {
		return badRequest(c, "name is required")
	}

	training, err := h.service.CreateTraining(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(training)
}

func (h *TrainingHandler) UpdateTraining(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid training ID")
	}

	var req repository.Attributes
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}

	training, err := h.service.UpdateTraining(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(training)
}

func (h *TrainingHandler) DeleteTraining(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid training ID")
	}

	if err := h.service.DeleteTraining(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
