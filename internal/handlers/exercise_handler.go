package handlers

import (
	"Tecnofit/internal/mapper"
	"Tecnofit/internal/repository"
	"Tecnofit/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type ExerciseHandler struct {
	service services.ExerciseService
}

func NewExerciseHandler(service services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

// ListExercises filters on every query parameter except page and per_page.
// A comma separated value matches any of its parts.
func (h *ExerciseHandler) ListExercises(c *fiber.Ctx) error {
	page, err := h.service.ListExercises(c.UserContext(), repository.SearchCriteria(c.Queries()))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapper.ToPageDTO(page))
}

func (h *ExerciseHandler) GetExercise(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid exercise ID")
	}

	exercise, err := h.service.GetExercise(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(exercise)
}

func (h *ExerciseHandler) CreateExercise(c *fiber.Ctx) error {
	var req repository.Attributes
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}
	if name, _ := req["name"].(string); name == "" {
		return badRequest(c, "name is required")
	}
	if _, ok := req["training_id"]; !ok {
		return badRequest(c, "training_id is required")
	}

	exercise, err := h.service.CreateExercise(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(exercise)
}

func (h *ExerciseHandler) CreateExercises(c *fiber.Ctx) error {
	var req []repository.Attributes
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}
	if len(req) == 0 {
		return badRequest(c, "at least one exercise is required")
	}

	if err := h.service.CreateExercises(c.UserContext(), req); err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(map[string]interface{}{"inserted": len(req)})
}

func (h *ExerciseHandler) UpdateExercise(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid exercise ID")
	}

	var req repository.Attributes
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}

	exercise, err := h.service.UpdateExercise(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(exercise)
}

func (h *ExerciseHandler) DeleteExercise(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid exercise ID")
	}

	if err := h.service.DeleteExercise(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *ExerciseHandler) DeleteTrainingExercises(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid training ID")
	}

	deleted, err := h.service.DeleteExercisesByTraining(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(map[string]interface{}{"deleted": deleted})
}
