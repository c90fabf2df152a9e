package handlers

import (
	"Tecnofit/internal/repository"
	"Tecnofit/internal/services"
	"errors"
	"github.com/gofiber/fiber/v2"
	"net/http"
	"strconv"
)

func errorStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrUnknownField),
		errors.Is(err, repository.ErrInvalidValue),
		errors.Is(err, services.ErrInvalidRole):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrPurgeInProgress):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(map[string]interface{}{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": message})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}
