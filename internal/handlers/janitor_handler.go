package handlers

import (
	"Tecnofit/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type Purge interface {
	ForcePurge() error
}

type JanitorHandler struct {
	purger Purge
}

func NewJanitorHandler(purger *services.Purger) *JanitorHandler {
	return &JanitorHandler{purger: purger}
}

func (h *JanitorHandler) ForcePurge(c *fiber.Ctx) error {
	if err := h.purger.ForcePurge(); err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{})
}
