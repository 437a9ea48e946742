package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"conference-central/errors"
	"conference-central/middleware"
)

func (h *Handler) RegisterForConference(c *fiber.Ctx) error {
	// Params alias fasthttp's request buffer; the service stores this key.
	confID := utils.CopyString(c.Params("confId"))
	ok, err := h.Registrations.Register(c.Context(), middleware.Identity(c), confID)
	if err != nil {
		return errors.Raise(c, err)
	}
	return sendJSON(c, fiber.Map{"registered": ok})
}

func (h *Handler) UnregisterFromConference(c *fiber.Ctx) error {
	ok, err := h.Registrations.Unregister(c.Context(), middleware.Identity(c), c.Params("confId"))
	if err != nil {
		return errors.Raise(c, err)
	}
	return sendJSON(c, fiber.Map{"registered": ok})
}

func (h *Handler) GetConferencesToAttend(c *fiber.Ctx) error {
	views, err := h.Registrations.ConferencesToAttend(c.Context(), middleware.Identity(c))
	if err != nil {
		return errors.Raise(c, err)
	}
	return sendJSON(c, views)
}
