package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"conference-central/errors"
	"conference-central/middleware"
)

func (h *Handler) AddSessionToWishlist(c *fiber.Ctx) error {
	// Params alias fasthttp's request buffer; the service stores this key.
	sessionID := utils.CopyString(c.Params("sessionId"))
	ok, err := h.Wishlists.Add(c.Context(), middleware.Identity(c), sessionID)
	if err != nil {
		return errors.Raise(c, err)
	}
	return sendJSON(c, fiber.Map{"added": ok})
}

func (h *Handler) RemoveSessionFromWishlist(c *fiber.Ctx) error {
	ok, err := h.Wishlists.Remove(c.Context(), middleware.Identity(c), c.Params("sessionId"))
	if err != nil {
		return errors.Raise(c, err)
	}
	return sendJSON(c, fiber.Map{"removed": ok})
}

func (h *Handler) GetSessionsInWishlist(c *fiber.Ctx) error {
	sessions, err := h.Wishlists.Sessions(c.Context(), middleware.Identity(c))
	if err != nil {
		return errors.Raise(c, err)
	}
	return sendJSON(c, sessions)
}
