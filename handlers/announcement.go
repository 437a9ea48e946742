package handlers

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetAnnouncement(c *fiber.Ctx) error {
	return sendJSON(c, fiber.Map{"announcement": h.Announcements.Announcement(c.Context())})
}

func (h *Handler) GetFeaturedSpeaker(c *fiber.Ctx) error {
	return sendJSON(c, h.Announcements.FeaturedSpeakers(c.Context()))
}
