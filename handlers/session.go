package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"conference-central/errors"
	"conference-central/middleware"
	"conference-central/model"
)

func (h *Handler) CreateSession(c *fiber.Ctx) error {
	form := new(model.SessionForm)
	if jsonErr := c.BodyParser(form); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable session parameters: %v", jsonErr))
	}

	// Params alias fasthttp's request buffer; the service stores this key.
	confID := utils.CopyString(c.Params("confId"))
	session, err := h.Sessions.Create(c.Context(), middleware.Identity(c), confID, *form)
	if err != nil {
		return errors.Raise(c, err)
	}
	return sendJSON(c, session)
}

func (h *Handler) GetConferenceSessions(c *fiber.Ctx) error {
	sessions, err := h.Sessions.ByConference(c.Context(), c.Params("confId"))
	if err != nil {
		return errors.Raise(c, err)
	}
	return sendJSON(c, sessions)
}

func (h *Handler) GetConferenceSessionsByType(c *fiber.Ctx) error {
	sessions, err := h.Sessions.ByConferenceAndType(c.Context(), c.Params("confId"), c.Params("type"))
	if err != nil {
		return errors.Raise(c, err)
	}
	return sendJSON(c, sessions)
}

func (h *Handler) GetSessionsBySpeaker(c *fiber.Ctx) error {
	sessions, err := h.Sessions.BySpeaker(c.Context(), c.Params("speaker"))
	if err != nil {
		return errors.Raise(c, err)
	}
	return sendJSON(c, sessions)
}
