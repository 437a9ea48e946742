package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"conference-central/errors"
	"conference-central/middleware"
	"conference-central/model"
	"conference-central/query"
)

func (h *Handler) CreateConference(c *fiber.Ctx) error {
	form := new(model.ConferenceForm)
	if jsonErr := c.BodyParser(form); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable conference parameters: %v", jsonErr))
	}

	view, err := h.Conferences.Create(c.Context(), middleware.Identity(c), *form)
	if err != nil {
		return errors.Raise(c, err)
	}
	return sendJSON(c, view)
}

func (h *Handler) UpdateConference(c *fiber.Ctx) error {
	form := new(model.ConferenceUpdateForm)
	if jsonErr := c.BodyParser(form); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable conference parameters: %v", jsonErr))
	}

	view, err := h.Conferences.Update(c.Context(), middleware.Identity(c), c.Params("confId"), *form)
	if err != nil {
		return errors.Raise(c, err)
	}
	return sendJSON(c, view)
}

func (h *Handler) GetConference(c *fiber.Ctx) error {
	view, err := h.Conferences.Get(c.Context(), c.Params("confId"))
	if err != nil {
		return errors.Raise(c, err)
	}
	return sendJSON(c, view)
}

func (h *Handler) GetConferencesCreated(c *fiber.Ctx) error {
	views, err := h.Conferences.CreatedBy(c.Context(), middleware.Identity(c))
	if err != nil {
		return errors.Raise(c, err)
	}
	return sendJSON(c, views)
}

func (h *Handler) QueryConferences(c *fiber.Ctx) error {
	var req struct {
		Filters []query.Filter `json:"filters"`
	}
	if jsonErr := c.BodyParser(&req); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable query filters: %v", jsonErr))
	}

	views, err := h.Conferences.Query(c.Context(), req.Filters)
	if err != nil {
		return errors.Raise(c, err)
	}
	return sendJSON(c, views)
}
