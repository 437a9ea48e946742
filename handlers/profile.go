package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"conference-central/errors"
	"conference-central/middleware"
	"conference-central/model"
)

func (h *Handler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.Profiles.GetOrCreate(c.Context(), middleware.Identity(c))
	if err != nil {
		return errors.Raise(c, err)
	}
	return sendJSON(c, profile)
}

func (h *Handler) SaveProfile(c *fiber.Ctx) error {
	form := new(model.ProfileForm)
	if jsonErr := c.BodyParser(form); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable profile parameters: %v", jsonErr))
	}

	profile, err := h.Profiles.Save(c.Context(), middleware.Identity(c), *form)
	if err != nil {
		return errors.Raise(c, err)
	}
	return sendJSON(c, profile)
}
