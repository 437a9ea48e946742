package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"conference-central/database"
	"conference-central/errors"
	"conference-central/service"
)

// Handler binds the HTTP surface to the domain services.
type Handler struct {
	Profiles      *service.ProfileService
	Conferences   *service.ConferenceService
	Sessions      *service.SessionService
	Registrations *service.RegistrationService
	Wishlists     *service.WishlistService
	Announcements *service.AnnouncementService

	store     database.Store
	jwtSecret string
	log       *zap.SugaredLogger
}

func New(profiles *service.ProfileService, conferences *service.ConferenceService,
	sessions *service.SessionService, registrations *service.RegistrationService,
	wishlists *service.WishlistService, announcements *service.AnnouncementService,
	store database.Store, jwtSecret string, log *zap.SugaredLogger) *Handler {
	return &Handler{
		Profiles:      profiles,
		Conferences:   conferences,
		Sessions:      sessions,
		Registrations: registrations,
		Wishlists:     wishlists,
		Announcements: announcements,
		store:         store,
		jwtSecret:     jwtSecret,
		log:           log,
	}
}

func sendJSON(c *fiber.Ctx, payload any) error {
	body, err := json.MarshalIndent(payload, "", "	")
	if err != nil {
		return errors.RaiseInternalServerError(c, "json serialization error: "+err.Error())
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(string(body))
}
