package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"conference-central/handlers"
	"conference-central/middleware"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler, jwtSecret string) {
	api := app.Group("/", logger.New())
	auth := middleware.Authorize(jwtSecret)

	//Login
	api.Post("/login", h.Login)

	//Announcements (derived, cache-backed, public)
	api.Get("/conference/announcement", h.GetAnnouncement)
	api.Get("/speaker/featured", h.GetFeaturedSpeaker)

	//Profile
	api.Get("/profile", auth, h.GetProfile)
	api.Post("/profile", auth, h.SaveProfile)

	//Conference
	api.Post("/conferences/query", h.QueryConferences)
	api.Get("/conferences/created", auth, h.GetConferencesCreated)
	api.Get("/conferences/attending", auth, h.GetConferencesToAttend)
	api.Post("/conference", auth, h.CreateConference)
	api.Get("/conference/:confId", h.GetConference)
	api.Put("/conference/:confId", auth, h.UpdateConference)

	//Registration
	api.Post("/conference/:confId/registration", auth, h.RegisterForConference)
	api.Delete("/conference/:confId/registration", auth, h.UnregisterFromConference)

	//Session
	api.Post("/conference/:confId/sessions", auth, h.CreateSession)
	api.Get("/conference/:confId/sessions", h.GetConferenceSessions)
	api.Get("/conference/:confId/sessions/type/:type", h.GetConferenceSessionsByType)
	api.Get("/sessions/speaker/:speaker", h.GetSessionsBySpeaker)

	//Wishlist
	api.Get("/wishlist", auth, h.GetSessionsInWishlist)
	api.Post("/wishlist/:sessionId", auth, h.AddSessionToWishlist)
	api.Delete("/wishlist/:sessionId", auth, h.RemoveSessionFromWishlist)
}
