package routes

import (
	public_handlers "wildhearts.link/handlers/public"

	"github.com/gofiber/fiber/v2"
)

// registerPublicRoutes ziyaretçilere açık sayfa ve JSON rotalarını tanımlar.
func registerPublicRoutes(app *fiber.App, deps Dependencies) {
	siteHandler := public_handlers.NewSiteHandler(deps.Provider)
	guestbookHandler := public_handlers.NewGuestbookHandler(deps.Provider)
	rsvpHandler := public_handlers.NewRSVPHandler(deps.Provider, deps.Config)

	app.Get("/", siteHandler.Home)
	app.Get("/healthz", siteHandler.Healthz)

	api := app.Group("/api")
	api.Get("/content", siteHandler.Content)
	api.Get("/countdown", siteHandler.Countdown)
	api.Get("/guestbook", siteHandler.Guestbook)
	api.Get("/rsvps/stats", siteHandler.RSVPStats)

	app.Post("/guestbook", guestbookHandler.Submit)

	rsvp := app.Group("/rsvp")
	rsvp.Get("", rsvpHandler.Show)
	rsvp.Post("/next", rsvpHandler.Next)
	rsvp.Post("/back", rsvpHandler.Back)
	rsvp.Post("/submit", rsvpHandler.Submit)
	rsvp.Get("/thanks", rsvpHandler.Thanks)
}
