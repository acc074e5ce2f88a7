package routes

import (
	admin_handlers "wildhearts.link/handlers/admin"
	"wildhearts.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerAdminRoutes /admin altındaki rotaları tanımlar. /admin ve /admin/login
// herkese açıktır; geri kalanı oturum ister.
func registerAdminRoutes(app *fiber.App, deps Dependencies) {
	panelHandler := admin_handlers.NewPanelHandler(deps.Provider)
	authHandler := admin_handlers.NewAuthHandler(deps.AuthService, panelHandler)

	adminGroup := app.Group("/admin")
	adminGroup.Get("", authHandler.ShowAdmin)
	adminGroup.Post("/login", middlewares.GuestMiddleware, authHandler.Login)

	protected := adminGroup.Group("", middlewares.AuthMiddleware(deps.AuthService))
	protected.Post("/logout", authHandler.Logout)
	protected.Get("/rsvps", panelHandler.ListRSVPs)
	protected.Get("/guestbook", panelHandler.ListGuestbook)
	protected.Post("/reload", panelHandler.Reload)
	protected.Post("/content", panelHandler.UpdateContent)
	protected.Put("/api/content", panelHandler.ReplaceContentJSON)
}
