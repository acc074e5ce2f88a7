package routes

import (
	"wildhearts.link/configs"
	public_handlers "wildhearts.link/handlers/public"
	"wildhearts.link/middlewares"
	"wildhearts.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Dependencies rotaların ihtiyaç duyduğu, main içinde bir kez kurulan bileşenler.
type Dependencies struct {
	Provider     *services.WeddingProvider
	AuthService  services.IAuthService
	SessionStore *session.Store
	Config       configs.AppConfig
	// RequestLogging false ise istek logu basılmaz (testler için).
	RequestLogging bool
}

// NewApp uygulamanın fiber örneğini oluşturur. Immutable açıktır: BodyParser'dan
// gelen değerler provider'ın bellekteki listelerinde saklandığı için istek
// tamponlarına bağlı kalmamalıdır.
func NewApp(views fiber.Views, cfg configs.AppConfig) *fiber.App {
	return fiber.New(fiber.Config{
		Views:        views,
		AppName:      "Wild Hearts",
		Immutable:    true,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New())
	if deps.RequestLogging {
		app.Use(logger.New())
	}
	app.Use(middlewares.SessionMiddleware(deps.SessionStore))

	// --- Rota Grupları ---
	registerPublicRoutes(app, deps)
	registerAdminRoutes(app, deps)

	// --- 404 Handler ---
	app.Use(public_handlers.NotFound)
}
