package configs

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const SessionCookieName = "wildhearts_session"

// SetupSession cookie tabanlı oturum deposunu oluşturur.
// Depo bellekte tutulur; süreç yeniden başlarsa oturumlar düşer.
func SetupSession() *session.Store {
	return session.New(session.Config{
		KeyLookup:      "cookie:" + SessionCookieName,
		Expiration:     time.Duration(GetEnvInt("SESSION_EXPIRATION_HOURS", 24)) * time.Hour,
		CookieHTTPOnly: true,
		CookieSecure:   GetEnvBool("SESSION_SECURE", false),
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
}
