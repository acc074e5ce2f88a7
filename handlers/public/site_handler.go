package handlers

import (
	"time"

	"wildhearts.link/configs/configslog"
	"wildhearts.link/pkg/countdown"
	"wildhearts.link/pkg/flashmessages"
	"wildhearts.link/pkg/renderer"
	"wildhearts.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SiteHandler ana sayfayı ve herkese açık JSON uç noktalarını sunar.
type SiteHandler struct {
	provider *services.WeddingProvider
	now      func() time.Time
}

// NewSiteHandler yeni bir SiteHandler örneği oluşturur.
func NewSiteHandler(provider *services.WeddingProvider) *SiteHandler {
	return &SiteHandler{provider: provider, now: time.Now}
}

// Home düğün sitesini tüm bölümleriyle render eder.
func (h *SiteHandler) Home(c *fiber.Ctx) error {
	content := h.provider.Content()
	remaining, err := countdown.Until(h.now(), content.WeddingDate)
	if err != nil {
		configslog.Log.Warn("Geri sayım hesaplanamadı", zap.String("weddingDate", content.WeddingDate), zap.Error(err))
	}

	renderData := fiber.Map{
		"Title":     content.CoupleNames.Partner1 + " & " + content.CoupleNames.Partner2,
		"Content":   content,
		"Countdown": remaining,
		"Guestbook": h.provider.Guestbook(),
		"FormData":  flashmessages.GetFlashFormData(c),
	}
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "public/home", "layouts/public_layout", renderData)
}

// Content birleştirilmiş düğün içeriğini JSON olarak döndürür.
func (h *SiteHandler) Content(c *fiber.Ctx) error {
	return c.JSON(h.provider.Content())
}

// Countdown düğüne kalan süreyi döndürür. Ana sayfa bunu saniyede bir sorgular.
func (h *SiteHandler) Countdown(c *fiber.Ctx) error {
	content := h.provider.Content()
	remaining, err := countdown.Until(h.now(), content.WeddingDate)
	if err != nil {
		configslog.Log.Warn("Geri sayım hesaplanamadı", zap.String("weddingDate", content.WeddingDate), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "wedding date is not a valid YYYY-MM-DD date"})
	}
	return c.JSON(remaining)
}

// Guestbook ziyaretçi defterini en yeniden eskiye döndürür.
func (h *SiteHandler) Guestbook(c *fiber.Ctx) error {
	return c.JSON(h.provider.Guestbook())
}

// RSVPStats sadece toplam sayıları döndürür; isim ve e-posta paylaşılmaz.
func (h *SiteHandler) RSVPStats(c *fiber.Ctx) error {
	return c.JSON(h.provider.RSVPStats())
}

// Healthz süreç ayakta mı ve son liste yüklemeleri başarılı mı bilgisini verir.
func (h *SiteHandler) Healthz(c *fiber.Ctx) error {
	status := fiber.Map{"status": "ok"}
	for _, kind := range []services.SubmissionKind{services.KindRSVP, services.KindGuestbook} {
		if err := h.provider.LastLoadError(kind); err != nil {
			status["status"] = "degraded"
			status[string(kind)] = err.Error()
		}
	}
	return c.JSON(status)
}

// NotFound eşleşmeyen istekleri karşılar.
func NotFound(c *fiber.Ctx) error {
	if c.Accepts("application/json", "text/html") == "application/json" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return renderNotFound(c, "The trail ends here.")
}

func renderNotFound(c *fiber.Ctx, message string) error {
	return renderer.Render(c, "errors/404", "layouts/error_layout", fiber.Map{
		"Title":   "Not Found",
		"Message": message,
	}, fiber.StatusNotFound)
}

func renderError(c *fiber.Ctx, message string) error {
	return renderer.Render(c, "errors/500", "layouts/error_layout", fiber.Map{
		"Title":   "Something Went Wrong",
		"Message": message,
	}, fiber.StatusInternalServerError)
}
