package handlers

import (
	"errors"
	"strconv"
	"strings"

	"wildhearts.link/configs/configslog"
	"wildhearts.link/models"
	"wildhearts.link/pkg/flashmessages"
	"wildhearts.link/pkg/renderer"
	"wildhearts.link/services"
	"wildhearts.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const adminLayout = "layouts/admin_layout"

// contentForm admin içerik formundaki alanlar. Zaman çizelgesi ve galeri
// JSON uç noktasından düzenlenir.
type contentForm struct {
	Partner1        string `form:"partner1"`
	Partner2        string `form:"partner2"`
	WeddingDate     string `form:"weddingDate"`
	HeroQuote       string `form:"heroQuote"`
	LocationName    string `form:"locationName"`
	LocationAddress string `form:"locationAddress"`
	Elevation       string `form:"elevation"`
	Lat             string `form:"lat"`
	Lng             string `form:"lng"`
	StoryTitle      string `form:"storyTitle"`
	StoryContent    string `form:"storyContent"`
	PlaylistTitle   string `form:"playlistTitle"`
	PlaylistURL     string `form:"playlistUrl"`
	GearList        string `form:"gearList"`
}

// PanelHandler admin paneli sayfalarını ve içerik kaydını yönetir.
type PanelHandler struct {
	provider *services.WeddingProvider
}

func NewPanelHandler(provider *services.WeddingProvider) *PanelHandler {
	return &PanelHandler{provider: provider}
}

func (h *PanelHandler) baseData(c *fiber.Ctx, title, tab string) fiber.Map {
	renderData := fiber.Map{
		"Title":          title,
		"ActiveTab":      tab,
		"Stats":          h.provider.RSVPStats(),
		"GuestbookCount": len(h.provider.Guestbook()),
	}
	if err := h.provider.LastLoadError(services.KindRSVP); err != nil {
		renderData["RSVPLoadError"] = "RSVP responses could not be loaded. The list may be incomplete."
	}
	if err := h.provider.LastLoadError(services.KindGuestbook); err != nil {
		renderData["GuestbookLoadError"] = "Guestbook entries could not be loaded. The list may be incomplete."
	}
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderer.SetFlashMessages(renderData, flashData)
	return renderData
}

// Dashboard içerik düzenleme sekmesini gösterir.
func (h *PanelHandler) Dashboard(c *fiber.Ctx) error {
	content := h.provider.Content()
	renderData := h.baseData(c, "Wild Hearts Admin", "content")
	renderData["Content"] = content
	renderData["GearListText"] = strings.Join(content.GearList, "\n")
	return renderer.Render(c, "admin/panel", adminLayout, renderData)
}

// ListRSVPs LCV yanıtlarını gösterir.
func (h *PanelHandler) ListRSVPs(c *fiber.Ctx) error {
	renderData := h.baseData(c, "RSVP Responses", "rsvps")
	renderData["RSVPs"] = h.provider.RSVPs()
	return renderer.Render(c, "admin/rsvps", adminLayout, renderData)
}

// ListGuestbook ziyaretçi notlarını gösterir.
func (h *PanelHandler) ListGuestbook(c *fiber.Ctx) error {
	renderData := h.baseData(c, "Guestbook Entries", "guestbook")
	renderData["Entries"] = h.provider.Guestbook()
	return renderer.Render(c, "admin/guestbook", adminLayout, renderData)
}

// Reload listeleri depolamadan yeniden okur.
func (h *PanelHandler) Reload(c *fiber.Ctx) error {
	rsvps, guestbook := h.provider.ReloadSubmissions(c.UserContext())
	if rsvps.OK() && guestbook.OK() {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Lists refreshed.")
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Some lists could not be refreshed. Showing the last loaded data.")
	}
	back := c.Get(fiber.HeaderReferer)
	if !strings.HasPrefix(back, c.BaseURL()+"/admin") {
		back = "/admin/rsvps"
	}
	return c.Redirect(back, fiber.StatusSeeOther)
}

func parseCoordinate(raw string, fallback float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// UpdateContent içerik formunu mevcut içerik üzerine uygular ve kaydeder.
func (h *PanelHandler) UpdateContent(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return c.Redirect("/admin")
	}

	var form contentForm
	if err := c.BodyParser(&form); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "The form could not be read.")
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	current := h.provider.Content()
	lat, latErr := parseCoordinate(form.Lat, current.Location.Coordinates.Lat)
	lng, lngErr := parseCoordinate(form.Lng, current.Location.Coordinates.Lng)
	if latErr != nil || lngErr != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Coordinates must be decimal numbers.")
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	content := models.NewContentEdit(current).
		Partner1(form.Partner1).
		Partner2(form.Partner2).
		WeddingDate(form.WeddingDate).
		HeroQuote(form.HeroQuote).
		LocationName(form.LocationName).
		LocationAddress(form.LocationAddress).
		Elevation(form.Elevation).
		Coordinates(lat, lng).
		StoryTitle(form.StoryTitle).
		StoryContent(form.StoryContent).
		PlaylistTitle(form.PlaylistTitle).
		PlaylistURL(form.PlaylistURL).
		GearList(form.GearList).
		Build()

	if err := h.provider.ReplaceContent(c.UserContext(), content, userID); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, contentErrorMessage(err))
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Changes saved successfully!")
	return c.Redirect("/admin", fiber.StatusSeeOther)
}

// ReplaceContentJSON PUT /admin/api/content: gövde içeriğin tamamıdır. Eksik üst
// seviye alanlar varsayılanlardan gelir.
func (h *PanelHandler) ReplaceContentJSON(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	content, err := models.MergeOverDefaults(c.Body())
	if err != nil {
		configslog.Log.Warn("Admin içerik JSON'u çözülemedi", zap.Uint("userID", userID), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "body must be a JSON object"})
	}
	if err := h.provider.ReplaceContent(c.UserContext(), content, userID); err != nil {
		status := fiber.StatusServiceUnavailable
		if errors.Is(err, services.ErrContentInvalid) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(fiber.Map{"error": contentErrorMessage(err)})
	}
	return c.JSON(h.provider.Content())
}

func contentErrorMessage(err error) string {
	if errors.Is(err, services.ErrContentInvalid) {
		return "The wedding date must be a valid date (YYYY-MM-DD)."
	}
	return "Error saving changes. Your previous content is still live."
}
