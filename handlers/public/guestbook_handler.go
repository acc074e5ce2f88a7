package handlers

import (
	"wildhearts.link/configs/configslog"
	"wildhearts.link/models"
	"wildhearts.link/pkg/flashmessages"
	"wildhearts.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const guestbookRedirect = "/#guestbook"

type guestbookInput struct {
	Name     string `json:"name" form:"name"`
	Message  string `json:"message" form:"message"`
	Location string `json:"location" form:"location"`
}

// GuestbookHandler ziyaretçi defterine not eklemeyi yönetir.
type GuestbookHandler struct {
	provider *services.WeddingProvider
}

func NewGuestbookHandler(provider *services.WeddingProvider) *GuestbookHandler {
	return &GuestbookHandler{provider: provider}
}

// Submit formdan ya da JSON gövdeden gelen notu ekler. JSON isteklere 201 ve
// kayıt, form isteklerine flash mesajlı yönlendirme döner.
func (h *GuestbookHandler) Submit(c *fiber.Ctx) error {
	wantsJSON := c.Is("json")

	var in guestbookInput
	if err := c.BodyParser(&in); err != nil {
		configslog.Log.Warn("Guestbook: gövde çözülemedi", zap.Error(err))
		if wantsJSON {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "We couldn't read that form. Please try again.")
		return c.Redirect(guestbookRedirect, fiber.StatusSeeOther)
	}

	created, err := h.provider.AppendGuestbookEntry(c.UserContext(), models.GuestbookEntry{
		Name:     in.Name,
		Message:  in.Message,
		Location: in.Location,
	})
	if err != nil {
		msg, status := submissionError(err)
		if wantsJSON {
			return c.Status(status).JSON(fiber.Map{"error": msg})
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		_ = flashmessages.SetFlashFormData(c, map[string]string{
			"name":     in.Name,
			"message":  in.Message,
			"location": in.Location,
		})
		return c.Redirect(guestbookRedirect, fiber.StatusSeeOther)
	}

	if wantsJSON {
		return c.Status(fiber.StatusCreated).JSON(created)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Thanks for signing our guestbook!")
	return c.Redirect(guestbookRedirect, fiber.StatusSeeOther)
}
