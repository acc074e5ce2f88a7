package handlers

import (
	"errors"
	"net/url"

	"wildhearts.link/configs"
	"wildhearts.link/configs/configslog"
	"wildhearts.link/pkg/flashmessages"
	"wildhearts.link/pkg/renderer"
	"wildhearts.link/pkg/rsvpwizard"
	"wildhearts.link/services"
	"wildhearts.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	wizardSessionKey = "rsvp_wizard"
	rsvpPath         = "/rsvp"
)

// RSVPHandler dört adımlı LCV sihirbazını sunucu tarafında yürütür.
// Sihirbazın durumu ziyaretçinin oturumunda tutulur.
type RSVPHandler struct {
	provider *services.WeddingProvider
	cfg      configs.AppConfig
}

func NewRSVPHandler(provider *services.WeddingProvider, cfg configs.AppConfig) *RSVPHandler {
	return &RSVPHandler{provider: provider, cfg: cfg}
}

func loadWizard(c *fiber.Ctx) *rsvpwizard.Wizard {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return rsvpwizard.New()
	}
	raw, _ := sess.Get(wizardSessionKey).(string)
	return rsvpwizard.Decode(raw)
}

func saveWizard(c *fiber.Ctx, w *rsvpwizard.Wizard) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	raw, err := w.Encode()
	if err != nil {
		return err
	}
	sess.Set(wizardSessionKey, raw)
	return nil
}

func clearWizard(c *fiber.Ctx) {
	if sess, err := utils.SessionStart(c); err == nil {
		sess.Delete(wizardSessionKey)
	}
}

// guestOptions kişi sayısı seçimi için 1..max listesini üretir.
func (h *RSVPHandler) guestOptions() []int {
	options := make([]int, 0, h.cfg.RSVPMaxGuests)
	for i := 1; i <= h.cfg.RSVPMaxGuests; i++ {
		options = append(options, i)
	}
	return options
}

// Show sihirbazın mevcut adımını gösterir.
func (h *RSVPHandler) Show(c *fiber.Ctx) error {
	w := loadWizard(c)
	content := h.provider.Content()
	renderData := fiber.Map{
		"Title":        "RSVP for Our Adventure",
		"Wizard":       w,
		"Step":         int(w.Step),
		"StepCount":    rsvpwizard.StepCount,
		"StepTitle":    w.Title(),
		"Progress":     w.Progress(),
		"GuestOptions": h.guestOptions(),
		"Content":      content,
	}
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "public/rsvp", "layouts/public_layout", renderData)
}

func (h *RSVPHandler) parseInput(c *fiber.Ctx, w *rsvpwizard.Wizard) {
	var in rsvpwizard.Input
	if err := c.BodyParser(&in); err != nil {
		configslog.Log.Warn("RSVP: form çözülemedi", zap.Int("step", int(w.Step)), zap.Error(err))
		return
	}
	w.Apply(in)
}

// Next adımın alanlarını kaydeder ve geçerliyse ilerler.
func (h *RSVPHandler) Next(c *fiber.Ctx) error {
	w := loadWizard(c)
	h.parseInput(c, w)
	if !w.CanAdvance() {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, requiredFieldsMessage(w.Step))
	} else {
		w.Next()
	}
	if err := saveWizard(c, w); err != nil {
		configslog.Log.Error("RSVP: sihirbaz oturuma yazılamadı", zap.Error(err))
		return renderError(c, "We couldn't keep track of your RSVP. Please enable cookies and try again.")
	}
	return c.Redirect(rsvpPath, fiber.StatusSeeOther)
}

// Back koşulsuz bir önceki adıma döner; girilen değerler korunur.
func (h *RSVPHandler) Back(c *fiber.Ctx) error {
	w := loadWizard(c)
	h.parseInput(c, w)
	w.Back()
	if err := saveWizard(c, w); err != nil {
		configslog.Log.Error("RSVP: sihirbaz oturuma yazılamadı", zap.Error(err))
		return renderError(c, "We couldn't keep track of your RSVP. Please enable cookies and try again.")
	}
	return c.Redirect(rsvpPath, fiber.StatusSeeOther)
}

// Submit son adımda LCV'yi kaydeder. Başarısızlıkta ziyaretçi son adımda kalır ve
// hata mesajını görür.
func (h *RSVPHandler) Submit(c *fiber.Ctx) error {
	w := loadWizard(c)
	if !w.IsLast() {
		return c.Redirect(rsvpPath, fiber.StatusSeeOther)
	}
	h.parseInput(c, w)

	created, err := h.provider.AppendRSVP(c.UserContext(), w.Record())
	if err != nil {
		msg, _ := submissionError(err)
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		if errors.Is(err, services.ErrSubmissionEmailInvalid) {
			// E-posta alanı sadece ilk adımda var.
			w.Step = rsvpwizard.StepDetails
		}
		_ = saveWizard(c, w)
		return c.Redirect(rsvpPath, fiber.StatusSeeOther)
	}

	clearWizard(c)
	return c.Redirect(rsvpPath+"/thanks?ref="+url.QueryEscape(created.Reference), fiber.StatusSeeOther)
}

// Thanks onay ekranını gösterir; sayfa ayarlanan süre sonunda ana sayfaya döner.
// Onay kodu sadece kayıtlı bir LCV'ye aitse gösterilir.
func (h *RSVPHandler) Thanks(c *fiber.Ctx) error {
	renderData := fiber.Map{
		"Title":          "Thank You!",
		"RefreshSeconds": int(h.cfg.RSVPConfirmDisplay.Seconds()),
	}
	if ref := c.Query("ref"); ref != "" {
		rsvp, err := h.provider.FindRSVP(c.UserContext(), ref)
		if err != nil {
			configslog.Log.Debug("RSVP: onay kodu bulunamadı", zap.Error(err))
		} else {
			renderData["Reference"] = rsvp.Reference
			renderData["GuestName"] = rsvp.Name
		}
	}
	return renderer.Render(c, "public/rsvp_thanks", "layouts/public_layout", renderData)
}

func requiredFieldsMessage(step rsvpwizard.Step) string {
	switch step {
	case rsvpwizard.StepDetails:
		return "Please enter your name and a valid email to continue."
	case rsvpwizard.StepAttendance:
		return "Please let us know whether you can join us."
	default:
		return "Please check your answers."
	}
}
