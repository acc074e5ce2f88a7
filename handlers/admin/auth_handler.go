package handlers

import (
	"errors"
	"strings"

	"wildhearts.link/configs/configslog"
	"wildhearts.link/middlewares"
	"wildhearts.link/pkg/flashmessages"
	"wildhearts.link/pkg/renderer"
	"wildhearts.link/services"
	"wildhearts.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type loginInput struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// AuthHandler admin giriş ve çıkış işlemlerini yönetir.
type AuthHandler struct {
	authService services.IAuthService
	panel       *PanelHandler
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur. /admin adresi oturum varsa
// paneli, yoksa giriş formunu gösterir; bu yüzden panel handler'ı da alır.
func NewAuthHandler(authService services.IAuthService, panel *PanelHandler) *AuthHandler {
	return &AuthHandler{authService: authService, panel: panel}
}

// ShowAdmin GET /admin.
func (h *AuthHandler) ShowAdmin(c *fiber.Ctx) error {
	if middlewares.HasActiveAdmin(c, h.authService) {
		return h.panel.Dashboard(c)
	}
	return h.renderLogin(c, "", "", fiber.StatusOK)
}

func (h *AuthHandler) renderLogin(c *fiber.Ctx, email, errMsg string, status int) error {
	renderData := fiber.Map{
		"Title": "Wild Hearts Admin",
		"Email": email,
	}
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderer.SetFlashMessages(renderData, flashData)
	if errMsg != "" {
		renderData["Error"] = errMsg
	}
	return renderer.Render(c, "admin/login", "layouts/admin_layout", renderData, status)
}

// Login kimlik bilgilerini doğrular. Hata giriş formunda satır içi gösterilir.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in loginInput
	if err := c.BodyParser(&in); err != nil {
		return h.renderLogin(c, "", services.ErrInvalidCredentials.Error(), fiber.StatusBadRequest)
	}
	email := strings.TrimSpace(in.Email)

	user, err := h.authService.Authenticate(c.UserContext(), email, in.Password)
	if err != nil {
		status := fiber.StatusUnauthorized
		var authErr services.AuthServiceError
		if !errors.As(err, &authErr) {
			authErr = services.ErrAuthUnavailable
		}
		if errors.Is(err, services.ErrAuthUnavailable) {
			status = fiber.StatusServiceUnavailable
		}
		return h.renderLogin(c, email, authErr.Error(), status)
	}

	if err := utils.LoginUser(c, user); err != nil {
		configslog.Log.Error("Oturum başlatılamadı", zap.Uint("userID", user.ID), zap.Error(err))
		return h.renderLogin(c, email, services.ErrAuthUnavailable.Error(), fiber.StatusInternalServerError)
	}
	return c.Redirect("/admin", fiber.StatusFound)
}

// Logout oturumu kapatır.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := utils.LogoutUser(c); err != nil {
		configslog.Log.Warn("Çıkış sırasında oturum temizlenemedi", zap.Error(err))
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "You have been signed out.")
	return c.Redirect("/admin", fiber.StatusFound)
}
