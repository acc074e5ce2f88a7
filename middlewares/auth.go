package middlewares

import (
	"errors"
	"strings"

	"wildhearts.link/configs/configslog"
	"wildhearts.link/pkg/flashmessages"
	"wildhearts.link/services"
	"wildhearts.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HasActiveAdmin oturumda bir admin olup olmadığını ve kullanıcının hâlâ var
// olduğunu kontrol eder. Silinmiş kullanıcının oturumu kapatılır. Depolamaya
// ulaşılamazsa oturum tek başına yeterli sayılır.
func HasActiveAdmin(c *fiber.Ctx, authService services.IAuthService) bool {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return false
	}
	_, err := authService.GetUserByID(c.UserContext(), userID)
	if errors.Is(err, services.ErrUserNotFound) {
		configslog.Log.Warn("Oturumdaki kullanıcı artık yok, oturum kapatılıyor", zap.Uint("userID", userID))
		if logoutErr := utils.LogoutUser(c); logoutErr != nil {
			configslog.Log.Warn("Oturum temizlenemedi", zap.Error(logoutErr))
		}
		return false
	}
	return true
}

// AuthMiddleware oturumda geçerli bir admin yoksa isteği durdurur. JSON uç
// noktaları 401, sayfalar /admin yönlendirmesi alır.
func AuthMiddleware(authService services.IAuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if HasActiveAdmin(c, authService) {
			return c.Next()
		}
		configslog.SLog.Debugf("Yetkisiz admin erişimi: %s %s", c.Method(), c.Path())
		if strings.HasPrefix(c.Path(), "/admin/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Please sign in to continue.")
		return c.Redirect("/admin", fiber.StatusFound)
	}
}

// GuestMiddleware giriş yapmış kullanıcıyı panele geri gönderir.
func GuestMiddleware(c *fiber.Ctx) error {
	if _, ok := utils.CurrentUserID(c); ok {
		return c.Redirect("/admin", fiber.StatusFound)
	}
	return c.Next()
}
