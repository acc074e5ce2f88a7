package middlewares

import (
	"wildhearts.link/configs/configslog"
	"wildhearts.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

// SessionMiddleware her istek için oturumu bir kez açar, kullanıcı bilgisini
// c.Locals içine taşır ve handler döndükten sonra oturumu kaydeder.
func SessionMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			configslog.Log.Warn("Oturum açılamadı", zap.Error(err))
			return c.Next()
		}
		c.Locals(utils.SessionLocalsKey, sess)
		if userID, err := utils.GetUserIDFromSession(sess); err == nil {
			c.Locals("userID", userID)
			c.Locals("userName", utils.GetUserNameFromSession(sess))
		}

		handlerErr := c.Next()

		c.Locals(utils.SessionLocalsKey, nil)
		if sess.Fresh() && len(sess.Keys()) == 0 {
			return handlerErr
		}
		if err := sess.Save(); err != nil {
			configslog.Log.Error("Oturum kaydedilemedi", zap.Error(err))
		}
		return handlerErr
	}
}
