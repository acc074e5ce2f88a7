package utils

import (
	"errors"
	"fmt"

	"wildhearts.link/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionLocalsKey istek boyunca açık tutulan oturumun c.Locals anahtarıdır.
// Oturum middlewares.SessionMiddleware tarafından açılır ve handler bittikten sonra
// bir kez kaydedilir; handler'lar Save çağırmaz.
const SessionLocalsKey = "session"

const (
	sessionUserIDKey   = "user_id"
	sessionUserNameKey = "user_name"
)

var (
	ErrSessionMissing  = errors.New("istekte oturum yok")
	ErrNoUserInSession = errors.New("oturumda kullanıcı yok")
)

// SessionStart isteğin açık oturumunu döndürür.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	sess, ok := c.Locals(SessionLocalsKey).(*session.Session)
	if !ok || sess == nil {
		return nil, ErrSessionMissing
	}
	return sess, nil
}

// GetUserIDFromSession oturumdaki admin ID'sini okur.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	switch v := sess.Get(sessionUserIDKey).(type) {
	case uint:
		if v == 0 {
			return 0, ErrNoUserInSession
		}
		return v, nil
	case nil:
		return 0, ErrNoUserInSession
	default:
		return 0, fmt.Errorf("oturumdaki user_id beklenmeyen tipte: %T", v)
	}
}

// GetUserNameFromSession oturumdaki görünen ismi okur.
func GetUserNameFromSession(sess *session.Session) string {
	name, _ := sess.Get(sessionUserNameKey).(string)
	return name
}

// LoginUser oturum ID'sini yeniler ve kullanıcıyı yazar.
func LoginUser(c *fiber.Ctx, user *models.User) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(sessionUserIDKey, user.ID)
	name := user.Name
	if name == "" {
		name = user.Email
	}
	sess.Set(sessionUserNameKey, name)
	c.Locals("userID", user.ID)
	c.Locals("userName", name)
	return nil
}

// LogoutUser kullanıcıyı oturumdan çıkarır ve ID'yi yeniler. Oturumun geri kalanı
// (ör. flash mesajı) aynı istekte kullanılabilir.
func LogoutUser(c *fiber.Ctx) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	sess.Delete(sessionUserIDKey)
	sess.Delete(sessionUserNameKey)
	c.Locals("userID", nil)
	c.Locals("userName", nil)
	return sess.Regenerate()
}

// CurrentUserID c.Locals içindeki admin ID'sini döndürür.
func CurrentUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("userID").(uint)
	return id, ok && id != 0
}
