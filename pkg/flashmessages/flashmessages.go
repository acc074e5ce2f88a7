// Package flashmessages yönlendirme sonrası bir kez gösterilen mesajları
// fiber oturumunda taşır.
package flashmessages

import (
	"encoding/json"

	"wildhearts.link/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
	flashFormKey    = "flash_form"
)

// FlashMessages şablonlara verilen mesaj çifti.
type FlashMessages struct {
	Success string
	Error   string
}

// HasAny en az bir mesaj olup olmadığını söyler.
func (f FlashMessages) HasAny() bool {
	return f.Success != "" || f.Error != ""
}

// SetFlashMessage bir sonraki istekte gösterilecek mesajı yazar.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return nil
}

// GetFlashMessages mesajları okur ve oturumdan siler.
func GetFlashMessages(c *fiber.Ctx) (FlashMessages, error) {
	var out FlashMessages
	sess, err := utils.SessionStart(c)
	if err != nil {
		return out, err
	}
	if v, ok := sess.Get(FlashSuccessKey).(string); ok {
		out.Success = v
		sess.Delete(FlashSuccessKey)
	}
	if v, ok := sess.Get(FlashErrorKey).(string); ok {
		out.Error = v
		sess.Delete(FlashErrorKey)
	}
	return out, nil
}

// SetFlashFormData hatalı gönderimden sonra formu yeniden doldurmak için veriyi saklar.
func SetFlashFormData(c *fiber.Ctx, data map[string]string) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(flashFormKey, string(payload))
	return nil
}

// GetFlashFormData saklanan form verisini okur ve siler. Veri yoksa boş map döner.
func GetFlashFormData(c *fiber.Ctx) map[string]string {
	data := map[string]string{}
	sess, err := utils.SessionStart(c)
	if err != nil {
		return data
	}
	raw, ok := sess.Get(flashFormKey).(string)
	if !ok {
		return data
	}
	sess.Delete(flashFormKey)
	_ = json.Unmarshal([]byte(raw), &data)
	return data
}
