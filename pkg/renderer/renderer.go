package renderer

import (
	"net/http"

	"wildhearts.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// Render şablonu ortak değişkenlerle birlikte render eder.
// Durum kodu verilmezse 200 kullanılır.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["UserName"]; !ok {
		if name, ok := c.Locals("userName").(string); ok {
			data["UserName"] = name
		}
	}
	if _, ok := data["IsAdmin"]; !ok {
		id, ok := c.Locals("userID").(uint)
		data["IsAdmin"] = ok && id != 0
	}
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	if layout == "" {
		return c.Status(code).Render(view, data)
	}
	return c.Status(code).Render(view, data, layout)
}

// SetFlashMessages flash mesajlarını şablon verisine ekler.
func SetFlashMessages(data fiber.Map, flash flashmessages.FlashMessages) {
	if !flash.HasAny() {
		return
	}
	if flash.Success != "" {
		data["Success"] = flash.Success
	}
	if flash.Error != "" {
		data["Error"] = flash.Error
	}
}
