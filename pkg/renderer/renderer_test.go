package renderer

import (
	"testing"

	"wildhearts.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestSetFlashMessages(t *testing.T) {
	data := fiber.Map{"Error": "inline"}
	SetFlashMessages(data, flashmessages.FlashMessages{})
	assert.Equal(t, fiber.Map{"Error": "inline"}, data)

	data = fiber.Map{}
	SetFlashMessages(data, flashmessages.FlashMessages{Success: "Saved"})
	assert.Equal(t, "Saved", data["Success"])
	assert.NotContains(t, data, "Error")
}
