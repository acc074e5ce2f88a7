package handlers

import (
	"errors"

	"wildhearts.link/services"

	"github.com/gofiber/fiber/v2"
)

// submissionError servis hatasını ziyaretçiye gösterilecek metne ve HTTP koduna çevirir.
func submissionError(err error) (string, int) {
	switch {
	case errors.Is(err, services.ErrSubmissionNameRequired):
		return "Please tell us your name.", fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrSubmissionEmailInvalid):
		return "Please enter a valid email address.", fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrSubmissionStatusInvalid):
		return "Please let us know whether you can join us.", fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrSubmissionGuestsInvalid):
		return "Please choose a valid number of guests.", fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrSubmissionMessageNeeded):
		return "Please write a message.", fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrSubmissionInvalid):
		return "Some of your answers are too long.", fiber.StatusUnprocessableEntity
	default:
		return "We couldn't save that right now. Please try again in a moment.", fiber.StatusServiceUnavailable
	}
}
