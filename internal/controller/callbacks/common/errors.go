package common

import (
	"errors"

	"github.com/Freeeeeet/repair_bot/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrNoMessage      = errors.New("no message in callback")
	ErrInvalidFormat  = errors.New("invalid callback format")
	ErrSessionExpired = errors.New("booking session expired")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	var notFound *service.NotFoundError
	var writeErr *service.StoreWriteError

	switch {
	case errors.Is(err, service.ErrValidation):
		return "⚠️ Please fill in all fields"
	case errors.As(err, &writeErr):
		if writeErr.Op == service.OpCancelBooking {
			return "❌ Failed to cancel booking"
		}
		return "❌ Failed to create booking"
	case errors.As(err, &notFound):
		if notFound.Entity == "booking" {
			return "❌ Booking not found"
		}
		return "❌ Service not found"
	case errors.Is(err, ErrSessionExpired):
		return "⌛ Booking session expired. Please pick a service again"
	case errors.Is(err, ErrNoMessage):
		return "❌ Failed to process the message"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Invalid request"
	default:
		return "❌ Something went wrong. Please try again"
	}
}
