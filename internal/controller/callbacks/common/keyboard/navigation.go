package keyboard

import "github.com/go-telegram/bot/models"

// Callback data навигационных кнопок
const (
	CallbackBackToServices = "back_to_services"
	CallbackMyBookings     = "my_bookings"
	CallbackAbortBooking   = "abort_booking"
	CallbackNoop           = "noop"
)

// BackButton создаёт кнопку "Назад"
func BackButton(callbackData string) models.InlineKeyboardButton {
	return Button("⬅️ Back", callbackData)
}

// BackToServicesButton создаёт кнопку "К списку услуг"
func BackToServicesButton() models.InlineKeyboardButton {
	return Button("🛠 Browse services", CallbackBackToServices)
}

// MyBookingsButton создаёт кнопку "Мои записи"
func MyBookingsButton() models.InlineKeyboardButton {
	return Button("📅 View My Bookings", CallbackMyBookings)
}

// AbortBookingButton прерывает диалог записи
func AbortBookingButton() models.InlineKeyboardButton {
	return Button("✖️ Cancel", CallbackAbortBooking)
}
