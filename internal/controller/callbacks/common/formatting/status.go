package formatting

import "github.com/Freeeeeet/repair_bot/internal/model"

// BookingStatusDisplay представляет отображение статуса бронирования
type BookingStatusDisplay struct {
	Emoji string
	Text  string
}

var bookingStatusDisplays = map[model.BookingStatus]BookingStatusDisplay{
	model.BookingStatusPending:   {"⏳", "Pending"},
	model.BookingStatusConfirmed: {"✅", "Confirmed"},
	model.BookingStatusCompleted: {"✔️", "Completed"},
	model.BookingStatusCancelled: {"❌", "Cancelled"},
}

// GetBookingStatusDisplay возвращает emoji и текст для статуса бронирования
func GetBookingStatusDisplay(status model.BookingStatus) BookingStatusDisplay {
	if display, ok := bookingStatusDisplays[status]; ok {
		return display
	}
	return BookingStatusDisplay{"❓", "Unknown"}
}

// FormatBookingStatus - "⏳ Pending"
func FormatBookingStatus(status model.BookingStatus) string {
	d := GetBookingStatusDisplay(status)
	return d.Emoji + " " + d.Text
}
