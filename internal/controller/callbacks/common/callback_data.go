package common

import (
	"fmt"
	"time"
)

// ========================
// Callback Data Patterns
// ========================
// Telegram ограничивает callback data 64 байтами: в кнопку кладём
// не больше одного uuid, остальное лежит в сессии.

const (
	ViewService     = "view_service:"   // view_service:<service uuid>
	PickProvider    = "pick_provider:"  // pick_provider:<provider uuid>
	PickDate        = "pick_date:"      // pick_date:2025-05-20
	PickTime        = "pick_time:"      // pick_time:14
	CancelBooking   = "cancel_booking:" // cancel_booking:<booking uuid>
	BookingsPage    = "bookings_page:"  // bookings_page:1
	SubmitBooking   = "submit_booking"
	EditAddress     = "edit_address"
	BackToDates     = "back_to_dates"
	BookingsSummary = "bookings_summary"
)

func ViewServiceData(id string) string {
	return ViewService + id
}

func PickProviderData(id string) string {
	return PickProvider + id
}

func PickDateData(day time.Time) string {
	return PickDate + day.Format(time.DateOnly)
}

func PickTimeData(hour int) string {
	return fmt.Sprintf("%s%d", PickTime, hour)
}

func CancelBookingData(id string) string {
	return CancelBooking + id
}
