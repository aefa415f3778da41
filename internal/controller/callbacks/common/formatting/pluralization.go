package formatting

// Pluralize выбирает форму слова для английского текста
func Pluralize(count int, one, many string) string {
	if count == 1 {
		return one
	}
	return many
}

// PluralizeBookings - "booking" или "bookings", число подставляет вызывающий
func PluralizeBookings(count int) string {
	return Pluralize(count, "booking", "bookings")
}
