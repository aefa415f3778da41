package repository

// Таблицы хранилища
const (
	TableServices  = "services"
	TableProviders = "providers"
	TableBookings  = "bookings"
)
