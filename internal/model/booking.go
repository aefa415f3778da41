package model

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"   // Ожидает подтверждения мастером
	BookingStatusConfirmed BookingStatus = "confirmed" // Подтверждено мастером
	BookingStatusCompleted BookingStatus = "completed" // Работа выполнена
	BookingStatusCancelled BookingStatus = "cancelled" // Отменено клиентом
)

// Valid проверяет что статус входит в допустимый набор
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// IsActive - pending или confirmed
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

// IsTerminal - из этих статусов запись уже не переоткрывается
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CanCancel - клиент может отменить только pending запись
func (s BookingStatus) CanCancel() bool {
	return s == BookingStatusPending
}

type Booking struct {
	ID             string        `json:"id"`
	ServiceID      string        `json:"service_id"`
	ProviderID     string        `json:"provider_id"`
	CustomerID     int64         `json:"customer_id,omitempty"` // Telegram ID клиента, 0 если не указан
	ScheduledAt    time.Time     `json:"scheduled_at"`
	Address        string        `json:"address"`
	Status         BookingStatus `json:"status"`
	IdempotencyKey string        `json:"idempotency_key,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// ServiceSummary - поля услуги, которые подтягиваются в список записей
type ServiceSummary struct {
	Name string  `json:"name"`
	Icon IconTag `json:"icon"`
}

// ProviderSummary - поля мастера, которые подтягиваются в список записей
type ProviderSummary struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// BookingDetails - запись вместе с краткой информацией об услуге и мастере
type BookingDetails struct {
	Booking
	Service  ServiceSummary  `json:"services"`
	Provider ProviderSummary `json:"providers"`
}

// Draft - черновик записи, который собирается в диалоге и ещё не сохранён
type Draft struct {
	ServiceID      string
	ProviderID     string
	ScheduledAt    time.Time
	Address        string
	CustomerID     int64
	IdempotencyKey string
}
