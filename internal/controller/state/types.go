package state

import (
	"time"

	"github.com/Freeeeeet/repair_bot/internal/model"
	"github.com/Freeeeeet/repair_bot/internal/service"
	"github.com/google/uuid"
)

// UserState представляет текущий шаг пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного диалога

	// Шаги диалога записи на услугу
	StateBookingProvider UserState = "booking_provider"
	StateBookingDate     UserState = "booking_date"
	StateBookingTime     UserState = "booking_time"
	StateBookingAddress  UserState = "booking_address"
	StateBookingConfirm  UserState = "booking_confirm"
)

// Session - данные одного пользователя между сообщениями.
// Хранится по значению: изменения делаются через Manager.Update и
// заменяют сессию целиком.
type Session struct {
	State UserState

	// Черновик записи и подписи к нему для экрана подтверждения
	Draft        model.Draft
	ServiceName  string
	ServiceIcon  model.IconTag
	ServicePrice int
	ProviderName string
	Providers    []model.Provider
	Day          time.Time // выбранный день, время ещё не выбрано

	// Кэш списка записей и открытая страница
	Bookings       service.BookingList
	BookingsLoaded bool
	BookingsPage   int
}

// InBookingDialog - идёт ли диалог записи
func (s Session) InBookingDialog() bool {
	switch s.State {
	case StateBookingProvider, StateBookingDate, StateBookingTime, StateBookingAddress, StateBookingConfirm:
		return true
	}
	return false
}

// FindProvider ищет мастера среди показанных на экране услуги
func (s Session) FindProvider(id string) (model.Provider, bool) {
	for _, p := range s.Providers {
		if p.ID == id {
			return p, true
		}
	}
	return model.Provider{}, false
}

// WithDraft меняет черновик и выдаёт ему новый ключ идемпотентности:
// повторная отправка дедуплицируется только для неизменённого черновика.
func (s Session) WithDraft(fn func(*model.Draft)) Session {
	draft := s.Draft
	fn(&draft)
	draft.IdempotencyKey = uuid.NewString()
	s.Draft = draft
	return s
}

// ResetDialog сбрасывает диалог записи, кэш списка записей остаётся
func (s Session) ResetDialog() Session {
	s.State = StateNone
	s.Draft = model.Draft{}
	s.ServiceName = ""
	s.ServiceIcon = ""
	s.ServicePrice = 0
	s.ProviderName = ""
	s.Providers = nil
	s.Day = time.Time{}
	return s
}
