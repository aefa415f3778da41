package callbacktypes

import (
	"time"

	"github.com/Freeeeeet/repair_bot/internal/clock"
	"github.com/Freeeeeet/repair_bot/internal/controller/state"
	"github.com/Freeeeeet/repair_bot/internal/service"
	"go.uber.org/zap"
)

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	CatalogService *service.CatalogService
	BookingService *service.BookingService
	StateManager   *state.Manager
	Logger         *zap.Logger
	Clock          clock.Clock

	// Пауза между сообщением об успешной записи и списком записей
	RedirectDelay time.Duration

	// AfterFunc откладывает переход к списку записей; nil - time.AfterFunc
	AfterFunc func(d time.Duration, f func())
}

// Now - текущее время по часам бота
func (h *Handler) Now() time.Time {
	if h.Clock == nil {
		return time.Now()
	}
	return h.Clock.Now()
}

// After запускает f через d
func (h *Handler) After(d time.Duration, f func()) {
	if h.AfterFunc != nil {
		h.AfterFunc(d, f)
		return
	}
	time.AfterFunc(d, f)
}
