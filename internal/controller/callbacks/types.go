package callbacks

import (
	"context"
	"time"

	"github.com/Freeeeeet/repair_bot/internal/clock"
	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_bot/internal/controller/state"
	"github.com/Freeeeeet/repair_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Handler обертка для callbacktypes.Handler с методами
type Handler struct {
	*callbacktypes.Handler
}

// NewHandler создаёт новый обработчик callbacks с зависимостями
func NewHandler(
	catalogService *service.CatalogService,
	bookingService *service.BookingService,
	stateManager *state.Manager,
	clk clock.Clock,
	redirectDelay time.Duration,
	logger *zap.Logger,
) *Handler {
	inner := &callbacktypes.Handler{
		CatalogService: catalogService,
		BookingService: bookingService,
		StateManager:   stateManager,
		Logger:         logger,
		Clock:          clk,
		RedirectDelay:  redirectDelay,
	}
	return &Handler{Handler: inner}
}

// HandleCallbackQuery - главный обработчик callback queries
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery

	h.Logger.Info("Callback received",
		zap.String("data", callback.Data),
		zap.Int64("user_id", callback.From.ID),
	)

	// Вызываем роутер
	Route(ctx, b, callback, h.Handler)
}
