package common

import (
	"context"

	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// WithMessage создаёт HandlerContext и проверяет что у callback есть сообщение
// При ошибке автоматически отвечает пользователю
func WithMessage(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	handler func(*HandlerContext),
) {
	hc := NewHandlerContext(ctx, b, callback, h)

	if hc.Message == nil {
		h.Logger.Warn("Callback without message",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.String("data", callback.Data))
		hc.AnswerAlert(ErrorMessage(ErrNoMessage))
		return
	}

	handler(hc)
}

// WithBookingDialog дополнительно проверяет что диалог записи ещё идёт.
// Сессия живёт в памяти, после перезапуска бота старые кнопки ведут сюда.
func WithBookingDialog(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	handler func(*HandlerContext, state.Session),
) {
	WithMessage(ctx, b, callback, h, func(hc *HandlerContext) {
		session := hc.Session()
		if !session.InBookingDialog() || session.Draft.ServiceID == "" {
			h.Logger.Info("Booking dialog is not active",
				zap.Int64("telegram_id", hc.TelegramID),
				zap.String("state", string(session.State)))
			hc.AnswerAlert(ErrorMessage(ErrSessionExpired))
			return
		}

		handler(hc, session)
	})
}
