package common

import (
	"context"

	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/callbacktypes"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ShowCatalog заменяет текущее сообщение каталогом услуг
func ShowCatalog(hc *HandlerContext) error {
	services, err := hc.Handler.CatalogService.ListServices(hc.Ctx)
	if err != nil {
		return err
	}

	text, kb := BuildCatalogScreen(services)
	return hc.EditMessage(text, kb)
}

// HandleBackToServices возвращает к каталогу, диалог записи сбрасывается
func HandleBackToServices(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	WithMessage(ctx, b, callback, h, func(hc *HandlerContext) {
		hc.ClearState()

		if err := ShowCatalog(hc); err != nil {
			h.Logger.Error("Failed to show catalog", zap.Int64("telegram_id", hc.TelegramID), zap.Error(err))
			hc.AnswerAlert(ErrorMessage(err))
			return
		}
		hc.Answer("")
	})
}

// HandleAbortBooking прерывает диалог записи и показывает каталог
func HandleAbortBooking(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	WithMessage(ctx, b, callback, h, func(hc *HandlerContext) {
		hc.ClearState()
		h.Logger.Info("Booking dialog aborted", zap.Int64("telegram_id", hc.TelegramID))

		if err := ShowCatalog(hc); err != nil {
			h.Logger.Error("Failed to show catalog", zap.Int64("telegram_id", hc.TelegramID), zap.Error(err))
		}
		hc.Answer("Booking cancelled")
	})
}
