package customer

import (
	"context"
	"errors"

	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/repair_bot/internal/controller/state"
	"github.com/Freeeeeet/repair_bot/internal/model"
	"github.com/Freeeeeet/repair_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// SendCatalog отправляет каталог услуг новым сообщением
func SendCatalog(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID int64) error {
	services, err := h.CatalogService.ListServices(ctx)
	if err != nil {
		return err
	}

	text, kb := common.BuildCatalogScreen(services)
	return common.SendHTML(ctx, b, chatID, text, kb)
}

// HandleViewService показывает услугу и начинает диалог записи
func HandleViewService(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithMessage(ctx, b, callback, h, func(hc *common.HandlerContext) {
		serviceID, err := common.ParseIDFromCallback(callback.Data)
		if err != nil {
			h.Logger.Warn("Failed to parse service ID", zap.String("data", callback.Data), zap.Error(err))
			hc.AnswerAlert(common.ErrorMessage(err))
			return
		}

		svc, providers, err := h.CatalogService.GetServiceDetails(hc.Ctx, serviceID)
		if err != nil {
			var notFound *service.NotFoundError
			if errors.As(err, &notFound) {
				text, kb := common.BuildServiceNotFoundScreen()
				hc.EditMessage(text, kb)
			}
			hc.AnswerAlert(common.ErrorMessage(err))
			return
		}

		hc.UpdateSession(func(s state.Session) state.Session {
			s = s.ResetDialog()
			if len(providers) == 0 {
				return s
			}

			s.State = state.StateBookingProvider
			s.ServiceName = svc.Name
			s.ServiceIcon = svc.Icon
			s.ServicePrice = svc.BasePrice
			s.Providers = make([]model.Provider, 0, len(providers))
			for _, p := range providers {
				s.Providers = append(s.Providers, *p)
			}
			return s.WithDraft(func(d *model.Draft) {
				d.ServiceID = svc.ID
				d.CustomerID = hc.TelegramID
			})
		})

		text, kb := common.BuildServiceScreen(svc, providers)
		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to show service", zap.String("service_id", serviceID), zap.Error(err))
		}
		hc.Answer("")
	})
}
