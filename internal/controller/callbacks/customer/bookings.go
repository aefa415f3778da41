package customer

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/repair_bot/internal/controller/state"
	"github.com/Freeeeeet/repair_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Bookings List Handlers
// ========================

// LoadBookings возвращает список записей из сессии.
// fresh (или пустой кэш) - перечитать снимок из хранилища и положить в сессию.
func LoadBookings(ctx context.Context, h *callbacktypes.Handler, telegramID int64, fresh bool) (service.BookingList, error) {
	if !fresh {
		if s := h.StateManager.Get(telegramID); s.BookingsLoaded {
			return s.Bookings, nil
		}
	}

	list, err := h.BookingService.ListBookings(ctx, telegramID)
	if err != nil {
		return service.BookingList{}, err
	}

	h.StateManager.Update(telegramID, func(s state.Session) state.Session {
		s.Bookings = list
		s.BookingsLoaded = true
		if fresh {
			s.BookingsPage = 0
		}
		return s
	})
	return list, nil
}

// SendBookings отправляет список записей новым сообщением
func SendBookings(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID, telegramID int64, fresh bool) error {
	list, err := LoadBookings(ctx, h, telegramID, fresh)
	if err != nil {
		return err
	}

	page := h.StateManager.Get(telegramID).BookingsPage
	text, kb, _ := common.BuildBookingsScreen(list, page, h.Now().Location())
	return common.SendHTML(ctx, b, chatID, text, kb)
}

// renderBookings перерисовывает текущее сообщение страницей списка
func renderBookings(hc *common.HandlerContext, list service.BookingList, page int) {
	text, kb, current := common.BuildBookingsScreen(list, page, hc.Handler.Now().Location())
	hc.UpdateSession(func(s state.Session) state.Session {
		s.BookingsPage = current
		return s
	})

	if err := hc.EditMessage(text, kb); err != nil {
		hc.Handler.Logger.Error("Failed to render bookings",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
	}
}

// HandleMyBookings открывает список записей заново из хранилища
func HandleMyBookings(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithMessage(ctx, b, callback, h, func(hc *common.HandlerContext) {
		list, err := LoadBookings(hc.Ctx, h, hc.TelegramID, true)
		if err != nil {
			h.Logger.Error("Failed to load bookings", zap.Int64("telegram_id", hc.TelegramID), zap.Error(err))
			hc.AnswerAlert("❌ Failed to load bookings")
			return
		}

		renderBookings(hc, list, 0)
		hc.Answer("")
	})
}

// HandleBookingsPage листает закэшированный список
func HandleBookingsPage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithMessage(ctx, b, callback, h, func(hc *common.HandlerContext) {
		page, err := common.ParseIntFromCallback(callback.Data)
		if err != nil {
			hc.AnswerAlert(common.ErrorMessage(err))
			return
		}

		list, err := LoadBookings(hc.Ctx, h, hc.TelegramID, false)
		if err != nil {
			h.Logger.Error("Failed to load bookings", zap.Int64("telegram_id", hc.TelegramID), zap.Error(err))
			hc.AnswerAlert("❌ Failed to load bookings")
			return
		}

		renderBookings(hc, list, page)
		hc.Answer("")
	})
}

// HandleCancelBooking отменяет pending запись и обновляет список на месте
func HandleCancelBooking(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithMessage(ctx, b, callback, h, func(hc *common.HandlerContext) {
		bookingID, err := common.ParseIDFromCallback(callback.Data)
		if err != nil {
			hc.AnswerAlert(common.ErrorMessage(err))
			return
		}

		list, err := LoadBookings(hc.Ctx, h, hc.TelegramID, false)
		if err != nil {
			h.Logger.Error("Failed to load bookings", zap.Int64("telegram_id", hc.TelegramID), zap.Error(err))
			hc.AnswerAlert("❌ Failed to load bookings")
			return
		}

		entry, ok := list.Find(bookingID)
		if !ok {
			hc.AnswerAlert(common.ErrorMessage(&service.NotFoundError{Entity: "booking", ID: bookingID}))
			return
		}
		if !list.Cancellable(bookingID) {
			renderBookings(hc, list, hc.Session().BookingsPage)
			hc.AnswerAlert(common.CancelRefusalMessage(entry.Status))
			return
		}

		if err := h.BookingService.CancelBooking(hc.Ctx, bookingID); err != nil {
			hc.AnswerAlert(common.ErrorMessage(err))
			return
		}

		next := hc.UpdateSession(func(s state.Session) state.Session {
			s.Bookings = s.Bookings.ApplyCancellation(bookingID)
			return s
		})

		renderBookings(hc, next.Bookings, next.BookingsPage)
		hc.Answer("✅ Booking cancelled")
	})
}

// HandleBookingsSummary присылает карточку со счётчиками записей
func HandleBookingsSummary(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithMessage(ctx, b, callback, h, func(hc *common.HandlerContext) {
		list, err := LoadBookings(hc.Ctx, h, hc.TelegramID, false)
		if err != nil {
			h.Logger.Error("Failed to load bookings", zap.Int64("telegram_id", hc.TelegramID), zap.Error(err))
			hc.AnswerAlert("❌ Failed to load bookings")
			return
		}

		imageData, err := common.RenderSummaryCard(list)
		if err != nil {
			h.Logger.Error("Failed to render summary card", zap.Error(err))
			hc.AnswerAlert("❌ Failed to render summary")
			return
		}

		summary := list.DeriveSummary()
		caption := fmt.Sprintf("📊 Active: %d · Total: %d", summary.Active, summary.Total)
		if err := hc.SendPhoto("summary.png", imageData, caption, nil); err != nil {
			h.Logger.Error("Failed to send summary card", zap.Error(err))
			hc.AnswerAlert("❌ Failed to send summary")
			return
		}
		hc.Answer("")
	})
}
