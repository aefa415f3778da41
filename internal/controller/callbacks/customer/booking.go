package customer

import (
	"context"
	"time"

	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/repair_bot/internal/controller/state"
	"github.com/Freeeeeet/repair_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Booking Dialog Handlers
// ========================

// HandlePickProvider запоминает мастера и предлагает выбрать день
func HandlePickProvider(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithBookingDialog(ctx, b, callback, h, func(hc *common.HandlerContext, session state.Session) {
		providerID, err := common.ParseIDFromCallback(callback.Data)
		if err != nil {
			hc.AnswerAlert(common.ErrorMessage(err))
			return
		}

		provider, ok := session.FindProvider(providerID)
		if !ok {
			hc.AnswerAlert("❌ Provider not found")
			return
		}

		next := hc.UpdateSession(func(s state.Session) state.Session {
			s.State = state.StateBookingDate
			s.ProviderName = provider.Name
			s.Day = time.Time{}
			return s.WithDraft(func(d *model.Draft) {
				d.ProviderID = provider.ID
				d.ScheduledAt = time.Time{}
			})
		})

		text, kb := common.BuildDatePickerScreen(next, h.Now())
		hc.EditMessage(text, kb)
		hc.Answer("")
	})
}

// HandleBackToDates возвращает от выбора времени к выбору дня
func HandleBackToDates(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithBookingDialog(ctx, b, callback, h, func(hc *common.HandlerContext, _ state.Session) {
		next := hc.UpdateSession(func(s state.Session) state.Session {
			s.State = state.StateBookingDate
			return s
		})

		text, kb := common.BuildDatePickerScreen(next, h.Now())
		hc.EditMessage(text, kb)
		hc.Answer("")
	})
}

// HandlePickDate запоминает день и показывает свободные часы
func HandlePickDate(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithBookingDialog(ctx, b, callback, h, func(hc *common.HandlerContext, session state.Session) {
		now := h.Now()
		day, err := common.ParseDateFromCallback(callback.Data, now.Location())
		if err != nil {
			hc.AnswerAlert(common.ErrorMessage(err))
			return
		}

		if !common.IsBookableDay(day, now) {
			text, kb := common.BuildDatePickerScreen(session, now)
			hc.EditMessage(text, kb)
			hc.AnswerAlert("⌛ This day is no longer available")
			return
		}

		next := hc.UpdateSession(func(s state.Session) state.Session {
			s.State = state.StateBookingTime
			s.Day = day
			return s.WithDraft(func(d *model.Draft) {
				d.ScheduledAt = time.Time{}
			})
		})

		text, kb := common.BuildTimePickerScreen(next, now)
		hc.EditMessage(text, kb)
		hc.Answer("")
	})
}

// HandlePickTime запоминает время визита и просит адрес
// (или сразу показывает подтверждение, если адрес уже введён)
func HandlePickTime(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithBookingDialog(ctx, b, callback, h, func(hc *common.HandlerContext, session state.Session) {
		if session.Day.IsZero() {
			hc.AnswerAlert("📅 Please choose a day first")
			return
		}

		hour, err := common.ParseIntFromCallback(callback.Data)
		if err != nil {
			hc.AnswerAlert(common.ErrorMessage(err))
			return
		}

		now := h.Now()
		if !common.IsBookableSlot(session.Day, hour, now) {
			text, kb := common.BuildTimePickerScreen(session, now)
			hc.EditMessage(text, kb)
			hc.AnswerAlert("⌛ This time is no longer available")
			return
		}

		next := hc.UpdateSession(func(s state.Session) state.Session {
			s = s.WithDraft(func(d *model.Draft) {
				d.ScheduledAt = common.SlotTime(s.Day, hour)
			})
			if s.Draft.Address != "" {
				s.State = state.StateBookingConfirm
			} else {
				s.State = state.StateBookingAddress
			}
			return s
		})

		var text string
		var kb *models.InlineKeyboardMarkup
		if next.State == state.StateBookingConfirm {
			text, kb = common.BuildConfirmScreen(next)
		} else {
			text, kb = common.BuildAddressPrompt(next)
		}
		hc.EditMessage(text, kb)
		hc.Answer("")
	})
}

// HandleEditAddress возвращает к вводу адреса с экрана подтверждения
func HandleEditAddress(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithBookingDialog(ctx, b, callback, h, func(hc *common.HandlerContext, _ state.Session) {
		next := hc.UpdateSession(func(s state.Session) state.Session {
			s.State = state.StateBookingAddress
			return s
		})

		text, kb := common.BuildAddressPrompt(next)
		hc.EditMessage(text, kb)
		hc.Answer("")
	})
}

// HandleSubmitBooking отправляет заявку. При ошибке черновик остаётся в сессии,
// при успехе через RedirectDelay открывается список записей.
func HandleSubmitBooking(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithBookingDialog(ctx, b, callback, h, func(hc *common.HandlerContext, session state.Session) {
		draft := session.Draft
		draft.CustomerID = hc.TelegramID

		booking, err := h.BookingService.SubmitBooking(hc.Ctx, draft)
		if err != nil {
			h.Logger.Warn("Booking submit failed",
				zap.Int64("telegram_id", hc.TelegramID),
				zap.Error(err))
			hc.AnswerAlert(common.ErrorMessage(err))
			return
		}

		provider, _ := session.FindProvider(booking.ProviderID)
		details := model.BookingDetails{
			Booking:  *booking,
			Service:  model.ServiceSummary{Name: session.ServiceName, Icon: session.ServiceIcon},
			Provider: model.ProviderSummary{Name: provider.Name, ImageURL: provider.ImageURL},
		}

		hc.UpdateSession(func(s state.Session) state.Session {
			s = s.ResetDialog()
			if s.BookingsLoaded {
				if _, exists := s.Bookings.Find(booking.ID); !exists {
					s.Bookings = s.Bookings.Prepend(details)
				}
			}
			s.BookingsPage = 0
			return s
		})

		text, kb := common.BuildSuccessScreen(booking, session, h.Now().Location())
		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to show booking confirmation", zap.String("booking_id", booking.ID), zap.Error(err))
		}
		hc.Answer("✅ Booking requested")

		chatID, telegramID := hc.ChatID, hc.TelegramID
		h.After(h.RedirectDelay, func() {
			if ctx.Err() != nil {
				return
			}
			if err := SendBookings(ctx, b, h, chatID, telegramID, false); err != nil {
				h.Logger.Error("Failed to open bookings after submit",
					zap.Int64("telegram_id", telegramID),
					zap.Error(err))
			}
		})
	})
}
