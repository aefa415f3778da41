package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/customer"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Main Callback Router
// ========================

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Debug("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID),
		zap.String("user_name", callback.From.FirstName))

	switch {
	// ===== Navigation =====
	case data == keyboard.CallbackBackToServices:
		common.HandleBackToServices(ctx, b, callback, h)
	case data == keyboard.CallbackAbortBooking:
		common.HandleAbortBooking(ctx, b, callback, h)
	case data == keyboard.CallbackNoop:
		// No operation - просто подтверждаем callback
		common.AnswerCallback(ctx, b, callback.ID, "")

	// ===== Catalog & Booking Dialog =====
	case strings.HasPrefix(data, common.ViewService):
		customer.HandleViewService(ctx, b, callback, h)
	case strings.HasPrefix(data, common.PickProvider):
		customer.HandlePickProvider(ctx, b, callback, h)
	case strings.HasPrefix(data, common.PickDate):
		customer.HandlePickDate(ctx, b, callback, h)
	case data == common.BackToDates:
		customer.HandleBackToDates(ctx, b, callback, h)
	case strings.HasPrefix(data, common.PickTime):
		customer.HandlePickTime(ctx, b, callback, h)
	case data == common.EditAddress:
		customer.HandleEditAddress(ctx, b, callback, h)
	case data == common.SubmitBooking:
		customer.HandleSubmitBooking(ctx, b, callback, h)

	// ===== Bookings List =====
	case data == keyboard.CallbackMyBookings:
		customer.HandleMyBookings(ctx, b, callback, h)
	case strings.HasPrefix(data, common.BookingsPage):
		customer.HandleBookingsPage(ctx, b, callback, h)
	case strings.HasPrefix(data, common.CancelBooking):
		customer.HandleCancelBooking(ctx, b, callback, h)
	case data == common.BookingsSummary:
		customer.HandleBookingsSummary(ctx, b, callback, h)

	// ===== Unknown Callback =====
	default:
		h.Logger.Warn("Unknown callback",
			zap.String("data", data),
			zap.Int64("user_id", callback.From.ID))
		common.AnswerCallback(ctx, b, callback.ID, "❌ Unknown action")
	}
}
