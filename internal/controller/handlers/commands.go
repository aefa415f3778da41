package handlers

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/customer"
	"github.com/Freeeeeet/repair_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	welcomeText := fmt.Sprintf(
		"👋 Hi, %s!\n\n"+
			"Book a trusted pro for plumbing, electrical work, painting and more.\n\n"+
			"Commands:\n"+
			"/services - Browse services\n"+
			"/mybookings - My bookings\n"+
			"/cancel - Stop the current booking\n"+
			"/help - Help",
		html.EscapeString(update.Message.From.FirstName),
	)

	h.sendMessage(ctx, b, update.Message.Chat.ID, welcomeText)
	h.HandleServices(ctx, b, update)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "❓ <b>How booking works</b>\n\n" +
		"1. Pick a service in /services\n" +
		"2. Choose a provider, a day and a time\n" +
		"3. Send the service address\n" +
		"4. Submit the request: it stays ⏳ Pending until the provider confirms\n\n" +
		"Pending bookings can be cancelled from /mybookings.\n" +
		"/cancel stops a booking in progress."

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleServices обрабатывает команду /services - каталог услуг
func (h *Handlers) HandleServices(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	if err := customer.SendCatalog(ctx, b, h.deps, update.Message.Chat.ID); err != nil {
		h.logger.Error("Failed to send catalog", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Failed to load services. Please try again later.")
	}
}

// HandleMyBookings обрабатывает команду /mybookings - список перечитывается из хранилища
func (h *Handlers) HandleMyBookings(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	telegramID := update.Message.From.ID
	if err := customer.SendBookings(ctx, b, h.deps, update.Message.Chat.ID, telegramID, true); err != nil {
		h.logger.Error("Failed to send bookings", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Failed to load bookings. Please try again later.")
	}
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	telegramID := update.Message.From.ID
	if !h.stateManager.Get(telegramID).InBookingDialog() {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "ℹ️ Nothing to cancel.")
		return
	}

	// Очищаем состояние
	h.stateManager.ClearState(telegramID)

	h.sendMessage(ctx, b, update.Message.Chat.ID, "✅ Booking stopped.\n\nUse /services to start again.")
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
		return
	}

	// Игнорируем команды (они обрабатываются другими handlers)
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	session := h.stateManager.Get(telegramID)

	h.logger.Debug("HandleTextMessage called",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(session.State)))

	switch {
	case session.State == state.StateBookingAddress:
		h.handleAddressStep(ctx, b, update)
	case session.InBookingDialog():
		h.sendMessage(ctx, b, update.Message.Chat.ID, "👆 Please use the buttons above, or /cancel to stop.")
	default:
		h.sendMessage(ctx, b, update.Message.Chat.ID, "Use /services to book a visit or /help for the list of commands.")
	}
}
