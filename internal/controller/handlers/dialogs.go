package handlers

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/repair_bot/internal/controller/state"
	"github.com/Freeeeeet/repair_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ValidateAddress проверяет введённый адрес и возвращает его без лишних пробелов
func ValidateAddress(raw string) (string, error) {
	address := strings.Join(strings.Fields(raw), " ")

	length := utf8.RuneCountInString(address)
	if length < AddressMinLength {
		return "", fmt.Errorf("address is too short, at least %d characters", AddressMinLength)
	}
	if length > AddressMaxLength {
		return "", fmt.Errorf("address is too long, at most %d characters", AddressMaxLength)
	}
	return address, nil
}

// handleAddressStep сохраняет адрес в черновик и показывает подтверждение
func (h *Handlers) handleAddressStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	address, err := ValidateAddress(update.Message.Text)
	if err != nil {
		h.logger.Debug("Invalid address", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendError(ctx, b, chatID, fmt.Sprintf("❌ The %s.\n\nPlease send the address again:", err))
		return
	}

	next := h.stateManager.Update(telegramID, func(s state.Session) state.Session {
		// Диалог могли прервать, пока пользователь печатал
		if s.State != state.StateBookingAddress {
			return s
		}
		s.State = state.StateBookingConfirm
		return s.WithDraft(func(d *model.Draft) {
			d.Address = address
		})
	})
	if next.State != state.StateBookingConfirm {
		return
	}

	h.logger.Info("Address saved, moving to confirmation", zap.Int64("telegram_id", telegramID))

	text, kb := common.BuildConfirmScreen(next)
	if err := common.SendHTML(ctx, b, chatID, text, kb); err != nil {
		h.logger.Error("Failed to send confirmation", zap.Int64("telegram_id", telegramID), zap.Error(err))
	}
}
