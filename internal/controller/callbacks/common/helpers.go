package common

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
)

// Helper functions для всех callback handlers

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// callbackArg возвращает часть callback data после первого ':'
func callbackArg(data string) (string, error) {
	_, arg, ok := strings.Cut(data, ":")
	if !ok || arg == "" {
		return "", ErrInvalidFormat
	}
	return arg, nil
}

// ParseIDFromCallback извлекает uuid из callback data
// Например: "view_service:a0b1c2d3-0000-4000-8000-000000000001" -> "a0b1c2d3-..."
func ParseIDFromCallback(data string) (string, error) {
	arg, err := callbackArg(data)
	if err != nil {
		return "", err
	}
	id, err := uuid.Parse(arg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return id.String(), nil
}

// ParseIntFromCallback извлекает число из callback data
// Например: "bookings_page:2" -> 2
func ParseIntFromCallback(data string) (int, error) {
	arg, err := callbackArg(data)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return n, nil
}

// ParseDateFromCallback извлекает дату yyyy-mm-dd в часовом поясе loc
func ParseDateFromCallback(data string, loc *time.Location) (time.Time, error) {
	arg, err := callbackArg(data)
	if err != nil {
		return time.Time{}, err
	}
	day, err := time.ParseInLocation(time.DateOnly, arg, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return day, nil
}

// IsMessageNotModifiedError - Telegram отказал в редактировании, потому что текст не изменился
func IsMessageNotModifiedError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
