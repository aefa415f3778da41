package controller

import (
	"context"
	"strings"
	"time"

	"github.com/Freeeeeet/repair_bot/internal/clock"
	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/repair_bot/internal/controller/handlers"
	"github.com/Freeeeeet/repair_bot/internal/controller/state"
	"github.com/Freeeeeet/repair_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	catalogService *service.CatalogService,
	bookingService *service.BookingService,
	clk clock.Clock,
	redirectDelay time.Duration,
	logger *zap.Logger,
) *BotController {
	// Создаём менеджер состояний
	stateManager := state.NewManager()

	// Создаём callback handler с зависимостями
	callbackHandler := callbacks.NewHandler(
		catalogService,
		bookingService,
		stateManager,
		clk,
		redirectDelay,
		logger,
	)

	// Обработчики команд используют те же зависимости
	cmdHandlers := handlers.NewHandlers(callbackHandler.Handler)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// Регистрируем команды
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/services", bot.MatchTypeExact, c.handlers.HandleServices)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/mybookings", bot.MatchTypeExact, c.handlers.HandleMyBookings)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Обработчик текстовых сообщений (ввод адреса), команды сюда не попадают
	c.bot.RegisterHandlerMatchFunc(isPlainText, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// isPlainText - текстовое сообщение, которое не является командой
func isPlainText(update *models.Update) bool {
	if update.Message == nil || update.Message.Text == "" {
		return false
	}
	return !strings.HasPrefix(update.Message.Text, "/")
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Start"},
		{Command: "services", Description: "🛠 Browse services"},
		{Command: "mybookings", Description: "📅 My bookings"},
		{Command: "cancel", Description: "✖️ Stop the current booking"},
		{Command: "help", Description: "❓ Help"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
