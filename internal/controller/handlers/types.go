package handlers

import (
	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_bot/internal/controller/state"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	stateManager *state.Manager
	logger       *zap.Logger

	// Общие зависимости с callback handlers: экраны каталога и записей
	// отправляются одними и теми же функциями
	deps *callbacktypes.Handler
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(deps *callbacktypes.Handler) *Handlers {
	return &Handlers{
		stateManager: deps.StateManager,
		logger:       deps.Logger,
		deps:         deps,
	}
}
