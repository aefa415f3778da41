package state

import (
	"sync"
)

// Manager хранит сессии пользователей в памяти процесса
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]Session // telegramID -> Session
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]Session),
	}
}

// Get возвращает копию сессии пользователя (пустую, если её нет)
func (sm *Manager) Get(telegramID int64) Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.sessions[telegramID]
}

// Update атомарно применяет fn к сессии и сохраняет результат
func (sm *Manager) Update(telegramID int64, fn func(Session) Session) Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	next := fn(sm.sessions[telegramID])
	sm.sessions[telegramID] = next
	return next
}

// ClearState сбрасывает диалог, кэш списка записей сохраняется
func (sm *Manager) ClearState(telegramID int64) {
	sm.Update(telegramID, Session.ResetDialog)
}
