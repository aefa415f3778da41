package service

import (
	"errors"
	"fmt"
	"strings"
)

// Сентинелы для errors.Is; конкретные типы ниже несут подробности
var (
	ErrValidation = errors.New("validation failed")
	ErrStoreWrite = errors.New("store write failed")
	ErrNotFound   = errors.New("not found")
)

// ValidationError - в черновике не заполнены обязательные поля.
// Вызов хранилища при этом не выполняется.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Операции записи в хранилище для StoreWriteError.Op
const (
	OpInsertBooking = "insert booking"
	OpCancelBooking = "cancel booking"
)

// StoreWriteError - вставка или обновление в хранилище не удались
type StoreWriteError struct {
	Op  string
	Err error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}

func (e *StoreWriteError) Is(target error) bool {
	return target == ErrStoreWrite
}

// NotFoundError - услуга или бронирование с таким id не найдены
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
