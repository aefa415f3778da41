package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Freeeeeet/repair_bot/internal/model"
	"github.com/Freeeeeet/repair_bot/internal/repository"
	"github.com/Freeeeeet/repair_bot/internal/repository/store"
	"go.uber.org/zap"
)

type BookingService struct {
	bookingRepo *repository.BookingRepository
	logger      *zap.Logger
}

func NewBookingService(bookingRepo *repository.BookingRepository, logger *zap.Logger) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// ValidateDraft проверяет что все четыре обязательных поля заполнены.
// Дата в прошлом здесь не проверяется: будущие даты предлагает только выбор даты в диалоге.
func ValidateDraft(draft model.Draft) error {
	var missing []string
	if strings.TrimSpace(draft.ServiceID) == "" {
		missing = append(missing, "service_id")
	}
	if strings.TrimSpace(draft.ProviderID) == "" {
		missing = append(missing, "provider_id")
	}
	if draft.ScheduledAt.IsZero() {
		missing = append(missing, "scheduled_at")
	}
	if strings.TrimSpace(draft.Address) == "" {
		missing = append(missing, "address")
	}

	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// SubmitBooking валидирует черновик и создаёт pending бронирование
func (s *BookingService) SubmitBooking(ctx context.Context, draft model.Draft) (*model.Booking, error) {
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	booking := &model.Booking{
		ServiceID:      draft.ServiceID,
		ProviderID:     draft.ProviderID,
		CustomerID:     draft.CustomerID,
		ScheduledAt:    draft.ScheduledAt.UTC(),
		Address:        strings.TrimSpace(draft.Address),
		Status:         model.BookingStatusPending,
		IdempotencyKey: draft.IdempotencyKey,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		// Повторная отправка того же черновика: запись уже создана в прошлый раз
		if draft.IdempotencyKey != "" && errors.Is(err, store.ErrDuplicate) {
			existing, lookupErr := s.bookingRepo.GetByIdempotencyKey(ctx, draft.IdempotencyKey)
			if lookupErr == nil {
				s.logger.Info("Booking already submitted",
					zap.String("booking_id", existing.ID),
					zap.String("idempotency_key", draft.IdempotencyKey),
				)
				return existing, nil
			}
			s.logger.Warn("Failed to look up duplicate booking",
				zap.String("idempotency_key", draft.IdempotencyKey),
				zap.Error(lookupErr),
			)
		}

		s.logger.Error("Failed to create booking",
			zap.String("service_id", draft.ServiceID),
			zap.String("provider_id", draft.ProviderID),
			zap.Error(err),
		)
		return nil, &StoreWriteError{Op: OpInsertBooking, Err: err}
	}

	s.logger.Info("Booking requested",
		zap.String("booking_id", booking.ID),
		zap.String("service_id", booking.ServiceID),
		zap.String("provider_id", booking.ProviderID),
		zap.Time("scheduled_at", booking.ScheduledAt),
	)

	return booking, nil
}

// CancelBooking переводит бронирование в cancelled.
// Текущий статус на сервере не перепроверяется: кнопка отмены есть только у pending записей.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID string) error {
	err := s.bookingRepo.UpdateStatus(ctx, bookingID, model.BookingStatusCancelled)
	if err != nil {
		s.logger.Error("Failed to cancel booking",
			zap.String("booking_id", bookingID),
			zap.Error(err),
		)
		if errors.Is(err, store.ErrNotFound) {
			return &NotFoundError{Entity: "booking", ID: bookingID}
		}
		return &StoreWriteError{Op: OpCancelBooking, Err: err}
	}

	s.logger.Info("Booking cancelled", zap.String("booking_id", bookingID))
	return nil
}

// ListBookings загружает список записей клиента из хранилища
func (s *BookingService) ListBookings(ctx context.Context, customerID int64) (BookingList, error) {
	bookings, err := s.bookingRepo.ListDetailed(ctx, customerID)
	if err != nil {
		return BookingList{}, err
	}

	// Неизвестный статус показывается как "Unknown", действий по нему нет
	for _, b := range bookings {
		if !b.Status.Valid() {
			s.logger.Warn("Booking has unknown status",
				zap.String("booking_id", b.ID),
				zap.String("status", string(b.Status)),
			)
		}
	}

	return LoadInitial(bookings), nil
}
