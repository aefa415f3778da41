package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/repair_bot/internal/model"
	"github.com/Freeeeeet/repair_bot/internal/repository/store"
)

// Колонки, которые подтягиваются в список записей
var (
	bookingServiceJoin  = store.Join{Table: TableServices, LocalKey: "service_id", Columns: []string{"name", "icon"}}
	bookingProviderJoin = store.Join{Table: TableProviders, LocalKey: "provider_id", Columns: []string{"name", "image_url"}}
)

type BookingRepository struct {
	store store.Store
}

func NewBookingRepository(s store.Store) *BookingRepository {
	return &BookingRepository{store: s}
}

// Create создаёт новое бронирование одной вставкой
func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	rec, err := r.store.Insert(ctx, TableBookings, bookingRecord(booking))
	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	created := bookingFromRecord(rec)
	booking.ID = created.ID
	booking.CreatedAt = created.CreatedAt
	return nil
}

// UpdateStatus обновляет статус бронирования
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) error {
	err := r.store.Update(ctx, TableBookings, id, store.Record{"status": string(status)})
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	return nil
}

// GetByIdempotencyKey ищет бронирование, созданное из того же черновика
func (r *BookingRepository) GetByIdempotencyKey(ctx context.Context, key string) (*model.Booking, error) {
	rec, err := r.store.SelectOne(ctx, TableBookings, store.Filter{{Column: "idempotency_key", Value: key}})
	if err != nil {
		return nil, fmt.Errorf("get booking by idempotency key: %w", err)
	}
	booking := bookingFromRecord(rec)
	return &booking, nil
}

// ListDetailed получает бронирования клиента вместе с услугой и мастером,
// свежие сверху. customerID == 0 - без фильтра по клиенту.
func (r *BookingRepository) ListDetailed(ctx context.Context, customerID int64) ([]model.BookingDetails, error) {
	q := store.Query{
		Joins:   []store.Join{bookingServiceJoin, bookingProviderJoin},
		OrderBy: []store.Order{{Column: "created_at", Desc: true}},
	}
	if customerID != 0 {
		q.Filter = store.Filter{{Column: "customer_id", Value: customerID}}
	}

	records, err := r.store.Select(ctx, TableBookings, q)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	out := make([]model.BookingDetails, 0, len(records))
	for _, rec := range records {
		svc := rec.Nested(TableServices)
		prov := rec.Nested(TableProviders)
		out = append(out, model.BookingDetails{
			Booking: bookingFromRecord(rec),
			Service: model.ServiceSummary{
				Name: svc.String("name"),
				Icon: model.ParseIconTag(svc.String("icon")),
			},
			Provider: model.ProviderSummary{
				Name:     prov.String("name"),
				ImageURL: prov.String("image_url"),
			},
		})
	}
	return out, nil
}

// bookingRecord строит запись для вставки. scheduled_at уходит строкой ISO-8601 в UTC.
func bookingRecord(b *model.Booking) store.Record {
	rec := store.Record{
		"service_id":   b.ServiceID,
		"provider_id":  b.ProviderID,
		"scheduled_at": b.ScheduledAt.UTC().Format(time.RFC3339),
		"address":      b.Address,
		"status":       string(b.Status),
	}
	if b.CustomerID != 0 {
		rec["customer_id"] = b.CustomerID
	}
	if b.IdempotencyKey != "" {
		rec["idempotency_key"] = b.IdempotencyKey
	}
	return rec
}

func bookingFromRecord(rec store.Record) model.Booking {
	return model.Booking{
		ID:             rec.String("id"),
		ServiceID:      rec.String("service_id"),
		ProviderID:     rec.String("provider_id"),
		CustomerID:     rec.Int64("customer_id"),
		ScheduledAt:    rec.Time("scheduled_at"),
		Address:        rec.String("address"),
		Status:         model.BookingStatus(rec.String("status")),
		IdempotencyKey: rec.String("idempotency_key"),
		CreatedAt:      rec.Time("created_at"),
	}
}
