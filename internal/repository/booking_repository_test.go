package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Freeeeeet/repair_bot/internal/model"
	"github.com/Freeeeeet/repair_bot/internal/repository/store"
	"github.com/Freeeeeet/repair_bot/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Идентификаторы из миграции с демо-каталогом
const (
	seedPlumbingID = "a0b1c2d3-0000-4000-8000-000000000001"
	seedMikeID     = "b0c1d2e3-0000-4000-8000-000000000001"
)

func TestPostgresRepositories(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)

	pg := store.NewPostgresStore(pool)
	services := NewServiceRepository(pg)
	providers := NewProviderRepository(pg)
	bookings := NewBookingRepository(pg)

	t.Run("catalog reads", func(t *testing.T) {
		svc, err := services.GetByID(ctx, seedPlumbingID)
		require.NoError(t, err)
		assert.Equal(t, "Plumbing", svc.Name)
		assert.Equal(t, model.IconDroplets, svc.Icon)
		assert.Equal(t, 7500, svc.BasePrice)

		list, err := providers.ListByService(ctx, seedPlumbingID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Mike Turner", list[0].Name)
		assert.InDelta(t, 4.8, list[0].Rating, 1e-9)

		_, err = services.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, store.ErrNotFound)

		_, err = services.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("create list and cancel booking", func(t *testing.T) {
		testutil.TruncateBookings(t, ctx, pool)

		booking := &model.Booking{
			ServiceID:      seedPlumbingID,
			ProviderID:     seedMikeID,
			CustomerID:     77,
			ScheduledAt:    time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC),
			Address:        "123 Main St",
			Status:         model.BookingStatusPending,
			IdempotencyKey: uuid.NewString(),
		}
		require.NoError(t, bookings.Create(ctx, booking))
		assert.NotEmpty(t, booking.ID)
		assert.False(t, booking.CreatedAt.IsZero())

		err := bookings.Create(ctx, &model.Booking{
			ServiceID:      seedPlumbingID,
			ProviderID:     seedMikeID,
			ScheduledAt:    booking.ScheduledAt,
			Address:        "dup",
			Status:         model.BookingStatusPending,
			IdempotencyKey: booking.IdempotencyKey,
		})
		assert.ErrorIs(t, err, store.ErrDuplicate)

		found, err := bookings.GetByIdempotencyKey(ctx, booking.IdempotencyKey)
		require.NoError(t, err)
		assert.Equal(t, booking.ID, found.ID)
		assert.True(t, found.ScheduledAt.Equal(booking.ScheduledAt))

		detailed, err := bookings.ListDetailed(ctx, 77)
		require.NoError(t, err)
		require.Len(t, detailed, 1)
		assert.Equal(t, "Plumbing", detailed[0].Service.Name)
		assert.Equal(t, model.IconDroplets, detailed[0].Service.Icon)
		assert.Equal(t, "Mike Turner", detailed[0].Provider.Name)
		assert.Equal(t, model.BookingStatusPending, detailed[0].Status)

		require.NoError(t, bookings.UpdateStatus(ctx, booking.ID, model.BookingStatusCancelled))
		detailed, err = bookings.ListDetailed(ctx, 77)
		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusCancelled, detailed[0].Status)

		err = bookings.UpdateStatus(ctx, uuid.NewString(), model.BookingStatusCancelled)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}
