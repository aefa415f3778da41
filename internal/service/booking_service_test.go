package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Freeeeeet/repair_bot/internal/model"
	"github.com/Freeeeeet/repair_bot/internal/repository"
	"github.com/Freeeeeet/repair_bot/internal/repository/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newBookingService(s store.Store) *BookingService {
	return NewBookingService(repository.NewBookingRepository(s), zap.NewNop())
}

func completeDraft() model.Draft {
	return model.Draft{
		ServiceID:   "s1",
		ProviderID:  "p1",
		ScheduledAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Address:     "123 Main St",
	}
}

func TestBookingService_SubmitBooking(t *testing.T) {
	t.Parallel()

	t.Run("complete draft issues one pending insert", func(t *testing.T) {
		s := newRecordingStore()
		svc := newBookingService(s)

		booking, err := svc.SubmitBooking(context.Background(), completeDraft())
		require.NoError(t, err)

		require.Len(t, s.inserts, 1)
		rec := s.inserts[0]
		assert.Equal(t, "s1", rec["service_id"])
		assert.Equal(t, "p1", rec["provider_id"])
		assert.Equal(t, "2025-06-01T10:00:00Z", rec["scheduled_at"])
		assert.Equal(t, "123 Main St", rec["address"])
		assert.Equal(t, "pending", rec["status"])

		assert.NotEmpty(t, booking.ID)
		assert.Equal(t, model.BookingStatusPending, booking.Status)
		assert.False(t, booking.CreatedAt.IsZero())
	})

	t.Run("scheduled_at is normalized to UTC", func(t *testing.T) {
		s := newRecordingStore()
		svc := newBookingService(s)

		draft := completeDraft()
		draft.ScheduledAt = time.Date(2025, 6, 1, 13, 0, 0, 0, time.FixedZone("MSK", 3*3600))

		_, err := svc.SubmitBooking(context.Background(), draft)
		require.NoError(t, err)
		require.Len(t, s.inserts, 1)

		raw, ok := s.inserts[0]["scheduled_at"].(string)
		require.True(t, ok)
		parsed, err := time.Parse(time.RFC3339, raw)
		require.NoError(t, err)
		assert.Equal(t, "2025-06-01T10:00:00Z", raw)
		assert.True(t, parsed.Equal(draft.ScheduledAt))
	})

	missing := []struct {
		name   string
		mutate func(*model.Draft)
		field  string
	}{
		{"service", func(d *model.Draft) { d.ServiceID = "" }, "service_id"},
		{"provider", func(d *model.Draft) { d.ProviderID = "" }, "provider_id"},
		{"scheduled_at", func(d *model.Draft) { d.ScheduledAt = time.Time{} }, "scheduled_at"},
		{"address", func(d *model.Draft) { d.Address = "" }, "address"},
		{"blank address", func(d *model.Draft) { d.Address = "   " }, "address"},
	}

	for _, tc := range missing {
		t.Run("missing "+tc.name+" fails without store call", func(t *testing.T) {
			s := newRecordingStore()
			svc := newBookingService(s)

			draft := completeDraft()
			tc.mutate(&draft)

			booking, err := svc.SubmitBooking(context.Background(), draft)
			require.Error(t, err)
			assert.Nil(t, booking)
			assert.ErrorIs(t, err, ErrValidation)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, []string{tc.field}, vErr.Missing)
			assert.Empty(t, s.inserts)
		})
	}

	t.Run("empty draft lists every missing field", func(t *testing.T) {
		s := newRecordingStore()
		svc := newBookingService(s)

		_, err := svc.SubmitBooking(context.Background(), model.Draft{})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"service_id", "provider_id", "scheduled_at", "address"}, vErr.Missing)
		assert.Empty(t, s.inserts)
	})

	t.Run("insert failure wraps cause in StoreWriteError", func(t *testing.T) {
		s := newRecordingStore()
		cause := errors.New("connection reset")
		s.insertErr = cause
		svc := newBookingService(s)

		booking, err := svc.SubmitBooking(context.Background(), completeDraft())
		assert.Nil(t, booking)
		assert.ErrorIs(t, err, ErrStoreWrite)
		assert.ErrorIs(t, err, cause)

		var wErr *StoreWriteError
		require.ErrorAs(t, err, &wErr)
		assert.Equal(t, OpInsertBooking, wErr.Op)
		assert.Len(t, s.inserts, 1)
	})

	t.Run("resubmitting the same draft returns the stored booking", func(t *testing.T) {
		s := newRecordingStore()
		svc := newBookingService(s)

		draft := completeDraft()
		draft.IdempotencyKey = "3f1c2a7e-0d4b-4c55-9a61-2f8b0c9d1e77"

		first, err := svc.SubmitBooking(context.Background(), draft)
		require.NoError(t, err)

		second, err := svc.SubmitBooking(context.Background(), draft)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Len(t, s.inserts, 2)

		records, err := s.Select(context.Background(), repository.TableBookings, store.Query{})
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("customer id is stored when known", func(t *testing.T) {
		s := newRecordingStore()
		svc := newBookingService(s)

		draft := completeDraft()
		draft.CustomerID = 42

		_, err := svc.SubmitBooking(context.Background(), draft)
		require.NoError(t, err)
		assert.Equal(t, int64(42), s.inserts[0]["customer_id"])
	})
}

func TestBookingService_CancelBooking(t *testing.T) {
	t.Parallel()

	seed := func(s *recordingStore) {
		s.Seed(repository.TableBookings,
			store.Record{"id": "b1", "status": "pending", "created_at": time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)},
			store.Record{"id": "b2", "status": "completed", "created_at": time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
		)
	}

	t.Run("sets status cancelled with a single update", func(t *testing.T) {
		s := newRecordingStore()
		seed(s)
		svc := newBookingService(s)

		require.NoError(t, svc.CancelBooking(context.Background(), "b1"))
		require.Len(t, s.updates, 1)
		assert.Equal(t, store.Record{"status": "cancelled"}, s.updates[0])

		rec, err := s.SelectOne(context.Background(), repository.TableBookings, store.Filter{{Column: "id", Value: "b1"}})
		require.NoError(t, err)
		assert.Equal(t, "cancelled", rec.String("status"))
	})

	t.Run("unknown booking returns NotFoundError", func(t *testing.T) {
		s := newRecordingStore()
		seed(s)
		svc := newBookingService(s)

		err := svc.CancelBooking(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)

		var nfErr *NotFoundError
		require.ErrorAs(t, err, &nfErr)
		assert.Equal(t, "booking", nfErr.Entity)
	})

	t.Run("update failure returns StoreWriteError", func(t *testing.T) {
		s := newRecordingStore()
		seed(s)
		s.updateErr = errors.New("timeout")
		svc := newBookingService(s)

		err := svc.CancelBooking(context.Background(), "b1")
		assert.ErrorIs(t, err, ErrStoreWrite)

		rec, selErr := s.SelectOne(context.Background(), repository.TableBookings, store.Filter{{Column: "id", Value: "b1"}})
		require.NoError(t, selErr)
		assert.Equal(t, "pending", rec.String("status"))
	})

	t.Run("cancel then patch local list", func(t *testing.T) {
		s := newRecordingStore()
		seed(s)
		svc := newBookingService(s)

		list, err := svc.ListBookings(context.Background(), 0)
		require.NoError(t, err)

		require.NoError(t, svc.CancelBooking(context.Background(), "b1"))
		list = list.ApplyCancellation("b1")

		items := list.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "b1", items[0].ID)
		assert.Equal(t, model.BookingStatusCancelled, items[0].Status)
		assert.Equal(t, "b2", items[1].ID)
		assert.Equal(t, model.BookingStatusCompleted, items[1].Status)
	})
}

func TestBookingService_ListBookings(t *testing.T) {
	t.Parallel()

	s := newRecordingStore()
	s.Seed(repository.TableServices, store.Record{"id": "s1", "name": "Plumbing", "icon": "Droplets"})
	s.Seed(repository.TableProviders, store.Record{"id": "p1", "name": "Ann", "image_url": "https://img/ann.png"})
	s.Seed(repository.TableBookings,
		store.Record{"id": "old", "service_id": "s1", "provider_id": "p1", "status": "confirmed", "customer_id": int64(7),
			"created_at": time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
		store.Record{"id": "new", "service_id": "s1", "provider_id": "p1", "status": "pending", "customer_id": int64(7),
			"created_at": time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC)},
		store.Record{"id": "other", "service_id": "s1", "provider_id": "p1", "status": "pending", "customer_id": int64(8),
			"created_at": time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)},
	)
	svc := newBookingService(s)

	list, err := svc.ListBookings(context.Background(), 7)
	require.NoError(t, err)

	items := list.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "new", items[0].ID)
	assert.Equal(t, "old", items[1].ID)
	assert.Equal(t, "Plumbing", items[0].Service.Name)
	assert.Equal(t, model.IconDroplets, items[0].Service.Icon)
	assert.Equal(t, "Ann", items[0].Provider.Name)
	assert.Equal(t, Summary{Active: 2, Total: 2}, list.DeriveSummary())
}

func TestBookingService_ListBookings_UnknownStatus(t *testing.T) {
	t.Parallel()

	s := newRecordingStore()
	s.Seed(repository.TableBookings,
		store.Record{"id": "b1", "status": "pending", "customer_id": int64(7)},
		store.Record{"id": "b2", "status": "rejected", "customer_id": int64(7)},
	)
	core, logs := observer.New(zapcore.WarnLevel)
	svc := NewBookingService(repository.NewBookingRepository(s), zap.New(core))

	list, err := svc.ListBookings(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 2, list.Len())
	assert.False(t, list.Cancellable("b2"))

	entries := logs.FilterMessage("Booking has unknown status").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "b2", entries[0].ContextMap()["booking_id"])
	assert.Equal(t, "rejected", entries[0].ContextMap()["status"])
}
