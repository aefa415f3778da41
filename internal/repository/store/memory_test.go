package store

import (
	"context"
	"testing"
	"time"

	"github.com/Freeeeeet/repair_bot/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	newStore := func() *MemoryStore {
		s := NewMemoryStore(clock.NewFixed(now)).WithUnique("bookings", "idempotency_key")
		s.Seed("services", Record{"id": "s1", "name": "Plumbing", "icon": "Droplets"})
		s.Seed("providers", Record{"id": "p1", "name": "Ann", "image_url": "ann.png"})
		return s
	}

	t.Run("insert assigns id and created_at", func(t *testing.T) {
		s := newStore()

		rec, err := s.Insert(ctx, "bookings", Record{"status": "pending"})
		require.NoError(t, err)
		assert.NotEmpty(t, rec.String("id"))
		assert.True(t, rec.Time("created_at").Equal(now))
	})

	t.Run("duplicate unique key", func(t *testing.T) {
		s := newStore()

		_, err := s.Insert(ctx, "bookings", Record{"idempotency_key": "k1"})
		require.NoError(t, err)
		_, err = s.Insert(ctx, "bookings", Record{"idempotency_key": "k1"})
		assert.ErrorIs(t, err, ErrDuplicate)

		_, err = s.Insert(ctx, "bookings", Record{"idempotency_key": ""})
		require.NoError(t, err)
		_, err = s.Insert(ctx, "bookings", Record{})
		require.NoError(t, err)
	})

	t.Run("select with filter join and order", func(t *testing.T) {
		s := newStore()
		s.Seed("bookings",
			Record{"id": "b1", "service_id": "s1", "provider_id": "p1", "customer_id": int64(1), "created_at": now.Add(-2 * time.Hour)},
			Record{"id": "b2", "service_id": "s1", "provider_id": "p1", "customer_id": int64(1), "created_at": now.Add(-1 * time.Hour)},
			Record{"id": "b3", "service_id": "s1", "provider_id": "p1", "customer_id": int64(2), "created_at": now},
		)

		records, err := s.Select(ctx, "bookings", Query{
			Filter: Filter{{Column: "customer_id", Value: int64(1)}},
			Joins: []Join{
				{Table: "services", LocalKey: "service_id", Columns: []string{"name", "icon"}},
				{Table: "providers", LocalKey: "provider_id", Columns: []string{"name", "image_url"}},
			},
			OrderBy: []Order{{Column: "created_at", Desc: true}},
		})
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "b2", records[0].String("id"))
		assert.Equal(t, "b1", records[1].String("id"))
		assert.Equal(t, Record{"name": "Plumbing", "icon": "Droplets"}, records[0].Nested("services"))
		assert.Equal(t, Record{"name": "Ann", "image_url": "ann.png"}, records[0].Nested("providers"))
	})

	t.Run("select one", func(t *testing.T) {
		s := newStore()

		rec, err := s.SelectOne(ctx, "services", Filter{{Column: "id", Value: "s1"}})
		require.NoError(t, err)
		assert.Equal(t, "Plumbing", rec.String("name"))

		_, err = s.SelectOne(ctx, "services", Filter{{Column: "id", Value: "nope"}})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update by id", func(t *testing.T) {
		s := newStore()
		s.Seed("bookings", Record{"id": "b1", "status": "pending", "address": "1 Elm"})

		require.NoError(t, s.Update(ctx, "bookings", "b1", Record{"status": "cancelled"}))

		rec, err := s.SelectOne(ctx, "bookings", Filter{{Column: "id", Value: "b1"}})
		require.NoError(t, err)
		assert.Equal(t, "cancelled", rec.String("status"))
		assert.Equal(t, "1 Elm", rec.String("address"))

		assert.ErrorIs(t, s.Update(ctx, "bookings", "nope", Record{"status": "cancelled"}), ErrNotFound)
		assert.Error(t, s.Update(ctx, "bookings", "b1", Record{}))
	})

	t.Run("returned records are copies", func(t *testing.T) {
		s := newStore()

		rec, err := s.SelectOne(ctx, "services", Filter{{Column: "id", Value: "s1"}})
		require.NoError(t, err)
		rec["name"] = "changed"

		again, err := s.SelectOne(ctx, "services", Filter{{Column: "id", Value: "s1"}})
		require.NoError(t, err)
		assert.Equal(t, "Plumbing", again.String("name"))
	})

	t.Run("cancelled context", func(t *testing.T) {
		s := newStore()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := s.Select(cctx, "services", Query{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
