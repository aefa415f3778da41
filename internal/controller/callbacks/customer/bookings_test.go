package customer

import (
	"context"
	"testing"
	"time"

	"github.com/Freeeeeet/repair_bot/internal/clock"
	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/repair_bot/internal/controller/state"
	"github.com/Freeeeeet/repair_bot/internal/model"
	"github.com/Freeeeeet/repair_bot/internal/repository"
	"github.com/Freeeeeet/repair_bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	customerID = int64(1001)
	plumbingID = "a0b1c2d3-0000-4000-8000-000000000001"
	mikeID     = "b0c1d2e3-0000-4000-8000-000000000001"
)

func newTestHandler(t *testing.T) *callbacktypes.Handler {
	t.Helper()

	clk := clock.NewFixed(time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC))
	s := repository.NewDemoMemoryStore(clk)
	logger := zap.NewNop()

	return &callbacktypes.Handler{
		CatalogService: service.NewCatalogService(repository.NewServiceRepository(s), repository.NewProviderRepository(s), logger),
		BookingService: service.NewBookingService(repository.NewBookingRepository(s), logger),
		StateManager:   state.NewManager(),
		Logger:         logger,
		Clock:          clk,
		RedirectDelay:  2 * time.Second,
	}
}

func submit(ctx context.Context, t *testing.T, h *callbacktypes.Handler) *model.Booking {
	t.Helper()

	booking, err := h.BookingService.SubmitBooking(ctx, model.Draft{
		ServiceID:   plumbingID,
		ProviderID:  mikeID,
		ScheduledAt: time.Date(2025, 5, 22, 14, 0, 0, 0, time.UTC),
		Address:     "12 Oak Street",
		CustomerID:  customerID,
	})
	require.NoError(t, err)
	return booking
}

func TestLoadBookings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHandler(t)

	first := submit(ctx, t, h)

	list, err := LoadBookings(ctx, h, customerID, false)
	require.NoError(t, err)
	require.Equal(t, 1, list.Len())

	got, ok := list.Find(first.ID)
	require.True(t, ok)
	assert.Equal(t, "Plumbing", got.Service.Name)
	assert.Equal(t, model.IconDroplets, got.Service.Icon)
	assert.Equal(t, "Mike Turner", got.Provider.Name)

	session := h.StateManager.Get(customerID)
	assert.True(t, session.BookingsLoaded)

	// Второй вызов без fresh не ходит в хранилище
	submit(ctx, t, h)
	cached, err := LoadBookings(ctx, h, customerID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, cached.Len())

	fresh, err := LoadBookings(ctx, h, customerID, true)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.Len())
	assert.Equal(t, service.Summary{Active: 2, Total: 2}, fresh.DeriveSummary())
}

func TestLoadBookings_FiltersByCustomer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHandler(t)
	submit(ctx, t, h)

	list, err := LoadBookings(ctx, h, customerID+1, true)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Len())
}

func TestCancelThenApplyCancellation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHandler(t)
	booking := submit(ctx, t, h)

	list, err := LoadBookings(ctx, h, customerID, true)
	require.NoError(t, err)
	require.True(t, list.Cancellable(booking.ID))

	require.NoError(t, h.BookingService.CancelBooking(ctx, booking.ID))
	next := h.StateManager.Update(customerID, func(s state.Session) state.Session {
		s.Bookings = s.Bookings.ApplyCancellation(booking.ID)
		return s
	})

	assert.False(t, next.Bookings.Cancellable(booking.ID))
	assert.Equal(t, service.Summary{Active: 0, Total: 1}, next.Bookings.DeriveSummary())

	// Кэш совпадает со свежим снимком хранилища
	fresh, err := LoadBookings(ctx, h, customerID, true)
	require.NoError(t, err)
	assert.Equal(t, next.Bookings.Items(), fresh.Items())
}
