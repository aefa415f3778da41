package state

import (
	"sync"
	"testing"
	"time"

	"github.com/Freeeeeet/repair_bot/internal/model"
	"github.com/Freeeeeet/repair_bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	t.Parallel()

	t.Run("unknown user has empty session", func(t *testing.T) {
		m := NewManager()
		assert.Equal(t, StateNone, m.Get(1).State)
		assert.False(t, m.Get(1).BookingsLoaded)
	})

	t.Run("returned session is a copy", func(t *testing.T) {
		m := NewManager()
		m.Update(1, func(Session) Session {
			return Session{State: StateBookingDate, ServiceName: "Plumbing"}
		})

		s := m.Get(1)
		s.ServiceName = "changed"

		assert.Equal(t, "Plumbing", m.Get(1).ServiceName)
	})

	t.Run("clear state keeps cached bookings", func(t *testing.T) {
		m := NewManager()
		list := service.LoadInitial([]model.BookingDetails{{Booking: model.Booking{ID: "b1"}}})
		m.Update(1, func(Session) Session {
			return Session{
				State:          StateBookingAddress,
				Draft:          model.Draft{ServiceID: "s1"},
				Bookings:       list,
				BookingsLoaded: true,
			}
		})

		m.ClearState(1)

		s := m.Get(1)
		assert.Equal(t, StateNone, s.State)
		assert.Equal(t, model.Draft{}, s.Draft)
		assert.True(t, s.BookingsLoaded)
		assert.Equal(t, 1, s.Bookings.Len())
	})

	t.Run("concurrent updates are not lost", func(t *testing.T) {
		m := NewManager()

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				m.Update(1, func(s Session) Session {
					s.BookingsPage++
					return s
				})
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, m.Get(1).BookingsPage)
	})
}

func TestSession_WithDraft(t *testing.T) {
	t.Parallel()

	s := Session{State: StateBookingTime}.WithDraft(func(d *model.Draft) {
		d.ServiceID = "s1"
	})
	require.NotEmpty(t, s.Draft.IdempotencyKey)
	first := s.Draft.IdempotencyKey

	s = s.WithDraft(func(d *model.Draft) {
		d.ScheduledAt = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	})
	assert.Equal(t, "s1", s.Draft.ServiceID)
	assert.NotEqual(t, first, s.Draft.IdempotencyKey)
}

func TestSession_InBookingDialog(t *testing.T) {
	t.Parallel()

	assert.False(t, Session{}.InBookingDialog())
	assert.True(t, Session{State: StateBookingAddress}.InBookingDialog())

	s := Session{State: StateBookingConfirm, Providers: []model.Provider{{ID: "p1", Name: "Ann"}}}
	p, ok := s.FindProvider("p1")
	require.True(t, ok)
	assert.Equal(t, "Ann", p.Name)

	_, ok = s.FindProvider("p2")
	assert.False(t, ok)
	assert.False(t, s.ResetDialog().InBookingDialog())
}
