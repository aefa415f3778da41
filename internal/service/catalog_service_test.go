package service

import (
	"context"
	"testing"

	"github.com/Freeeeeet/repair_bot/internal/model"
	"github.com/Freeeeeet/repair_bot/internal/repository"
	"github.com/Freeeeeet/repair_bot/internal/repository/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalogService(t *testing.T) {
	t.Parallel()

	s := newRecordingStore()
	s.Seed(repository.TableServices,
		store.Record{"id": "s1", "name": "Plumbing", "description": "Leaks", "icon": "Droplets", "base_price": int64(4500)},
		store.Record{"id": "s2", "name": "Electrical", "description": "Wiring", "icon": "Rocket", "base_price": int64(6000)},
	)
	s.Seed(repository.TableProviders,
		store.Record{"id": "p1", "service_id": "s1", "name": "Ann", "rating": 4.2, "experience_years": int32(5)},
		store.Record{"id": "p2", "service_id": "s1", "name": "Bob", "rating": 4.9, "experience_years": int32(12)},
		store.Record{"id": "p3", "service_id": "s2", "name": "Eve", "rating": 4.0, "experience_years": int32(3)},
	)

	svc := NewCatalogService(repository.NewServiceRepository(s), repository.NewProviderRepository(s), zap.NewNop())
	ctx := context.Background()

	t.Run("lists services with icon fallback", func(t *testing.T) {
		services, err := svc.ListServices(ctx)
		require.NoError(t, err)
		require.Len(t, services, 2)

		assert.Equal(t, "Electrical", services[0].Name)
		assert.Equal(t, model.IconFallback, services[0].Icon)
		assert.Equal(t, model.IconDroplets, services[1].Icon)
		assert.Equal(t, 4500, services[1].BasePrice)
	})

	t.Run("service details include only its providers ordered by rating", func(t *testing.T) {
		service, providers, err := svc.GetServiceDetails(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "Plumbing", service.Name)

		require.Len(t, providers, 2)
		assert.Equal(t, "Bob", providers[0].Name)
		assert.Equal(t, 12, providers[0].ExperienceYears)
		assert.Equal(t, "Ann", providers[1].Name)
	})

	t.Run("unknown service is NotFoundError", func(t *testing.T) {
		_, err := svc.GetService(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)

		var nfErr *NotFoundError
		require.ErrorAs(t, err, &nfErr)
		assert.Equal(t, "service", nfErr.Entity)
		assert.Equal(t, "missing", nfErr.ID)
	})
}
