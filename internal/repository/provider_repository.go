package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/repair_bot/internal/model"
	"github.com/Freeeeeet/repair_bot/internal/repository/store"
)

type ProviderRepository struct {
	store store.Store
}

func NewProviderRepository(s store.Store) *ProviderRepository {
	return &ProviderRepository{store: s}
}

// ListByService получает мастеров, оказывающих услугу
func (r *ProviderRepository) ListByService(ctx context.Context, serviceID string) ([]*model.Provider, error) {
	records, err := r.store.Select(ctx, TableProviders, store.Query{
		Filter:  store.Filter{{Column: "service_id", Value: serviceID}},
		OrderBy: []store.Order{{Column: "rating", Desc: true}},
	})
	if err != nil {
		return nil, fmt.Errorf("list providers by service: %w", err)
	}

	providers := make([]*model.Provider, 0, len(records))
	for _, rec := range records {
		providers = append(providers, &model.Provider{
			ID:              rec.String("id"),
			ServiceID:       rec.String("service_id"),
			Name:            rec.String("name"),
			Rating:          rec.Float64("rating"),
			ExperienceYears: int(rec.Int64("experience_years")),
			Location:        rec.String("location"),
			ImageURL:        rec.String("image_url"),
		})
	}
	return providers, nil
}
