package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/repair_bot/internal/model"
	"github.com/Freeeeeet/repair_bot/internal/repository/store"
)

// ServiceRepository читает каталог услуг.
// Каталог ведётся внешним процессом, здесь только чтение.
type ServiceRepository struct {
	store store.Store
}

func NewServiceRepository(s store.Store) *ServiceRepository {
	return &ServiceRepository{store: s}
}

// List возвращает все услуги каталога
func (r *ServiceRepository) List(ctx context.Context) ([]*model.Service, error) {
	records, err := r.store.Select(ctx, TableServices, store.Query{
		OrderBy: []store.Order{{Column: "name"}},
	})
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	services := make([]*model.Service, 0, len(records))
	for _, rec := range records {
		services = append(services, serviceFromRecord(rec))
	}
	return services, nil
}

// GetByID получает услугу по ID, store.ErrNotFound если её нет
func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*model.Service, error) {
	rec, err := r.store.SelectOne(ctx, TableServices, store.Filter{{Column: "id", Value: id}})
	if err != nil {
		return nil, fmt.Errorf("get service by id: %w", err)
	}
	return serviceFromRecord(rec), nil
}

func serviceFromRecord(rec store.Record) *model.Service {
	return &model.Service{
		ID:          rec.String("id"),
		Name:        rec.String("name"),
		Description: rec.String("description"),
		Icon:        model.ParseIconTag(rec.String("icon")),
		BasePrice:   int(rec.Int64("base_price")),
	}
}
