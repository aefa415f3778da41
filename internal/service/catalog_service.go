package service

import (
	"context"
	"errors"

	"github.com/Freeeeeet/repair_bot/internal/model"
	"github.com/Freeeeeet/repair_bot/internal/repository"
	"github.com/Freeeeeet/repair_bot/internal/repository/store"
	"go.uber.org/zap"
)

// CatalogService - чтение каталога услуг и мастеров
type CatalogService struct {
	serviceRepo  *repository.ServiceRepository
	providerRepo *repository.ProviderRepository
	logger       *zap.Logger
}

func NewCatalogService(
	serviceRepo *repository.ServiceRepository,
	providerRepo *repository.ProviderRepository,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		serviceRepo:  serviceRepo,
		providerRepo: providerRepo,
		logger:       logger,
	}
}

// ListServices возвращает все услуги
func (s *CatalogService) ListServices(ctx context.Context) ([]*model.Service, error) {
	return s.serviceRepo.List(ctx)
}

// GetService получает услугу, NotFoundError если её нет
func (s *CatalogService) GetService(ctx context.Context, id string) (*model.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{Entity: "service", ID: id}
		}
		s.logger.Error("Failed to get service", zap.String("service_id", id), zap.Error(err))
		return nil, err
	}
	return svc, nil
}

// ListProviders возвращает мастеров услуги
func (s *CatalogService) ListProviders(ctx context.Context, serviceID string) ([]*model.Provider, error) {
	return s.providerRepo.ListByService(ctx, serviceID)
}

// GetServiceDetails - услуга вместе с её мастерами для экрана услуги
func (s *CatalogService) GetServiceDetails(ctx context.Context, id string) (*model.Service, []*model.Provider, error) {
	svc, err := s.GetService(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	providers, err := s.ListProviders(ctx, id)
	if err != nil {
		s.logger.Error("Failed to list providers", zap.String("service_id", id), zap.Error(err))
		return nil, nil, err
	}

	return svc, providers, nil
}
