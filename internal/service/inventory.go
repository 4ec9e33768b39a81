package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventApproval/internal/domain"
	"github.com/stpnv0/EventApproval/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type InventoryService struct {
	repo   ports.InventoryRepo
	logger logger.Logger
}

func NewInventoryService(repo ports.InventoryRepo, logger logger.Logger) *InventoryService {
	return &InventoryService{repo: repo, logger: logger}
}

func (s *InventoryService) ListVenues(ctx context.Context) ([]*domain.Venue, error) {
	return s.repo.ListVenues(ctx)
}

func (s *InventoryService) ListResources(ctx context.Context) ([]*domain.Resource, error) {
	return s.repo.ListResources(ctx)
}

func (s *InventoryService) CreateVenue(
	ctx context.Context, actor domain.Actor, input domain.CreateVenueInput,
) (*domain.Venue, error) {
	if !actor.Can(domain.CapManageInventory) {
		return nil, domain.ErrForbidden
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}

	venue := &domain.Venue{
		ID:        uuid.New().String(),
		Name:      name,
		Capacity:  input.Capacity,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateVenue(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	s.logger.Info("venue created",
		logger.String("venue_id", venue.ID),
		logger.Int("capacity", venue.Capacity),
	)

	return venue, nil
}

func (s *InventoryService) CreateResource(
	ctx context.Context, actor domain.Actor, input domain.CreateResourceInput,
) (*domain.Resource, error) {
	if !actor.Can(domain.CapManageInventory) {
		return nil, domain.ErrForbidden
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.TotalQuantity < 0 {
		return nil, fmt.Errorf("%w: total_quantity must not be negative", domain.ErrValidation)
	}

	res := &domain.Resource{
		ID:            uuid.New().String(),
		Name:          name,
		TotalQuantity: input.TotalQuantity,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.CreateResource(ctx, res); err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	s.logger.Info("resource created",
		logger.String("resource_id", res.ID),
		logger.Int("total_quantity", res.TotalQuantity),
	)

	return res, nil
}

// UpdateResourceQuantity changes the ceiling of a resource. Already
// committed events are not re-validated against the new value.
func (s *InventoryService) UpdateResourceQuantity(
	ctx context.Context, actor domain.Actor, id string, total int,
) (*domain.Resource, error) {
	if !actor.Can(domain.CapManageInventory) {
		return nil, domain.ErrForbidden
	}
	if total < 0 {
		return nil, fmt.Errorf("%w: total_quantity must not be negative", domain.ErrValidation)
	}

	res, err := s.repo.UpdateResourceQuantity(ctx, id, total)
	if err != nil {
		return nil, fmt.Errorf("update resource: %w", err)
	}

	s.logger.Info("resource quantity updated",
		logger.String("resource_id", id),
		logger.Int("total_quantity", total),
	)

	return res, nil
}
