package ports

import (
	"context"

	"github.com/stpnv0/EventApproval/internal/domain"
)

type InventoryRepo interface {
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
	GetResource(ctx context.Context, id string) (*domain.Resource, error)
	ListVenues(ctx context.Context) ([]*domain.Venue, error)
	ListResources(ctx context.Context) ([]*domain.Resource, error)
	CreateVenue(ctx context.Context, v *domain.Venue) error
	CreateResource(ctx context.Context, r *domain.Resource) error
	UpdateResourceQuantity(ctx context.Context, id string, total int) (*domain.Resource, error)
}
