package ports

import (
	"context"

	"github.com/stpnv0/EventApproval/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event, claims []domain.ClaimInput) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	ListByCoordinator(ctx context.Context, coordinatorID string) ([]*domain.Event, error)
	ListByStatus(ctx context.Context, statuses []domain.EventStatus) ([]*domain.Event, error)
	ListByVenue(ctx context.Context, venueID string, statuses []domain.EventStatus) ([]*domain.Event, error)
	// SetStatus applies ch only if the event still matches ch.From (and
	// ch.CoordinatorID when set); otherwise it returns domain.ErrNotEligible.
	SetStatus(ctx context.Context, ch domain.StatusChange) (*domain.Event, error)
}
