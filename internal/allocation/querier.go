package allocation

import (
	"context"

	"github.com/stpnv0/EventApproval/internal/domain"
)

// Querier is the read side the validator and the reporter share. The
// Overlapping methods must apply Overlaps and the status filter in storage.
type Querier interface {
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
	GetResource(ctx context.Context, id string) (*domain.Resource, error)
	ListClaims(ctx context.Context, eventID string) ([]domain.ResourceClaim, error)
	ListVenueOverlapping(
		ctx context.Context, venueID, excludeEventID string, w Window, statuses []domain.EventStatus,
	) ([]domain.ConflictingEvent, error)
	ListResourceOverlapping(
		ctx context.Context, resourceID, excludeEventID string, w Window, statuses []domain.EventStatus,
	) ([]domain.ConflictingEvent, error)
	SumQuantityOverlapping(
		ctx context.Context, resourceID, excludeEventID string, w Window, statuses []domain.EventStatus,
	) (int, error)
}
