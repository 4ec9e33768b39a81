package allocation

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/EventApproval/internal/domain"
)

// candidate binds an event to the committed set it is measured against.
// Validator and Reporter both go through it, so they agree on what a
// conflict is.
type candidate struct {
	q         Querier
	event     *domain.Event
	window    Window
	committed []domain.EventStatus
}

func loadCandidate(ctx context.Context, q Querier, eventID string, committed []domain.EventStatus) (*candidate, error) {
	event, err := q.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return &candidate{
		q:         q,
		event:     event,
		window:    WindowOf(event),
		committed: committed,
	}, nil
}

func (c *candidate) venueCompetitors(ctx context.Context) ([]domain.ConflictingEvent, error) {
	competitors, err := c.q.ListVenueOverlapping(ctx, c.event.VenueID, c.event.ID, c.window, c.committed)
	if err != nil {
		return nil, fmt.Errorf("list venue overlaps: %w", err)
	}
	return competitors, nil
}

// availability is the remaining quantity of a claimed resource during the
// candidate's window. A resource that no longer exists has nothing left.
type availability struct {
	resource  domain.Resource
	used      int
	available int
}

func (c *candidate) availability(ctx context.Context, claim domain.ResourceClaim) (availability, error) {
	res, err := c.q.GetResource(ctx, claim.ResourceID)
	if err != nil {
		if errors.Is(err, domain.ErrResourceNotFound) {
			return availability{
				resource: domain.Resource{ID: claim.ResourceID, Name: claim.ResourceName},
			}, nil
		}
		return availability{}, fmt.Errorf("get resource: %w", err)
	}

	used, err := c.q.SumQuantityOverlapping(ctx, claim.ResourceID, c.event.ID, c.window, c.committed)
	if err != nil {
		return availability{}, fmt.Errorf("sum claimed quantity: %w", err)
	}

	return availability{
		resource:  *res,
		used:      used,
		available: res.TotalQuantity - used,
	}, nil
}

func (a availability) exceededBy(claim domain.ResourceClaim) bool {
	return claim.Quantity > a.available
}
