package allocation

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/EventApproval/internal/domain"
)

// Validator gates admission of one event into the committed set.
type Validator struct {
	committed []domain.EventStatus
}

func NewValidator() *Validator {
	return &Validator{committed: domain.CommittedStatuses}
}

// Validate returns nil if the event can be admitted, a *domain.AllocationError
// naming the first failed check otherwise. Checks run in order: capacity,
// venue time, resource quantity (claims in insertion order). Any other error
// is a storage failure.
func (v *Validator) Validate(ctx context.Context, q Querier, eventID string) error {
	c, err := loadCandidate(ctx, q, eventID, v.committed)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return &domain.AllocationError{Kind: domain.ConflictEventMissing, EventID: eventID}
		}
		return fmt.Errorf("get event: %w", err)
	}
	event := c.event

	venue, err := q.GetVenue(ctx, event.VenueID)
	if err != nil {
		if errors.Is(err, domain.ErrVenueNotFound) {
			return &domain.AllocationError{Kind: domain.ConflictVenueMissing, EventID: eventID}
		}
		return fmt.Errorf("get venue: %w", err)
	}

	if venue.Capacity < event.ParticipantCount {
		return &domain.AllocationError{
			Kind:      domain.ConflictCapacity,
			EventID:   eventID,
			VenueName: venue.Name,
			Capacity:  venue.Capacity,
			Requested: event.ParticipantCount,
		}
	}

	competitors, err := c.venueCompetitors(ctx)
	if err != nil {
		return err
	}
	if len(competitors) > 0 {
		return &domain.AllocationError{
			Kind:        domain.ConflictVenueTime,
			EventID:     eventID,
			VenueName:   venue.Name,
			Conflicting: len(competitors),
		}
	}

	claims, err := q.ListClaims(ctx, eventID)
	if err != nil {
		return fmt.Errorf("list claims: %w", err)
	}

	for _, claim := range claims {
		avail, err := c.availability(ctx, claim)
		if err != nil {
			return err
		}
		if avail.exceededBy(claim) {
			return &domain.AllocationError{
				Kind:         domain.ConflictResourceTime,
				EventID:      eventID,
				ResourceID:   claim.ResourceID,
				ResourceName: avail.resource.Name,
				Requested:    claim.Quantity,
				Available:    avail.available,
			}
		}
	}

	return nil
}
