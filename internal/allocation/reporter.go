package allocation

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventApproval/internal/domain"
)

// Reporter lists every committed event competing with an event. It never
// gates anything, but a resource is reported exactly when Validator would
// refuse it.
type Reporter struct {
	committed []domain.EventStatus
}

func NewReporter() *Reporter {
	return &Reporter{committed: domain.CommittedStatuses}
}

func (r *Reporter) Report(ctx context.Context, q Querier, eventID string) (*domain.ConflictReport, error) {
	c, err := loadCandidate(ctx, q, eventID, r.committed)
	if err != nil {
		return nil, err
	}

	report := &domain.ConflictReport{
		EventID:           eventID,
		VenueConflicts:    []domain.ConflictingEvent{},
		ResourceConflicts: []domain.ResourceConflict{},
	}

	venue, err := q.GetVenue(ctx, c.event.VenueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	report.VenueName = venue.Name

	competitors, err := c.venueCompetitors(ctx)
	if err != nil {
		return nil, err
	}
	report.VenueConflicts = append(report.VenueConflicts, competitors...)

	claims, err := q.ListClaims(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}

	for _, claim := range claims {
		avail, err := c.availability(ctx, claim)
		if err != nil {
			return nil, err
		}
		if !avail.exceededBy(claim) {
			continue
		}

		holders, err := q.ListResourceOverlapping(ctx, claim.ResourceID, eventID, c.window, r.committed)
		if err != nil {
			return nil, fmt.Errorf("list resource overlaps: %w", err)
		}

		report.ResourceConflicts = append(report.ResourceConflicts, domain.ResourceConflict{
			ResourceID:    claim.ResourceID,
			ResourceName:  avail.resource.Name,
			Requested:     claim.Quantity,
			TotalQuantity: avail.resource.TotalQuantity,
			Available:     avail.available,
			Events:        holders,
		})
	}

	return report, nil
}
