package ports

import (
	"context"

	"github.com/stpnv0/EventApproval/internal/domain"
)

type ClaimRepo interface {
	ListForEvent(ctx context.Context, eventID string) ([]domain.ResourceClaim, error)
	// Replace swaps all claims of a DRAFT event owned by coordinatorID and
	// returns domain.ErrNotEligible when the event does not qualify.
	Replace(ctx context.Context, eventID, coordinatorID string, claims []domain.ClaimInput) error
}
