package ports

import (
	"context"

	"github.com/stpnv0/EventApproval/internal/allocation"
)

// Admission runs check against a consistent view of the committed set and,
// if check returns nil, moves the event from DEAN_APPROVED to HEAD_APPROVED
// as one atomic unit. Concurrent admissions are linearized. An event that is
// missing or not DEAN_APPROVED yields domain.ErrNotEligible.
type Admission interface {
	Admit(ctx context.Context, eventID string, check func(ctx context.Context, q allocation.Querier) error) error
}

// ConflictQuerier is a non-transactional view used for advisory reports.
type ConflictQuerier interface {
	allocation.Querier
}
