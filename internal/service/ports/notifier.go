package ports

import (
	"context"

	"github.com/stpnv0/EventApproval/internal/domain"
)

type EventNotifier interface {
	NotifyStatusChanged(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyAllocationRejected(ctx context.Context, user *domain.User, event *domain.Event, reason *domain.AllocationError)
}
