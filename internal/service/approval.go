package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stpnv0/EventApproval/internal/allocation"
	"github.com/stpnv0/EventApproval/internal/domain"
	"github.com/stpnv0/EventApproval/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ApprovalService is the event lifecycle state machine. Every transition is
// a compare-and-set on the event's status; head-approve additionally runs
// the allocation validator inside the admission unit.
type ApprovalService struct {
	events    ports.EventRepo
	admission ports.Admission
	userRepo  ports.UserRepo
	notifier  ports.EventNotifier
	validator *allocation.Validator
	logger    logger.Logger
}

func NewApprovalService(
	events ports.EventRepo,
	admission ports.Admission,
	userRepo ports.UserRepo,
	notifier ports.EventNotifier,
	logger logger.Logger,
) *ApprovalService {
	return &ApprovalService{
		events:    events,
		admission: admission,
		userRepo:  userRepo,
		notifier:  notifier,
		validator: allocation.NewValidator(),
		logger:    logger,
	}
}

func (s *ApprovalService) Submit(ctx context.Context, actor domain.Actor, id string) (*domain.Event, error) {
	return s.Apply(ctx, actor, domain.TransitionSubmit, id, "")
}

func (s *ApprovalService) HODApprove(ctx context.Context, actor domain.Actor, id string) (*domain.Event, error) {
	return s.Apply(ctx, actor, domain.TransitionHODApprove, id, "")
}

func (s *ApprovalService) HODReject(ctx context.Context, actor domain.Actor, id, reason string) (*domain.Event, error) {
	return s.Apply(ctx, actor, domain.TransitionHODReject, id, reason)
}

func (s *ApprovalService) DeanApprove(ctx context.Context, actor domain.Actor, id string) (*domain.Event, error) {
	return s.Apply(ctx, actor, domain.TransitionDeanApprove, id, "")
}

func (s *ApprovalService) HeadApprove(ctx context.Context, actor domain.Actor, id string) (*domain.Event, error) {
	return s.Apply(ctx, actor, domain.TransitionHeadApprove, id, "")
}

func (s *ApprovalService) Start(ctx context.Context, actor domain.Actor, id string) (*domain.Event, error) {
	return s.Apply(ctx, actor, domain.TransitionStart, id, "")
}

func (s *ApprovalService) Complete(ctx context.Context, actor domain.Actor, id string) (*domain.Event, error) {
	return s.Apply(ctx, actor, domain.TransitionComplete, id, "")
}

// Apply performs transition t on event id for actor. The role check comes
// first and does not look at the event; a status or authorship mismatch is
// reported as domain.ErrNotEligible.
func (s *ApprovalService) Apply(
	ctx context.Context, actor domain.Actor, t domain.Transition, id, reason string,
) (*domain.Event, error) {
	rule, ok := domain.RuleFor(t)
	if !ok {
		return nil, fmt.Errorf("%w: unknown transition %q", domain.ErrValidation, t)
	}
	if !actor.Can(rule.Capability) {
		return nil, domain.ErrForbidden
	}

	var rejection *string
	if rule.RequiresReason {
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return nil, fmt.Errorf("%w: rejection reason is required", domain.ErrValidation)
		}
		rejection = &reason
	}

	if rule.Admission {
		return s.admit(ctx, actor, rule, id)
	}

	event, err := s.events.SetStatus(ctx, rule.Change(id, actor, rejection))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t, err)
	}

	s.transitioned(ctx, actor, rule, event)

	return event, nil
}

func (s *ApprovalService) admit(
	ctx context.Context, actor domain.Actor, rule domain.TransitionRule, id string,
) (*domain.Event, error) {
	err := s.admission.Admit(ctx, id, func(ctx context.Context, q allocation.Querier) error {
		return s.validator.Validate(ctx, q, id)
	})
	if err != nil {
		var allocErr *domain.AllocationError
		if errors.As(err, &allocErr) {
			s.logger.Warn("allocation rejected",
				logger.String("event_id", id),
				logger.String("actor_id", actor.ID),
				logger.String("kind", string(allocErr.Kind)),
				logger.String("reason", allocErr.Error()),
			)
			go s.notifyAllocationRejected(context.WithoutCancel(ctx), id, allocErr)
		}
		return nil, fmt.Errorf("%s: %w", rule.Transition, err)
	}

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload event: %w", err)
	}

	s.transitioned(ctx, actor, rule, event)

	return event, nil
}

func (s *ApprovalService) transitioned(ctx context.Context, actor domain.Actor, rule domain.TransitionRule, event *domain.Event) {
	s.logger.Info("event transitioned",
		logger.String("event_id", event.ID),
		logger.String("actor_id", actor.ID),
		logger.String("transition", string(rule.Transition)),
		logger.String("to", string(event.Status)),
	)

	if actor.ID != event.CoordinatorID {
		go s.notifyAuthor(context.WithoutCancel(ctx), event)
	}
}

// Pending lists the events waiting for one of actor's review steps.
func (s *ApprovalService) Pending(ctx context.Context, actor domain.Actor) ([]*domain.Event, error) {
	var statuses []domain.EventStatus
	seen := make(map[domain.EventStatus]struct{})
	for _, t := range domain.Transitions {
		rule, _ := domain.RuleFor(t)
		if rule.RequiresAuthor || !actor.Can(rule.Capability) {
			continue
		}
		for _, from := range rule.From {
			if _, ok := seen[from]; !ok {
				seen[from] = struct{}{}
				statuses = append(statuses, from)
			}
		}
	}

	if len(statuses) == 0 {
		return nil, domain.ErrForbidden
	}

	return s.events.ListByStatus(ctx, statuses)
}

func (s *ApprovalService) notifyAuthor(ctx context.Context, event *domain.Event) {
	user, err := s.userRepo.GetByID(ctx, event.CoordinatorID)
	if err != nil {
		s.logger.Error("failed to get coordinator for notification",
			logger.String("user_id", event.CoordinatorID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyStatusChanged(ctx, user, event)
}

func (s *ApprovalService) notifyAllocationRejected(ctx context.Context, id string, reason *domain.AllocationError) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get event for rejection notification",
			logger.String("event_id", id),
			logger.String("error", err.Error()),
		)
		return
	}

	user, err := s.userRepo.GetByID(ctx, event.CoordinatorID)
	if err != nil {
		s.logger.Error("failed to get coordinator for notification",
			logger.String("user_id", event.CoordinatorID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyAllocationRejected(ctx, user, event, reason)
}
