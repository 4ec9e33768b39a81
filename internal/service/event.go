package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventApproval/internal/allocation"
	"github.com/stpnv0/EventApproval/internal/domain"
	"github.com/stpnv0/EventApproval/internal/service/ports"
)

type EventService struct {
	repo      ports.EventRepo
	claimRepo ports.ClaimRepo
	inventory ports.InventoryRepo
	conflicts ports.ConflictQuerier
	reporter  *allocation.Reporter
}

func NewEventService(
	repo ports.EventRepo,
	claimRepo ports.ClaimRepo,
	inventory ports.InventoryRepo,
	conflicts ports.ConflictQuerier,
) *EventService {
	return &EventService{
		repo:      repo,
		claimRepo: claimRepo,
		inventory: inventory,
		conflicts: conflicts,
		reporter:  allocation.NewReporter(),
	}
}

func (s *EventService) CreateEvent(
	ctx context.Context, actor domain.Actor, input domain.CreateEventInput,
) (*domain.Event, error) {
	if !actor.Can(domain.CapCreateEvent) {
		return nil, domain.ErrForbidden
	}

	title := strings.TrimSpace(input.Title)
	department := strings.TrimSpace(input.Department)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if department == "" {
		return nil, fmt.Errorf("%w: department is required", domain.ErrValidation)
	}
	if input.StartTime.IsZero() || input.EndTime.IsZero() {
		return nil, fmt.Errorf("%w: start_time and end_time are required", domain.ErrValidation)
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", domain.ErrValidation)
	}
	if input.ParticipantCount < 1 {
		return nil, fmt.Errorf("%w: participant_count must be at least 1", domain.ErrValidation)
	}

	if _, err := s.inventory.GetVenue(ctx, input.VenueID); err != nil {
		if errors.Is(err, domain.ErrVenueNotFound) {
			return nil, fmt.Errorf("%w: venue %s does not exist", domain.ErrValidation, input.VenueID)
		}
		return nil, fmt.Errorf("get venue: %w", err)
	}

	if err := s.validateClaims(ctx, input.Claims); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:               uuid.New().String(),
		Title:            title,
		Department:       department,
		CoordinatorID:    actor.ID,
		VenueID:          input.VenueID,
		StartTime:        input.StartTime.UTC(),
		EndTime:          input.EndTime.UTC(),
		ParticipantCount: input.ParticipantCount,
		Status:           domain.StatusDraft,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, event, input.Claims); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) ReplaceClaims(
	ctx context.Context, actor domain.Actor, eventID string, claims []domain.ClaimInput,
) ([]domain.ResourceClaim, error) {
	if !actor.Can(domain.CapManageOwnEvent) {
		return nil, domain.ErrForbidden
	}
	if err := s.validateClaims(ctx, claims); err != nil {
		return nil, err
	}

	if err := s.claimRepo.Replace(ctx, eventID, actor.ID, claims); err != nil {
		return nil, fmt.Errorf("replace claims: %w", err)
	}

	return s.claimRepo.ListForEvent(ctx, eventID)
}

func (s *EventService) validateClaims(ctx context.Context, claims []domain.ClaimInput) error {
	seen := make(map[string]struct{}, len(claims))
	for _, c := range claims {
		if c.Quantity < 1 {
			return fmt.Errorf("%w: quantity for resource %s must be at least 1", domain.ErrValidation, c.ResourceID)
		}
		if _, dup := seen[c.ResourceID]; dup {
			return fmt.Errorf("%w: resource %s is claimed more than once", domain.ErrValidation, c.ResourceID)
		}
		seen[c.ResourceID] = struct{}{}

		if _, err := s.inventory.GetResource(ctx, c.ResourceID); err != nil {
			if errors.Is(err, domain.ErrResourceNotFound) {
				return fmt.Errorf("%w: resource %s does not exist", domain.ErrValidation, c.ResourceID)
			}
			return fmt.Errorf("get resource: %w", err)
		}
	}
	return nil
}

func (s *EventService) GetDetails(ctx context.Context, actor domain.Actor, id string) (*domain.EventDetails, error) {
	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if !visibleTo(actor, &details.Event) {
		return nil, domain.ErrNotEligible
	}

	claims, err := s.claimRepo.ListForEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	details.Claims = claims

	return details, nil
}

// List shows coordinators their own events and everyone else all events
// that left DRAFT, REJECTED included.
func (s *EventService) List(ctx context.Context, actor domain.Actor) ([]*domain.Event, error) {
	if actor.Can(domain.CapCreateEvent) {
		return s.repo.ListByCoordinator(ctx, actor.ID)
	}
	return s.repo.ListByStatus(ctx, publicStatuses())
}

// ListByVenue is the venue schedule. Drafts are private to their author and
// never appear in it.
func (s *EventService) ListByVenue(ctx context.Context, venueID string) ([]*domain.Event, error) {
	if _, err := s.inventory.GetVenue(ctx, venueID); err != nil {
		return nil, err
	}
	return s.repo.ListByVenue(ctx, venueID, publicStatuses())
}

// Conflicts is advisory only; HeadApprove is what enforces allocation.
func (s *EventService) Conflicts(ctx context.Context, actor domain.Actor, eventID string) (*domain.ConflictReport, error) {
	event, err := s.conflicts.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("conflict report: %w", err)
	}
	if !visibleTo(actor, event) {
		return nil, domain.ErrNotEligible
	}

	report, err := s.reporter.Report(ctx, s.conflicts, eventID)
	if err != nil {
		return nil, fmt.Errorf("conflict report: %w", err)
	}
	return report, nil
}

func publicStatuses() []domain.EventStatus {
	res := make([]domain.EventStatus, 0, len(domain.Statuses))
	for _, st := range domain.Statuses {
		if st != domain.StatusDraft {
			res = append(res, st)
		}
	}
	return res
}

// visibleTo hides a DRAFT from everyone but its author. Hidden and missing
// look the same to the caller.
func visibleTo(actor domain.Actor, e *domain.Event) bool {
	return e.Status != domain.StatusDraft || e.CoordinatorID == actor.ID
}
