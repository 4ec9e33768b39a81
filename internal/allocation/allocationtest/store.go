// Package allocationtest provides an in-memory allocation.Querier and
// admission runner for tests.
package allocationtest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stpnv0/EventApproval/internal/allocation"
	"github.com/stpnv0/EventApproval/internal/domain"
)

// Store keeps venues, resources, events and claims in memory. Admit
// serializes admissions the way the Postgres advisory lock does.
type Store struct {
	admitMu sync.Mutex

	mu        sync.RWMutex
	venues    map[string]domain.Venue
	resources map[string]domain.Resource
	events    map[string]domain.Event
	claims    map[string][]domain.ResourceClaim
}

func NewStore() *Store {
	return &Store{
		venues:    make(map[string]domain.Venue),
		resources: make(map[string]domain.Resource),
		events:    make(map[string]domain.Event),
		claims:    make(map[string][]domain.ResourceClaim),
	}
}

func (s *Store) AddVenue(id, name string, capacity int) domain.Venue {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := domain.Venue{ID: id, Name: name, Capacity: capacity}
	s.venues[id] = v
	return v
}

func (s *Store) AddResource(id, name string, total int) domain.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := domain.Resource{ID: id, Name: name, TotalQuantity: total}
	s.resources[id] = r
	return r
}

// AddEvent stores e and its claims; claim positions follow argument order.
func (s *Store) AddEvent(e domain.Event, claims ...domain.ClaimInput) domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events[e.ID] = e
	stored := make([]domain.ResourceClaim, 0, len(claims))
	for i, c := range claims {
		stored = append(stored, domain.ResourceClaim{
			EventID:      e.ID,
			ResourceID:   c.ResourceID,
			ResourceName: s.resources[c.ResourceID].Name,
			Quantity:     c.Quantity,
			Position:     i,
		})
	}
	s.claims[e.ID] = stored
	return e
}

func (s *Store) SetStatus(id string, status domain.EventStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.events[id]
	e.Status = status
	s.events[id] = e
}

func (s *Store) Status(id string) domain.EventStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events[id].Status
}

func (s *Store) DeleteVenue(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.venues, id)
}

func (s *Store) DeleteResource(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.resources, id)
}

// Admit moves a DEAN_APPROVED event to HEAD_APPROVED if check passes.
func (s *Store) Admit(
	ctx context.Context,
	eventID string,
	check func(ctx context.Context, q allocation.Querier) error,
) error {
	s.admitMu.Lock()
	defer s.admitMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	if s.Status(eventID) != domain.StatusDeanApproved {
		return domain.ErrNotEligible
	}

	if err := check(ctx, s); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.events[eventID]
	e.Status = domain.StatusHeadApproved
	e.UpdatedAt = time.Now().UTC()
	s.events[eventID] = e

	return nil
}

func (s *Store) GetEvent(_ context.Context, id string) (*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return &e, nil
}

func (s *Store) GetVenue(_ context.Context, id string) (*domain.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.venues[id]
	if !ok {
		return nil, domain.ErrVenueNotFound
	}
	return &v, nil
}

func (s *Store) GetResource(_ context.Context, id string) (*domain.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.resources[id]
	if !ok {
		return nil, domain.ErrResourceNotFound
	}
	return &r, nil
}

func (s *Store) ListClaims(_ context.Context, eventID string) ([]domain.ResourceClaim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]domain.ResourceClaim, len(s.claims[eventID]))
	copy(res, s.claims[eventID])
	return res, nil
}

func (s *Store) ListVenueOverlapping(
	_ context.Context, venueID, excludeEventID string, w allocation.Window, statuses []domain.EventStatus,
) ([]domain.ConflictingEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []domain.ConflictingEvent
	for _, e := range s.events {
		if e.VenueID != venueID || !s.competes(e, excludeEventID, w, statuses) {
			continue
		}
		res = append(res, conflicting(e, 0))
	}
	sortConflicting(res)
	return res, nil
}

func (s *Store) ListResourceOverlapping(
	_ context.Context, resourceID, excludeEventID string, w allocation.Window, statuses []domain.EventStatus,
) ([]domain.ConflictingEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []domain.ConflictingEvent
	for _, e := range s.events {
		if !s.competes(e, excludeEventID, w, statuses) {
			continue
		}
		for _, c := range s.claims[e.ID] {
			if c.ResourceID == resourceID {
				res = append(res, conflicting(e, c.Quantity))
			}
		}
	}
	sortConflicting(res)
	return res, nil
}

func (s *Store) SumQuantityOverlapping(
	ctx context.Context, resourceID, excludeEventID string, w allocation.Window, statuses []domain.EventStatus,
) (int, error) {
	holders, err := s.ListResourceOverlapping(ctx, resourceID, excludeEventID, w, statuses)
	if err != nil {
		return 0, err
	}

	sum := 0
	for _, h := range holders {
		sum += h.Quantity
	}
	return sum, nil
}

func (s *Store) competes(e domain.Event, excludeEventID string, w allocation.Window, statuses []domain.EventStatus) bool {
	if e.ID == excludeEventID {
		return false
	}
	inStatus := false
	for _, st := range statuses {
		if e.Status == st {
			inStatus = true
			break
		}
	}
	return inStatus && allocation.Overlaps(allocation.WindowOf(&e), w)
}

func conflicting(e domain.Event, qty int) domain.ConflictingEvent {
	return domain.ConflictingEvent{
		ID:        e.ID,
		Title:     e.Title,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Status:    e.Status,
		Quantity:  qty,
	}
}

func sortConflicting(res []domain.ConflictingEvent) {
	sort.Slice(res, func(i, j int) bool {
		if !res[i].StartTime.Equal(res[j].StartTime) {
			return res[i].StartTime.Before(res[j].StartTime)
		}
		return res[i].ID < res[j].ID
	})
}
