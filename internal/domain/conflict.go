package domain

import (
	"fmt"
	"time"
)

type ConflictKind string

const (
	ConflictEventMissing ConflictKind = "event_missing"
	ConflictVenueMissing ConflictKind = "venue_missing"
	ConflictCapacity     ConflictKind = "capacity"
	ConflictVenueTime    ConflictKind = "venue_time"
	ConflictResourceTime ConflictKind = "resource_time"
)

// AllocationError is the single reason an event was refused admission.
// errors.Is(err, ErrAllocationRejected) reports true for it.
type AllocationError struct {
	Kind         ConflictKind `json:"kind"`
	EventID      string       `json:"event_id"`
	VenueName    string       `json:"venue_name,omitempty"`
	Capacity     int          `json:"capacity,omitempty"`
	ResourceID   string       `json:"resource_id,omitempty"`
	ResourceName string       `json:"resource_name,omitempty"`
	Requested    int          `json:"requested,omitempty"`
	Available    int          `json:"available"`
	Conflicting  int          `json:"conflicting_events,omitempty"`
}

func (e *AllocationError) Error() string {
	switch e.Kind {
	case ConflictEventMissing:
		return "event not found"
	case ConflictVenueMissing:
		return "venue not found"
	case ConflictCapacity:
		return fmt.Sprintf("venue capacity conflict: %s has capacity %d but %d participants requested",
			e.VenueName, e.Capacity, e.Requested)
	case ConflictVenueTime:
		return fmt.Sprintf("venue conflict: %s is already booked during this time by %d other event(s)",
			e.VenueName, e.Conflicting)
	case ConflictResourceTime:
		return fmt.Sprintf("resource allocation conflict: %s - %d requested but only %d available during this time",
			e.ResourceName, e.Requested, e.Available)
	default:
		return ErrAllocationRejected.Error()
	}
}

func (e *AllocationError) Is(target error) bool {
	return target == ErrAllocationRejected
}

// Shortage is how many units are missing for a resource conflict.
func (e *AllocationError) Shortage() int {
	if e.Kind != ConflictResourceTime {
		return 0
	}
	return e.Requested - e.Available
}

type ConflictingEvent struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	StartTime time.Time   `json:"start_time"`
	EndTime   time.Time   `json:"end_time"`
	Status    EventStatus `json:"status"`
	Quantity  int         `json:"quantity,omitempty"`
}

type ResourceConflict struct {
	ResourceID    string             `json:"resource_id"`
	ResourceName  string             `json:"resource_name"`
	Requested     int                `json:"requested"`
	TotalQuantity int                `json:"total_quantity"`
	Available     int                `json:"available"`
	Events        []ConflictingEvent `json:"conflicting_events"`
}

// ConflictReport is advisory: it lists every committed event competing with
// an event for its venue and for each of its claimed resources.
type ConflictReport struct {
	EventID           string             `json:"event_id"`
	VenueName         string             `json:"venue_name"`
	VenueConflicts    []ConflictingEvent `json:"venue_conflicts"`
	ResourceConflicts []ResourceConflict `json:"resource_conflicts"`
}

func (r *ConflictReport) HasConflicts() bool {
	return len(r.VenueConflicts) > 0 || len(r.ResourceConflicts) > 0
}
