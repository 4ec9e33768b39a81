package domain

import "time"

type EventStatus string

const (
	StatusDraft        EventStatus = "DRAFT"
	StatusSubmitted    EventStatus = "SUBMITTED"
	StatusHODApproved  EventStatus = "HOD_APPROVED"
	StatusDeanApproved EventStatus = "DEAN_APPROVED"
	StatusHeadApproved EventStatus = "HEAD_APPROVED"
	StatusRunning      EventStatus = "RUNNING"
	StatusCompleted    EventStatus = "COMPLETED"
	StatusRejected     EventStatus = "REJECTED"
)

var Statuses = []EventStatus{
	StatusDraft, StatusSubmitted, StatusHODApproved, StatusDeanApproved,
	StatusHeadApproved, StatusRunning, StatusCompleted, StatusRejected,
}

// CommittedStatuses are the statuses whose events hold their venue slot and
// resource quantities.
var CommittedStatuses = []EventStatus{StatusHeadApproved, StatusRunning}

func (s EventStatus) Committed() bool {
	for _, c := range CommittedStatuses {
		if s == c {
			return true
		}
	}
	return false
}

type Event struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Department       string      `json:"department"`
	CoordinatorID    string      `json:"coordinator_id"`
	VenueID          string      `json:"venue_id"`
	StartTime        time.Time   `json:"start_time"`
	EndTime          time.Time   `json:"end_time"`
	ParticipantCount int         `json:"participant_count"`
	Status           EventStatus `json:"status"`
	RejectionReason  *string     `json:"rejection_reason"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// ResourceClaim is the quantity of a resource an event holds for its whole
// duration. Position keeps the insertion order of the claims of one event.
type ResourceClaim struct {
	EventID      string `json:"event_id"`
	ResourceID   string `json:"resource_id"`
	ResourceName string `json:"resource_name"`
	Quantity     int    `json:"quantity"`
	Position     int    `json:"position"`
}

type EventDetails struct {
	Event           Event           `json:"event"`
	VenueName       string          `json:"venue_name"`
	CoordinatorName string          `json:"coordinator_name"`
	Claims          []ResourceClaim `json:"claims"`
}

type ClaimInput struct {
	ResourceID string
	Quantity   int
}

type CreateEventInput struct {
	Title            string
	Department       string
	VenueID          string
	StartTime        time.Time
	EndTime          time.Time
	ParticipantCount int
	Claims           []ClaimInput
}

// StatusChange is a compare-and-set on an event's status. The change applies
// only if the current status is one of From and, when CoordinatorID is set,
// the event belongs to that coordinator.
type StatusChange struct {
	EventID         string
	From            []EventStatus
	To              EventStatus
	CoordinatorID   string
	RejectionReason *string
}
