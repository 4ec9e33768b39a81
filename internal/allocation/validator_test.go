package allocation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/EventApproval/internal/allocation"
	"github.com/stpnv0/EventApproval/internal/allocation/allocationtest"
	"github.com/stpnv0/EventApproval/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(id, venueID string, fromHour, toHour, participants int, status domain.EventStatus) domain.Event {
	return domain.Event{
		ID:               id,
		Title:            "event " + id,
		VenueID:          venueID,
		StartTime:        base.Add(time.Duration(fromHour) * time.Hour),
		EndTime:          base.Add(time.Duration(toHour) * time.Hour),
		ParticipantCount: participants,
		Status:           status,
	}
}

func requireAllocationError(t *testing.T, err error) *domain.AllocationError {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAllocationRejected)

	var allocErr *domain.AllocationError
	require.True(t, errors.As(err, &allocErr))
	return allocErr
}

func TestValidator_CapacityBoundary(t *testing.T) {
	store := allocationtest.NewStore()
	store.AddVenue("v1", "Conference Room A", 100)
	store.AddEvent(newEvent("fits", "v1", 0, 2, 100, domain.StatusDeanApproved))
	store.AddEvent(newEvent("over", "v1", 4, 6, 101, domain.StatusDeanApproved))

	v := allocation.NewValidator()

	require.NoError(t, v.Validate(context.Background(), store, "fits"))

	allocErr := requireAllocationError(t, v.Validate(context.Background(), store, "over"))
	assert.Equal(t, domain.ConflictCapacity, allocErr.Kind)
	assert.Equal(t, "Conference Room A", allocErr.VenueName)
	assert.Equal(t, 100, allocErr.Capacity)
	assert.Equal(t, 101, allocErr.Requested)
	assert.Contains(t, allocErr.Error(), "100")
	assert.Contains(t, allocErr.Error(), "101")
}

func TestValidator_VenueExclusivity(t *testing.T) {
	store := allocationtest.NewStore()
	store.AddVenue("v1", "Main Auditorium", 500)
	store.AddEvent(newEvent("committed", "v1", 0, 2, 10, domain.StatusHeadApproved))
	store.AddEvent(newEvent("running", "v1", 1, 3, 10, domain.StatusRunning))
	store.AddEvent(newEvent("overlapping", "v1", 1, 2, 10, domain.StatusDeanApproved))
	store.AddEvent(newEvent("back-to-back", "v1", 3, 5, 10, domain.StatusDeanApproved))

	v := allocation.NewValidator()

	allocErr := requireAllocationError(t, v.Validate(context.Background(), store, "overlapping"))
	assert.Equal(t, domain.ConflictVenueTime, allocErr.Kind)
	assert.Equal(t, "Main Auditorium", allocErr.VenueName)
	assert.Equal(t, 2, allocErr.Conflicting)

	assert.NoError(t, v.Validate(context.Background(), store, "back-to-back"))
}

func TestValidator_IgnoresUncommittedEvents(t *testing.T) {
	store := allocationtest.NewStore()
	store.AddVenue("v1", "Main Auditorium", 500)
	store.AddResource("r1", "Projector", 1)

	for _, status := range []domain.EventStatus{
		domain.StatusDraft, domain.StatusSubmitted, domain.StatusHODApproved,
		domain.StatusDeanApproved, domain.StatusRejected, domain.StatusCompleted,
	} {
		store.AddEvent(newEvent(string(status), "v1", 0, 2, 10, status),
			domain.ClaimInput{ResourceID: "r1", Quantity: 1})
	}
	store.AddEvent(newEvent("candidate", "v1", 0, 2, 10, domain.StatusDeanApproved),
		domain.ClaimInput{ResourceID: "r1", Quantity: 1})

	assert.NoError(t, allocation.NewValidator().Validate(context.Background(), store, "candidate"))
}

func TestValidator_ResourceBoundary(t *testing.T) {
	store := allocationtest.NewStore()
	store.AddVenue("v1", "Hall", 500)
	store.AddVenue("v2", "Lab", 500)
	store.AddResource("mic", "Microphone", 10)
	store.AddEvent(newEvent("holder", "v2", 0, 4, 10, domain.StatusHeadApproved),
		domain.ClaimInput{ResourceID: "mic", Quantity: 7})
	store.AddEvent(newEvent("exact", "v1", 1, 3, 10, domain.StatusDeanApproved),
		domain.ClaimInput{ResourceID: "mic", Quantity: 3})
	store.AddEvent(newEvent("one-more", "v1", 1, 3, 10, domain.StatusDeanApproved),
		domain.ClaimInput{ResourceID: "mic", Quantity: 4})

	v := allocation.NewValidator()

	require.NoError(t, v.Validate(context.Background(), store, "exact"))

	allocErr := requireAllocationError(t, v.Validate(context.Background(), store, "one-more"))
	assert.Equal(t, domain.ConflictResourceTime, allocErr.Kind)
	assert.Equal(t, "Microphone", allocErr.ResourceName)
	assert.Equal(t, 4, allocErr.Requested)
	assert.Equal(t, 3, allocErr.Available)
	assert.Equal(t, 1, allocErr.Shortage())
}

func TestValidator_ResourceBackToBackDoesNotCount(t *testing.T) {
	store := allocationtest.NewStore()
	store.AddVenue("v1", "Hall", 500)
	store.AddVenue("v2", "Lab", 500)
	store.AddResource("p", "Projector", 5)
	store.AddEvent(newEvent("before", "v2", 0, 2, 10, domain.StatusHeadApproved),
		domain.ClaimInput{ResourceID: "p", Quantity: 5})
	store.AddEvent(newEvent("after", "v2", 4, 6, 10, domain.StatusRunning),
		domain.ClaimInput{ResourceID: "p", Quantity: 5})
	store.AddEvent(newEvent("candidate", "v1", 2, 4, 10, domain.StatusDeanApproved),
		domain.ClaimInput{ResourceID: "p", Quantity: 5})

	assert.NoError(t, allocation.NewValidator().Validate(context.Background(), store, "candidate"))
}

func TestValidator_ProjectorScenario(t *testing.T) {
	store := allocationtest.NewStore()
	store.AddVenue("v1", "Main Auditorium", 500)
	store.AddVenue("v2", "Conference Room A", 100)
	store.AddResource("p", "Projector", 5)
	store.AddEvent(newEvent("a", "v1", 0, 3, 50, domain.StatusHeadApproved),
		domain.ClaimInput{ResourceID: "p", Quantity: 5})
	store.AddEvent(newEvent("b", "v2", 2, 4, 20, domain.StatusDeanApproved),
		domain.ClaimInput{ResourceID: "p", Quantity: 1})

	allocErr := requireAllocationError(t, allocation.NewValidator().Validate(context.Background(), store, "b"))
	assert.Equal(t, domain.ConflictResourceTime, allocErr.Kind)
	assert.Equal(t, "Projector", allocErr.ResourceName)
	assert.Equal(t, 1, allocErr.Requested)
	assert.Equal(t, 0, allocErr.Available)
}

func TestValidator_FirstFailureWins(t *testing.T) {
	store := allocationtest.NewStore()
	store.AddVenue("v1", "Hall", 10)
	store.AddResource("p", "Projector", 1)
	store.AddEvent(newEvent("holder", "v1", 0, 4, 5, domain.StatusHeadApproved),
		domain.ClaimInput{ResourceID: "p", Quantity: 1})
	store.AddEvent(newEvent("all-wrong", "v1", 1, 2, 50, domain.StatusDeanApproved),
		domain.ClaimInput{ResourceID: "p", Quantity: 1})
	store.AddEvent(newEvent("venue-and-resource", "v1", 1, 2, 5, domain.StatusDeanApproved),
		domain.ClaimInput{ResourceID: "p", Quantity: 1})

	v := allocation.NewValidator()

	allocErr := requireAllocationError(t, v.Validate(context.Background(), store, "all-wrong"))
	assert.Equal(t, domain.ConflictCapacity, allocErr.Kind)

	allocErr = requireAllocationError(t, v.Validate(context.Background(), store, "venue-and-resource"))
	assert.Equal(t, domain.ConflictVenueTime, allocErr.Kind)
}

func TestValidator_ReportsFirstFailingClaimInOrder(t *testing.T) {
	store := allocationtest.NewStore()
	store.AddVenue("v1", "Hall", 100)
	store.AddVenue("v2", "Lab", 100)
	store.AddResource("mic", "Microphone", 2)
	store.AddResource("p", "Projector", 1)
	store.AddResource("chairs", "Chairs", 1000)
	store.AddEvent(newEvent("holder", "v2", 0, 4, 5, domain.StatusHeadApproved),
		domain.ClaimInput{ResourceID: "mic", Quantity: 2},
		domain.ClaimInput{ResourceID: "p", Quantity: 1})
	store.AddEvent(newEvent("candidate", "v1", 1, 2, 5, domain.StatusDeanApproved),
		domain.ClaimInput{ResourceID: "chairs", Quantity: 50},
		domain.ClaimInput{ResourceID: "p", Quantity: 1},
		domain.ClaimInput{ResourceID: "mic", Quantity: 1})

	for i := 0; i < 5; i++ {
		allocErr := requireAllocationError(t, allocation.NewValidator().Validate(context.Background(), store, "candidate"))
		assert.Equal(t, "Projector", allocErr.ResourceName)
	}
}

func TestValidator_NoClaimsPasses(t *testing.T) {
	store := allocationtest.NewStore()
	store.AddVenue("v1", "Hall", 100)
	store.AddEvent(newEvent("candidate", "v1", 0, 1, 100, domain.StatusDeanApproved))

	assert.NoError(t, allocation.NewValidator().Validate(context.Background(), store, "candidate"))
}

func TestValidator_MissingEntities(t *testing.T) {
	store := allocationtest.NewStore()
	store.AddVenue("v1", "Hall", 100)
	store.AddResource("p", "Projector", 5)
	store.AddEvent(newEvent("no-venue", "gone", 0, 1, 10, domain.StatusDeanApproved))
	store.AddEvent(newEvent("no-resource", "v1", 0, 1, 10, domain.StatusDeanApproved),
		domain.ClaimInput{ResourceID: "p", Quantity: 1})
	store.DeleteResource("p")

	v := allocation.NewValidator()

	allocErr := requireAllocationError(t, v.Validate(context.Background(), store, "missing"))
	assert.Equal(t, domain.ConflictEventMissing, allocErr.Kind)

	allocErr = requireAllocationError(t, v.Validate(context.Background(), store, "no-venue"))
	assert.Equal(t, domain.ConflictVenueMissing, allocErr.Kind)

	allocErr = requireAllocationError(t, v.Validate(context.Background(), store, "no-resource"))
	assert.Equal(t, domain.ConflictResourceTime, allocErr.Kind)
	assert.Equal(t, "Projector", allocErr.ResourceName)
	assert.Equal(t, 0, allocErr.Available)
}
