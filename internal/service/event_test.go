package service

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stpnv0/EventApproval/internal/allocation/allocationtest"
	"github.com/stpnv0/EventApproval/internal/domain"
	"github.com/stpnv0/EventApproval/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validEventInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Title:            "Robotics Workshop",
		Department:       "Engineering",
		VenueID:          "v1",
		StartTime:        slot,
		EndTime:          slot.Add(2 * time.Hour),
		ParticipantCount: 40,
		Claims:           []domain.ClaimInput{{ResourceID: "r1", Quantity: 2}},
	}
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	inventory := mocks.NewMockInventoryRepo(t)
	svc := NewEventService(eventRepo, nil, inventory, nil)

	input := validEventInput()
	inventory.EXPECT().GetVenue(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	inventory.EXPECT().GetResource(mock.Anything, "r1").Return(&domain.Resource{ID: "r1"}, nil)
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything, input.Claims).Return(nil)

	event, err := svc.CreateEvent(context.Background(), coordinator, input)

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Robotics Workshop", event.Title)
	assert.Equal(t, "c1", event.CoordinatorID)
	assert.Equal(t, domain.StatusDraft, event.Status)
	assert.Equal(t, 40, event.ParticipantCount)
}

func TestEventService_CreateEvent_Forbidden(t *testing.T) {
	svc := NewEventService(nil, nil, nil, nil)

	for _, actor := range []domain.Actor{hod, dean, head, admin} {
		_, err := svc.CreateEvent(context.Background(), actor, validEventInput())
		assert.ErrorIs(t, err, domain.ErrForbidden, actor.Role)
	}
}

func TestEventService_CreateEvent_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *domain.CreateEventInput)
	}{
		{"empty title", func(in *domain.CreateEventInput) { in.Title = " " }},
		{"empty department", func(in *domain.CreateEventInput) { in.Department = "" }},
		{"missing start", func(in *domain.CreateEventInput) { in.StartTime = time.Time{} }},
		{"end equals start", func(in *domain.CreateEventInput) { in.EndTime = in.StartTime }},
		{"end before start", func(in *domain.CreateEventInput) { in.EndTime = in.StartTime.Add(-time.Hour) }},
		{"zero participants", func(in *domain.CreateEventInput) { in.ParticipantCount = 0 }},
		{"negative participants", func(in *domain.CreateEventInput) { in.ParticipantCount = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEventService(nil, nil, nil, nil)
			input := validEventInput()
			tt.mutate(&input)

			_, err := svc.CreateEvent(context.Background(), coordinator, input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_CreateEvent_UnknownVenue(t *testing.T) {
	inventory := mocks.NewMockInventoryRepo(t)
	svc := NewEventService(nil, nil, inventory, nil)

	inventory.EXPECT().GetVenue(mock.Anything, "v1").Return(nil, domain.ErrVenueNotFound)

	_, err := svc.CreateEvent(context.Background(), coordinator, validEventInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_InvalidClaims(t *testing.T) {
	tests := []struct {
		name   string
		claims []domain.ClaimInput
	}{
		{"zero quantity", []domain.ClaimInput{{ResourceID: "r1", Quantity: 0}}},
		{"duplicate resource", []domain.ClaimInput{{ResourceID: "r1", Quantity: 1}, {ResourceID: "r1", Quantity: 2}}},
		{"unknown resource", []domain.ClaimInput{{ResourceID: "missing", Quantity: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inventory := mocks.NewMockInventoryRepo(t)
			svc := NewEventService(nil, nil, inventory, nil)

			inventory.EXPECT().GetVenue(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
			inventory.EXPECT().GetResource(mock.Anything, "r1").Return(&domain.Resource{ID: "r1"}, nil).Maybe()
			inventory.EXPECT().GetResource(mock.Anything, "missing").Return(nil, domain.ErrResourceNotFound).Maybe()

			input := validEventInput()
			input.Claims = tt.claims

			_, err := svc.CreateEvent(context.Background(), coordinator, input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_CreateEvent_RepoError(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	inventory := mocks.NewMockInventoryRepo(t)
	svc := NewEventService(eventRepo, nil, inventory, nil)

	repoErr := errors.New("db error")
	inventory.EXPECT().GetVenue(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	inventory.EXPECT().GetResource(mock.Anything, "r1").Return(&domain.Resource{ID: "r1"}, nil)
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.CreateEvent(context.Background(), coordinator, validEventInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestEventService_ReplaceClaims_Success(t *testing.T) {
	claimRepo := mocks.NewMockClaimRepo(t)
	inventory := mocks.NewMockInventoryRepo(t)
	svc := NewEventService(nil, claimRepo, inventory, nil)

	claims := []domain.ClaimInput{{ResourceID: "r2", Quantity: 3}, {ResourceID: "r1", Quantity: 1}}
	stored := []domain.ResourceClaim{
		{EventID: "e1", ResourceID: "r2", ResourceName: "Microphone", Quantity: 3, Position: 0},
		{EventID: "e1", ResourceID: "r1", ResourceName: "Projector", Quantity: 1, Position: 1},
	}

	inventory.EXPECT().GetResource(mock.Anything, "r1").Return(&domain.Resource{ID: "r1"}, nil)
	inventory.EXPECT().GetResource(mock.Anything, "r2").Return(&domain.Resource{ID: "r2"}, nil)
	claimRepo.EXPECT().Replace(mock.Anything, "e1", "c1", claims).Return(nil)
	claimRepo.EXPECT().ListForEvent(mock.Anything, "e1").Return(stored, nil)

	result, err := svc.ReplaceClaims(context.Background(), coordinator, "e1", claims)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Microphone", result[0].ResourceName)
}

func TestEventService_ReplaceClaims_NotDraft(t *testing.T) {
	claimRepo := mocks.NewMockClaimRepo(t)
	svc := NewEventService(nil, claimRepo, nil, nil)

	claimRepo.EXPECT().Replace(mock.Anything, "e1", "c1", []domain.ClaimInput(nil)).Return(domain.ErrNotEligible)

	_, err := svc.ReplaceClaims(context.Background(), coordinator, "e1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotEligible)
}

func TestEventService_ReplaceClaims_Forbidden(t *testing.T) {
	svc := NewEventService(nil, nil, nil, nil)

	_, err := svc.ReplaceClaims(context.Background(), head, "e1", nil)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_GetDetails_Success(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	claimRepo := mocks.NewMockClaimRepo(t)
	svc := NewEventService(eventRepo, claimRepo, nil, nil)

	details := &domain.EventDetails{
		Event:           domain.Event{ID: "e1", Title: "Hackathon"},
		VenueName:       "Main Hall",
		CoordinatorName: "Alice",
	}
	claims := []domain.ResourceClaim{{EventID: "e1", ResourceID: "r1", Quantity: 2}}

	eventRepo.EXPECT().GetDetails(mock.Anything, "e1").Return(details, nil)
	claimRepo.EXPECT().ListForEvent(mock.Anything, "e1").Return(claims, nil)

	result, err := svc.GetDetails(context.Background(), hod, "e1")

	require.NoError(t, err)
	assert.Equal(t, "Main Hall", result.VenueName)
	assert.Equal(t, "Alice", result.CoordinatorName)
	assert.Len(t, result.Claims, 1)
}

func TestEventService_GetDetails_NotFound(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEventService(eventRepo, nil, nil, nil)

	eventRepo.EXPECT().GetDetails(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetDetails(context.Background(), hod, "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_List_Coordinator(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEventService(eventRepo, nil, nil, nil)

	own := []*domain.Event{{ID: "e1", CoordinatorID: "c1", Status: domain.StatusDraft}}
	eventRepo.EXPECT().ListByCoordinator(mock.Anything, "c1").Return(own, nil)

	events, err := svc.List(context.Background(), coordinator)

	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestEventService_List_ReviewerSkipsDrafts(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEventService(eventRepo, nil, nil, nil)

	eventRepo.EXPECT().ListByStatus(mock.Anything, mock.MatchedBy(skipsDrafts)).Return([]*domain.Event{}, nil)

	_, err := svc.List(context.Background(), dean)

	require.NoError(t, err)
}

// skipsDrafts matches every status except DRAFT, REJECTED included.
func skipsDrafts(statuses []domain.EventStatus) bool {
	if len(statuses) != len(domain.Statuses)-1 {
		return false
	}
	for _, s := range statuses {
		if s == domain.StatusDraft {
			return false
		}
	}
	return slices.Contains(statuses, domain.StatusRejected)
}

func TestEventService_GetDetails_DraftHiddenFromOthers(t *testing.T) {
	draft := &domain.EventDetails{
		Event: domain.Event{ID: "e1", CoordinatorID: "c1", Status: domain.StatusDraft},
	}

	for _, actor := range []domain.Actor{hod, dean, head, admin, {ID: "c2", Role: domain.RoleCoordinator}} {
		eventRepo := mocks.NewMockEventRepo(t)
		svc := NewEventService(eventRepo, nil, nil, nil)
		eventRepo.EXPECT().GetDetails(mock.Anything, "e1").Return(draft, nil)

		_, err := svc.GetDetails(context.Background(), actor, "e1")

		assert.ErrorIs(t, err, domain.ErrNotEligible, actor.ID)
	}
}

func TestEventService_GetDetails_DraftVisibleToAuthor(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	claimRepo := mocks.NewMockClaimRepo(t)
	svc := NewEventService(eventRepo, claimRepo, nil, nil)

	draft := &domain.EventDetails{
		Event: domain.Event{ID: "e1", CoordinatorID: "c1", Status: domain.StatusDraft},
	}
	eventRepo.EXPECT().GetDetails(mock.Anything, "e1").Return(draft, nil)
	claimRepo.EXPECT().ListForEvent(mock.Anything, "e1").Return([]domain.ResourceClaim{}, nil)

	result, err := svc.GetDetails(context.Background(), coordinator, "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, result.Event.Status)
}

func TestEventService_ListByVenue(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	inventory := mocks.NewMockInventoryRepo(t)
	svc := NewEventService(eventRepo, nil, inventory, nil)

	inventory.EXPECT().GetVenue(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	eventRepo.EXPECT().ListByVenue(mock.Anything, "v1", mock.MatchedBy(skipsDrafts)).
		Return([]*domain.Event{{ID: "e1"}, {ID: "e2"}}, nil)

	events, err := svc.ListByVenue(context.Background(), "v1")

	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestEventService_ListByVenue_NotFound(t *testing.T) {
	inventory := mocks.NewMockInventoryRepo(t)
	svc := NewEventService(nil, nil, inventory, nil)

	inventory.EXPECT().GetVenue(mock.Anything, "missing").Return(nil, domain.ErrVenueNotFound)

	_, err := svc.ListByVenue(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}

func TestEventService_Conflicts(t *testing.T) {
	store := allocationtest.NewStore()
	store.AddVenue("v1", "Main Hall", 100)
	store.AddResource("r1", "Projector", 5)
	seedEvent(store, "a", "v1", 0, 3, 50, domain.ClaimInput{ResourceID: "r1", Quantity: 5})
	store.SetStatus("a", domain.StatusHeadApproved)
	seedEvent(store, "b", "v1", 1, 2, 20, domain.ClaimInput{ResourceID: "r1", Quantity: 1})

	svc := NewEventService(nil, nil, nil, store)

	report, err := svc.Conflicts(context.Background(), head, "b")

	require.NoError(t, err)
	assert.True(t, report.HasConflicts())
	require.Len(t, report.VenueConflicts, 1)
	assert.Equal(t, "a", report.VenueConflicts[0].ID)
	require.Len(t, report.ResourceConflicts, 1)
	assert.Equal(t, 0, report.ResourceConflicts[0].Available)
}

func TestEventService_Conflicts_NotFound(t *testing.T) {
	svc := NewEventService(nil, nil, nil, allocationtest.NewStore())

	_, err := svc.Conflicts(context.Background(), head, "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Conflicts_DraftHiddenFromOthers(t *testing.T) {
	store := allocationtest.NewStore()
	store.AddVenue("v1", "Main Hall", 100)
	seedEvent(store, "d", "v1", 0, 2, 10)
	store.SetStatus("d", domain.StatusDraft)

	svc := NewEventService(nil, nil, nil, store)

	_, err := svc.Conflicts(context.Background(), hod, "d")
	assert.ErrorIs(t, err, domain.ErrNotEligible)

	report, err := svc.Conflicts(context.Background(), coordinator, "d")
	require.NoError(t, err)
	assert.False(t, report.HasConflicts())
}
