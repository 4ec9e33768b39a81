package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/EventApproval/internal/allocation/allocationtest"
	"github.com/stpnv0/EventApproval/internal/domain"
	"github.com/stpnv0/EventApproval/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var (
	coordinator = domain.Actor{ID: "c1", Role: domain.RoleCoordinator}
	hod         = domain.Actor{ID: "h1", Role: domain.RoleHOD}
	dean        = domain.Actor{ID: "d1", Role: domain.RoleDean}
	head        = domain.Actor{ID: "x1", Role: domain.RoleHead}
	admin       = domain.Actor{ID: "a1", Role: domain.RoleAdmin}
)

var slot = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestApprovalService_Submit_Success(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewApprovalService(eventRepo, nil, nil, nil, newTestLogger(t))

	submitted := &domain.Event{ID: "e1", CoordinatorID: "c1", Status: domain.StatusSubmitted}
	eventRepo.EXPECT().SetStatus(mock.Anything, domain.StatusChange{
		EventID:       "e1",
		From:          []domain.EventStatus{domain.StatusDraft},
		To:            domain.StatusSubmitted,
		CoordinatorID: "c1",
	}).Return(submitted, nil)

	event, err := svc.Submit(context.Background(), coordinator, "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusSubmitted, event.Status)
}

func TestApprovalService_Submit_NotAuthorOrNotDraft(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewApprovalService(eventRepo, nil, nil, nil, newTestLogger(t))

	other := domain.Actor{ID: "c2", Role: domain.RoleCoordinator}
	eventRepo.EXPECT().SetStatus(mock.Anything, mock.MatchedBy(func(ch domain.StatusChange) bool {
		return ch.CoordinatorID == "c2"
	})).Return(nil, domain.ErrNotEligible)

	_, err := svc.Submit(context.Background(), other, "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotEligible)
}

func TestApprovalService_HODApprove_NotifiesAuthor(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockEventNotifier(t)
	svc := NewApprovalService(eventRepo, nil, userRepo, notifier, newTestLogger(t))

	approved := &domain.Event{ID: "e1", CoordinatorID: "c1", Status: domain.StatusHODApproved}
	author := &domain.User{ID: "c1", Name: "Alice"}

	eventRepo.EXPECT().SetStatus(mock.Anything, domain.StatusChange{
		EventID: "e1",
		From:    []domain.EventStatus{domain.StatusSubmitted},
		To:      domain.StatusHODApproved,
	}).Return(approved, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "c1").Return(author, nil)
	notifier.EXPECT().NotifyStatusChanged(mock.Anything, author, approved).Return()

	event, err := svc.HODApprove(context.Background(), hod, "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusHODApproved, event.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestApprovalService_HODReject_RecordsReason(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockEventNotifier(t)
	svc := NewApprovalService(eventRepo, nil, userRepo, notifier, newTestLogger(t))

	reason := "clashes with exams"
	rejected := &domain.Event{ID: "e1", CoordinatorID: "c1", Status: domain.StatusRejected, RejectionReason: &reason}
	author := &domain.User{ID: "c1"}

	eventRepo.EXPECT().SetStatus(mock.Anything, mock.MatchedBy(func(ch domain.StatusChange) bool {
		return ch.To == domain.StatusRejected &&
			ch.RejectionReason != nil && *ch.RejectionReason == reason
	})).Return(rejected, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "c1").Return(author, nil)
	notifier.EXPECT().NotifyStatusChanged(mock.Anything, author, rejected).Return()

	event, err := svc.HODReject(context.Background(), hod, "e1", "  "+reason+" ")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, event.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestApprovalService_HODReject_EmptyReason(t *testing.T) {
	svc := NewApprovalService(nil, nil, nil, nil, newTestLogger(t))

	_, err := svc.HODReject(context.Background(), hod, "e1", "   ")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestApprovalService_RejectedIsFinal(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewApprovalService(eventRepo, nil, nil, nil, newTestLogger(t))

	eventRepo.EXPECT().SetStatus(mock.Anything, mock.Anything).Return(nil, domain.ErrNotEligible)

	_, err := svc.Submit(context.Background(), coordinator, "e1")
	assert.ErrorIs(t, err, domain.ErrNotEligible)

	_, err = svc.HODApprove(context.Background(), hod, "e1")
	assert.ErrorIs(t, err, domain.ErrNotEligible)

	_, err = svc.HODReject(context.Background(), hod, "e1", "again")
	assert.ErrorIs(t, err, domain.ErrNotEligible)
}

func TestApprovalService_RoleMismatchIsForbidden(t *testing.T) {
	svc := NewApprovalService(nil, nil, nil, nil, newTestLogger(t))
	actors := []domain.Actor{coordinator, hod, dean, head, admin}

	for _, tr := range domain.Transitions {
		rule, _ := domain.RuleFor(tr)
		for _, actor := range actors {
			if actor.Can(rule.Capability) {
				continue
			}
			_, err := svc.Apply(context.Background(), actor, tr, "e1", "reason")
			assert.ErrorIs(t, err, domain.ErrForbidden, "%s by %s", tr, actor.Role)
		}
	}
}

func TestApprovalService_UnknownTransition(t *testing.T) {
	svc := NewApprovalService(nil, nil, nil, nil, newTestLogger(t))

	_, err := svc.Apply(context.Background(), admin, "cancel", "e1", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestApprovalService_Complete_FromHeadApproved(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewApprovalService(eventRepo, nil, nil, nil, newTestLogger(t))

	done := &domain.Event{ID: "e1", CoordinatorID: "c1", Status: domain.StatusCompleted}
	eventRepo.EXPECT().SetStatus(mock.Anything, domain.StatusChange{
		EventID:       "e1",
		From:          []domain.EventStatus{domain.StatusRunning, domain.StatusHeadApproved},
		To:            domain.StatusCompleted,
		CoordinatorID: "c1",
	}).Return(done, nil)

	event, err := svc.Complete(context.Background(), coordinator, "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, event.Status)
}

func TestApprovalService_HeadApprove_NotEligible(t *testing.T) {
	admission := mocks.NewMockAdmission(t)
	svc := NewApprovalService(nil, admission, nil, nil, newTestLogger(t))

	admission.EXPECT().Admit(mock.Anything, "e1", mock.Anything).Return(domain.ErrNotEligible)

	_, err := svc.HeadApprove(context.Background(), head, "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotEligible)
}

func TestApprovalService_HeadApprove_AdmissionError(t *testing.T) {
	admission := mocks.NewMockAdmission(t)
	svc := NewApprovalService(nil, admission, nil, nil, newTestLogger(t))

	dbErr := errors.New("connection reset")
	admission.EXPECT().Admit(mock.Anything, "e1", mock.Anything).Return(dbErr)

	_, err := svc.HeadApprove(context.Background(), head, "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domain.ErrAllocationRejected)
}

// storeEvents serves GetByID from the in-memory store so the event returned
// after admission reflects the committed status.
func storeEvents(t *testing.T, store *allocationtest.Store) *mocks.MockEventRepo {
	eventRepo := mocks.NewMockEventRepo(t)
	eventRepo.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(store.GetEvent)
	return eventRepo
}

func seedEvent(store *allocationtest.Store, id, venueID string, fromHour, toHour, participants int, claims ...domain.ClaimInput) {
	store.AddEvent(domain.Event{
		ID:               id,
		Title:            "event " + id,
		CoordinatorID:    "c1",
		VenueID:          venueID,
		StartTime:        slot.Add(time.Duration(fromHour) * time.Hour),
		EndTime:          slot.Add(time.Duration(toHour) * time.Hour),
		ParticipantCount: participants,
		Status:           domain.StatusDeanApproved,
	}, claims...)
}

func TestApprovalService_HeadApprove_Admits(t *testing.T) {
	store := allocationtest.NewStore()
	store.AddVenue("v1", "Main Hall", 100)
	store.AddResource("r1", "Projector", 5)
	seedEvent(store, "e1", "v1", 0, 2, 100, domain.ClaimInput{ResourceID: "r1", Quantity: 5})

	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockEventNotifier(t)
	author := &domain.User{ID: "c1"}
	userRepo.EXPECT().GetByID(mock.Anything, "c1").Return(author, nil)
	notifier.EXPECT().NotifyStatusChanged(mock.Anything, author, mock.Anything).Return()

	svc := NewApprovalService(storeEvents(t, store), store, userRepo, notifier, newTestLogger(t))

	event, err := svc.HeadApprove(context.Background(), head, "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusHeadApproved, event.Status)
	assert.Equal(t, domain.StatusHeadApproved, store.Status("e1"))

	time.Sleep(50 * time.Millisecond)
}

func TestApprovalService_HeadApprove_ResourceExhausted(t *testing.T) {
	store := allocationtest.NewStore()
	store.AddVenue("v1", "Main Hall", 100)
	store.AddVenue("v2", "Seminar Room", 40)
	store.AddResource("r1", "Projector", 5)
	seedEvent(store, "a", "v1", 0, 3, 50, domain.ClaimInput{ResourceID: "r1", Quantity: 5})
	store.SetStatus("a", domain.StatusHeadApproved)
	seedEvent(store, "b", "v2", 1, 2, 20, domain.ClaimInput{ResourceID: "r1", Quantity: 1})

	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockEventNotifier(t)
	author := &domain.User{ID: "c1"}
	userRepo.EXPECT().GetByID(mock.Anything, "c1").Return(author, nil)
	notifier.EXPECT().NotifyAllocationRejected(mock.Anything, author, mock.Anything,
		mock.MatchedBy(func(e *domain.AllocationError) bool {
			return e.Kind == domain.ConflictResourceTime && e.Available == 0
		})).Return()

	svc := NewApprovalService(storeEvents(t, store), store, userRepo, notifier, newTestLogger(t))

	_, err := svc.HeadApprove(context.Background(), head, "b")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAllocationRejected)

	var allocErr *domain.AllocationError
	require.True(t, errors.As(err, &allocErr))
	assert.Equal(t, "Projector", allocErr.ResourceName)
	assert.Equal(t, 1, allocErr.Requested)
	assert.Equal(t, 0, allocErr.Available)
	assert.Equal(t, domain.StatusDeanApproved, store.Status("b"))

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestApprovalService_HeadApprove_ConcurrentConflictsHaveOneWinner(t *testing.T) {
	store := allocationtest.NewStore()
	store.AddVenue("v1", "Main Hall", 100)
	seedEvent(store, "a", "v1", 0, 2, 10)
	seedEvent(store, "b", "v1", 1, 3, 10)

	userRepo := mocks.NewMockUserRepo(t)
	userRepo.EXPECT().GetByID(mock.Anything, "c1").Return(nil, domain.ErrUserNotFound)

	svc := NewApprovalService(storeEvents(t, store), store, userRepo, nil, newTestLogger(t))

	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, 2)
	)
	for i, id := range []string{"a", "b"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, errs[i] = svc.HeadApprove(context.Background(), head, id)
		}()
	}
	close(start)
	wg.Wait()

	var admitted, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			admitted++
		case errors.Is(err, domain.ErrAllocationRejected):
			rejected++
		}
	}
	assert.Equal(t, 1, admitted)
	assert.Equal(t, 1, rejected)

	committed := 0
	for _, id := range []string{"a", "b"} {
		if store.Status(id).Committed() {
			committed++
		}
	}
	assert.Equal(t, 1, committed)

	time.Sleep(50 * time.Millisecond)
}

func TestApprovalService_HeadApprove_DoubleApproveOnce(t *testing.T) {
	store := allocationtest.NewStore()
	store.AddVenue("v1", "Main Hall", 100)
	seedEvent(store, "a", "v1", 0, 2, 10)

	userRepo := mocks.NewMockUserRepo(t)
	userRepo.EXPECT().GetByID(mock.Anything, "c1").Return(nil, domain.ErrUserNotFound)

	svc := NewApprovalService(storeEvents(t, store), store, userRepo, nil, newTestLogger(t))

	var (
		wg   sync.WaitGroup
		errs = make([]error, 4)
	)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.HeadApprove(context.Background(), head, "a")
		}()
	}
	wg.Wait()

	var ok, notEligible int
	for _, err := range errs {
		if err == nil {
			ok++
		} else if errors.Is(err, domain.ErrNotEligible) {
			notEligible++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, len(errs)-1, notEligible)

	time.Sleep(50 * time.Millisecond)
}

func TestApprovalService_Pending(t *testing.T) {
	tests := []struct {
		actor domain.Actor
		want  domain.EventStatus
	}{
		{hod, domain.StatusSubmitted},
		{dean, domain.StatusHODApproved},
		{head, domain.StatusDeanApproved},
	}

	for _, tt := range tests {
		t.Run(string(tt.actor.Role), func(t *testing.T) {
			eventRepo := mocks.NewMockEventRepo(t)
			svc := NewApprovalService(eventRepo, nil, nil, nil, newTestLogger(t))

			queued := []*domain.Event{{ID: "e1", Status: tt.want}}
			eventRepo.EXPECT().ListByStatus(mock.Anything, []domain.EventStatus{tt.want}).Return(queued, nil)

			events, err := svc.Pending(context.Background(), tt.actor)

			require.NoError(t, err)
			assert.Len(t, events, 1)
		})
	}
}

func TestApprovalService_Pending_Forbidden(t *testing.T) {
	svc := NewApprovalService(nil, nil, nil, nil, newTestLogger(t))

	for _, actor := range []domain.Actor{coordinator, admin} {
		_, err := svc.Pending(context.Background(), actor)
		assert.ErrorIs(t, err, domain.ErrForbidden, actor.Role)
	}
}
