package domain

type Transition string

const (
	TransitionSubmit      Transition = "submit"
	TransitionHODApprove  Transition = "hod-approve"
	TransitionHODReject   Transition = "hod-reject"
	TransitionDeanApprove Transition = "dean-approve"
	TransitionHeadApprove Transition = "head-approve"
	TransitionStart       Transition = "start"
	TransitionComplete    Transition = "complete"
)

// TransitionRule describes who may move an event from which statuses to
// which status. Admission marks the one transition that must pass the
// allocation validator before it is committed.
type TransitionRule struct {
	Transition     Transition
	Capability     Capability
	From           []EventStatus
	To             EventStatus
	RequiresAuthor bool
	RequiresReason bool
	Admission      bool
}

var transitionRules = map[Transition]TransitionRule{
	TransitionSubmit: {
		Transition:     TransitionSubmit,
		Capability:     CapManageOwnEvent,
		From:           []EventStatus{StatusDraft},
		To:             StatusSubmitted,
		RequiresAuthor: true,
	},
	TransitionHODApprove: {
		Transition: TransitionHODApprove,
		Capability: CapHODReview,
		From:       []EventStatus{StatusSubmitted},
		To:         StatusHODApproved,
	},
	TransitionHODReject: {
		Transition:     TransitionHODReject,
		Capability:     CapHODReview,
		From:           []EventStatus{StatusSubmitted},
		To:             StatusRejected,
		RequiresReason: true,
	},
	TransitionDeanApprove: {
		Transition: TransitionDeanApprove,
		Capability: CapDeanReview,
		From:       []EventStatus{StatusHODApproved},
		To:         StatusDeanApproved,
	},
	TransitionHeadApprove: {
		Transition: TransitionHeadApprove,
		Capability: CapHeadReview,
		From:       []EventStatus{StatusDeanApproved},
		To:         StatusHeadApproved,
		Admission:  true,
	},
	TransitionStart: {
		Transition:     TransitionStart,
		Capability:     CapManageOwnEvent,
		From:           []EventStatus{StatusHeadApproved},
		To:             StatusRunning,
		RequiresAuthor: true,
	},
	TransitionComplete: {
		Transition:     TransitionComplete,
		Capability:     CapManageOwnEvent,
		From:           []EventStatus{StatusRunning, StatusHeadApproved},
		To:             StatusCompleted,
		RequiresAuthor: true,
	},
}

var Transitions = []Transition{
	TransitionSubmit, TransitionHODApprove, TransitionHODReject, TransitionDeanApprove,
	TransitionHeadApprove, TransitionStart, TransitionComplete,
}

func RuleFor(t Transition) (TransitionRule, bool) {
	r, ok := transitionRules[t]
	return r, ok
}

func (r TransitionRule) AllowsFrom(s EventStatus) bool {
	for _, f := range r.From {
		if f == s {
			return true
		}
	}
	return false
}

// Change builds the compare-and-set for this rule applied by actor.
func (r TransitionRule) Change(eventID string, actor Actor, reason *string) StatusChange {
	ch := StatusChange{
		EventID: eventID,
		From:    r.From,
		To:      r.To,
	}
	if r.RequiresAuthor {
		ch.CoordinatorID = actor.ID
	}
	if r.RequiresReason {
		ch.RejectionReason = reason
	}
	return ch
}
