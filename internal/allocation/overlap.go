// Package allocation decides whether an event may claim its venue and its
// resources against the events that already hold them.
package allocation

import (
	"time"

	"github.com/stpnv0/EventApproval/internal/domain"
)

// Window is a time interval. Two windows that only touch at a boundary do
// not overlap, so back-to-back events never conflict.
type Window struct {
	Start time.Time
	End   time.Time
}

func WindowOf(e *domain.Event) Window {
	return Window{Start: e.StartTime, End: e.EndTime}
}

// Overlaps reports a.Start < b.End && a.End > b.Start.
func Overlaps(a, b Window) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

func (w Window) Overlaps(o Window) bool {
	return Overlaps(w, o)
}
