package allocation_test

import (
	"testing"
	"time"

	"github.com/stpnv0/EventApproval/internal/allocation"
	"github.com/stretchr/testify/assert"
)

var base = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func window(fromHour, toHour int) allocation.Window {
	return allocation.Window{
		Start: base.Add(time.Duration(fromHour) * time.Hour),
		End:   base.Add(time.Duration(toHour) * time.Hour),
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b allocation.Window
		want bool
	}{
		{"identical", window(0, 2), window(0, 2), true},
		{"partial left", window(0, 2), window(1, 3), true},
		{"contained", window(0, 4), window(1, 2), true},
		{"touching end to start", window(0, 2), window(2, 4), false},
		{"disjoint", window(0, 1), window(3, 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, allocation.Overlaps(tt.a, tt.b))
		})
	}
}

func TestOverlaps_Symmetric(t *testing.T) {
	windows := []allocation.Window{
		window(0, 1), window(0, 2), window(1, 2), window(1, 3), window(2, 4), window(3, 4), window(0, 4),
	}

	for _, a := range windows {
		for _, b := range windows {
			assert.Equal(t, allocation.Overlaps(a, b), allocation.Overlaps(b, a),
				"a=%v b=%v", a, b)
		}
	}
}

func TestOverlaps_TouchingNeverOverlaps(t *testing.T) {
	for t0 := 0; t0 < 3; t0++ {
		for t1 := t0 + 1; t1 < 5; t1++ {
			for t2 := t1 + 1; t2 < 7; t2++ {
				assert.False(t, window(t0, t1).Overlaps(window(t1, t2)))
				assert.False(t, window(t1, t2).Overlaps(window(t0, t1)))
			}
		}
	}
}
