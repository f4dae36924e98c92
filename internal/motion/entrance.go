// Package motion describes entrance animations and how a batch of them is
// staggered. Playback, and the one-shot visibility trigger that starts it,
// happens in the browser (static/js/motion.js).
package motion

import "time"

// Mode selects what starts an entrance
type Mode string

const (
	// OnMount plays as soon as the element is rendered
	OnMount Mode = "mount"
	// InView plays when the element scrolls into the viewport
	InView Mode = "in-view"
)

// Stagger steps between items of one batch
const (
	CardStep  = 50 * time.Millisecond
	PanelStep = 100 * time.Millisecond
)

// Entrance is a translate + fade animation from (OffsetY, opacity 0) to rest
type Entrance struct {
	Mode     Mode
	Delay    time.Duration
	Duration time.Duration
	OffsetY  int
	// Amount is the visible fraction that counts as "in view"; zero means any
	Amount float64
	Once   bool
}

// Stagger returns idx*step. Negative indexes count as zero.
func Stagger(idx int, step time.Duration) time.Duration {
	if idx < 0 {
		return 0
	}
	return time.Duration(idx) * step
}

// HeroEntrance plays once on mount, ungated by scroll position
func HeroEntrance() Entrance {
	return Entrance{
		Mode:     OnMount,
		Duration: 800 * time.Millisecond,
		OffsetY:  20,
		Once:     true,
	}
}

// CardEntrance is the entrance of the idx-th card in its collection
func CardEntrance(idx int) Entrance {
	return Entrance{
		Mode:     InView,
		Delay:    Stagger(idx, CardStep),
		Duration: 500 * time.Millisecond,
		OffsetY:  12,
		Amount:   0.2,
		Once:     true,
	}
}

// PanelEntrance is the entrance of the idx-th about panel
func PanelEntrance(idx int) Entrance {
	return Entrance{
		Mode:     InView,
		Delay:    Stagger(idx, PanelStep),
		Duration: 600 * time.Millisecond,
		OffsetY:  12,
		Once:     true,
	}
}
