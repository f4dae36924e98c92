package motion

import "time"

// Slot is one element's place in a Timeline
type Slot struct {
	ID       string
	Index    int
	Entrance Entrance
}

// Start returns when the slot begins, given the instant its batch entered
// the viewport
func (s Slot) Start(at time.Time) time.Time {
	return at.Add(s.Entrance.Delay)
}

// Timeline collects the entrances of one batch, such as the cards of a
// collection, which share a single viewport-entry instant. The entrance of
// each element comes from its position in the batch.
type Timeline struct {
	entrance func(idx int) Entrance
	slots    []Slot
}

// NewTimeline creates an empty Timeline whose elements animate with the
// entrance returned for their index
func NewTimeline(entrance func(idx int) Entrance) *Timeline {
	return &Timeline{entrance: entrance}
}

// Add appends the element id and returns its slot
func (tl *Timeline) Add(id string) Slot {
	s := Slot{ID: id, Index: len(tl.slots), Entrance: tl.entrance(len(tl.slots))}
	tl.slots = append(tl.slots, s)
	return s
}

// Len returns the number of slots
func (tl *Timeline) Len() int {
	return len(tl.slots)
}

// Schedule returns the slots in the order they were added
func (tl *Timeline) Schedule() []Slot {
	return append([]Slot(nil), tl.slots...)
}
