package view

import "time"

// Clock returns the current time. Rendering code takes one instead of
// calling time.Now so tests can pin the date.
type Clock func() time.Time

// SystemClock reads the wall clock
var SystemClock Clock = time.Now

// Fixed returns a Clock that always reports t
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

// Year returns the calendar year of the clock's current time
func (c Clock) Year() int {
	if c == nil {
		return time.Now().Year()
	}
	return c().Year()
}
