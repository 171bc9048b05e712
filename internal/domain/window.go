package domain

import "time"

// Window half-open time interval [Start, End)
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow создает интервал [start, end)
func NewWindow(start, end time.Time) Window {
	return Window{Start: start, End: end}
}

// IsValid returns true if the window is non-empty and not inverted
func (w Window) IsValid() bool {
	return w.Start.Before(w.End)
}

// Duration returns the window length
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Overlaps checks real interval intersection.
// Boundary-touching windows (one ends exactly where the other starts)
// do NOT overlap: [10:00, 11:00) and [11:00, 12:00) are disjoint.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Contains returns true if other lies fully inside the window
func (w Window) Contains(other Window) bool {
	return !other.Start.Before(w.Start) && !other.End.After(w.End)
}
