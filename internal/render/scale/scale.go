// Package scale maps calendar dates onto a horizontal pixel range.
package scale

import (
	"time"
)

// Time is a linear time scale with domain [min, max] and range [start, end].
// The zero value is an empty scale that positions nothing.
type Time struct {
	min, max   time.Time
	start, end float64
	nonEmpty   bool
}

// Fit builds a scale whose domain spans the given dates. An empty date set
// yields an empty scale.
func Fit(dates []time.Time, start, end float64) Time {
	s := Time{start: start, end: end}
	for _, d := range dates {
		if !s.nonEmpty {
			s.min, s.max = d, d
			s.nonEmpty = true
			continue
		}
		if d.Before(s.min) {
			s.min = d
		}
		if d.After(s.max) {
			s.max = d
		}
	}
	return s
}

// Empty reports whether the scale has no domain.
func (s Time) Empty() bool {
	return !s.nonEmpty
}

// Domain returns the domain bounds. Both are zero for an empty scale.
func (s Time) Domain() (time.Time, time.Time) {
	return s.min, s.max
}

// Pos maps a date to its position in the range. A degenerate domain
// (min == max) collapses every date to the midpoint of the range, which
// keeps a single-date timeline centered instead of dividing by zero.
func (s Time) Pos(d time.Time) float64 {
	if !s.nonEmpty {
		return s.start
	}
	span := s.max.Sub(s.min)
	if span == 0 {
		return s.start + (s.end-s.start)/2
	}
	frac := float64(d.Sub(s.min)) / float64(span)
	return s.start + frac*(s.end-s.start)
}
