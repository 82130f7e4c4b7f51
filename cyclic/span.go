package cyclic

import (
	"strconv"
	"strings"
)

// Span describes a range of indices with an optional start, an optional
// stop, and an optional step, like a slice expression start:stop:step in
// which any part may be omitted. The stop is exclusive.
//
// The zero value spans the whole list.
type Span struct {
	start, stop, step          int
	hasStart, hasStop, hasStep bool
}

// From returns the span from start to the end of the list.
func From(start int) Span {
	return Span{start: start, hasStart: true}
}

// To returns the span from the start of the list to stop.
func To(stop int) Span {
	return Span{stop: stop, hasStop: true}
}

// Between returns the span from start to stop.
func Between(start, stop int) Span {
	return Span{start: start, stop: stop, hasStart: true, hasStop: true}
}

// By returns a copy of s that selects every step-th element. Negative steps
// walk backwards.
func (s Span) By(step int) Span {
	s.step = step
	s.hasStep = true
	return s
}

// Start returns the span's start and whether it is set.
func (s Span) Start() (int, bool) { return s.start, s.hasStart }

// Stop returns the span's stop and whether it is set.
func (s Span) Stop() (int, bool) { return s.stop, s.hasStop }

// Step returns the span's step, which is 1 if unset.
func (s Span) Step() int {
	if !s.hasStep {
		return 1
	}
	return s.step
}

func (s Span) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	if s.hasStart {
		sb.WriteString(strconv.Itoa(s.start))
	}
	sb.WriteByte(':')
	if s.hasStop {
		sb.WriteString(strconv.Itoa(s.stop))
	}
	if s.hasStep {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(s.step))
	}
	sb.WriteByte(']')
	return sb.String()
}

// bounds resolves the span against a list of length n without wrapping:
// negative bounds count from the end and everything is clamped to the list.
// It returns the first index, the exclusive stop, the step, and the number of
// addressed elements.
func (s Span) bounds(n int) (start, stop, step, count int) {
	step = s.Step()
	clamp := func(i int) int {
		if i < 0 {
			i += n
			if i < 0 {
				if step < 0 {
					return -1
				}
				return 0
			}
		} else if i >= n {
			if step < 0 {
				return n - 1
			}
			return n
		}
		return i
	}

	if step > 0 {
		start, stop = 0, n
	} else {
		start, stop = n-1, -1
	}
	if s.hasStart {
		start = clamp(s.start)
	}
	if s.hasStop {
		stop = clamp(s.stop)
	}

	switch {
	case step > 0 && start < stop:
		count = (stop-start-1)/step + 1
	case step < 0 && stop < start:
		count = (start-stop-1)/(-step) + 1
	}
	return start, stop, step, count
}
