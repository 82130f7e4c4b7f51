// Package cyclic provides a list whose indices wrap around.
//
// A [List] behaves like an ordinary slice-backed list, except that
// non-negative indices past the end of the list loop back to its start.
// Reading a [Span] that extends past the end of the list produces a result
// that repeats the list as often as needed, possibly making the result longer
// than the list itself.
//
// Negative indices keep their conventional meaning of counting from the end,
// and only reach back one lap. Assigning to and deleting spans never wraps, as
// a write spanning several laps would address some elements more than once.
package cyclic

import (
	"fmt"
	"iter"
	"slices"

	"github.com/pkg/errors"
)

// Index maps i onto [0, n) by wrapping around in both directions. n must be
// positive.
func Index(i, n int) int {
	return (i%n + n) % n
}

// floorDiv divides a by b, rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// List is a mutable sequence with wrapping indices.
//
// The zero value is an empty list ready to use. A List must not be used
// concurrently without synchronization.
type List[T any] struct {
	data []T
}

// New returns a list containing a copy of elems.
func New[T any](elems ...T) *List[T] {
	return &List[T]{data: slices.Clone(elems)}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return len(l.data)
}

// index resolves a single index to a position in l.data.
func (l *List[T]) index(i int) (int, error) {
	n := len(l.data)
	switch {
	case i >= 0 && n > 0:
		return i % n, nil
	case i < 0 && i >= -n:
		return n + i, nil
	default:
		return 0, errors.Wrapf(ErrOutOfRange, "index %d of list with length %d", i, n)
	}
}

// At returns the element at index i. Non-negative indices wrap around, while
// negative indices count from the end of the list, down to -Len().
func (l *List[T]) At(i int) (T, error) {
	j, err := l.index(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.data[j], nil
}

// Set replaces the element at index i, which is resolved like in [List.At].
func (l *List[T]) Set(i int, v T) error {
	j, err := l.index(i)
	if err != nil {
		return err
	}
	l.data[j] = v
	return nil
}

// Delete removes the element at index i, which is resolved like in
// [List.At].
func (l *List[T]) Delete(i int) error {
	j, err := l.index(i)
	if err != nil {
		return err
	}
	l.data = slices.Delete(l.data, j, j+1)
	return nil
}

// Slice returns a new list with the elements addressed by s, wrapping around
// the end of the list as many times as needed.
//
// The start defaults to 0 and the stop to Len(). The elements from start up
// to and excluding stop are collected as if the list was repeated infinitely
// in both directions; for example, on a list of 10 elements, the span [2:23]
// selects the last 8 elements, then the whole list once, then the first 3
// elements. The step is then applied to the collected elements.
//
// A span that selects no elements, or any span of an empty list, produces an
// empty list. Otherwise, Slice returns [ErrZeroStep] for a step of zero.
func (l *List[T]) Slice(s Span) (*List[T], error) {
	n := len(l.data)
	start, stop := 0, n
	if s.hasStart {
		start = s.start
	}
	if s.hasStop {
		stop = s.stop
	}
	if n == 0 || start >= stop {
		return &List[T]{}, nil
	}
	if s.Step() == 0 {
		return nil, errors.Wrapf(ErrZeroStep, "slicing %s", s)
	}
	// last is inclusive.
	last := stop - 1

	i, j := Index(start, n), Index(last, n)
	lapStart, lapLast := floorDiv(start, n), floorDiv(last, n)
	var run []T
	if lapStart == lapLast {
		run = slices.Clone(l.data[i : j+1])
	} else {
		laps := max(0, lapLast-lapStart-1)
		run = make([]T, 0, (n-i)+laps*n+(j+1))
		run = append(run, l.data[i:]...)
		for range laps {
			run = append(run, l.data...)
		}
		run = append(run, l.data[:j+1]...)
	}
	return &List[T]{data: stride(run, s.Step())}, nil
}

// stride selects every step-th element of xs, starting at the front for
// positive steps and at the back for negative ones.
func stride[T any](xs []T, step int) []T {
	switch {
	case step == 1:
		return xs
	case step > 0:
		out := make([]T, 0, (len(xs)+step-1)/step)
		for k := 0; k < len(xs); k += step {
			out = append(out, xs[k])
		}
		return out
	default:
		out := make([]T, 0, (len(xs)-step-1)/-step)
		for k := len(xs) - 1; k >= 0; k += step {
			out = append(out, xs[k])
		}
		return out
	}
}

// SetSpan assigns vs to the elements addressed by s. Spans don't wrap when
// assigning: negative bounds count from the end of the list and bounds past
// either end are clamped to it.
//
// With a step of 1, the addressed elements are replaced by vs, which may
// change the length of the list. With any other step, vs must have exactly
// one value per addressed element, or [ErrLengthMismatch] is returned.
func (l *List[T]) SetSpan(s Span, vs ...T) error {
	if s.Step() == 0 {
		return errors.Wrapf(ErrZeroStep, "assigning to %s", s)
	}
	start, stop, step, count := s.bounds(len(l.data))
	if step == 1 {
		stop = max(start, stop)
		l.data = slices.Replace(l.data, start, stop, vs...)
		return nil
	}
	if len(vs) != count {
		return errors.Wrapf(ErrLengthMismatch, "assigning %d values to %s, which addresses %d elements", len(vs), s, count)
	}
	for k, v := range vs {
		l.data[start+k*step] = v
	}
	return nil
}

// DeleteSpan removes the elements addressed by s. Like in [List.SetSpan],
// spans don't wrap.
func (l *List[T]) DeleteSpan(s Span) error {
	if s.Step() == 0 {
		return errors.Wrapf(ErrZeroStep, "deleting %s", s)
	}
	start, stop, step, count := s.bounds(len(l.data))
	if count == 0 {
		return nil
	}
	if step == 1 {
		l.data = slices.Delete(l.data, start, stop)
		return nil
	}
	if step < 0 {
		// Address the same elements front to back.
		start, step = start+(count-1)*step, -step
	}
	out := l.data[:0]
	for k, v := range l.data {
		if k >= start && (k-start)%step == 0 && (k-start)/step < count {
			continue
		}
		out = append(out, v)
	}
	clear(l.data[len(out):])
	l.data = out
	return nil
}

// Append adds vs to the end of the list.
func (l *List[T]) Append(vs ...T) {
	l.data = append(l.data, vs...)
}

// All returns an iterator over the indices and elements of the list, front to
// back. It doesn't wrap around.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of the list, front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Elements returns a copy of the list's elements.
func (l *List[T]) Elements() []T {
	return slices.Clone(l.data)
}

// Clone returns a copy of the list.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{data: slices.Clone(l.data)}
}

func (l *List[T]) String() string {
	return fmt.Sprint(l.data)
}
