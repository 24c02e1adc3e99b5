package seq

import (
	"errors"
	"iter"
)

// Done is returned by [Iterator.Next] once a traversal has produced its last
// element. Test for it with [errors.Is]; any other non-nil error is a real
// failure discovered at that point of the traversal.
var Done = errors.New("seq: no more elements")

// Iterator is a single in-flight traversal of a sequence.
//
// Next returns the next element, or Done after the last one, or the error
// that ended the traversal early (for example a failed [Cast] at a specific
// element). After a non-nil error every further call returns the same result.
type Iterator[T any] interface {
	Next() (T, error)
}

// Sequence is an ordered stream of elements of type T.
//
// Each call to Iterate starts an independent traversal from the beginning,
// provided the upstream source is itself restartable. Building a Sequence
// never consumes the source; only traversing it does. Results are not cached
// between traversals, except for [Distinct] and [Except] results, which share
// one materialized buffer per result value.
type Sequence[T any] interface {
	Iterate() Iterator[T]
}

// Indexed is an optional capability a Sequence may provide: a known length
// and random access by position. Operations such as [ElementAt], [First],
// [Last] and [Single] probe for it once with a type assertion and fall back
// to a linear traversal when it is absent.
//
// At requires 0 <= i < Len(), like a slice access.
type Indexed[T any] interface {
	Len() int
	At(i int) T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Sequence from a variadic list of items (copied).
// The result supports [Indexed] access.
func New[T any](items ...T) Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &sliceSequence[T]{items: dst}
}

// From creates a Sequence from a slice (the slice is copied).
// The result supports [Indexed] access.
func From[T any](items []T) Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &sliceSequence[T]{items: dst}
}

// sliceSequence is the slice-backed Sequence produced by New and From.
type sliceSequence[T any] struct {
	items []T
}

func (s *sliceSequence[T]) Iterate() Iterator[T] {
	pos := 0
	return nextFunc[T](func() (T, error) {
		if pos >= len(s.items) {
			var zero T
			return zero, Done
		}
		v := s.items[pos]
		pos++
		return v, nil
	})
}

func (s *sliceSequence[T]) Len() int   { return len(s.items) }
func (s *sliceSequence[T]) At(i int) T { return s.items[i] }

// ─────────────────────────────────────────────────────────────────────────────
// Collectors & adapters
// ─────────────────────────────────────────────────────────────────────────────

// Slice traverses s to completion and returns its elements as a slice.
// The first traversal error is returned as-is.
func Slice[T any](s Sequence[T]) ([]T, error) {
	requireSource(s, "Slice")
	out := []T{}
	it := s.Iterate()
	for {
		v, err := it.Next()
		if errors.Is(err, Done) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

// Values adapts s to an iter.Seq for use with a range statement:
//
//	for v := range seq.Values(s) {
//	    ...
//	}
//
// A range statement has no error channel, so Values panics if the traversal
// fails mid-stream. Use it for pipelines known to be infallible (no Cast or
// Convert stages); otherwise drive the [Iterator] directly or use [Slice].
func Values[T any](s Sequence[T]) iter.Seq[T] {
	requireSource(s, "Values")
	return func(yield func(T) bool) {
		it := s.Iterate()
		for {
			v, err := it.Next()
			if errors.Is(err, Done) {
				return
			}
			if err != nil {
				panic("seq: traversal failed during Values: " + err.Error())
			}
			if !yield(v) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Internal plumbing
// ─────────────────────────────────────────────────────────────────────────────

// nextFunc adapts a closure to the Iterator interface. The closure owns all
// traversal state (upstream iterator, position, pending counters).
type nextFunc[T any] func() (T, error)

func (f nextFunc[T]) Next() (T, error) { return f() }

// sequenceFunc adapts a traversal-factory closure to the Sequence interface.
// Every traversal it hands out is latched: the first non-nil error aborts it
// for good.
type sequenceFunc[T any] func() Iterator[T]

func (f sequenceFunc[T]) Iterate() Iterator[T] { return latched(f()) }

// latched wraps it so that the first non-nil error (Done included) is
// recorded and returned by every subsequent call. A failed traversal must
// never resume past the failing element and hand out partial results.
func latched[T any](it Iterator[T]) Iterator[T] {
	return &latchIterator[T]{it: it}
}

type latchIterator[T any] struct {
	it  Iterator[T]
	err error
}

func (l *latchIterator[T]) Next() (T, error) {
	var zero T
	if l.err != nil {
		return zero, l.err
	}
	v, err := l.it.Next()
	if err != nil {
		l.err = err
		return zero, err
	}
	return v, nil
}

// errIterator is a traversal that fails on the first pull.
type errIterator[T any] struct{ err error }

func (e errIterator[T]) Next() (T, error) {
	var zero T
	return zero, e.err
}

// requireSource reports a nil sequence argument as a precondition violation,
// before any traversal begins.
func requireSource[T any](s Sequence[T], op string) {
	if s == nil {
		panic("seq: " + op + " called with nil sequence")
	}
}

// optionalPred unpacks the variadic optional-predicate idiom used across the
// eager operations. A predicate that is present but nil is a precondition
// violation.
func optionalPred[T any](op string, pred []func(T) bool) func(T) bool {
	if len(pred) == 0 {
		return nil
	}
	if pred[0] == nil {
		panic("seq: " + op + " called with nil predicate")
	}
	return pred[0]
}
