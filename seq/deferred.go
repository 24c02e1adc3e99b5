package seq

import (
	"errors"
	"fmt"
	"math"
)

// This file contains the deferred operations: each builds a description of a
// new sequence and performs no iteration of its source until the result is
// traversed. Traversal state lives in the closure returned per Iterate call,
// so independent traversals never share position.

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & projection
// ─────────────────────────────────────────────────────────────────────────────

// Where returns a sequence yielding only the elements of s for which pred
// returns true, in original order.
func Where[T any](s Sequence[T], pred func(T) bool) Sequence[T] {
	requireSource(s, "Where")
	if pred == nil {
		panic("seq: Where called with nil predicate")
	}
	return sequenceFunc[T](func() Iterator[T] {
		it := s.Iterate()
		return nextFunc[T](func() (T, error) {
			for {
				v, err := it.Next()
				if err != nil {
					var zero T
					return zero, err
				}
				if pred(v) {
					return v, nil
				}
			}
		})
	})
}

// Select returns a sequence applying fn to every element of s.
func Select[T, R any](s Sequence[T], fn func(T) R) Sequence[R] {
	requireSource(s, "Select")
	if fn == nil {
		panic("seq: Select called with nil selector")
	}
	return sequenceFunc[R](func() Iterator[R] {
		it := s.Iterate()
		return nextFunc[R](func() (R, error) {
			v, err := it.Next()
			if err != nil {
				var zero R
				return zero, err
			}
			return fn(v), nil
		})
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Re-typing
// ─────────────────────────────────────────────────────────────────────────────

// Cast returns a sequence re-typing each element of s to R via a runtime
// type assertion. An element that is not an R fails with [ErrInvalidCast]
// at that exact point of the traversal; elements already yielded stand.
func Cast[R any](s Sequence[any]) Sequence[R] {
	requireSource(s, "Cast")
	return sequenceFunc[R](func() Iterator[R] {
		it := s.Iterate()
		return nextFunc[R](func() (R, error) {
			var zero R
			v, err := it.Next()
			if err != nil {
				return zero, err
			}
			r, ok := v.(R)
			if !ok {
				return zero, fmt.Errorf("%w: %T is not %T", ErrInvalidCast, v, zero)
			}
			return r, nil
		})
	})
}

// Convert returns a sequence applying an explicit narrowing function to each
// element of s. A conv error fails the traversal at that element, wrapped in
// [ErrInvalidCast]. Use it where the target type cannot be reached by a type
// assertion (numeric narrowing, parsing).
func Convert[T, R any](s Sequence[T], conv func(T) (R, error)) Sequence[R] {
	requireSource(s, "Convert")
	if conv == nil {
		panic("seq: Convert called with nil conversion")
	}
	return sequenceFunc[R](func() Iterator[R] {
		it := s.Iterate()
		return nextFunc[R](func() (R, error) {
			var zero R
			v, err := it.Next()
			if err != nil {
				return zero, err
			}
			r, err := conv(v)
			if err != nil {
				return zero, fmt.Errorf("%w: %w", ErrInvalidCast, err)
			}
			return r, nil
		})
	})
}

// OfType returns a sequence yielding only the elements of s that are of type
// R, in original order. Elements of other types are skipped, never failed.
func OfType[R any](s Sequence[any]) Sequence[R] {
	requireSource(s, "OfType")
	return sequenceFunc[R](func() Iterator[R] {
		it := s.Iterate()
		return nextFunc[R](func() (R, error) {
			for {
				v, err := it.Next()
				if err != nil {
					var zero R
					return zero, err
				}
				if r, ok := v.(R); ok {
					return r, nil
				}
			}
		})
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Combination
// ─────────────────────────────────────────────────────────────────────────────

// Concat returns a sequence yielding all of a in order, then all of b.
func Concat[T any](a, b Sequence[T]) Sequence[T] {
	requireSource(a, "Concat")
	requireSource(b, "Concat")
	return sequenceFunc[T](func() Iterator[T] {
		it := a.Iterate()
		onSecond := false
		return nextFunc[T](func() (T, error) {
			for {
				v, err := it.Next()
				if err == nil {
					return v, nil
				}
				if errors.Is(err, Done) && !onSecond {
					it = b.Iterate()
					onSecond = true
					continue
				}
				var zero T
				return zero, err
			}
		})
	})
}

// DefaultIfEmpty returns a sequence yielding the elements of s unchanged
// when s is non-empty, or exactly one element when s is empty: the optional
// def, or the zero value of T when omitted. Emptiness is decided by the
// first pull of the traversal, not at construction.
func DefaultIfEmpty[T any](s Sequence[T], def ...T) Sequence[T] {
	requireSource(s, "DefaultIfEmpty")
	var fallback T
	if len(def) > 0 {
		fallback = def[0]
	}
	return sequenceFunc[T](func() Iterator[T] {
		it := s.Iterate()
		first := true
		defaulted := false
		return nextFunc[T](func() (T, error) {
			var zero T
			if defaulted {
				return zero, Done
			}
			v, err := it.Next()
			if err == nil {
				first = false
				return v, nil
			}
			if errors.Is(err, Done) && first {
				defaulted = true
				return fallback, nil
			}
			return zero, err
		})
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Generation
// ─────────────────────────────────────────────────────────────────────────────

// Empty returns a permanently empty sequence of T.
// The result supports [Indexed] access with Len() == 0.
func Empty[T any]() Sequence[T] {
	return emptySequence[T]{}
}

type emptySequence[T any] struct{}

func (emptySequence[T]) Iterate() Iterator[T] {
	return errIterator[T]{err: Done}
}

func (emptySequence[T]) Len() int { return 0 }

func (emptySequence[T]) At(i int) T {
	panic(fmt.Sprintf("seq: index %d out of range in empty sequence", i))
}

// Range returns a sequence of count consecutive integers starting at start.
// It fails up front with [ErrNegativeCount] when count is negative, or with
// [ErrOverflow] when start+count-1 would not be representable in an int.
// The result supports [Indexed] access.
func Range(start, count int) (Sequence[int], error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: Range count %d", ErrNegativeCount, count)
	}
	if count > 0 && start > math.MaxInt-count+1 {
		return nil, fmt.Errorf("%w: Range from %d with count %d", ErrOverflow, start, count)
	}
	return &rangeSequence{start: start, count: count}, nil
}

type rangeSequence struct {
	start, count int
}

func (r *rangeSequence) Iterate() Iterator[int] {
	pos := 0
	return nextFunc[int](func() (int, error) {
		if pos >= r.count {
			return 0, Done
		}
		v := r.start + pos
		pos++
		return v, nil
	})
}

func (r *rangeSequence) Len() int { return r.count }

func (r *rangeSequence) At(i int) int {
	if i < 0 || i >= r.count {
		panic(fmt.Sprintf("seq: index %d out of range [0, %d)", i, r.count))
	}
	return r.start + i
}

// Repeat returns a sequence yielding value exactly count times.
// It fails up front with [ErrNegativeCount] when count is negative.
// The result supports [Indexed] access.
func Repeat[T any](value T, count int) (Sequence[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: Repeat count %d", ErrNegativeCount, count)
	}
	return &repeatSequence[T]{value: value, count: count}, nil
}

type repeatSequence[T any] struct {
	value T
	count int
}

func (r *repeatSequence[T]) Iterate() Iterator[T] {
	pos := 0
	return nextFunc[T](func() (T, error) {
		if pos >= r.count {
			var zero T
			return zero, Done
		}
		pos++
		return r.value, nil
	})
}

func (r *repeatSequence[T]) Len() int { return r.count }

func (r *repeatSequence[T]) At(i int) T {
	if i < 0 || i >= r.count {
		panic(fmt.Sprintf("seq: index %d out of range [0, %d)", i, r.count))
	}
	return r.value
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Skip returns a sequence yielding the elements of s after the first n.
// The pending skip count is decremented per element pulled; once it reaches
// zero every remaining element is yielded. n <= 0 yields everything.
func Skip[T any](s Sequence[T], n int) Sequence[T] {
	requireSource(s, "Skip")
	return sequenceFunc[T](func() Iterator[T] {
		it := s.Iterate()
		remaining := n
		return nextFunc[T](func() (T, error) {
			for {
				v, err := it.Next()
				if err != nil {
					var zero T
					return zero, err
				}
				if remaining > 0 {
					remaining--
					continue
				}
				return v, nil
			}
		})
	})
}

// Take returns a sequence yielding at most the first n elements of s.
// n <= 0 yields nothing; the source is not pulled past the nth element.
func Take[T any](s Sequence[T], n int) Sequence[T] {
	requireSource(s, "Take")
	return sequenceFunc[T](func() Iterator[T] {
		it := s.Iterate()
		remaining := n
		return nextFunc[T](func() (T, error) {
			var zero T
			if remaining <= 0 {
				return zero, Done
			}
			v, err := it.Next()
			if err != nil {
				return zero, err
			}
			remaining--
			return v, nil
		})
	})
}
