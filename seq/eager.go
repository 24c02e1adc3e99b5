package seq

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// This file contains the eager operations: each traverses its source
// synchronously (to completion or to the first short-circuit point) and
// returns a final value. Traversal errors from upstream deferred stages
// propagate unchanged; nil sequence or nil required function arguments are
// precondition violations and panic before any element is consumed.

// ─────────────────────────────────────────────────────────────────────────────
// Quantifiers
// ─────────────────────────────────────────────────────────────────────────────

// All reports whether pred holds for every element of s. It is vacuously
// true on an empty sequence and stops at the first failing element.
func All[T any](s Sequence[T], pred func(T) bool) (bool, error) {
	requireSource(s, "All")
	if pred == nil {
		panic("seq: All called with nil predicate")
	}
	it := s.Iterate()
	for {
		v, err := it.Next()
		if errors.Is(err, Done) {
			return true, nil
		}
		if err != nil {
			return false, err
		}
		if !pred(v) {
			return false, nil
		}
	}
}

// Any reports whether pred holds for some element of s. It is false on an
// empty sequence and stops at the first matching element.
func Any[T any](s Sequence[T], pred func(T) bool) (bool, error) {
	requireSource(s, "Any")
	if pred == nil {
		panic("seq: Any called with nil predicate")
	}
	it := s.Iterate()
	for {
		v, err := it.Next()
		if errors.Is(err, Done) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if pred(v) {
			return true, nil
		}
	}
}

// Contains reports whether some element of s equals value. The scan stops at
// the first match.
func Contains[T comparable](s Sequence[T], value T) (bool, error) {
	requireSource(s, "Contains")
	return scanContains(s, value, func(a, b T) bool { return a == b })
}

// ContainsFunc reports whether some element of s is equivalent to value
// under eq. A nil eq falls back to structural equality.
func ContainsFunc[T any](s Sequence[T], value T, eq func(a, b T) bool) (bool, error) {
	requireSource(s, "ContainsFunc")
	if eq == nil {
		eq = structuralEqual[T]
	}
	return scanContains(s, value, eq)
}

func scanContains[T any](s Sequence[T], value T, eq func(a, b T) bool) (bool, error) {
	it := s.Iterate()
	for {
		v, err := it.Next()
		if errors.Is(err, Done) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if eq(v, value) {
			return true, nil
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Counting & arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements in s, or the number satisfying the
// optional predicate. Returns [ErrOverflow] if the count would pass the
// representable int range.
func Count[T any](s Sequence[T], pred ...func(T) bool) (int, error) {
	requireSource(s, "Count")
	p := optionalPred("Count", pred)
	it := s.Iterate()
	n := 0
	for {
		v, err := it.Next()
		if errors.Is(err, Done) {
			return n, nil
		}
		if err != nil {
			return 0, err
		}
		if p != nil && !p(v) {
			continue
		}
		if n == math.MaxInt {
			return 0, fmt.Errorf("%w: Count", ErrOverflow)
		}
		n++
	}
}

// Sum returns the sum of the elements of s, accumulated in an int64.
// Returns [ErrOverflow] when the running sum leaves the int64 range.
func Sum[T constraints.Integer](s Sequence[T]) (int64, error) {
	requireSource(s, "Sum")
	sum, _, err := sumAndCount(s, func(v T) T { return v })
	return sum, err
}

// Average returns the arithmetic mean of the elements of s.
// Returns [ErrNoElements] on an empty sequence and [ErrOverflow] when the
// running sum leaves the int64 range.
func Average[T constraints.Integer](s Sequence[T]) (float64, error) {
	requireSource(s, "Average")
	return averageOf(s, func(v T) T { return v })
}

// AverageFunc returns the arithmetic mean of the values extracted from each
// element of s by sel.
func AverageFunc[T any, N constraints.Integer](s Sequence[T], sel func(T) N) (float64, error) {
	requireSource(s, "AverageFunc")
	if sel == nil {
		panic("seq: AverageFunc called with nil selector")
	}
	return averageOf(s, sel)
}

func averageOf[T any, N constraints.Integer](s Sequence[T], sel func(T) N) (float64, error) {
	sum, n, err := sumAndCount(s, sel)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: Average", ErrNoElements)
	}
	return float64(sum) / float64(n), nil
}

func sumAndCount[T any, N constraints.Integer](s Sequence[T], sel func(T) N) (int64, int, error) {
	it := s.Iterate()
	var sum int64
	n := 0
	for {
		v, err := it.Next()
		if errors.Is(err, Done) {
			return sum, n, nil
		}
		if err != nil {
			return 0, 0, err
		}
		sum, err = addInt64(sum, int64(sel(v)))
		if err != nil {
			return 0, 0, err
		}
		if n == math.MaxInt {
			return 0, 0, fmt.Errorf("%w: element count", ErrOverflow)
		}
		n++
	}
}

func addInt64(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, fmt.Errorf("%w: running sum", ErrOverflow)
	}
	return sum, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Extrema
// ─────────────────────────────────────────────────────────────────────────────

// Max returns the largest element of s.
// Returns [ErrNoElements] on an empty sequence.
func Max[T constraints.Ordered](s Sequence[T]) (T, error) {
	requireSource(s, "Max")
	return extremum(s, "Max", func(v, best T) bool { return v > best })
}

// Min returns the smallest element of s.
// Returns [ErrNoElements] on an empty sequence.
func Min[T constraints.Ordered](s Sequence[T]) (T, error) {
	requireSource(s, "Min")
	return extremum(s, "Min", func(v, best T) bool { return v < best })
}

// extremum scans the full sequence tracking a running best value, seeded
// from the first element seen.
func extremum[T any](s Sequence[T], op string, better func(v, best T) bool) (T, error) {
	it := s.Iterate()
	var best T
	seen := false
	for {
		v, err := it.Next()
		if errors.Is(err, Done) {
			if !seen {
				return best, fmt.Errorf("%w: %s", ErrNoElements, op)
			}
			return best, nil
		}
		if err != nil {
			var zero T
			return zero, err
		}
		if !seen || better(v, best) {
			best = v
			seen = true
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Element access
// ─────────────────────────────────────────────────────────────────────────────

// ElementAt returns the element at the zero-based position index. It uses
// [Indexed] access when s provides it and a linear scan otherwise. Returns
// [ErrIndexOutOfRange] when index is negative or past the end.
func ElementAt[T any](s Sequence[T], index int) (T, error) {
	requireSource(s, "ElementAt")
	var zero T
	if index < 0 {
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if ix, ok := s.(Indexed[T]); ok {
		if index >= ix.Len() {
			return zero, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, ix.Len())
		}
		return ix.At(index), nil
	}
	it := s.Iterate()
	for pos := 0; ; pos++ {
		v, err := it.Next()
		if errors.Is(err, Done) {
			return zero, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, pos)
		}
		if err != nil {
			return zero, err
		}
		if pos == index {
			return v, nil
		}
	}
}

// ElementAtOrDefault is ElementAt, except that a range violation yields the
// zero value of T instead of an error. Any other traversal error still
// propagates.
func ElementAtOrDefault[T any](s Sequence[T], index int) (T, error) {
	requireSource(s, "ElementAtOrDefault")
	v, err := ElementAt(s, index)
	if errors.Is(err, ErrIndexOutOfRange) {
		var zero T
		return zero, nil
	}
	return v, err
}

// First returns the first element of s, or the first satisfying the optional
// predicate. Returns [ErrNoElements] when none qualifies. Without a
// predicate, [Indexed] access is used when available.
func First[T any](s Sequence[T], pred ...func(T) bool) (T, error) {
	requireSource(s, "First")
	p := optionalPred("First", pred)
	var zero T
	if p == nil {
		if ix, ok := s.(Indexed[T]); ok {
			if ix.Len() == 0 {
				return zero, fmt.Errorf("%w: First", ErrNoElements)
			}
			return ix.At(0), nil
		}
	}
	it := s.Iterate()
	for {
		v, err := it.Next()
		if errors.Is(err, Done) {
			return zero, fmt.Errorf("%w: First", ErrNoElements)
		}
		if err != nil {
			return zero, err
		}
		if p == nil || p(v) {
			return v, nil
		}
	}
}

// FirstOrDefault is First, except that an empty result yields the zero value
// of T instead of an error.
func FirstOrDefault[T any](s Sequence[T], pred ...func(T) bool) (T, error) {
	requireSource(s, "FirstOrDefault")
	return orDefault(First(s, pred...))
}

// Last returns the last element of s, or the last satisfying the optional
// predicate, scanning the full sequence. Returns [ErrNoElements] when none
// qualifies. Without a predicate, [Indexed] access reads position Len()-1
// directly.
func Last[T any](s Sequence[T], pred ...func(T) bool) (T, error) {
	requireSource(s, "Last")
	p := optionalPred("Last", pred)
	var zero T
	if p == nil {
		if ix, ok := s.(Indexed[T]); ok {
			n := ix.Len()
			if n == 0 {
				return zero, fmt.Errorf("%w: Last", ErrNoElements)
			}
			return ix.At(n - 1), nil
		}
	}
	it := s.Iterate()
	var found T
	matched := false
	for {
		v, err := it.Next()
		if errors.Is(err, Done) {
			if !matched {
				return zero, fmt.Errorf("%w: Last", ErrNoElements)
			}
			return found, nil
		}
		if err != nil {
			return zero, err
		}
		if p == nil || p(v) {
			found = v
			matched = true
		}
	}
}

// LastOrDefault is Last, except that an empty result yields the zero value
// of T instead of an error.
func LastOrDefault[T any](s Sequence[T], pred ...func(T) bool) (T, error) {
	requireSource(s, "LastOrDefault")
	return orDefault(Last(s, pred...))
}

// Single returns the unique element of s, or the unique element satisfying
// the optional predicate. Returns [ErrNoElements] when none qualifies and
// [ErrMultipleElements] as soon as a second qualifying element is found.
// Without a predicate, [Indexed] access decides from Len() alone.
func Single[T any](s Sequence[T], pred ...func(T) bool) (T, error) {
	requireSource(s, "Single")
	p := optionalPred("Single", pred)
	var zero T
	if p == nil {
		if ix, ok := s.(Indexed[T]); ok {
			switch n := ix.Len(); {
			case n == 0:
				return zero, fmt.Errorf("%w: Single", ErrNoElements)
			case n > 1:
				return zero, fmt.Errorf("%w: Single", ErrMultipleElements)
			}
			return ix.At(0), nil
		}
	}
	it := s.Iterate()
	var found T
	matched := false
	for {
		v, err := it.Next()
		if errors.Is(err, Done) {
			if !matched {
				return zero, fmt.Errorf("%w: Single", ErrNoElements)
			}
			return found, nil
		}
		if err != nil {
			return zero, err
		}
		if p == nil || p(v) {
			if matched {
				return zero, fmt.Errorf("%w: Single", ErrMultipleElements)
			}
			found = v
			matched = true
		}
	}
}

// SingleOrDefault is Single, except that an empty result yields the zero
// value of T instead of an error. Finding a second qualifying element is
// still [ErrMultipleElements].
func SingleOrDefault[T any](s Sequence[T], pred ...func(T) bool) (T, error) {
	requireSource(s, "SingleOrDefault")
	return orDefault(Single(s, pred...))
}

// orDefault converts exactly the no-elements cardinality violation into the
// zero value, leaving every other error intact.
func orDefault[T any](v T, err error) (T, error) {
	if errors.Is(err, ErrNoElements) {
		var zero T
		return zero, nil
	}
	return v, err
}
