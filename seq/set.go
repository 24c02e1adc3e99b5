package seq

import (
	"errors"
	"reflect"

	"github.com/hasbyte1/go-enumerable/buffer"
)

// This file contains the set operations. Both materialize their first
// argument into a buffer.Buffer on the first traversal of the result —
// deduplication needs the full history, so the source is consumed entirely
// even when the caller reads only part of the result. The buffer is shared
// by every traversal of that particular result value: re-traversing re-runs
// the deduplicating scan over the same buffer, never a fresh materialization
// of the original source.

// structuralEqual is the injectable default equivalence for element types
// that are not comparable, resolved at call time.
func structuralEqual[T any](a, b T) bool { return reflect.DeepEqual(a, b) }

// ─────────────────────────────────────────────────────────────────────────────
// Distinct
// ─────────────────────────────────────────────────────────────────────────────

// Distinct returns a sequence of the elements of s with duplicates (under
// ==) removed. Among equal elements only the first survives, and survivors
// keep their original order.
func Distinct[T comparable](s Sequence[T]) Sequence[T] {
	requireSource(s, "Distinct")
	return &distinctSequence[T]{src: s, eq: func(a, b T) bool { return a == b }}
}

// DistinctFunc is Distinct under a caller-supplied equivalence relation.
// The relation must be reflexive and symmetric; it is never hashed, so
// non-hashable equivalences (case folding, tolerance comparison) are fine at
// the cost of an O(n²) pairwise scan. A nil eq falls back to structural
// equality.
func DistinctFunc[T any](s Sequence[T], eq func(a, b T) bool) Sequence[T] {
	requireSource(s, "DistinctFunc")
	if eq == nil {
		eq = structuralEqual[T]
	}
	return &distinctSequence[T]{src: s, eq: eq}
}

type distinctSequence[T any] struct {
	src Sequence[T]
	eq  func(a, b T) bool

	// set by the first traversal, shared by all later ones
	buf          *buffer.Buffer[T]
	err          error
	materialized bool
}

// materialize drains the source into a fresh buffer exactly once. A source
// error is cached and returned by every traversal of this result.
func (d *distinctSequence[T]) materialize() (*buffer.Buffer[T], error) {
	if d.materialized {
		return d.buf, d.err
	}
	d.materialized = true
	buf := buffer.NewFunc(d.eq)
	it := d.src.Iterate()
	for {
		v, err := it.Next()
		if errors.Is(err, Done) {
			break
		}
		if err != nil {
			d.err = err
			return nil, err
		}
		buf.Append(v)
	}
	d.buf = buf
	return buf, nil
}

func (d *distinctSequence[T]) Iterate() Iterator[T] {
	buf, err := d.materialize()
	if err != nil {
		return errIterator[T]{err: err}
	}
	it := buf.Distinct()
	return nextFunc[T](func() (T, error) {
		v, ok := it.Next()
		if !ok {
			var zero T
			return zero, Done
		}
		return v, nil
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Except
// ─────────────────────────────────────────────────────────────────────────────

// Except returns a sequence of the distinct elements of a that do not appear
// anywhere in b (under ==). Duplicates in a collapse first, so the result
// never repeats an element.
//
// Each surviving element of a triggers one linear probe of b, so the cost is
// proportional to |distinct a| × |b| and b must be restartable.
func Except[T comparable](a, b Sequence[T]) Sequence[T] {
	requireSource(a, "Except")
	requireSource(b, "Except")
	eq := func(x, y T) bool { return x == y }
	return &exceptSequence[T]{
		first:  &distinctSequence[T]{src: a, eq: eq},
		second: b,
		eq:     eq,
	}
}

// ExceptFunc is Except under a caller-supplied equivalence relation, used
// both for collapsing a and for probing b. A nil eq falls back to structural
// equality.
func ExceptFunc[T any](a, b Sequence[T], eq func(x, y T) bool) Sequence[T] {
	requireSource(a, "ExceptFunc")
	requireSource(b, "ExceptFunc")
	if eq == nil {
		eq = structuralEqual[T]
	}
	return &exceptSequence[T]{
		first:  &distinctSequence[T]{src: a, eq: eq},
		second: b,
		eq:     eq,
	}
}

type exceptSequence[T any] struct {
	first  *distinctSequence[T]
	second Sequence[T]
	eq     func(a, b T) bool
}

func (e *exceptSequence[T]) Iterate() Iterator[T] {
	it := e.first.Iterate()
	return latched(nextFunc[T](func() (T, error) {
		var zero T
		for {
			v, err := it.Next()
			if err != nil {
				return zero, err
			}
			found, err := scanContains(e.second, v, e.eq)
			if err != nil {
				return zero, err
			}
			if !found {
				return v, nil
			}
		}
	}))
}
