package buffer

import (
	"fmt"
	"iter"
	"reflect"
)

// initialCapacity is the capacity allocated by the first Append into an
// empty buffer.
const initialCapacity = 4

// Buffer is a growable, index-addressable container of T with a pluggable
// equivalence relation.
//
// A Buffer is created empty, populated by Append, and consumed either by
// indexed access or by a deduplicating traversal ([Buffer.Distinct]). It is
// not safe for concurrent use.
type Buffer[T any] struct {
	items []T
	count int
	eq    func(a, b T) bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an empty Buffer whose equivalence relation is ==.
func New[T comparable]() *Buffer[T] {
	return NewFunc[T](func(a, b T) bool { return a == b })
}

// NewFunc creates an empty Buffer with a caller-supplied equivalence
// relation. The relation must be reflexive and symmetric and is fixed for
// the life of the buffer.
//
// A nil eq falls back to structural equality via [reflect.DeepEqual].
func NewFunc[T any](eq func(a, b T) bool) *Buffer[T] {
	if eq == nil {
		eq = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	return &Buffer[T]{eq: eq}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements in the buffer.
func (b *Buffer[T]) Len() int { return b.count }

// Cap returns the current capacity of the backing storage.
func (b *Buffer[T]) Cap() int { return len(b.items) }

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (b *Buffer[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= b.count {
		return zero, false
	}
	return b.items[index], true
}

// At returns the element at index. Like a slice access, it panics when
// index is outside [0, Len()-1]; use [Buffer.Get] for a checked lookup.
func (b *Buffer[T]) At(index int) T {
	if index < 0 || index >= b.count {
		panic(fmt.Sprintf("buffer: index %d out of range [0, %d)", index, b.count))
	}
	return b.items[index]
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Append adds item at the end of the buffer, doubling the capacity first
// when the backing storage is full. Amortized O(1).
func (b *Buffer[T]) Append(item T) {
	if b.count == len(b.items) {
		b.grow()
	}
	b.items[b.count] = item
	b.count++
}

// grow doubles the backing storage, preserving existing elements.
func (b *Buffer[T]) grow() {
	capacity := len(b.items) * 2
	if capacity == 0 {
		capacity = initialCapacity
	}
	grown := make([]T, capacity)
	copy(grown, b.items[:b.count])
	b.items = grown
}

// RemoveAt removes the element at index, shifting all subsequent elements
// left by one. O(n). Returns [ErrIndexOutOfRange] when index is outside
// [0, Len()-1]. Capacity is unchanged.
func (b *Buffer[T]) RemoveAt(index int) error {
	if index < 0 || index >= b.count {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, b.count)
	}
	copy(b.items[index:b.count-1], b.items[index+1:b.count])
	b.count--
	var zero T
	b.items[b.count] = zero
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the index of the first element equivalent to item under
// the buffer's relation, or -1 when no element matches. O(n).
func (b *Buffer[T]) IndexOf(item T) int {
	for i := 0; i < b.count; i++ {
		if b.eq(b.items[i], item) {
			return i
		}
	}
	return -1
}

// Contains reports whether some element is equivalent to item. O(n).
func (b *Buffer[T]) Contains(item T) bool {
	return b.IndexOf(item) >= 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// Values returns an iterator over all elements in insertion order.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < b.count; i++ {
			if !yield(b.items[i]) {
				return
			}
		}
	}
}

// Distinct returns a pull iterator over the buffer's current contents that
// yields the element at position i if and only if no earlier position holds
// an equivalent element. First occurrence wins; survivors keep insertion
// order. The scan is O(n²) in the worst case since every element is compared
// against all earlier ones.
//
// The iterator reads the buffer lazily: appending while a traversal is in
// flight yields undefined results.
func (b *Buffer[T]) Distinct() *DistinctIterator[T] {
	return &DistinctIterator[T]{buf: b}
}

// DistinctIterator is a pull iterator produced by [Buffer.Distinct].
type DistinctIterator[T any] struct {
	buf *Buffer[T]
	pos int
}

// Next returns the next surviving element and true, or the zero value and
// false once the traversal is exhausted.
func (it *DistinctIterator[T]) Next() (T, bool) {
	for it.pos < it.buf.count {
		i := it.pos
		it.pos++
		if it.buf.IndexOf(it.buf.items[i]) == i {
			return it.buf.items[i], true
		}
	}
	var zero T
	return zero, false
}
