// Package buffer provides Buffer, a growable, index-addressable container
// with a pluggable equivalence relation, used as the working storage for
// set-style sequence operations (Distinct, Except) in the seq package.
//
// # Creating a buffer
//
//	b := buffer.New[int]()                     // equivalence is ==
//	b := buffer.NewFunc(strings.EqualFold)     // caller-supplied equivalence
//	b := buffer.NewFunc[[]byte](nil)           // structural (reflect.DeepEqual)
//
// # Growth
//
// Append grows the backing storage explicitly, doubling the capacity each
// time it is exhausted. Capacity never shrinks. Elements keep their insertion
// order at logical indices [0, Len()).
//
// # Equivalence
//
// The relation is fixed at construction. It only has to be reflexive and
// symmetric — elements are never hashed, so types whose equality cannot be
// expressed as a hash key (case-insensitive strings, slices, tolerance-based
// float comparison) work fine. The trade-off is that IndexOf, Contains and
// the deduplicating traversal are linear scans, and Distinct is O(n²) in the
// worst case. Buffers hold modest materialized inputs, so this is acceptable.
//
// # Deduplicating traversal
//
//	it := b.Distinct()
//	for v, ok := it.Next(); ok; v, ok = it.Next() {
//	    // first occurrence of each equivalence class, insertion order
//	}
//
// Among equivalent elements only the earliest survives (first-occurrence
// wins), and survivors appear in their original insertion order.
package buffer
