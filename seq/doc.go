// Package seq provides composable, lazily-evaluated sequence operations —
// filtering, projection, aggregation, set operations and element access —
// over a pull-based iteration protocol, inspired by .NET's
// System.Linq.Enumerable.
//
// # The protocol
//
// A [Sequence] produces elements one at a time, in a fixed order, through an
// [Iterator] whose Next returns the next element, or [Done] after the last
// one, or the error that ended the traversal early. Each Iterate call starts
// an independent traversal; building a sequence never consumes its source.
//
//	evens := seq.Where(seq.New(1, 2, 3, 4, 5, 6), func(n int) bool { return n%2 == 0 })
//	it := evens.Iterate()
//	for v, err := it.Next(); !errors.Is(err, seq.Done); v, err = it.Next() {
//	    ...
//	}
//
// or, for pipelines that cannot fail mid-stream:
//
//	for v := range seq.Values(evens) {
//	    ...
//	}
//
// # Deferred vs eager
//
// Deferred operations ([Where], [Select], [Skip], [Take], [Concat], [Cast],
// [Convert], [OfType], [DefaultIfEmpty], [Range], [Repeat], [Empty],
// [Distinct], [Except]) build a description of a new sequence and do no work
// until the result is traversed. Eager operations ([All], [Any], [Count],
// [Sum], [Average], [Contains], [ElementAt], [First], [Last], [Single],
// [Max], [Min]) traverse the source synchronously and return a final value.
//
// [Distinct] and [Except] sit in between: the first traversal of their
// result materializes the whole source into an internal buffer (deduplication
// needs full history), and every traversal of that result shares the one
// buffer.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so all
// operations are package-level functions; [Select], [Cast], [Convert] and
// [OfType] change the element type.
//
// # Errors
//
// A nil sequence or nil required function argument is a programmer error and
// panics at call entry, before any traversal. Everything data-dependent is a
// sentinel error: [ErrNoElements], [ErrMultipleElements],
// [ErrIndexOutOfRange], [ErrNegativeCount], [ErrOverflow], [ErrInvalidCast].
// "OrDefault"-suffixed operations are the only built-in recovery: they turn
// the no-elements (or, for [ElementAtOrDefault], out-of-range) violation into
// the zero value and propagate every other error.
//
// # Equivalence relations
//
// Operations with a Func suffix ([DistinctFunc], [ExceptFunc],
// [ContainsFunc]) take a caller-supplied equivalence relation: a reflexive,
// symmetric two-argument predicate, consistent across calls. It is never
// hashed, so relations with no hash-key form (case folding, tolerance-based
// comparison) work; a nil relation falls back to structural equality.
//
// # Concurrency
//
// Evaluation is single-threaded and pull-based; nothing here spawns
// goroutines or locks. The library assumes its inputs are not mutated during
// a traversal — a concurrent mutation yields undefined iteration results,
// not a detected violation.
package seq
