package seq_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/hasbyte1/go-enumerable/seq"
)

// ─────────────────────────────────────────────────────────────────────────────
// Laziness
// ─────────────────────────────────────────────────────────────────────────────

func TestConstructionDoesNoWork(t *testing.T) {
	calls := 0
	s := seq.Select(seq.New(1, 2, 3), func(n int) int {
		calls++
		return n * 2
	})
	composed := seq.Skip(seq.Where(s, func(n int) bool { return n > 2 }), 1)
	assert.Equal(t, calls, 0, "no selector may run before the first pull")

	it := composed.Iterate()
	assert.Equal(t, calls, 0, "starting a traversal alone pulls nothing")

	v, err := it.Next()
	assert.NilError(t, err)
	assert.Equal(t, v, 6)
	assert.Assert(t, calls > 0)
}

func TestShortCircuitStopsPullingSource(t *testing.T) {
	pulled := 0
	s := seq.Select(seq.New(1, 2, 3, 4, 5), func(n int) int {
		pulled++
		return n
	})

	ok, err := seq.Any(s, func(n int) bool { return n == 2 })
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.Equal(t, pulled, 2, "Any must stop at the first match")
}

// ─────────────────────────────────────────────────────────────────────────────
// Where / Select / Take / Skip
// ─────────────────────────────────────────────────────────────────────────────

func TestWhere(t *testing.T) {
	s := seq.Where(seq.New(1, 2, 3, 4, 5, 6), func(n int) bool { return n%2 == 0 })
	assert.DeepEqual(t, collect(t, s), []int{2, 4, 6})
}

func TestSelect(t *testing.T) {
	s := seq.Select(seq.New(1, 2, 3), strconv.Itoa)
	assert.DeepEqual(t, collect(t, s), []string{"1", "2", "3"})
}

func TestSkip(t *testing.T) {
	base := seq.New(1, 2, 3, 4, 5)
	assert.DeepEqual(t, collect(t, seq.Skip(base, 2)), []int{3, 4, 5})
	assert.DeepEqual(t, collect(t, seq.Skip(base, 0)), []int{1, 2, 3, 4, 5})
	assert.DeepEqual(t, collect(t, seq.Skip(base, -1)), []int{1, 2, 3, 4, 5})
	assert.DeepEqual(t, collect(t, seq.Skip(base, 9)), []int{})
}

func TestTake(t *testing.T) {
	base := seq.New(1, 2, 3, 4, 5)
	assert.DeepEqual(t, collect(t, seq.Take(base, 2)), []int{1, 2})
	assert.DeepEqual(t, collect(t, seq.Take(base, 0)), []int{})
	assert.DeepEqual(t, collect(t, seq.Take(base, 9)), []int{1, 2, 3, 4, 5})
}

func TestTakeDoesNotOverPull(t *testing.T) {
	pulled := 0
	s := seq.Select(seq.New(1, 2, 3, 4), func(n int) int {
		pulled++
		return n
	})
	_ = collect(t, seq.Take(s, 2))
	assert.Equal(t, pulled, 2)
}

// ─────────────────────────────────────────────────────────────────────────────
// Concat / DefaultIfEmpty
// ─────────────────────────────────────────────────────────────────────────────

func TestConcat(t *testing.T) {
	s := seq.Concat(seq.New(1, 2), seq.New(3, 4))
	assert.DeepEqual(t, collect(t, s), []int{1, 2, 3, 4})
}

func TestConcatWithEmptySides(t *testing.T) {
	assert.DeepEqual(t, collect(t, seq.Concat(seq.Empty[int](), seq.New(1))), []int{1})
	assert.DeepEqual(t, collect(t, seq.Concat(seq.New(1), seq.Empty[int]())), []int{1})
}

func TestDefaultIfEmptyPassesThroughNonEmpty(t *testing.T) {
	s := seq.DefaultIfEmpty(seq.New(1, 2), 7)
	assert.DeepEqual(t, collect(t, s), []int{1, 2})
}

func TestDefaultIfEmptyYieldsExactlyOneDefault(t *testing.T) {
	assert.DeepEqual(t, collect(t, seq.DefaultIfEmpty(seq.Empty[int]())), []int{0})
	assert.DeepEqual(t, collect(t, seq.DefaultIfEmpty(seq.Empty[int](), 7)), []int{7})
}

func TestDefaultIfEmptyIsRestartable(t *testing.T) {
	s := seq.DefaultIfEmpty(seq.Empty[string](), "x")
	assert.DeepEqual(t, collect(t, s), []string{"x"})
	assert.DeepEqual(t, collect(t, s), []string{"x"})
}

// ─────────────────────────────────────────────────────────────────────────────
// Range / Repeat / Empty
// ─────────────────────────────────────────────────────────────────────────────

func TestRange(t *testing.T) {
	s, err := seq.Range(5, 3)
	assert.NilError(t, err)
	assert.DeepEqual(t, collect(t, s), []int{5, 6, 7})
}

func TestRangeZeroCount(t *testing.T) {
	s, err := seq.Range(5, 0)
	assert.NilError(t, err)
	assert.DeepEqual(t, collect(t, s), []int{})
}

func TestRangeRejectsNegativeCount(t *testing.T) {
	_, err := seq.Range(0, -1)
	assert.ErrorIs(t, err, seq.ErrNegativeCount)
}

func TestRangeRejectsOverflowingEnd(t *testing.T) {
	_, err := seq.Range(math.MaxInt, 2)
	assert.ErrorIs(t, err, seq.ErrOverflow)

	// The last representable value is still fine.
	s, err := seq.Range(math.MaxInt-1, 2)
	assert.NilError(t, err)
	assert.DeepEqual(t, collect(t, s), []int{math.MaxInt - 1, math.MaxInt})
}

func TestRepeat(t *testing.T) {
	s, err := seq.Repeat("x", 3)
	assert.NilError(t, err)
	assert.DeepEqual(t, collect(t, s), []string{"x", "x", "x"})
}

func TestRepeatRejectsNegativeCount(t *testing.T) {
	_, err := seq.Repeat(1, -2)
	assert.ErrorIs(t, err, seq.ErrNegativeCount)
}

func TestEmptyStaysEmpty(t *testing.T) {
	s := seq.Empty[int]()
	assert.DeepEqual(t, collect(t, s), []int{})
	assert.DeepEqual(t, collect(t, s), []int{})
}

// ─────────────────────────────────────────────────────────────────────────────
// Cast / Convert / OfType
// ─────────────────────────────────────────────────────────────────────────────

func TestCast(t *testing.T) {
	s := seq.Cast[int](seq.New[any](1, 2, 3))
	assert.DeepEqual(t, collect(t, s), []int{1, 2, 3})
}

func TestCastFailsAtTheOffendingElement(t *testing.T) {
	it := seq.Cast[int](seq.New[any](1, "two", 3)).Iterate()

	v, err := it.Next()
	assert.NilError(t, err)
	assert.Equal(t, v, 1, "elements before the failure must be yielded")

	_, err = it.Next()
	assert.ErrorIs(t, err, seq.ErrInvalidCast)
}

func TestCastErrorAbortsTraversal(t *testing.T) {
	it := seq.Cast[int](seq.New[any](1, "two", 3)).Iterate()

	v, err := it.Next()
	assert.NilError(t, err)
	assert.Equal(t, v, 1)

	_, err = it.Next()
	assert.ErrorIs(t, err, seq.ErrInvalidCast)

	// Later pulls repeat the error; the traversal must not resume with the
	// elements after the failure.
	v, err = it.Next()
	assert.ErrorIs(t, err, seq.ErrInvalidCast)
	assert.Equal(t, v, 0)
}

func TestUpstreamErrorIsSticky(t *testing.T) {
	boom := errors.New("boom")
	it := seq.Where(failAt([]int{1, 2, 3}, 2, boom), func(int) bool { return true }).Iterate()

	v, err := it.Next()
	assert.NilError(t, err)
	assert.Equal(t, v, 1)

	_, err = it.Next()
	assert.ErrorIs(t, err, boom)

	_, err = it.Next()
	assert.ErrorIs(t, err, boom)
}

func TestConvert(t *testing.T) {
	s := seq.Convert(seq.New("1", "2"), strconv.Atoi)
	assert.DeepEqual(t, collect(t, s), []int{1, 2})
}

func TestConvertWrapsConversionError(t *testing.T) {
	_, err := seq.Slice(seq.Convert(seq.New("1", "x"), strconv.Atoi))
	assert.ErrorIs(t, err, seq.ErrInvalidCast)
}

func TestOfTypeSkipsOtherTypes(t *testing.T) {
	s := seq.OfType[string](seq.New[any](1, "a", 2.5, "b", true))
	assert.DeepEqual(t, collect(t, s), []string{"a", "b"})
}

func TestOfTypeEmptyResult(t *testing.T) {
	s := seq.OfType[string](seq.New[any](1, 2))
	assert.DeepEqual(t, collect(t, s), []string{})
}

// ─────────────────────────────────────────────────────────────────────────────
// Error propagation through deferred stages
// ─────────────────────────────────────────────────────────────────────────────

func TestDeferredStagesPropagateUpstreamError(t *testing.T) {
	boom := errors.New("boom")
	src := failAt([]int{1, 2, 3}, 2, boom)

	_, err := seq.Slice(seq.Where(src, func(int) bool { return true }))
	assert.ErrorIs(t, err, boom)

	_, err = seq.Slice(seq.Skip(src, 1))
	assert.ErrorIs(t, err, boom)

	_, err = seq.Slice(seq.Concat(src, seq.New(9)))
	assert.ErrorIs(t, err, boom)
}
