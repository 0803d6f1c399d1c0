package gozipper

import (
	"fmt"
	"iter"
	"strings"

	"github.com/samber/lo"
)

// Zipper is an immutable bidirectional cursor over a nonempty ordered
// sequence. It always has a focus element; everything before it and
// everything after it is held nearest-first on the two sides, so moving the
// focus one position in either direction is O(1).
//
// IMPORTANT: a Zipper is a value, not a handle. Every operation returns a
// new cursor and leaves the receiver untouched, so cursors derived from a
// common source can be kept, compared and moved independently.
type Zipper[T any] struct {
	lefts  *tList[T] // elements before the focus, nearest-first
	focus  T
	rights *tList[T] // elements after the focus, nearest-first
}

var _ fmt.Stringer = (*Zipper[int])(nil)

// FromSlice builds a cursor over xs focused on the first element. Absent
// when xs is empty, since a cursor cannot exist without a focus. The
// elements are copied, so later mutation of xs does not reach the cursor.
func FromSlice[T any](xs []T) MaybeZipper[T] {
	if len(xs) == 0 {
		return Absent[T]()
	}
	return Present(&Zipper[T]{focus: xs[0], rights: listOf(xs[1:])})
}

// FromSliceAt builds a cursor over xs focused on position k. Absent when k
// is out of bounds or xs is empty.
func FromSliceAt[T any](xs []T, k int) MaybeZipper[T] {
	if k < 0 || k >= len(xs) {
		return Absent[T]()
	}
	return Present(&Zipper[T]{
		lefts:  listOfReversed(xs[:k]),
		focus:  xs[k],
		rights: listOf(xs[k+1:]),
	})
}

// FromSeq drains seq and builds a cursor focused on its first element.
// Absent when the sequence yields nothing.
func FromSeq[T any](seq iter.Seq[T]) MaybeZipper[T] {
	var xs []T
	for v := range seq {
		xs = append(xs, v)
	}
	return FromSlice(xs)
}

// Focus returns the element under the cursor.
func (z *Zipper[T]) Focus() T {
	return z.focus
}

// WithFocus returns a cursor with the focus element replaced by v. The
// sides are shared with the receiver.
func (z *Zipper[T]) WithFocus(v T) *Zipper[T] {
	return &Zipper[T]{lefts: z.lefts, focus: v, rights: z.rights}
}

// MapFocus applies f to the focus element only.
func (z *Zipper[T]) MapFocus(f func(T) T) *Zipper[T] {
	return z.WithFocus(f(z.focus))
}

// HasLeft reports whether any element precedes the focus.
func (z *Zipper[T]) HasLeft() bool {
	return z.lefts != nil
}

// HasRight reports whether any element follows the focus.
func (z *Zipper[T]) HasRight() bool {
	return z.rights != nil
}

// Len returns the total element count, focus included. O(1).
func (z *Zipper[T]) Len() int {
	return z.lefts.len() + 1 + z.rights.len()
}

// Index returns the 0-based distance of the focus from the start of the
// sequence. O(1).
func (z *Zipper[T]) Index() int {
	return z.lefts.len()
}

// Lefts returns the elements before the focus, nearest-first: index 0 is
// the immediate left neighbour.
func (z *Zipper[T]) Lefts() []T {
	return z.lefts.toSlice()
}

// Rights returns the elements after the focus, nearest-first: index 0 is
// the immediate right neighbour.
func (z *Zipper[T]) Rights() []T {
	return z.rights.toSlice()
}

// ToSlice linearizes the cursor back into the original sequence order. The
// focus position is not recoverable from the result; pair it with Index
// when it matters.
func (z *Zipper[T]) ToSlice() []T {
	out := make([]T, 0, z.Len())
	out = append(out, z.lefts.toSlice()...)
	lo.Reverse(out)
	out = append(out, z.focus)
	z.rights.each(func(v T) { out = append(out, v) })
	return out
}

// All iterates the sequence in original order, yielding each element with
// its absolute position.
func (z *Zipper[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range z.ToSlice() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// String renders the cursor with the focus marked, the left side printed in
// original sequence order, e.g. "[1 2 3] >4< [5 6 7]".
func (z *Zipper[T]) String() string {
	lefts := z.lefts.toSlice()
	lo.Reverse(lefts)
	return fmt.Sprintf("%s >%v< %s", formatSide(lefts), z.focus, formatSide(z.rights.toSlice()))
}

func formatSide[T any](xs []T) string {
	parts := lo.Map(xs, func(v T, _ int) string { return fmt.Sprint(v) })
	return "[" + strings.Join(parts, " ") + "]"
}

// Equal reports whether a and b hold the same sequence with the focus on
// the same position. Cursors have no identity beyond their content, so this
// is the only meaningful comparison. Two nil cursors are equal.
func Equal[T comparable](a, b *Zipper[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison, usable
// across element types.
func EqualFunc[T, U any](a *Zipper[T], b *Zipper[U], eq func(T, U) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return eq(a.focus, b.focus) &&
		equalLists(a.lefts, b.lefts, eq) &&
		equalLists(a.rights, b.rights, eq)
}
