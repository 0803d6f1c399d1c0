package gozipper

import (
	"fmt"

	"github.com/samber/lo"
)

// Map builds a cursor of the same shape with f applied to every element
// independently. Ordering and focus position are preserved exactly.
func Map[T, U any](z *Zipper[T], f func(T) U) *Zipper[U] {
	return &Zipper[U]{
		lefts:  mapList(z.lefts, f),
		focus:  f(z.focus),
		rights: mapList(z.rights, f),
	}
}

// MapMaybe is Map under the fallible wrapper; absence stays absent.
func MapMaybe[T, U any](m MaybeZipper[T], f func(T) U) MaybeZipper[U] {
	if m.z == nil {
		return Absent[U]()
	}
	return Present(Map(m.z, f))
}

// Transform is Map at a fixed element type, available as a method.
func (z *Zipper[T]) Transform(f func(T) T) *Zipper[T] {
	return Map(z, f)
}

// Extend computes f at every position reachable from z: the result's focus
// is f(z), its left side holds f of each cursor reached by repeated
// MoveLeft, nearest-first, and its right side mirrors that with MoveRight.
// Each position therefore sees the entire sequence from its own vantage
// point, which is what context-dependent views are built from.
func Extend[T, U any](z *Zipper[T], f func(*Zipper[T]) U) *Zipper[U] {
	var lefts, rights []U
	for m := z.MoveLeft(); m.z != nil; m = m.z.MoveLeft() {
		lefts = append(lefts, f(m.z))
	}
	for m := z.MoveRight(); m.z != nil; m = m.z.MoveRight() {
		rights = append(rights, f(m.z))
	}
	return &Zipper[U]{
		lefts:  listOf(lefts),
		focus:  f(z),
		rights: listOf(rights),
	}
}

// Duplicate is Extend with the identity: a cursor of cursors, one per
// position, each focused there.
func Duplicate[T any](z *Zipper[T]) *Zipper[*Zipper[T]] {
	return Extend(z, func(c *Zipper[T]) *Zipper[T] { return c })
}

// Indexed pairs every element with its absolute position. It is Extend of
// (Index, Focus): the position of an element is just what the cursor
// focused there reports.
func Indexed[T any](z *Zipper[T]) *Zipper[lo.Tuple2[int, T]] {
	return Extend(z, func(c *Zipper[T]) lo.Tuple2[int, T] {
		return lo.T2(c.Index(), c.Focus())
	})
}

// ZipWith combines two cursors pointwise: focus with focus, then the sides
// pairwise nearest-first, each side truncated to the shorter operand. The
// focus positions of the operands need not agree; alignment is relative to
// the focus, not absolute.
func ZipWith[A, B, C any](za *Zipper[A], zb *Zipper[B], f func(A, B) C) *Zipper[C] {
	return &Zipper[C]{
		lefts:  zipList(za.lefts, zb.lefts, f),
		focus:  f(za.focus, zb.focus),
		rights: zipList(za.rights, zb.rights, f),
	}
}

// Combine is ZipWith at a fixed element type, available as a method.
func (z *Zipper[T]) Combine(other *Zipper[T], f func(T, T) T) *Zipper[T] {
	return ZipWith(z, other, f)
}

// TraverseErr runs a fallible transform over every element in original
// sequence order and rebuilds a cursor of the results with the same shape
// and focus position. The first failure stops the walk; the error comes
// back wrapped with the absolute position it occurred at and no cursor is
// produced.
func TraverseErr[T, U any](z *Zipper[T], f func(T) (U, error)) (*Zipper[U], error) {
	lefts := z.lefts.toSlice()
	lo.Reverse(lefts)
	ls := make([]U, 0, len(lefts))
	for i, v := range lefts {
		u, err := f(v)
		if err != nil {
			return nil, fmt.Errorf("failed to traverse element %d: %w", i, err)
		}
		ls = append(ls, u)
	}
	focus, err := f(z.focus)
	if err != nil {
		return nil, fmt.Errorf("failed to traverse element %d: %w", len(ls), err)
	}
	pos := len(ls) + 1
	rs := make([]U, 0, z.rights.len())
	for n := z.rights; n != nil; n = n.tail {
		u, err := f(n.head)
		if err != nil {
			return nil, fmt.Errorf("failed to traverse element %d: %w", pos+len(rs), err)
		}
		rs = append(rs, u)
	}
	return &Zipper[U]{
		lefts:  listOfReversed(ls),
		focus:  focus,
		rights: listOf(rs),
	}, nil
}
