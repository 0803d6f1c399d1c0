package gozipper

// SwapLeft exchanges the focus element with its immediate left neighbour.
// The cursor position and every other element stay put. Absent at the left
// edge.
func (z *Zipper[T]) SwapLeft() MaybeZipper[T] {
	if z.lefts == nil {
		return Absent[T]()
	}
	return Present(&Zipper[T]{
		lefts:  z.lefts.tail.push(z.focus),
		focus:  z.lefts.head,
		rights: z.rights,
	})
}

// SwapRight exchanges the focus element with its immediate right
// neighbour. The cursor position and every other element stay put. Absent
// at the right edge.
func (z *Zipper[T]) SwapRight() MaybeZipper[T] {
	if z.rights == nil {
		return Absent[T]()
	}
	return Present(&Zipper[T]{
		lefts:  z.lefts,
		focus:  z.rights.head,
		rights: z.rights.tail.push(z.focus),
	})
}

// DeletePullLeft removes the focus element and pulls the nearest left
// element in as the new focus. Absent at the left edge; in particular,
// deleting the sole element of a cursor has no representable result, since
// a cursor cannot be empty.
func (z *Zipper[T]) DeletePullLeft() MaybeZipper[T] {
	if z.lefts == nil {
		return Absent[T]()
	}
	return Present(&Zipper[T]{
		lefts:  z.lefts.tail,
		focus:  z.lefts.head,
		rights: z.rights,
	})
}

// DeletePullRight removes the focus element and pulls the nearest right
// element in as the new focus. Absent at the right edge.
func (z *Zipper[T]) DeletePullRight() MaybeZipper[T] {
	if z.rights == nil {
		return Absent[T]()
	}
	return Present(&Zipper[T]{
		lefts:  z.lefts,
		focus:  z.rights.head,
		rights: z.rights.tail,
	})
}

// InsertPushLeft makes v the focus and pushes the old focus onto the near
// end of the left side. Total, and the exact inverse of DeletePullLeft.
func (z *Zipper[T]) InsertPushLeft(v T) *Zipper[T] {
	return &Zipper[T]{lefts: z.lefts.push(z.focus), focus: v, rights: z.rights}
}

// InsertPushRight makes v the focus and pushes the old focus onto the near
// end of the right side. Total, and the exact inverse of DeletePullRight.
func (z *Zipper[T]) InsertPushRight(v T) *Zipper[T] {
	return &Zipper[T]{lefts: z.lefts, focus: v, rights: z.rights.push(z.focus)}
}

// DropLefts discards everything before the focus, making it the first
// element. Idempotent; the identity at the left edge.
func (z *Zipper[T]) DropLefts() *Zipper[T] {
	if z.lefts == nil {
		return z
	}
	return &Zipper[T]{focus: z.focus, rights: z.rights}
}

// DropRights discards everything after the focus, making it the last
// element. Idempotent; the identity at the right edge.
func (z *Zipper[T]) DropRights() *Zipper[T] {
	if z.rights == nil {
		return z
	}
	return &Zipper[T]{lefts: z.lefts, focus: z.focus}
}
