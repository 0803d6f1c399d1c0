package gozipper

// MoveLeft shifts the focus one position toward the start. The old focus
// becomes the nearest right element. Absent at the left edge. O(1).
func (z *Zipper[T]) MoveLeft() MaybeZipper[T] {
	if z.lefts == nil {
		return Absent[T]()
	}
	return Present(&Zipper[T]{
		lefts:  z.lefts.tail,
		focus:  z.lefts.head,
		rights: z.rights.push(z.focus),
	})
}

// MoveRight shifts the focus one position toward the end. The old focus
// becomes the nearest left element. Absent at the right edge. O(1).
func (z *Zipper[T]) MoveRight() MaybeZipper[T] {
	if z.rights == nil {
		return Absent[T]()
	}
	return Present(&Zipper[T]{
		lefts:  z.lefts.push(z.focus),
		focus:  z.rights.head,
		rights: z.rights.tail,
	})
}

// MoveLeftLoop is MoveLeft that wraps to the last element instead of
// failing at the left edge. On a single-element cursor it is the identity.
func (z *Zipper[T]) MoveLeftLoop() *Zipper[T] {
	if z.lefts != nil {
		return &Zipper[T]{
			lefts:  z.lefts.tail,
			focus:  z.lefts.head,
			rights: z.rights.push(z.focus),
		}
	}
	// At the edge the focus and the whole right side reverse around: the far
	// end becomes the focus and everything else lands nearest-first on the
	// left, leaving the right side empty.
	rev := z.rights.push(z.focus).reverse()
	return &Zipper[T]{lefts: rev.tail, focus: rev.head}
}

// MoveRightLoop is MoveRight that wraps to the first element instead of
// failing at the right edge. On a single-element cursor it is the identity.
func (z *Zipper[T]) MoveRightLoop() *Zipper[T] {
	if z.rights != nil {
		return &Zipper[T]{
			lefts:  z.lefts.push(z.focus),
			focus:  z.rights.head,
			rights: z.rights.tail,
		}
	}
	rev := z.lefts.push(z.focus).reverse()
	return &Zipper[T]{focus: rev.head, rights: rev.tail}
}

// MoveLeftN shifts the focus n positions toward the start. n = 0 is the
// identity and a negative n delegates to MoveRightN. Absent when n exceeds
// the element count on the left.
//
// Cost is proportional to n, not to the sequence length: only the n nodes
// being crossed are rebuilt and the untouched remainder of both sides is
// shared with the receiver.
func (z *Zipper[T]) MoveLeftN(n int) MaybeZipper[T] {
	switch {
	case n == 0:
		return Present(z)
	case n < 0:
		return z.MoveRightN(-n)
	case n > z.lefts.len():
		return Absent[T]()
	}
	src, dst := z.lefts, z.rights.push(z.focus)
	for i := 1; i < n; i++ {
		dst = dst.push(src.head)
		src = src.tail
	}
	return Present(&Zipper[T]{lefts: src.tail, focus: src.head, rights: dst})
}

// MoveRightN shifts the focus n positions toward the end. n = 0 is the
// identity and a negative n delegates to MoveLeftN. Absent when n exceeds
// the element count on the right. Cost is proportional to n, as for
// MoveLeftN.
func (z *Zipper[T]) MoveRightN(n int) MaybeZipper[T] {
	switch {
	case n == 0:
		return Present(z)
	case n < 0:
		return z.MoveLeftN(-n)
	case n > z.rights.len():
		return Absent[T]()
	}
	src, dst := z.rights, z.lefts.push(z.focus)
	for i := 1; i < n; i++ {
		dst = dst.push(src.head)
		src = src.tail
	}
	return Present(&Zipper[T]{lefts: dst, focus: src.head, rights: src.tail})
}

// FindLeft scans strictly leftward from the focus, nearest element first,
// and positions the cursor on the first element satisfying pred. The focus
// itself is not examined. Absent when nothing on the left matches.
func (z *Zipper[T]) FindLeft(pred func(T) bool) MaybeZipper[T] {
	for m := z.MoveLeft(); m.z != nil; m = m.z.MoveLeft() {
		if pred(m.z.focus) {
			return m
		}
	}
	return Absent[T]()
}

// FindRight scans strictly rightward from the focus, nearest element first,
// and positions the cursor on the first element satisfying pred. The focus
// itself is not examined. Absent when nothing on the right matches.
func (z *Zipper[T]) FindRight(pred func(T) bool) MaybeZipper[T] {
	for m := z.MoveRight(); m.z != nil; m = m.z.MoveRight() {
		if pred(m.z.focus) {
			return m
		}
	}
	return Absent[T]()
}

// Nth moves the focus to absolute position n, 0-based from the start,
// regardless of where the cursor currently is. The reposition covers only
// the delta from Index, so a short hop on a long sequence stays cheap.
// Absent when n is out of bounds.
func (z *Zipper[T]) Nth(n int) MaybeZipper[T] {
	if n < 0 {
		return Absent[T]()
	}
	return z.MoveRightN(n - z.Index())
}

// Start moves the focus to the first element. Total; the identity when
// already there.
func (z *Zipper[T]) Start() *Zipper[T] {
	out, _ := z.MoveLeftN(z.lefts.len()).Zipper()
	return out
}

// End moves the focus to the last element. Total; the identity when
// already there.
func (z *Zipper[T]) End() *Zipper[T] {
	out, _ := z.MoveRightN(z.rights.len()).Zipper()
	return out
}
