package gozipper

// Shift is the outcome of a distance-reporting relative move: either the
// repositioned cursor, or, when the requested distance ran past an edge,
// the number of positions that were actually available on the exhausted
// side. The count lets a caller clamp and retry without re-measuring the
// cursor.
type Shift[T any] struct {
	z     *Zipper[T]
	avail int
}

func shifted[T any](z *Zipper[T]) Shift[T] {
	return Shift[T]{z: z}
}

func shortBy[T any](avail int) Shift[T] {
	return Shift[T]{avail: avail}
}

// Moved reports whether the full distance was covered.
func (s Shift[T]) Moved() bool {
	return s.z != nil
}

// Zipper returns the repositioned cursor when the move covered the full
// distance.
func (s Shift[T]) Zipper() (*Zipper[T], bool) {
	return s.z, s.z != nil
}

// Available returns how many positions the exhausted side actually held
// when the move fell short. The boolean is false for a completed move.
func (s Shift[T]) Available() (int, bool) {
	if s.z != nil {
		return 0, false
	}
	return s.avail, true
}

// ShiftLeft is MoveLeftN that reports instead of failing: when n exceeds
// the left side, the result carries that side's element count and the
// cursor does not move at all. Negative n delegates to ShiftRight.
func (z *Zipper[T]) ShiftLeft(n int) Shift[T] {
	if n < 0 {
		return z.ShiftRight(-n)
	}
	if avail := z.lefts.len(); n > avail {
		return shortBy[T](avail)
	}
	out, _ := z.MoveLeftN(n).Zipper()
	return shifted(out)
}

// ShiftRight is MoveRightN that reports instead of failing: when n exceeds
// the right side, the result carries that side's element count and the
// cursor does not move at all. Negative n delegates to ShiftLeft.
func (z *Zipper[T]) ShiftRight(n int) Shift[T] {
	if n < 0 {
		return z.ShiftLeft(-n)
	}
	if avail := z.rights.len(); n > avail {
		return shortBy[T](avail)
	}
	out, _ := z.MoveRightN(n).Zipper()
	return shifted(out)
}
