package gozipper

import "fmt"

// MaybeZipper is the fallible counterpart of Zipper: either a cursor or the
// explicit absence of one. Construction from an empty source and navigation
// past an edge both yield absence, and every operation on an absent value
// stays absent, so a chain of moves can be written without checking each
// step.
//
// The zero value is absent.
type MaybeZipper[T any] struct {
	z *Zipper[T]
}

var _ fmt.Stringer = MaybeZipper[int]{}

// Present wraps an existing cursor. z must not be nil; absence is spelled
// Absent, never a nil cursor.
func Present[T any](z *Zipper[T]) MaybeZipper[T] {
	if z == nil {
		panic("gozipper: Present called with a nil cursor")
	}
	return MaybeZipper[T]{z: z}
}

// Absent returns the no-cursor value.
func Absent[T any]() MaybeZipper[T] {
	return MaybeZipper[T]{}
}

// IsPresent reports whether a cursor is held.
func (m MaybeZipper[T]) IsPresent() bool {
	return m.z != nil
}

// IsAbsent reports whether no cursor is held.
func (m MaybeZipper[T]) IsAbsent() bool {
	return m.z == nil
}

// Zipper unwraps the held cursor. The boolean follows the comma-ok
// convention; the cursor is nil exactly when it is false.
func (m MaybeZipper[T]) Zipper() (*Zipper[T], bool) {
	return m.z, m.z != nil
}

// Focus returns the focus element of the held cursor, or the zero value
// and false when absent.
func (m MaybeZipper[T]) Focus() (T, bool) {
	if m.z == nil {
		var zero T
		return zero, false
	}
	return m.z.focus, true
}

// OrElse returns the held cursor, or def when absent.
func (m MaybeZipper[T]) OrElse(def *Zipper[T]) *Zipper[T] {
	if m.z == nil {
		return def
	}
	return m.z
}

// ToSlice linearizes the held cursor; nil when absent.
func (m MaybeZipper[T]) ToSlice() []T {
	if m.z == nil {
		return nil
	}
	return m.z.ToSlice()
}

// Match invokes exactly one of the callbacks depending on presence. A nil
// callback for the taken branch is a no-op.
func (m MaybeZipper[T]) Match(onPresent func(*Zipper[T]), onAbsent func()) {
	switch {
	case m.z != nil && onPresent != nil:
		onPresent(m.z)
	case m.z == nil && onAbsent != nil:
		onAbsent()
	}
}

// AndThen runs f on the held cursor and returns its result; absence
// short-circuits. It is the sequential composition underlying all the
// operation mirrors below.
func (m MaybeZipper[T]) AndThen(f func(*Zipper[T]) MaybeZipper[T]) MaybeZipper[T] {
	if m.z == nil {
		return m
	}
	return f(m.z)
}

// lift applies a total cursor operation under the wrapper.
func (m MaybeZipper[T]) lift(f func(*Zipper[T]) *Zipper[T]) MaybeZipper[T] {
	if m.z == nil {
		return m
	}
	return Present(f(m.z))
}

// String renders the held cursor, or "><" when absent.
func (m MaybeZipper[T]) String() string {
	if m.z == nil {
		return "><"
	}
	return m.z.String()
}

// Navigation and mutation mirrors. Each one delegates to the held cursor;
// on an absent receiver the result is absent without f being consulted.

// MoveLeft mirrors Zipper.MoveLeft under the wrapper.
func (m MaybeZipper[T]) MoveLeft() MaybeZipper[T] {
	return m.AndThen((*Zipper[T]).MoveLeft)
}

// MoveRight mirrors Zipper.MoveRight under the wrapper.
func (m MaybeZipper[T]) MoveRight() MaybeZipper[T] {
	return m.AndThen((*Zipper[T]).MoveRight)
}

// MoveLeftLoop mirrors Zipper.MoveLeftLoop under the wrapper.
func (m MaybeZipper[T]) MoveLeftLoop() MaybeZipper[T] {
	return m.lift((*Zipper[T]).MoveLeftLoop)
}

// MoveRightLoop mirrors Zipper.MoveRightLoop under the wrapper.
func (m MaybeZipper[T]) MoveRightLoop() MaybeZipper[T] {
	return m.lift((*Zipper[T]).MoveRightLoop)
}

// MoveLeftN mirrors Zipper.MoveLeftN under the wrapper.
func (m MaybeZipper[T]) MoveLeftN(n int) MaybeZipper[T] {
	return m.AndThen(func(z *Zipper[T]) MaybeZipper[T] { return z.MoveLeftN(n) })
}

// MoveRightN mirrors Zipper.MoveRightN under the wrapper.
func (m MaybeZipper[T]) MoveRightN(n int) MaybeZipper[T] {
	return m.AndThen(func(z *Zipper[T]) MaybeZipper[T] { return z.MoveRightN(n) })
}

// FindLeft mirrors Zipper.FindLeft under the wrapper.
func (m MaybeZipper[T]) FindLeft(pred func(T) bool) MaybeZipper[T] {
	return m.AndThen(func(z *Zipper[T]) MaybeZipper[T] { return z.FindLeft(pred) })
}

// FindRight mirrors Zipper.FindRight under the wrapper.
func (m MaybeZipper[T]) FindRight(pred func(T) bool) MaybeZipper[T] {
	return m.AndThen(func(z *Zipper[T]) MaybeZipper[T] { return z.FindRight(pred) })
}

// Nth mirrors Zipper.Nth under the wrapper.
func (m MaybeZipper[T]) Nth(n int) MaybeZipper[T] {
	return m.AndThen(func(z *Zipper[T]) MaybeZipper[T] { return z.Nth(n) })
}

// Start mirrors Zipper.Start under the wrapper.
func (m MaybeZipper[T]) Start() MaybeZipper[T] {
	return m.lift((*Zipper[T]).Start)
}

// End mirrors Zipper.End under the wrapper.
func (m MaybeZipper[T]) End() MaybeZipper[T] {
	return m.lift((*Zipper[T]).End)
}

// WithFocus mirrors Zipper.WithFocus under the wrapper.
func (m MaybeZipper[T]) WithFocus(v T) MaybeZipper[T] {
	return m.lift(func(z *Zipper[T]) *Zipper[T] { return z.WithFocus(v) })
}

// MapFocus mirrors Zipper.MapFocus under the wrapper.
func (m MaybeZipper[T]) MapFocus(f func(T) T) MaybeZipper[T] {
	return m.lift(func(z *Zipper[T]) *Zipper[T] { return z.MapFocus(f) })
}

// SwapLeft mirrors Zipper.SwapLeft under the wrapper.
func (m MaybeZipper[T]) SwapLeft() MaybeZipper[T] {
	return m.AndThen((*Zipper[T]).SwapLeft)
}

// SwapRight mirrors Zipper.SwapRight under the wrapper.
func (m MaybeZipper[T]) SwapRight() MaybeZipper[T] {
	return m.AndThen((*Zipper[T]).SwapRight)
}

// DeletePullLeft mirrors Zipper.DeletePullLeft under the wrapper.
func (m MaybeZipper[T]) DeletePullLeft() MaybeZipper[T] {
	return m.AndThen((*Zipper[T]).DeletePullLeft)
}

// DeletePullRight mirrors Zipper.DeletePullRight under the wrapper.
func (m MaybeZipper[T]) DeletePullRight() MaybeZipper[T] {
	return m.AndThen((*Zipper[T]).DeletePullRight)
}

// InsertPushLeft mirrors Zipper.InsertPushLeft under the wrapper.
func (m MaybeZipper[T]) InsertPushLeft(v T) MaybeZipper[T] {
	return m.lift(func(z *Zipper[T]) *Zipper[T] { return z.InsertPushLeft(v) })
}

// InsertPushRight mirrors Zipper.InsertPushRight under the wrapper.
func (m MaybeZipper[T]) InsertPushRight(v T) MaybeZipper[T] {
	return m.lift(func(z *Zipper[T]) *Zipper[T] { return z.InsertPushRight(v) })
}

// DropLefts mirrors Zipper.DropLefts under the wrapper.
func (m MaybeZipper[T]) DropLefts() MaybeZipper[T] {
	return m.lift((*Zipper[T]).DropLefts)
}

// DropRights mirrors Zipper.DropRights under the wrapper.
func (m MaybeZipper[T]) DropRights() MaybeZipper[T] {
	return m.lift((*Zipper[T]).DropRights)
}

// Transform mirrors Zipper.Transform under the wrapper.
func (m MaybeZipper[T]) Transform(f func(T) T) MaybeZipper[T] {
	return m.lift(func(z *Zipper[T]) *Zipper[T] { return z.Transform(f) })
}

// Combine mirrors Zipper.Combine under the wrapper. Absence of either
// operand makes the result absent.
func (m MaybeZipper[T]) Combine(other MaybeZipper[T], f func(T, T) T) MaybeZipper[T] {
	if m.z == nil {
		return m
	}
	if other.z == nil {
		return other
	}
	return Present(m.z.Combine(other.z, f))
}
