package gozipper

// tList is an immutable singly linked list. A nil *tList is the empty list.
// Zipper sides store their elements in it nearest-first, so stepping the
// focus across a side boundary is a pair of O(1) pushes and pops.
//
// Nodes are never written after construction. Lists derived from a common
// ancestor share their untouched tails, which is what keeps bulk moves
// proportional to the distance moved rather than to the sequence length.
type tList[T any] struct {
	head T
	tail *tList[T]
	size int // element count from this node to the end
}

// push returns a new list with v prepended. O(1).
func (l *tList[T]) push(v T) *tList[T] {
	return &tList[T]{head: v, tail: l, size: l.len() + 1}
}

// len returns the element count. O(1) through the per-node size cache.
func (l *tList[T]) len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// reverse returns the elements in opposite order. O(n).
func (l *tList[T]) reverse() *tList[T] {
	var out *tList[T]
	for n := l; n != nil; n = n.tail {
		out = out.push(n.head)
	}
	return out
}

// each visits the elements front to back.
func (l *tList[T]) each(f func(T)) {
	for n := l; n != nil; n = n.tail {
		f(n.head)
	}
}

// toSlice copies the elements front to back into a fresh slice. A nil list
// yields a nil slice.
func (l *tList[T]) toSlice() []T {
	if l == nil {
		return nil
	}
	out := make([]T, 0, l.size)
	for n := l; n != nil; n = n.tail {
		out = append(out, n.head)
	}
	return out
}

// listOf builds a list whose front is xs[0]. The elements are copied, so
// the result never aliases the argument.
func listOf[T any](xs []T) *tList[T] {
	var out *tList[T]
	for i := len(xs) - 1; i >= 0; i-- {
		out = out.push(xs[i])
	}
	return out
}

// listOfReversed builds a list whose front is the last element of xs.
func listOfReversed[T any](xs []T) *tList[T] {
	var out *tList[T]
	for _, v := range xs {
		out = out.push(v)
	}
	return out
}

// equalLists reports pairwise equality under eq. Lengths are compared first
// through the size cache, so mismatched lists fail in O(1).
func equalLists[T, U any](a *tList[T], b *tList[U], eq func(T, U) bool) bool {
	if a.len() != b.len() {
		return false
	}
	for a != nil {
		if !eq(a.head, b.head) {
			return false
		}
		a, b = a.tail, b.tail
	}
	return true
}

// mapList rebuilds the list front to back with f applied to every element.
func mapList[T, U any](l *tList[T], f func(T) U) *tList[U] {
	out := make([]U, 0, l.len())
	l.each(func(v T) { out = append(out, f(v)) })
	return listOf(out)
}

// zipList combines two lists pairwise front to back, truncating to the
// shorter operand.
func zipList[A, B, C any](a *tList[A], b *tList[B], f func(A, B) C) *tList[C] {
	n := a.len()
	if m := b.len(); m < n {
		n = m
	}
	out := make([]C, 0, n)
	for a != nil && b != nil {
		out = append(out, f(a.head, b.head))
		a, b = a.tail, b.tail
	}
	return listOf(out)
}
