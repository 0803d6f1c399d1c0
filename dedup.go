package gozipper

// Deduper walks a cursor start to end, keeps the first occurrence of every
// value and emits a log of the walk. It exists for pipelines that want
// "distinct with an audit trail": a note callback can log any element it
// cares about, and a stop guard can abort the whole walk. An aborted walk
// yields an absent result, but the log keeps every line produced before the
// abort, plus the guard's own message.
type Deduper[T comparable] struct {
	note func(T) (string, bool)
	stop func(T) (string, bool)
}

// NewDeduper returns a Deduper with no note callback and no stop guard.
func NewDeduper[T comparable]() *Deduper[T] {
	return new(Deduper[T])
}

// WithNote sets the per-element log callback. It runs for every element in
// visit order; returning false emits nothing for that element.
//
// IMPORTANT: Supports chaining. Call on a nil receiver creates a new
// Deduper.
func (d *Deduper[T]) WithNote(f func(T) (string, bool)) *Deduper[T] {
	if d == nil {
		d = new(Deduper[T])
	}
	d.note = f
	return d
}

// WithStop sets the abort guard. When it fires for an element the walk
// stops immediately: the element is neither noted nor kept, the guard's
// message becomes the final log line and the result is absent.
//
// IMPORTANT: Supports chaining. Call on a nil receiver creates a new
// Deduper.
func (d *Deduper[T]) WithStop(f func(T) (string, bool)) *Deduper[T] {
	if d == nil {
		d = new(Deduper[T])
	}
	d.stop = f
	return d
}

// Run visits every element of z from the first to the last by repeated
// MoveRight and returns the deduplicated sequence focused on its first
// element, together with the log in emission order. The starting position
// of z does not matter; the walk always begins at Start. The receiver is
// not consumed and may be reused.
func (d *Deduper[T]) Run(z *Zipper[T]) (MaybeZipper[T], []string) {
	if d == nil {
		d = new(Deduper[T])
	}
	var (
		log  []string
		kept []T
		seen = make(map[T]struct{}, z.Len())
	)
	cur := z.Start()
	for {
		v := cur.focus
		if d.stop != nil {
			if msg, ok := d.stop(v); ok {
				return Absent[T](), append(log, msg)
			}
		}
		if d.note != nil {
			if line, ok := d.note(v); ok {
				log = append(log, line)
			}
		}
		if _, dup := seen[v]; !dup {
			seen[v] = struct{}{}
			kept = append(kept, v)
		}
		next := cur.MoveRight()
		if next.z == nil {
			break
		}
		cur = next.z
	}
	return FromSlice(kept), log
}

// Dedup is Run with no note callback and no stop guard. The result is
// always present, since a walk that cannot abort keeps at least the first
// element.
func Dedup[T comparable](z *Zipper[T]) *Zipper[T] {
	m, _ := NewDeduper[T]().Run(z)
	out, _ := m.Zipper()
	return out
}
