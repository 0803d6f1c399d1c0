package gozipper

// Go methods cannot introduce type parameters, so the element-type-changing
// operations live as package functions (Map, ZipWith, Extend, TraverseErr).
// The interfaces below capture the shape-preserving forms that both the
// cursor and its fallible wrapper provide, so generic code can work over
// either.

// Transformer is the per-element transform capability: apply a pure
// function to every element of a T-structure, preserving shape and focus.
type Transformer[S any, T any] interface {
	Transform(func(T) T) S
}

// Combiner is the pointwise combination capability: merge two values of
// the same structure around their foci, truncating to the shorter sides.
type Combiner[S any, T any] interface {
	Combine(S, func(T, T) T) S
}

// Sequencer is the sequential composition capability of a fallible
// structure: run a step that consumes the underlying value and may itself
// fail, short-circuiting when there is nothing to consume.
type Sequencer[S any, Z any] interface {
	AndThen(func(Z) S) S
}

var (
	_ Transformer[*Zipper[int], int]            = (*Zipper[int])(nil)
	_ Transformer[MaybeZipper[int], int]        = MaybeZipper[int]{}
	_ Combiner[*Zipper[int], int]               = (*Zipper[int])(nil)
	_ Combiner[MaybeZipper[int], int]           = MaybeZipper[int]{}
	_ Sequencer[MaybeZipper[int], *Zipper[int]] = MaybeZipper[int]{}
)
