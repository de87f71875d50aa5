package pipeline

import (
	"slices"

	"github.com/kbukum/pushflow/tuple"
)

// Identity is the neutral element of Chain: it reproduces its input.
func Identity[T any]() Transform[T, T] {
	return Unit[T]
}

// Lifted turns a plain function into a Transform producing exactly one value.
func Lifted[A, B any](fn func(A) B) Transform[A, B] {
	return func(x A) Source[B] {
		return Unit(fn(x))
	}
}

// Where produces its input when pred holds, and nothing otherwise.
func Where[T any](pred func(T) bool) Transform[T, T] {
	return func(x T) Source[T] {
		if !pred(x) {
			return Empty[T]()
		}
		return Unit(x)
	}
}

// Chain feeds every output of f into g (read: "f into g").
func Chain[A, B, C any](f Transform[A, B], g Transform[B, C]) Transform[A, C] {
	return func(x A) Source[C] {
		return Bind(f(x), g)
	}
}

// Chain3 is Chain(Chain(f, g), h).
func Chain3[A, B, C, D any](f Transform[A, B], g Transform[B, C], h Transform[C, D]) Transform[A, D] {
	return Chain(Chain(f, g), h)
}

// Plus returns a Transform producing f's outputs and then g's for the same input.
func (f Transform[A, B]) Plus(g Transform[A, B]) Transform[A, B] {
	return func(x A) Source[B] {
		return f(x).Plus(g(x))
	}
}

// Union is the n-ary form of Plus.
func Union[A, B any](ts ...Transform[A, B]) Transform[A, B] {
	ts = slices.Clone(ts)
	return func(x A) Source[B] {
		sources := make([]Source[B], len(ts))
		for i, t := range ts {
			sources[i] = t(x)
		}
		return Concat(sources...)
	}
}

// --- Products ---

// Product2 applies each transform to its own component of a pair and
// delivers the cross product of the results.
func Product2[A1, A2, B1, B2 any](f1 Transform[A1, B1], f2 Transform[A2, B2]) Transform[tuple.T2[A1, A2], tuple.T2[B1, B2]] {
	return func(in tuple.T2[A1, A2]) Source[tuple.T2[B1, B2]] {
		ps := tuple.Apply2[A1, A2, Source[B1], Source[B2]](in, f1, f2)
		return Cross2(ps.V1, ps.V2)
	}
}

// Product3 is Product2 for triples.
func Product3[A1, A2, A3, B1, B2, B3 any](
	f1 Transform[A1, B1], f2 Transform[A2, B2], f3 Transform[A3, B3],
) Transform[tuple.T3[A1, A2, A3], tuple.T3[B1, B2, B3]] {
	return func(in tuple.T3[A1, A2, A3]) Source[tuple.T3[B1, B2, B3]] {
		ps := tuple.Apply3[A1, A2, A3, Source[B1], Source[B2], Source[B3]](in, f1, f2, f3)
		return Cross3(ps.V1, ps.V2, ps.V3)
	}
}

// Product4 is Product2 for quadruples.
func Product4[A1, A2, A3, A4, B1, B2, B3, B4 any](
	f1 Transform[A1, B1], f2 Transform[A2, B2], f3 Transform[A3, B3], f4 Transform[A4, B4],
) Transform[tuple.T4[A1, A2, A3, A4], tuple.T4[B1, B2, B3, B4]] {
	return func(in tuple.T4[A1, A2, A3, A4]) Source[tuple.T4[B1, B2, B3, B4]] {
		ps := tuple.Apply4[A1, A2, A3, A4, Source[B1], Source[B2], Source[B3], Source[B4]](in, f1, f2, f3, f4)
		return Cross4(ps.V1, ps.V2, ps.V3, ps.V4)
	}
}

// ProductN applies ts[i] to the i-th element of its input slice and delivers
// the cross product of the results. An input whose length differs from
// len(ts) fails with an ARITY_MISMATCH error when run.
func ProductN[A, B any](ts ...Transform[A, B]) Transform[[]A, []B] {
	fns := make([]func(A) Source[B], len(ts))
	for i, t := range ts {
		fns[i] = t
	}
	return func(xs []A) Source[[]B] {
		ps, err := tuple.Zip(xs, fns)
		if err != nil {
			return Fail[[]B](err)
		}
		return CrossN(ps...)
	}
}

// Fork2 feeds the same input to both transforms and delivers the cross
// product of their outputs.
func Fork2[A, B1, B2 any](f1 Transform[A, B1], f2 Transform[A, B2]) Transform[A, tuple.T2[B1, B2]] {
	return func(x A) Source[tuple.T2[B1, B2]] {
		return Cross2(f1(x), f2(x))
	}
}

// Fork3 is Fork2 for three transforms.
func Fork3[A, B1, B2, B3 any](f1 Transform[A, B1], f2 Transform[A, B2], f3 Transform[A, B3]) Transform[A, tuple.T3[B1, B2, B3]] {
	return func(x A) Source[tuple.T3[B1, B2, B3]] {
		return Cross3(f1(x), f2(x), f3(x))
	}
}

// Fork4 is Fork2 for four transforms.
func Fork4[A, B1, B2, B3, B4 any](
	f1 Transform[A, B1], f2 Transform[A, B2], f3 Transform[A, B3], f4 Transform[A, B4],
) Transform[A, tuple.T4[B1, B2, B3, B4]] {
	return func(x A) Source[tuple.T4[B1, B2, B3, B4]] {
		return Cross4(f1(x), f2(x), f3(x), f4(x))
	}
}

// ForkN is the homogeneous n-ary form of Fork2.
func ForkN[A, B any](ts ...Transform[A, B]) Transform[A, []B] {
	ts = slices.Clone(ts)
	return func(x A) Source[[]B] {
		sources := make([]Source[B], len(ts))
		for i, t := range ts {
			sources[i] = t(x)
		}
		return CrossN(sources...)
	}
}
