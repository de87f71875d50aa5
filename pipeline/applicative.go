package pipeline

import (
	"slices"

	"github.com/kbukum/pushflow/tuple"
)

// Pure is Unit under its applicative name.
func Pure[T any](x T) Source[T] {
	return Unit(x)
}

// Apply applies every function from pf to every value from pa. Functions are
// the outer loop: all of pa is enumerated for the first function before the
// second function is used.
func Apply[A, B any](pf Source[func(A) B], pa Source[A]) Source[B] {
	return Bind[func(A) B, B](pf, func(f func(A) B) Source[B] {
		return Map(pa, f)
	})
}

// Lift lifts a unary function to Sources. It is Map with the arguments flipped.
func Lift[A, B any](f func(A) B) func(Source[A]) Source[B] {
	return func(pa Source[A]) Source[B] {
		return Map(pa, f)
	}
}

// LiftA2 lifts a binary function to Sources. The result enumerates every
// combination of arguments with the leftmost Source varying slowest.
func LiftA2[A, B, C any](f func(A, B) C) func(Source[A], Source[B]) Source[C] {
	return func(pa Source[A], pb Source[B]) Source[C] {
		fs := Map(pa, func(a A) func(B) C {
			return func(b B) C { return f(a, b) }
		})
		return Apply(fs, pb)
	}
}

// LiftA3 lifts a ternary function to Sources, leftmost Source varying slowest.
func LiftA3[A, B, C, D any](f func(A, B, C) D) func(Source[A], Source[B], Source[C]) Source[D] {
	return func(pa Source[A], pb Source[B], pc Source[C]) Source[D] {
		fs := Map(pa, func(a A) func(B) func(C) D {
			return func(b B) func(C) D {
				return func(c C) D { return f(a, b, c) }
			}
		})
		return Apply(Apply(fs, pb), pc)
	}
}

// LiftA4 lifts a four-argument function to Sources, leftmost Source varying slowest.
func LiftA4[A, B, C, D, E any](f func(A, B, C, D) E) func(Source[A], Source[B], Source[C], Source[D]) Source[E] {
	return func(pa Source[A], pb Source[B], pc Source[C], pd Source[D]) Source[E] {
		fs := Map(pa, func(a A) func(B) func(C) func(D) E {
			return func(b B) func(C) func(D) E {
				return func(c C) func(D) E {
					return func(d D) E { return f(a, b, c, d) }
				}
			}
		})
		return Apply(Apply(Apply(fs, pb), pc), pd)
	}
}

// Cross2 delivers the cross product of pa and pb in row-major order.
func Cross2[A, B any](pa Source[A], pb Source[B]) Source[tuple.T2[A, B]] {
	return LiftA2(tuple.Of2[A, B])(pa, pb)
}

// Cross3 delivers the cross product of three Sources in row-major order.
func Cross3[A, B, C any](pa Source[A], pb Source[B], pc Source[C]) Source[tuple.T3[A, B, C]] {
	return LiftA3(tuple.Of3[A, B, C])(pa, pb, pc)
}

// Cross4 delivers the cross product of four Sources in row-major order.
func Cross4[A, B, C, D any](pa Source[A], pb Source[B], pc Source[C], pd Source[D]) Source[tuple.T4[A, B, C, D]] {
	return LiftA4(tuple.Of4[A, B, C, D])(pa, pb, pc, pd)
}

// CrossN delivers the cross product of any number of same-typed Sources as
// slices, in row-major order. With no sources it delivers one empty slice.
// Every delivered slice is freshly allocated.
func CrossN[T any](sources ...Source[T]) Source[[]T] {
	acc := Unit([]T{})
	for _, p := range slices.Clone(sources) {
		acc = LiftA2(appendCopy[T])(acc, p)
	}
	return acc
}

func appendCopy[T any](xs []T, x T) []T {
	out := make([]T, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, x)
}
