package rw

import (
	"slices"

	"github.com/kbukum/pushflow/pipeline"
	"github.com/kbukum/pushflow/tuple"
)

// Transform is a dual-mode transform from P to F.
type Transform[P, F any] = pipeline.Transform[Pair[P], Pair[F]]

// project specializes a dual-mode transform t. enter turns the caller's
// input into t's input (false yields nothing) and leave turns each output
// of t into a delivered value (false drops it).
func project[In, P, Out, F any](
	t pipeline.Transform[P, Out],
	enter func(In) (P, bool),
	leave func(Out) (F, bool),
) pipeline.Transform[In, F] {
	return func(x In) pipeline.Source[F] {
		p, ok := enter(x)
		if !ok {
			return pipeline.Empty[F]()
		}
		return func(sink pipeline.Sink[F]) error {
			return t(p)(func(out Out) error {
				v, ok := leave(out)
				if !ok {
					return nil
				}
				return sink(v)
			})
		}
	}
}

func readIn[P any](x P) (Pair[P], bool) {
	return Value(x), true
}

func writeIn[P any](x *P) (Pair[P], bool) {
	if x == nil {
		return Pair[P]{}, false
	}
	return Ref(x), true
}

func ro[F any](p Pair[F]) F {
	return p.RO
}

func ptr[F any](p Pair[F]) *F {
	return p.RW.Ptr()
}

// ReadOnly runs t over plain values. Mutable handles are absent throughout.
func ReadOnly[P, F any](t pipeline.Transform[Pair[P], Pair[F]]) pipeline.Transform[P, F] {
	return project(t, readIn[P], func(out Pair[F]) (F, bool) {
		return ro(out), true
	})
}

// ReadWrite runs t over pointers into the caller's data and delivers a
// pointer to every field t reaches. A nil input produces nothing.
func ReadWrite[P, F any](t pipeline.Transform[Pair[P], Pair[F]]) pipeline.Transform[*P, *F] {
	return project(t, writeIn[P], func(out Pair[F]) (*F, bool) {
		return out.RW.Get()
	})
}

// ReadOnly2 is ReadOnly for transforms producing pairs of fields, such as
// pipeline.Fork2 over dual-mode transforms.
func ReadOnly2[P, F1, F2 any](
	t pipeline.Transform[Pair[P], tuple.T2[Pair[F1], Pair[F2]]],
) pipeline.Transform[P, tuple.T2[F1, F2]] {
	return project(t, readIn[P], func(out tuple.T2[Pair[F1], Pair[F2]]) (tuple.T2[F1, F2], bool) {
		return tuple.Apply2(out, ro[F1], ro[F2]), true
	})
}

// ReadWrite2 is ReadWrite for transforms producing pairs of fields.
func ReadWrite2[P, F1, F2 any](
	t pipeline.Transform[Pair[P], tuple.T2[Pair[F1], Pair[F2]]],
) pipeline.Transform[*P, tuple.T2[*F1, *F2]] {
	return project(t, writeIn[P], func(out tuple.T2[Pair[F1], Pair[F2]]) (tuple.T2[*F1, *F2], bool) {
		ps := tuple.Apply2(out, ptr[F1], ptr[F2])
		return ps, ps.V1 != nil && ps.V2 != nil
	})
}

// ReadOnly3 is ReadOnly for transforms producing triples of fields.
func ReadOnly3[P, F1, F2, F3 any](
	t pipeline.Transform[Pair[P], tuple.T3[Pair[F1], Pair[F2], Pair[F3]]],
) pipeline.Transform[P, tuple.T3[F1, F2, F3]] {
	return project(t, readIn[P], func(out tuple.T3[Pair[F1], Pair[F2], Pair[F3]]) (tuple.T3[F1, F2, F3], bool) {
		return tuple.Apply3(out, ro[F1], ro[F2], ro[F3]), true
	})
}

// ReadWrite3 is ReadWrite for transforms producing triples of fields.
func ReadWrite3[P, F1, F2, F3 any](
	t pipeline.Transform[Pair[P], tuple.T3[Pair[F1], Pair[F2], Pair[F3]]],
) pipeline.Transform[*P, tuple.T3[*F1, *F2, *F3]] {
	return project(t, writeIn[P], func(out tuple.T3[Pair[F1], Pair[F2], Pair[F3]]) (tuple.T3[*F1, *F2, *F3], bool) {
		ps := tuple.Apply3(out, ptr[F1], ptr[F2], ptr[F3])
		return ps, ps.V1 != nil && ps.V2 != nil && ps.V3 != nil
	})
}

// ReadOnly4 is ReadOnly for transforms producing quadruples of fields.
func ReadOnly4[P, F1, F2, F3, F4 any](
	t pipeline.Transform[Pair[P], tuple.T4[Pair[F1], Pair[F2], Pair[F3], Pair[F4]]],
) pipeline.Transform[P, tuple.T4[F1, F2, F3, F4]] {
	return project(t, readIn[P], func(out tuple.T4[Pair[F1], Pair[F2], Pair[F3], Pair[F4]]) (tuple.T4[F1, F2, F3, F4], bool) {
		return tuple.Apply4(out, ro[F1], ro[F2], ro[F3], ro[F4]), true
	})
}

// ReadWrite4 is ReadWrite for transforms producing quadruples of fields.
func ReadWrite4[P, F1, F2, F3, F4 any](
	t pipeline.Transform[Pair[P], tuple.T4[Pair[F1], Pair[F2], Pair[F3], Pair[F4]]],
) pipeline.Transform[*P, tuple.T4[*F1, *F2, *F3, *F4]] {
	return project(t, writeIn[P], func(out tuple.T4[Pair[F1], Pair[F2], Pair[F3], Pair[F4]]) (tuple.T4[*F1, *F2, *F3, *F4], bool) {
		ps := tuple.Apply4(out, ptr[F1], ptr[F2], ptr[F3], ptr[F4])
		return ps, ps.V1 != nil && ps.V2 != nil && ps.V3 != nil && ps.V4 != nil
	})
}

// ReadOnlyN is ReadOnly for transforms producing slices of fields, such as
// pipeline.ForkN over dual-mode transforms.
func ReadOnlyN[P, F any](t pipeline.Transform[Pair[P], []Pair[F]]) pipeline.Transform[P, []F] {
	return project(t, readIn[P], func(out []Pair[F]) ([]F, bool) {
		return tuple.MapEach(out, ro[F]), true
	})
}

// ReadWriteN is ReadWrite for transforms producing slices of fields. A slice
// with any absent handle is dropped.
func ReadWriteN[P, F any](t pipeline.Transform[Pair[P], []Pair[F]]) pipeline.Transform[*P, []*F] {
	return project(t, writeIn[P], func(out []Pair[F]) ([]*F, bool) {
		ps := tuple.MapEach(out, ptr[F])
		return ps, !slices.ContainsFunc(ps, func(p *F) bool { return p == nil })
	})
}
