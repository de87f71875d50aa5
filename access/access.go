package access

import (
	"github.com/kbukum/pushflow/pipeline"
	"github.com/kbukum/pushflow/rw"
)

// Required builds a transform for a field every P has. It produces exactly
// one value.
func Required[P, F any](get func(P) F, mut func(*P) *F) rw.Transform[P, F] {
	return func(in rw.Pair[P]) pipeline.Source[rw.Pair[F]] {
		return pipeline.Unit(rw.Pair[F]{
			RO: get(in.RO),
			RW: rw.Project(in.RW, mut),
		})
	}
}

// Optional builds a transform for a field that may be missing. It produces
// nothing when has reports false for the read-only value.
func Optional[P, F any](has func(P) bool, get func(P) F, mut func(*P) *F) rw.Transform[P, F] {
	required := Required(get, mut)
	return func(in rw.Pair[P]) pipeline.Source[rw.Pair[F]] {
		if !has(in.RO) {
			return pipeline.Empty[rw.Pair[F]]()
		}
		return required(in)
	}
}

// Pointer builds a transform for an optional field held by pointer. It
// produces the pointee when ptr returns non-nil.
func Pointer[P, F any](ptr func(*P) *F) rw.Transform[P, F] {
	return func(in rw.Pair[P]) pipeline.Source[rw.Pair[F]] {
		v := ptr(&in.RO)
		if v == nil {
			return pipeline.Empty[rw.Pair[F]]()
		}
		return pipeline.Unit(rw.Pair[F]{RO: *v, RW: rw.Project(in.RW, ptr)})
	}
}

// Each scans a slice. Element i is produced together with a handle to the
// i-th element of the underlying slice.
func Each[F any]() rw.Transform[[]F, F] {
	return func(in rw.Pair[[]F]) pipeline.Source[rw.Pair[F]] {
		return func(sink pipeline.Sink[rw.Pair[F]]) error {
			for i, v := range in.RO {
				h := rw.Project(in.RW, func(s *[]F) *F {
					if i >= len(*s) {
						return nil
					}
					return &(*s)[i]
				})
				if err := sink(rw.Pair[F]{RO: v, RW: h}); err != nil {
					return err
				}
			}
			return nil
		}
	}
}

// Repeated builds a transform producing every element of a slice field.
func Repeated[P, F any](get func(P) []F, mut func(*P) *[]F) rw.Transform[P, F] {
	return pipeline.Chain(Required(get, mut), Each[F]())
}
