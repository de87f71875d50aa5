package rw

// Handle is an optional mutable reference to a T.
type Handle[T any] struct {
	p *T
}

// Mut wraps p. A nil p gives an absent handle.
func Mut[T any](p *T) Handle[T] {
	return Handle[T]{p: p}
}

// Absent returns a handle that refers to nothing.
func Absent[T any]() Handle[T] {
	return Handle[T]{}
}

// Present reports whether h refers to a value.
func (h Handle[T]) Present() bool {
	return h.p != nil
}

// Ptr returns the referenced pointer, or nil when absent.
func (h Handle[T]) Ptr() *T {
	return h.p
}

// Get returns the referenced pointer and whether it is present.
func (h Handle[T]) Get() (*T, bool) {
	return h.p, h.p != nil
}

// Project follows f from the value behind h. f is not called when h is
// absent, and a nil result from f is absent as well.
func Project[P, F any](h Handle[P], f func(*P) *F) Handle[F] {
	if h.p == nil {
		return Absent[F]()
	}
	return Mut(f(h.p))
}

// Pair carries a read-only value together with an optional mutable handle
// to the same datum.
type Pair[T any] struct {
	RO T
	RW Handle[T]
}

// Value builds a read-only pair.
func Value[T any](v T) Pair[T] {
	return Pair[T]{RO: v}
}

// Ref builds a read-write pair from p. The RO half is a copy of *p taken
// now. A nil p gives a zero RO and an absent handle.
func Ref[T any](p *T) Pair[T] {
	if p == nil {
		return Pair[T]{}
	}
	return Pair[T]{RO: *p, RW: Mut(p)}
}
