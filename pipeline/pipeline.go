package pipeline

import "slices"

// Sink consumes values one at a time. A non-nil error stops the Source that
// is feeding it.
type Sink[T any] func(T) error

// Source delivers zero or more values, in order, to the Sink it is called
// with, then returns. Calling it again re-runs production from the start.
type Source[T any] func(Sink[T]) error

// Transform turns one input into a Source of outputs. It is the unit of
// pipeline composition.
type Transform[A, B any] func(A) Source[B]

// Effect is a Source fused with a Sink.
type Effect func() error

// Run executes the pipeline once.
func (e Effect) Run() error {
	return e()
}

// --- Constructors ---

// SinkFunc creates a Sink from a function that cannot fail.
func SinkFunc[T any](fn func(T)) Sink[T] {
	return func(v T) error {
		fn(v)
		return nil
	}
}

// NopSink returns a Sink that discards every value.
func NopSink[T any]() Sink[T] {
	return func(T) error { return nil }
}

// Empty returns a Source that delivers nothing.
func Empty[T any]() Source[T] {
	return func(Sink[T]) error { return nil }
}

// Fail returns a Source that delivers nothing and reports err.
func Fail[T any](err error) Source[T] {
	return func(Sink[T]) error { return err }
}

// Of creates a Source delivering the given values in order.
func Of[T any](values ...T) Source[T] {
	return FromSlice(slices.Clone(values))
}

// FromSlice creates a Source delivering the elements of items in order.
// The slice is read on every run, not copied.
func FromSlice[T any](items []T) Source[T] {
	return func(sink Sink[T]) error {
		for _, item := range items {
			if err := sink(item); err != nil {
				return err
			}
		}
		return nil
	}
}

// FromFunc creates a Source from a production function.
func FromFunc[T any](fn func(Sink[T]) error) Source[T] {
	return fn
}

// --- Monoids ---

// And returns a Sink that delivers each value to c and then to d.
func (c Sink[T]) And(d Sink[T]) Sink[T] {
	return func(v T) error {
		if err := c(v); err != nil {
			return err
		}
		return d(v)
	}
}

// Tee returns a Sink that delivers each value to every sink, in order.
func Tee[T any](sinks ...Sink[T]) Sink[T] {
	sinks = slices.Clone(sinks)
	return func(v T) error {
		for _, sink := range sinks {
			if err := sink(v); err != nil {
				return err
			}
		}
		return nil
	}
}

// Plus returns a Source that delivers all of p's values and then all of q's.
func (p Source[T]) Plus(q Source[T]) Source[T] {
	return func(sink Sink[T]) error {
		if err := p(sink); err != nil {
			return err
		}
		return q(sink)
	}
}

// Concat joins sources sequentially.
// All values from the first source are delivered before the second, etc.
func Concat[T any](sources ...Source[T]) Source[T] {
	sources = slices.Clone(sources)
	return func(sink Sink[T]) error {
		for _, p := range sources {
			if err := p(sink); err != nil {
				return err
			}
		}
		return nil
	}
}

// --- Terminals ---

// Fuse joins p to c. Nothing runs until the Effect does.
func Fuse[T any](p Source[T], c Sink[T]) Effect {
	return func() error {
		return p(c)
	}
}

// Collect runs the source and returns all values as a slice.
// On error the values delivered so far are returned with it.
func Collect[T any](p Source[T]) ([]T, error) {
	var result []T
	err := p(func(v T) error {
		result = append(result, v)
		return nil
	})
	return result, err
}

// ForEach runs the source and calls fn for each value. Convenience wrapper around Fuse.
func ForEach[T any](p Source[T], fn func(T) error) error {
	return Fuse(p, fn).Run()
}
