package pipeline

// Map transforms each value using fn. Order and count are preserved.
func Map[A, B any](p Source[A], fn func(A) B) Source[B] {
	return func(sink Sink[B]) error {
		return p(func(v A) error {
			return sink(fn(v))
		})
	}
}

// Cofmap adapts a Sink of A into a Sink of B by applying fn before delivery.
func Cofmap[A, B any](c Sink[A], fn func(B) A) Sink[B] {
	return func(v B) error {
		return c(fn(v))
	}
}

// Filter keeps only values that satisfy the predicate.
func Filter[T any](p Source[T], fn func(T) bool) Source[T] {
	return func(sink Sink[T]) error {
		return p(func(v T) error {
			if !fn(v) {
				return nil
			}
			return sink(v)
		})
	}
}

// Tap calls fn as a side-effect for each value, then passes the value through unchanged.
// Use for logging, metrics, or auditing mid-pipeline.
func Tap[T any](p Source[T], fn func(T) error) Source[T] {
	return func(sink Sink[T]) error {
		return p(func(v T) error {
			if err := fn(v); err != nil {
				return err
			}
			return sink(v)
		})
	}
}

// Reduce accumulates all values into a single result.
// The source delivers exactly one value: the final accumulator.
func Reduce[T, R any](p Source[T], init R, fn func(R, T) R) Source[R] {
	return func(sink Sink[R]) error {
		acc := init
		err := p(func(v T) error {
			acc = fn(acc, v)
			return nil
		})
		if err != nil {
			return err
		}
		return sink(acc)
	}
}

// --- Monad ---

// Unit returns a Source delivering exactly x.
func Unit[T any](x T) Source[T] {
	return func(sink Sink[T]) error {
		return sink(x)
	}
}

// Join flattens a Source of Sources. Each inner Source is drained into the
// sink before the next one is produced.
func Join[T any](pp Source[Source[T]]) Source[T] {
	return func(sink Sink[T]) error {
		return pp(func(p Source[T]) error {
			return p(sink)
		})
	}
}

// Bind runs f on every value of p and concatenates the resulting Sources.
// It is Join(Map(p, f)).
func Bind[A, B any](p Source[A], f Transform[A, B]) Source[B] {
	return Join(Map[A, Source[B]](p, f))
}
