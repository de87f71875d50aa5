package tuple

import "fmt"

// T2 is a pair.
type T2[A, B any] struct {
	V1 A
	V2 B
}

// T3 is a triple.
type T3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// T4 is a quadruple.
type T4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Of2 builds a T2.
func Of2[A, B any](a A, b B) T2[A, B] { return T2[A, B]{a, b} }

// Of3 builds a T3.
func Of3[A, B, C any](a A, b B, c C) T3[A, B, C] { return T3[A, B, C]{a, b, c} }

// Of4 builds a T4.
func Of4[A, B, C, D any](a A, b B, c C, d D) T4[A, B, C, D] { return T4[A, B, C, D]{a, b, c, d} }

// Unpack returns the components in order.
func (t T2[A, B]) Unpack() (A, B) { return t.V1, t.V2 }

// Unpack returns the components in order.
func (t T3[A, B, C]) Unpack() (A, B, C) { return t.V1, t.V2, t.V3 }

// Unpack returns the components in order.
func (t T4[A, B, C, D]) Unpack() (A, B, C, D) { return t.V1, t.V2, t.V3, t.V4 }

func (t T2[A, B]) String() string { return fmt.Sprintf("(%v, %v)", t.V1, t.V2) }

func (t T3[A, B, C]) String() string { return fmt.Sprintf("(%v, %v, %v)", t.V1, t.V2, t.V3) }

func (t T4[A, B, C, D]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", t.V1, t.V2, t.V3, t.V4)
}
