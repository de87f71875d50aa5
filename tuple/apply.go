package tuple

import "github.com/kbukum/pushflow/errors"

// Apply2 applies f1 to the first component and f2 to the second.
func Apply2[A1, A2, B1, B2 any](t T2[A1, A2], f1 func(A1) B1, f2 func(A2) B2) T2[B1, B2] {
	return T2[B1, B2]{f1(t.V1), f2(t.V2)}
}

// Apply3 applies fi to the i-th component.
func Apply3[A1, A2, A3, B1, B2, B3 any](
	t T3[A1, A2, A3], f1 func(A1) B1, f2 func(A2) B2, f3 func(A3) B3,
) T3[B1, B2, B3] {
	return T3[B1, B2, B3]{f1(t.V1), f2(t.V2), f3(t.V3)}
}

// Apply4 applies fi to the i-th component.
func Apply4[A1, A2, A3, A4, B1, B2, B3, B4 any](
	t T4[A1, A2, A3, A4], f1 func(A1) B1, f2 func(A2) B2, f3 func(A3) B3, f4 func(A4) B4,
) T4[B1, B2, B3, B4] {
	return T4[B1, B2, B3, B4]{f1(t.V1), f2(t.V2), f3(t.V3), f4(t.V4)}
}

// Zip applies fs[i] to xs[i]. The lengths must match.
func Zip[A, B any](xs []A, fs []func(A) B) ([]B, error) {
	if len(xs) != len(fs) {
		return nil, errors.ArityMismatch(len(fs), len(xs))
	}
	out := make([]B, len(xs))
	for i, x := range xs {
		out[i] = fs[i](x)
	}
	return out, nil
}

// MapEach applies f to every element of xs.
func MapEach[A, B any](xs []A, f func(A) B) []B {
	out := make([]B, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}
