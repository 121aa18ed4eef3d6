package calculus

// Compose returns x ↦ f(g(r₁(r₂(…(x))))).
//
// Functions are applied right to left: the last element of rest runs first
// and f runs last.
func Compose(f, g Func, rest ...Func) Func {
	acc := func(x float64) float64 { return f(g(x)) }
	for _, fn := range rest {
		outer, inner := acc, fn
		acc = func(x float64) float64 { return outer(inner(x)) }
	}
	return acc
}
