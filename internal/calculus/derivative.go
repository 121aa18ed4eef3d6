package calculus

// Derivative estimates f'(x) with the forward difference (f(x+h) - f(x)) / h.
//
// The error is O(h). There is no central-difference or Richardson refinement.
func (c *FunctionContext) Derivative(x float64) float64 {
	h := c.epsilon
	return (c.fn(x+h) - c.fn(x)) / h
}
