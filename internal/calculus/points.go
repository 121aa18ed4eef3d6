package calculus

import "iter"

// Sample is one evaluation of a function: Y = f(X).
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Points returns a lazy sequence of samples for x = start, start+step, ...
// while x <= end. The endpoint is included when reached.
//
// x advances by repeated addition of step, so accumulated rounding decides
// whether an endpoint that is not exactly representable is included. The
// sequence also ends once x+step rounds back to x, which keeps it finite
// when step falls below the spacing of floats near x.
//
// The sequence evaluates f only when pulled and buffers nothing. Ranging over
// it again replays the same samples. An invalid step is reported here, not
// when the sequence is consumed. Non-finite start or end values are
// rejected the same way.
func (c *FunctionContext) Points(start, end, step float64) (iter.Seq[Sample], error) {
	if err := ValidateRange(start, end, step); err != nil {
		return nil, err
	}

	fn := c.fn
	return func(yield func(Sample) bool) {
		for x := start; x <= end; {
			if !yield(Sample{X: x, Y: fn(x)}) {
				return
			}
			next := x + step
			if next == x {
				return
			}
			x = next
		}
	}, nil
}
