package calculus

// DefaultEpsilon is the step size used when no WithEpsilon option is given.
const DefaultEpsilon = 0.0001

// Func is a scalar function of one real variable.
// It is referenced, not owned, by a FunctionContext.
type Func func(float64) float64

// FunctionContext bundles a Func with a fixed step size.
//
// It is immutable after New returns and may be shared freely.
type FunctionContext struct {
	fn      Func
	epsilon float64
}

// Option configures a FunctionContext.
type Option func(*FunctionContext)

// WithEpsilon overrides DefaultEpsilon.
// The value is validated by New.
func WithEpsilon(h float64) Option {
	return func(c *FunctionContext) {
		c.epsilon = h
	}
}

// New creates a FunctionContext for fn.
//
// Returns a ConfigError if fn is nil or epsilon is not a finite positive
// number.
func New(fn Func, opts ...Option) (*FunctionContext, error) {
	if fn == nil {
		return nil, &ConfigError{
			Code:    ErrCodeInvalidConfiguration,
			Field:   "function",
			Value:   "nil",
			Message: "function must not be nil",
		}
	}

	c := &FunctionContext{fn: fn, epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(c)
	}

	if err := ValidateEpsilon(c.epsilon); err != nil {
		return nil, err
	}

	return c, nil
}

// MustNew is like New but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustNew(fn Func, opts ...Option) *FunctionContext {
	c, err := New(fn, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Epsilon returns the step size h.
func (c *FunctionContext) Epsilon() float64 {
	return c.epsilon
}

// Eval evaluates the bound function at x.
func (c *FunctionContext) Eval(x float64) float64 {
	return c.fn(x)
}
