package session

// Session describes one analysis session.
type Session struct {
	// Name uniquely identifies this session.
	Name string `yaml:"name" json:"name"`

	// Description explains what this session computes.
	Description string `yaml:"description" json:"description,omitempty"`

	// Function is a catalog name or composition expression ("square|cos").
	Function string `yaml:"function" json:"function"`

	// Epsilon overrides calculus.DefaultEpsilon when set.
	// An explicit zero is rejected.
	Epsilon *float64 `yaml:"epsilon,omitempty" json:"epsilon,omitempty"`

	// Derivatives lists the x values to differentiate at.
	Derivatives []float64 `yaml:"derivatives,omitempty" json:"derivatives,omitempty"`

	// Integral requests a definite integral.
	Integral *IntegralSpec `yaml:"integral,omitempty" json:"integral,omitempty"`

	// Points requests a sampled sequence.
	Points *PointsSpec `yaml:"points,omitempty" json:"points,omitempty"`
}

// IntegralSpec configures the integral operation.
type IntegralSpec struct {
	A float64 `yaml:"a" json:"a"`
	B float64 `yaml:"b" json:"b"`

	// Samples overrides calculus.DefaultSamples when set.
	Samples *int `yaml:"samples,omitempty" json:"samples,omitempty"`

	// Rule is "inclusive" (default) or "left".
	Rule string `yaml:"rule,omitempty" json:"rule,omitempty"`

	// DelayMS is the pacing delay before computing, in milliseconds.
	DelayMS int `yaml:"delay_ms,omitempty" json:"delay_ms,omitempty"`
}

// PointsSpec configures the sampling operation.
type PointsSpec struct {
	Start float64 `yaml:"start" json:"start"`
	End   float64 `yaml:"end" json:"end"`
	Step  float64 `yaml:"step" json:"step"`

	// Slopes adds the forward-difference derivative to every sample.
	Slopes bool `yaml:"slopes,omitempty" json:"slopes,omitempty"`
}

// Report is the outcome of running a session.
type Report struct {
	RunID       string          `json:"run_id"`
	Name        string          `json:"name"`
	Function    string          `json:"function"`
	Epsilon     float64         `json:"epsilon"`
	Derivatives []Derivative    `json:"derivatives,omitempty"`
	Integral    *IntegralResult `json:"integral,omitempty"`
	Samples     []SampleRow     `json:"samples,omitempty"`
}

// Derivative is one derivative evaluation.
type Derivative struct {
	X     float64 `json:"x"`
	Value float64 `json:"value"`
}

// IntegralResult is the integral operation's outcome.
type IntegralResult struct {
	A       float64 `json:"a"`
	B       float64 `json:"b"`
	Samples int     `json:"samples"`
	Rule    string  `json:"rule"`
	Value   float64 `json:"value"`
}

// SampleRow is one sample, optionally with its slope.
type SampleRow struct {
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Slope *float64 `json:"slope,omitempty"`
}
