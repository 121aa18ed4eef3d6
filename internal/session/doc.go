// Package session runs declarative analysis sessions against the calculus core.
//
// A session names a catalog function, an optional epsilon, and the
// operations to run on it. Sessions are written in YAML or CUE.
//
// # YAML Format
//
//	name: polynomial_demo
//	description: "Derivatives and area under x^2 + 2x + 1"
//	function: polynomial
//	epsilon: 0.0001
//	derivatives: [0, 0.5, 1]
//	integral:
//	  a: 0
//	  b: 1
//	  samples: 1000
//	  rule: inclusive
//	  delay_ms: 0
//	points:
//	  start: 0
//	  end: 1
//	  step: 0.1
//	  slopes: true
//
// Unknown keys are rejected so typos ("derivative:" vs "derivatives:") fail
// loudly instead of silently skipping an operation.
//
// # CUE Format
//
// The same fields, checked against the closed #Session definition in
// schema.go before decoding:
//
//	name:     "polynomial_demo"
//	function: "square|cos"
//	points: {start: 0, end: 1, step: 0.25}
//
// # Deterministic Reports
//
// Every run is stamped with an ID from a RunIDGenerator. Production runs use
// UUIDv7Generator; tests use FixedGenerator so that text reports can be
// compared against golden files:
//
//	report, err := session.Run(ctx, s, session.NewFixedGenerator("run-0001"))
//	session.AssertGolden(t, "square_session", report)
package session
