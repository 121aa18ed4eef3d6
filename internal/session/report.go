package session

import (
	"fmt"
	"io"
	"strings"
)

// WriteText writes the report in its fixed-precision text form.
// Values are printed with six decimals so output is stable across runs.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "run: %s\n", r.RunID)
	fmt.Fprintf(&b, "session: %s\n", r.Name)
	fmt.Fprintf(&b, "function: %s\n", r.Function)
	fmt.Fprintf(&b, "epsilon: %g\n", r.Epsilon)

	if len(r.Derivatives) > 0 {
		b.WriteString("derivatives:\n")
		for _, d := range r.Derivatives {
			fmt.Fprintf(&b, "  x=%.6f d=%.6f\n", d.X, d.Value)
		}
	}

	if in := r.Integral; in != nil {
		fmt.Fprintf(&b, "integral: a=%.6f b=%.6f n=%d rule=%s value=%.6f\n",
			in.A, in.B, in.Samples, in.Rule, in.Value)
	}

	if len(r.Samples) > 0 {
		b.WriteString("samples:\n")
		for _, s := range r.Samples {
			fmt.Fprintf(&b, "  x=%.6f y=%.6f", s.X, s.Y)
			if s.Slope != nil {
				fmt.Fprintf(&b, " slope=%.6f", *s.Slope)
			}
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// String returns the text form of the report.
func (r *Report) String() string {
	var b strings.Builder
	_ = r.WriteText(&b)
	return b.String()
}
