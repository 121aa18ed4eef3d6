package session

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// AssertGolden compares the text form of report against
// testdata/golden/{name}.golden in the calling package.
//
// To regenerate golden files, run:
//
//	go test ./internal/... -update
func AssertGolden(t *testing.T, name string, report *Report) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(report.String()))
}

// RunWithGolden runs s with a fixed run ID and compares the report against
// the golden file named after the session.
func RunWithGolden(t *testing.T, s *Session, runID string) (*Report, error) {
	t.Helper()

	report, err := Run(t.Context(), s, NewFixedGenerator(runID))
	if err != nil {
		return nil, err
	}
	AssertGolden(t, s.Name, report)
	return report, nil
}
