package session

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/calculus/internal/calculus"
	"github.com/roach88/calculus/internal/catalog"
)

// Load reads a session file. The format is chosen by extension:
// .yaml and .yml are YAML, .cue is CUE.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".cue":
		return ParseCUE(filepath.Base(path), data)
	default:
		return nil, fmt.Errorf("unsupported session file extension %q (want .yaml, .yml or .cue)", ext)
	}
}

// ParseYAML decodes and validates a YAML session.
// Unknown fields are rejected.
func ParseYAML(data []byte) (*Session, error) {
	var s Session
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := Validate(&s); err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}
	return &s, nil
}

// ParseCUE compiles a CUE session, unifies it with the #Session schema and
// decodes the result. filename is only used in error positions.
func ParseCUE(filename string, data []byte) (*Session, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(cueSchema).LookupPath(cue.ParsePath("#Session"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("building session schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %w", err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}

	var s Session
	if err := unified.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode CUE: %w", err)
	}

	if err := Validate(&s); err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}
	return &s, nil
}

// Validate checks required fields and parameter ranges.
// Range violations are reported as calculus.ConfigError values.
func Validate(s *Session) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Function == "" {
		return fmt.Errorf("function is required")
	}
	if _, err := catalog.Lookup(s.Function); err != nil {
		return fmt.Errorf("function: %w", err)
	}

	if len(s.Derivatives) == 0 && s.Integral == nil && s.Points == nil {
		return fmt.Errorf("at least one of derivatives, integral or points is required")
	}

	if s.Epsilon != nil {
		if err := calculus.ValidateEpsilon(*s.Epsilon); err != nil {
			return err
		}
	}

	if in := s.Integral; in != nil {
		if in.Samples != nil {
			if err := calculus.ValidateSamples(*in.Samples); err != nil {
				return fmt.Errorf("integral: %w", err)
			}
		}
		if _, err := calculus.ParseRule(in.Rule); err != nil {
			return fmt.Errorf("integral: %w", err)
		}
		if in.DelayMS < 0 {
			return fmt.Errorf("integral: delay_ms must not be negative")
		}
	}

	if p := s.Points; p != nil {
		if err := calculus.ValidateRange(p.Start, p.End, p.Step); err != nil {
			return fmt.Errorf("points: %w", err)
		}
	}

	return nil
}
