// Package catalog maps function names to calculus.Func values.
//
// Names are matched after NFC normalisation and Unicode case folding, so
// "Square" and "SQUARE" resolve to the same entry. An expression of the form
// "a|b|c" composes the named functions as a(b(c(x))).
package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/calculus/internal/calculus"
)

// ErrUnknownFunction is returned by Lookup for names not in the catalog.
var ErrUnknownFunction = errors.New("catalog: unknown function")

// Separator joins function names in a composition expression.
const Separator = "|"

// Entry describes a catalog function.
type Entry struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Func        calculus.Func `json:"-"`
}

var entries = map[string]Entry{
	"identity": {
		Name:        "identity",
		Description: "x",
		Func:        func(x float64) float64 { return x },
	},
	"square": {
		Name:        "square",
		Description: "x^2",
		Func:        func(x float64) float64 { return x * x },
	},
	"cube": {
		Name:        "cube",
		Description: "x^3",
		Func:        func(x float64) float64 { return x * x * x },
	},
	"polynomial": {
		Name:        "polynomial",
		Description: "x^2 + 2x + 1",
		Func:        func(x float64) float64 { return x*x + 2*x + 1 },
	},
	"sin": {
		Name:        "sin",
		Description: "sin(x), 10-term Taylor series",
		Func:        calculus.Sin,
	},
	"cos": {
		Name:        "cos",
		Description: "cos(x), 10-term Taylor series",
		Func:        calculus.Cos,
	},
	"exp": {
		Name:        "exp",
		Description: "e^x",
		Func:        math.Exp,
	},
}

// normalize produces the lookup key for a name.
// A Caser keeps state, so one is created per call.
func normalize(name string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(name)))
}

// Get returns the entry registered under name.
func Get(name string) (Entry, error) {
	e, ok := entries[normalize(name)]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
	return e, nil
}

// Lookup resolves a function name or a composition expression.
func Lookup(expr string) (calculus.Func, error) {
	parts := strings.Split(expr, Separator)

	fns := make([]calculus.Func, len(parts))
	for i, part := range parts {
		e, err := Get(part)
		if err != nil {
			return nil, err
		}
		fns[i] = e.Func
	}

	if len(fns) == 1 {
		return fns[0], nil
	}
	return calculus.Compose(fns[0], fns[1], fns[2:]...), nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns all entries sorted by name.
func Entries() []Entry {
	names := Names()
	out := make([]Entry, len(names))
	for i, name := range names {
		out[i] = entries[name]
	}
	return out
}
