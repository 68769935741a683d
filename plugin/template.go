package plugin

import (
	"fmt"
	"iter"
	"os"
	"slices"
	"strings"

	"github.com/signadot/lintcfg/ir"
	"github.com/signadot/lintcfg/parse"
)

// Template is a FlatConfig whose elements are expression source text.
// ${name} in an expression is replaced by the local name bound for name.
// An expression starting with ... yields a spread element.
type Template struct {
	Requests []ImportRequest `yaml:"imports"`
	Exprs    []string        `yaml:"expressions"`
}

func (t *Template) Imports() iter.Seq[ImportRequest] {
	return slices.Values(t.Requests)
}

func (t *Template) Expressions(b Bindings) iter.Seq2[*ir.Node, error] {
	return func(yield func(*ir.Node, error) bool) {
		for _, x := range t.Exprs {
			n, err := Expand(x, b)
			if !yield(n, err) || err != nil {
				return
			}
		}
	}
}

// Expand expands and parses the expression template x.
func Expand(x string, b Bindings) (*ir.Node, error) {
	src := os.Expand(x, b.Name)
	rest, spread := strings.CutPrefix(strings.TrimSpace(src), "...")
	n, err := parse.ParseExpression([]byte(rest))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrTemplate, x, err)
	}
	n = n.Clone()
	if spread {
		n = ir.Spread(n)
	}
	return n, nil
}
