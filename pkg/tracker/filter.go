package tracker

import (
	"fmt"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
	"golang.org/x/net/html"

	"github.com/goliatone/go-changetrack/pkg/dom"
)

// fieldFilter runs a compiled expr predicate against candidate fields during
// attach. The environment exposes the field's name, tag, input type, and
// composite current value.
type fieldFilter struct {
	program    *exprvm.Program
	expression string
}

func compileFieldFilter(expression string) (*fieldFilter, error) {
	program, err := exprlang.Compile(expression,
		exprlang.Env(filterEnv("", "", "", "")),
		exprlang.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}
	return &fieldFilter{program: program, expression: expression}, nil
}

// allows reports whether the named field should be tracked. Fields must be
// affirmatively admitted: evaluation errors exclude the field.
func (f *fieldFilter) allows(field *html.Node, name, value string) bool {
	if f == nil || f.program == nil {
		return true
	}
	env := filterEnv(name, dom.Tag(field), dom.InputType(field), value)
	result, err := exprlang.Run(f.program, env)
	if err != nil {
		return false
	}
	admitted, ok := result.(bool)
	return ok && admitted
}

func filterEnv(name, tag, typ, value string) map[string]any {
	return map[string]any{
		"name":  name,
		"tag":   tag,
		"type":  typ,
		"value": value,
	}
}
