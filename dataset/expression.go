package dataset

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"airbnb-insights/models"
)

// Expression is a compiled boolean predicate over a record's fields. Field
// values reach the expression as raw strings, so numeric comparisons need an
// explicit conversion, e.g. float(price) > 100.
type Expression struct {
	source  string
	program *vm.Program
}

// CompileExpression compiles source into a reusable predicate. Fields the
// expression names but a record lacks evaluate as nil instead of failing
// compilation.
func CompileExpression(source string) (*Expression, error) {
	program, err := expr.Compile(source, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("dataset: compile expression %q: %w", source, err)
	}
	return &Expression{source: source, program: program}, nil
}

// Source returns the original expression text.
func (e *Expression) Source() string {
	return e.source
}

// Matches evaluates the expression against one record. A per-record
// evaluation error counts as "no match", same as any other malformed data.
func (e *Expression) Matches(r models.Record) bool {
	env := make(map[string]interface{}, len(r))
	for k, v := range r {
		env[k] = v
	}
	out, err := expr.Run(e.program, env)
	if err != nil {
		return false
	}
	return truthy(out)
}

// truthy converts an expression result to a filter verdict.
func truthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return true
	}
}
