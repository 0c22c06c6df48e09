// Package rule compiles per-column validation expressions written in CEL.
// The candidate value binds to the variable "_", so a column option like
// "_ >= 0 && _ < 100" constrains numeric input.
package rule

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	celext "github.com/google/cel-go/ext"
)

// Rule is a compiled validation expression. The zero-value pointer (nil)
// allows everything.
type Rule struct {
	prg cel.Program
}

// Compile parses and checks a CEL expression and prepares it for repeated
// evaluation. Expressions that do not produce a boolean are rejected here
// rather than at evaluation time.
func Compile(expr string) (*Rule, error) {
	env, err := cel.NewEnv(
		cel.Variable("_", cel.DynType),
		cel.CrossTypeNumericComparisons(true),
		celext.Strings(),
		celext.Math(),
	)
	if err != nil {
		return nil, fmt.Errorf("create validation env: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile validation expression: %w", issues.Err())
	}
	if out := ast.OutputType(); !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("validation expression must produce a boolean, got %s", ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("build validation program: %w", err)
	}
	return &Rule{prg: prg}, nil
}

// Allow evaluates the rule against a candidate value. Evaluation errors
// count as a validation failure; they are never surfaced as a panic or an
// error to the conversion path.
func (r *Rule) Allow(value any) bool {
	if r == nil {
		return true
	}
	out, _, err := r.prg.Eval(map[string]any{"_": value})
	if err != nil {
		return false
	}
	return out == types.True
}
