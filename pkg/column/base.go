package column

import (
	"github.com/oakwood-commons/gridcol/internal/rule"
	"github.com/oakwood-commons/gridcol/pkg/logger"
)

// validateOption is the TypeOptions key holding a CEL validation
// expression evaluated against the candidate value bound to "_".
const validateOption = "validate"

// baseColumn carries the shared state of every concrete kind: the
// definition plus an optional compiled validation rule.
type baseColumn struct {
	props Props
	rule  *rule.Rule
}

func newBase(p Props) baseColumn {
	b := baseColumn{props: p}
	expr, ok := p.TypeOptions[validateOption].(string)
	if !ok || expr == "" {
		return b
	}
	r, err := rule.Compile(expr)
	if err != nil {
		// A broken expression disables the rule rather than breaking the
		// column; conversion must stay total.
		logger.GetGlobalLogger().Error(err, "disabling column validation rule",
			"column", p.ID, "expression", expr)
		return b
	}
	b.rule = r
	return b
}

func (b baseColumn) Props() Props { return b.props }

// allow runs the optional validation expression. Columns without a rule
// accept everything.
func (b baseColumn) allow(v any) bool {
	return b.rule.Allow(v)
}

// optFloat reads a numeric type option, reporting presence.
func (b baseColumn) optFloat(key string) (float64, bool) {
	v, ok := b.props.TypeOptions[key]
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}

// optInt reads an integer type option, reporting presence.
func (b baseColumn) optInt(key string) (int, bool) {
	f, ok := b.optFloat(key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// optString reads a string type option; absent or mistyped yields "".
func (b baseColumn) optString(key string) string {
	s, _ := b.props.TypeOptions[key].(string)
	return s
}
