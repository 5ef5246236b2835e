package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

// Values maps placeholder names to their substitution values. Strings are
// inserted verbatim, integers and floats with default decimal formatting.
type Values map[string]any

// Render substitutes {{name}} placeholders in a template. Substitution is
// global and literal: templates are trusted LLM-directed text, so no
// escaping is applied. Values without a matching placeholder are ignored;
// placeholders without a value stay in the output as literal text, and
// each builder is responsible for supplying its full declared set.
func Render(template string, values Values) string {
	out := template
	for name, value := range values {
		out = strings.ReplaceAll(out, "{{"+name+"}}", stringify(value))
	}
	return out
}

// stringify converts a placeholder value to its template form.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}
