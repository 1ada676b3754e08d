package cli

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/msgtrail/msgtrail/internal/record"
)

// compileWhere compiles a --where expression into a record predicate.
// Expressions see message_id, group, subject, sender and date as
// strings and must evaluate to a boolean. Unknown identifiers resolve
// to nil rather than failing compilation, so comparisons against them
// are simply false.
func compileWhere(expression string) (func(record.Record) (bool, error), error) {
	program, err := expr.Compile(expression,
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile expression: %w", err)
	}
	return func(r record.Record) (bool, error) {
		out, err := expr.Run(program, whereEnv(r))
		if err != nil {
			return false, fmt.Errorf("evaluate expression: %w", err)
		}
		match, ok := out.(bool)
		if !ok {
			return false, fmt.Errorf("expression returned %T, want bool", out)
		}
		return match, nil
	}, nil
}

func whereEnv(r record.Record) map[string]any {
	return map[string]any{
		"message_id": r.MessageID,
		"group":      r.Group,
		"subject":    r.Subject,
		"sender":     r.Sender,
		"date":       r.Date,
	}
}
