// Package translate rewrites raw query-engine errors into actionable user
// prose. The raw message is always preserved in a trailing technical-details
// line so the model (and curious users) can still self-correct.
package translate

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	unknownColumnPattern = regexp.MustCompile(`(?i)(?:referenced column|column)\s+"?([\w.]+)"?\s+(?:not found|does not exist)`)
	unknownTablePattern  = regexp.MustCompile(`(?i)table(?: with name)?\s+"?([\w.]+)"?\s+(?:not found|does not exist)`)
	syntaxPattern        = regexp.MustCompile(`(?i)(?:parser|syntax) error`)
	typeMismatchPattern  = regexp.MustCompile(`(?i)(?:cannot compare|no function matches|could not convert|conversion error|binder error.*type)`)
	aggregatePattern     = regexp.MustCompile(`(?i)must appear in the GROUP BY clause`)
	divideByZeroPattern  = regexp.MustCompile(`(?i)division by zero`)
)

// EngineError rewrites a raw engine message into user-facing prose.
// availableColumns, when non-empty, is appended to unknown-column errors so
// the reader (human or model) can pick a valid name.
func EngineError(raw string, availableColumns []string) string {
	msg := translate(raw, availableColumns)
	return fmt.Sprintf("%s Technical details: %s", msg, raw)
}

func translate(raw string, availableColumns []string) string {
	switch {
	case unknownColumnPattern.MatchString(raw):
		m := unknownColumnPattern.FindStringSubmatch(raw)
		msg := fmt.Sprintf("The column %q does not exist in the dataset.", m[1])
		if len(availableColumns) > 0 {
			msg += " Available columns: " + strings.Join(availableColumns, ", ") + "."
		}
		return msg
	case unknownTablePattern.MatchString(raw):
		m := unknownTablePattern.FindStringSubmatch(raw)
		return fmt.Sprintf("The table %q is not loaded in this conversation. Check the table name against the loaded datasets.", m[1])
	case syntaxPattern.MatchString(raw):
		return "The SQL query has a syntax error. Check the query structure near the position mentioned below."
	case aggregatePattern.MatchString(raw):
		return "The query mixes aggregated and non-aggregated columns. Add the non-aggregated columns to the GROUP BY clause."
	case typeMismatchPattern.MatchString(raw):
		return "The query compares or converts incompatible types. Cast the column explicitly or adjust the comparison."
	case divideByZeroPattern.MatchString(raw):
		return "The query divides by zero. Guard the divisor with NULLIF or a CASE expression."
	default:
		return "The query could not be executed."
	}
}
