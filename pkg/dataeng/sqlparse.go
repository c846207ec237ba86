package dataeng

import (
	"fmt"
	"regexp"
	"strings"
)

// stripCommentsAndStrings blanks out SQL comments (line and block) and
// single- and double-quoted literals, preserving the length-independent
// token structure of the query. Used so LIMIT detection cannot be fooled by
// the word appearing inside a string or comment.
func stripCommentsAndStrings(sql string) string {
	var out strings.Builder
	out.Grow(len(sql))

	const (
		stateCode = iota
		stateLineComment
		stateBlockComment
		stateSingleQuote
		stateDoubleQuote
	)
	state := stateCode

	for i := 0; i < len(sql); i++ {
		ch := sql[i]
		var next byte
		if i+1 < len(sql) {
			next = sql[i+1]
		}

		switch state {
		case stateCode:
			switch {
			case ch == '-' && next == '-':
				state = stateLineComment
				i++
			case ch == '/' && next == '*':
				state = stateBlockComment
				i++
			case ch == '\'':
				state = stateSingleQuote
				out.WriteByte(' ')
			case ch == '"':
				state = stateDoubleQuote
				out.WriteByte(' ')
			default:
				out.WriteByte(ch)
			}
		case stateLineComment:
			if ch == '\n' {
				state = stateCode
				out.WriteByte('\n')
			}
		case stateBlockComment:
			if ch == '*' && next == '/' {
				state = stateCode
				i++
			}
		case stateSingleQuote:
			if ch == '\'' {
				if next == '\'' {
					i++ // escaped quote inside literal
				} else {
					state = stateCode
				}
			}
		case stateDoubleQuote:
			if ch == '"' {
				state = stateCode
			}
		}
	}
	return out.String()
}

var limitTokenPattern = regexp.MustCompile(`(?i)\bLIMIT\b`)

// IsSelectLike reports whether the query is a read query eligible for
// auto-LIMIT injection: after stripping comments, strings, and leading
// parentheses, it starts with SELECT or WITH.
func IsSelectLike(sql string) bool {
	stripped := strings.TrimSpace(stripCommentsAndStrings(sql))
	stripped = strings.TrimLeft(stripped, "( \t\r\n")
	upper := strings.ToUpper(stripped)
	return strings.HasPrefix(upper, "SELECT") || strings.HasPrefix(upper, "WITH")
}

// HasTopLevelLimit reports whether the query contains a LIMIT keyword
// outside of strings and comments.
func HasTopLevelLimit(sql string) bool {
	return limitTokenPattern.MatchString(stripCommentsAndStrings(sql))
}

// ApplyAutoLimit appends LIMIT maxRows to SELECT-like queries that do not
// already carry one. The second return reports whether a limit was injected.
func ApplyAutoLimit(sql string, maxRows int64) (string, bool) {
	if !IsSelectLike(sql) || HasTopLevelLimit(sql) {
		return sql, false
	}
	trimmed := strings.TrimRight(strings.TrimSpace(sql), ";")
	return fmt.Sprintf("%s LIMIT %d", trimmed, maxRows), true
}
