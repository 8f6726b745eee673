// Package sql validates and corrects LLM-generated SQL before execution.
package sql

import "strings"

// firstStatement returns the text up to the first semicolon that sits
// outside string literals, with fence markup and surrounding whitespace
// already expected to be stripped. Semicolons inside quoted strings do not
// terminate the statement.
func firstStatement(sqlQuery string) string {
	const (
		stateNormal = iota
		stateSingleQuote
		stateDoubleQuote
	)

	state := stateNormal
	prevChar := rune(0)

	for i, char := range sqlQuery {
		switch state {
		case stateNormal:
			switch char {
			case ';':
				return strings.TrimSpace(sqlQuery[:i])
			case '\'':
				state = stateSingleQuote
			case '"':
				state = stateDoubleQuote
			}
		case stateSingleQuote:
			// Handles both backslash escape (\') and SQL doubled
			// quote (''): the doubled quote exits and immediately
			// re-enters on the next character.
			if char == '\'' && prevChar != '\\' {
				state = stateNormal
			}
		case stateDoubleQuote:
			if char == '"' && prevChar != '\\' {
				state = stateNormal
			}
		}
		prevChar = char
	}

	return strings.TrimSpace(sqlQuery)
}

// stringLiterals extracts the contents of single-quoted literals, honoring
// the SQL doubled-quote escape.
func stringLiterals(sqlQuery string) []string {
	var literals []string
	var current strings.Builder

	inString := false
	runes := []rune(sqlQuery)

	for i := 0; i < len(runes); i++ {
		char := runes[i]
		if !inString {
			if char == '\'' {
				inString = true
				current.Reset()
			}
			continue
		}
		if char == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				current.WriteRune('\'')
				i++
				continue
			}
			inString = false
			literals = append(literals, current.String())
			continue
		}
		current.WriteRune(char)
	}

	return literals
}

// stripFences removes markdown code-fence markup the LLM sometimes wraps
// around the statement despite instructions.
func stripFences(sqlQuery string) string {
	sqlQuery = strings.ReplaceAll(sqlQuery, "```sql", "")
	sqlQuery = strings.ReplaceAll(sqlQuery, "```", "")
	return strings.TrimSpace(sqlQuery)
}
