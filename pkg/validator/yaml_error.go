package validator

import (
	"fmt"
	"strings"
)

// ExtractYAMLError extracts 1-based line and column information from a
// YAML parsing error. Both "yaml: line X: message" (standard) and
// "yaml: line X: column Y: message" (enhanced parsers) forms are
// recognized, along with the multiline "yaml: unmarshal errors:" form.
// Line and column are 0 when the error carries no position.
func ExtractYAMLError(err error) (line int, column int, message string) {
	errStr := err.Error()

	// Parse "yaml: line X: column Y: message" format
	if strings.Contains(errStr, "yaml: line ") && strings.Contains(errStr, "column ") {
		parts := strings.SplitN(errStr, "yaml: line ", 2)
		if len(parts) > 1 {
			lineInfo := parts[1]
			colonIdx := strings.Index(lineInfo, ":")
			if colonIdx > 0 {
				lineStr := lineInfo[:colonIdx]
				if _, parseErr := fmt.Sscanf(lineStr, "%d", &line); parseErr == nil {
					remaining := lineInfo[colonIdx+1:]
					if strings.Contains(remaining, "column ") {
						columnParts := strings.SplitN(remaining, "column ", 2)
						if len(columnParts) > 1 {
							columnInfo := columnParts[1]
							colonIdx2 := strings.Index(columnInfo, ":")
							if colonIdx2 > 0 {
								columnStr := columnInfo[:colonIdx2]
								message = strings.TrimSpace(columnInfo[colonIdx2+1:])
								if _, parseErr := fmt.Sscanf(columnStr, "%d", &column); parseErr == nil {
									return
								}
							}
						}
					}
				}
			}
		}
	}

	// Parse "yaml: line X: message" format (no column info)
	if strings.Contains(errStr, "yaml: line ") {
		parts := strings.SplitN(errStr, "yaml: line ", 2)
		if len(parts) > 1 {
			lineInfo := parts[1]
			colonIdx := strings.Index(lineInfo, ":")
			if colonIdx > 0 {
				lineStr := lineInfo[:colonIdx]
				message = strings.TrimSpace(lineInfo[colonIdx+1:])
				if _, parseErr := fmt.Sscanf(lineStr, "%d", &line); parseErr == nil {
					column = 1 // Default to column 1 when not provided
					return
				}
			}
		}
	}

	// Parse "yaml: unmarshal errors: line X: message" format
	if strings.Contains(errStr, "yaml: unmarshal errors:") && strings.Contains(errStr, "line ") {
		for _, errorLine := range strings.Split(errStr, "\n") {
			errorLine = strings.TrimSpace(errorLine)
			if strings.Contains(errorLine, "line ") && strings.Contains(errorLine, ":") {
				parts := strings.SplitN(errorLine, "line ", 2)
				if len(parts) > 1 {
					colonIdx := strings.Index(parts[1], ":")
					if colonIdx > 0 {
						lineStr := parts[1][:colonIdx]
						restOfMessage := strings.TrimSpace(parts[1][colonIdx+1:])
						if _, parseErr := fmt.Sscanf(lineStr, "%d", &line); parseErr == nil {
							column = 1
							message = restOfMessage
							return
						}
					}
				}
			}
		}
	}

	// Fallback: return original error message without a position
	return 0, 0, strings.TrimPrefix(errStr, "yaml: ")
}

// CategorizeYAMLError buckets a parser problem description into the
// coarse categories surfaced to users (scanning, composition,
// representation, syntax). The underlying parser does not expose its
// internal error kinds, so categories are inferred from well-known
// problem phrases.
func CategorizeYAMLError(problem string) string {
	lower := strings.ToLower(problem)
	switch {
	case strings.Contains(lower, "cannot start any token"),
		strings.Contains(lower, "control characters are not allowed"),
		strings.Contains(lower, "unknown escape character"),
		strings.Contains(lower, "unexpected end of stream"):
		return "scanning"
	case strings.Contains(lower, "anchor"),
		strings.Contains(lower, "alias"):
		return "composition"
	case strings.Contains(lower, "cannot unmarshal"),
		strings.Contains(lower, "unmarshal error"):
		return "representation"
	default:
		return "syntax"
	}
}
