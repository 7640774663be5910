package validator

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Result reports the outcome of validating configuration text. Message
// carries either a parse diagnostic (Valid is false) or advisory shape
// warnings, one per line (Valid stays true). Line and Column are the
// 1-based position of a parse failure, 0 when unknown.
type Result struct {
	Valid   bool
	Message string
	Line    int
	Column  int
}

// Validate checks that text is well-formed YAML. A parse failure is
// converted into a readable message containing the error category, the
// parser's problem description, and the 1-based line and column when
// the underlying error exposes them. Errors never escape as error
// values; the outcome is always a Result.
func Validate(text string) Result {
	var doc any
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		line, column, problem := ExtractYAMLError(err)
		category := CategorizeYAMLError(problem)
		if line > 0 {
			return Result{
				Message: fmt.Sprintf("%s error: %s (line %d, column %d)", category, problem, line, column),
				Line:    line,
				Column:  column,
			}
		}
		return Result{Message: fmt.Sprintf("%s error: %s", category, problem)}
	}
	return Result{Valid: true}
}
