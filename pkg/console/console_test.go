package console

import (
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      LintError
		contains []string
	}{
		{
			name: "error with position",
			err: LintError{
				Position: Position{File: "config.yaml", Line: 3, Column: 5},
				Type:     "error",
				Message:  "mapping values are not allowed in this context",
			},
			contains: []string{"config.yaml:3:5:", "error:", "mapping values"},
		},
		{
			name: "warning without position",
			err: LintError{
				Type:    "warning",
				Message: "missing \"port\"",
			},
			contains: []string{"warning:", "missing \"port\""},
		},
		{
			name: "info diagnostic",
			err: LintError{
				Type:    "info",
				Message: "nothing to do",
			},
			contains: []string{"info:", "nothing to do"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := FormatError(tt.err)

			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("FormatError() = %q, missing %q", output, want)
				}
			}
		})
	}
}

func TestFormatErrorRendersContext(t *testing.T) {
	err := LintError{
		Position: Position{File: "config.yaml", Line: 2, Column: 3},
		Type:     "error",
		Message:  "did not find expected key",
		Context:  []string{"port: 7890", "a: [", "rules: []"},
	}

	output := FormatError(err)

	for _, line := range err.Context {
		if !strings.Contains(output, line) {
			t.Errorf("FormatError() output missing context line %q", line)
		}
	}
	if !strings.Contains(output, "^") {
		t.Error("FormatError() output missing column pointer")
	}
}

func TestFormatMessages(t *testing.T) {
	tests := []struct {
		name   string
		format func(string) string
	}{
		{name: "success", format: FormatSuccessMessage},
		{name: "info", format: FormatInfoMessage},
		{name: "warning", format: FormatWarningMessage},
		{name: "error", format: FormatErrorMessage},
		{name: "count", format: FormatCountMessage},
		{name: "progress", format: FormatProgressMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format("hello"); !strings.Contains(got, "hello") {
				t.Errorf("format message lost its content: %q", got)
			}
		})
	}
}

func TestRenderTable(t *testing.T) {
	output := RenderTable(TableConfig{
		Title:   "Spans",
		Headers: []string{"KIND", "TEXT"},
		Rows: [][]string{
			{"key", "port"},
			{"number", "7890"},
		},
	})

	for _, want := range []string{"Spans", "KIND", "TEXT", "key", "7890"} {
		if !strings.Contains(output, want) {
			t.Errorf("RenderTable() output missing %q", want)
		}
	}
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	if got := RenderTable(TableConfig{}); got != "" {
		t.Errorf("RenderTable() with no headers = %q, want empty", got)
	}
}

func TestToRelativePath(t *testing.T) {
	if got := ToRelativePath("config.yaml"); got != "config.yaml" {
		t.Errorf("ToRelativePath() changed a relative path: %q", got)
	}
}
