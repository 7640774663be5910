package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/clashkit/clash-lint/pkg/console"
	"github.com/clashkit/clash-lint/pkg/syntax"
)

// maxTokenTextLength truncates long span texts in the table dump
const maxTokenTextLength = 40

// TokensFile prints the classified token spans of a configuration
// file as a table, mainly useful for debugging the tokenizer and the
// palette mapping.
func TokensFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	spans := syntax.Analyze(string(data))

	rows := make([][]string, 0, len(spans))
	for _, span := range spans {
		text := span.Text
		if len(text) > maxTokenTextLength {
			text = text[:maxTokenTextLength] + "…"
		}
		rows = append(rows, []string{
			span.Kind.String(),
			strconv.Itoa(span.Start),
			strconv.Itoa(span.End()),
			text,
		})
	}

	fmt.Print(console.RenderTable(console.TableConfig{
		Title:   console.ToRelativePath(path),
		Headers: []string{"KIND", "START", "END", "TEXT"},
		Rows:    rows,
	}))
	fmt.Println(console.FormatCountMessage(fmt.Sprintf("%d spans", len(spans))))

	return nil
}
