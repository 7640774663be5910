package cli

import (
	"fmt"
	"os"

	"github.com/clashkit/clash-lint/pkg/console"
	"github.com/clashkit/clash-lint/pkg/syntax"
)

// HighlightFile prints the file with syntax highlighting applied per
// the token palette. When stdout is not a terminal the text passes
// through unchanged, so the command stays pipe-friendly.
func HighlightFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	text := string(data)

	if !console.IsTTY() {
		fmt.Print(text)
		return nil
	}

	fmt.Print(syntax.Render(text))
	return nil
}
