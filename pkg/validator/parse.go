package validator

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// Parse decodes text into its top-level mapping with key order
// preserved. It returns a failure rather than a partial result when
// the document is not a mapping at the top level or when parsing
// fails. An empty document resolves to null, not a mapping, so it
// fails the same way an explicit null document does.
func Parse(text string) (yaml.MapSlice, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("failed to parse configuration: document has no top-level mapping")
	}

	var mapping yaml.MapSlice
	if err := yaml.Unmarshal([]byte(text), &mapping); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return mapping, nil
}

// topLevelKeys collects the string keys of a parsed mapping.
func topLevelKeys(mapping yaml.MapSlice) map[string]bool {
	keys := make(map[string]bool, len(mapping))
	for _, item := range mapping {
		if key, ok := item.Key.(string); ok {
			keys[key] = true
		}
	}
	return keys
}
