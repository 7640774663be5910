package cli

import "testing"

func TestTokensFile(t *testing.T) {
	path := writeConfig(t, "config.yaml", validConfig)

	if err := TokensFile(path); err != nil {
		t.Errorf("TokensFile() error = %v", err)
	}
}

func TestTokensFileMissing(t *testing.T) {
	if err := TokensFile("/nonexistent/config.yaml"); err == nil {
		t.Error("TokensFile() error = nil, want read failure")
	}
}

func TestHighlightFile(t *testing.T) {
	path := writeConfig(t, "config.yaml", validConfig)

	if err := HighlightFile(path); err != nil {
		t.Errorf("HighlightFile() error = %v", err)
	}
}

func TestHighlightFileMissing(t *testing.T) {
	if err := HighlightFile("/nonexistent/config.yaml"); err == nil {
		t.Error("HighlightFile() error = nil, want read failure")
	}
}
