package console

import (
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// ProgressSpinner animates validation progress on a terminal and
// degrades to a no-op when stdout is not a TTY, so piped output stays
// clean.
type ProgressSpinner struct {
	mu      sync.Mutex
	spinner *spinner.Spinner
	enabled bool
}

// NewSpinner creates a progress spinner with an initial message.
func NewSpinner(message string) *ProgressSpinner {
	enabled := isatty.IsTerminal(1)

	s := &ProgressSpinner{
		enabled: enabled,
	}

	if enabled {
		s.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.spinner.Suffix = " " + message
		_ = s.spinner.Color("cyan") // Ignore error as fallback is fine
	}

	return s
}

// Start begins the spinner animation
func (s *ProgressSpinner) Start() {
	if s.enabled {
		s.spinner.Start()
	}
}

// Stop stops the spinner animation
func (s *ProgressSpinner) Stop() {
	if s.enabled {
		s.spinner.Stop()
	}
}

// UpdateMessage replaces the spinner message. Safe to call from
// parallel validation workers.
func (s *ProgressSpinner) UpdateMessage(message string) {
	if !s.enabled {
		return
	}
	s.mu.Lock()
	s.spinner.Suffix = " " + message
	s.mu.Unlock()
}

// IsEnabled reports whether the spinner will animate, letting callers
// fall back to plain progress output when it won't.
func (s *ProgressSpinner) IsEnabled() bool {
	return s.enabled
}
