package syntax

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles for each token kind
var (
	mainSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#BD93F9"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BE9FD"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F8F2"))

	commentStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6272A4"))

	arrayMarkerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFB86C"))

	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F1FA8C"))

	booleanStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555"))

	nullStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6272A4"))
)

// StyleFor returns the lipgloss style used to render spans of the
// given kind.
func StyleFor(kind Kind) lipgloss.Style {
	switch kind {
	case KindMainSection:
		return mainSectionStyle
	case KindKey:
		return keyStyle
	case KindComment:
		return commentStyle
	case KindArrayMarker:
		return arrayMarkerStyle
	case KindNumber:
		return numberStyle
	case KindBoolean:
		return booleanStyle
	case KindNull:
		return nullStyle
	default:
		return valueStyle
	}
}

// Render returns text with terminal styling applied per the kind
// palette. Spans are applied in position order; a span that overlaps an
// already styled region (a key inside a commented-out line, for
// example) is skipped.
func Render(text string) string {
	spans := sortSpans(Analyze(text))

	var output strings.Builder
	output.Grow(len(text))

	pos := 0
	for _, span := range spans {
		if span.Start < pos {
			continue
		}
		output.WriteString(text[pos:span.Start])
		output.WriteString(StyleFor(span.Kind).Render(span.Text))
		pos = span.End()
	}
	output.WriteString(text[pos:])

	return output.String()
}

// sortSpans returns a copy of spans ordered by start position. Analyze
// emits per-line groups rather than position order, so rendering sorts
// its own copy instead of changing the emission order callers see.
func sortSpans(spans []Span) []Span {
	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})
	return sorted
}
