package syntax

import (
	"strings"
	"unicode"
)

// MainSections is the fixed set of reserved top-level Clash section
// names that receive distinct styling from ordinary keys.
var MainSections = []string{
	"proxies",
	"proxy-groups",
	"rules",
	"proxy-providers",
	"script",
	"dns",
	"hosts",
	"tun",
}

var mainSectionSet = func() map[string]bool {
	set := make(map[string]bool, len(MainSections))
	for _, name := range MainSections {
		set[name] = true
	}
	return set
}()

// Analyze scans text line by line and returns classified spans. It is a
// pure function of its input: any text is accepted, including empty
// input, partially typed YAML mid-edit, and documents that would fail a
// real parse, and the same input always yields the same span sequence.
//
// Spans are emitted per line in the order comment, key (or main
// section), value, array marker, with lines in document order. The
// sequence is grouped by line, not globally sorted by position;
// consumers that need strict position order must sort.
func Analyze(text string) []Span {
	var spans []Span

	// Track a running byte offset so per-line column positions can be
	// translated into absolute document ranges.
	offset := 0
	for _, line := range strings.Split(text, "\n") {
		spans = appendLineSpans(spans, line, offset)
		offset += len(line) + 1 // +1 for the consumed line terminator
	}

	return spans
}

// appendLineSpans classifies a single line independently of its
// neighbors, so malformed input never breaks highlighting of
// unaffected lines.
func appendLineSpans(spans []Span, line string, offset int) []Span {
	// Comment detection. This is a naive scan: a '#' inside a quoted
	// value still starts a comment.
	commentIdx := strings.Index(line, "#")
	if commentIdx >= 0 {
		spans = append(spans, Span{
			Kind:   KindComment,
			Start:  offset + commentIdx,
			Length: len(line) - commentIdx,
			Text:   line[commentIdx:],
		})
	}

	// Key/value detection, split at the first colon.
	if colonIdx := strings.Index(line, ":"); colonIdx >= 0 {
		spans = appendKeyValueSpans(spans, line, colonIdx, offset)
	}

	// Array marker detection on the first character after indentation.
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "-") {
		dashIdx := len(line) - len(trimmed)
		spans = append(spans, Span{
			Kind:   KindArrayMarker,
			Start:  offset + dashIdx,
			Length: 1,
			Text:   "-",
		})
	}

	return spans
}

// appendKeyValueSpans emits the key span and, when present, the value
// span for a line containing a colon.
func appendKeyValueSpans(spans []Span, line string, colonIdx, offset int) []Span {
	before := line[:colonIdx]
	key := strings.TrimSpace(before)
	if key == "" {
		// Empty keys emit nothing; this is not an error path.
		return spans
	}

	keyStart := strings.IndexFunc(before, func(r rune) bool { return !unicode.IsSpace(r) })
	kind := KindKey
	if mainSectionSet[key] {
		kind = KindMainSection
	}
	spans = append(spans, Span{
		Kind:   kind,
		Start:  offset + keyStart,
		Length: len(key),
		Text:   line[keyStart : keyStart+len(key)],
	})

	// Cut a trailing comment before trimming so the value span never
	// swallows it; the span length comes from the trimmed content, not
	// a scan to end of line.
	after := line[colonIdx+1:]
	if hashIdx := strings.Index(after, "#"); hashIdx >= 0 {
		after = after[:hashIdx]
	}
	value := strings.TrimSpace(after)
	if value == "" {
		return spans
	}

	valueStart := colonIdx + 1 + strings.IndexFunc(after, func(r rune) bool { return !unicode.IsSpace(r) })
	return append(spans, Span{
		Kind:   classifyValue(value),
		Start:  offset + valueStart,
		Length: len(value),
		Text:   line[valueStart : valueStart+len(value)],
	})
}
