package syntax

import "fmt"

// Kind classifies a highlighted region of configuration text
type Kind int

const (
	// KindKey is a mapping key before a colon
	KindKey Kind = iota
	// KindValue is a scalar value that matched no more specific kind
	KindValue
	// KindComment is a "#" comment through the end of its line
	KindComment
	// KindArrayMarker is the leading "-" of a sequence entry
	KindArrayMarker
	// KindString is an unquoted or quoted string value
	KindString
	// KindNumber is an integer or floating-point value
	KindNumber
	// KindBoolean is one of the YAML boolean literals
	KindBoolean
	// KindNull is a null literal
	KindNull
	// KindMainSection is a reserved top-level Clash section key
	KindMainSection
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindValue:
		return "value"
	case KindComment:
		return "comment"
	case KindArrayMarker:
		return "array-marker"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	case KindMainSection:
		return "main-section"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Span is a classified sub-range of source text. Start and Length are
// UTF-8 byte offsets into the analyzed text, forming the half-open
// interval [Start, Start+Length). Text always equals the covered
// substring.
type Span struct {
	Kind   Kind
	Start  int
	Length int
	Text   string
}

// End returns the byte offset just past the span
func (s Span) End() int {
	return s.Start + s.Length
}
