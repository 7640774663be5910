package syntax

import (
	"strings"
	"testing"
)

func TestRenderPreservesContent(t *testing.T) {
	// Every span text must appear in the rendered output in document
	// order, regardless of the active color profile.
	rendered := Render(sampleConfig)

	pos := 0
	for _, span := range sortSpans(Analyze(sampleConfig)) {
		idx := strings.Index(rendered[pos:], span.Text)
		if idx < 0 {
			t.Fatalf("rendered output missing span text %q after position %d", span.Text, pos)
		}
		pos += idx + len(span.Text)
	}
}

func TestRenderEmptyInput(t *testing.T) {
	if got := Render(""); got != "" {
		t.Errorf("Render(\"\") = %q, want empty string", got)
	}
}

func TestSortSpansDoesNotMutate(t *testing.T) {
	spans := Analyze("  name: foo  # comment\n")
	if spans[0].Kind != KindComment {
		t.Fatalf("expected comment span first, got %v", spans[0].Kind)
	}

	sorted := sortSpans(spans)

	// Emission order is part of the contract; sorting must work on a
	// copy.
	if spans[0].Kind != KindComment {
		t.Error("sortSpans() mutated the original emission order")
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].Start {
			t.Errorf("sortSpans() output not ordered at index %d: %+v", i, sorted)
		}
	}
}

func TestStyleForCoversAllKinds(t *testing.T) {
	kinds := []Kind{
		KindKey, KindValue, KindComment, KindArrayMarker,
		KindString, KindNumber, KindBoolean, KindNull, KindMainSection,
	}

	for _, kind := range kinds {
		// Rendering with the style must round-trip the text content.
		out := StyleFor(kind).Render("sample")
		if !strings.Contains(out, "sample") {
			t.Errorf("StyleFor(%v).Render() lost its content: %q", kind, out)
		}
	}
}
