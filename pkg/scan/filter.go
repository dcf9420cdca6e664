package scan

import "strings"

// EnabledSpans walks the sorted marks and returns the spans of text that are
// enabled. Text starts enabled. The bytes of a marker are never part of an
// enabled span; each mark only decides whether the text after it counts.
func EnabledSpans(text string, marks []ToggleMark) []Span {
	var spans []Span
	enabled := true
	cursor := 0

	for _, mark := range marks {
		if enabled && mark.Span.Start > cursor {
			spans = append(spans, Span{Start: cursor, End: mark.Span.Start})
		}
		enabled = mark.Enables
		cursor = mark.Span.End
	}

	if enabled && cursor < len(text) {
		spans = append(spans, Span{Start: cursor, End: len(text)})
	}
	return spans
}

// FilterEnabled returns the concatenation of all enabled spans of text.
func FilterEnabled(text string, marks []ToggleMark) string {
	if len(marks) == 0 {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for _, span := range EnabledSpans(text, marks) {
		sb.WriteString(span.Text(text))
	}
	return sb.String()
}
