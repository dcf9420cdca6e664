package scan

// Span represents a half-open byte range [Start, End) in a document.
type Span struct {
	Start int // 0-based byte offset
	End   int // exclusive
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains returns true if the span contains the given offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// IsValid returns true if the span is non-empty and starts at or after 0.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.Start < s.End
}

// Text returns the slice of text covered by the span.
func (s Span) Text(text string) string {
	return text[s.Start:s.End]
}
