package scan

import (
	"sort"
	"strings"
)

// Toggle marker literals.
const (
	EnableMarker  = "do()"
	DisableMarker = "don't()"
)

// MarkerKind distinguishes enable and disable markers.
type MarkerKind int

// Marker kinds.
const (
	Enable  MarkerKind = iota // do()
	Disable                   // don't()
)

// String returns the lower-case name of the kind.
func (k MarkerKind) String() string {
	switch k {
	case Enable:
		return "enable"
	case Disable:
		return "disable"
	default:
		return "unknown"
	}
}

// Literal returns the marker text for the kind.
func (k MarkerKind) Literal() string {
	if k == Disable {
		return DisableMarker
	}
	return EnableMarker
}

// ToggleMark is one marker occurrence in a document.
type ToggleMark struct {
	Span    Span
	Enables bool
}

// Kind returns the marker kind that produced the mark.
func (m ToggleMark) Kind() MarkerKind {
	if m.Enables {
		return Enable
	}
	return Disable
}

// IndexToggles locates every enable and disable marker in text and returns
// them ordered by start offset. Occurrences of each literal are found
// left to right without overlap.
//
// Unless opts.LiteralMarkers is set, a do() directly preceded by a word byte
// (letter, digit, underscore) belongs to a longer identifier such as
// "undo()" and does not enable anything. don't() is always literal.
func IndexToggles(text string, opts Options) []ToggleMark {
	var marks []ToggleMark
	for _, kind := range []MarkerKind{Enable, Disable} {
		bounded := kind == Enable && !opts.LiteralMarkers
		for _, span := range findLiteral(text, kind.Literal(), bounded) {
			marks = append(marks, ToggleMark{Span: span, Enables: kind == Enable})
		}
	}

	// Stable so equal starts keep discovery order.
	sort.SliceStable(marks, func(i, j int) bool {
		return marks[i].Span.Start < marks[j].Span.Start
	})
	return marks
}

// findLiteral returns the spans of all non-overlapping occurrences of lit.
func findLiteral(text, lit string, bounded bool) []Span {
	var spans []Span
	pos := 0
	for pos < len(text) {
		i := strings.Index(text[pos:], lit)
		if i < 0 {
			break
		}
		start := pos + i
		if bounded && start > 0 && isWordByte(text[start-1]) {
			pos = start + 1
			continue
		}
		end := start + len(lit)
		spans = append(spans, Span{Start: start, End: end})
		pos = end
	}
	return spans
}

func isWordByte(ch byte) bool {
	return ch == '_' || isDigit(ch) || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
