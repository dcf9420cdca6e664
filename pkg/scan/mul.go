package scan

import (
	"math"
	"math/bits"
	"strconv"
	"strings"
)

const mulPrefix = "mul("

// Match is one well-formed mul(X,Y) instruction.
type Match struct {
	Span  Span // offsets into the scanned text
	Left  int64
	Right int64
}

// Product returns Left * Right.
func (m Match) Product() int64 {
	return m.Left * m.Right
}

// FindMuls scans text for mul(X,Y) where X and Y are runs of ASCII digits and
// no other byte appears anywhere in the instruction. Matches are leftmost
// first and never overlap. A candidate that breaks the grammar, or whose
// operands or product overflow int64, is dropped and scanning resumes one
// byte after where it started, so "mul(mul(2,3)" still yields mul(2,3).
func FindMuls(text string) []Match {
	var matches []Match
	pos := 0
	for pos < len(text) {
		i := strings.Index(text[pos:], mulPrefix)
		if i < 0 {
			break
		}
		start := pos + i
		m, ok := matchMul(text, start)
		if !ok {
			pos = start + 1
			continue
		}
		matches = append(matches, m)
		pos = m.Span.End
	}
	return matches
}

// matchMul tries to read a full instruction starting at the "mul(" at start.
func matchMul(text string, start int) (Match, bool) {
	left, p, ok := readNumber(text, start+len(mulPrefix))
	if !ok || p >= len(text) || text[p] != ',' {
		return Match{}, false
	}
	right, p, ok := readNumber(text, p+1)
	if !ok || p >= len(text) || text[p] != ')' {
		return Match{}, false
	}
	if !productFits(left, right) {
		return Match{}, false
	}
	return Match{
		Span:  Span{Start: start, End: p + 1},
		Left:  left,
		Right: right,
	}, true
}

// productFits reports whether left*right fits in an int64. Both operands
// are non-negative.
func productFits(left, right int64) bool {
	hi, lo := bits.Mul64(uint64(left), uint64(right))
	return hi == 0 && lo <= math.MaxInt64
}

// readNumber reads one or more digits at p. A run too large for int64 is
// rejected like any other malformed operand.
func readNumber(text string, p int) (int64, int, bool) {
	end := p
	for end < len(text) && isDigit(text[end]) {
		end++
	}
	if end == p {
		return 0, p, false
	}
	n, err := strconv.ParseInt(text[p:end], 10, 64)
	if err != nil {
		return 0, p, false
	}
	return n, end, true
}

// SumProducts adds up the products of all matches.
func SumProducts(matches []Match) int64 {
	var sum int64
	for _, m := range matches {
		sum += m.Product()
	}
	return sum
}

// Sum scans text and returns the sum of all instruction products.
func Sum(text string) int64 {
	return SumProducts(FindMuls(text))
}
