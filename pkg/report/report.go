// Package report checks level reports for safety, optionally tolerating one
// bad level.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Allowed magnitude of the difference between adjacent levels.
const (
	MinStep = 1
	MaxStep = 3
)

// MaxLineBytes bounds the length of a single report line.
const MaxLineBytes = 16 << 20

// Report is one line of levels.
type Report []int

// Validator decides whether a report is acceptable.
type Validator func(Report) bool

// IsSafe reports whether levels change strictly monotonically by steps of
// MinStep to MaxStep. Reports with fewer than two levels are safe.
func IsSafe(r Report) bool {
	increasing, decreasing := true, true
	for i := 0; i+1 < len(r); i++ {
		diff := r[i+1] - r[i]
		step := diff
		if step < 0 {
			step = -step
		}
		if step < MinStep || step > MaxStep {
			return false
		}
		if diff < 0 {
			increasing = false
		}
		if diff > 0 {
			decreasing = false
		}
	}
	return increasing || decreasing
}

// ToleratesOneRemoval reports whether valid accepts r as is, or accepts r
// with exactly one level removed.
func ToleratesOneRemoval(r Report, valid Validator) bool {
	if valid(r) {
		return true
	}
	candidate := make(Report, 0, len(r))
	for skip := range r {
		candidate = candidate[:0]
		candidate = append(candidate, r[:skip]...)
		candidate = append(candidate, r[skip+1:]...)
		if valid(candidate) {
			return true
		}
	}
	return false
}

// IsSafeWithDampener is IsSafe with one level allowed to be dropped.
func IsSafeWithDampener(r Report) bool {
	return ToleratesOneRemoval(r, IsSafe)
}

// Summary counts the outcome of a set of reports.
type Summary struct {
	Total    int
	Safe     int
	Dampened int // safe once at most one level is removed
}

// Tally evaluates every report.
func Tally(reports []Report) Summary {
	s := Summary{Total: len(reports)}
	for _, r := range reports {
		if IsSafe(r) {
			s.Safe++
		}
		if IsSafeWithDampener(r) {
			s.Dampened++
		}
	}
	return s
}

// Parse reads one report per line. Fields are separated by whitespace;
// fields that are not integers are dropped and blank lines are skipped.
func Parse(r io.Reader) ([]Report, error) {
	var reports []Report
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		levels := make(Report, 0, len(fields))
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				continue
			}
			levels = append(levels, n)
		}
		reports = append(reports, levels)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reports: %w", err)
	}
	return reports, nil
}

// Examples returns the sample reports.
func Examples() []Report {
	return []Report{
		{7, 6, 4, 2, 1},
		{1, 2, 7, 8, 9},
		{9, 7, 6, 2, 1},
		{1, 3, 2, 4, 5},
		{8, 6, 4, 4, 1},
		{1, 3, 6, 7, 9},
	}
}
