// Package input loads the documents and reports the CLI evaluates.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/leapstack-labs/mulscan/pkg/report"
	"github.com/leapstack-labs/mulscan/pkg/scan"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the input file read relative to the working directory.
const DefaultPath = "input.txt"

// ErrUnavailable is returned when an input source cannot be opened or read.
var ErrUnavailable = errors.New("input unavailable")

// Example is a named document with an optional expected sum.
type Example struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
	Want *int64 `yaml:"want"`
}

// Document returns the example as a scan document.
func (e Example) Document() scan.Document {
	return scan.Document{Name: e.Name, Text: e.Text}
}

// exampleFile is the on-disk layout of an example set.
type exampleFile struct {
	Examples []Example `yaml:"examples"`
}

// BuiltinExamples returns the two sample instructions shipped with the tool.
func BuiltinExamples() []Example {
	return []Example{
		{
			Name: "example 1",
			Text: "xmul(2,4)%&mul[3,7]!@^don't()mul(5,5)+do()mul(32,64]then(mul(11,8)mul(8,5))",
			Want: int64Ptr(136),
		},
		{
			Name: "example 2",
			Text: "xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))",
			Want: int64Ptr(8),
		},
	}
}

// Examples returns the built-in examples as documents.
func Examples() []scan.Document {
	builtin := BuiltinExamples()
	docs := make([]scan.Document, len(builtin))
	for i, e := range builtin {
		docs[i] = e.Document()
	}
	return docs
}

// LoadDocument reads the whole file at path as a single document.
func LoadDocument(path string) (scan.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scan.Document{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return scan.Document{Name: path, Text: string(data)}, nil
}

// LoadExamples reads a YAML example set. Unnamed examples are numbered.
func LoadExamples(path string) ([]Example, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	var f exampleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse examples file %s: %w", path, err)
	}

	for i := range f.Examples {
		if f.Examples[i].Name == "" {
			f.Examples[i].Name = "example " + strconv.Itoa(i+1)
		}
	}
	return f.Examples, nil
}

// LoadReports reads one report per line from path.
func LoadReports(path string) ([]report.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = f.Close() }()

	reports, err := report.Parse(f)
	if errors.Is(err, bufio.ErrTooLong) {
		return nil, fmt.Errorf("failed to parse reports %s: %w", path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, path, err)
	}
	return reports, nil
}

func int64Ptr(v int64) *int64 {
	return &v
}
