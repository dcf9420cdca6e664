package commands

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/mulscan/internal/cli/output"
	"github.com/leapstack-labs/mulscan/internal/input"
	"github.com/leapstack-labs/mulscan/pkg/scan"
	"github.com/spf13/cobra"
)

// SumLinePrefix starts every text-mode result line.
const SumLinePrefix = "Sum of valid multiplications: "

// SumOptions holds options for the sum command.
type SumOptions struct {
	Check bool // fail when an example sum differs from its expected value
}

// sumResult is the JSON shape of one evaluated document.
type sumResult struct {
	Name    string `json:"name"`
	Sum     int64  `json:"sum"`
	Want    *int64 `json:"want,omitempty"`
	Marks   int    `json:"marks"`
	Matches int    `json:"matches"`
}

// NewSumCommand creates the sum command.
func NewSumCommand() *cobra.Command {
	opts := &SumOptions{}
	cmd := &cobra.Command{
		Use:   "sum",
		Short: "Sum the enabled mul instructions of the examples and the input file",
		Long: `Scan each document for mul(X,Y) instructions and print the sum of their
products. do() and don't() switch instructions on and off; text starts
enabled.

The built-in examples (or those of --examples-file) are evaluated first,
then the whole of the input file. An unreadable input file is fatal.`,
		Example: `  # Examples, then ./input.txt
  mulscan sum

  # Only a specific file
  mulscan sum --no-examples --input memory.txt

  # Verify example sums from a YAML set
  mulscan sum --examples-file examples.yaml --check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunSum(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Check, "check", false, "Fail when an example sum differs from its expected value")
	return cmd
}

// RunSum evaluates the configured documents and renders their sums.
func RunSum(cmd *cobra.Command, opts *SumOptions) error {
	cc := NewCommandContext(cmd)
	cfg := cc.Cfg
	r := cc.Renderer

	examples, err := loadExamples(cc)
	if err != nil {
		return err
	}

	// The input is read up front so a missing file aborts before any output.
	doc, err := input.LoadDocument(cfg.Input)
	if err != nil {
		return err
	}
	cc.Logger.Debug("loaded input", "path", cfg.Input, "bytes", len(doc.Text))

	items := make([]input.Example, 0, len(examples)+1)
	items = append(items, examples...)
	items = append(items, input.Example{Name: doc.Name, Text: doc.Text})

	var (
		results  []sumResult
		failures []error
	)
	for _, item := range items {
		res := scan.Evaluate(item.Document(), cfg.ScanOptions())
		cc.Logger.Debug("evaluated document",
			"name", item.Name,
			"marks", len(res.Marks),
			"matches", len(res.Matches),
			"sum", res.Sum)

		if opts.Check && item.Want != nil && *item.Want != res.Sum {
			failures = append(failures, fmt.Errorf("%s: got sum %d, want %d", item.Name, res.Sum, *item.Want))
		}

		results = append(results, sumResult{
			Name:    item.Name,
			Sum:     res.Sum,
			Want:    item.Want,
			Marks:   len(res.Marks),
			Matches: len(res.Matches),
		})
		renderSum(r, item.Name, res.Sum)
	}

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(results); err != nil {
			return err
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("example check failed: %w", errors.Join(failures...))
	}
	return nil
}

func renderSum(r *output.Renderer, name string, sum int64) {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		// written in one document after the loop
	case output.ModeMarkdown:
		r.Header(2, name)
		r.Printf("%s%d\n\n", SumLinePrefix, sum)
	default:
		r.Printf("%s%d\n", SumLinePrefix, sum)
	}
}

// loadExamples returns the example set selected by the configuration.
func loadExamples(cc *CommandContext) ([]input.Example, error) {
	cfg := cc.Cfg
	if cfg.NoExamples {
		return nil, nil
	}
	if cfg.ExamplesFile == "" {
		return input.BuiltinExamples(), nil
	}
	examples, err := input.LoadExamples(cfg.ExamplesFile)
	if err != nil {
		return nil, err
	}
	cc.Logger.Debug("loaded examples", "path", cfg.ExamplesFile, "count", len(examples))
	return examples, nil
}
