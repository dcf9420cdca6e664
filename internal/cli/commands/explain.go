package commands

import (
	"fmt"

	"github.com/leapstack-labs/mulscan/internal/cli/output"
	"github.com/leapstack-labs/mulscan/internal/input"
	"github.com/leapstack-labs/mulscan/pkg/scan"
	"github.com/spf13/cobra"
)

// explainResult is the JSON shape of an explained document.
type explainResult struct {
	Name    string         `json:"name"`
	Marks   []explainMark  `json:"marks"`
	Matches []explainMatch `json:"matches"`
	Sum     int64          `json:"sum"`
}

type explainMark struct {
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type explainMatch struct {
	Instruction string `json:"instruction"`
	Left        int64  `json:"left"`
	Right       int64  `json:"right"`
	Product     int64  `json:"product"`
}

// NewExplainCommand creates the explain command.
func NewExplainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [file]",
		Short: "Show the toggle markers and instructions found in a document",
		Long: `Print the do() and don't() markers with their byte offsets, followed by
every instruction that survives filtering and its product.

Without a file argument the built-in examples are explained.`,
		Example: `  mulscan explain
  mulscan explain input.txt --output markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd, args)
		},
	}
}

func runExplain(cmd *cobra.Command, args []string) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer

	docs := input.Examples()
	if len(args) == 1 {
		doc, err := input.LoadDocument(args[0])
		if err != nil {
			return err
		}
		docs = []scan.Document{doc}
	}

	results := make([]explainResult, 0, len(docs))
	for _, doc := range docs {
		res := scan.Evaluate(doc, cc.Cfg.ScanOptions())
		results = append(results, toExplainResult(res))
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(results)
	}

	for i, res := range results {
		if i > 0 {
			r.Println()
		}
		renderExplain(r, res)
	}
	return nil
}

func toExplainResult(res scan.Result) explainResult {
	out := explainResult{
		Name:    res.Document.Name,
		Marks:   make([]explainMark, 0, len(res.Marks)),
		Matches: make([]explainMatch, 0, len(res.Matches)),
		Sum:     res.Sum,
	}
	for _, m := range res.Marks {
		out.Marks = append(out.Marks, explainMark{
			Kind:  m.Kind().String(),
			Start: m.Span.Start,
			End:   m.Span.End,
		})
	}
	for _, m := range res.Matches {
		out.Matches = append(out.Matches, explainMatch{
			Instruction: m.Span.Text(res.Enabled),
			Left:        m.Left,
			Right:       m.Right,
			Product:     m.Product(),
		})
	}
	return out
}

func renderExplain(r *output.Renderer, res explainResult) {
	r.Header(2, res.Name)

	markRows := make([][]any, 0, len(res.Marks))
	for _, m := range res.Marks {
		markRows = append(markRows, []any{m.Kind, m.Start, m.End})
	}
	r.Header(3, "Toggle markers")
	r.Table([]string{"kind", "start", "end"}, markRows)

	matchRows := make([][]any, 0, len(res.Matches))
	for _, m := range res.Matches {
		matchRows = append(matchRows, []any{m.Instruction, m.Left, m.Right, m.Product})
	}
	r.Header(3, "Instructions")
	r.Table([]string{"instruction", "left", "right", "product"}, matchRows)

	r.Println(r.Styles().Bold.Render(fmt.Sprintf("%s%d", SumLinePrefix, res.Sum)))
}
