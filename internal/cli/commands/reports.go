package commands

import (
	"fmt"

	"github.com/leapstack-labs/mulscan/internal/cli/output"
	"github.com/leapstack-labs/mulscan/internal/input"
	"github.com/leapstack-labs/mulscan/pkg/report"
	"github.com/spf13/cobra"
)

// reportSet is the JSON shape of one tallied set of reports.
type reportSet struct {
	Name     string `json:"name"`
	Total    int    `json:"total"`
	Safe     int    `json:"safe"`
	Dampened int    `json:"safe_with_dampener"`
}

// NewReportsCommand creates the reports command.
func NewReportsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "Count safe level reports, with and without the dampener",
		Long: `Read one report of whitespace separated levels per line and count the
reports whose levels change monotonically by 1 to 3 at every step. The
dampener count also accepts reports that become safe after removing a
single level.

The sample reports are tallied first unless --no-examples is set.`,
		Example: `  mulscan reports --reports levels.txt`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReports(cmd)
		},
	}
}

func runReports(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer

	reports, err := input.LoadReports(cc.Cfg.ReportsPath)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		r.Warn(fmt.Sprintf("no reports found in %s", cc.Cfg.ReportsPath))
	}

	var sets []reportSet
	if !cc.Cfg.NoExamples {
		sets = append(sets, tallySet("examples", report.Examples()))
	}
	sets = append(sets, tallySet(cc.Cfg.ReportsPath, reports))

	for _, s := range sets {
		cc.Logger.Debug("tallied reports", "name", s.Name, "total", s.Total, "safe", s.Safe, "dampened", s.Dampened)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(sets)
	case output.ModeMarkdown:
		for _, s := range sets {
			r.Header(2, s.Name)
			printTally(r, s)
			r.Println()
		}
	default:
		for _, s := range sets {
			printTally(r, s)
		}
	}
	return nil
}

func tallySet(name string, reports []report.Report) reportSet {
	s := report.Tally(reports)
	return reportSet{Name: name, Total: s.Total, Safe: s.Safe, Dampened: s.Dampened}
}

func printTally(r *output.Renderer, s reportSet) {
	r.Printf("Number of safe reports: %d\n", s.Safe)
	r.Printf("Number of safe reports with dampener: %d\n", s.Dampened)
}
