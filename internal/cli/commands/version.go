package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display mulscan version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mulscan v%s\n", info.Version)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Corrupted memory instruction scanner")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", info.GitCommit)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", info.BuildDate)
		},
	}
}
