package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kolkov/futexsync/monitor"
)

// NewVersionCmd builds the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Run: func(cmd *cobra.Command, _ []string) {
			info := monitor.GetInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "syncstress %s (%s)\n", info.Version, info.Backend)
		},
	}
}
