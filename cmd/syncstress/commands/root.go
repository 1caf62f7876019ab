package commands

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kolkov/futexsync/monitor"
)

const (
	shortDesc = "Stress harness for the futexsync synchronization primitives."
	longDesc  = `syncstress drives the futexsync primitives hard from many goroutines and
verifies their correctness properties from the outside.

Each subcommand checks one property and exits non-zero if it is violated:

  mutex    mutual exclusion: N workers x K increments must total exactly N*K
  barrier  rendezvous: every round has exactly one winning participant
  condvar  no lost wakeups: items flow through a capacity-one mailbox in order
`
)

// NewRootCmd builds the syncstress command tree.
func NewRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "syncstress",
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       monitor.Version,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set the log level (debug, info, warn, error)")

	cmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		lvl, err := log.ParseLevel(logLevel)
		if err != nil {
			lvl = log.InfoLevel
		}
		log.SetLevel(lvl)
	}

	cmd.AddCommand(NewMutexCmd())
	cmd.AddCommand(NewBarrierCmd())
	cmd.AddCommand(NewCondVarCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}
