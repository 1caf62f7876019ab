package commands

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kolkov/futexsync/monitor"
)

// NewBarrierCmd builds the barrier rendezvous stress command.
func NewBarrierCmd() *cobra.Command {
	var (
		workers int
		rounds  int
	)

	cmd := &cobra.Command{
		Use:   "barrier",
		Short: "Run many rounds through one barrier and verify one winner per round.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBarrierStress(workers, rounds)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 4, "participants per round")
	cmd.Flags().IntVar(&rounds, "rounds", 1000, "consecutive rounds through the same barrier")

	return cmd
}

func runBarrierStress(workers, rounds int) error {
	if workers < 1 || rounds < 1 {
		return fmt.Errorf("workers and rounds must be positive (got %d, %d)", workers, rounds)
	}

	b := monitor.NewBarrier(workers)
	wins := make([]atomic.Uint32, rounds)
	start := time.Now()

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			for r := 0; r < rounds; r++ {
				if b.Wait() {
					wins[r].Add(1)
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for r := range wins {
		if got := wins[r].Load(); got != 1 {
			return fmt.Errorf("round %d had %d winners, want exactly 1", r, got)
		}
	}

	log.Info("barrier stress passed",
		"workers", workers,
		"rounds", rounds,
		"elapsed", time.Since(start))

	return nil
}
