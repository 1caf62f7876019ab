package commands

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kolkov/futexsync/monitor"
)

// NewMutexCmd builds the mutual-exclusion stress command.
func NewMutexCmd() *cobra.Command {
	var (
		workers int
		iters   int
	)

	cmd := &cobra.Command{
		Use:   "mutex",
		Short: "Hammer one guarded counter from many goroutines and verify the total.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runMutexStress(workers, iters)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 8, "concurrent goroutines")
	cmd.Flags().IntVar(&iters, "iters", 100000, "lock/increment/unlock cycles per goroutine")

	return cmd
}

func runMutexStress(workers, iters int) error {
	if workers < 1 || iters < 1 {
		return fmt.Errorf("workers and iters must be positive (got %d, %d)", workers, iters)
	}

	counter := monitor.New(0)
	start := time.Now()

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			for i := 0; i < iters; i++ {
				g := counter.Lock()
				*g.Value()++
				g.Unlock()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	g := counter.Lock()
	got := *g.Value()
	g.Unlock()

	want := workers * iters
	if got != want {
		return fmt.Errorf("mutual exclusion violated: counter = %d, want %d", got, want)
	}

	log.Info("mutex stress passed",
		"workers", workers,
		"iters", iters,
		"counter", got,
		"elapsed", time.Since(start))

	return nil
}
