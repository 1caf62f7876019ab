package commands

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kolkov/futexsync/monitor"
)

// mailbox is a capacity-one queue: the tightest possible producer/consumer
// coupling, and therefore the configuration most sensitive to lost wakeups.
type mailbox struct {
	val  int
	full bool
}

// NewCondVarCmd builds the condition-variable stress command.
func NewCondVarCmd() *cobra.Command {
	var items int

	cmd := &cobra.Command{
		Use:   "condvar",
		Short: "Stream items through a capacity-one mailbox and verify in-order delivery.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCondVarStress(items)
		},
	}

	cmd.Flags().IntVar(&items, "items", 100000, "items to push through the mailbox")

	return cmd
}

func runCondVarStress(items int) error {
	if items < 1 {
		return fmt.Errorf("items must be positive (got %d)", items)
	}

	box := monitor.New(mailbox{})
	notFull := monitor.NewCondVar[mailbox]()
	notEmpty := monitor.NewCondVar[mailbox]()
	start := time.Now()

	var eg errgroup.Group

	eg.Go(func() error {
		for i := 0; i < items; i++ {
			g := box.Lock()
			for g.Value().full {
				g = notFull.Wait(g)
			}
			g.Value().val = i
			g.Value().full = true
			g.Unlock()
			notEmpty.NotifyOne()
		}
		return nil
	})

	eg.Go(func() error {
		for i := 0; i < items; i++ {
			g := box.Lock()
			for !g.Value().full {
				g = notEmpty.Wait(g)
			}
			got := g.Value().val
			g.Value().full = false
			g.Unlock()
			notFull.NotifyOne()

			if got != i {
				return fmt.Errorf("consumed item %d, want %d: wakeup lost or reordered", got, i)
			}
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}

	log.Info("condvar stress passed",
		"items", items,
		"elapsed", time.Since(start))

	return nil
}
