package monitor

import "github.com/kolkov/futexsync/internal/monitor/raw"

// Barrier is a reusable rendezvous point for a fixed number of threads.
// No participant of a round proceeds until every participant has arrived.
type Barrier struct {
	raw *raw.Barrier
}

// NewBarrier returns a barrier for n participating threads. It panics if
// n is not positive.
func NewBarrier(n int) *Barrier {
	if n <= 0 {
		panic("futexsync: barrier requires at least one participant")
	}
	return &Barrier{raw: raw.NewBarrier(uint32(n))}
}

// Wait blocks until all n participants of the current round have called
// Wait, then releases them together. Exactly one arbitrary participant per
// round observes true. The barrier is immediately reusable for the next
// round. A round receiving more than n calls panics.
func (b *Barrier) Wait() bool {
	return b.raw.Wait()
}
