package raw

import (
	"sync/atomic"

	"github.com/kolkov/futexsync/internal/monitor/futex"
)

// Barrier is a reusable rendezvous point for a fixed number of threads.
//
// Arrivals are counted in waiting; the thread whose arrival completes the
// round resets the counter, advances the generation word seq, and wakes
// everyone parked on it. Waiters key their futex wait on the generation
// they observed before arriving, so a wake from a later round can never be
// confused with the one they are owed.
//
// The counter reset is ordered before the seq increment, and a thread can
// only start the next round after observing the increment, so the counter
// is always back at zero before any next-round arrival is counted.
type Barrier struct {
	waiting uint32
	seq     uint32
	total   uint32
}

// NewBarrier returns a barrier that releases its participants once n of
// them have arrived. It panics if n is zero: a zero-participant round could
// never complete.
func NewBarrier(n uint32) *Barrier {
	if n == 0 {
		panic("futexsync: barrier requires at least one participant")
	}
	return &Barrier{total: n}
}

// Wait blocks until all participants of the current round have arrived.
//
// Exactly one arbitrary participant per round observes true: whichever
// thread's arrival lands exactly on the configured total. Calling Wait more
// times per round than the barrier was configured for is a fatal contract
// violation and panics.
func (b *Barrier) Wait() bool {
	seq := atomic.LoadUint32(&b.seq)
	arrived := atomic.AddUint32(&b.waiting, 1)
	switch {
	case arrived < b.total:
		for atomic.LoadUint32(&b.seq) == seq {
			futex.Wait(&b.seq, seq)
		}
		return false
	case arrived == b.total:
		atomic.StoreUint32(&b.waiting, 0)
		atomic.AddUint32(&b.seq, 1)
		futex.Wake(&b.seq, futex.WakeAll)
		return true
	default:
		panic("futexsync: too many waiters")
	}
}
