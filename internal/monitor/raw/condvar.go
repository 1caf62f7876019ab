package raw

import (
	"sync/atomic"

	"github.com/kolkov/futexsync/internal/monitor/futex"
)

// CondVar is a sequence-counted condition variable.
//
// Waiters park on seq, which is bumped by every notification; a waiter that
// read seq before the bump returns from its futex wait immediately on value
// mismatch, so a notification issued between releasing the mutex and
// parking is never lost.
//
// A CondVar binds itself to the first mutex it is waited on and must be
// used with that mutex for the rest of its life. The check is unconditional
// rather than debug-only because the failure mode of mixing mutexes is
// silent state corruption, and the check costs one atomic compare.
type CondVar struct {
	seq   uint32
	mutex atomic.Pointer[Mutex]
}

// Wait atomically releases m, parks until notified, and reacquires m before
// returning. The caller must hold m; spurious returns are possible, so the
// caller re-checks its predicate in a loop.
//
// Wait panics if m is not held or if the CondVar was previously waited on
// with a different mutex.
func (c *CondVar) Wait(m *Mutex) {
	if atomic.LoadUint32(&m.state) == unlocked {
		panic("futexsync: condvar wait on unlocked mutex")
	}

	seq := atomic.LoadUint32(&c.seq)

	// Bind on first use. Concurrent first waiters racing to bind the same
	// mutex converge on it; a second distinct mutex is a contract violation.
	if !c.mutex.CompareAndSwap(nil, m) && c.mutex.Load() != m {
		panic("futexsync: condvar used with more than one mutex")
	}

	m.Unlock(DefaultSpins)

	futex.Wait(&c.seq, seq)

	// Reacquire pessimistically: always mark the word contended. After a
	// broadcast many waiters race for the mutex, and only the contended
	// state guarantees each unlock in that convoy wakes the next waiter.
	// The cost is one superfluous wake on the next unlock when the wake
	// turned out to be for a lone waiter.
	for atomic.SwapUint32(&m.state, contended) != unlocked {
		futex.Wait(&m.state, contended)
	}
}

// NotifyOne wakes a single waiter, if any thread is waiting.
func (c *CondVar) NotifyOne() {
	atomic.AddUint32(&c.seq, 1)
	futex.Wake(&c.seq, 1)
}

// NotifyAll wakes one waiter and migrates the rest to park on the bound
// mutex's word. The mutex's own unlock path then releases them one at a
// time as the lock becomes available, instead of every waiter waking at
// once only to race for the same lock.
func (c *CondVar) NotifyAll() {
	m := c.mutex.Load()
	if m == nil {
		// Never waited on, so nobody can be parked.
		return
	}
	atomic.AddUint32(&c.seq, 1)
	futex.Requeue(&c.seq, 1, futex.WakeAll, &m.state)
}
