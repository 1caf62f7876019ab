package monitor

import "github.com/kolkov/futexsync/internal/monitor/raw"

// CondVar lets a thread holding a Guard[T] wait for a predicate of the
// guarded value to become true without missing the notification that makes
// it true.
//
// A CondVar binds itself to the mutex behind the first guard it is waited
// on; waiting with a guard from a different Mutex[T] afterwards panics.
// The type parameter matches the condvar to its mutex's payload so a guard
// can be consumed and returned across the suspend point.
type CondVar[T any] struct {
	raw raw.CondVar
}

// NewCondVar returns a condition variable not yet bound to any mutex.
func NewCondVar[T any]() *CondVar[T] {
	return &CondVar[T]{}
}

// Wait consumes g, atomically (from the guarded value's perspective)
// releases its mutex, parks until notified, reacquires the mutex, and
// returns a fresh guard over the same value.
//
// The consumed guard is dead: using it after Wait returns panics. Spurious
// wakeups are possible, so callers re-check their predicate in a loop:
//
//	for !condition(*g.Value()) {
//		g = cv.Wait(g)
//	}
func (c *CondVar[T]) Wait(g *Guard[T]) *Guard[T] {
	if g.released {
		panic("futexsync: wait with released guard")
	}
	g.released = true
	c.raw.Wait(&g.mutex.lock)
	return &Guard[T]{mutex: g.mutex}
}

// NotifyOne unblocks one waiting thread, if any.
func (c *CondVar[T]) NotifyOne() {
	c.raw.NotifyOne()
}

// NotifyAll unblocks every waiting thread. Waiters beyond the first are
// handed directly to the bound mutex's wait queue, so they reacquire the
// lock one at a time instead of stampeding for it.
func (c *CondVar[T]) NotifyAll() {
	c.raw.NotifyAll()
}
