// Package monitor provides futex-backed synchronization primitives that tie
// lock ownership to exclusive access to the data the lock protects.
//
// A Mutex[T] owns its payload. The only way to reach the payload is through
// a Guard[T], and the only way to obtain a Guard is to acquire the lock:
//
//	m := monitor.New(make([]int, 0, 16))
//	g := m.Lock()
//	*g.Value() = append(*g.Value(), 42)
//	g.Unlock()
//
// A CondVar[T] lets a thread holding a guard wait for some predicate of the
// guarded value without missing the notification that makes it true. Wait
// consumes the guard, atomically releases the lock while the thread is
// parked, and hands back a fresh guard once the lock is held again:
//
//	queue := monitor.New([]int(nil))
//	ready := monitor.NewCondVar[[]int]()
//
//	// consumer
//	g := queue.Lock()
//	for len(*g.Value()) == 0 {
//		g = ready.Wait(g)
//	}
//	item := (*g.Value())[0]
//	*g.Value() = (*g.Value())[1:]
//	g.Unlock()
//
//	// producer
//	g := queue.Lock()
//	*g.Value() = append(*g.Value(), item)
//	g.Unlock()
//	ready.NotifyOne()
//
// A Barrier releases a fixed number of threads together and reports, in
// exactly one arbitrary thread per round, that the round completed.
//
// # Contract
//
// Go has no borrow checker, so the exclusivity invariant is enforced at
// runtime and by convention: a released guard panics on use, and callers
// must not retain the *T returned by Value past Unlock or across Wait. A
// guard may be handed to another goroutine; exclusivity, not goroutine
// identity, is the safety property. Locking a Mutex recursively from the
// thread that already holds it deadlocks by contract.
//
// No operation takes a timeout and none can be cancelled: a parked thread
// stays parked until a matching notification arrives. This is a documented
// limitation, not a configuration knob.
//
// The package requires Linux; all blocking ultimately lands in the kernel's
// futex wait queues.
package monitor
