package monitor

import "github.com/kolkov/futexsync/internal/monitor/raw"

// DefaultSpins is the spin budget used for every acquisition and release
// performed through the safe API.
const DefaultSpins = raw.DefaultSpins

// Mutex guards one value of type T. The value is reachable only through a
// Guard obtained from Lock or TryLock, so holding the lock and having
// access to the value are the same thing.
//
// A Mutex must not be copied after first use.
type Mutex[T any] struct {
	lock  raw.Mutex
	value T
}

// New returns a Mutex guarding value. The lock starts released.
func New[T any](value T) *Mutex[T] {
	return &Mutex[T]{value: value}
}

// Lock acquires the mutex, blocking until it is available, and returns the
// guard holding exclusive access to the value. It never fails.
func (m *Mutex[T]) Lock() *Guard[T] {
	m.lock.Lock(DefaultSpins)
	return &Guard[T]{mutex: m}
}

// TryLock attempts to acquire the mutex without blocking. The second return
// value reports whether the guard was obtained; failure is an ordinary
// outcome callers branch on, not an error.
func (m *Mutex[T]) TryLock() (*Guard[T], bool) {
	if !m.lock.TryLock() {
		return nil, false
	}
	return &Guard[T]{mutex: m}, true
}

// Guard is the proof of current exclusive ownership of the value inside a
// Mutex. At most one live Guard exists per Mutex at any time.
//
// A Guard is created by Lock or TryLock, consumed by CondVar.Wait, and
// retired by Unlock. Using it after either panics.
type Guard[T any] struct {
	mutex    *Mutex[T]
	released bool
}

// Value returns the guarded value for reading and writing. The returned
// pointer must not be retained past Unlock or across CondVar.Wait; it is
// only meaningful while this guard is live.
func (g *Guard[T]) Value() *T {
	if g.released {
		panic("futexsync: use of released guard")
	}
	return &g.mutex.value
}

// Unlock releases the mutex. Each guard is released exactly once; a second
// Unlock, or an Unlock of a guard consumed by CondVar.Wait, panics.
func (g *Guard[T]) Unlock() {
	if g.released {
		panic("futexsync: guard released twice")
	}
	g.released = true
	g.mutex.lock.Unlock(DefaultSpins)
}
