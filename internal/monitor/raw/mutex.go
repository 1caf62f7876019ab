package raw

import (
	"runtime"
	"sync/atomic"

	"github.com/kolkov/futexsync/internal/monitor/futex"
)

// DefaultSpins is the spin budget the safe layer passes to Lock and Unlock.
// 256 attempts is far past the point where yielding beats a kernel round
// trip on a held lock, while still catching short critical sections.
const DefaultSpins = 0x100

// Mutex state word values.
const (
	unlocked  uint32 = 0 // nobody holds the lock
	locked    uint32 = 1 // held, no thread is parked on the word
	contended uint32 = 2 // held, and a thread is (or may be) parked
)

// Mutex is a futex-backed mutual exclusion lock over a single 32-bit word.
//
// The word is 0 only while no thread holds the lock and 2 only while some
// thread may be parked on it. Keeping "held" and "held with waiters" apart
// is what lets Unlock skip the wake syscall in the uncontended case without
// ever stranding a parked waiter.
//
// The zero value is an unlocked mutex. A Mutex must not be copied after
// first use. Recursive locking deadlocks by contract.
type Mutex struct {
	state uint32
}

// Lock acquires the mutex, spinning up to spins times before parking in the
// kernel. A spin budget of zero goes straight to the futex path.
func (m *Mutex) Lock(spins int) {
	for i := 0; i < spins; i++ {
		if atomic.CompareAndSwapUint32(&m.state, unlocked, locked) {
			return
		}
		runtime.Gosched()
	}
	// The lock stayed held throughout the spin phase. Force the word to
	// contended and park until a swap observes it unlocked. The word is left
	// at contended even if nobody else is waiting: the eventual Unlock then
	// always issues a wake, so a parked waiter can never be stranded.
	for atomic.SwapUint32(&m.state, contended) != unlocked {
		futex.Wait(&m.state, contended)
	}
}

// Unlock releases the mutex.
//
// If the word was merely locked, no thread is parked and no syscall is
// needed. Otherwise Unlock spins up to spins times hoping a fresh locker
// claims the word; marking that locker's word contended hands it the duty
// to wake the parked waiters on its own unlock, which is cheaper than a
// wake syscall here. If no locker shows up, one waiter is woken directly.
func (m *Mutex) Unlock(spins int) {
	if atomic.SwapUint32(&m.state, unlocked) == locked {
		return
	}
	for i := 0; i < spins; i++ {
		if s := atomic.LoadUint32(&m.state); s != unlocked {
			if s == contended || atomic.CompareAndSwapUint32(&m.state, locked, contended) {
				return
			}
		}
		runtime.Gosched()
	}
	futex.Wake(&m.state, 1)
}

// TryLock attempts a single uncontended acquisition. It never spins and
// never blocks; failure is an ordinary outcome, not an error.
func (m *Mutex) TryLock() bool {
	return atomic.CompareAndSwapUint32(&m.state, unlocked, locked)
}
