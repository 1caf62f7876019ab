// Package raw implements the unguarded synchronization state machines:
// a tri-state futex mutex, a sequence-counted condition variable, and a
// generation-counted rendezvous barrier.
//
// Every primitive in this package is a small atomic state machine over one
// or two 32-bit words, designed so the uncontended path costs a single
// atomic operation and the kernel is entered only when a thread actually
// has to park. The memory-ordering pairings are load-bearing: lock
// acquisition must observe everything published by the previous unlock,
// barrier release must observe every participant's arrival, and a condvar
// waiter must observe the notifier's state mutation after it re-locks the
// mutex. Go's sync/atomic operations are sequentially consistent, which is
// strictly stronger than the acquire/release pairings the protocols need.
//
// Nothing here ties a lock to the data it protects. The monitor package
// layers that guarantee on top; code outside this module never imports raw
// directly.
package raw
