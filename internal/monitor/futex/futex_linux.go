//go:build linux

package futex

import (
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/sys/unix"
)

// WakeAll is the waiter count that stands in for "every thread parked on
// this word" in Wake and Requeue calls.
const WakeAll = math.MaxInt32

// Futex operation codes from the Linux uapi (<linux/futex.h>);
// golang.org/x/sys/unix exports SYS_FUTEX but not these.
const (
	FUTEX_WAIT         = 0
	FUTEX_WAKE         = 1
	FUTEX_REQUEUE      = 3
	FUTEX_PRIVATE_FLAG = 128
)

// Wait blocks the calling thread on addr while *addr still equals expected.
//
// It returns when another thread issues a Wake (or Requeue) against addr,
// when the value at addr no longer equals expected, or spuriously on signal
// delivery. Callers must re-check their own predicate after every return;
// Wait itself never loops.
func Wait(addr *uint32, expected uint32) {
	_, _, errno := unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(FUTEX_WAIT|FUTEX_PRIVATE_FLAG),
		uintptr(expected),
		0, // no timeout: waits here are unbounded by contract
		0,
		0,
	)
	switch errno {
	case 0:
	case unix.EAGAIN:
		// *addr != expected at syscall entry; the wakeup already happened.
	case unix.EINTR:
		// Signal delivery. Treated as a spurious return.
	default:
		panic(fmt.Sprintf("futexsync: futex wait failed: %v", errno))
	}
}

// Wake unblocks up to n threads parked on addr and returns the number of
// threads actually woken.
func Wake(addr *uint32, n int) int {
	woken, _, errno := unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(FUTEX_WAKE|FUTEX_PRIVATE_FLAG),
		uintptr(n),
		0,
		0,
		0,
	)
	if errno != 0 {
		panic(fmt.Sprintf("futexsync: futex wake failed: %v", errno))
	}
	return int(woken)
}

// Requeue wakes up to nWake threads parked on addr and migrates up to
// nRequeue of the remaining ones to park on target instead, without waking
// them. It returns the number of threads woken.
//
// Migrated threads resume exactly as if they had originally parked on
// target, so whoever next wakes target is responsible for them.
func Requeue(addr *uint32, nWake, nRequeue int, target *uint32) int {
	woken, _, errno := unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(FUTEX_REQUEUE|FUTEX_PRIVATE_FLAG),
		uintptr(nWake),
		uintptr(nRequeue), // val2: rides in the timeout slot for requeue ops
		uintptr(unsafe.Pointer(target)),
		0,
	)
	if errno != 0 {
		panic(fmt.Sprintf("futexsync: futex requeue failed: %v", errno))
	}
	return int(woken)
}
