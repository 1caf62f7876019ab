// Package futex is the thin syscall surface over the Linux futex facility.
//
// It exposes exactly the three operations the synchronization state machines
// above it are built on:
//
//   - Wait blocks the calling thread on a 32-bit word while it still holds
//     an expected value.
//   - Wake unblocks up to n threads parked on a word.
//   - Requeue wakes up to nWake threads parked on a word and migrates up to
//     nRequeue of the remainder to park on a different word, without fully
//     waking them.
//
// All three may return spuriously (signal delivery, value mismatch). Callers
// own the re-check loop; this package never retries on their behalf.
//
// The package requires Linux. The futex word must stay addressable for as
// long as any thread may be parked on it, which the callers guarantee by
// embedding the word in the synchronization object itself.
package futex
