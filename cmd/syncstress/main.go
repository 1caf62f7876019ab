// Package main implements the syncstress CLI tool.
//
// syncstress hammers the futexsync primitives from many goroutines and
// verifies their correctness properties from the outside: mutual exclusion
// on a shared counter, one winner per barrier round, and in-order delivery
// through a condvar-guarded mailbox.
//
// Usage:
//
//	syncstress mutex --workers 8 --iters 100000
//	syncstress barrier --workers 4 --rounds 1000
//	syncstress condvar --items 100000
//
// Every command exits non-zero if the property it checks is violated, so
// the tool doubles as a soak test under schedulers and hardware the unit
// tests never saw.
package main

import (
	"fmt"
	"os"

	"github.com/kolkov/futexsync/cmd/syncstress/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
