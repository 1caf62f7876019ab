package monitor_test

import (
	"fmt"

	"github.com/kolkov/futexsync/monitor"
)

// ExampleMutex shows the basic lock / mutate / unlock cycle. The guarded
// value is only reachable through the guard.
func ExampleMutex() {
	counter := monitor.New(0)

	g := counter.Lock()
	*g.Value() += 42
	g.Unlock()

	g = counter.Lock()
	fmt.Println(*g.Value())
	g.Unlock()
	// Output: 42
}

// ExampleMutex_TryLock branches on lock availability instead of blocking.
func ExampleMutex_TryLock() {
	m := monitor.New("idle")

	g := m.Lock()
	if _, ok := m.TryLock(); !ok {
		fmt.Println("already held")
	}
	g.Unlock()
	// Output: already held
}

// ExampleCondVar waits for a producer to publish work. Wait consumes the
// guard and hands back a fresh one once the lock is held again.
func ExampleCondVar() {
	queue := monitor.New([]string(nil))
	ready := monitor.NewCondVar[[]string]()

	go func() {
		g := queue.Lock()
		*g.Value() = append(*g.Value(), "job")
		g.Unlock()
		ready.NotifyOne()
	}()

	g := queue.Lock()
	for len(*g.Value()) == 0 {
		g = ready.Wait(g)
	}
	fmt.Println((*g.Value())[0])
	g.Unlock()
	// Output: job
}

// ExampleBarrier: the participant completing the round is told so.
func ExampleBarrier() {
	b := monitor.NewBarrier(1)
	fmt.Println(b.Wait())
	// Output: true
}
