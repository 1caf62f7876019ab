package monitor_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/kolkov/futexsync/monitor"
)

// mailbox is a capacity-one queue used by the producer/consumer tests.
type mailbox struct {
	val  int
	full bool
}

// TestCondVarProducerConsumer pushes items through a capacity-one mailbox
// guarded by one mutex and two condition variables. Items must arrive in
// order with no deadlock.
func TestCondVarProducerConsumer(t *testing.T) {
	const items = 5000

	box := monitor.New(mailbox{})
	notFull := monitor.NewCondVar[mailbox]()
	notEmpty := monitor.NewCondVar[mailbox]()

	var eg errgroup.Group

	eg.Go(func() error {
		for i := 0; i < items; i++ {
			g := box.Lock()
			for g.Value().full {
				g = notFull.Wait(g)
			}
			g.Value().val = i
			g.Value().full = true
			g.Unlock()
			notEmpty.NotifyOne()
		}
		return nil
	})

	got := make([]int, 0, items)
	eg.Go(func() error {
		for i := 0; i < items; i++ {
			g := box.Lock()
			for !g.Value().full {
				g = notEmpty.Wait(g)
			}
			got = append(got, g.Value().val)
			g.Value().full = false
			g.Unlock()
			notFull.NotifyOne()
		}
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- eg.Wait() }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(60 * time.Second):
		t.Fatal("producer/consumer deadlocked")
	}

	require.Len(t, got, items)
	for i, v := range got {
		if v != i {
			t.Fatalf("item %d = %d, want %d", i, v, i)
		}
	}
}

// TestCondVarWaitReturnsLiveGuard: the guard handed back by Wait sees the
// state the notifier published, and the consumed guard is dead.
func TestCondVarWaitReturnsLiveGuard(t *testing.T) {
	m := monitor.New(false)
	cv := monitor.NewCondVar[bool]()

	locked := make(chan struct{})
	go func() {
		<-locked // only run once the waiter holds the lock
		g := m.Lock()
		*g.Value() = true
		g.Unlock()
		cv.NotifyOne()
	}()

	g := m.Lock()
	consumed := g
	close(locked)
	for !*g.Value() {
		g = cv.Wait(g)
	}

	assert.True(t, *g.Value())
	assert.NotSame(t, consumed, g, "Wait returned the consumed guard")
	assert.PanicsWithValue(t, "futexsync: use of released guard", func() { consumed.Value() })
	g.Unlock()
}

// TestCondVarWaitWithReleasedGuardPanics: a retired guard cannot be waited
// with.
func TestCondVarWaitWithReleasedGuardPanics(t *testing.T) {
	m := monitor.New(0)
	cv := monitor.NewCondVar[int]()

	g := m.Lock()
	g.Unlock()

	assert.PanicsWithValue(t, "futexsync: wait with released guard", func() { cv.Wait(g) })
}

// TestCondVarNotifyAllLiveness parks several waiters, satisfies the
// predicate, broadcasts once, and requires every waiter to observe it
// exactly once.
func TestCondVarNotifyAllLiveness(t *testing.T) {
	const waiters = 6

	type state struct {
		ready    bool
		waiting  int
		observed int
	}

	m := monitor.New(state{})
	cv := monitor.NewCondVar[state]()

	var eg errgroup.Group
	for i := 0; i < waiters; i++ {
		eg.Go(func() error {
			g := m.Lock()
			g.Value().waiting++
			for !g.Value().ready {
				g = cv.Wait(g)
			}
			g.Value().observed++
			g.Unlock()
			return nil
		})
	}

	for {
		g := m.Lock()
		w := g.Value().waiting
		g.Unlock()
		if w == waiters {
			break
		}
		time.Sleep(time.Millisecond)
	}

	g := m.Lock()
	g.Value().ready = true
	g.Unlock()
	cv.NotifyAll()

	done := make(chan error, 1)
	go func() { done <- eg.Wait() }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(30 * time.Second):
		t.Fatal("waiters not released by NotifyAll")
	}

	g = m.Lock()
	assert.Equal(t, waiters, g.Value().observed)
	g.Unlock()
}
