package shutdown

import (
	"testing"
	"time"

	"flip-clock/internal/logger"
)

type stopFunc func()

func (f stopFunc) Shutdown() { f() }

func TestShutdown_ReverseOrderOnce(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})

	var order []string
	m.Register("first", stopFunc(func() { order = append(order, "first") }))
	m.Register("second", stopFunc(func() { order = append(order, "second") }))

	m.Shutdown()
	m.Shutdown()

	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("order = %v, want [second first]", order)
	}

	select {
	case <-m.Context().Done():
	default:
		t.Error("context not cancelled")
	}
	select {
	case <-m.Done():
	default:
		t.Error("done channel not closed")
	}
}

func TestShutdown_SlowComponentTimesOut(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	m.timeout = 20 * time.Millisecond

	release := make(chan struct{})
	defer close(release)

	ran := false
	m.Register("fast", stopFunc(func() { ran = true }))
	m.Register("stuck", stopFunc(func() { <-release }))

	start := time.Now()
	m.Shutdown()

	if time.Since(start) > time.Second {
		t.Errorf("shutdown took %s", time.Since(start))
	}
	if !ran {
		t.Error("component after the stuck one did not run")
	}
}
