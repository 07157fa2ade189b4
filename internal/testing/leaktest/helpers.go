// Package leaktest checks that tests leave no goroutines behind, such as
// catalogue watchers or pool health checks that outlive their Close.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 500 * time.Millisecond
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker compares goroutine counts before and after a test body
type GoroutineChecker struct {
	t      testing.TB
	before int
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	return &GoroutineChecker{t: t, before: settle(0, pollInterval)}
}

// Check fails the test if more than tolerance goroutines are still running
// once the count has had settleTimeout to drop.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := settle(g.before+tolerance, settleTimeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d",
			g.before, after, leaked, tolerance)
	}
}

// Run checks fn with zero tolerance
func Run(t testing.TB, fn func()) {
	t.Helper()
	c := NewGoroutineChecker(t)
	fn()
	c.Check(0)
}

// settle polls until the goroutine count is at most target or timeout elapses,
// returning the last count seen
func settle(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.GC()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollInterval)
	}
}
