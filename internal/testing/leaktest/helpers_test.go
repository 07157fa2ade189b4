package leaktest

import (
	"runtime"
	"testing"
	"time"
)

func TestRun_NoLeak(t *testing.T) {
	Run(t, func() {
		done := make(chan struct{})
		go func() { close(done) }()
		<-done
	})
}

func TestSettle_SeesRunningGoroutine(t *testing.T) {
	before := runtime.NumGoroutine()
	stop := make(chan struct{})
	go func() { <-stop }()

	if after := settle(before, 50*time.Millisecond); after <= before {
		t.Fatalf("expected goroutine count above %d, got %d", before, after)
	}

	close(stop)
	if after := settle(before, settleTimeout); after > before {
		t.Fatalf("goroutine did not exit: before=%d after=%d", before, after)
	}
}
