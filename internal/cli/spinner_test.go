package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinner_StartStop(t *testing.T) {
	s := newSpinner("Solving network...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()
}

func TestSpinner_ParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Rendering SVG...")
	s.Start()
	cancel()

	// Give the animation goroutine time to notice.
	time.Sleep(100 * time.Millisecond)
	if !s.Cancelled() {
		t.Error("spinner should report cancelled after parent context cancellation")
	}
}

func TestSpinner_Timeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinnerWithContext(ctx, "Waiting on solver...")
	s.Start()

	time.Sleep(100 * time.Millisecond)
	if !s.Cancelled() {
		t.Error("spinner should report cancelled after context timeout")
	}
}

func TestSpinner_StopIsIdempotent(t *testing.T) {
	s := newSpinner("Solving network...")
	s.Start()

	// Repeated stops must not panic or block.
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinner_StopWithStatus(t *testing.T) {
	s := newSpinner("Solving network...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithSuccess("Forest written")

	s = newSpinner("Rendering SVG...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithError("graphviz failed")
}
