package animation

import (
	"math"
	"testing"
)

func TestSingleFrameAnimation_BlockingTimer(t *testing.T) {
	a, err := NewSingleFrameAnimation(SingleFrameConfig{
		Column:           2,
		Grid:             grid4x4,
		Directions:       IndexBased{Left: 1, Right: 2, Up: 3, Down: 0},
		Blocking:         true,
		BlockingPriority: 4,
		BlockingTimer:    0.5,
	})
	if err != nil {
		t.Fatalf("NewSingleFrameAnimation error: %v", err)
	}

	frame := a.Advance(Left, 0.3)
	if frame.Index != 6 {
		t.Errorf("Expected index 6 (row 1, column 2), got %d", frame.Index)
	}
	if a.BlockingFinished() {
		t.Fatal("Blocking timer should still be running")
	}
	if got := a.BlockingRemaining(); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("Expected 0.2s remaining, got %v", got)
	}

	a.Advance(Left, 0.3)
	if !a.BlockingFinished() {
		t.Fatal("Blocking timer should be finished after 0.6s")
	}
	if got := a.BlockingRemaining(); got != 0 {
		t.Errorf("Expected no remaining time after finish, got %v", got)
	}

	// 冷却结束后保持完成状态直到重置
	a.Advance(Left, 0.01)
	if !a.BlockingFinished() {
		t.Error("BlockingFinished must stay true until reset")
	}

	a.Reset()
	if a.BlockingFinished() {
		t.Error("Reset should restart blocking timer")
	}
	if got := a.BlockingRemaining(); got != 0.5 {
		t.Errorf("Expected full 0.5s after reset, got %v", got)
	}
}

func TestSingleFrameAnimation_NoTimer(t *testing.T) {
	a, err := NewSingleFrameAnimation(SingleFrameConfig{
		Column:   0,
		Grid:     grid4x4,
		Blocking: true,
	})
	if err != nil {
		t.Fatalf("NewSingleFrameAnimation error: %v", err)
	}

	a.Advance(Down, 100)
	if a.BlockingFinished() {
		t.Error("Animation without blocking timer must never finish blocking")
	}
	if got := a.BlockingRemaining(); got != 0 {
		t.Errorf("Expected 0 remaining without timer, got %v", got)
	}
}

func TestSingleFrameAnimation_StillKeepsPreviousRow(t *testing.T) {
	a, _ := NewSingleFrameAnimation(SingleFrameConfig{
		Column:     1,
		Grid:       grid4x4,
		Directions: IndexBased{Left: 1, Right: 2, Up: 3, Down: 0},
	})

	a.Advance(Up, 0.016)
	frame := a.Advance(Still, 0.016)
	if frame.Row != 3 {
		t.Errorf("Expected still to keep up row 3, got %d", frame.Row)
	}
}

func TestNewSingleFrameAnimation_ColumnOutOfRange(t *testing.T) {
	if _, err := NewSingleFrameAnimation(SingleFrameConfig{Column: 4, Grid: grid4x4}); err == nil {
		t.Error("Expected error for column outside grid")
	}
}
