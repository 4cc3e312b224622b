package animation

import "testing"

func TestLinearTimedAnimation_Sequence(t *testing.T) {
	a, err := NewLinearTimedAnimation(LinearTimedConfig{
		Frames:  []int{0, 1, 2},
		Timings: []float64{0.1},
		Grid:    grid4x4,
		Row:     2,
	})
	if err != nil {
		t.Fatalf("NewLinearTimedAnimation error: %v", err)
	}

	if got := a.CurrentRenderIndex().Index; got != 8 {
		t.Fatalf("Expected initial index 8, got %d", got)
	}

	for _, want := range []int{8, 9, 10} {
		frame, alive := a.Advance(0.1)
		if !alive {
			t.Fatal("Unexpected terminal signal")
		}
		if frame.Index != want {
			t.Errorf("Expected index %d, got %d", want, frame.Index)
		}
	}

	if _, alive := a.Advance(0.1); alive {
		t.Error("Expected terminal signal on N+1th advance")
	}
}

func TestLinearTimedAnimation_RepeatingWraps(t *testing.T) {
	a, err := NewLinearTimedAnimation(LinearTimedConfig{
		Frames:    []int{3, 2},
		Timings:   []float64{0.1, 0.1},
		Grid:      grid4x4,
		Row:       0,
		Repeating: true,
	})
	if err != nil {
		t.Fatalf("NewLinearTimedAnimation error: %v", err)
	}

	var got []int
	for range 5 {
		frame, alive := a.Advance(0.1)
		if !alive {
			t.Fatal("Repeating animation must never terminate")
		}
		got = append(got, frame.Column)
	}

	want := []int{3, 2, 3, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Advance %d: expected column %d, got %d", i+1, want[i], got[i])
		}
	}
}

func TestLinearTimedAnimation_Reset(t *testing.T) {
	a, _ := NewLinearTimedAnimation(LinearTimedConfig{
		Frames:    []int{0, 1, 2},
		Timings:   []float64{0.1},
		Grid:      grid4x4,
		Row:       1,
		Repeating: true,
	})

	a.Advance(0.1)
	a.Advance(0.1)
	frame := a.Reset()

	if frame.Index != 4 || a.Cursor() != 1 {
		t.Errorf("Expected reset to index 4 cursor 1, got index %d cursor %d", frame.Index, a.Cursor())
	}
}
