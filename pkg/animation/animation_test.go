package animation

import "testing"

func mustTimed(t *testing.T, name Name, cfg TimedConfig) Animation {
	t.Helper()
	a, err := NewTimed(name, cfg)
	if err != nil {
		t.Fatalf("NewTimed(%s) error: %v", name, err)
	}
	return a
}

func TestAnimation_Kind(t *testing.T) {
	timed := mustTimed(t, "attack", TimedConfig{Frames: []int{0}, Timings: []float64{0.1}, Grid: grid4x4})
	transform, _ := NewTransform("walk", TransformConfig{Frames: []int{0}, MetersPerFrame: 1, Grid: grid4x4})
	linearTimed, _ := NewLinearTimed("spark", LinearTimedConfig{Frames: []int{0}, Timings: []float64{0.1}, Grid: grid4x4})
	linearTransform, _ := NewLinearTransform("roll", LinearTransformConfig{Frames: []int{0}, MetersPerFrame: 1, Grid: grid4x4})
	single, _ := NewSingleFrame("idle", SingleFrameConfig{Column: 0, Grid: grid4x4})

	tests := []struct {
		anim Animation
		want Kind
	}{
		{Animation{}, KindNone},
		{timed, KindTimed},
		{transform, KindTransform},
		{linearTimed, KindLinearTimed},
		{linearTransform, KindLinearTransform},
		{single, KindSingleFrame},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := tt.anim.Kind(); got != tt.want {
				t.Errorf("Expected kind %s, got %s", tt.want, got)
			}
		})
	}
}

func TestAnimation_NoneSentinelPanics(t *testing.T) {
	var none Animation
	if !none.IsNone() {
		t.Fatal("Zero value should be None")
	}

	for name, op := range map[string]func(){
		"Name":               func() { none.Name() },
		"Reset":              func() { none.Reset() },
		"CurrentRenderIndex": func() { none.CurrentRenderIndex(Left) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected %s on None to panic", name)
				}
			}()
			op()
		})
	}
}

func TestAnimation_BlockingInfo(t *testing.T) {
	timed := mustTimed(t, "attack", TimedConfig{
		Frames: []int{0}, Timings: []float64{0.1}, Grid: grid4x4,
		Blocking: true, BlockingPriority: 3,
	})
	blocking, priority, prioritized := timed.BlockingInfo()
	if !blocking || priority != 3 || !prioritized {
		t.Errorf("Expected (true, 3, true), got (%v, %d, %v)", blocking, priority, prioritized)
	}

	walk, _ := NewTransform("walk", TransformConfig{Frames: []int{0}, MetersPerFrame: 1, Grid: grid4x4})
	blocking, priority, prioritized = walk.BlockingInfo()
	if blocking || priority != 0 || prioritized {
		t.Errorf("Expected transform to be non-blocking without priority, got (%v, %d, %v)", blocking, priority, prioritized)
	}
}

func TestAnimation_CloneIsIndependent(t *testing.T) {
	template := mustTimed(t, "loop", TimedConfig{
		Frames: []int{0, 1, 2}, Timings: []float64{0.1}, Grid: grid4x4, Repeating: true,
	})
	clone := template.Clone()

	c, _ := clone.AsTimed()
	c.Advance(Down, 0.1)
	c.Advance(Down, 0.1)

	orig, _ := template.AsTimed()
	if orig.Cursor() != 1 {
		t.Errorf("Expected template cursor untouched at 1, got %d", orig.Cursor())
	}
	if c.Cursor() != 3 {
		t.Errorf("Expected clone cursor 3, got %d", c.Cursor())
	}
	if clone.Name() != "loop" {
		t.Errorf("Expected clone name loop, got %s", clone.Name())
	}
}

func TestAnimation_ResetTo(t *testing.T) {
	anim := mustTimed(t, "attack", TimedConfig{
		Frames:     []int{2, 3},
		Timings:    []float64{0.1},
		Grid:       grid4x4,
		Directions: FlipBased{XRow: 1, LeftIsFlipped: true},
	})
	timed, _ := anim.AsTimed()
	timed.Advance(Right, 0.1)
	timed.Advance(Right, 0.1)

	frame := anim.ResetTo(Left)
	if frame.Column != 2 || frame.Row != 1 || !frame.FlipX {
		t.Errorf("Expected column 2 row 1 flipped, got %+v", frame)
	}
}
