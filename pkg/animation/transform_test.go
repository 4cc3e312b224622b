package animation

import (
	"errors"
	"testing"
)

func newTestTransform(t *testing.T, cfg TransformConfig) *TransformAnimation {
	t.Helper()
	a, err := NewTransformAnimation(cfg)
	if err != nil {
		t.Fatalf("NewTransformAnimation error: %v", err)
	}
	return a
}

func TestTransformAnimation_Threshold(t *testing.T) {
	a := newTestTransform(t, TransformConfig{
		Frames:         []int{0, 1, 2, 3},
		MetersPerFrame: 0.5,
		Grid:           grid4x4,
		Directions:     OneDirectional(0),
		Repeating:      true,
	})
	const ppm = 20.0 // 阈值 10 像素

	if got := a.Threshold(ppm); got != 10 {
		t.Fatalf("Expected threshold 10, got %v", got)
	}

	// 首次达到阈值：第 1 帧
	frame, _ := a.Advance(Right, Vec2{X: 10}, ppm)
	if frame.Column != 0 {
		t.Fatalf("Expected column 0, got %d", frame.Column)
	}

	// 未达到阈值：不换帧
	frame, _ = a.Advance(Right, Vec2{X: 19.99}, ppm)
	if frame.Column != 0 {
		t.Errorf("Expected column 0 below threshold, got %d", frame.Column)
	}

	// 恰好达到阈值：换帧
	frame, _ = a.Advance(Right, Vec2{X: 20}, ppm)
	if frame.Column != 1 {
		t.Errorf("Expected column 1 at threshold, got %d", frame.Column)
	}

	// 斜向移动按单轴判断：两轴都不足 10 像素
	frame, _ = a.Advance(Right, Vec2{X: 26, Y: 8}, ppm)
	if frame.Column != 1 {
		t.Errorf("Expected column 1 after diagonal move below per-axis threshold, got %d", frame.Column)
	}

	// Y 轴达到阈值
	frame, _ = a.Advance(Right, Vec2{X: 26, Y: 10}, ppm)
	if frame.Column != 2 {
		t.Errorf("Expected column 2 once one axis reaches threshold, got %d", frame.Column)
	}
}

func TestTransformAnimation_DirectionChangeRefreshes(t *testing.T) {
	a := newTestTransform(t, TransformConfig{
		Frames:         []int{0, 1, 2, 3},
		MetersPerFrame: 1,
		Grid:           grid4x4,
		Directions:     IndexBased{Left: 1, Right: 2, Up: 3, Down: 0},
		Repeating:      true,
	})

	before, _ := a.Advance(Right, Vec2{X: 100}, 1)
	after, _ := a.Advance(Left, Vec2{X: 100}, 1)

	if after.Index == before.Index {
		t.Errorf("Expected new render index after turning with zero movement, got %d twice", after.Index)
	}
	if after.Row != 1 {
		t.Errorf("Expected left row 1, got %d", after.Row)
	}
}

func TestTransformAnimation_FlipChangeRefreshes(t *testing.T) {
	a := newTestTransform(t, TransformConfig{
		Frames:         []int{0, 1, 2, 3},
		MetersPerFrame: 1,
		Grid:           grid4x4,
		Directions:     FlipBased{XRow: 2, LeftIsFlipped: true},
		Repeating:      true,
	})
	const ppm = 10.0

	left, _ := a.Advance(Left, Vec2{X: 100}, ppm)
	if left.Row != 2 || !left.FlipX {
		t.Fatalf("Expected left row 2 flipped, got %+v", left)
	}

	// 左右共用一行，原地转身只改变翻转
	right, _ := a.Advance(Right, Vec2{X: 100}, ppm)
	if right.Row != 2 || right.FlipX {
		t.Errorf("Expected right row 2 not flipped after turning in place, got %+v", right)
	}
	if right.Column == left.Column {
		t.Errorf("Expected turning to take the next frame, got column %d twice", right.Column)
	}

	// 同朝向、未移动：不换帧
	again, _ := a.Advance(Right, Vec2{X: 100}, ppm)
	if again != right {
		t.Errorf("Expected no refresh without movement or turning, got %+v then %+v", right, again)
	}
}

func TestTransformAnimation_StillShowsStandingPose(t *testing.T) {
	a := newTestTransform(t, TransformConfig{
		Frames:         []int{1, 2, 3},
		MetersPerFrame: 1,
		Grid:           grid4x4,
		Directions:     FlipBased{XRow: 2, LeftIsFlipped: true},
		Repeating:      true,
	})

	a.Advance(Left, Vec2{X: -1}, 1)
	a.Advance(Left, Vec2{X: -2}, 1)

	frame, alive := a.Advance(Still, Vec2{X: -2}, 1)
	if !alive {
		t.Fatal("Still must not terminate")
	}
	if frame.Column != 1 || frame.Row != 2 || !frame.FlipX {
		t.Errorf("Expected standing pose column 1 row 2 flipped, got %+v", frame)
	}
}

func TestTransformAnimation_NonRepeatingTerminal(t *testing.T) {
	a := newTestTransform(t, TransformConfig{
		Frames:         []int{0, 1},
		MetersPerFrame: 1,
		Grid:           grid4x4,
	})

	for i := 1; i <= 2; i++ {
		if _, alive := a.Advance(Down, Vec2{Y: float64(i)}, 1); !alive {
			t.Fatalf("Advance %d returned terminal signal too early", i)
		}
	}
	if _, alive := a.Advance(Down, Vec2{Y: 3}, 1); alive {
		t.Error("Expected terminal signal after frames exhausted")
	}
}

func TestNewTransformAnimation_InvalidDistance(t *testing.T) {
	_, err := NewTransformAnimation(TransformConfig{Frames: []int{0}, Grid: grid4x4})
	if !errors.Is(err, ErrInvalidDistance) {
		t.Errorf("Expected ErrInvalidDistance, got %v", err)
	}
}

func TestLinearTransformAnimation_Threshold(t *testing.T) {
	a, err := NewLinearTransformAnimation(LinearTransformConfig{
		Frames:         []int{0, 1, 2},
		MetersPerFrame: 2,
		Grid:           grid4x4,
		Row:            3,
		Repeating:      true,
	})
	if err != nil {
		t.Fatalf("NewLinearTransformAnimation error: %v", err)
	}

	frame, _ := a.Advance(Vec2{X: 1.9}, 1)
	if frame.Index != 12 {
		t.Errorf("Expected initial index 12 below threshold, got %d", frame.Index)
	}
	frame, _ = a.Advance(Vec2{X: 2}, 1)
	if frame.Index != 12 {
		t.Errorf("Expected first frame index 12 at threshold, got %d", frame.Index)
	}
	frame, _ = a.Advance(Vec2{X: 4}, 1)
	if frame.Index != 13 {
		t.Errorf("Expected index 13, got %d", frame.Index)
	}
}
