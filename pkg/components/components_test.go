package components

import (
	"testing"

	"github.com/decker502/spriteanim/pkg/animation"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestSpriteSheetComponentApply(t *testing.T) {
	sprite := &SpriteSheetComponent{}
	sprite.Apply(animation.Frame{Column: 2, Row: 1, Index: 6, FlipX: true})

	if sprite.Index != 6 {
		t.Errorf("Expected index 6, got %d", sprite.Index)
	}
	if !sprite.FlipX {
		t.Error("Expected FlipX to be true")
	}
}

func TestSpriteSheetComponentHandles(t *testing.T) {
	img := ebiten.NewImage(32, 32)
	layout := animation.NewAtlasLayout(16, 16, 2, 2)

	sprite := &SpriteSheetComponent{Index: 3}
	sprite.SetHandles(animation.NewHandles(img, layout))

	if sprite.Image != img || sprite.Layout != layout {
		t.Fatal("SetHandles 未写入图片和布局")
	}
	// 切换精灵表不影响当前帧
	if sprite.Index != 3 {
		t.Errorf("Expected index 3 after SetHandles, got %d", sprite.Index)
	}

	h := sprite.Handles()
	if h.Image != img || h.Layout != layout {
		t.Error("Handles 应返回当前绑定的精灵表")
	}
}

func TestAnimatorComponentChangeDirection(t *testing.T) {
	animator := &AnimatorComponent{}
	if got := animator.ChangeDirection(animation.Left).Direction; got != animation.Left {
		t.Errorf("Expected direction %s, got %s", animation.Left, got)
	}
	if !animator.ChangeDirection(animation.Still).Direction.IsStill() {
		t.Error("Expected direction to be still")
	}
}

func TestPositionComponent(t *testing.T) {
	pos := &PositionComponent{X: 1, Y: 2}
	pos.Translate(3, -4)

	v := pos.Vec()
	if v.X != 4 || v.Y != -2 {
		t.Errorf("Expected (4, -2), got (%v, %v)", v.X, v.Y)
	}
}
