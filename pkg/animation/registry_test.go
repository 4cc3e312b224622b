package animation

import (
	"errors"
	"testing"

	"github.com/decker502/spriteanim/pkg/ecs"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	r.RegisterDefinition(Handles{}, mustTimed(t, "attack", TimedConfig{
		Frames: []int{0, 1}, Timings: []float64{0.1}, Grid: grid4x4,
		Blocking: true, BlockingPriority: 1,
	}))
	idle, err := NewSingleFrame("idle", SingleFrameConfig{Column: 0, Grid: grid4x4})
	if err != nil {
		t.Fatalf("NewSingleFrame error: %v", err)
	}
	r.RegisterDefinition(Handles{}, idle)

	spark, err := NewLinearTimed("spark", LinearTimedConfig{
		Frames: []int{1, 2}, Timings: []float64{0.05}, Grid: grid4x4, Row: 3,
	})
	if err != nil {
		t.Fatalf("NewLinearTimed error: %v", err)
	}
	r.RegisterFxDefinition(Handles{}, spark)
	return r
}

func TestRegistry_RegisterDefinition(t *testing.T) {
	r := newTestRegistry(t)

	if !r.HasDefinition("attack") || !r.HasDefinition("idle") {
		t.Fatal("Expected definitions to be registered")
	}
	if r.HasDefinition("spark") {
		t.Error("Fx definitions must live in a separate pool")
	}
	if !r.HasFxDefinition("spark") {
		t.Error("Expected fx definition spark")
	}

	dup := mustTimed(t, "attack", TimedConfig{Frames: []int{3}, Timings: []float64{1}, Grid: grid4x4})
	if r.RegisterDefinition(Handles{}, dup) {
		t.Error("Expected duplicate registration to be a no-op")
	}
}

func TestRegistry_Attach(t *testing.T) {
	r := newTestRegistry(t)
	entity := ecs.EntityID(7)

	t.Run("第一个动画成为当前动画", func(t *testing.T) {
		if err := r.Attach("idle", entity); err != nil {
			t.Fatalf("Attach error: %v", err)
		}
		if err := r.Attach("attack", entity); err != nil {
			t.Fatalf("Attach error: %v", err)
		}
		tracked, _ := r.Entity(entity)
		if name, _ := tracked.CurrentName(); name != "idle" {
			t.Errorf("Expected current idle, got %s", name)
		}
		if !r.EntityHasAnimation(entity, "attack") {
			t.Error("Expected attack attached")
		}
	})

	t.Run("未知动画", func(t *testing.T) {
		if err := r.Attach("missing", entity); !errors.Is(err, ErrUnknownAnimation) {
			t.Errorf("Expected ErrUnknownAnimation, got %v", err)
		}
	})

	t.Run("重复挂载", func(t *testing.T) {
		if err := r.Attach("idle", entity); !errors.Is(err, ErrAnimationAttached) {
			t.Errorf("Expected ErrAnimationAttached, got %v", err)
		}
	})

	t.Run("实体持有独立副本", func(t *testing.T) {
		other := ecs.EntityID(8)
		if err := r.Attach("attack", other); err != nil {
			t.Fatalf("Attach error: %v", err)
		}
		a, _ := r.entities[entity].Animations["attack"].AsTimed()
		b, _ := r.entities[other].Animations["attack"].AsTimed()
		a.Advance(Down, 0.1)
		if b.Cursor() != 1 {
			t.Errorf("Expected other entity cursor 1, got %d", b.Cursor())
		}
	})
}

func TestRegistry_TrackEntity(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.TrackEntity(1); err != nil {
		t.Fatalf("TrackEntity error: %v", err)
	}
	if err := r.TrackEntity(1); !errors.Is(err, ErrEntityTracked) {
		t.Errorf("Expected ErrEntityTracked, got %v", err)
	}

	tracked, _ := r.Entity(1)
	if _, has := tracked.CurrentName(); has {
		t.Error("Freshly tracked entity should have no current animation")
	}
}

func TestRegistry_BeginFx(t *testing.T) {
	r := newTestRegistry(t)

	spawn, err := r.BeginFx(10, "spark", Vec2{X: 5, Y: 6})
	if err != nil {
		t.Fatalf("BeginFx error: %v", err)
	}
	if spawn.Frame.Index != 13 {
		t.Errorf("Expected initial fx index 13, got %d", spawn.Frame.Index)
	}
	if spawn.Position != (Vec2{X: 5, Y: 6}) {
		t.Errorf("Expected position (5, 6), got %v", spawn.Position)
	}
	if !r.IsEntityActiveIn(10, "spark") {
		t.Error("Expected fx entity to be active immediately")
	}
	tracked, _ := r.Entity(10)
	if !tracked.IsFx {
		t.Error("Expected fx flag")
	}

	if _, err := r.BeginFx(11, "missing", Vec2{}); !errors.Is(err, ErrUnknownFxAnimation) {
		t.Errorf("Expected ErrUnknownFxAnimation, got %v", err)
	}
	if r.HasEntity(11) {
		t.Error("Failed fx must not be tracked")
	}
}

func TestRegistry_Queries(t *testing.T) {
	r := newTestRegistry(t)
	_ = r.Attach("attack", 3)

	if isNew, ok := r.IsNewAnimation(3, "attack"); !ok || isNew {
		t.Errorf("Expected attack not new, got (%v, %v)", isNew, ok)
	}
	if isNew, _ := r.IsNewAnimation(3, "idle"); !isNew {
		t.Error("Expected idle to be new")
	}
	if _, ok := r.IsNewAnimation(99, "idle"); ok {
		t.Error("Expected untracked entity to report ok=false")
	}
	if r.IsEntityActiveIn(3, "attack") {
		t.Error("Attached but untriggered animation must not be active")
	}

	if _, ok := r.Handles("attack"); !ok {
		t.Error("Expected handles for attack")
	}
	if _, ok := r.Handles("spark"); ok {
		t.Error("Fx handles must not be found in the definition pool")
	}
	if _, ok := r.FxHandles("spark"); !ok {
		t.Error("Expected fx handles for spark")
	}
	if _, ok := r.FxHandles("attack"); ok {
		t.Error("Definition handles must not be found in the fx pool")
	}

	r.Remove(3)
	if r.HasEntity(3) || r.Len() != 0 {
		t.Error("Expected entity removed")
	}
}

func TestTrackedEntity_UpdateDirection(t *testing.T) {
	tracked := newTrackedEntity(1)

	tracked.UpdateDirection(Left)
	tracked.UpdateDirection(Still)

	if tracked.CurrentDirection != Still {
		t.Errorf("Expected current direction still, got %s", tracked.CurrentDirection)
	}
	if tracked.LastValidDirection != Left {
		t.Errorf("Expected last valid direction left, got %s", tracked.LastValidDirection)
	}
}
