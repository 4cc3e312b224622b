package animation

import "testing"

func TestDirectionVector(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Vec2
	}{
		{Still, Vec2{}},
		{Left, Vec2{X: -1}},
		{Right, Vec2{X: 1}},
		{Up, Vec2{Y: 1}},
		{Down, Vec2{Y: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Vector(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDirectionMirrorHorizontal(t *testing.T) {
	if Left.MirrorHorizontal() != Right {
		t.Error("Expected Left to mirror to Right")
	}
	if Right.MirrorHorizontal() != Left {
		t.Error("Expected Right to mirror to Left")
	}
	for _, d := range []Direction{Still, Up, Down} {
		if got := d.MirrorHorizontal(); got != Still {
			t.Errorf("Expected %s to mirror to still, got %s", d, got)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{Still, Left, Right, Up, Down} {
		got, err := ParseDirection(d.String())
		if err != nil {
			t.Fatalf("ParseDirection(%q) error: %v", d.String(), err)
		}
		if got != d {
			t.Errorf("Expected %s, got %s", d, got)
		}
	}

	if got, _ := ParseDirection(" LEFT "); got != Left {
		t.Errorf("Expected case-insensitive parse to return left, got %s", got)
	}
	if _, err := ParseDirection("diagonal"); err == nil {
		t.Error("Expected error for unknown direction")
	}
}

func TestVec2MovedAtLeast(t *testing.T) {
	from := Vec2{X: 10, Y: 10}

	tests := []struct {
		name string
		to   Vec2
		want bool
	}{
		{"未移动", Vec2{X: 10, Y: 10}, false},
		{"X 轴恰好达到", Vec2{X: 15, Y: 10}, true},
		{"Y 轴反向达到", Vec2{X: 10, Y: 4}, true},
		{"斜向两轴都不足", Vec2{X: 14, Y: 14}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.to.MovedAtLeast(from, 5); got != tt.want {
				t.Errorf("MovedAtLeast(%v) = %v, want %v", tt.to, got, tt.want)
			}
		})
	}
}
