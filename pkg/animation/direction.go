package animation

import (
	"fmt"
	"math"
	"strings"
)

// Direction 实体朝向
// Still 为默认值；实体的 LastValidDirection 永远不会是 Still
type Direction int

const (
	Still Direction = iota
	Left
	Right
	Up
	Down
)

// Vec2 二维向量（世界坐标，单位：像素）
type Vec2 struct {
	X, Y float64
}

// Sub 返回 v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// MovedAtLeast 自 from 起 X 或 Y 任一轴的位移是否达到 distance
// 斜向移动按单轴计算，不取欧氏距离
func (v Vec2) MovedAtLeast(from Vec2, distance float64) bool {
	d := v.Sub(from)
	return math.Abs(d.X) >= distance || math.Abs(d.Y) >= distance
}

// Vector 返回朝向对应的单位向量，Still 返回零向量
// Y 轴向上为正
func (d Direction) Vector() Vec2 {
	switch d {
	case Left:
		return Vec2{X: -1, Y: 0}
	case Right:
		return Vec2{X: 1, Y: 0}
	case Up:
		return Vec2{X: 0, Y: 1}
	case Down:
		return Vec2{X: 0, Y: -1}
	default:
		return Vec2{}
	}
}

// MirrorHorizontal 返回水平镜像后的朝向
// 只交换 Left/Right，其余朝向一律返回 Still
func (d Direction) MirrorHorizontal() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	default:
		return Still
	}
}

// IsStill 是否为静止朝向
func (d Direction) IsStill() bool {
	return d == Still
}

func (d Direction) String() string {
	switch d {
	case Still:
		return "still"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection 解析朝向名称（不区分大小写）
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "still":
		return Still, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	default:
		return Still, fmt.Errorf("未知朝向 '%s'", s)
	}
}
