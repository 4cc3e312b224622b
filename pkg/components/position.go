package components

import "github.com/decker502/spriteanim/pkg/animation"

// PositionComponent 实体的世界坐标（像素）
// 位移类动画根据它与上次换帧位置的距离决定是否换帧
type PositionComponent struct {
	X float64
	Y float64
}

// Vec 以二维向量形式返回坐标
func (p *PositionComponent) Vec() animation.Vec2 {
	return animation.Vec2{X: p.X, Y: p.Y}
}

// Translate 按偏移量移动
func (p *PositionComponent) Translate(dx, dy float64) {
	p.X += dx
	p.Y += dy
}
