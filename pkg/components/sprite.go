package components

import (
	"github.com/decker502/spriteanim/pkg/animation"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSheetComponent 实体的精灵表渲染状态
//
// 动画系统写入 Index/FlipX，切换动画时同时替换 Image/Layout；
// 渲染系统按 Layout 从 Image 中切出 Index 对应的单元格绘制。
type SpriteSheetComponent struct {
	Image  *ebiten.Image
	Layout *animation.AtlasLayout
	Index  int  // 精灵表扁平索引（row × columns + column）
	FlipX  bool // 是否水平翻转
}

// Apply 写入一次渲染决策
func (s *SpriteSheetComponent) Apply(frame animation.Frame) {
	s.Index = frame.Index
	s.FlipX = frame.FlipX
}

// SetHandles 绑定新的精灵表
func (s *SpriteSheetComponent) SetHandles(h animation.Handles) {
	s.Image = h.Image
	s.Layout = h.Layout
}

// Handles 当前绑定的精灵表
func (s *SpriteSheetComponent) Handles() animation.Handles {
	return animation.NewHandles(s.Image, s.Layout)
}
