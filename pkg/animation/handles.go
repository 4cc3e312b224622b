package animation

import "github.com/hajimehoshi/ebiten/v2"

// Handles 已加载的精灵表图片与切片布局
//
// 两个字段都是共享引用，多个动画定义/实体可以指向同一张图片，
// 动画子系统从不独占或释放它们。
type Handles struct {
	Image  *ebiten.Image
	Layout *AtlasLayout
}

// NewHandles 创建句柄
func NewHandles(image *ebiten.Image, layout *AtlasLayout) Handles {
	return Handles{Image: image, Layout: layout}
}

// Cell 返回扁平索引对应的子图
// 图片或布局缺失时返回 nil
func (h Handles) Cell(index int) *ebiten.Image {
	if h.Image == nil || h.Layout == nil {
		return nil
	}
	rect := h.Layout.CellRect(index)
	if rect.Empty() || !rect.In(h.Image.Bounds()) {
		return nil
	}
	return h.Image.SubImage(rect).(*ebiten.Image)
}
