package systems

import (
	"github.com/decker502/spriteanim/pkg/components"
	"github.com/decker502/spriteanim/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteRenderSystem 绘制精灵表实体
// 按 SpriteSheetComponent 的 Index 从精灵表中切出单元格，以 PositionComponent 为中心绘制
type SpriteRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewSpriteRenderSystem 创建精灵表渲染系统
func NewSpriteRenderSystem(em *ecs.EntityManager) *SpriteRenderSystem {
	return &SpriteRenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有精灵表实体
// cameraX/cameraY 为相机左上角的世界坐标
func (s *SpriteRenderSystem) Draw(screen *ebiten.Image, cameraX, cameraY float64) {
	entities := ecs.GetEntitiesWith2[
		*components.PositionComponent,
		*components.SpriteSheetComponent,
	](s.entityManager)

	for _, id := range entities {
		s.drawEntity(screen, id, cameraX, cameraY)
	}
}

func (s *SpriteRenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID, cameraX, cameraY float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	sprite, _ := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id)

	cell := sprite.Handles().Cell(sprite.Index)
	if cell == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = s.cellTransform(id, sprite, cell.Bounds().Dx(), cell.Bounds().Dy())
	op.GeoM.Translate(pos.X-cameraX, pos.Y-cameraY)

	screen.DrawImage(cell, op)
}

// cellTransform 单元格的局部变换：居中、翻转、缩放
func (s *SpriteRenderSystem) cellTransform(id ecs.EntityID, sprite *components.SpriteSheetComponent, width, height int) ebiten.GeoM {
	var geo ebiten.GeoM

	// 居中
	geo.Translate(-float64(width)/2, -float64(height)/2)

	scaleX, scaleY := 1.0, 1.0
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		scaleX, scaleY = scale.ScaleX, scale.ScaleY
	}
	if sprite.FlipX {
		scaleX = -scaleX
	}
	geo.Scale(scaleX, scaleY)
	return geo
}
