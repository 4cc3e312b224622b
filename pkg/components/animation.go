package components

import "github.com/decker502/spriteanim/pkg/animation"

// AnimatorComponent 实体当前朝向（由移动/输入逻辑写入，动画系统只读）
//
// 需要动画的实体必须挂载此组件，否则动画系统视其为已失效的世界实体。
type AnimatorComponent struct {
	Direction animation.Direction
}

// ChangeDirection 修改朝向，支持链式调用
func (a *AnimatorComponent) ChangeDirection(dir animation.Direction) *AnimatorComponent {
	a.Direction = dir
	return a
}

// FxAnimationComponent 标记实体为一次性 FX 动画实例
// 动画播完后实体由 SpriteAnimationSystem 销毁
type FxAnimationComponent struct {
	Name animation.Name
}
