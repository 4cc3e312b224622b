package systems

import (
	"fmt"
	"log"

	"github.com/decker502/spriteanim/pkg/animation"
	"github.com/decker502/spriteanim/pkg/components"
	"github.com/decker502/spriteanim/pkg/config"
	"github.com/decker502/spriteanim/pkg/ecs"
	"github.com/decker502/spriteanim/pkg/events"
)

// SpriteAnimationSystem 精灵表动画编排系统
//
// 每帧按固定顺序处理：
//  1. 播放请求（阻塞优先级判定、切换动画）
//  2. 推进所有已触发的动画
//  3. 重置请求
//  4. FX 生成请求
//  5. 统一移除失效实体
//
// 播放请求在推进之前全部生效，新动画在同一帧内先渲染首帧再推进一次。
type SpriteAnimationSystem struct {
	entityManager *ecs.EntityManager
	registry      *animation.Registry
	queues        *events.AnimationQueues
	config        config.AnimationsConfig

	// 本帧待从注册表移除的实体
	removals []ecs.EntityID
}

// NewSpriteAnimationSystem 创建动画编排系统
//
// 参数：
//   - em: 宿主实体管理器
//   - registry: 动画注册表（启动时已注册定义并挂载实体）
//   - queues: 三条请求流
//   - cfg: 运行时配置；PixelsPerMeter 非正数时使用默认值
func NewSpriteAnimationSystem(em *ecs.EntityManager, registry *animation.Registry, queues *events.AnimationQueues, cfg config.AnimationsConfig) *SpriteAnimationSystem {
	if cfg.PixelsPerMeter <= 0 {
		cfg.PixelsPerMeter = config.DefaultPixelsPerMeter
	}
	return &SpriteAnimationSystem{
		entityManager: em,
		registry:      registry,
		queues:        queues,
		config:        cfg,
		removals:      make([]ecs.EntityID, 0),
	}
}

// Registry 返回系统使用的注册表
func (s *SpriteAnimationSystem) Registry() *animation.Registry {
	return s.registry
}

// Update 执行一帧动画逻辑
func (s *SpriteAnimationSystem) Update(deltaTime float64) {
	s.applyPlayRequests()
	s.advanceAnimations(deltaTime)
	s.applyResetRequests()
	s.spawnFxAnimations()
	s.flushRemovals()
}

// worldEntity 查询实体的渲染组件
func (s *SpriteAnimationSystem) worldEntity(id ecs.EntityID) (*components.SpriteSheetComponent, *components.AnimatorComponent, bool) {
	if !s.entityManager.EntityExists(id) {
		return nil, nil, false
	}
	sprite, ok := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	animator, ok := ecs.GetComponent[*components.AnimatorComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	return sprite, animator, true
}

func (s *SpriteAnimationSystem) queueRemoval(id ecs.EntityID) {
	s.removals = append(s.removals, id)
}

// applyPlayRequests 阶段 1：处理播放请求
func (s *SpriteAnimationSystem) applyPlayRequests() {
	for _, req := range s.queues.Play.Drain() {
		tracked, ok := s.registry.Entity(req.Entity)
		if !ok {
			panic(fmt.Sprintf("[SpriteAnimationSystem] 实体 %d 未被注册表跟踪，无法播放动画 '%s'", req.Entity, req.Name))
		}

		sprite, animator, ok := s.worldEntity(req.Entity)
		if !ok {
			s.queueRemoval(req.Entity)
			continue
		}

		if current, has := tracked.CurrentName(); !has || current != req.Name {
			if !s.switchAnimation(tracked, req.Name, sprite) {
				continue
			}
		} else if !tracked.Triggered {
			// 重新启动已空闲的当前动画
			tracked.InBlockingAnimation, _, _ = tracked.Current.BlockingInfo()
		}

		tracked.Triggered = true
		tracked.UpdateDirection(animator.Direction)
	}
}

// switchAnimation 按阻塞规则切换到新动画，返回是否接受
func (s *SpriteAnimationSystem) switchAnimation(tracked *animation.TrackedEntity, name animation.Name, sprite *components.SpriteSheetComponent) bool {
	next, attached := tracked.Animations[name]
	if !attached {
		panic(fmt.Sprintf("[SpriteAnimationSystem] 实体 %d 没有挂载动画 '%s'", tracked.Entity, name))
	}
	if next.IsNone() {
		panic(fmt.Sprintf("[SpriteAnimationSystem] 实体 %d 的动画 '%s' 为 None", tracked.Entity, name))
	}

	blocking, _, _ := next.BlockingInfo()
	frame := next.CurrentRenderIndex(tracked.LastValidDirection)

	if tracked.InBlockingAnimation && !canInterrupt(*tracked.Current, *next) {
		return false
	}

	if !tracked.Current.IsNone() {
		tracked.Current.Reset()
	}
	tracked.Current = next
	tracked.InBlockingAnimation = blocking

	if handles, ok := s.registry.Handles(name); ok {
		sprite.SetHandles(handles)
	}
	sprite.Apply(frame)
	return true
}

// canInterrupt 当前处于阻塞动画时，新动画能否打断它
//
// 新动画优先级严格更高，或当前单帧动画的阻塞冷却已结束时允许打断；
// 当前动画不带优先级时一律拒绝。
func canInterrupt(current, next animation.Animation) bool {
	if single, ok := current.AsSingleFrame(); ok && single.BlockingFinished() {
		return true
	}
	_, currentPriority, prioritized := current.BlockingInfo()
	if !prioritized {
		return false
	}
	_, nextPriority, _ := next.BlockingInfo()
	return nextPriority > currentPriority
}

// advanceAnimations 阶段 2：推进所有已触发的动画
func (s *SpriteAnimationSystem) advanceAnimations(deltaTime float64) {
	for _, id := range s.registry.EntityIDs() {
		tracked, _ := s.registry.Entity(id)

		sprite, _, ok := s.worldEntity(id)
		if !ok {
			// FX 实体在播完时显式销毁；只有实体已从世界消失时才清理
			if !tracked.IsFx || !s.entityManager.EntityExists(id) {
				s.queueRemoval(id)
			}
			continue
		}

		if !tracked.Triggered {
			continue
		}

		frame, alive, ok := s.advance(id, tracked, deltaTime)
		if !ok {
			s.queueRemoval(id)
			continue
		}

		if alive {
			sprite.Apply(frame)
			continue
		}

		// 非循环动画播放结束
		if tracked.IsFx {
			s.queueRemoval(id)
			s.entityManager.DestroyEntity(id)
			continue
		}
		tracked.InBlockingAnimation = false
		tracked.Triggered = false
	}
}

// advance 按动画类型推进一帧
// 第三个返回值为 false 表示位移类动画缺少位置组件
func (s *SpriteAnimationSystem) advance(id ecs.EntityID, tracked *animation.TrackedEntity, deltaTime float64) (animation.Frame, bool, bool) {
	current := *tracked.Current
	dir := tracked.LastValidDirection

	switch current.Kind() {
	case animation.KindTimed:
		a, _ := current.AsTimed()
		frame, alive := a.Advance(dir, deltaTime)
		return frame, alive, true

	case animation.KindTransform:
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			return animation.Frame{}, false, false
		}
		a, _ := current.AsTransform()
		frame, alive := a.Advance(dir, pos.Vec(), s.config.PixelsPerMeter)
		return frame, alive, true

	case animation.KindLinearTimed:
		a, _ := current.AsLinearTimed()
		frame, alive := a.Advance(deltaTime)
		return frame, alive, true

	case animation.KindLinearTransform:
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			return animation.Frame{}, false, false
		}
		a, _ := current.AsLinearTransform()
		frame, alive := a.Advance(pos.Vec(), s.config.PixelsPerMeter)
		return frame, alive, true

	case animation.KindSingleFrame:
		a, _ := current.AsSingleFrame()
		return a.Advance(dir, deltaTime), true, true

	default:
		panic(fmt.Sprintf("[SpriteAnimationSystem] 实体 %d 的当前动画类型无效: %s", id, current.Kind()))
	}
}

// applyResetRequests 阶段 3：处理重置请求
func (s *SpriteAnimationSystem) applyResetRequests() {
	for _, req := range s.queues.Reset.Drain() {
		tracked, ok := s.registry.Entity(req.Entity)
		if !ok {
			panic(fmt.Sprintf("[SpriteAnimationSystem] 实体 %d 未被注册表跟踪，无法重置动画", req.Entity))
		}

		sprite, animator, ok := s.worldEntity(req.Entity)
		if !ok {
			s.queueRemoval(req.Entity)
			continue
		}

		tracked.UpdateDirection(animator.Direction)
		sprite.Apply(tracked.Current.ResetTo(tracked.LastValidDirection))
	}
}

// spawnFxAnimations 阶段 4：生成 FX 动画实体
func (s *SpriteAnimationSystem) spawnFxAnimations() {
	for _, req := range s.queues.Fx.Drain() {
		id := s.entityManager.CreateEntity()

		spawn, err := s.registry.BeginFx(id, req.Name, req.Position)
		if err != nil {
			log.Printf("[SpriteAnimationSystem] 无法生成 FX 动画 '%s': %v", req.Name, err)
			s.entityManager.DestroyEntity(id)
			continue
		}

		ecs.AddComponent(s.entityManager, id, &components.PositionComponent{
			X: spawn.Position.X,
			Y: spawn.Position.Y,
		})
		ecs.AddComponent(s.entityManager, id, &components.SpriteSheetComponent{
			Image:  spawn.Handles.Image,
			Layout: spawn.Handles.Layout,
			Index:  spawn.Frame.Index,
			FlipX:  spawn.Frame.FlipX,
		})
		ecs.AddComponent(s.entityManager, id, &components.AnimatorComponent{
			Direction: animation.Still,
		})
		ecs.AddComponent(s.entityManager, id, &components.FxAnimationComponent{
			Name: spawn.Name,
		})
	}
}

// flushRemovals 阶段 5：统一移除
func (s *SpriteAnimationSystem) flushRemovals() {
	for _, id := range s.removals {
		s.registry.Remove(id)
	}
	s.removals = s.removals[:0]
}
