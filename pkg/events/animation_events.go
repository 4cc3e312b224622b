package events

import (
	"github.com/decker502/spriteanim/pkg/animation"
	"github.com/decker502/spriteanim/pkg/ecs"
)

// PlayAnimation 请求实体播放（或继续播放）指定动画
//
// 对正在播放的同名动画重复发送是安全的，不会打断进度。
// 动画被触发后会一直播放到结束，循环动画则一直循环。
type PlayAnimation struct {
	Name   animation.Name
	Entity ecs.EntityID
}

// ResetAnimation 请求把实体的当前动画重置到第一帧
type ResetAnimation struct {
	Entity ecs.EntityID
}

// SpawnFxAnimation 请求在世界坐标处生成一次性 FX 动画
// 播放结束后实体自动销毁
type SpawnFxAnimation struct {
	Name     animation.Name
	Position animation.Vec2
}

// AnimationQueues 动画子系统的三条请求流
type AnimationQueues struct {
	Play  *Queue[PlayAnimation]
	Reset *Queue[ResetAnimation]
	Fx    *Queue[SpawnFxAnimation]
}

// NewAnimationQueues 创建三条空请求流
func NewAnimationQueues() *AnimationQueues {
	return &AnimationQueues{
		Play:  NewQueue[PlayAnimation](),
		Reset: NewQueue[ResetAnimation](),
		Fx:    NewQueue[SpawnFxAnimation](),
	}
}

// PlayAnimation 发送播放请求
func (q *AnimationQueues) PlayAnimation(name animation.Name, entity ecs.EntityID) {
	q.Play.Send(PlayAnimation{Name: name, Entity: entity})
}

// ResetAnimation 发送重置请求
func (q *AnimationQueues) ResetAnimation(entity ecs.EntityID) {
	q.Reset.Send(ResetAnimation{Entity: entity})
}

// SpawnFx 发送 FX 生成请求
func (q *AnimationQueues) SpawnFx(name animation.Name, position animation.Vec2) {
	q.Fx.Send(SpawnFxAnimation{Name: name, Position: position})
}
