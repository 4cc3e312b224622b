package animation

import (
	"fmt"
	"maps"
	"slices"

	"github.com/decker502/spriteanim/pkg/ecs"
)

// Definition 动画池中的一条定义：精灵表句柄 + 动画模板
// 模板只读；实体挂载时克隆出自己的运行时副本
type Definition struct {
	Handles  Handles
	Template Animation
}

// TrackedEntity 注册表跟踪的实体动画状态
type TrackedEntity struct {
	Entity ecs.EntityID
	// Animations 实体自有的动画副本（按名称）
	Animations map[Name]*Animation
	// Current 当前激活的动画；与 Animations 中的条目共享，FX 实例为独立副本
	Current            *Animation
	CurrentDirection   Direction
	LastValidDirection Direction
	// InBlockingAnimation 当前动画正在阻塞低优先级请求
	InBlockingAnimation bool
	// Triggered 当前动画已被请求启动，逐帧推进
	Triggered bool
	// IsFx 一次性 FX 实例，播完即销毁
	IsFx bool
}

func newTrackedEntity(entity ecs.EntityID) *TrackedEntity {
	return &TrackedEntity{
		Entity:     entity,
		Animations: make(map[Name]*Animation),
		Current:    &Animation{},
	}
}

// CurrentName 当前动画名称；没有动画时返回 false
func (e *TrackedEntity) CurrentName() (Name, bool) {
	if e.Current == nil || e.Current.IsNone() {
		return "", false
	}
	return e.Current.Name(), true
}

// UpdateDirection 记录宿主提供的朝向
// Still 不会覆盖 LastValidDirection
func (e *TrackedEntity) UpdateDirection(dir Direction) {
	e.CurrentDirection = dir
	if dir != Still {
		e.LastValidDirection = dir
	}
}

// FxSpawn 宿主生成 FX 世界实体所需的描述
type FxSpawn struct {
	Name     Name
	Handles  Handles
	Frame    Frame
	Position Vec2
}

// Registry 实体动画注册表
//
// 持有动画池、FX 动画池以及所有被跟踪实体的运行时状态。
// 单线程使用：只应在游戏循环中访问。
type Registry struct {
	entities      map[ecs.EntityID]*TrackedEntity
	definitions   map[Name]Definition
	fxDefinitions map[Name]Definition
}

// NewRegistry 创建空注册表
func NewRegistry() *Registry {
	return &Registry{
		entities:      make(map[ecs.EntityID]*TrackedEntity),
		definitions:   make(map[Name]Definition),
		fxDefinitions: make(map[Name]Definition),
	}
}

// RegisterDefinition 向动画池加入定义
// 名称已存在时不做任何事（先注册者生效），返回是否插入
func (r *Registry) RegisterDefinition(handles Handles, template Animation) bool {
	name := template.Name()
	if _, exists := r.definitions[name]; exists {
		return false
	}
	r.definitions[name] = Definition{Handles: handles, Template: template}
	return true
}

// RegisterFxDefinition 向 FX 动画池加入定义，规则同 RegisterDefinition
func (r *Registry) RegisterFxDefinition(handles Handles, template Animation) bool {
	name := template.Name()
	if _, exists := r.fxDefinitions[name]; exists {
		return false
	}
	r.fxDefinitions[name] = Definition{Handles: handles, Template: template}
	return true
}

// TrackEntity 开始跟踪一个尚无动画的实体
func (r *Registry) TrackEntity(entity ecs.EntityID) error {
	if _, exists := r.entities[entity]; exists {
		return fmt.Errorf("%w: %d", ErrEntityTracked, entity)
	}
	r.entities[entity] = newTrackedEntity(entity)
	return nil
}

// Attach 把动画池中的定义克隆到实体上
//
// 实体未被跟踪时自动创建；实体的第一个动画同时成为当前动画。
func (r *Registry) Attach(name Name, entity ecs.EntityID) error {
	def, ok := r.definitions[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAnimation, name)
	}

	tracked, exists := r.entities[entity]
	if !exists {
		tracked = newTrackedEntity(entity)
		r.entities[entity] = tracked
	}
	if _, attached := tracked.Animations[name]; attached {
		return fmt.Errorf("%w: %s on entity %d", ErrAnimationAttached, name, entity)
	}

	clone := def.Template.Clone()
	tracked.Animations[name] = &clone
	if tracked.Current == nil || tracked.Current.IsNone() {
		tracked.Current = &clone
	}
	return nil
}

// BeginFx 为新世界实体启动一个 FX 动画
//
// 克隆 FX 模板并以 Still 朝向计算首帧；实体立即标记为已触发，
// 下一次推进即开始播放。
func (r *Registry) BeginFx(entity ecs.EntityID, name Name, position Vec2) (FxSpawn, error) {
	def, ok := r.fxDefinitions[name]
	if !ok {
		return FxSpawn{}, fmt.Errorf("%w: %s", ErrUnknownFxAnimation, name)
	}
	if _, exists := r.entities[entity]; exists {
		return FxSpawn{}, fmt.Errorf("%w: %d", ErrEntityTracked, entity)
	}

	clone := def.Template.Clone()
	frame := clone.CurrentRenderIndex(Still)

	r.entities[entity] = &TrackedEntity{
		Entity:     entity,
		Animations: make(map[Name]*Animation),
		Current:    &clone,
		Triggered:  true,
		IsFx:       true,
	}

	return FxSpawn{
		Name:     name,
		Handles:  def.Handles,
		Frame:    frame,
		Position: position,
	}, nil
}

// Entity 返回被跟踪的实体
func (r *Registry) Entity(entity ecs.EntityID) (*TrackedEntity, bool) {
	tracked, ok := r.entities[entity]
	return tracked, ok
}

// EntityIDs 返回所有被跟踪实体（升序）
func (r *Registry) EntityIDs() []ecs.EntityID {
	return slices.Sorted(maps.Keys(r.entities))
}

// Remove 停止跟踪实体
func (r *Registry) Remove(entity ecs.EntityID) {
	delete(r.entities, entity)
}

// Len 被跟踪实体数量
func (r *Registry) Len() int {
	return len(r.entities)
}

// Clear 清空所有实体与定义（宿主关闭时调用）
func (r *Registry) Clear() {
	clear(r.entities)
	clear(r.definitions)
	clear(r.fxDefinitions)
}

// HasEntity 实体是否被跟踪
func (r *Registry) HasEntity(entity ecs.EntityID) bool {
	_, ok := r.entities[entity]
	return ok
}

// HasDefinition 动画池中是否存在该名称
func (r *Registry) HasDefinition(name Name) bool {
	_, ok := r.definitions[name]
	return ok
}

// HasFxDefinition FX 动画池中是否存在该名称
func (r *Registry) HasFxDefinition(name Name) bool {
	_, ok := r.fxDefinitions[name]
	return ok
}

// Handles 返回动画定义的句柄
func (r *Registry) Handles(name Name) (Handles, bool) {
	def, ok := r.definitions[name]
	return def.Handles, ok
}

// FxHandles 返回 FX 动画定义的句柄
func (r *Registry) FxHandles(name Name) (Handles, bool) {
	def, ok := r.fxDefinitions[name]
	return def.Handles, ok
}

// EntityHasAnimation 实体上是否挂载了该动画
func (r *Registry) EntityHasAnimation(entity ecs.EntityID, name Name) bool {
	tracked, ok := r.entities[entity]
	if !ok {
		return false
	}
	_, ok = tracked.Animations[name]
	return ok
}

// IsNewAnimation 该名称是否不同于实体当前动画
// 实体未被跟踪时第二个返回值为 false
func (r *Registry) IsNewAnimation(entity ecs.EntityID, name Name) (bool, bool) {
	tracked, ok := r.entities[entity]
	if !ok {
		return false, false
	}
	current, hasCurrent := tracked.CurrentName()
	return !hasCurrent || current != name, true
}

// IsEntityActiveIn 实体是否正在播放指定动画
func (r *Registry) IsEntityActiveIn(entity ecs.EntityID, name Name) bool {
	tracked, ok := r.entities[entity]
	if !ok || !tracked.Triggered {
		return false
	}
	current, hasCurrent := tracked.CurrentName()
	return hasCurrent && current == name
}

// InBlockingAnimation 实体是否处于阻塞动画中
// 可用于判断是否允许实体移动
func (r *Registry) InBlockingAnimation(entity ecs.EntityID) (bool, bool) {
	tracked, ok := r.entities[entity]
	if !ok {
		return false, false
	}
	return tracked.InBlockingAnimation, true
}

// InAnimation 实体当前动画是否已被触发
func (r *Registry) InAnimation(entity ecs.EntityID) (bool, bool) {
	tracked, ok := r.entities[entity]
	if !ok {
		return false, false
	}
	return tracked.Triggered, true
}
