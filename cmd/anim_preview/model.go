package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/decker502/spriteanim/pkg/animation"
	"github.com/decker502/spriteanim/pkg/components"
	"github.com/decker502/spriteanim/pkg/config"
	"github.com/decker502/spriteanim/pkg/ecs"
	"github.com/decker502/spriteanim/pkg/events"
	"github.com/decker502/spriteanim/pkg/systems"
)

const (
	tickInterval = 50 * time.Millisecond
	// moveSpeed 预览角色移动速度（像素/秒）
	moveSpeed    = 64.0
)

type animTickMsg time.Time

// previewModel 终端预览的 Bubble Tea 模型
type previewModel struct {
	entityManager *ecs.EntityManager
	registry      *animation.Registry
	queues        *events.AnimationQueues
	system        *systems.SpriteAnimationSystem

	entity ecs.EntityID
	names  []animation.Name
	fx     []animation.Name
	grids  map[animation.Name]animation.SheetGrid

	selected  int
	direction animation.Direction
	paused    bool
	ticks     int
	quitting  bool
}

// newPreviewModel 按动画集构造预览世界
// 预览不需要图片，定义以空句柄注册
func newPreviewModel(cfg *config.AnimationSetConfig) (*previewModel, error) {
	if len(cfg.Animations) == 0 {
		return nil, fmt.Errorf("动画集中没有动画")
	}

	registry := animation.NewRegistry()
	grids := make(map[animation.Name]animation.SheetGrid)

	register := func(defs []config.AnimationDef, fx bool) ([]animation.Name, error) {
		names := make([]animation.Name, 0, len(defs))
		for i := range defs {
			sheet, ok := cfg.Sheet(defs[i].Sheet)
			if !ok {
				return nil, fmt.Errorf("动画 %s 引用了不存在的精灵表 %s", defs[i].Name, defs[i].Sheet)
			}
			template, err := defs[i].Build(sheet.Grid())
			if err != nil {
				return nil, err
			}
			if fx {
				registry.RegisterFxDefinition(animation.Handles{}, template)
			} else {
				registry.RegisterDefinition(animation.Handles{}, template)
			}
			grids[template.Name()] = sheet.Grid()
			names = append(names, template.Name())
		}
		return names, nil
	}

	names, err := register(cfg.Animations, false)
	if err != nil {
		return nil, err
	}
	fx, err := register(cfg.FxAnimations, true)
	if err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	queues := events.NewAnimationQueues()
	m := &previewModel{
		entityManager: em,
		registry:      registry,
		queues:        queues,
		system:        systems.NewSpriteAnimationSystem(em, registry, queues, cfg.AnimationsConfig()),
		names:         names,
		fx:            fx,
		grids:         grids,
	}

	m.entity = em.CreateEntity()
	ecs.AddComponent(em, m.entity, &components.PositionComponent{})
	ecs.AddComponent(em, m.entity, &components.SpriteSheetComponent{})
	ecs.AddComponent(em, m.entity, &components.AnimatorComponent{})
	for _, name := range names {
		if err := registry.Attach(name, m.entity); err != nil {
			return nil, err
		}
	}

	m.queues.PlayAnimation(names[0], m.entity)
	return m, nil
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// Init implements tea.Model
func (m *previewModel) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model
func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case animTickMsg:
		if !m.paused {
			m.step(tickInterval.Seconds())
		}
		return m, tick()
	}
	return m, nil
}

func (m *previewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab", "n":
		m.selected = (m.selected + 1) % len(m.names)
		m.queues.PlayAnimation(m.current(), m.entity)
	case "shift+tab", "p":
		m.selected = (m.selected - 1 + len(m.names)) % len(m.names)
		m.queues.PlayAnimation(m.current(), m.entity)
	case "enter":
		m.queues.PlayAnimation(m.current(), m.entity)
	case "left":
		m.setDirection(animation.Left)
	case "right":
		m.setDirection(animation.Right)
	case "up":
		m.setDirection(animation.Up)
	case "down":
		m.setDirection(animation.Down)
	case "s":
		m.setDirection(animation.Still)
	case "r":
		m.queues.ResetAnimation(m.entity)
	case "f":
		if len(m.fx) > 0 {
			pos, _ := ecs.GetComponent[*components.PositionComponent](m.entityManager, m.entity)
			m.queues.SpawnFx(m.fx[0], pos.Vec())
		}
	case " ", "space":
		m.paused = !m.paused
	case ".":
		// 暂停时单步
		m.step(tickInterval.Seconds())
	}
	return m, nil
}

func (m *previewModel) setDirection(dir animation.Direction) {
	m.direction = dir
	if animator, ok := ecs.GetComponent[*components.AnimatorComponent](m.entityManager, m.entity); ok {
		animator.ChangeDirection(dir)
	}
	// 朝向只在播放请求时被读取
	m.queues.PlayAnimation(m.current(), m.entity)
}

// step 推进一帧：移动角色并驱动动画系统
func (m *previewModel) step(dt float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](m.entityManager, m.entity); ok && !m.direction.IsStill() {
		v := m.direction.Vector()
		pos.Translate(v.X*moveSpeed*dt, v.Y*moveSpeed*dt)
	}

	m.system.Update(dt)
	m.entityManager.RemoveMarkedEntities()
	m.ticks++
}

func (m *previewModel) current() animation.Name {
	return m.names[m.selected]
}
