package animation

import "fmt"

// Name 动画名称，在同一个动画池中唯一
type Name string

// Kind 动画类型标签
type Kind int

const (
	KindNone Kind = iota
	KindTimed
	KindTransform
	KindLinearTimed
	KindLinearTransform
	KindSingleFrame
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindTimed:
		return "timed"
	case KindTransform:
		return "transform"
	case KindLinearTimed:
		return "linear_timed"
	case KindLinearTransform:
		return "linear_transform"
	case KindSingleFrame:
		return "single_frame"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// machine 五种状态机的封闭集合
type machine interface {
	kind() Kind
}

func (*TimedAnimation) kind() Kind           { return KindTimed }
func (*TransformAnimation) kind() Kind       { return KindTransform }
func (*LinearTimedAnimation) kind() Kind     { return KindLinearTimed }
func (*LinearTransformAnimation) kind() Kind { return KindLinearTransform }
func (*SingleFrameAnimation) kind() Kind     { return KindSingleFrame }

// Animation 带名称的动画（标签联合）
//
// 恰好包装五种状态机之一。零值为 None 哨兵，只用作占位，
// 对它调用 Name/Reset/CurrentRenderIndex 属于编程错误，会 panic。
type Animation struct {
	name    Name
	machine machine
}

// FromTimed 包装计时动画
func FromTimed(name Name, a *TimedAnimation) Animation {
	return Animation{name: name, machine: a}
}

// FromTransform 包装位移动画
func FromTransform(name Name, a *TransformAnimation) Animation {
	return Animation{name: name, machine: a}
}

// FromLinearTimed 包装单行计时动画
func FromLinearTimed(name Name, a *LinearTimedAnimation) Animation {
	return Animation{name: name, machine: a}
}

// FromLinearTransform 包装单行位移动画
func FromLinearTransform(name Name, a *LinearTransformAnimation) Animation {
	return Animation{name: name, machine: a}
}

// FromSingleFrame 包装单帧动画
func FromSingleFrame(name Name, a *SingleFrameAnimation) Animation {
	return Animation{name: name, machine: a}
}

// NewTimed 构造并包装计时动画
func NewTimed(name Name, cfg TimedConfig) (Animation, error) {
	a, err := NewTimedAnimation(cfg)
	if err != nil {
		return Animation{}, fmt.Errorf("%s: %w", name, err)
	}
	return FromTimed(name, a), nil
}

// NewTransform 构造并包装位移动画
func NewTransform(name Name, cfg TransformConfig) (Animation, error) {
	a, err := NewTransformAnimation(cfg)
	if err != nil {
		return Animation{}, fmt.Errorf("%s: %w", name, err)
	}
	return FromTransform(name, a), nil
}

// NewLinearTimed 构造并包装单行计时动画
func NewLinearTimed(name Name, cfg LinearTimedConfig) (Animation, error) {
	a, err := NewLinearTimedAnimation(cfg)
	if err != nil {
		return Animation{}, fmt.Errorf("%s: %w", name, err)
	}
	return FromLinearTimed(name, a), nil
}

// NewLinearTransform 构造并包装单行位移动画
func NewLinearTransform(name Name, cfg LinearTransformConfig) (Animation, error) {
	a, err := NewLinearTransformAnimation(cfg)
	if err != nil {
		return Animation{}, fmt.Errorf("%s: %w", name, err)
	}
	return FromLinearTransform(name, a), nil
}

// NewSingleFrame 构造并包装单帧动画
func NewSingleFrame(name Name, cfg SingleFrameConfig) (Animation, error) {
	a, err := NewSingleFrameAnimation(cfg)
	if err != nil {
		return Animation{}, fmt.Errorf("%s: %w", name, err)
	}
	return FromSingleFrame(name, a), nil
}

// Kind 返回当前变体
func (a Animation) Kind() Kind {
	if a.machine == nil {
		return KindNone
	}
	return a.machine.kind()
}

// IsNone 是否为 None 哨兵
func (a Animation) IsNone() bool {
	return a.machine == nil
}

// Name 返回动画名称
func (a Animation) Name() Name {
	a.mustNotBeNone("Name")
	return a.name
}

func (a Animation) AsTimed() (*TimedAnimation, bool) {
	m, ok := a.machine.(*TimedAnimation)
	return m, ok
}

func (a Animation) AsTransform() (*TransformAnimation, bool) {
	m, ok := a.machine.(*TransformAnimation)
	return m, ok
}

func (a Animation) AsLinearTimed() (*LinearTimedAnimation, bool) {
	m, ok := a.machine.(*LinearTimedAnimation)
	return m, ok
}

func (a Animation) AsLinearTransform() (*LinearTransformAnimation, bool) {
	m, ok := a.machine.(*LinearTransformAnimation)
	return m, ok
}

func (a Animation) AsSingleFrame() (*SingleFrameAnimation, bool) {
	m, ok := a.machine.(*SingleFrameAnimation)
	return m, ok
}

// Reset 不带渲染上下文地重置当前变体（用于切走的动画）
func (a Animation) Reset() {
	switch m := a.machine.(type) {
	case *TimedAnimation:
		m.Reset()
	case *TransformAnimation:
		m.Reset()
	case *LinearTimedAnimation:
		m.Reset()
	case *LinearTransformAnimation:
		m.Reset()
	case *SingleFrameAnimation:
		m.Reset()
	default:
		a.mustNotBeNone("Reset")
	}
}

// ResetTo 重置并返回给定朝向下的第一帧
// 单行动画忽略朝向
func (a Animation) ResetTo(dir Direction) Frame {
	switch m := a.machine.(type) {
	case *TimedAnimation:
		return m.ResetTo(dir)
	case *TransformAnimation:
		return m.ResetTo(dir)
	case *LinearTimedAnimation:
		return m.Reset()
	case *LinearTransformAnimation:
		return m.Reset()
	case *SingleFrameAnimation:
		return m.ResetTo(dir)
	default:
		a.mustNotBeNone("ResetTo")
		return Frame{}
	}
}

// CurrentRenderIndex 不推进状态，返回给定朝向下应显示的帧
func (a Animation) CurrentRenderIndex(dir Direction) Frame {
	switch m := a.machine.(type) {
	case *TimedAnimation:
		return m.CurrentRenderIndex(dir)
	case *TransformAnimation:
		return m.CurrentRenderIndex(dir)
	case *LinearTimedAnimation:
		return m.CurrentRenderIndex()
	case *LinearTransformAnimation:
		return m.CurrentRenderIndex()
	case *SingleFrameAnimation:
		return m.CurrentRenderIndex(dir)
	default:
		a.mustNotBeNone("CurrentRenderIndex")
		return Frame{}
	}
}

// BlockingInfo 返回阻塞标记与优先级
// 只有 Timed 与 SingleFrame 带优先级，其余变体 prioritized 为 false
func (a Animation) BlockingInfo() (blocking bool, priority int, prioritized bool) {
	switch m := a.machine.(type) {
	case *TimedAnimation:
		return m.Blocking(), m.BlockingPriority(), true
	case *SingleFrameAnimation:
		return m.Blocking(), m.BlockingPriority(), true
	default:
		return false, 0, false
	}
}

// Clone 深拷贝运行时状态
// 帧列表与时长等不可变配置在副本间共享
func (a Animation) Clone() Animation {
	switch m := a.machine.(type) {
	case *TimedAnimation:
		return Animation{name: a.name, machine: m.clone()}
	case *TransformAnimation:
		return Animation{name: a.name, machine: m.clone()}
	case *LinearTimedAnimation:
		return Animation{name: a.name, machine: m.clone()}
	case *LinearTransformAnimation:
		return Animation{name: a.name, machine: m.clone()}
	case *SingleFrameAnimation:
		return Animation{name: a.name, machine: m.clone()}
	default:
		return Animation{}
	}
}

func (a Animation) mustNotBeNone(op string) {
	if a.machine == nil {
		panic(fmt.Sprintf("animation: %s called on None animation", op))
	}
}
