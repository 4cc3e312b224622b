package animation

import "fmt"

// LinearTransformConfig LinearTransformAnimation 的构造参数
type LinearTransformConfig struct {
	Frames         []int
	MetersPerFrame float64
	Grid           SheetGrid
	Row            int
	Repeating      bool
}

// LinearTransformAnimation 单行精灵表、按移动距离推进、忽略朝向
// 主要用于物件，例如飞行中的投射物
type LinearTransformAnimation struct {
	cursor           frameCursor
	metersPerFrame   float64
	grid             SheetGrid
	row              int
	previousPosition Vec2
	current          Frame
}

// NewLinearTransformAnimation 创建单行位移动画
func NewLinearTransformAnimation(cfg LinearTransformConfig) (*LinearTransformAnimation, error) {
	if err := validateFrames(cfg.Frames, cfg.Grid); err != nil {
		return nil, err
	}
	if cfg.MetersPerFrame <= 0 {
		return nil, fmt.Errorf("linear transform animation: %w", ErrInvalidDistance)
	}

	a := &LinearTransformAnimation{
		cursor:         newFrameCursor(cfg.Frames, cfg.Repeating),
		metersPerFrame: cfg.MetersPerFrame,
		grid:           cfg.Grid,
		row:            cfg.Row,
	}
	a.current = a.CurrentRenderIndex()
	return a, nil
}

// Threshold 换帧所需的像素距离
func (a *LinearTransformAnimation) Threshold(pixelsPerMeter float64) float64 {
	return pixelsPerMeter * a.metersPerFrame
}

// Advance 根据当前位置推进，返回值语义同 TransformAnimation.Advance
func (a *LinearTransformAnimation) Advance(position Vec2, pixelsPerMeter float64) (Frame, bool) {
	if !position.MovedAtLeast(a.previousPosition, a.Threshold(pixelsPerMeter)) {
		return a.current, true
	}

	a.previousPosition = position
	column, ok := a.cursor.take()
	if !ok {
		return a.current, false
	}
	a.current = newFrame(a.grid, a.row, column, false)
	a.cursor.advance()
	return a.current, true
}

// CurrentRenderIndex 不推进状态，返回游标所指的帧
func (a *LinearTransformAnimation) CurrentRenderIndex() Frame {
	return newFrame(a.grid, a.row, a.cursor.peek(), false)
}

// Reset 回到第 1 帧
func (a *LinearTransformAnimation) Reset() Frame {
	a.cursor.rewind()
	a.current = a.CurrentRenderIndex()
	return a.current
}

// MetersPerFrame 每帧对应的米数
func (a *LinearTransformAnimation) MetersPerFrame() float64 { return a.metersPerFrame }

// Repeating 是否循环
func (a *LinearTransformAnimation) Repeating() bool { return a.cursor.repeating }

// Cursor 当前游标（1-based）
func (a *LinearTransformAnimation) Cursor() int { return a.cursor.tick }

// Current 最近一次渲染的帧
func (a *LinearTransformAnimation) Current() Frame { return a.current }

func (a *LinearTransformAnimation) clone() *LinearTransformAnimation {
	c := *a
	return &c
}
