package animation

import "fmt"

// TransformConfig TransformAnimation 的构造参数
type TransformConfig struct {
	Frames         []int
	MetersPerFrame float64
	Grid           SheetGrid
	Directions     DirectionIndexes
	Repeating      bool
}

// TransformAnimation 按移动距离推进、随朝向换行的动画
// 主要用于角色行走、奔跑
type TransformAnimation struct {
	cursor           frameCursor
	metersPerFrame   float64
	grid             SheetGrid
	directions       DirectionIndexes
	previousRow      int
	previousPosition Vec2
	current          Frame
}

// NewTransformAnimation 创建位移动画
func NewTransformAnimation(cfg TransformConfig) (*TransformAnimation, error) {
	if err := validateFrames(cfg.Frames, cfg.Grid); err != nil {
		return nil, err
	}
	if cfg.MetersPerFrame <= 0 {
		return nil, fmt.Errorf("transform animation: %w", ErrInvalidDistance)
	}
	directions := cfg.Directions
	if directions == nil {
		directions = DefaultDirectionIndexes()
	}

	a := &TransformAnimation{
		cursor:         newFrameCursor(cfg.Frames, cfg.Repeating),
		metersPerFrame: cfg.MetersPerFrame,
		grid:           cfg.Grid,
		directions:     directions,
		previousRow:    directions.InitialRow(),
	}
	a.current = newFrame(a.grid, a.previousRow, a.cursor.peek(), false)
	return a, nil
}

// Threshold 换帧所需的像素距离
func (a *TransformAnimation) Threshold(pixelsPerMeter float64) float64 {
	return pixelsPerMeter * a.metersPerFrame
}

func (a *TransformAnimation) readyToAnimate(position Vec2, pixelsPerMeter float64) bool {
	return position.MovedAtLeast(a.previousPosition, a.Threshold(pixelsPerMeter))
}

// turned 解析出的行号或翻转与上次换帧不同
// Still 只沿用上一行，不算转向
func (a *TransformAnimation) turned(dir Direction, row int, flipX bool) bool {
	if row != a.previousRow {
		return true
	}
	return dir != Still && flipX != a.current.FlipX
}

// Advance 根据当前位置推进
//
// 自上次换帧以来任一轴的移动距离达到 pixelsPerMeter × MetersPerFrame，
// 或解析出的行号/翻转发生变化（转向），都会立即换帧。
// 朝向为 Still 且未达到阈值时，在上一行显示第 1 帧（站立姿势）。
func (a *TransformAnimation) Advance(dir Direction, position Vec2, pixelsPerMeter float64) (Frame, bool) {
	row, flipX := ResolveRow(dir, a.directions, a.previousRow)

	if a.readyToAnimate(position, pixelsPerMeter) || a.turned(dir, row, flipX) {
		a.previousPosition = position
		column, ok := a.cursor.take()
		if !ok {
			return a.current, false
		}
		a.previousRow = row
		a.current = newFrame(a.grid, row, column, flipX)
		a.cursor.advance()
		return a.current, true
	}

	if dir == Still {
		a.current = newFrame(a.grid, a.previousRow, a.cursor.frames[0], a.current.FlipX)
	}
	return a.current, true
}

// CurrentRenderIndex 不推进状态，返回给定朝向下游标所指的帧
func (a *TransformAnimation) CurrentRenderIndex(dir Direction) Frame {
	row, flipX := ResolveRow(dir, a.directions, a.previousRow)
	return newFrame(a.grid, row, a.cursor.peek(), flipX)
}

// Reset 回到第 1 帧
// 保留上次换帧时的位置
func (a *TransformAnimation) Reset() {
	a.cursor.rewind()
	a.previousRow = a.directions.InitialRow()
	a.current = newFrame(a.grid, a.previousRow, a.cursor.peek(), false)
}

// ResetTo 重置并立即返回给定朝向下的第一帧
func (a *TransformAnimation) ResetTo(dir Direction) Frame {
	a.Reset()
	a.current = a.CurrentRenderIndex(dir)
	return a.current
}

// MetersPerFrame 每帧对应的米数
func (a *TransformAnimation) MetersPerFrame() float64 { return a.metersPerFrame }

// Repeating 是否循环
func (a *TransformAnimation) Repeating() bool { return a.cursor.repeating }

// Cursor 当前游标（1-based）
func (a *TransformAnimation) Cursor() int { return a.cursor.tick }

// Current 最近一次渲染的帧
func (a *TransformAnimation) Current() Frame { return a.current }

func (a *TransformAnimation) clone() *TransformAnimation {
	c := *a
	return &c
}
