package animation

import "fmt"

// SingleFrameConfig SingleFrameAnimation 的构造参数
type SingleFrameConfig struct {
	Column           int
	Grid             SheetGrid
	Directions       DirectionIndexes
	Blocking         bool
	BlockingPriority int
	// BlockingTimer 阻塞冷却时长（秒），0 表示没有冷却计时
	BlockingTimer float64
}

// SingleFrameAnimation 固定列的单帧姿势
//
// 可选的阻塞计时器到期后 BlockingFinished 变为 true，
// 此后任何请求都可以打断它，直到被 Reset。
type SingleFrameAnimation struct {
	column           int
	grid             SheetGrid
	directions       DirectionIndexes
	previousRow      int
	current          Frame
	blocking         bool
	blockingPriority int
	hasTimer         bool
	blockingTimer    Timer
	blockingFinished bool
}

// NewSingleFrameAnimation 创建单帧动画
func NewSingleFrameAnimation(cfg SingleFrameConfig) (*SingleFrameAnimation, error) {
	if cfg.Grid.Columns <= 0 || cfg.Grid.Rows <= 0 {
		return nil, ErrInvalidGrid
	}
	if cfg.Column < 0 || cfg.Column >= cfg.Grid.Columns {
		return nil, fmt.Errorf("single frame animation: %w: column %d", ErrFrameOutOfRange, cfg.Column)
	}
	directions := cfg.Directions
	if directions == nil {
		directions = DefaultDirectionIndexes()
	}

	a := &SingleFrameAnimation{
		column:           cfg.Column,
		grid:             cfg.Grid,
		directions:       directions,
		previousRow:      directions.InitialRow(),
		blocking:         cfg.Blocking,
		blockingPriority: cfg.BlockingPriority,
		hasTimer:         cfg.BlockingTimer > 0,
		blockingTimer:    NewTimer(cfg.BlockingTimer, TimerOnce),
	}
	a.current = newFrame(a.grid, a.previousRow, a.column, false)
	return a, nil
}

// Advance 推进阻塞计时器并按朝向渲染固定列
// 单帧动画没有终止状态
func (a *SingleFrameAnimation) Advance(dir Direction, delta float64) Frame {
	if a.hasTimer && !a.blockingFinished {
		a.blockingTimer.Tick(delta)
		if a.blockingTimer.Finished() {
			a.blockingFinished = true
		}
	}

	row, flipX := ResolveRow(dir, a.directions, a.previousRow)
	a.previousRow = row
	a.current = newFrame(a.grid, row, a.column, flipX)
	return a.current
}

// CurrentRenderIndex 不推进状态，返回给定朝向下的帧
func (a *SingleFrameAnimation) CurrentRenderIndex(dir Direction) Frame {
	row, flipX := ResolveRow(dir, a.directions, a.previousRow)
	return newFrame(a.grid, row, a.column, flipX)
}

// Reset 重新开始阻塞冷却
func (a *SingleFrameAnimation) Reset() {
	a.blockingTimer.Reset()
	a.blockingFinished = false
	a.previousRow = a.directions.InitialRow()
	a.current = newFrame(a.grid, a.previousRow, a.column, false)
}

// ResetTo 重置并立即返回给定朝向下的帧
func (a *SingleFrameAnimation) ResetTo(dir Direction) Frame {
	a.Reset()
	a.current = a.CurrentRenderIndex(dir)
	return a.current
}

// Blocking 是否为阻塞动画
func (a *SingleFrameAnimation) Blocking() bool { return a.blocking }

// BlockingPriority 阻塞优先级
func (a *SingleFrameAnimation) BlockingPriority() int { return a.blockingPriority }

// BlockingFinished 阻塞冷却是否已结束
func (a *SingleFrameAnimation) BlockingFinished() bool { return a.blockingFinished }

// BlockingRemaining 阻塞冷却剩余时间（秒），没有冷却计时器时为 0
func (a *SingleFrameAnimation) BlockingRemaining() float64 {
	if !a.hasTimer {
		return 0
	}
	return a.blockingTimer.Remaining()
}

// Column 固定列号
func (a *SingleFrameAnimation) Column() int { return a.column }

// Current 最近一次渲染的帧
func (a *SingleFrameAnimation) Current() Frame { return a.current }

func (a *SingleFrameAnimation) clone() *SingleFrameAnimation {
	c := *a
	return &c
}
