package animation

import "fmt"

// TimedConfig TimedAnimation 的构造参数
type TimedConfig struct {
	Frames           []int     // 依次播放的列号（0-based）
	Timings          []float64 // 每帧显示时长（秒）；只给一个值时所有帧共用
	Grid             SheetGrid
	Directions       DirectionIndexes
	Repeating        bool
	Blocking         bool
	BlockingPriority int
}

// TimedAnimation 按时间推进、随朝向换行的动画
// 主要用于角色动作，例如射箭、换弹
type TimedAnimation struct {
	cursor           frameCursor
	timings          []float64
	timer            Timer
	grid             SheetGrid
	directions       DirectionIndexes
	previousRow      int
	current          Frame
	blocking         bool
	blockingPriority int
}

// NewTimedAnimation 创建计时动画
// 计时器预装第一帧的时长，第一帧时长接近 0 时首次 Advance 即出帧
func NewTimedAnimation(cfg TimedConfig) (*TimedAnimation, error) {
	if err := validateFrames(cfg.Frames, cfg.Grid); err != nil {
		return nil, err
	}
	timings, err := expandTimings(cfg.Frames, cfg.Timings)
	if err != nil {
		return nil, fmt.Errorf("timed animation: %w", err)
	}
	directions := cfg.Directions
	if directions == nil {
		directions = DefaultDirectionIndexes()
	}

	a := &TimedAnimation{
		cursor:           newFrameCursor(cfg.Frames, cfg.Repeating),
		timings:          timings,
		timer:            NewTimer(timings[0], TimerRepeating),
		grid:             cfg.Grid,
		directions:       directions,
		previousRow:      directions.InitialRow(),
		blocking:         cfg.Blocking,
		blockingPriority: cfg.BlockingPriority,
	}
	a.current = newFrame(a.grid, a.previousRow, a.cursor.peek(), false)
	return a, nil
}

// Advance 推进 delta 秒
//
// 返回当前应显示的帧；计时未到期时返回上一次的帧。
// 非循环动画播完后返回 false（终止信号），游标回到第 1 帧。
func (a *TimedAnimation) Advance(dir Direction, delta float64) (Frame, bool) {
	a.timer.Tick(delta)
	if !a.timer.Finished() {
		return a.current, true
	}

	row, flipX := ResolveRow(dir, a.directions, a.previousRow)
	a.previousRow = row

	column, ok := a.cursor.take()
	if !ok {
		a.rewind()
		return a.current, false
	}

	a.current = newFrame(a.grid, row, column, flipX)
	// 当前帧的显示时长
	a.timer.SetDuration(a.timings[a.cursor.tick-1])
	a.timer.Reset()
	a.cursor.advance()
	return a.current, true
}

// CurrentRenderIndex 不推进状态，返回给定朝向下游标所指的帧
func (a *TimedAnimation) CurrentRenderIndex(dir Direction) Frame {
	row, flipX := ResolveRow(dir, a.directions, a.previousRow)
	return newFrame(a.grid, row, a.cursor.peek(), flipX)
}

// Reset 回到第 1 帧并重装第一帧时长
func (a *TimedAnimation) Reset() {
	a.rewind()
	a.previousRow = a.directions.InitialRow()
	a.current = newFrame(a.grid, a.previousRow, a.cursor.peek(), false)
}

// ResetTo 重置并立即返回给定朝向下的第一帧
func (a *TimedAnimation) ResetTo(dir Direction) Frame {
	a.Reset()
	a.current = a.CurrentRenderIndex(dir)
	return a.current
}

func (a *TimedAnimation) rewind() {
	a.cursor.rewind()
	a.timer.SetDuration(a.timings[0])
	a.timer.Reset()
}

// Blocking 是否为阻塞动画
func (a *TimedAnimation) Blocking() bool { return a.blocking }

// BlockingPriority 阻塞优先级
func (a *TimedAnimation) BlockingPriority() int { return a.blockingPriority }

// Repeating 是否循环
func (a *TimedAnimation) Repeating() bool { return a.cursor.repeating }

// Cursor 当前游标（1-based）
func (a *TimedAnimation) Cursor() int { return a.cursor.tick }

// Current 最近一次渲染的帧
func (a *TimedAnimation) Current() Frame { return a.current }

func (a *TimedAnimation) clone() *TimedAnimation {
	c := *a
	return &c
}
