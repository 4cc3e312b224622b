package animation

import "fmt"

// LinearTimedConfig LinearTimedAnimation 的构造参数
type LinearTimedConfig struct {
	Frames    []int
	Timings   []float64
	Grid      SheetGrid
	Row       int // 单行精灵表所在行，默认第 0 行
	Repeating bool
}

// LinearTimedAnimation 单行精灵表、按时间推进、忽略朝向
// 主要用于物件，例如开关门
type LinearTimedAnimation struct {
	cursor  frameCursor
	timings []float64
	timer   Timer
	grid    SheetGrid
	row     int
	current Frame
}

// NewLinearTimedAnimation 创建单行计时动画
func NewLinearTimedAnimation(cfg LinearTimedConfig) (*LinearTimedAnimation, error) {
	if err := validateFrames(cfg.Frames, cfg.Grid); err != nil {
		return nil, err
	}
	timings, err := expandTimings(cfg.Frames, cfg.Timings)
	if err != nil {
		return nil, fmt.Errorf("linear timed animation: %w", err)
	}

	a := &LinearTimedAnimation{
		cursor:  newFrameCursor(cfg.Frames, cfg.Repeating),
		timings: timings,
		timer:   NewTimer(timings[0], TimerRepeating),
		grid:    cfg.Grid,
		row:     cfg.Row,
	}
	a.current = a.CurrentRenderIndex()
	return a, nil
}

// Advance 推进 delta 秒，返回值语义同 TimedAnimation.Advance
func (a *LinearTimedAnimation) Advance(delta float64) (Frame, bool) {
	a.timer.Tick(delta)
	if !a.timer.Finished() {
		return a.current, true
	}

	column, ok := a.cursor.take()
	if !ok {
		a.rewind()
		return a.current, false
	}

	a.current = newFrame(a.grid, a.row, column, false)
	a.timer.SetDuration(a.timings[a.cursor.tick-1])
	a.timer.Reset()
	a.cursor.advance()
	return a.current, true
}

// CurrentRenderIndex 不推进状态，返回游标所指的帧
func (a *LinearTimedAnimation) CurrentRenderIndex() Frame {
	return newFrame(a.grid, a.row, a.cursor.peek(), false)
}

// Reset 回到第 1 帧并重装第一帧时长
func (a *LinearTimedAnimation) Reset() Frame {
	a.rewind()
	a.current = a.CurrentRenderIndex()
	return a.current
}

func (a *LinearTimedAnimation) rewind() {
	a.cursor.rewind()
	a.timer.SetDuration(a.timings[0])
	a.timer.Reset()
}

// Repeating 是否循环
func (a *LinearTimedAnimation) Repeating() bool { return a.cursor.repeating }

// Cursor 当前游标（1-based）
func (a *LinearTimedAnimation) Cursor() int { return a.cursor.tick }

// Current 最近一次渲染的帧
func (a *LinearTimedAnimation) Current() Frame { return a.current }

func (a *LinearTimedAnimation) clone() *LinearTimedAnimation {
	c := *a
	return &c
}
