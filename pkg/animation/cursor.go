package animation

import "fmt"

// frameCursor 帧列表游标（1-based）
type frameCursor struct {
	frames    []int
	tick      int
	repeating bool
}

func newFrameCursor(frames []int, repeating bool) frameCursor {
	return frameCursor{frames: frames, tick: 1, repeating: repeating}
}

// take 取出游标当前指向的列号
// 越界时：循环动画回到第 1 帧；非循环动画回到第 1 帧并返回 false（终止信号）
func (c *frameCursor) take() (int, bool) {
	if c.tick > len(c.frames) {
		c.tick = 1
		if !c.repeating {
			return 0, false
		}
	}
	return c.frames[c.tick-1], true
}

// peek 只读地查看当前列号，越界时视为第 1 帧
func (c *frameCursor) peek() int {
	if c.tick < 1 || c.tick > len(c.frames) {
		return c.frames[0]
	}
	return c.frames[c.tick-1]
}

func (c *frameCursor) advance() {
	c.tick++
}

func (c *frameCursor) rewind() {
	c.tick = 1
}

func validateFrames(frames []int, grid SheetGrid) error {
	if grid.Columns <= 0 || grid.Rows <= 0 {
		return ErrInvalidGrid
	}
	if len(frames) == 0 {
		return ErrEmptyFrames
	}
	for _, column := range frames {
		if column < 0 || column >= grid.Columns {
			return fmt.Errorf("%w: column %d, columns %d", ErrFrameOutOfRange, column, grid.Columns)
		}
	}
	return nil
}

// expandTimings 校验并展开帧时长
// 只给出一个时长时，所有帧共用
func expandTimings(frames []int, timings []float64) ([]float64, error) {
	switch {
	case len(timings) == 0:
		return nil, ErrEmptyTimings
	case len(timings) == 1 && len(frames) > 1:
		out := make([]float64, len(frames))
		for i := range out {
			out[i] = timings[0]
		}
		return out, nil
	case len(timings) != len(frames):
		return nil, ErrTimingsMismatch
	default:
		return timings, nil
	}
}
