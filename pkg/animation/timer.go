package animation

import "math"

// TimerMode 计时器模式
type TimerMode int

const (
	// TimerRepeating 到期后自动从头计时，Finished 只在到期的那一次 Tick 为 true
	TimerRepeating TimerMode = iota
	// TimerOnce 到期后保持完成状态，直到 Reset
	TimerOnce
)

// Timer 以秒为单位的倒计时器
type Timer struct {
	duration float64
	elapsed  float64
	mode     TimerMode
	finished bool
}

// NewTimer 创建计时器
func NewTimer(duration float64, mode TimerMode) Timer {
	return Timer{duration: duration, mode: mode}
}

// Tick 推进计时器
func (t *Timer) Tick(delta float64) {
	if t.mode == TimerOnce {
		if t.finished {
			return
		}
		t.elapsed += delta
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
		}
		return
	}

	t.elapsed += delta
	t.finished = false
	if t.elapsed >= t.duration {
		t.finished = true
		if t.duration > 0 {
			t.elapsed = math.Mod(t.elapsed, t.duration)
		} else {
			t.elapsed = 0
		}
	}
}

// Finished 计时器是否已到期
func (t *Timer) Finished() bool {
	return t.finished
}

// Reset 从头计时
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
}

// SetDuration 修改时长（不重置已计时间）
func (t *Timer) SetDuration(duration float64) {
	t.duration = duration
}

// Duration 返回时长（秒）
func (t *Timer) Duration() float64 {
	return t.duration
}

// Elapsed 返回已计时间（秒）
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Remaining 返回剩余时间（秒）
func (t *Timer) Remaining() float64 {
	return max(t.duration-t.elapsed, 0)
}
