package events

// Queue 单线程 FIFO 事件队列
//
// 生产者在一帧内任意时刻 Send，消费系统在 Update 中一次性 Drain。
// 不做并发保护：只应在游戏循环所在的 goroutine 中使用。
type Queue[T any] struct {
	pending []T
}

// NewQueue 创建空队列
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Send 追加事件
func (q *Queue[T]) Send(event T) {
	q.pending = append(q.pending, event)
}

// Drain 按到达顺序取出全部事件并清空队列
func (q *Queue[T]) Drain() []T {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

// Len 待处理事件数量
func (q *Queue[T]) Len() int {
	return len(q.pending)
}
