package mahjong

import (
	"time"
)

// Timer 状态机定时器。不自带goroutine，由宿主的秒级tick泵驱动，
// 回调因此天然与玩家消息串行。
type Timer struct {
	triggerTime time.Time
	callback    func()
	isLongLive  bool
}

func NewTimer() *Timer {
	return &Timer{}
}

// Schedule 安排定时任务
func (t *Timer) Schedule(delay time.Duration, callback func()) {
	t.triggerTime = time.Now().Add(delay)
	t.callback = callback
}

// Cancel 取消定时任务
func (t *Timer) Cancel() {
	t.callback = nil
}

// SetLongLive 长期存活的定时器不会被OnTick触发
func (t *Timer) SetLongLive(infinite bool) {
	t.isLongLive = infinite
}

// Remaining 距触发还剩多久；未排任务返回0
func (t *Timer) Remaining() time.Duration {
	if t.callback == nil {
		return 0
	}
	return max(time.Until(t.triggerTime), 0)
}

// OnTick 到点执行并清除回调
func (t *Timer) OnTick() {
	if t.isLongLive || t.callback == nil {
		return
	}

	if time.Now().After(t.triggerTime) {
		t.callback()
		t.callback = nil
	}
}
