package sequence

type timelineStep struct {
	delay float64
	fn    func()
}

// Timeline 串行的延迟回调链
//
// 每个回调的延迟从上一个回调执行后开始计算；回调内部可以继续 Then，
// 新步骤排在队尾。Cancel 后所有未执行的回调都被丢弃。
type Timeline struct {
	queue     []timelineStep
	elapsed   float64
	cancelled bool
}

// NewTimeline 创建空的回调链
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Then 追加一个延迟回调
func (tl *Timeline) Then(delay float64, fn func()) *Timeline {
	if tl.cancelled {
		return tl
	}
	if len(tl.queue) == 0 {
		tl.elapsed = 0
	}
	tl.queue = append(tl.queue, timelineStep{delay: delay, fn: fn})
	return tl
}

// Update 推进计时并执行到期的回调
func (tl *Timeline) Update(dt float64) {
	if tl.cancelled || len(tl.queue) == 0 {
		return
	}
	tl.elapsed += dt
	for !tl.cancelled && len(tl.queue) > 0 && tl.elapsed >= tl.queue[0].delay {
		step := tl.queue[0]
		tl.queue = tl.queue[1:]
		tl.elapsed -= step.delay
		if step.fn != nil {
			step.fn()
		}
	}
	if len(tl.queue) == 0 {
		tl.elapsed = 0
	}
}

// Pending 是否还有未执行的回调
func (tl *Timeline) Pending() bool {
	return !tl.cancelled && len(tl.queue) > 0
}

// Cancel 丢弃所有未执行的回调，之后 Then 也不再生效
func (tl *Timeline) Cancel() {
	tl.cancelled = true
	tl.queue = nil
}

// Cancelled 是否已取消
func (tl *Timeline) Cancelled() bool {
	return tl.cancelled
}
