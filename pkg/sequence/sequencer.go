// Package sequence 提供由帧时间驱动的脚本步骤解释器和延迟回调链。
//
// 所有计时都通过 Update(dt) 推进，不启动 goroutine；Cancel 之后
// 任何揭示、推进、完成回调都不会再执行。
package sequence

import "fmt"

// Kind 步骤类型
type Kind int

const (
	// System 到达时立即显示
	System Kind = iota
	// Scripted 在自身延迟结束后显示并自动推进
	Scripted
	// UserChoice 只有收到匹配的输入才推进
	UserChoice
)

func (k Kind) String() string {
	switch k {
	case System:
		return "system"
	case Scripted:
		return "scripted"
	case UserChoice:
		return "user"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Step 一个脚本步骤
type Step struct {
	Kind   Kind
	Text   string  // System / Scripted 显示的文本
	Answer string  // UserChoice 期望的输入
	Delay  float64 // Scripted 的延迟（秒）
	Time   string  // 气泡时间戳，原样带入记录
}

// Entry 已显示的一条记录
type Entry struct {
	Kind Kind
	Text string
	Time string
}

// Sequencer 步骤解释器
//
// 状态只有游标、已显示记录和当前计时器；Scripted 步骤串行计时，
// 上一条显示之后下一条的延迟才开始。
type Sequencer struct {
	steps         []Step
	cursor        int
	transcript    []Entry
	elapsed       float64
	completeDelay float64
	started       bool
	finished      bool // 所有步骤已显示，正在等待完成延迟
	completed     bool
	cancelled     bool

	onReveal   func(Entry)
	onComplete func()
}

// New 创建解释器
//
// 参数：
//   - steps: 步骤列表（会被拷贝）
//   - completeDelay: 最后一步之后到触发完成回调的延迟（秒）
func New(steps []Step, completeDelay float64) *Sequencer {
	own := make([]Step, len(steps))
	copy(own, steps)
	return &Sequencer{
		steps:         own,
		completeDelay: completeDelay,
	}
}

// OnReveal 设置每条记录显示时的回调
func (s *Sequencer) OnReveal(fn func(Entry)) {
	s.onReveal = fn
}

// OnComplete 设置完成回调，只会触发一次
func (s *Sequencer) OnComplete(fn func()) {
	s.onComplete = fn
}

// Start 开始执行：显示开头的 System 步骤，重复调用无效
func (s *Sequencer) Start() {
	if s.cancelled || s.started {
		return
	}
	s.started = true
	s.advance()
}

// Update 推进计时
func (s *Sequencer) Update(dt float64) {
	if s.cancelled || !s.started || s.completed {
		return
	}
	s.elapsed += dt

	if s.finished {
		if s.elapsed >= s.completeDelay {
			s.completed = true
			if s.onComplete != nil {
				s.onComplete()
			}
		}
		return
	}

	for !s.cancelled && !s.finished && s.cursor < len(s.steps) {
		step := s.steps[s.cursor]
		if step.Kind != Scripted || s.elapsed < step.Delay {
			return
		}
		s.elapsed -= step.Delay
		s.reveal(Entry{Kind: Scripted, Text: step.Text, Time: step.Time})
		s.cursor++
		s.advance()
	}
}

// Submit 提交玩家输入
//
// 返回：
//   - bool: 输入与当前 UserChoice 步骤匹配并已推进；不匹配时游标和记录都不变
func (s *Sequencer) Submit(answer string) bool {
	if s.cancelled || !s.started || s.cursor >= len(s.steps) {
		return false
	}
	step := s.steps[s.cursor]
	if step.Kind != UserChoice || step.Answer != answer {
		return false
	}
	s.reveal(Entry{Kind: UserChoice, Text: answer, Time: step.Time})
	s.cursor++
	s.elapsed = 0
	s.advance()
	return true
}

// advance 显示连续的 System 步骤；停在 Scripted（等待计时）或 UserChoice（等待输入）
func (s *Sequencer) advance() {
	for s.cursor < len(s.steps) {
		if s.cancelled {
			return
		}
		step := s.steps[s.cursor]
		if step.Kind != System {
			return
		}
		s.reveal(Entry{Kind: System, Text: step.Text, Time: step.Time})
		s.cursor++
	}
	if !s.finished {
		s.finished = true
		s.elapsed = 0
	}
}

func (s *Sequencer) reveal(e Entry) {
	if s.cancelled {
		return
	}
	s.transcript = append(s.transcript, e)
	if s.onReveal != nil {
		s.onReveal(e)
	}
}

// Cancel 设置取消标记，之后解释器不再产生任何效果
func (s *Sequencer) Cancel() {
	s.cancelled = true
}

// Cancelled 是否已取消
func (s *Sequencer) Cancelled() bool {
	return s.cancelled
}

// Cursor 当前游标
func (s *Sequencer) Cursor() int {
	return s.cursor
}

// Current 返回游标处的步骤
func (s *Sequencer) Current() (Step, bool) {
	if s.cursor >= len(s.steps) {
		return Step{}, false
	}
	return s.steps[s.cursor], true
}

// AwaitingInput 当前是否在等待玩家输入
func (s *Sequencer) AwaitingInput() bool {
	step, ok := s.Current()
	return ok && !s.cancelled && s.started && step.Kind == UserChoice
}

// Transcript 已显示记录的副本
func (s *Sequencer) Transcript() []Entry {
	out := make([]Entry, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Finished 所有步骤是否已显示
func (s *Sequencer) Finished() bool {
	return s.finished
}

// Completed 完成回调是否已触发
func (s *Sequencer) Completed() bool {
	return s.completed
}
