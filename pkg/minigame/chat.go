package minigame

import (
	"log"

	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/sequence"
)

// ChatLevel 聊天关卡编号
const ChatLevel = 1

// Chat 第 1 关：匿名聊天
//
// 玩家从候选回复中点出正确的一句，对方按脚本延迟回复；
// 选对的选项从候选池中移除，选错没有任何效果。
type Chat struct {
	script   *config.ChatScript
	seq      *sequence.Sequencer
	timeline *sequence.Timeline
	progress *guard

	options      []config.ChatOption
	showComplete bool
	exiting      bool
}

// NewChat 创建聊天关卡
func NewChat(script *config.ChatScript, progress Progress) *Chat {
	c := &Chat{
		script:   script,
		seq:      sequence.New(chatSteps(script), script.CompleteDelay),
		timeline: sequence.NewTimeline(),
		progress: newGuard(progress),
		options:  append([]config.ChatOption(nil), script.Options...),
	}
	c.seq.OnComplete(func() {
		c.showComplete = true
		log.Printf("[Chat] Conversation complete")
	})
	return c
}

// chatSteps 把脚本转换为解释器步骤
func chatSteps(script *config.ChatScript) []sequence.Step {
	steps := make([]sequence.Step, 0, len(script.Steps))
	for _, s := range script.Steps {
		step := sequence.Step{Text: s.Text, Answer: s.Answer, Delay: s.Delay, Time: s.Time}
		switch s.Kind {
		case config.ChatStepSystem:
			step.Kind = sequence.System
		case config.ChatStepUser:
			step.Kind = sequence.UserChoice
		default:
			step.Kind = sequence.Scripted
		}
		steps = append(steps, step)
	}
	return steps
}

// Start 显示开场系统消息
func (c *Chat) Start() {
	c.seq.Start()
}

// Update 推进对方回复和退出计时
func (c *Chat) Update(dt float64) {
	c.seq.Update(dt)
	c.timeline.Update(dt)
}

// Choose 点击候选回复
//
// 返回：
//   - bool: 选项正确并已发送
func (c *Chat) Choose(optionID string) bool {
	idx := -1
	for i, opt := range c.options {
		if opt.ID == optionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	if !c.seq.Submit(c.options[idx].Text) {
		return false
	}
	c.options = append(c.options[:idx:idx], c.options[idx+1:]...)
	return true
}

// Options 当前候选回复
func (c *Chat) Options() []config.ChatOption {
	return append([]config.ChatOption(nil), c.options...)
}

// Transcript 已显示的消息
func (c *Chat) Transcript() []sequence.Entry {
	return c.seq.Transcript()
}

// AwaitingInput 是否轮到玩家回复
func (c *Chat) AwaitingInput() bool {
	return c.seq.AwaitingInput()
}

// ShowComplete 是否显示完成卡片
func (c *Chat) ShowComplete() bool {
	return c.showComplete
}

// Exiting 是否正在退出
func (c *Chat) Exiting() bool {
	return c.exiting
}

// Continue 点击完成卡片上的继续，退出动画后完成关卡
func (c *Chat) Continue() {
	if !c.showComplete || c.exiting {
		return
	}
	c.exiting = true
	c.timeline.Then(c.script.ExitDelay, func() {
		c.progress.completeLevel(ChatLevel)
	})
}

// Teardown 取消所有计时，之后不会再修改进度
func (c *Chat) Teardown() {
	c.seq.Cancel()
	c.timeline.Cancel()
	c.progress.disable()
}
