// Package minigame 包含旅程中各个界面的纯逻辑模型。
//
// 模型不依赖 ebiten，由 scenes 包负责输入和绘制；时间统一由 Update(dt) 推进。
package minigame

import "fmt"

// State 小游戏生命周期状态
type State int

const (
	NotStarted State = iota
	Running
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Lifecycle 小游戏生命周期
//
// NotStarted → Running → {Won, Lost}，Lost → Running（重试）。
// Won 是终态，OnWon 恰好触发一次；Teardown 之后任何回调都不再触发。
type Lifecycle struct {
	state      State
	torndown   bool
	wonFired   bool
	onWon      func()
	onLost     func()
	onStarting func()
}

// NewLifecycle 创建生命周期
func NewLifecycle() *Lifecycle {
	return &Lifecycle{}
}

// State 当前状态
func (l *Lifecycle) State() State {
	return l.state
}

// OnWon 设置胜利回调
func (l *Lifecycle) OnWon(fn func()) {
	l.onWon = fn
}

// OnLost 设置失败回调
func (l *Lifecycle) OnLost(fn func()) {
	l.onLost = fn
}

// OnStart 设置进入 Running 时的回调（首次开始和每次重试）
func (l *Lifecycle) OnStart(fn func()) {
	l.onStarting = fn
}

// Start NotStarted → Running
func (l *Lifecycle) Start() bool {
	if l.torndown || l.state != NotStarted {
		return false
	}
	l.state = Running
	if l.onStarting != nil {
		l.onStarting()
	}
	return true
}

// Retry Lost → Running
func (l *Lifecycle) Retry() bool {
	if l.torndown || l.state != Lost {
		return false
	}
	l.state = Running
	if l.onStarting != nil {
		l.onStarting()
	}
	return true
}

// Win Running → Won
func (l *Lifecycle) Win() bool {
	if l.torndown || l.state != Running {
		return false
	}
	l.state = Won
	if !l.wonFired {
		l.wonFired = true
		if l.onWon != nil {
			l.onWon()
		}
	}
	return true
}

// Lose Running → Lost
func (l *Lifecycle) Lose() bool {
	if l.torndown || l.state != Running {
		return false
	}
	l.state = Lost
	if l.onLost != nil {
		l.onLost()
	}
	return true
}

// Running 是否处于运行中
func (l *Lifecycle) Running() bool {
	return !l.torndown && l.state == Running
}

// Teardown 卸载：之后所有转换都无效
func (l *Lifecycle) Teardown() {
	l.torndown = true
	l.onWon = nil
	l.onLost = nil
	l.onStarting = nil
}

// TornDown 是否已卸载
func (l *Lifecycle) TornDown() bool {
	return l.torndown
}
