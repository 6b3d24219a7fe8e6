package minigame

import (
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/sequence"
)

// LetterPhase 开场信封的阶段
type LetterPhase int

const (
	LetterSealed LetterPhase = iota
	LetterOpening
	LetterOpened
	LetterFolding
	LetterClosing
	LetterExiting
	LetterDone
)

// Letter 开场信封：打开 → 阅读 → 折回 → 合上 → 镜头推进 → 进入地图
type Letter struct {
	timeline *sequence.Timeline
	progress *guard
	phase    LetterPhase
	elapsed  float64 // 当前阶段已持续时间，用于动画插值
}

// NewLetter 创建开场信封
func NewLetter(progress Progress) *Letter {
	return &Letter{
		timeline: sequence.NewTimeline(),
		progress: newGuard(progress),
	}
}

// Update 推进计时
func (l *Letter) Update(dt float64) {
	l.elapsed += dt
	l.timeline.Update(dt)
}

func (l *Letter) enter(phase LetterPhase) {
	l.phase = phase
	l.elapsed = 0
}

// Open 点击信封
func (l *Letter) Open() bool {
	if l.phase != LetterSealed {
		return false
	}
	l.enter(LetterOpening)
	l.timeline.Then(config.LetterOpenDuration, func() {
		l.enter(LetterOpened)
	})
	return true
}

// StartJourney 读完信后出发
func (l *Letter) StartJourney() bool {
	if l.phase != LetterOpened {
		return false
	}
	l.enter(LetterFolding)
	l.timeline.
		Then(config.LetterFoldDuration, func() {
			l.enter(LetterClosing)
		}).
		Then(config.LetterCloseDuration, func() {
			l.enter(LetterExiting)
		}).
		Then(config.LetterExitDuration, func() {
			l.enter(LetterDone)
			l.progress.openLetter()
		})
	return true
}

// Phase 当前阶段
func (l *Letter) Phase() LetterPhase {
	return l.phase
}

// PhaseProgress 当前阶段的动画进度 0.0 ~ 1.0
func (l *Letter) PhaseProgress() float64 {
	var total float64
	switch l.phase {
	case LetterOpening:
		total = config.LetterOpenDuration
	case LetterFolding:
		total = config.LetterFoldDuration
	case LetterClosing:
		total = config.LetterCloseDuration
	case LetterExiting:
		total = config.LetterExitDuration
	default:
		return 1
	}
	return clamp(l.elapsed/total, 0, 1)
}

// Teardown 取消计时并屏蔽进度修改
func (l *Letter) Teardown() {
	l.timeline.Cancel()
	l.progress.disable()
}
