package minigame

import "github.com/hbd-sarah/journey/pkg/game"

// Progress 模型需要的进度操作，*game.ProgressStore 满足该接口
type Progress interface {
	Record() game.ProgressRecord
	CompleteLevel(level int)
	SelectLevel(level int) bool
	ReturnToMap()
	OpenLetter()
	UnlockAll(levels []int)
	SetFlowerChoice(flowerID string)
	SetWishes(wishes string)
	Reset()
}

// guard 在模型卸载后屏蔽所有进度修改
type guard struct {
	progress Progress
	off      bool
}

func newGuard(p Progress) *guard {
	return &guard{progress: p}
}

func (g *guard) disable() {
	g.off = true
}

func (g *guard) record() game.ProgressRecord {
	return g.progress.Record()
}

func (g *guard) completeLevel(level int) {
	if !g.off {
		g.progress.CompleteLevel(level)
	}
}

func (g *guard) selectLevel(level int) bool {
	if g.off {
		return false
	}
	return g.progress.SelectLevel(level)
}

func (g *guard) returnToMap() {
	if !g.off {
		g.progress.ReturnToMap()
	}
}

func (g *guard) openLetter() {
	if !g.off {
		g.progress.OpenLetter()
	}
}

func (g *guard) unlockAll(levels []int) {
	if !g.off {
		g.progress.UnlockAll(levels)
	}
}

func (g *guard) setFlowerChoice(id string) {
	if !g.off {
		g.progress.SetFlowerChoice(id)
	}
}

func (g *guard) setWishes(wishes string) {
	if !g.off {
		g.progress.SetWishes(wishes)
	}
}

func (g *guard) reset() {
	if !g.off {
		g.progress.Reset()
	}
}
