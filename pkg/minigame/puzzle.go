package minigame

import (
	"log"
	"math/rand"
	"sort"

	"github.com/hbd-sarah/journey/pkg/config"
)

// PuzzleLevel 拼图关卡编号
const PuzzleLevel = 5

// EmptySlot 空格子
const EmptySlot = -1

// Puzzle 第 5 关：把打乱的 9 块拼图放回正确的格子
//
// 拼图块要么在候选池中，要么在某个格子里，不会同时出现在两处。
// 当第 i 个格子放的是第 i 块且候选池为空时获胜，胜利回调只触发一次。
type Puzzle struct {
	life     *Lifecycle
	progress *guard

	pool  []int
	slots [config.PuzzlePieceCount]int
}

// NewPuzzle 创建拼图关卡并打乱候选池
//
// 参数：
//   - progress: 进度
//   - rng: 洗牌随机源，为 nil 时使用随机种子
func NewPuzzle(progress Progress, rng *rand.Rand) *Puzzle {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	p := &Puzzle{
		life:     NewLifecycle(),
		progress: newGuard(progress),
		pool:     make([]int, config.PuzzlePieceCount),
	}
	for i := range p.pool {
		p.pool[i] = i
	}
	rng.Shuffle(len(p.pool), func(i, j int) {
		p.pool[i], p.pool[j] = p.pool[j], p.pool[i]
	})
	for i := range p.slots {
		p.slots[i] = EmptySlot
	}
	p.life.Start()
	return p
}

// OnWon 设置胜利回调
func (p *Puzzle) OnWon(fn func()) {
	p.life.OnWon(fn)
}

// Place 把拼图块放进格子
//
// 拼图块可以来自候选池或其他格子；目标格子原有的拼图块回到候选池。
//
// 返回：
//   - bool: 是否放置成功（游戏已结束、编号越界或拼图块不存在时返回 false）
func (p *Puzzle) Place(piece, slot int) bool {
	if !p.life.Running() || !validIndex(piece) || !validIndex(slot) {
		return false
	}
	if p.slots[slot] == piece {
		return true
	}

	if i := p.poolIndex(piece); i >= 0 {
		p.pool = append(p.pool[:i], p.pool[i+1:]...)
	} else if from := p.slotOf(piece); from >= 0 {
		p.slots[from] = EmptySlot
	} else {
		return false
	}

	if old := p.slots[slot]; old != EmptySlot {
		p.pool = append(p.pool, old)
	}
	p.slots[slot] = piece
	p.checkWin()
	return true
}

// Return 把格子里的拼图块放回候选池
func (p *Puzzle) Return(slot int) bool {
	if !p.life.Running() || !validIndex(slot) || p.slots[slot] == EmptySlot {
		return false
	}
	p.pool = append(p.pool, p.slots[slot])
	p.slots[slot] = EmptySlot
	return true
}

func (p *Puzzle) checkWin() {
	if len(p.pool) != 0 {
		return
	}
	for i, piece := range p.slots {
		if piece != i {
			return
		}
	}
	log.Printf("[Puzzle] Solved")
	p.life.Win()
}

func (p *Puzzle) poolIndex(piece int) int {
	for i, v := range p.pool {
		if v == piece {
			return i
		}
	}
	return -1
}

func (p *Puzzle) slotOf(piece int) int {
	for i, v := range p.slots {
		if v == piece {
			return i
		}
	}
	return -1
}

func validIndex(i int) bool {
	return i >= 0 && i < config.PuzzlePieceCount
}

// Pool 候选池中的拼图块（升序，便于显示）
func (p *Puzzle) Pool() []int {
	out := append([]int(nil), p.pool...)
	sort.Ints(out)
	return out
}

// Slots 每个格子中的拼图块，空格子为 EmptySlot
func (p *Puzzle) Slots() []int {
	return append([]int(nil), p.slots[:]...)
}

// Won 是否已完成
func (p *Puzzle) Won() bool {
	return p.life.State() == Won
}

// Continue 胜利后继续，完成关卡
func (p *Puzzle) Continue() bool {
	if !p.Won() || p.life.TornDown() {
		return false
	}
	p.progress.completeLevel(PuzzleLevel)
	return true
}

// Teardown 屏蔽后续操作和进度修改
func (p *Puzzle) Teardown() {
	p.life.Teardown()
	p.progress.disable()
}
