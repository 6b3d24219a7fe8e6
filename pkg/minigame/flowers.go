package minigame

import (
	"log"
	"math/rand"

	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/sequence"
)

// FlowersLevel 选花关卡编号
const FlowersLevel = 2

// FlowersPhase 选花关卡的阶段
type FlowersPhase int

const (
	FlowersPicking FlowersPhase = iota
	FlowersProposal
	FlowersStory
	FlowersExiting
)

// Flowers 第 2 关：选一束花，然后回答"愿意吗"
//
// "No" 按钮被悬停时随机躲开，只有 "Yes" 能继续。
type Flowers struct {
	list     *config.FlowerList
	timeline *sequence.Timeline
	progress *guard
	rng      *rand.Rand

	phase        FlowersPhase
	selected     *config.Flower
	proposalOpen bool
	storyOpen    bool
	noOffsetX    float64
	noOffsetY    float64
}

// NewFlowers 创建选花关卡
//
// 参数：
//   - list: 花束列表
//   - progress: 进度
//   - rng: 随机源（"No" 按钮躲避位置），为 nil 时使用默认随机源
func NewFlowers(list *config.FlowerList, progress Progress, rng *rand.Rand) *Flowers {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Flowers{
		list:     list,
		timeline: sequence.NewTimeline(),
		progress: newGuard(progress),
		rng:      rng,
	}
}

// Update 推进计时
func (f *Flowers) Update(dt float64) {
	f.timeline.Update(dt)
}

// Pick 选择一束花，0.5 秒后弹出告白
func (f *Flowers) Pick(flowerID int) bool {
	if f.phase != FlowersPicking {
		return false
	}
	flower, ok := f.list.Find(flowerID)
	if !ok {
		return false
	}
	f.selected = &flower
	f.phase = FlowersProposal
	f.progress.setFlowerChoice(flower.Name)
	log.Printf("[Flowers] Picked %s", flower.Name)

	f.timeline.Then(config.FlowerProposalDelay, func() {
		f.proposalOpen = true
	})
	return true
}

// DodgeNo "No" 按钮随机躲开
//
// 返回：
//   - float64, float64: 新的偏移（像素，范围 ±FlowerDodgeRange/2）
func (f *Flowers) DodgeNo() (float64, float64) {
	if !f.proposalOpen {
		return f.noOffsetX, f.noOffsetY
	}
	f.noOffsetX = (f.rng.Float64() - 0.5) * config.FlowerDodgeRange
	f.noOffsetY = (f.rng.Float64() - 0.5) * config.FlowerDodgeRange
	return f.noOffsetX, f.noOffsetY
}

// NoOffset 当前 "No" 按钮偏移
func (f *Flowers) NoOffset() (float64, float64) {
	return f.noOffsetX, f.noOffsetY
}

// Yes 接受告白，0.5 秒后展开故事
func (f *Flowers) Yes() bool {
	if !f.proposalOpen || f.phase != FlowersProposal {
		return false
	}
	f.proposalOpen = false
	f.phase = FlowersStory
	f.timeline.Then(config.FlowerStoryDelay, func() {
		f.storyOpen = true
	})
	return true
}

// Next 离开故事页，1.5 秒后完成关卡
func (f *Flowers) Next() bool {
	if !f.storyOpen || f.phase != FlowersStory {
		return false
	}
	f.phase = FlowersExiting
	f.timeline.Then(config.FlowerExitDelay, func() {
		f.progress.completeLevel(FlowersLevel)
	})
	return true
}

// Phase 当前阶段
func (f *Flowers) Phase() FlowersPhase {
	return f.phase
}

// Selected 已选的花
func (f *Flowers) Selected() (config.Flower, bool) {
	if f.selected == nil {
		return config.Flower{}, false
	}
	return *f.selected, true
}

// ProposalOpen 告白弹窗是否显示
func (f *Flowers) ProposalOpen() bool {
	return f.proposalOpen
}

// StoryOpen 故事页是否显示
func (f *Flowers) StoryOpen() bool {
	return f.storyOpen
}

// Choices 可选的花
func (f *Flowers) Choices() []config.Flower {
	return f.list.Flowers
}

// Teardown 取消计时并屏蔽进度修改
func (f *Flowers) Teardown() {
	f.timeline.Cancel()
	f.progress.disable()
}
