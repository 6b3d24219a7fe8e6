package minigame

import (
	"log"

	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/sequence"
)

// DeveloperModeAlert 彩蛋提示
const DeveloperModeAlert = "🛠️ Developer Mode Activated! All Levels Unlocked. 🔓"

// 火箭小鸭飞行周期（秒）
const (
	duckFlightSecs = 25.0
	duckPauseSecs  = 5.0
)

// IntroFlag 地图欢迎弹窗的一次性标记，*game.SaveManager 满足该接口
type IntroFlag interface {
	IntroPopupShown() bool
	MarkIntroPopupShown() error
}

// MapNode 地图上一个关卡节点的显示状态
type MapNode struct {
	config.LevelNode
	Unlocked  bool
	Completed bool
}

// Roadmap 关卡地图
//
// 点击已解锁的节点进入关卡，点击锁定节点无效果。
// 飞过的火箭小鸭被点击 10 次会解锁全部关卡。
type Roadmap struct {
	table    *config.LevelTable
	timeline *sequence.Timeline
	progress *guard

	windowOpen   bool
	popupVisible bool
	duckClicks   int
	duckClock    float64
	alert        string
}

// NewRoadmap 创建地图
//
// 只有第一关解锁且从未展示过欢迎弹窗时，3 秒后弹出欢迎弹窗；
// 标记在安排弹窗时立即写入。
func NewRoadmap(table *config.LevelTable, progress Progress, flag IntroFlag) *Roadmap {
	r := &Roadmap{
		table:    table,
		timeline: sequence.NewTimeline(),
		progress: newGuard(progress),
	}

	r.timeline.Then(config.MapWindowOpenDelay, func() {
		r.windowOpen = true
	})

	record := r.progress.record()
	if flag != nil && record.UnlockedLevels.Size() == 1 && !flag.IntroPopupShown() {
		if err := flag.MarkIntroPopupShown(); err != nil {
			log.Printf("[Roadmap] Warning: %v", err)
		}
		// 接在窗帘之后，总计 MapPopupDelay
		r.timeline.Then(config.MapPopupDelay-config.MapWindowOpenDelay, func() {
			r.popupVisible = true
		})
	}
	return r
}

// Update 推进计时
func (r *Roadmap) Update(dt float64) {
	r.duckClock += dt
	r.timeline.Update(dt)
}

// Nodes 可点击的关卡节点及其状态
func (r *Roadmap) Nodes() []MapNode {
	record := r.progress.record()
	playable := r.table.Playable()
	nodes := make([]MapNode, 0, len(playable))
	for _, n := range playable {
		nodes = append(nodes, MapNode{
			LevelNode: n,
			Unlocked:  record.IsUnlocked(n.ID),
			Completed: record.IsCompleted(n.ID),
		})
	}
	return nodes
}

// Title 地图标题
func (r *Roadmap) Title() string {
	return r.table.Title
}

// ClickLevel 点击关卡节点
//
// 返回：
//   - bool: 关卡已解锁并已进入
func (r *Roadmap) ClickLevel(level int) bool {
	return r.progress.selectLevel(level)
}

// ClickDuck 点击火箭小鸭，恰好第 10 次时解锁全部关卡
func (r *Roadmap) ClickDuck() {
	r.duckClicks++
	if r.duckClicks == config.DeveloperModeClicks {
		log.Printf("[Roadmap] Developer mode activated")
		r.alert = DeveloperModeAlert
		r.progress.unlockAll(r.table.IDs())
	}
}

// DuckPosition 小鸭当前位置（百分比）和是否可见
// 25 秒从左下飞到右上，然后停 5 秒
func (r *Roadmap) DuckPosition() (x, y float64, visible bool) {
	cycle := duckFlightSecs + duckPauseSecs
	t := r.duckClock
	for t >= cycle {
		t -= cycle
	}
	if t > duckFlightSecs {
		return 0, 0, false
	}
	p := t / duckFlightSecs
	return -10 + 120*p, 80 - 60*p, true
}

// WindowOpen 窗帘是否已打开
func (r *Roadmap) WindowOpen() bool {
	return r.windowOpen
}

// PopupVisible 欢迎弹窗是否显示
func (r *Roadmap) PopupVisible() bool {
	return r.popupVisible
}

// DismissPopup 关闭欢迎弹窗
func (r *Roadmap) DismissPopup() {
	r.popupVisible = false
}

// Alert 当前阻塞提示
func (r *Roadmap) Alert() string {
	return r.alert
}

// DismissAlert 关闭提示
func (r *Roadmap) DismissAlert() {
	r.alert = ""
}

// Teardown 取消计时并屏蔽进度修改
func (r *Roadmap) Teardown() {
	r.timeline.Cancel()
	r.progress.disable()
}
