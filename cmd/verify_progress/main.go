// verify_progress 无界面走完整个旅程，打印每一步之后的进度和路由
//
// 每个小游戏都通过它的模型驱动（与场景调用的是同一套方法），
// 可用于确认存档在真实 gdata 存储上的读写。
//
// 用法：
//
//	go run ./cmd/verify_progress [-persist] [-app-name hbd_journey_verify] [-reset]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/quasilyte/gdata/v2"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/game"
	"github.com/hbd-sarah/journey/pkg/minigame"
)

const frame = 1.0 / config.TicksPerSecond

var (
	dataDir = flag.String("dir", ".", "项目根目录（包含 data/）")
	persist = flag.Bool("persist", false, "使用 gdata 真实存储（默认内存存储）")
	appName = flag.String("app-name", "hbd_journey_verify", "gdata 存档目录名")
	reset   = flag.Bool("reset", false, "结束时确认蛋糕关卡的重置")
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	// flappy 自动驾驶的上限（模拟秒数）
	flappyLimit = flag.Float64("flappy-limit", 600, "小鸭关卡最长模拟时间（秒）")
)

// printSharer 代替剪贴板和浏览器，只打印内容
type printSharer struct{}

func (printSharer) CopyText(text string) error {
	fmt.Printf("   📋 复制: %q\n", text)
	return nil
}

func (printSharer) OpenURL(url string) error {
	fmt.Printf("   🔗 打开: %s\n", url)
	return nil
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	levels, err := config.LoadLevelTable(filepath.Join(*dataDir, config.LevelTablePath))
	must(err)
	chat, err := config.LoadChatScript(filepath.Join(*dataDir, config.ChatScriptPath))
	must(err)
	flowers, err := config.LoadFlowerList(filepath.Join(*dataDir, config.FlowerListPath))
	must(err)

	var storage game.Storage = game.NewMemoryStorage()
	if *persist {
		manager, err := gdata.Open(gdata.Config{AppName: *appName})
		must(err)
		storage = manager
	}
	saves := game.NewSaveManager(storage)
	store := game.NewProgressStore(saves)
	report(store, "启动")

	letter := minigame.NewLetter(store)
	letter.Open()
	run(letter.Update, config.LetterOpenDuration)
	letter.StartJourney()
	run(letter.Update, config.LetterFoldDuration+config.LetterCloseDuration+config.LetterExitDuration)
	report(store, "打开信封")

	enter(store, levels, minigame.ChatLevel)
	playChat(store, chat)
	report(store, "第 1 关 聊天")

	enter(store, levels, minigame.FlowersLevel)
	playFlowers(store, flowers)
	report(store, "第 2 关 选花")

	enter(store, levels, minigame.CatchLevel)
	playCatch(store)
	report(store, "第 3 关 接手机")

	enter(store, levels, minigame.FlappyLevel)
	playFlappy(store)
	report(store, "第 4 关 小鸭")

	enter(store, levels, minigame.PuzzleLevel)
	playPuzzle(store)
	report(store, "第 5 关 拼图")

	enter(store, levels, minigame.CakeLevel)
	playCake(store)
	report(store, "第 6 关 蛋糕")

	if saved, ok := store.SavedRecord(); ok {
		fmt.Printf("💾 存档: 当前关卡 %d, 已完成 %v\n", saved.CurrentLevel, saved.Completed())
	}
	fmt.Printf("✅ 旅程验证完成\n")
}

func must(err error) {
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
}

func fail(format string, args ...any) {
	fmt.Printf("❌ "+format+"\n", args...)
	os.Exit(1)
}

func run(update func(float64), seconds float64) {
	for t := 0.0; t < seconds+frame/2; t += frame {
		update(frame)
	}
}

func report(store *game.ProgressStore, step string) {
	r := store.Record()
	fmt.Printf("➡️  %-12s 路由=%-12v 当前=%d 解锁=%v 完成=%v\n", step, game.Route(r), r.CurrentLevel, r.Unlocked(), r.Completed())
}

// enter 像地图一样点击关卡节点
func enter(store *game.ProgressStore, levels *config.LevelTable, level int) {
	roadmap := minigame.NewRoadmap(levels, store, nil)
	defer roadmap.Teardown()
	if !roadmap.ClickLevel(level) {
		fail("第 %d 关尚未解锁", level)
	}
}

func playChat(store *game.ProgressStore, script *config.ChatScript) {
	c := minigame.NewChat(script, store)
	defer c.Teardown()
	c.Start()

	for _, step := range script.Steps {
		if step.Kind != config.ChatStepUser {
			continue
		}
		for !c.AwaitingInput() {
			c.Update(frame)
		}
		chosen := false
		for _, opt := range c.Options() {
			if opt.Text == step.Answer {
				chosen = c.Choose(opt.ID)
				break
			}
		}
		if !chosen {
			fail("聊天回复 %q 没有被接受", step.Answer)
		}
	}
	for !c.ShowComplete() {
		c.Update(frame)
	}
	c.Continue()
	run(c.Update, script.ExitDelay)
}

func playFlowers(store *game.ProgressStore, list *config.FlowerList) {
	f := minigame.NewFlowers(list, store, nil)
	defer f.Teardown()

	f.Pick(list.Flowers[0].ID)
	run(f.Update, config.FlowerProposalDelay)
	f.DodgeNo()
	f.Yes()
	run(f.Update, config.FlowerStoryDelay)
	f.Next()
	run(f.Update, config.FlowerExitDelay)
}

func playCatch(store *game.ProgressStore) {
	spawner := &minigame.ScriptedSpawner{Specs: []minigame.SpawnSpec{
		{Kind: components.ItemPhone, X: 50, Speed: 0.5},
		{Kind: components.ItemFood, X: 20, Speed: 0.4},
	}}
	c := minigame.NewCatch(store, spawner)
	defer c.Teardown()

	c.Start()
	c.MovePlayer(50)
	for i := 0; c.Snapshot().State == minigame.Running; i++ {
		if i > 60*config.TicksPerSecond {
			fail("接手机关卡超时")
		}
		c.Update(frame)
	}
	if !c.Continue() {
		fail("接手机关卡没有获胜: %+v", c.Snapshot())
	}
}

// playFlappy 简单的自动驾驶：低于下一个缝隙中心且正在下落时就起跳
//
// 失败后重试会保留分数，所以总能在有限时间内通关。
func playFlappy(store *game.ProgressStore) {
	f := minigame.NewFlappy(store, rand.New(rand.NewSource(4)))
	defer f.Teardown()

	crashes := 0
	f.Tap()
	for t := 0.0; t < *flappyLimit; t += frame {
		snap := f.Snapshot()
		switch snap.State {
		case minigame.Won:
			fmt.Printf("   🦆 通关，撞了 %d 次\n", crashes)
			if !f.Continue() {
				fail("小鸭关卡无法继续")
			}
			return
		case minigame.Lost:
			crashes++
			f.Tap()
		case minigame.Running:
			target := config.FlappyFloorY / 2
			for _, obs := range snap.Obstacles {
				if obs.X+config.FlappyObstacleWidth >= config.FlappyBirdX {
					target = obs.TopHeight + config.FlappyObstacleGap/2
					break
				}
			}
			if snap.Countdown == 0 && snap.Velocity >= 0 && snap.BirdY+config.FlappyBirdSize/2 > target {
				f.Tap()
			}
		}
		f.Update(frame)
	}
	fail("小鸭关卡在 %.0f 秒内没有通关（分数 %d）", *flappyLimit, f.Snapshot().Score)
}

func playPuzzle(store *game.ProgressStore) {
	p := minigame.NewPuzzle(store, nil)
	defer p.Teardown()

	for _, piece := range p.Pool() {
		p.Place(piece, piece)
	}
	if !p.Continue() {
		fail("拼图没有完成: %v", p.Slots())
	}
}

func playCake(store *game.ProgressStore) {
	c := minigame.NewCake(store, printSharer{})
	defer c.Teardown()

	for i := 0; i < config.CakeCandleClicks; i++ {
		c.ClickCandle()
	}
	run(c.Update, config.CakeLetterDelay)
	if !c.ShowLetter() {
		fail("蜡烛吹灭后信纸没有出现")
	}

	c.SetWishes("Semoga kita selalu bersama.")
	if !c.Send() {
		fail("发送愿望失败: %s", c.Alert())
	}
	c.DismissAlert()

	if *reset {
		c.RequestReset()
		c.AnswerReset(true)
		fmt.Printf("   🔁 进度已重置\n")
		return
	}
	c.Menu()
}
