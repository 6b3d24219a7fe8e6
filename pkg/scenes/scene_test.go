package scenes

import (
	"testing"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/game"
	"github.com/hbd-sarah/journey/pkg/minigame"
	"github.com/hbd-sarah/journey/pkg/systems"
	"github.com/hbd-sarah/journey/pkg/utils"
)

const frame = 1.0 / 60

func newTestDeps(t *testing.T) *Deps {
	t.Helper()
	levels, err := config.LoadLevelTable("../../data/levels.yaml")
	if err != nil {
		t.Fatalf("LoadLevelTable: %v", err)
	}
	chat, err := config.LoadChatScript("../../data/chat.yaml")
	if err != nil {
		t.Fatalf("LoadChatScript: %v", err)
	}
	flowers, err := config.LoadFlowerList("../../data/flowers.yaml")
	if err != nil {
		t.Fatalf("LoadFlowerList: %v", err)
	}
	return &Deps{
		Store:   game.NewProgressStore(game.NewSaveManager(game.NewMemoryStorage())),
		Levels:  levels,
		Chat:    chat,
		Flowers: flowers,
	}
}

// feedInput 让接下来的帧依次读到给定输入，之后读到空输入
func feedInput(t *testing.T, frames ...frameInput) {
	t.Helper()
	queue := append([]frameInput(nil), frames...)
	readInput = func() frameInput {
		if len(queue) == 0 {
			return frameInput{}
		}
		in := queue[0]
		queue = queue[1:]
		return in
	}
	t.Cleanup(func() { readInput = readFrameInput })
}

func press(x, y float64) frameInput {
	return frameInput{Pointer: utils.Pointer{X: x, Y: y, Pressed: true, JustPressed: true}}
}

func release(x, y float64) frameInput {
	return frameInput{Pointer: utils.Pointer{X: x, Y: y, JustReleased: true}}
}

func hover(x, y float64) frameInput {
	return frameInput{Pointer: utils.Pointer{X: x, Y: y}}
}

// clickButton 按下并在同一位置释放
func clickButton(t *testing.T, scene Scene, x, y float64) {
	t.Helper()
	feedInput(t, press(x, y), release(x, y))
	scene.Update(frame)
	scene.Update(frame)
}

func rectCenter(r utils.Rect) (float64, float64) {
	return r.Center()
}

func TestFactoryRoutes(t *testing.T) {
	deps := newTestDeps(t)
	factory := NewFactory(deps)

	tests := []struct {
		screen game.ScreenID
		check  func(Scene) bool
	}{
		{game.ScreenLetter, func(s Scene) bool { _, ok := s.(*LetterScene); return ok }},
		{game.ScreenMap, func(s Scene) bool { _, ok := s.(*MapScene); return ok }},
		{game.ScreenChat, func(s Scene) bool { _, ok := s.(*ChatScene); return ok }},
		{game.ScreenFlowers, func(s Scene) bool { _, ok := s.(*FlowersScene); return ok }},
		{game.ScreenCatch, func(s Scene) bool { _, ok := s.(*CatchScene); return ok }},
		{game.ScreenFlappy, func(s Scene) bool { _, ok := s.(*FlappyScene); return ok }},
		{game.ScreenPuzzle, func(s Scene) bool { _, ok := s.(*PuzzleScene); return ok }},
		{game.ScreenCake, func(s Scene) bool { _, ok := s.(*CakeScene); return ok }},
		{game.ScreenComingSoon, func(s Scene) bool { _, ok := s.(*ComingSoonScene); return ok }},
	}
	for _, tt := range tests {
		scene := factory(tt.screen)
		if !tt.check(scene) {
			t.Errorf("factory(%v) returned %T", tt.screen, scene)
		}
		scene.Teardown()
	}
}

func TestLetterSceneOpensEnvelope(t *testing.T) {
	deps := newTestDeps(t)
	s := NewLetterScene(deps)
	defer s.Teardown()

	// 第一帧建立点击区域
	feedInput(t)
	s.Update(frame)

	cx, cy := rectCenter(envelopeRect())
	feedInput(t, press(cx, cy))
	s.Update(frame)

	if s.letter.Phase() != minigame.LetterOpening {
		t.Fatalf("Phase = %v, want opening", s.letter.Phase())
	}
}

func TestMapSceneClickUnlockedNode(t *testing.T) {
	deps := newTestDeps(t)
	deps.Store.OpenLetter()
	s := NewMapScene(deps)
	defer s.Teardown()

	node, _ := deps.Levels.Node(1)
	x, y := nodeCenter(node)
	feedInput(t, press(x, y))
	s.Update(frame)

	if got := deps.Store.Record().CurrentLevel; got != 1 {
		t.Errorf("CurrentLevel = %d, want 1", got)
	}
}

func TestMapSceneLockedNodeIgnored(t *testing.T) {
	deps := newTestDeps(t)
	deps.Store.OpenLetter()
	s := NewMapScene(deps)
	defer s.Teardown()

	node, _ := deps.Levels.Node(2)
	x, y := nodeCenter(node)
	feedInput(t, press(x, y))
	s.Update(frame)

	if got := deps.Store.Record().CurrentLevel; got != 0 {
		t.Errorf("CurrentLevel = %d, want 0 (level 2 is locked)", got)
	}
}

func TestMapSceneIntroDialog(t *testing.T) {
	deps := newTestDeps(t)
	deps.Store.OpenLetter()
	s := NewMapScene(deps)
	defer s.Teardown()

	feedInput(t)
	for i := 0; i < 4; i++ {
		s.Update(1)
	}
	if !s.ui.dialogOpen() {
		t.Fatal("Expected the welcome dialog after 3 seconds")
	}

	feedInput(t, frameInput{Escape: true})
	s.Update(frame)
	if s.roadmap.PopupVisible() || s.ui.dialogOpen() {
		t.Error("Escape should dismiss the welcome dialog")
	}
}

func TestMapSceneSettingsPanel(t *testing.T) {
	deps := newTestDeps(t)
	deps.Store.OpenLetter()
	deps.Settings = game.NewSettingsManager(nil)
	var fullscreen []bool
	deps.SetFullscreen = func(on bool) { fullscreen = append(fullscreen, on) }
	s := NewMapScene(deps)
	defer s.Teardown()

	feedInput(t)
	s.Update(frame)

	var open ecs.EntityID
	for _, id := range s.ui.widgets {
		if b, ok := ecs.GetComponent[*components.ButtonComponent](s.ui.em, id); ok && b.Label == settingsText {
			open = id
		}
	}
	r, ok := s.ui.widgetRect(open)
	if !ok {
		t.Fatal("Map should show a settings button")
	}
	x, y := rectCenter(r)
	clickButton(t, s, x, y)
	if !s.settings.IsVisible() {
		t.Fatal("Settings button should open the panel")
	}

	// 面板打开时地图节点不可点击
	cx, cy := nodeCenter(deps.Levels.Playable()[0])
	clickButton(t, s, cx, cy)
	if got := game.Route(deps.Store.Record()); got != game.ScreenMap {
		t.Errorf("Route = %v, want map while the panel is open", got)
	}

	em := s.settings.EntityManager()
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, s.settings.FullscreenEntity())
	checkbox, _ := ecs.GetComponent[*components.CheckboxComponent](em, s.settings.FullscreenEntity())
	x, y = rectCenter(systems.CheckboxRect(pos, checkbox))
	clickButton(t, s, x, y)
	if len(fullscreen) != 1 || !fullscreen[0] || !deps.Settings.GetSettings().Fullscreen {
		t.Errorf("Fullscreen calls = %v, setting = %v", fullscreen, deps.Settings.GetSettings().Fullscreen)
	}

	feedInput(t, frameInput{Escape: true})
	s.Update(frame)
	if s.settings.IsVisible() {
		t.Error("Escape should close the panel")
	}
}

func TestChatSceneChoosingOption(t *testing.T) {
	deps := newTestDeps(t)
	s := NewChatScene(deps)
	defer s.Teardown()

	feedInput(t)
	s.Update(frame)
	if !s.chat.AwaitingInput() {
		t.Fatal("Chat should wait for the first reply")
	}

	before := len(s.chat.Transcript())
	// 找到正确的候选回复按钮并点击
	var target ecs.EntityID
	for _, id := range s.ui.widgets {
		b, ok := ecs.GetComponent[*components.ButtonComponent](s.ui.em, id)
		if ok && b.Label == deps.Chat.Steps[1].Answer {
			target = id
		}
	}
	if target == 0 {
		t.Fatalf("No option button labelled %q", deps.Chat.Steps[1].Answer)
	}
	r, _ := s.ui.widgetRect(target)
	x, y := rectCenter(r)
	clickButton(t, s, x, y)

	if got := len(s.chat.Transcript()); got != before+1 {
		t.Errorf("Transcript length = %d, want %d", got, before+1)
	}
}

func TestFlowersSceneNoButtonDodges(t *testing.T) {
	deps := newTestDeps(t)
	s := NewFlowersScene(deps)
	defer s.Teardown()

	feedInput(t)
	s.Update(frame)

	cx, cy := rectCenter(flowerCardRect(0))
	feedInput(t, press(cx, cy))
	s.Update(frame)
	if s.flowers.Phase() != minigame.FlowersProposal {
		t.Fatalf("Phase = %v, want proposal", s.flowers.Phase())
	}

	feedInput(t)
	s.Update(config.FlowerProposalDelay + frame)
	s.Update(frame)
	if s.noButton == 0 {
		t.Fatal("Expected the No button to be built")
	}

	before, _ := s.ui.widgetRect(s.noButton)
	x, y := rectCenter(before)
	// 连续悬停直到按钮移开（偏移随机，极少数情况落回原处）
	moved := false
	for i := 0; i < 5 && !moved; i++ {
		feedInput(t, hover(x, y))
		s.Update(frame)
		after, _ := s.ui.widgetRect(s.noButton)
		moved = after != before
	}
	if !moved {
		t.Error("Hovering the No button should move it")
	}
	if got := deps.Store.Record().FlowerChoice; got == "" {
		t.Error("Picking a flower should record the choice")
	}
}

func TestCatchSceneStartAndFollowPointer(t *testing.T) {
	deps := newTestDeps(t)
	s := NewCatchScene(deps)
	defer s.Teardown()

	feedInput(t)
	s.Update(frame)
	clickButton(t, s, screenRect.W/2, screenRect.H/2+40+config.ButtonHeight/2)
	if got := s.catch.Snapshot().State; got != minigame.Running {
		t.Fatalf("State = %v, want running", got)
	}

	feedInput(t, hover(playRect.X+playRect.W/4, playRect.Y+playRect.H/2))
	s.Update(frame)
	if got := s.catch.Snapshot().PlayerX; got != 25 {
		t.Errorf("PlayerX = %v, want 25", got)
	}
}

func TestFlappySceneSpaceStartsCountdown(t *testing.T) {
	deps := newTestDeps(t)
	s := NewFlappyScene(deps)
	defer s.Teardown()

	feedInput(t, frameInput{Jump: true})
	s.Update(frame)

	snap := s.flappy.Snapshot()
	if snap.State != minigame.Running || snap.Countdown != config.FlappyCountdown {
		t.Errorf("Snapshot = %+v, want a running countdown", snap)
	}
}

func TestPuzzleSceneDragPieceIntoSlot(t *testing.T) {
	deps := newTestDeps(t)
	s := NewPuzzleScene(deps)
	defer s.Teardown()

	piece := s.puzzle.Pool()[0]
	px, py := rectCenter(poolRect(0))
	sx, sy := rectCenter(slotRect(4))
	feedInput(t,
		press(px, py),
		frameInput{Pointer: utils.Pointer{X: sx, Y: sy, Pressed: true}},
		release(sx, sy),
	)
	for i := 0; i < 3; i++ {
		s.Update(frame)
	}

	if got := s.puzzle.Slots()[4]; got != piece {
		t.Fatalf("Slot 4 = %d, want piece %d", got, piece)
	}

	// 点击格子里的拼图块放回候选池
	feedInput(t, press(sx, sy), release(sx, sy))
	s.Update(frame)
	s.Update(frame)
	if got := s.puzzle.Slots()[4]; got != minigame.EmptySlot {
		t.Errorf("Slot 4 = %d after tap, want empty", got)
	}
}

// blowCandle 点 5 次蜡烛并等信纸出现
func blowCandle(t *testing.T, s *CakeScene) {
	t.Helper()
	cx, cy := rectCenter(candleRect)
	for i := 0; i < config.CakeCandleClicks; i++ {
		feedInput(t, press(cx, cy))
		s.Update(frame)
	}
	if !s.cake.CandleOut() {
		t.Fatalf("Candle should be out after %d clicks", config.CakeCandleClicks)
	}
	feedInput(t)
	s.Update(config.CakeLetterDelay)
	s.Update(frame)
	if !s.cake.ShowLetter() {
		t.Fatal("Letter should be visible")
	}
}

func TestCakeSceneEmptyWishesAlert(t *testing.T) {
	deps := newTestDeps(t)
	s := NewCakeScene(deps)
	defer s.Teardown()
	blowCandle(t, s)

	clickButton(t, s, letterRect.X+letterRect.W/2, letterRect.Y+320+config.ButtonHeight/2)
	if s.cake.Alert() != minigame.CakeAlertEmpty || !s.ui.dialogOpen() {
		t.Fatalf("Expected the empty-wishes alert, got %q", s.cake.Alert())
	}

	feedInput(t, frameInput{Escape: true})
	s.Update(frame)
	if s.cake.Alert() != "" || s.ui.dialogOpen() {
		t.Error("Escape should dismiss the alert")
	}
}

func TestCakeSceneResetConfirm(t *testing.T) {
	deps := newTestDeps(t)
	deps.Store.OpenLetter()
	s := NewCakeScene(deps)
	defer s.Teardown()
	blowCandle(t, s)

	half := (letterRect.W - 60 - 16) / 2
	resetX := letterRect.X + 30 + half + 16 + half/2
	resetY := letterRect.Y + 380 + config.ButtonHeight/2

	// 取消
	clickButton(t, s, resetX, resetY)
	if !s.cake.ConfirmPending() {
		t.Fatal("Reset should ask for confirmation")
	}
	feedInput(t, frameInput{Escape: true})
	s.Update(frame)
	if s.cake.ConfirmPending() || !deps.Store.Record().IsLetterOpened {
		t.Fatal("Cancelling must keep the progress")
	}

	// 确认：等弹出动画结束后点第一个按钮
	clickButton(t, s, resetX, resetY)
	feedInput(t)
	s.Update(config.DialogPopSeconds)

	ids := ecs.GetEntitiesWith2[*components.DialogComponent, *components.PositionComponent](s.ui.em)
	if len(ids) != 1 {
		t.Fatalf("Expected one confirm dialog, got %d", len(ids))
	}
	dialog, _ := ecs.GetComponent[*components.DialogComponent](s.ui.em, ids[0])
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.ui.em, ids[0])
	x, y := rectCenter(systems.DialogButtonRects(dialog, pos)[0])
	clickButton(t, s, x, y)

	if deps.Store.Record().IsLetterOpened {
		t.Error("Confirming should reset the progress")
	}
}

func TestComingSoonEscapeReturnsToMap(t *testing.T) {
	deps := newTestDeps(t)
	deps.Store.OpenLetter()
	deps.Store.UnlockLevel(7)
	if !deps.Store.SelectLevel(7) {
		t.Fatal("SelectLevel(7) failed")
	}
	s := NewComingSoonScene(deps)
	defer s.Teardown()
	if s.model.Level() != 7 {
		t.Errorf("Level = %d, want 7", s.model.Level())
	}

	feedInput(t, frameInput{Escape: true})
	s.Update(frame)
	if got := deps.Store.Record().CurrentLevel; got != 0 {
		t.Errorf("CurrentLevel = %d, want 0", got)
	}
}
