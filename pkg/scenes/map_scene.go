package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/entities"
	"github.com/hbd-sarah/journey/pkg/game"
	"github.com/hbd-sarah/journey/pkg/minigame"
	"github.com/hbd-sarah/journey/pkg/modules"
	"github.com/hbd-sarah/journey/pkg/utils"
)

const (
	introTitle   = "Selamat Datang"
	introMessage = "Di balkon istana cinta kita... Lihatlah pemandangan indah perjalanan kita. Mulailah dari langkah pertama."
	introButton  = "Mulai"
	settingsText = "Setelan"

	nodeRadius     = 26.0
	duckSize       = 36.0
	curtainSeconds = 1.2
)

var (
	mapSkyTop    = color.RGBA{R: 42, G: 8, B: 8, A: 255}
	mapSkyGlow   = color.RGBA{R: 92, G: 11, B: 11, A: 255}
	curtainColor = color.RGBA{R: 120, G: 10, B: 30, A: 255}
	pathColor    = color.RGBA{R: 255, G: 215, B: 0, A: 140}
	duckColor    = color.RGBA{R: 253, G: 224, B: 71, A: 255}
	duckBeak     = color.RGBA{R: 249, G: 115, B: 22, A: 255}
)

// MapScene 关卡地图
type MapScene struct {
	deps    *Deps
	roadmap  *minigame.Roadmap
	ui       *uiLayer
	settings *modules.SettingsPanelModule // 可为 nil

	duck        ecs.EntityID
	popupShown  bool
	curtain     float64 // 窗帘打开后的时间（秒）
	clock       float64
	nodesMarker string // 节点状态变化时重建点击区域
}

// NewMapScene 创建地图场景
func NewMapScene(deps *Deps) *MapScene {
	var flag minigame.IntroFlag
	if deps.Store != nil {
		flag = deps.Store.SaveManager()
	}
	s := &MapScene{
		deps:    deps,
		roadmap: minigame.NewRoadmap(deps.Levels, deps.Store, flag),
		ui:      newUILayer(deps.Fonts),
	}
	if deps.Settings != nil {
		s.settings = modules.NewSettingsPanelModule(deps.Settings, deps.Fonts, screenRect.W, screenRect.H,
			modules.SettingsPanelCallbacks{
				OnFullscreenToggle: deps.SetFullscreen,
				OnPreview:          func() { deps.play(game.SoundNice) },
			})
		s.ui.overlay = s.settings
	}
	return s
}

// nodeCenter 节点的屏幕坐标
func nodeCenter(n config.LevelNode) (float64, float64) {
	return toScreen(n.X, n.Y)
}

// Update 推进动画、同步弹窗并处理点击
func (s *MapScene) Update(deltaTime float64) {
	s.clock += deltaTime
	if s.roadmap.WindowOpen() {
		s.curtain += deltaTime
	}

	// 开发者模式会解锁全部节点，需要重建点击区域
	marker := s.nodeMarker()
	s.ui.setMode(marker, s.buildWidgets)

	if x, y, visible := s.roadmap.DuckPosition(); s.duck != 0 {
		sx, sy := toScreen(x, y)
		s.ui.moveWidget(s.duck, sx-duckSize/2, sy-duckSize/2)
		s.ui.setEnabled(s.duck, visible)
	}

	s.ui.update(deltaTime)
	s.roadmap.Update(deltaTime)

	if s.roadmap.PopupVisible() && !s.popupShown {
		s.popupShown = true
		entities.NewDialogEntity(s.ui.em, introTitle, introMessage, []components.DialogButton{
			{Label: introButton, Style: components.ButtonPrimary, OnClick: s.roadmap.DismissPopup},
		}, screenRect.W, screenRect.H)
	}
	s.ui.syncAlert(s.roadmap.Alert(), s.roadmap.DismissAlert)
}

func (s *MapScene) nodeMarker() string {
	marker := ""
	for _, n := range s.roadmap.Nodes() {
		marker += fmt.Sprintf("%d:%t:%t;", n.ID, n.Unlocked, n.Completed)
	}
	return marker
}

func (s *MapScene) buildWidgets() {
	for _, n := range s.roadmap.Nodes() {
		node := n
		cx, cy := nodeCenter(node.LevelNode)
		area := s.ui.hitArea(utils.CenteredRect(cx, cy, nodeRadius*2, nodeRadius*2), func() {
			if s.roadmap.ClickLevel(node.ID) {
				s.deps.play(game.SoundNice)
			}
		})
		s.ui.setEnabled(area, node.Unlocked)
	}
	s.duck = s.ui.hitArea(utils.Rect{X: -duckSize, Y: -duckSize, W: duckSize, H: duckSize}, s.roadmap.ClickDuck)
	if s.settings != nil {
		s.ui.button(screenRect.W-136, 16, 120, settingsText, components.ButtonSecondary, s.settings.Show)
	}
}

// Draw 绘制地图
func (s *MapScene) Draw(screen *ebiten.Image) {
	screen.Fill(mapSkyTop)
	utils.FillCircle(screen, screenRect.W/2, screenRect.H*0.6, screenRect.W*0.45, mapSkyGlow)
	s.drawStars(screen)

	fonts := s.deps.Fonts
	nodes := s.roadmap.Nodes()
	for i := 0; i+1 < len(nodes); i++ {
		x0, y0 := nodeCenter(nodes[i].LevelNode)
		x1, y1 := nodeCenter(nodes[i+1].LevelNode)
		utils.StrokeLine(screen, x0, y0, x1, y1, 4, pathColor)
	}

	for _, n := range nodes {
		cx, cy := nodeCenter(n.LevelNode)
		fill := config.ColorLocked
		switch {
		case n.Completed:
			fill = config.ColorCompleted
		case n.Unlocked:
			fill = config.ColorPrimary
			// 当前可玩的节点呼吸发光
			glow := nodeRadius + 6 + 4*utils.Pulse(s.clock, 1.5)
			utils.FillCircle(screen, cx, cy, glow, color.RGBA{R: 255, G: 215, B: 0, A: 70})
		}
		utils.FillCircle(screen, cx, cy, nodeRadius, fill)
		utils.StrokeCircle(screen, cx, cy, nodeRadius, 3, config.ColorGold)
		label := fmt.Sprintf("%d", n.ID)
		if !n.Unlocked {
			label = "?"
		}
		utils.DrawCentered(screen, label, fonts.Bold(20), cx, cy, config.ColorTextLight)
		utils.DrawCentered(screen, n.Label, fonts.Regular(config.SmallFontSize), cx, cy+nodeRadius+14, config.ColorTextLight)
	}

	if x, y, visible := s.roadmap.DuckPosition(); visible {
		s.drawDuck(screen, x, y)
	}

	drawTitle(screen, fonts, s.roadmap.Title())
	s.drawCurtains(screen)
	s.ui.draw(screen)
}

func (s *MapScene) drawStars(screen *ebiten.Image) {
	for i := 0; i < 40; i++ {
		// 固定的伪随机位置
		x := math.Mod(float64(i)*137.5, screenRect.W)
		y := math.Mod(float64(i)*71.3, screenRect.H*0.7)
		a := uint8(80 + 150*utils.Pulse(s.clock+float64(i)*0.37, 2.5))
		utils.FillCircle(screen, x, y, 1.5, color.RGBA{R: a, G: a, B: a, A: a})
	}
}

func (s *MapScene) drawDuck(screen *ebiten.Image, px, py float64) {
	x, y := toScreen(px, py)
	// 尾焰
	flame := 8 + 4*utils.Pulse(s.clock, 0.2)
	utils.FillTriangle(screen, x-duckSize/2, y-6, x-duckSize/2, y+6, x-duckSize/2-flame*2, y+flame/2, duckBeak)
	utils.FillCircle(screen, x, y, duckSize/2, duckColor)
	utils.FillCircle(screen, x+duckSize/4, y-duckSize/3, duckSize/4, duckColor)
	utils.FillTriangle(screen, x+duckSize/2, y-duckSize/3, x+duckSize/2, y-duckSize/6, x+duckSize/2+10, y-duckSize/4, duckBeak)
	utils.FillCircle(screen, x+duckSize/3, y-duckSize/2.6, 2.5, color.Black)
}

func (s *MapScene) drawCurtains(screen *ebiten.Image) {
	p := utils.EaseInOutCubic(s.curtain / curtainSeconds)
	if p >= 1 {
		return
	}
	half := screenRect.W / 2 * (1 - p)
	utils.FillRect(screen, utils.Rect{W: half, H: screenRect.H}, curtainColor)
	utils.FillRect(screen, utils.Rect{X: screenRect.W - half, W: half, H: screenRect.H}, curtainColor)
}

// Teardown 取消计时
func (s *MapScene) Teardown() {
	s.roadmap.Teardown()
	s.ui.teardown()
}
