package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/game"
	"github.com/hbd-sarah/journey/pkg/minigame"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// 键盘移动速度（百分比/秒）
const catchKeySpeed = 60.0

var (
	catchSky    = color.RGBA{R: 224, G: 242, B: 254, A: 255}
	catchPhone  = color.RGBA{R: 30, G: 41, B: 59, A: 255}
	catchScreen = color.RGBA{R: 96, G: 165, B: 250, A: 255}
	catchBomb   = color.RGBA{R: 17, G: 24, B: 39, A: 255}
	catchFuse   = color.RGBA{R: 249, G: 115, B: 22, A: 255}
	catchHand   = color.RGBA{R: 253, G: 186, B: 116, A: 255}

	// 食物图案用不同颜色区分
	foodColors = [minigame.FoodVariants]color.RGBA{
		{R: 239, G: 68, B: 68, A: 255},
		{R: 234, G: 179, B: 8, A: 255},
		{R: 34, G: 197, B: 94, A: 255},
		{R: 168, G: 85, B: 247, A: 255},
		{R: 249, G: 115, B: 22, A: 255},
		{R: 120, G: 53, B: 15, A: 255},
		{R: 244, G: 114, B: 182, A: 255},
	}
)

// CatchScene 第 3 关：接手机
type CatchScene struct {
	deps  *Deps
	catch *minigame.Catch
	ui    *uiLayer
	last  minigame.State
}

// NewCatchScene 创建接手机场景
func NewCatchScene(deps *Deps) *CatchScene {
	return &CatchScene{
		deps:  deps,
		catch: minigame.NewCatch(deps.Store, nil),
		ui:    newUILayer(deps.Fonts),
	}
}

// Update 处理移动并推进游戏循环
func (s *CatchScene) Update(deltaTime float64) {
	snap := s.catch.Snapshot()
	switch snap.State {
	case minigame.NotStarted:
		s.ui.setMode("start", func() {
			s.ui.centeredButton(screenRect.W/2, screenRect.H/2+40, 240, "MULAI MISI!", components.ButtonPrimary, func() {
				s.catch.Start()
			})
		})
	case minigame.Lost:
		s.ui.setMode("lost", func() {
			s.ui.centeredButton(screenRect.W/2, resultButtonY(), 220, "Coba Lagi", components.ButtonPrimary, func() {
				s.catch.Retry()
			})
		})
	case minigame.Won:
		s.ui.setMode("won", func() {
			s.ui.centeredButton(screenRect.W/2, storyButtonY(), 240, "Next Level", components.ButtonPrimary, func() {
				s.catch.Continue()
			})
		})
	default:
		s.ui.setMode("running", nil)
	}

	in, free := s.ui.update(deltaTime)
	if snap.State == minigame.Running {
		x := snap.PlayerX + in.Axis*catchKeySpeed*deltaTime
		// 鼠标跟随移动，触摸只在按住时移动
		if free && (!in.Pointer.Touch || in.Pointer.Pressed) && in.Axis == 0 && playRect.Contains(in.Pointer.X, in.Pointer.Y) {
			x = fromPlayX(in.Pointer.X)
		}
		s.catch.MovePlayer(x)
	}

	s.catch.Update(deltaTime)
	for _, kind := range s.catch.Caught() {
		if kind == components.ItemPhone {
			s.deps.play(game.SoundNice)
		}
	}

	state := s.catch.Snapshot().State
	if state == minigame.Won && s.last != minigame.Won {
		s.deps.play(game.SoundWin)
	}
	s.last = state
}

// Draw 绘制游戏区域、掉落物和计分
func (s *CatchScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)
	fonts := s.deps.Fonts
	snap := s.catch.Snapshot()

	drawTitle(screen, fonts, "Misi Penyelamatan HP!")
	utils.FillRoundRect(screen, playRect, 16, catchSky)

	for _, item := range snap.Items {
		x, y := toPlay(item.X, item.Y)
		if y < playRect.Y-20 {
			continue
		}
		s.drawItem(screen, item, x, y)
	}

	hx, hy := toPlay(snap.PlayerX, config.CatchZoneTop+5)
	w := config.CatchPlayerWidth / 100 * playRect.W
	utils.FillRoundRect(screen, utils.Rect{X: hx - w/2, Y: hy, W: w, H: 28}, 12, catchHand)

	utils.DrawText(screen, fmt.Sprintf("Skor: %d/%d", snap.Score, config.CatchTargetScore), fonts.Bold(config.BodyFontSize), playRect.X+12, playRect.Y+10, config.ColorText)
	for i := 0; i < snap.Lives; i++ {
		utils.FillHeart(screen, playRect.X+playRect.W-24-float64(i)*28, playRect.Y+22, 10, config.ColorDanger)
	}

	switch snap.State {
	case minigame.NotStarted:
		card := utils.CenteredRect(screenRect.W/2, screenRect.H/2-20, 440, 200)
		drawPanel(screen, card)
		utils.DrawCentered(screen, "HP Sarah jatuh dari langit!", fonts.Bold(22), screenRect.W/2, card.Y+45, config.ColorPrimary)
		utils.DrawCentered(screen, "Bantu tangan ini menangkap 5 HP.", fonts.Regular(config.BodyFontSize), screenRect.W/2, card.Y+85, config.ColorText)
		utils.DrawCentered(screen, "Awas, jangan tangkap Bom ya!", fonts.Regular(config.BodyFontSize), screenRect.W/2, card.Y+112, config.ColorText)
	case minigame.Lost:
		drawResultCard(screen, fonts, "Yah Meledak!", "Nyawa kamu habis... Tangan kamu gosong kena bom.")
	case minigame.Won:
		drawStoryCard(screen, fonts, "Terimakasih Penyelamatku!", catchStory)
	}
	s.ui.draw(screen)
}

func (s *CatchScene) drawItem(screen *ebiten.Image, item minigame.CatchItem, x, y float64) {
	switch item.Kind {
	case components.ItemPhone:
		body := utils.CenteredRect(x, y, 22, 38)
		utils.FillRoundRect(screen, body, 5, catchPhone)
		utils.FillRect(screen, body.Inset(3), catchScreen)
	case components.ItemBomb:
		utils.FillCircle(screen, x, y, 16, catchBomb)
		// 引线随旋转角晃动
		a := item.Rotation * math.Pi / 180
		utils.StrokeLine(screen, x, y-16, x+6*math.Cos(a), y-24, 3, catchFuse)
	default:
		c := foodColors[item.Variant%len(foodColors)]
		utils.FillCircle(screen, x, y, 14, c)
		utils.FillCircle(screen, x-4, y-4, 4, color.RGBA{R: 255, G: 255, B: 255, A: 120})
	}
}

// Teardown 停止游戏循环
func (s *CatchScene) Teardown() {
	s.catch.Teardown()
	s.ui.teardown()
}
