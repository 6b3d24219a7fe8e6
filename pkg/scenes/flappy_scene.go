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

var (
	spaceBackground = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	planetColor     = color.RGBA{R: 129, G: 140, B: 248, A: 255}
	planetRing      = color.RGBA{R: 199, G: 210, B: 254, A: 255}
	spaceFloor      = color.RGBA{R: 71, G: 85, B: 105, A: 255}
)

// FlappyScene 第 4 关：太空小鸭
type FlappyScene struct {
	deps   *Deps
	flappy *minigame.Flappy
	ui     *uiLayer

	clock float64
	score int
	last  minigame.State
}

// NewFlappyScene 创建小鸭场景
func NewFlappyScene(deps *Deps) *FlappyScene {
	return &FlappyScene{
		deps:   deps,
		flappy: minigame.NewFlappy(deps.Store, nil),
		ui:     newUILayer(deps.Fonts),
	}
}

// Update 点击或空格让小鸭起飞
func (s *FlappyScene) Update(deltaTime float64) {
	s.clock += deltaTime
	snap := s.flappy.Snapshot()
	switch snap.State {
	case minigame.Lost:
		s.ui.setMode("lost", func() {
			s.ui.centeredButton(screenRect.W/2, resultButtonY(), 220, "Coba Lagi", components.ButtonPrimary, s.flappy.Tap)
		})
	case minigame.Won:
		s.ui.setMode("won", func() {
			s.ui.centeredButton(screenRect.W/2, storyButtonY(), 240, "Lanjut Sayang", components.ButtonPrimary, func() {
				s.flappy.Continue()
			})
		})
	default:
		s.ui.setMode("flying", nil)
	}

	in, free := s.ui.update(deltaTime)
	tapped := free && in.Pointer.JustPressed && playRect.Contains(in.Pointer.X, in.Pointer.Y)
	if snap.State != minigame.Won && (tapped || in.Jump) {
		s.flappy.Tap()
	}

	s.flappy.Update(deltaTime)

	snap = s.flappy.Snapshot()
	if snap.Score > s.score {
		s.deps.play(game.SoundNice)
	}
	s.score = snap.Score
	if snap.State == minigame.Won && s.last != minigame.Won {
		s.deps.play(game.SoundWin)
	}
	s.last = snap.State
}

// Draw 绘制太空、行星和小鸭
func (s *FlappyScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)
	fonts := s.deps.Fonts
	snap := s.flappy.Snapshot()

	drawTitle(screen, fonts, "Bebek Angkasa")
	utils.FillRoundRect(screen, playRect, 16, spaceBackground)
	for i := 0; i < 30; i++ {
		x := playRect.X + math.Mod(float64(i)*97.3, playRect.W)
		y := playRect.Y + math.Mod(float64(i)*53.9, playRect.H*0.85)
		utils.FillCircle(screen, x, y, 1.2, color.RGBA{R: 200, G: 200, B: 220, A: 200})
	}

	w := config.FlappyObstacleWidth / 100 * playRect.W
	for _, obs := range snap.Obstacles {
		x, _ := toPlay(obs.X, 0)
		if x+w < playRect.X || x > playRect.X+playRect.W {
			continue
		}
		_, topY := toPlay(0, obs.TopHeight)
		_, bottomY := toPlay(0, obs.TopHeight+config.FlappyObstacleGap)
		utils.FillRect(screen, utils.Rect{X: x, Y: playRect.Y, W: w, H: topY - playRect.Y}, planetColor)
		utils.FillRect(screen, utils.Rect{X: x, Y: bottomY, W: w, H: playRect.Y + playRect.H - bottomY}, planetColor)
		utils.FillRect(screen, utils.Rect{X: x - 4, Y: topY - 10, W: w + 8, H: 10}, planetRing)
		utils.FillRect(screen, utils.Rect{X: x - 4, Y: bottomY, W: w + 8, H: 10}, planetRing)
	}

	_, floorY := toPlay(0, config.FlappyFloorY+config.FlappyBirdSize)
	utils.FillRect(screen, utils.Rect{X: playRect.X, Y: floorY, W: playRect.W, H: playRect.Y + playRect.H - floorY}, spaceFloor)

	// 无敌时闪烁
	if !snap.Immune || utils.Pulse(s.clock, 0.3) > 0.5 {
		s.drawDuck(screen, snap)
	}

	utils.DrawText(screen, fmt.Sprintf("%d / %d", snap.Score, config.FlappyTargetScore), fonts.Bold(24), playRect.X+16, playRect.Y+12, config.ColorTextLight)
	if snap.Immune {
		utils.DrawCentered(screen, "(Kebal Sementara!)", fonts.Bold(config.SmallFontSize), screenRect.W/2, playRect.Y+24, config.ColorGold)
	}

	switch {
	case snap.State == minigame.NotStarted:
		utils.DrawCentered(screen, "Ketuk untuk Terbang! Hindari Planet!", fonts.Bold(22), screenRect.W/2, screenRect.H/2-20, config.ColorTextLight)
		utils.DrawCentered(screen, "Ketuk Layar atau Spasi", fonts.Regular(config.BodyFontSize), screenRect.W/2, screenRect.H/2+16, config.ColorMuted)
	case snap.Countdown > 0:
		utils.DrawCentered(screen, fmt.Sprintf("%d", snap.Countdown), fonts.Bold(72), screenRect.W/2, screenRect.H/2, config.ColorGold)
	case snap.State == minigame.Lost:
		drawResultCard(screen, fonts, "Nabrak Sayang!", fmt.Sprintf("Skor Kamu: %d (Lanjut dari sini!)", snap.Score))
	case snap.State == minigame.Won:
		drawStoryCard(screen, fonts, "Hore Berhasil!", flappyStory)
	}
	s.ui.draw(screen)
}

func (s *FlappyScene) drawDuck(screen *ebiten.Image, snap minigame.FlappySnapshot) {
	x, y := toPlay(config.FlappyBirdX, snap.BirdY)
	size := config.FlappyBirdSize / 100 * playRect.H
	cx, cy := x+size/2, y+size/2
	// 速度越大头越往下
	tilt := utils.Lerp(-0.3, 0.3, utils.Clamp01((snap.Velocity+2)/4))
	utils.FillCircle(screen, cx, cy, size/2, duckColor)
	utils.FillTriangle(screen, cx+size/2, cy-4+tilt*10, cx+size/2, cy+4+tilt*10, cx+size/2+10, cy+tilt*14, duckBeak)
	utils.FillCircle(screen, cx+size/5, cy-size/5, 3, color.Black)
}

// Teardown 停止游戏循环
func (s *FlappyScene) Teardown() {
	s.flappy.Teardown()
	s.ui.teardown()
}
