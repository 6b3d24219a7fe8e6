package scenes

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/game"
	"github.com/hbd-sarah/journey/pkg/minigame"
	"github.com/hbd-sarah/journey/pkg/utils"
)


// 花店布局
const (
	flowerCols    = 4
	flowerCardW   = 150.0
	flowerCardH   = 130.0
	flowerCardGap = 20.0
	flowerGridTop = 130.0
)

var flowerShopBackground = color.RGBA{R: 60, G: 8, B: 18, A: 255}

// FlowersScene 第 2 关：花店
type FlowersScene struct {
	deps    *Deps
	flowers *minigame.Flowers
	ui      *uiLayer

	noButton ecs.EntityID
	exiting  float64
}

// NewFlowersScene 创建花店场景
func NewFlowersScene(deps *Deps) *FlowersScene {
	return &FlowersScene{
		deps:    deps,
		flowers: minigame.NewFlowers(deps.Flowers, deps.Store, nil),
		ui:      newUILayer(deps.Fonts),
	}
}

func flowerCardRect(i int) utils.Rect {
	total := flowerCols*flowerCardW + (flowerCols-1)*flowerCardGap
	x := (screenRect.W-total)/2 + float64(i%flowerCols)*(flowerCardW+flowerCardGap)
	y := flowerGridTop + float64(i/flowerCols)*(flowerCardH+flowerCardGap)
	return utils.Rect{X: x, Y: y, W: flowerCardW, H: flowerCardH}
}

func proposalRect() utils.Rect {
	return utils.CenteredRect(screenRect.W/2, screenRect.H/2, 420, 360)
}


// Update 同步阶段控件
func (s *FlowersScene) Update(deltaTime float64) {
	switch {
	case s.flowers.Phase() == minigame.FlowersExiting:
		s.exiting += deltaTime
		s.ui.setMode("exiting", nil)
	case s.flowers.StoryOpen():
		s.ui.setMode("story", func() {
			s.ui.centeredButton(screenRect.W/2, storyButtonY(), 300, "Lanjut ke Level Berikutnya", components.ButtonPrimary, func() {
				s.flowers.Next()
			})
		})
	case s.flowers.ProposalOpen():
		s.ui.setMode("proposal", s.buildProposal)
	case s.flowers.Phase() == minigame.FlowersPicking:
		s.ui.setMode("picking", s.buildCards)
	default:
		s.ui.setMode("waiting", nil)
	}

	in, free := s.ui.update(deltaTime)
	if free && s.noButton != 0 {
		s.dodge(in.Pointer)
	}
	s.flowers.Update(deltaTime)
}

func (s *FlowersScene) buildCards() {
	s.noButton = 0
	for i, f := range s.flowers.Choices() {
		id := f.ID
		s.ui.hitArea(flowerCardRect(i), func() {
			if s.flowers.Pick(id) {
				s.deps.play(game.SoundNice)
			}
		})
	}
}

func (s *FlowersScene) buildProposal() {
	r := proposalRect()
	cx := r.X + r.W/2
	s.ui.centeredButton(cx, r.Y+r.H-130, 300, "YES, I Will!", components.ButtonPrimary, func() {
		if s.flowers.Yes() {
			s.deps.play(game.SoundWin)
		}
	})
	// “No” 按钮没有回调，只会躲开
	s.noButton = s.ui.centeredButton(cx, r.Y+r.H-70, 200, "Ngga mau ah... :p", components.ButtonSecondary, nil)
}

// dodge 指针碰到“No”按钮时让它跳开
func (s *FlowersScene) dodge(p utils.Pointer) {
	rect, ok := s.ui.widgetRect(s.noButton)
	if !ok || !rect.Contains(p.X, p.Y) {
		return
	}
	dx, dy := s.flowers.DodgeNo()
	r := proposalRect()
	x := r.X + r.W/2 - rect.W/2 + dx
	y := r.Y + r.H - 70 + dy
	// 不让按钮跑出屏幕
	x = min(max(x, 0), screenRect.W-rect.W)
	y = min(max(y, 0), screenRect.H-rect.H)
	s.ui.moveWidget(s.noButton, x, y)
	log.Printf("[FlowersScene] No button dodged to (%.0f, %.0f)", x, y)
}

// Draw 绘制花店
func (s *FlowersScene) Draw(screen *ebiten.Image) {
	screen.Fill(flowerShopBackground)
	fonts := s.deps.Fonts

	if s.flowers.Phase() == minigame.FlowersPicking || s.flowers.ProposalOpen() {
		utils.DrawCentered(screen, "The Flower Shop", fonts.Bold(36), screenRect.W/2, 55, config.ColorGold)
		utils.DrawCentered(screen, "Pilih bunga untuk dia yang spesial", fonts.Regular(config.SmallFontSize), screenRect.W/2, 95, config.ColorTextLight)
		for i, f := range s.flowers.Choices() {
			s.drawCard(screen, flowerCardRect(i), f)
		}
	}

	if s.flowers.ProposalOpen() {
		utils.Dim(screen, 140)
		r := proposalRect()
		drawPanel(screen, r)
		if f, ok := s.flowers.Selected(); ok {
			drawFlower(screen, r.X+r.W/2, r.Y+80, 40, flowerColor(f))
		}
		utils.DrawCentered(screen, "Maukah dirimu menjadi", fonts.Bold(26), r.X+r.W/2, r.Y+160, config.ColorPrimary)
		utils.DrawCentered(screen, "Pasanganku?", fonts.Bold(26), r.X+r.W/2, r.Y+194, config.ColorPrimary)
	}

	if s.flowers.StoryOpen() || s.flowers.Phase() == minigame.FlowersExiting {
		drawStoryCard(screen, fonts, "Awal Kisah Cinta Kita...", flowersStory)
	}

	s.ui.draw(screen)
	if s.flowers.Phase() == minigame.FlowersExiting {
		drawFade(screen, s.exiting/config.FlowerExitDelay)
	}
}

func (s *FlowersScene) drawCard(screen *ebiten.Image, r utils.Rect, f config.Flower) {
	fonts := s.deps.Fonts
	utils.FillRoundRect(screen, r, 16, color.RGBA{R: 255, G: 255, B: 255, A: 24})
	if sel, ok := s.flowers.Selected(); ok && sel.ID == f.ID {
		utils.StrokeRect(screen, r, 3, config.ColorGold)
	}
	drawFlower(screen, r.X+r.W/2, r.Y+45, 24, flowerColor(f))
	utils.DrawCentered(screen, f.Name, fonts.Bold(config.SmallFontSize), r.X+r.W/2, r.Y+95, config.ColorTextLight)
	utils.DrawCentered(screen, f.Desc, fonts.Regular(11), r.X+r.W/2, r.Y+114, config.ColorMuted)
}

// drawFlower 五片花瓣加花心
func drawFlower(screen *ebiten.Image, cx, cy, size float64, petal color.RGBA) {
	offsets := [][2]float64{{0, -1}, {0.95, -0.31}, {0.59, 0.81}, {-0.59, 0.81}, {-0.95, -0.31}}
	for _, o := range offsets {
		utils.FillCircle(screen, cx+o[0]*size*0.55, cy+o[1]*size*0.55, size*0.45, petal)
	}
	utils.FillCircle(screen, cx, cy, size*0.3, config.ColorGold)
}

func flowerColor(f config.Flower) color.RGBA {
	c, err := config.ParseHexColor(f.Color)
	if err != nil {
		return config.ColorPrimary
	}
	return c
}

// Teardown 取消计时
func (s *FlowersScene) Teardown() {
	s.flowers.Teardown()
	s.ui.teardown()
}
