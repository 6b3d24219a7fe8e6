package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/game"
	"github.com/hbd-sarah/journey/pkg/minigame"
	"github.com/hbd-sarah/journey/pkg/utils"
)

const wishesPlaceholder = "Tuliskan semua harapanmu di umur 15 ini, dan apa yang ingin kamu sampaikan padaku..."

var (
	cakeBackground = color.RGBA{R: 26, G: 5, B: 5, A: 255}
	cakeTier       = [3]color.RGBA{
		{R: 190, G: 24, B: 93, A: 255},
		{R: 219, G: 39, B: 119, A: 255},
		{R: 244, G: 114, B: 182, A: 255},
	}
	cakeCream  = color.RGBA{R: 255, G: 241, B: 242, A: 255}
	candleBody = color.RGBA{R: 191, G: 219, B: 254, A: 255}
	flameOuter = color.RGBA{R: 251, G: 146, B: 60, A: 255}
	flameInner = color.RGBA{R: 254, G: 240, B: 138, A: 255}
	wishPaperColor = color.RGBA{R: 254, G: 252, B: 232, A: 255}
)

// 蛋糕与信纸布局
var (
	cakeRect   = utils.CenteredRect(config.GameWindowWidth/2, 400, 360, 200)
	candleRect = utils.CenteredRect(config.GameWindowWidth/2, 270, 20, 70)
	letterRect = utils.CenteredRect(config.GameWindowWidth/2, config.GameWindowHeight/2, 560, 520)
)

// CakeScene 第 6 关：吹蜡烛并写下愿望
type CakeScene struct {
	deps *Deps
	cake *minigame.Cake
	ui   *uiLayer

	clock        float64
	confirmShown bool
}

// NewCakeScene 创建蛋糕场景
func NewCakeScene(deps *Deps) *CakeScene {
	return &CakeScene{
		deps: deps,
		cake: minigame.NewCake(deps.Store, deps.Sharer),
		ui:   newUILayer(deps.Fonts),
	}
}

// Update 同步蛋糕/信纸控件以及提示框
func (s *CakeScene) Update(deltaTime float64) {
	s.clock += deltaTime
	if s.cake.ShowLetter() {
		s.ui.setMode("letter", s.buildLetter)
	} else {
		s.ui.setMode("cake", func() {
			// 蜡烛和蛋糕都可以点
			area := utils.Rect{X: cakeRect.X, Y: candleRect.Y - 40, W: cakeRect.W, H: cakeRect.Y + cakeRect.H - candleRect.Y + 40}
			s.ui.hitArea(area, func() {
				s.cake.ClickCandle()
			})
		})
	}

	s.ui.update(deltaTime)
	s.cake.Update(deltaTime)

	s.ui.syncAlert(s.cake.Alert(), s.cake.DismissAlert)
	switch {
	case s.cake.ConfirmPending() && !s.confirmShown:
		s.confirmShown = true
		s.ui.confirm(minigame.CakeConfirmReset, func() {
			s.cake.AnswerReset(true)
		}, func() {
			s.cake.AnswerReset(false)
		})
	case !s.cake.ConfirmPending():
		s.confirmShown = false
	}
}

func (s *CakeScene) buildLetter() {
	r := letterRect
	s.ui.textInput(utils.Rect{X: r.X + 30, Y: r.Y + 70, W: r.W - 60, H: 230}, s.cake.Wishes(), wishesPlaceholder, s.cake.SetWishes)
	s.ui.centeredButton(r.X+r.W/2, r.Y+320, 320, "Kirim ke WhatsApp", components.ButtonPrimary, func() {
		if s.cake.Send() {
			s.deps.play(game.SoundWin)
		}
	})
	half := (r.W - 60 - 16) / 2
	s.ui.button(r.X+30, r.Y+380, half, "Kembali ke Menu", components.ButtonSecondary, s.cake.Menu)
	s.ui.button(r.X+30+half+16, r.Y+380, half, "Mulai Dari Awal", components.ButtonDanger, s.cake.RequestReset)
}

// Draw 绘制蛋糕或信纸
func (s *CakeScene) Draw(screen *ebiten.Image) {
	screen.Fill(cakeBackground)
	fonts := s.deps.Fonts

	if s.cake.ShowLetter() {
		utils.FillRoundRect(screen, utils.Rect{X: letterRect.X, Y: letterRect.Y + 6, W: letterRect.W, H: letterRect.H}, 18, config.ColorShadow)
		utils.FillRoundRect(screen, letterRect, 18, wishPaperColor)
		utils.DrawCentered(screen, "Isi Harapan & Pesanmu", fonts.Bold(26), letterRect.X+letterRect.W/2, letterRect.Y+38, config.ColorPrimary)
		utils.DrawCentered(screen, "Terima kasih sudah bermain... Aku sayang kamu selamanya!", fonts.Regular(config.SmallFontSize),
			letterRect.X+letterRect.W/2, letterRect.Y+letterRect.H-40, config.ColorMuted)
		s.ui.draw(screen)
		return
	}

	utils.DrawCentered(screen, "Happy Sweet 15th", fonts.Bold(36), screenRect.W/2, 70, config.ColorGold)
	utils.DrawCentered(screen, s.deps.userName()+" Sayang", fonts.Bold(30), screenRect.W/2, 115, config.ColorPrimary)

	s.drawCake(screen)

	hint := "..."
	if !s.cake.CandleOut() {
		hint = fmt.Sprintf("Tiup lilinnya... (%dx)", config.CakeCandleClicks-s.cake.Clicks())
	}
	utils.DrawCentered(screen, hint, fonts.Regular(config.BodyFontSize), screenRect.W/2, cakeRect.Y+cakeRect.H+40, config.ColorTextLight)
	s.ui.draw(screen)
}

func (s *CakeScene) drawCake(screen *ebiten.Image) {
	// 三层，从下往上逐层变窄
	tierH := cakeRect.H / 3
	for i := 0; i < 3; i++ {
		w := cakeRect.W * (1 - 0.2*float64(i))
		y := cakeRect.Y + cakeRect.H - float64(i+1)*tierH
		tier := utils.Rect{X: cakeRect.X + (cakeRect.W-w)/2, Y: y, W: w, H: tierH}
		utils.FillRoundRect(screen, tier, 10, cakeTier[i])
		utils.FillRect(screen, utils.Rect{X: tier.X, Y: tier.Y, W: tier.W, H: 8}, cakeCream)
		for x := tier.X + 20; x < tier.X+tier.W-10; x += 30 {
			utils.FillCircle(screen, x, y+tierH/2+4, 4, cakeCream)
		}
	}

	utils.FillRect(screen, utils.Rect{X: candleRect.X, Y: candleRect.Y, W: candleRect.W, H: cakeRect.Y - candleRect.Y}, candleBody)

	strength := s.cake.FlameStrength()
	if strength <= 0 {
		// 熄灭后的一缕烟
		cx := candleRect.X + candleRect.W/2
		for i := 0; i < 3; i++ {
			a := uint8(120 - 40*i)
			utils.FillCircle(screen, cx+float64(i%2)*6-3, candleRect.Y-12-float64(i)*14, 5+float64(i)*2, color.RGBA{R: a, G: a, B: a, A: a})
		}
		return
	}
	flicker := 1 + 0.08*utils.Pulse(s.clock, 0.25)
	h := 34 * strength * flicker
	cx, base := candleRect.X+candleRect.W/2, candleRect.Y-4
	utils.FillCircle(screen, cx, base-h/3, h/3, flameOuter)
	utils.FillTriangle(screen, cx-h/3, base-h/3, cx+h/3, base-h/3, cx, base-h, flameOuter)
	utils.FillCircle(screen, cx, base-h/4, h/6, flameInner)
}

// Teardown 取消计时
func (s *CakeScene) Teardown() {
	s.cake.Teardown()
	s.ui.teardown()
}
