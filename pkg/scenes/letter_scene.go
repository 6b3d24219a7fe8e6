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

// letterBody 信的正文，%s 为称呼
const letterBody = `Dear %s....

Cieeee... ada yang ulang tahun nih!!! Aku yakin banget hari ini bakal jadi hari yang spesial buat kamu, dan buat aku juga.

Selamat ulang tahun ya sayangku. Semoga di umur yang baru ini kamu selalu dikelilingi kebahagiaan, kesehatan, dan rezeki yang melimpah.

Biar makin spesial, yuk ikutin aku berpetualang menjelajahi hubungan kita yang udah kita bangun selama ini!`

var (
	envelopeColor = color.RGBA{R: 139, G: 0, B: 0, A: 255}
	envelopeFlap  = color.RGBA{R: 110, G: 0, B: 0, A: 255}
	paperColor    = color.RGBA{R: 255, G: 251, B: 235, A: 255}
	sealColor     = color.RGBA{R: 250, G: 204, B: 21, A: 255}
)

// LetterScene 开场信封
type LetterScene struct {
	deps   *Deps
	letter *minigame.Letter
	ui     *uiLayer
	clock  float64
}

// NewLetterScene 创建开场信封场景
func NewLetterScene(deps *Deps) *LetterScene {
	return &LetterScene{
		deps:   deps,
		letter: minigame.NewLetter(deps.Store),
		ui:     newUILayer(deps.Fonts),
	}
}

func envelopeRect() utils.Rect {
	return utils.CenteredRect(screenRect.W/2, screenRect.H/2, 360, 230)
}

func paperRect() utils.Rect {
	return utils.CenteredRect(screenRect.W/2, screenRect.H/2, 560, 520)
}

// Update 推进动画并处理点击
func (s *LetterScene) Update(deltaTime float64) {
	s.clock += deltaTime
	s.ui.update(deltaTime)

	switch s.letter.Phase() {
	case minigame.LetterSealed:
		s.ui.setMode("sealed", func() {
			s.ui.hitArea(envelopeRect(), func() {
				if s.letter.Open() {
					s.deps.play(game.SoundNice)
				}
			})
		})
	case minigame.LetterOpened:
		s.ui.setMode("opened", func() {
			paper := paperRect()
			s.ui.centeredButton(paper.X+paper.W/2, paper.Y+paper.H-config.ButtonHeight-20, 260,
				"Ayooo berpetualang!", components.ButtonPrimary, func() {
					s.letter.StartJourney()
				})
		})
	default:
		s.ui.setMode("animating", nil)
	}

	s.letter.Update(deltaTime)
}

// Draw 绘制信封和信纸
func (s *LetterScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)
	fonts := s.deps.Fonts
	p := s.letter.PhaseProgress()

	switch s.letter.Phase() {
	case minigame.LetterSealed:
		s.drawEnvelope(screen, 1, 0)
		alpha := uint8(120 + 135*utils.Pulse(s.clock, 1.6))
		hint := color.RGBA{R: scale(config.ColorPrimary.R, alpha), G: scale(config.ColorPrimary.G, alpha), B: scale(config.ColorPrimary.B, alpha), A: alpha}
		utils.DrawCentered(screen, "Ketuk surat untuk membuka", fonts.Regular(config.BodyFontSize), screenRect.W/2, envelopeRect().Y+envelopeRect().H+40, hint)
	case minigame.LetterOpening:
		s.drawEnvelope(screen, 1, utils.EaseOutCubic(p))
	case minigame.LetterOpened:
		s.drawPaper(screen, 1)
	case minigame.LetterFolding:
		s.drawPaper(screen, 1-utils.EaseInCubic(p))
	case minigame.LetterClosing:
		s.drawEnvelope(screen, 1, 1-utils.EaseInOutCubic(p))
	case minigame.LetterExiting:
		s.drawEnvelope(screen, 1+2*utils.EaseInCubic(p), 0)
		drawFade(screen, p)
	case minigame.LetterDone:
		drawFade(screen, 1)
	}

	s.ui.draw(screen)
}

// drawEnvelope 绘制信封
//
// 参数：
//   - zoom: 缩放（退场时镜头推进）
//   - open: 封盖打开程度 0.0 ~ 1.0
func (s *LetterScene) drawEnvelope(screen *ebiten.Image, zoom, open float64) {
	base := envelopeRect()
	cx, cy := base.Center()
	r := utils.CenteredRect(cx, cy, base.W*zoom, base.H*zoom)

	utils.FillRect(screen, r, envelopeColor)
	// 下半部分的折痕
	utils.FillTriangle(screen, r.X, r.Y+r.H, r.X+r.W, r.Y+r.H, cx, cy, envelopeFlap)

	// 封盖：open=0 时向下盖住，open=1 时翻到上方
	tipY := utils.Lerp(r.Y+r.H*0.55, r.Y-r.H*0.45, open)
	utils.FillTriangle(screen, r.X, r.Y, r.X+r.W, r.Y, cx, tipY, envelopeFlap)

	if open < 0.5 {
		utils.FillHeart(screen, cx, r.Y+r.H*0.5, 26*zoom, sealColor)
	}
}

// drawPaper 绘制展开的信纸
//
// 参数：
//   - unfold: 展开程度，1 为完全展开，0 为折回信封大小
func (s *LetterScene) drawPaper(screen *ebiten.Image, unfold float64) {
	full := paperRect()
	cx, cy := full.Center()
	h := utils.Lerp(envelopeRect().H, full.H, unfold)
	w := utils.Lerp(envelopeRect().W, full.W, unfold)
	r := utils.CenteredRect(cx, cy, w, h)
	drawPanel(screen, r)
	utils.FillRoundRect(screen, r.Inset(6), 14, paperColor)

	if unfold < 0.95 {
		return
	}
	fonts := s.deps.Fonts
	body := fmt.Sprintf(letterBody, s.deps.userName())
	utils.DrawCentered(screen, "Happy Birthday", fonts.Bold(config.TitleFontSize), cx, r.Y+42, envelopeColor)
	utils.DrawWrapped(screen, body, fonts.Regular(config.SmallFontSize+1), r.X+36, r.Y+80, r.W-72, config.ColorText)
}

// Teardown 取消计时
func (s *LetterScene) Teardown() {
	s.letter.Teardown()
	s.ui.teardown()
}
