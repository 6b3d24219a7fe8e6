package scenes

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/game"
	"github.com/hbd-sarah/journey/pkg/minigame"
	"github.com/hbd-sarah/journey/pkg/sequence"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// 聊天窗口布局
const (
	chatTop        = 70.0
	chatBottom     = 440.0
	chatMargin     = 40.0
	chatBubbleMax  = 420.0
	chatBubblePad  = 10.0
	chatOptionsTop = 460.0
	chatOptionGap  = 12.0
)

var (
	chatBackground  = color.RGBA{R: 24, G: 34, B: 45, A: 255}
	chatPartnerFill = color.RGBA{R: 43, G: 57, B: 72, A: 255}
	chatUserFill    = color.RGBA{R: 43, G: 82, B: 120, A: 255}
	chatSystemText  = color.RGBA{R: 148, G: 163, B: 184, A: 255}
)

// ChatScene 第 1 关：匿名聊天
type ChatScene struct {
	deps    *Deps
	chat    *minigame.Chat
	ui      *uiLayer
	exiting float64
}

// NewChatScene 创建聊天场景
func NewChatScene(deps *Deps) *ChatScene {
	s := &ChatScene{
		deps: deps,
		chat: minigame.NewChat(deps.Chat, deps.Store),
		ui:   newUILayer(deps.Fonts),
	}
	s.chat.Start()
	return s
}

// Update 推进对话并同步候选回复按钮
func (s *ChatScene) Update(deltaTime float64) {
	switch {
	case s.chat.Exiting():
		s.exiting += deltaTime
		s.ui.setMode("exiting", nil)
	case s.chat.ShowComplete():
		s.ui.setMode("complete", func() {
			s.ui.centeredButton(screenRect.W/2, resultButtonY(), 220, "Lanjut", components.ButtonPrimary, s.chat.Continue)
		})
	case s.chat.AwaitingInput():
		s.ui.setMode(s.optionsMarker(), s.buildOptions)
	default:
		s.ui.setMode("waiting", nil)
	}

	s.ui.update(deltaTime)
	s.chat.Update(deltaTime)
}

func (s *ChatScene) optionsMarker() string {
	ids := make([]string, 0, len(s.chat.Options()))
	for _, opt := range s.chat.Options() {
		ids = append(ids, opt.ID)
	}
	return "options:" + strings.Join(ids, ",")
}

// buildOptions 候选回复按钮，每行三个
func (s *ChatScene) buildOptions() {
	const perRow = 3
	width := (screenRect.W - 2*chatMargin - chatOptionGap*(perRow-1)) / perRow
	for i, opt := range s.chat.Options() {
		id := opt.ID
		x := chatMargin + float64(i%perRow)*(width+chatOptionGap)
		y := chatOptionsTop + float64(i/perRow)*(config.ButtonHeight+chatOptionGap)
		s.ui.button(x, y, width, opt.Text, components.ButtonSecondary, func() {
			if s.chat.Choose(id) {
				s.deps.play(game.SoundNice)
			}
		})
	}
}

// Draw 绘制聊天记录
func (s *ChatScene) Draw(screen *ebiten.Image) {
	screen.Fill(chatBackground)
	fonts := s.deps.Fonts
	utils.FillRect(screen, utils.Rect{W: screenRect.W, H: 52}, chatPartnerFill)
	utils.DrawCentered(screen, "Anonymous Chat", fonts.Bold(20), screenRect.W/2, 26, config.ColorTextLight)

	s.drawTranscript(screen)

	if s.chat.ShowComplete() {
		drawResultCard(screen, fonts, "Chat Selesai", "Dari obrolan iseng ini semuanya dimulai...")
	}
	s.ui.draw(screen)
	if s.chat.Exiting() {
		drawFade(screen, s.exiting/s.deps.Chat.ExitDelay)
	}
}

// drawTranscript 从底部向上绘制气泡，放不下的旧消息被裁掉
func (s *ChatScene) drawTranscript(screen *ebiten.Image) {
	face := s.deps.Fonts.Regular(config.BodyFontSize)
	small := s.deps.Fonts.Regular(11)
	lineHeight := config.BodyFontSize * 1.3

	entries := s.chat.Transcript()
	y := chatBottom
	for i := len(entries) - 1; i >= 0 && y > chatTop; i-- {
		e := entries[i]
		var lines []string
		for _, para := range strings.Split(utils.StripEmoji(e.Text), "\n") {
			lines = append(lines, utils.WrapText(para, face, chatBubbleMax-2*chatBubblePad)...)
		}
		h := float64(len(lines))*lineHeight + 2*chatBubblePad + 12
		y -= h + 8
		if y < chatTop {
			break
		}

		if e.Kind == sequence.System {
			for j, line := range lines {
				utils.DrawCentered(screen, line, face, screenRect.W/2, y+chatBubblePad+lineHeight*(float64(j)+0.5), chatSystemText)
			}
			continue
		}

		w := 0.0
		for _, line := range lines {
			w = max(w, utils.MeasureText(line, face))
		}
		w = max(w+2*chatBubblePad, 60)
		x, fill := chatMargin, chatPartnerFill
		if e.Kind == sequence.UserChoice {
			x, fill = screenRect.W-chatMargin-w, chatUserFill
		}
		bubble := utils.Rect{X: x, Y: y, W: w, H: h}
		utils.FillRoundRect(screen, bubble, 12, fill)
		for j, line := range lines {
			utils.DrawText(screen, line, face, x+chatBubblePad, y+chatBubblePad+float64(j)*lineHeight, config.ColorTextLight)
		}
		if e.Time != "" {
			utils.DrawText(screen, e.Time, small, x+w-chatBubblePad-utils.MeasureText(e.Time, small), y+h-chatBubblePad-8, chatSystemText)
		}
	}
}

// Teardown 取消所有计时
func (s *ChatScene) Teardown() {
	s.chat.Teardown()
	s.ui.teardown()
}
