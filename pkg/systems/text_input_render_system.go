package systems

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/utils"
)

const textInputPadding = 12.0

// TextInputRenderSystem 文本输入框渲染系统
// 负责绘制输入框背景、文本（多行自动换行）、占位符和光标
type TextInputRenderSystem struct {
	entityManager *ecs.EntityManager
	fonts         *utils.Fonts
}

// NewTextInputRenderSystem 创建文本输入框渲染系统
func NewTextInputRenderSystem(em *ecs.EntityManager, fonts *utils.Fonts) *TextInputRenderSystem {
	return &TextInputRenderSystem{entityManager: em, fonts: fonts}
}

// Draw 绘制所有文本输入框
func (s *TextInputRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.DrawInputBox(screen, input, pos)
	}
}

// DrawInputBox 绘制单个输入框
func (s *TextInputRenderSystem) DrawInputBox(screen *ebiten.Image, input *components.TextInputComponent, pos *components.PositionComponent) {
	box := utils.Rect{X: pos.X, Y: pos.Y, W: input.Width, H: input.Height}
	border := config.ColorDisabled
	if input.IsFocused {
		border = config.ColorPrimary
	}
	utils.FillRoundRect(screen, box, 12, border)
	utils.FillRoundRect(screen, box.Inset(2), 10, config.ColorSecondary)

	if s.fonts == nil {
		return
	}
	size := input.FontSize
	if size <= 0 {
		size = config.BodyFontSize
	}
	face := s.fonts.Regular(size)
	x := box.X + textInputPadding
	y := box.Y + textInputPadding
	width := box.W - 2*textInputPadding

	if input.Text == "" && !input.IsFocused {
		utils.DrawWrapped(screen, input.Placeholder, face, x, y, width, config.ColorMuted)
		return
	}
	utils.DrawWrapped(screen, input.Text, face, x, y, width, config.ColorText)

	if input.IsFocused && input.CursorVisible {
		runes := []rune(input.Text)
		before := string(runes[:clampCursor(input.CursorPosition, len(runes))])
		line, col := cursorLocation(before, func(str string) []string {
			return utils.WrapText(str, face, width)
		})
		cx := x + utils.MeasureText(col, face)
		cy := y + float64(line)*size*1.3
		utils.StrokeLine(screen, cx+1, cy+2, cx+1, cy+size*1.15, 2, config.ColorPrimary)
	}
}

// cursorLocation 光标所在的行号和该行光标前的文字
//
// 参数：
//   - before: 光标前的全部文本
//   - wrap: 单段换行函数
func cursorLocation(before string, wrap func(string) []string) (line int, col string) {
	paras := strings.Split(before, "\n")
	for i, para := range paras {
		lines := wrap(para)
		if i < len(paras)-1 {
			line += len(lines)
			continue
		}
		line += len(lines) - 1
		col = lines[len(lines)-1]
		// 自动换行吞掉了行尾空格
		if strings.HasSuffix(para, " ") && !strings.HasSuffix(col, " ") {
			col += " "
		}
	}
	return line, col
}
