package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// ButtonRenderSystem 按钮渲染系统
// 圆角矩形底色 + 居中文字，按下时整体下沉 2 像素
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	fonts         *utils.Fonts
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager, fonts *utils.Fonts) *ButtonRenderSystem {
	return &ButtonRenderSystem{entityManager: em, fonts: fonts}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if button.Hidden {
			continue
		}
		rect := utils.Rect{X: pos.X, Y: pos.Y, W: button.Width, H: button.Height}
		DrawButtonShape(screen, s.fonts, rect, button.Label, button.FontSize, button.Style, button.Tint, button.State)
	}
}

// DrawButtonShape 绘制一个按钮（对话框按钮共用）
func DrawButtonShape(screen *ebiten.Image, fonts *utils.Fonts, rect utils.Rect, label string, fontSize float64,
	style components.ButtonStyle, tint color.RGBA, state components.UIState) {
	fill, textColor := buttonColors(style, state)
	if tint.A != 0 && state != components.UIDisabled {
		fill = tint
	}

	if state == components.UIClicked {
		rect.Y += 2
	} else {
		utils.FillRoundRect(screen, utils.Rect{X: rect.X, Y: rect.Y + 3, W: rect.W, H: rect.H}, config.ButtonRadius, config.ColorShadow)
	}
	utils.FillRoundRect(screen, rect, config.ButtonRadius, fill)
	if state == components.UIHovered {
		utils.FillRoundRect(screen, rect, config.ButtonRadius, color.RGBA{R: 255, G: 255, B: 255, A: 40})
	}

	if fonts == nil || label == "" {
		return
	}
	if fontSize <= 0 {
		fontSize = config.ButtonFontSize
	}
	cx, cy := rect.Center()
	utils.DrawCentered(screen, label, fonts.Bold(fontSize), cx, cy, textColor)
}

// buttonColors 按样式和状态选择底色和文字颜色
func buttonColors(style components.ButtonStyle, state components.UIState) (fill, text color.RGBA) {
	if state == components.UIDisabled {
		return config.ColorDisabled, config.ColorMuted
	}
	switch style {
	case components.ButtonSecondary:
		return config.ColorSecondary, config.ColorPrimary
	case components.ButtonDanger:
		return config.ColorDanger, config.ColorTextLight
	default:
		if state == components.UIClicked {
			return config.ColorPrimaryDim, config.ColorTextLight
		}
		return config.ColorPrimary, config.ColorTextLight
	}
}
