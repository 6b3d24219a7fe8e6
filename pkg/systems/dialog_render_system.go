package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// DialogRenderSystem 对话框渲染系统
//
// 职责：
//   - 渲染半透明遮罩（覆盖整个屏幕，只画一次）
//   - 渲染对话框面板、标题、消息和按钮
//   - 弹出时从下方滑入
type DialogRenderSystem struct {
	entityManager *ecs.EntityManager
	fonts         *utils.Fonts
}

// NewDialogRenderSystem 创建对话框渲染系统
func NewDialogRenderSystem(em *ecs.EntityManager, fonts *utils.Fonts) *DialogRenderSystem {
	return &DialogRenderSystem{entityManager: em, fonts: fonts}
}

// Draw 渲染所有可见对话框，ID 小的在下层
func (s *DialogRenderSystem) Draw(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.DialogComponent, *components.PositionComponent](s.entityManager)

	overlay := false
	for _, id := range ids {
		dialog, _ := ecs.GetComponent[*components.DialogComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !dialog.IsVisible {
			continue
		}
		if !overlay {
			utils.Dim(screen, 110)
			overlay = true
		}
		s.drawDialog(screen, dialog, pos)
	}
}

func (s *DialogRenderSystem) drawDialog(screen *ebiten.Image, dialog *components.DialogComponent, pos *components.PositionComponent) {
	offset := (1 - utils.EaseOutCubic(dialog.Elapsed/config.DialogPopSeconds)) * 40
	panel := utils.Rect{X: pos.X, Y: pos.Y + offset, W: dialog.Width, H: dialog.Height}

	utils.FillRoundRect(screen, utils.Rect{X: panel.X, Y: panel.Y + 6, W: panel.W, H: panel.H}, 20, config.ColorShadow)
	utils.FillRoundRect(screen, panel, 20, config.ColorPanel)

	if s.fonts == nil {
		return
	}

	y := panel.Y + config.DialogPadding
	inner := panel.W - 2*config.DialogPadding
	if dialog.Title != "" {
		face := s.fonts.Bold(config.TitleFontSize * 0.8)
		y += utils.DrawWrapped(screen, dialog.Title, face, panel.X+config.DialogPadding, y, inner, config.ColorPrimary)
		y += 8
	}
	if dialog.Message != "" {
		utils.DrawWrapped(screen, dialog.Message, s.fonts.Regular(config.BodyFontSize), panel.X+config.DialogPadding, y, inner, config.ColorText)
	}

	for i, rect := range DialogButtonRects(dialog, pos) {
		rect.Y += offset
		btn := dialog.Buttons[i]
		DrawButtonShape(screen, s.fonts, rect, btn.Label, config.ButtonFontSize, btn.Style, color.RGBA{}, btn.State)
	}
}
