package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// CheckboxRenderSystem 复选框渲染系统
// 圆角方框 + 右侧标签，选中时粉色底加白色对勾
type CheckboxRenderSystem struct {
	entityManager *ecs.EntityManager
	fonts         *utils.Fonts
}

// NewCheckboxRenderSystem 创建复选框渲染系统
func NewCheckboxRenderSystem(em *ecs.EntityManager, fonts *utils.Fonts) *CheckboxRenderSystem {
	return &CheckboxRenderSystem{entityManager: em, fonts: fonts}
}

// Draw 渲染所有复选框
func (s *CheckboxRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.CheckboxComponent, *components.PositionComponent](s.entityManager) {
		checkbox, _ := ecs.GetComponent[*components.CheckboxComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		size := checkbox.Size
		box := utils.Rect{X: pos.X, Y: pos.Y, W: size, H: size}
		radius := size / 4

		if checkbox.IsChecked {
			utils.FillRoundRect(screen, box, radius, config.ColorPrimary)
			// 对勾
			utils.StrokeLine(screen, pos.X+size*0.22, pos.Y+size*0.52, pos.X+size*0.42, pos.Y+size*0.72, 3, config.ColorTextLight)
			utils.StrokeLine(screen, pos.X+size*0.42, pos.Y+size*0.72, pos.X+size*0.78, pos.Y+size*0.3, 3, config.ColorTextLight)
		} else {
			utils.FillRoundRect(screen, box, radius, config.ColorPrimary)
			utils.FillRoundRect(screen, box.Inset(3), radius-2, config.ColorSecondary)
		}
		if checkbox.IsHovered {
			utils.FillRoundRect(screen, box, radius, color.RGBA{R: 255, G: 255, B: 255, A: 50})
		}

		face := s.fonts.Regular(config.BodyFontSize)
		utils.DrawText(screen, checkbox.Label, face, pos.X+size+12, pos.Y+(size-config.BodyFontSize)/2-2, config.ColorText)
	}
}
