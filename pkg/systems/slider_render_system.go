package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// SliderRenderSystem 滑动条渲染系统
// 标签和百分比画在滑槽上方，已选部分用主色填充
type SliderRenderSystem struct {
	entityManager *ecs.EntityManager
	fonts         *utils.Fonts
}

// NewSliderRenderSystem 创建滑动条渲染系统
func NewSliderRenderSystem(em *ecs.EntityManager, fonts *utils.Fonts) *SliderRenderSystem {
	return &SliderRenderSystem{entityManager: em, fonts: fonts}
}

// Draw 渲染所有滑动条
func (s *SliderRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.SliderComponent, *components.PositionComponent](s.entityManager) {
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		slot := utils.Rect{X: pos.X, Y: pos.Y, W: slider.SlotWidth, H: slider.SlotHeight}
		radius := slider.SlotHeight / 2
		utils.FillRoundRect(screen, slot, radius, config.ColorDisabled)
		if filled := slider.SlotWidth * slider.Value; filled > 0 {
			utils.FillRoundRect(screen, utils.Rect{X: pos.X, Y: pos.Y, W: filled, H: slider.SlotHeight}, radius, config.ColorPrimary)
		}

		knobX := pos.X + slider.SlotWidth*slider.Value
		knobY := pos.Y + slider.SlotHeight/2
		knob := slider.KnobRadius
		if slider.IsDragging || slider.IsHovered {
			knob += 2
		}
		utils.FillCircle(screen, knobX, knobY, knob, config.ColorSecondary)
		utils.StrokeCircle(screen, knobX, knobY, knob, 3, config.ColorPrimary)

		face := s.fonts.Regular(config.BodyFontSize)
		labelY := pos.Y - slider.KnobRadius - config.BodyFontSize - 8
		utils.DrawText(screen, slider.Label, face, pos.X, labelY, config.ColorText)
		percent := fmt.Sprintf("%d%%", int(slider.Value*100+0.5))
		utils.DrawText(screen, percent, face, pos.X+slider.SlotWidth-utils.MeasureText(percent, face), labelY, config.ColorMuted)
	}
}
