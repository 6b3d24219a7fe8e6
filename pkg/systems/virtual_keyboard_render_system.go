package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/entities"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// 虚拟键盘配色
var (
	keyboardBackgroundColor = color.RGBA{R: 253, G: 242, B: 248, A: 240}
	keyNormalColor          = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	keyPressedColor         = color.RGBA{R: 251, G: 207, B: 232, A: 255}
	keySpecialColor         = color.RGBA{R: 243, G: 232, B: 255, A: 255}
)

const (
	virtualKeyboardFontSize = 20.0
	keyRadius               = 6.0
)

// VirtualKeyboardRenderSystem 虚拟键盘渲染系统
type VirtualKeyboardRenderSystem struct {
	entityManager *ecs.EntityManager
	fonts         *utils.Fonts
}

// NewVirtualKeyboardRenderSystem 创建虚拟键盘渲染系统
func NewVirtualKeyboardRenderSystem(em *ecs.EntityManager, fonts *utils.Fonts) *VirtualKeyboardRenderSystem {
	return &VirtualKeyboardRenderSystem{entityManager: em, fonts: fonts}
}

// Draw 绘制可见的虚拟键盘
func (s *VirtualKeyboardRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.VirtualKeyboardComponent](s.entityManager) {
		kb, _ := ecs.GetComponent[*components.VirtualKeyboardComponent](s.entityManager, id)
		if kb.IsVisible {
			s.drawKeyboard(screen, kb)
		}
	}
}

func (s *VirtualKeyboardRenderSystem) drawKeyboard(screen *ebiten.Image, kb *components.VirtualKeyboardComponent) {
	bg := utils.Rect{
		X: 0,
		Y: kb.KeyboardY - config.VirtualKeyboardPadding,
		W: kb.ScreenWidth,
		H: entities.VirtualKeyboardHeight + 2*config.VirtualKeyboardPadding,
	}
	utils.FillRect(screen, bg, keyboardBackgroundColor)

	for _, key := range entities.GetAllKeys(kb) {
		rect := utils.Rect{X: key.X, Y: key.Y, W: key.Width, H: key.Height}
		utils.FillRoundRect(screen, rect, keyRadius, keyColor(kb, key.Action))

		if s.fonts == nil || key.Label == "" {
			continue
		}
		size := virtualKeyboardFontSize
		if components.IsSpecialKey(key.Action) {
			size = config.SmallFontSize
		}
		cx, cy := rect.Center()
		utils.DrawCentered(screen, key.Label, s.fonts.Bold(size), cx, cy, config.ColorText)
	}
}

// keyColor 按键底色
func keyColor(kb *components.VirtualKeyboardComponent, action string) color.RGBA {
	switch {
	case kb.PressedKey == action:
		return keyPressedColor
	case action == components.KeyDone:
		return config.ColorPrimary
	case action == components.KeyShift && kb.ShiftActive:
		return keyPressedColor
	case components.IsSpecialKey(action):
		return keySpecialColor
	default:
		return keyNormalColor
	}
}
