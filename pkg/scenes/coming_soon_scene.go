package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/minigame"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// ComingSoonScene 尚未开放的关卡
type ComingSoonScene struct {
	deps  *Deps
	model *minigame.ComingSoon
	ui    *uiLayer
}

// NewComingSoonScene 创建占位场景
func NewComingSoonScene(deps *Deps) *ComingSoonScene {
	s := &ComingSoonScene{
		deps:  deps,
		model: minigame.NewComingSoon(deps.Store),
		ui:    newUILayer(deps.Fonts),
	}
	s.ui.setMode("back", func() {
		s.ui.centeredButton(screenRect.W/2, screenRect.H/2+60, 220, "Kembali", components.ButtonPrimary, s.model.BackToMap)
	})
	return s
}

// Update 处理返回按钮
func (s *ComingSoonScene) Update(deltaTime float64) {
	if in, _ := s.ui.update(deltaTime); in.Escape {
		s.model.BackToMap()
	}
}

// Draw 绘制提示
func (s *ComingSoonScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)
	fonts := s.deps.Fonts
	utils.DrawCentered(screen, fmt.Sprintf("Level %d", s.model.Level()), fonts.Bold(config.TitleFontSize), screenRect.W/2, screenRect.H/2-60, config.ColorPrimary)
	utils.DrawCentered(screen, "Segera Hadir...", fonts.Regular(config.BodyFontSize), screenRect.W/2, screenRect.H/2-10, config.ColorText)
	s.ui.draw(screen)
}

// Teardown 屏蔽进度修改
func (s *ComingSoonScene) Teardown() {
	s.model.Teardown()
	s.ui.teardown()
}
