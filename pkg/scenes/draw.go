package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// 屏幕与游戏区域
var (
	screenRect = utils.Rect{W: config.GameWindowWidth, H: config.GameWindowHeight}
	playRect   = utils.Rect{X: config.PlayArea.X, Y: config.PlayArea.Y, W: config.PlayArea.W, H: config.PlayArea.H}
)

// toPlay 游戏区域百分比坐标 → 屏幕坐标
func toPlay(px, py float64) (float64, float64) {
	return playRect.X + px/100*playRect.W, playRect.Y + py/100*playRect.H
}

// fromPlayX 屏幕 X → 游戏区域百分比
func fromPlayX(x float64) float64 {
	return (x - playRect.X) / playRect.W * 100
}

// toScreen 全屏百分比坐标 → 屏幕坐标（地图节点）
func toScreen(px, py float64) (float64, float64) {
	return px / 100 * screenRect.W, py / 100 * screenRect.H
}

// drawTitle 屏幕顶部居中的标题
func drawTitle(screen *ebiten.Image, fonts *utils.Fonts, title string) {
	utils.DrawCentered(screen, title, fonts.Bold(config.TitleFontSize), screenRect.W/2, 40, config.ColorPrimary)
}

// drawPanel 带阴影的白色圆角面板
func drawPanel(screen *ebiten.Image, r utils.Rect) {
	utils.FillRoundRect(screen, utils.Rect{X: r.X, Y: r.Y + 5, W: r.W, H: r.H}, 18, config.ColorShadow)
	utils.FillRoundRect(screen, r, 18, config.ColorPanel)
}

// drawFade 退出时整屏淡出为背景色
func drawFade(screen *ebiten.Image, progress float64) {
	a := uint8(utils.Clamp01(progress) * 255)
	if a == 0 {
		return
	}
	bg := config.ColorBackground
	utils.FillRect(screen, screenRect, color.RGBA{R: scale(bg.R, a), G: scale(bg.G, a), B: scale(bg.B, a), A: a})
}

// scale 预乘 alpha
func scale(c, a uint8) uint8 {
	return uint8(uint16(c) * uint16(a) / 255)
}

// drawResultCard 胜利/失败卡片（按钮由控件层绘制在卡片下部）
func drawResultCard(screen *ebiten.Image, fonts *utils.Fonts, title, message string) utils.Rect {
	card := utils.CenteredRect(screenRect.W/2, screenRect.H/2, 420, 240)
	utils.Dim(screen, 90)
	drawPanel(screen, card)
	utils.DrawCentered(screen, title, fonts.Bold(config.TitleFontSize), card.X+card.W/2, card.Y+50, config.ColorPrimary)
	face := fonts.Regular(config.BodyFontSize)
	utils.DrawWrapped(screen, message, face, card.X+30, card.Y+85, card.W-60, config.ColorText)
	return card
}

// resultButtonY 结果卡片上按钮的 Y 坐标
func resultButtonY() float64 {
	return screenRect.H/2 + 120 - 24 - config.ButtonHeight
}

// storyRect 通关故事卡片
func storyRect() utils.Rect {
	return utils.CenteredRect(screenRect.W/2, screenRect.H/2, 640, 520)
}

// storyButtonY 故事卡片底部按钮的 Y 坐标
func storyButtonY() float64 {
	r := storyRect()
	return r.Y + r.H - config.ButtonHeight - 24
}

// drawStoryCard 通关后的故事卡片：标题加多段正文
func drawStoryCard(screen *ebiten.Image, fonts *utils.Fonts, title, body string) {
	r := storyRect()
	utils.Dim(screen, 120)
	drawPanel(screen, r)
	utils.DrawCentered(screen, title, fonts.Bold(28), r.X+r.W/2, r.Y+40, config.ColorPrimary)
	utils.DrawWrapped(screen, utils.StripEmoji(body), fonts.Regular(config.BodyFontSize-3), r.X+30, r.Y+78, r.W-60, config.ColorText)
}
