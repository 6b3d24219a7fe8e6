package config

import "image/color"

// 界面配色（粉色主题）
var (
	ColorBackground = color.RGBA{R: 255, G: 240, B: 245, A: 255} // 淡粉背景
	ColorPrimary    = color.RGBA{R: 236, G: 72, B: 153, A: 255}  // 粉色主按钮
	ColorPrimaryDim = color.RGBA{R: 219, G: 39, B: 119, A: 255}  // 按下
	ColorSecondary  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorDanger     = color.RGBA{R: 220, G: 38, B: 38, A: 255}
	ColorDisabled   = color.RGBA{R: 209, G: 213, B: 219, A: 255}
	ColorText       = color.RGBA{R: 55, G: 65, B: 81, A: 255}
	ColorTextLight  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorMuted      = color.RGBA{R: 156, G: 163, B: 175, A: 255}
	ColorPanel      = color.RGBA{R: 255, G: 255, B: 255, A: 240}
	ColorShadow     = color.RGBA{A: 60}
	ColorSky        = color.RGBA{R: 186, G: 230, B: 253, A: 255}
	ColorGrass      = color.RGBA{R: 134, G: 239, B: 172, A: 255}
	ColorGold       = color.RGBA{R: 250, G: 204, B: 21, A: 255}
	ColorLocked     = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	ColorCompleted  = color.RGBA{R: 34, G: 197, B: 94, A: 255}
)

// 通用控件尺寸（像素）
const (
	ButtonHeight     = 44.0
	ButtonRadius     = 14.0
	ButtonFontSize   = 18.0
	TitleFontSize    = 30.0
	BodyFontSize     = 18.0
	SmallFontSize    = 14.0
	DialogWidth      = 440.0
	DialogMinHeight  = 200.0
	DialogPadding    = 24.0
	DialogButtonGap  = 16.0
	DialogPopSeconds = 0.25 // 对话框弹出动画时长

	// CursorBlinkInterval 输入框光标闪烁间隔（秒）
	CursorBlinkInterval = 0.5
)

// 虚拟键盘（移动端）
const (
	VirtualKeyboardKeyWidth  = 65.0
	VirtualKeyboardKeyHeight = 42.0
	VirtualKeyboardSpacing   = 5.0
	VirtualKeyboardPadding   = 10.0
	VirtualKeyboardHighlight = 0.1 // 按键高亮时长（秒）
)

// PlayArea 小游戏的游戏区域（像素），百分比坐标以它为基准
var PlayArea = struct{ X, Y, W, H float64 }{X: 100, Y: 80, W: 600, H: 480}
