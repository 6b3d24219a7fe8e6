package components

import "image/color"

// ButtonStyle 按钮配色
type ButtonStyle int

const (
	// ButtonPrimary 粉色主按钮
	ButtonPrimary ButtonStyle = iota
	// ButtonSecondary 白底次要按钮
	ButtonSecondary
	// ButtonDanger 红色按钮（重置）
	ButtonDanger
)

// ButtonComponent 按钮组件
//
// 纯数据：外观、文字、状态和点击回调。按钮用圆角矩形绘制，
// 实体的 PositionComponent 是左上角（像素）。
type ButtonComponent struct {
	Label    string
	Width    float64
	Height   float64
	FontSize float64
	Style    ButtonStyle
	// Tint 非零时覆盖 Style 的底色
	Tint color.RGBA

	State   UIState
	Enabled bool
	// Hidden 隐藏的按钮既不绘制也不响应
	Hidden bool

	// OnClick 在指针于按钮内释放时触发
	OnClick func()
}
