package components

// DialogComponent 模态对话框
//
// 对话框可见时吞掉所有指针输入；点击按钮触发回调，
// AutoClose 为 true 时随后销毁对话框实体。
type DialogComponent struct {
	Title     string
	Message   string
	Buttons   []DialogButton
	Width     float64
	Height    float64
	IsVisible bool
	AutoClose bool
	// Elapsed 出现后的时间（秒），用于弹出动画
	Elapsed float64
}

// DialogButton 对话框按钮，位置由对话框布局计算
type DialogButton struct {
	Label   string
	Style   ButtonStyle
	OnClick func()
	State   UIState
}
