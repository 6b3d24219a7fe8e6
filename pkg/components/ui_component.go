package components

// UIState 界面元素的交互状态
type UIState int

const (
	// UINormal 默认状态
	UINormal UIState = iota
	// UIHovered 指针悬停
	UIHovered
	// UIClicked 正在按下
	UIClicked
	// UIDisabled 禁用
	UIDisabled
)
