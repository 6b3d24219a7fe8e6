package components

// ClickableComponent 不可见的点击区域（信封、蜡烛、小鸭、地图节点）
// 与按钮不同，按下的瞬间就触发，适合需要快速连点的目标
type ClickableComponent struct {
	Width     float64
	Height    float64
	IsEnabled bool
	OnClick   func()
}
