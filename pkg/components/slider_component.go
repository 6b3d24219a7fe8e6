package components

// SliderComponent 滑动条组件
// 用于音量控制等需要滑动调整数值的UI元素
type SliderComponent struct {
	Label string

	// 滑动条尺寸（像素）
	SlotWidth  float64 // 滑槽宽度
	SlotHeight float64 // 滑槽高度
	KnobRadius float64 // 滑块半径，同时扩大上下的点击范围

	// 当前值（0.0 - 1.0）
	Value float64

	// 状态
	IsDragging bool // 是否正在拖动
	IsHovered  bool // 是否指针悬停

	// 回调函数
	OnValueChange func(value float64) // 值改变时的回调
	OnRelease     func(value float64) // 拖动结束时的回调（试听音量）
}
