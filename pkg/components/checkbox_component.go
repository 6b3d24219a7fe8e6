package components

// CheckboxComponent 复选框组件
// 用于开关选项（音效、全屏）
//
// 实体的 PositionComponent 是方框左上角，点击区域向右延伸到 HitWidth，
// 点标签文字也能切换。
type CheckboxComponent struct {
	Label    string
	Size     float64 // 方框边长
	HitWidth float64 // 点击区域宽度（含标签），为 0 时只有方框

	// 当前状态
	IsChecked bool
	IsHovered bool

	// 回调函数
	OnToggle func(isChecked bool) // 状态切换时的回调
}
