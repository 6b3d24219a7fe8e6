package components

// PositionComponent 实体位置
//
// 小游戏实体使用游戏区域百分比 (0-100，可以超出表示屏幕外)；
// 界面实体（按钮、对话框、输入框）使用屏幕像素，表示左上角。
type PositionComponent struct {
	X float64
	Y float64
}
