package components

// ObstacleComponent 第 4 关的一对上下管道
// PositionComponent.X 为管道左边缘，TopHeight 为上管道高度（百分比）
type ObstacleComponent struct {
	TopHeight float64
	Passed    bool // 小鸭已经飞过，已计分
}
