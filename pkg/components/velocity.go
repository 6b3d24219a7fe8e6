package components

// VelocityComponent 实体速度（百分比/帧，60 帧基准）
type VelocityComponent struct {
	VX float64
	VY float64
}
