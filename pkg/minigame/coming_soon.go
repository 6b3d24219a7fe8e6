package minigame

// ComingSoon 尚未开放的关卡，只能返回地图
type ComingSoon struct {
	progress *guard
	level    int
}

// NewComingSoon 创建占位界面
func NewComingSoon(progress Progress) *ComingSoon {
	g := newGuard(progress)
	return &ComingSoon{progress: g, level: g.record().CurrentLevel}
}

// Level 玩家试图进入的关卡
func (c *ComingSoon) Level() int {
	return c.level
}

// BackToMap 返回地图
func (c *ComingSoon) BackToMap() {
	c.progress.returnToMap()
}

// Teardown 屏蔽进度修改
func (c *ComingSoon) Teardown() {
	c.progress.disable()
}
