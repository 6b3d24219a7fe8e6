package systems

import (
	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// CheckboxSystem 复选框交互系统
//
// 职责：
//   - 检测指针是否在复选框区域内
//   - 指针在区域内释放时切换 IsChecked
//   - 调用 OnToggle 回调
type CheckboxSystem struct {
	entityManager *ecs.EntityManager
}

// NewCheckboxSystem 创建复选框交互系统
func NewCheckboxSystem(em *ecs.EntityManager) *CheckboxSystem {
	return &CheckboxSystem{entityManager: em}
}

// HandlePointer 用本帧指针状态处理交互
//
// 返回：
//   - bool: 是否有复选框被切换
func (s *CheckboxSystem) HandlePointer(p utils.Pointer) bool {
	toggled := false
	for _, id := range ecs.GetEntitiesWith2[*components.CheckboxComponent, *components.PositionComponent](s.entityManager) {
		checkbox, _ := ecs.GetComponent[*components.CheckboxComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		inside := CheckboxRect(pos, checkbox).Contains(p.X, p.Y)
		checkbox.IsHovered = inside && !p.Touch

		// 释放时处理点击
		if p.JustReleased && inside {
			checkbox.IsChecked = !checkbox.IsChecked
			toggled = true
			if checkbox.OnToggle != nil {
				checkbox.OnToggle(checkbox.IsChecked)
			}
		}
	}
	return toggled
}

// CheckboxRect 复选框的点击区域
func CheckboxRect(pos *components.PositionComponent, checkbox *components.CheckboxComponent) utils.Rect {
	width := checkbox.HitWidth
	if width < checkbox.Size {
		width = checkbox.Size
	}
	return utils.Rect{X: pos.X, Y: pos.Y, W: width, H: checkbox.Size}
}
