package systems

import (
	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// ButtonSystem 按钮和点击区域的交互系统
//
// 职责：
//   - 更新按钮悬停/按下状态
//   - 指针在按钮内释放时触发 OnClick
//   - 点击区域（ClickableComponent）在按下瞬间触发
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{entityManager: em}
}

// HandlePointer 用本帧指针状态处理交互
//
// 返回：
//   - bool: 是否有回调被触发（指针事件已被消费）
func (s *ButtonSystem) HandlePointer(p utils.Pointer) bool {
	// 回调可能切换场景或增删按钮，先收集再执行
	var fire []func()

	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if button.Hidden {
			continue
		}
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		rect := utils.Rect{X: pos.X, Y: pos.Y, W: button.Width, H: button.Height}
		switch {
		case !rect.Contains(p.X, p.Y):
			button.State = components.UINormal
		case p.Pressed:
			button.State = components.UIClicked
		case p.JustReleased:
			button.State = components.UIHovered
			if button.OnClick != nil {
				fire = append(fire, button.OnClick)
			}
		default:
			button.State = components.UIHovered
		}
	}

	if p.JustPressed {
		for _, id := range ecs.GetEntitiesWith2[*components.ClickableComponent, *components.PositionComponent](s.entityManager) {
			area, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
			pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
			if !area.IsEnabled || area.OnClick == nil {
				continue
			}
			rect := utils.Rect{X: pos.X, Y: pos.Y, W: area.Width, H: area.Height}
			if rect.Contains(p.X, p.Y) {
				fire = append(fire, area.OnClick)
			}
		}
	}

	for _, fn := range fire {
		fn()
	}
	return len(fire) > 0
}

// ResetStates 把所有按钮恢复为普通状态（被上层吞掉输入时调用）
func (s *ButtonSystem) ResetStates() {
	for _, id := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		if button.Enabled {
			button.State = components.UINormal
		}
	}
}
