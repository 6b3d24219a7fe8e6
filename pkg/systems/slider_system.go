package systems

import (
	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// SliderSystem 滑块交互系统
// 负责处理滑块的拖拽交互
//
// 职责：
//   - 在滑槽（上下各扩展一个滑块半径）内按下开始拖拽
//   - 拖拽中把指针横坐标换算为 0.0~1.0 的 Value
//   - 更新 SliderComponent.Value 并调用 OnValueChange 回调
//   - 松开时结束拖拽并调用 OnRelease
type SliderSystem struct {
	entityManager *ecs.EntityManager
}

// NewSliderSystem 创建滑块交互系统
func NewSliderSystem(em *ecs.EntityManager) *SliderSystem {
	return &SliderSystem{entityManager: em}
}

// HandlePointer 用本帧指针状态处理交互
//
// 返回：
//   - bool: 是否有滑块正在拖拽（指针事件已被消费）
func (s *SliderSystem) HandlePointer(p utils.Pointer) bool {
	consumed := false
	for _, id := range ecs.GetEntitiesWith2[*components.SliderComponent, *components.PositionComponent](s.entityManager) {
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		inside := SliderHitRect(pos, slider).Contains(p.X, p.Y)
		slider.IsHovered = inside && !p.Touch

		if p.JustPressed && inside {
			slider.IsDragging = true
		}

		if !slider.IsDragging {
			continue
		}
		consumed = true

		if !p.Pressed {
			// 鼠标释放，停止拖拽
			slider.IsDragging = false
			if slider.OnRelease != nil {
				slider.OnRelease(slider.Value)
			}
			continue
		}

		newValue := calculateSliderValue(p.X, pos.X, slider.SlotWidth)
		if newValue != slider.Value {
			slider.Value = newValue
			if slider.OnValueChange != nil {
				slider.OnValueChange(newValue)
			}
		}
	}
	return consumed
}

// SliderHitRect 滑块的点击区域
func SliderHitRect(pos *components.PositionComponent, slider *components.SliderComponent) utils.Rect {
	return utils.Rect{
		X: pos.X - slider.KnobRadius,
		Y: pos.Y - slider.KnobRadius,
		W: slider.SlotWidth + slider.KnobRadius*2,
		H: slider.SlotHeight + slider.KnobRadius*2,
	}
}

// calculateSliderValue 根据指针X坐标计算滑块值，限制在 0.0 ~ 1.0
func calculateSliderValue(pointerX, slotX, slotWidth float64) float64 {
	if slotWidth <= 0 {
		return 0.0
	}
	v := (pointerX - slotX) / slotWidth
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
