package entities

import (
	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
)

// NewButton 创建圆角按钮实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 按钮左上角（屏幕坐标）
//   - width: 按钮宽度，高度固定为 config.ButtonHeight
//   - label: 按钮文字
//   - style: 按钮样式
//   - onClick: 点击回调（指针在按钮内释放时触发）
//
// 返回：
//   - 按钮实体ID
func NewButton(em *ecs.EntityManager, x, y, width float64, label string, style components.ButtonStyle, onClick func()) ecs.EntityID {
	entity := em.CreateEntity()
	em.AddComponent(entity, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entity, &components.ButtonComponent{
		Label:    label,
		Width:    width,
		Height:   config.ButtonHeight,
		FontSize: config.ButtonFontSize,
		Style:    style,
		State:    components.UINormal,
		Enabled:  true,
		OnClick:  onClick,
	})
	return entity
}

// NewCenteredButton 创建以 (cx, y) 为上边中点的按钮
func NewCenteredButton(em *ecs.EntityManager, cx, y, width float64, label string, style components.ButtonStyle, onClick func()) ecs.EntityID {
	return NewButton(em, cx-width/2, y, width, label, style, onClick)
}

// NewHitArea 创建不可见的点击区域（按下时触发）
// 用于地图节点、蜡烛、小鸭等直接点击的物体
func NewHitArea(em *ecs.EntityManager, x, y, width, height float64, onClick func()) ecs.EntityID {
	entity := em.CreateEntity()
	em.AddComponent(entity, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entity, &components.ClickableComponent{
		Width:     width,
		Height:    height,
		IsEnabled: true,
		OnClick:   onClick,
	})
	return entity
}
