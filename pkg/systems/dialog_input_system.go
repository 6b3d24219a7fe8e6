package systems

import (
	"log"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// DialogInputSystem 对话框输入系统
//
// 职责：
//   - 只处理最上层（ID 最大）的可见对话框
//   - 指针在按钮内释放时触发回调，AutoClose 时销毁对话框
//   - ESC 触发最后一个按钮（取消/好的）
//   - 有可见对话框时吞掉所有指针输入
type DialogInputSystem struct {
	entityManager *ecs.EntityManager
}

// NewDialogInputSystem 创建对话框输入系统
func NewDialogInputSystem(em *ecs.EntityManager) *DialogInputSystem {
	return &DialogInputSystem{entityManager: em}
}

// Update 推进弹出动画计时
func (s *DialogInputSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.DialogComponent](s.entityManager) {
		dialog, _ := ecs.GetComponent[*components.DialogComponent](s.entityManager, id)
		if dialog.IsVisible {
			dialog.Elapsed += deltaTime
		}
	}
}

// Active 是否有可见对话框
func (s *DialogInputSystem) Active() bool {
	_, ok := s.topmost()
	return ok
}

// HandlePointer 处理指针输入
//
// 返回：
//   - bool: 输入是否被对话框吞掉
func (s *DialogInputSystem) HandlePointer(p utils.Pointer) bool {
	id, ok := s.topmost()
	if !ok {
		return false
	}
	dialog, _ := ecs.GetComponent[*components.DialogComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	// 弹出动画期间不响应，避免同一次点击穿透到新对话框
	if dialog.Elapsed < config.DialogPopSeconds {
		return true
	}

	rects := DialogButtonRects(dialog, pos)
	for i := range dialog.Buttons {
		btn := &dialog.Buttons[i]
		switch {
		case !rects[i].Contains(p.X, p.Y):
			btn.State = components.UINormal
		case p.Pressed:
			btn.State = components.UIClicked
		case p.JustReleased:
			btn.State = components.UINormal
			s.activate(id, dialog, i)
			return true
		default:
			btn.State = components.UIHovered
		}
	}
	return true
}

// HandleEscape ESC 键：触发最上层对话框的最后一个按钮
//
// 返回：
//   - bool: 是否有对话框处理了按键
func (s *DialogInputSystem) HandleEscape() bool {
	id, ok := s.topmost()
	if !ok {
		return false
	}
	dialog, _ := ecs.GetComponent[*components.DialogComponent](s.entityManager, id)
	if len(dialog.Buttons) == 0 {
		s.entityManager.DestroyEntity(id)
		return true
	}
	s.activate(id, dialog, len(dialog.Buttons)-1)
	return true
}

func (s *DialogInputSystem) activate(id ecs.EntityID, dialog *components.DialogComponent, index int) {
	btn := dialog.Buttons[index]
	log.Printf("[DialogInputSystem] Button '%s' clicked", btn.Label)
	if dialog.AutoClose {
		dialog.IsVisible = false
		s.entityManager.DestroyEntity(id)
	}
	if btn.OnClick != nil {
		btn.OnClick()
	}
}

// topmost 最上层的可见对话框
func (s *DialogInputSystem) topmost() (ecs.EntityID, bool) {
	ids := ecs.GetEntitiesWith2[*components.DialogComponent, *components.PositionComponent](s.entityManager)
	for i := len(ids) - 1; i >= 0; i-- {
		dialog, _ := ecs.GetComponent[*components.DialogComponent](s.entityManager, ids[i])
		if dialog.IsVisible {
			return ids[i], true
		}
	}
	return 0, false
}

// DialogButtonRects 对话框按钮的屏幕矩形
// 按钮等宽横排在对话框底部
func DialogButtonRects(dialog *components.DialogComponent, pos *components.PositionComponent) []utils.Rect {
	n := len(dialog.Buttons)
	if n == 0 {
		return nil
	}
	inner := dialog.Width - 2*config.DialogPadding
	w := (inner - config.DialogButtonGap*float64(n-1)) / float64(n)
	y := pos.Y + dialog.Height - config.DialogPadding - config.ButtonHeight

	rects := make([]utils.Rect, n)
	for i := range rects {
		rects[i] = utils.Rect{
			X: pos.X + config.DialogPadding + float64(i)*(w+config.DialogButtonGap),
			Y: y,
			W: w,
			H: config.ButtonHeight,
		}
	}
	return rects
}
