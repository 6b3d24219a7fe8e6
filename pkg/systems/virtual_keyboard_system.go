package systems

import (
	"log"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/entities"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// VirtualKeyboardSystem 虚拟键盘系统
// 处理虚拟键盘的触摸输入，把字符写进目标输入框
type VirtualKeyboardSystem struct {
	entityManager *ecs.EntityManager
}

// NewVirtualKeyboardSystem 创建虚拟键盘系统
func NewVirtualKeyboardSystem(em *ecs.EntityManager) *VirtualKeyboardSystem {
	return &VirtualKeyboardSystem{entityManager: em}
}

// Update 更新按键高亮计时
func (s *VirtualKeyboardSystem) Update(deltaTime float64) {
	s.each(func(kb *components.VirtualKeyboardComponent) {
		kb.InputConsumedThisFrame = false
		if kb.PressedKey != "" {
			kb.PressedTimer -= deltaTime
			if kb.PressedTimer <= 0 {
				kb.PressedKey = ""
				kb.PressedTimer = 0
			}
		}
	})
}

// HandlePointer 键盘可见时处理按下事件
//
// 点在键盘上的输入被吞掉；点在键盘外则收起键盘，事件继续向下传递
// （这样点中输入框可以立即重新弹出键盘）。
//
// 返回：
//   - bool: 输入是否被键盘消费
func (s *VirtualKeyboardSystem) HandlePointer(p utils.Pointer) bool {
	consumed := false
	s.each(func(kb *components.VirtualKeyboardComponent) {
		if !kb.IsVisible || !p.JustPressed {
			return
		}
		if !isPointInKeyboardArea(kb, p.X, p.Y) {
			log.Printf("[VirtualKeyboardSystem] Click outside keyboard area, closing keyboard")
			s.close(kb)
			return
		}
		kb.InputConsumedThisFrame = true
		consumed = true
		if key := hitTestKey(kb, p.X, p.Y); key != nil {
			kb.PressedKey = key.Action
			kb.PressedTimer = config.VirtualKeyboardHighlight
			s.handleKeyPress(kb, key.Action)
		}
	})
	return consumed
}

// hitTestKey 点击位置对应的按键
func hitTestKey(kb *components.VirtualKeyboardComponent, x, y float64) *components.KeyInfo {
	keys := entities.GetAllKeys(kb)
	for i := range keys {
		k := &keys[i]
		if (utils.Rect{X: k.X, Y: k.Y, W: k.Width, H: k.Height}).Contains(x, y) {
			return k
		}
	}
	return nil
}

// isPointInKeyboardArea 点是否落在键盘背景内
func isPointInKeyboardArea(kb *components.VirtualKeyboardComponent, x, y float64) bool {
	top := kb.KeyboardY - config.VirtualKeyboardPadding
	bottom := kb.KeyboardY + entities.VirtualKeyboardHeight + config.VirtualKeyboardPadding
	return y >= top && y <= bottom && x >= 0 && x <= kb.ScreenWidth
}

// handleKeyPress 处理一次按键
func (s *VirtualKeyboardSystem) handleKeyPress(kb *components.VirtualKeyboardComponent, action string) {
	input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, kb.TargetInput)
	if !ok {
		log.Printf("[VirtualKeyboardSystem] No target input for key %q", action)
		return
	}

	switch action {
	case components.KeyShift:
		kb.ShiftActive = !kb.ShiftActive
	case components.KeySymbols:
		kb.SymbolMode = true
	case components.KeyLetters:
		kb.SymbolMode = false
	case components.KeyBackspace:
		DeleteBefore(input)
	case components.KeySpace:
		InsertText(input, " ")
	case components.KeyEnter:
		if input.Multiline {
			InsertText(input, "\n")
		}
	case components.KeyDone:
		s.close(kb)
	default:
		InsertText(input, action)
		// 手机键盘习惯：大写只作用于一个字母
		if kb.ShiftActive && !kb.SymbolMode {
			kb.ShiftActive = false
		}
	}
}

func (s *VirtualKeyboardSystem) close(kb *components.VirtualKeyboardComponent) {
	kb.IsVisible = false
	if input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, kb.TargetInput); ok {
		input.IsFocused = false
	}
	kb.TargetInput = 0
}

// ShowKeyboard 显示虚拟键盘并绑定到目标输入框
func (s *VirtualKeyboardSystem) ShowKeyboard(target ecs.EntityID) {
	s.each(func(kb *components.VirtualKeyboardComponent) {
		kb.IsVisible = true
		kb.TargetInput = target
		kb.ShiftActive = false
		kb.SymbolMode = false
		log.Printf("[VirtualKeyboardSystem] Keyboard shown for entity %d", target)
	})
}

// HideKeyboard 隐藏虚拟键盘
func (s *VirtualKeyboardSystem) HideKeyboard() {
	s.each(func(kb *components.VirtualKeyboardComponent) {
		kb.IsVisible = false
		kb.TargetInput = 0
	})
}

// IsKeyboardVisible 虚拟键盘是否可见
func (s *VirtualKeyboardSystem) IsKeyboardVisible() bool {
	visible := false
	s.each(func(kb *components.VirtualKeyboardComponent) {
		visible = visible || kb.IsVisible
	})
	return visible
}

func (s *VirtualKeyboardSystem) each(fn func(kb *components.VirtualKeyboardComponent)) {
	for _, id := range ecs.GetEntitiesWith1[*components.VirtualKeyboardComponent](s.entityManager) {
		if kb, ok := ecs.GetComponent[*components.VirtualKeyboardComponent](s.entityManager, id); ok {
			fn(kb)
		}
	}
}
