package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// TextInputSystem 文本输入系统
// 处理输入框的焦点、键盘输入和光标闪烁
type TextInputSystem struct {
	entityManager *ecs.EntityManager

	// onFocus 焦点变化回调（移动端用来弹出/收起虚拟键盘）
	onFocus func(id ecs.EntityID, focused bool)
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager) *TextInputSystem {
	return &TextInputSystem{entityManager: em}
}

// SetFocusHandler 设置焦点变化回调
func (s *TextInputSystem) SetFocusHandler(fn func(id ecs.EntityID, focused bool)) {
	s.onFocus = fn
}

// Update 更新光标闪烁，桌面端处理物理键盘
func (s *TextInputSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		if !input.IsFocused {
			input.CursorVisible = false
			continue
		}

		updateCursorBlink(input, deltaTime)

		// 移动端：由 VirtualKeyboardSystem 处理输入
		if utils.IsMobile() {
			continue
		}
		s.handleKeyboardInput(input)
	}
}

// HandlePointer 按下时把焦点交给被点中的输入框，点在别处则失去焦点
//
// 返回：
//   - bool: 是否点中了输入框
func (s *TextInputSystem) HandlePointer(p utils.Pointer) bool {
	if !p.JustPressed {
		return false
	}
	hit := false
	for _, id := range ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		inside := utils.Rect{X: pos.X, Y: pos.Y, W: input.Width, H: input.Height}.Contains(p.X, p.Y)
		hit = hit || inside
		s.setFocus(id, input, inside)
	}
	return hit
}

// Blur 所有输入框失去焦点
func (s *TextInputSystem) Blur() {
	for _, id := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		s.setFocus(id, input, false)
	}
}

func (s *TextInputSystem) setFocus(id ecs.EntityID, input *components.TextInputComponent, focused bool) {
	if input.IsFocused == focused {
		return
	}
	input.IsFocused = focused
	if focused {
		input.CursorPosition = len([]rune(input.Text))
		showCursor(input)
	}
	if s.onFocus != nil {
		s.onFocus(id, focused)
	}
}

// handleKeyboardInput 处理物理键盘输入
func (s *TextInputSystem) handleKeyboardInput(input *components.TextInputComponent) {
	if runes := ebiten.AppendInputChars(nil); len(runes) > 0 {
		InsertText(input, string(runes))
	}
	if input.Multiline && utils.IsKeyRepeated(ebiten.KeyEnter) {
		InsertText(input, "\n")
	}
	if utils.IsKeyRepeated(ebiten.KeyBackspace) {
		DeleteBefore(input)
	}
	if utils.IsKeyRepeated(ebiten.KeyDelete) {
		DeleteAfter(input)
	}
	if utils.IsKeyRepeated(ebiten.KeyArrowLeft) {
		MoveCursor(input, -1)
	}
	if utils.IsKeyRepeated(ebiten.KeyArrowRight) {
		MoveCursor(input, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		input.CursorPosition = 0
		showCursor(input)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		input.CursorPosition = len([]rune(input.Text))
		showCursor(input)
	}
}

// updateCursorBlink 更新光标闪烁状态
func updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= config.CursorBlinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// showCursor 编辑后光标立即可见
func showCursor(input *components.TextInputComponent) {
	input.CursorBlinkTimer = 0
	input.CursorVisible = true
}

// InsertText 在光标位置插入文本，超出 MaxLength 的部分被截断
func InsertText(input *components.TextInputComponent, str string) {
	runes := []rune(input.Text)
	insert := []rune(str)
	if input.MaxLength > 0 {
		room := input.MaxLength - len(runes)
		if room <= 0 {
			return
		}
		if len(insert) > room {
			insert = insert[:room]
		}
	}
	if len(insert) == 0 {
		return
	}
	cursor := clampCursor(input.CursorPosition, len(runes))

	result := make([]rune, 0, len(runes)+len(insert))
	result = append(result, runes[:cursor]...)
	result = append(result, insert...)
	result = append(result, runes[cursor:]...)

	input.CursorPosition = cursor + len(insert)
	changed(input, string(result))
}

// DeleteBefore 删除光标前的字符（退格）
func DeleteBefore(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	cursor := clampCursor(input.CursorPosition, len(runes))
	if cursor == 0 {
		return
	}
	input.CursorPosition = cursor - 1
	changed(input, string(append(runes[:cursor-1:cursor-1], runes[cursor:]...)))
}

// DeleteAfter 删除光标后的字符（Delete 键），光标位置不变
func DeleteAfter(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	cursor := clampCursor(input.CursorPosition, len(runes))
	if cursor >= len(runes) {
		return
	}
	changed(input, string(append(runes[:cursor:cursor], runes[cursor+1:]...)))
}

// MoveCursor 光标左右移动 delta 个字符
func MoveCursor(input *components.TextInputComponent, delta int) {
	input.CursorPosition = clampCursor(input.CursorPosition+delta, len([]rune(input.Text)))
	showCursor(input)
}

func clampCursor(pos, length int) int {
	if pos < 0 {
		return 0
	}
	if pos > length {
		return length
	}
	return pos
}

func changed(input *components.TextInputComponent, text string) {
	input.Text = text
	showCursor(input)
	if input.OnChange != nil {
		input.OnChange(text)
	}
}
