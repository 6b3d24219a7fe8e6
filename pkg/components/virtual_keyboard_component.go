package components

import "github.com/hbd-sarah/journey/pkg/ecs"

// 虚拟键盘按键动作
const (
	KeyShift     = "SHIFT"
	KeyBackspace = "BACKSPACE"
	KeySpace     = "SPACE"
	KeyEnter     = "ENTER"
	KeyDone      = "DONE"
	KeySymbols   = "?123"
	KeyLetters   = "ABC"
)

// VirtualKeyboardComponent 移动端屏幕键盘
type VirtualKeyboardComponent struct {
	IsVisible   bool
	ShiftActive bool
	SymbolMode  bool

	// PressedKey 刚按下的按键（短暂高亮）
	PressedKey   string
	PressedTimer float64

	// InputConsumedThisFrame 本帧的点击落在键盘上，下层不再处理
	InputConsumedThisFrame bool

	// TargetInput 接收输入的文本框实体（0 表示没有）
	TargetInput ecs.EntityID

	KeyWidth     float64
	KeyHeight    float64
	KeySpacing   float64
	KeyboardY    float64
	ScreenWidth  float64
	ScreenHeight float64
}

// KeyInfo 按键在屏幕上的位置
type KeyInfo struct {
	Label  string
	Action string
	X, Y   float64
	Width  float64
	Height float64
}

// KeyboardLayoutLower 小写字母布局
var KeyboardLayoutLower = [][]string{
	{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p"},
	{"a", "s", "d", "f", "g", "h", "j", "k", "l"},
	{KeyShift, "z", "x", "c", "v", "b", "n", "m", KeyBackspace},
	{KeySymbols, ",", KeySpace, ".", KeyEnter, KeyDone},
}

// KeyboardLayoutUpper 大写字母布局
var KeyboardLayoutUpper = [][]string{
	{"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P"},
	{"A", "S", "D", "F", "G", "H", "J", "K", "L"},
	{KeyShift, "Z", "X", "C", "V", "B", "N", "M", KeyBackspace},
	{KeySymbols, ",", KeySpace, ".", KeyEnter, KeyDone},
}

// KeyboardLayoutSymbols 数字和标点布局
var KeyboardLayoutSymbols = [][]string{
	{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"},
	{"!", "?", "'", "\"", "-", "(", ")", ":", ";"},
	{"@", "#", "&", "*", "/", "+", "=", "~", KeyBackspace},
	{KeyLetters, ",", KeySpace, ".", KeyEnter, KeyDone},
}

// KeyWidthFactor 按键宽度相对标准按键的倍数
func KeyWidthFactor(action string) float64 {
	switch action {
	case KeyShift, KeyBackspace, KeySymbols, KeyLetters, KeyEnter:
		return 1.5
	case KeySpace:
		return 3.5
	case KeyDone:
		return 2.0
	default:
		return 1.0
	}
}

// KeyLabel 按键上显示的文字
func KeyLabel(action string) string {
	switch action {
	case KeyShift:
		return "Shift"
	case KeyBackspace:
		return "Del"
	case KeySpace:
		return ""
	case KeyEnter:
		return "Enter"
	case KeyDone:
		return "Done"
	default:
		return action
	}
}

// IsSpecialKey 是否为功能键（不直接输入字符）
func IsSpecialKey(action string) bool {
	switch action {
	case KeyShift, KeyBackspace, KeySpace, KeyEnter, KeyDone, KeySymbols, KeyLetters:
		return true
	default:
		return false
	}
}
