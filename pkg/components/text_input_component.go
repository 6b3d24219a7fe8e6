package components

// TextInputComponent 文本输入框（愿望卡片）
type TextInputComponent struct {
	Text        string
	Placeholder string
	Width       float64 // 像素
	Height      float64
	FontSize    float64

	// Multiline 为 true 时 Enter 插入换行
	Multiline bool
	// MaxLength 最大字符数（0 = 无限制）
	MaxLength int

	CursorVisible    bool
	CursorBlinkTimer float64 // 秒
	CursorPosition   int     // 字符（rune）索引

	IsFocused bool

	// OnChange 文本被编辑后触发
	OnChange func(text string)
}
