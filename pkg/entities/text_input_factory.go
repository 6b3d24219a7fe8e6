package entities

import (
	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
)

// NewTextInputEntity 创建多行文本输入框（愿望卡片）
//
// 参数：
//   - em: 实体管理器
//   - x, y, width, height: 输入框区域（屏幕坐标）
//   - text: 初始文本，光标放在末尾
//   - placeholder: 空文本时的提示
//   - onChange: 文本被编辑后触发
//
// 返回：
//   - 输入框实体ID
func NewTextInputEntity(em *ecs.EntityManager, x, y, width, height float64, text, placeholder string, onChange func(string)) ecs.EntityID {
	entity := em.CreateEntity()
	em.AddComponent(entity, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entity, &components.TextInputComponent{
		Text:           text,
		Placeholder:    placeholder,
		Width:          width,
		Height:         height,
		FontSize:       config.BodyFontSize,
		Multiline:      true,
		MaxLength:      config.WishesMaxLength,
		CursorPosition: len([]rune(text)),
		OnChange:       onChange,
	})
	return entity
}
