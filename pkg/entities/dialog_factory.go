package entities

import (
	"log"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// 对话框按钮文字
const (
	LabelOK  = "Oke"
	LabelYes = "Ya"
	LabelNo  = "Batal"
)

// NewDialogEntity 创建居中的模态对话框实体
//
// 参数：
//   - em: 实体管理器
//   - title: 对话框标题（可为空）
//   - message: 对话框消息
//   - buttons: 按钮（从左到右，最后一个按钮同时响应 ESC）
//   - windowWidth, windowHeight: 游戏窗口大小（用于居中）
//
// 返回：
//   - 对话框实体ID
func NewDialogEntity(
	em *ecs.EntityManager,
	title string,
	message string,
	buttons []components.DialogButton,
	windowWidth, windowHeight float64,
) ecs.EntityID {
	title, message = utils.StripEmoji(title), utils.StripEmoji(message)
	width, height := calculateDialogSize(title, message)

	entity := em.CreateEntity()
	em.AddComponent(entity, &components.PositionComponent{
		X: windowWidth/2 - width/2,
		Y: windowHeight/2 - height/2,
	})
	em.AddComponent(entity, &components.DialogComponent{
		Title:     title,
		Message:   message,
		Buttons:   buttons,
		Width:     width,
		Height:    height,
		IsVisible: true,
		AutoClose: true,
	})

	log.Printf("[DialogFactory] Created dialog %d: %q", entity, message)
	return entity
}

// NewAlertDialog 创建只有一个“Oke”按钮的提示框
func NewAlertDialog(em *ecs.EntityManager, message string, onOK func()) ecs.EntityID {
	return NewDialogEntity(em, "", message, []components.DialogButton{
		{Label: LabelOK, Style: components.ButtonPrimary, OnClick: onOK},
	}, config.GameWindowWidth, config.GameWindowHeight)
}

// NewConfirmDialog 创建确认框，“Batal”在右侧并响应 ESC
func NewConfirmDialog(em *ecs.EntityManager, message string, onYes, onNo func()) ecs.EntityID {
	return NewDialogEntity(em, "", message, []components.DialogButton{
		{Label: LabelYes, Style: components.ButtonDanger, OnClick: onYes},
		{Label: LabelNo, Style: components.ButtonSecondary, OnClick: onNo},
	}, config.GameWindowWidth, config.GameWindowHeight)
}

// calculateDialogSize 按文字长度估算对话框大小
// 宽度固定，高度随消息行数增长
func calculateDialogSize(title, message string) (width, height float64) {
	const (
		charsPerLine = 36   // 每行字符数（按正文字号估算）
		lineHeight   = 24.0 // 正文行高
		titleHeight  = 40.0
		messageGap   = 24.0 // 消息与按钮之间
	)

	lines := (len([]rune(message)) + charsPerLine - 1) / charsPerLine
	if lines < 1 {
		lines = 1
	}

	height = 2*config.DialogPadding + float64(lines)*lineHeight + messageGap + config.ButtonHeight
	if title != "" {
		height += titleHeight
	}
	if height < config.DialogMinHeight {
		height = config.DialogMinHeight
	}
	return config.DialogWidth, height
}
