package entities

import (
	"log"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
)

// VirtualKeyboardHeight 四行按键的总高度
const VirtualKeyboardHeight = 4*(config.VirtualKeyboardKeyHeight+config.VirtualKeyboardSpacing) - config.VirtualKeyboardSpacing

// NewVirtualKeyboardEntity 创建虚拟键盘实体（初始隐藏，贴在屏幕底部）
// 仅在移动端创建，桌面端使用物理键盘
//
// 参数：
//   - em: 实体管理器
//   - screenWidth: 屏幕宽度
//   - screenHeight: 屏幕高度
//
// 返回：
//   - ecs.EntityID: 虚拟键盘实体ID
func NewVirtualKeyboardEntity(em *ecs.EntityManager, screenWidth, screenHeight float64) ecs.EntityID {
	entity := em.CreateEntity()
	keyboardY := screenHeight - VirtualKeyboardHeight - config.VirtualKeyboardPadding

	em.AddComponent(entity, &components.VirtualKeyboardComponent{
		KeyWidth:     config.VirtualKeyboardKeyWidth,
		KeyHeight:    config.VirtualKeyboardKeyHeight,
		KeySpacing:   config.VirtualKeyboardSpacing,
		KeyboardY:    keyboardY,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	})

	log.Printf("[VirtualKeyboardFactory] Created virtual keyboard entity (ID=%d, keyboardY=%.1f)", entity, keyboardY)
	return entity
}

// CalculateKeyboardLayout 计算当前模式下的键盘布局
// 每行水平居中
//
// 返回：
//   - [][]KeyInfo: 每行的按键信息
func CalculateKeyboardLayout(kb *components.VirtualKeyboardComponent) [][]components.KeyInfo {
	layout := components.KeyboardLayoutLower
	switch {
	case kb.SymbolMode:
		layout = components.KeyboardLayoutSymbols
	case kb.ShiftActive:
		layout = components.KeyboardLayoutUpper
	}

	result := make([][]components.KeyInfo, len(layout))
	rowY := kb.KeyboardY
	for rowIdx, row := range layout {
		totalWidth := float64(len(row)-1) * kb.KeySpacing
		for _, action := range row {
			totalWidth += kb.KeyWidth * components.KeyWidthFactor(action)
		}

		keyX := (kb.ScreenWidth - totalWidth) / 2
		rowKeys := make([]components.KeyInfo, len(row))
		for i, action := range row {
			w := kb.KeyWidth * components.KeyWidthFactor(action)
			rowKeys[i] = components.KeyInfo{
				Label:  components.KeyLabel(action),
				Action: action,
				X:      keyX,
				Y:      rowY,
				Width:  w,
				Height: kb.KeyHeight,
			}
			keyX += w + kb.KeySpacing
		}
		result[rowIdx] = rowKeys
		rowY += kb.KeyHeight + kb.KeySpacing
	}
	return result
}

// GetAllKeys 获取当前布局的所有按键（扁平化列表）
func GetAllKeys(kb *components.VirtualKeyboardComponent) []components.KeyInfo {
	var all []components.KeyInfo
	for _, row := range CalculateKeyboardLayout(kb) {
		all = append(all, row...)
	}
	return all
}
