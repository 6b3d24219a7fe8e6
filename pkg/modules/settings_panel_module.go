// Package modules 可组合的界面模块，由场景按需嵌入
package modules

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/entities"
	"github.com/hbd-sarah/journey/pkg/game"
	"github.com/hbd-sarah/journey/pkg/systems"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// 设置面板文字
const (
	SettingsTitle      = "Setelan"
	SettingsSound      = "Suara"
	SettingsVolume     = "Volume"
	SettingsFullscreen = "Layar Penuh"
	SettingsClose      = "Tutup"
)

// 设置面板布局（像素）
const (
	settingsPanelWidth  = 400.0
	settingsPanelHeight = 330.0
	settingsCheckSize   = 28.0
	settingsSliderH     = 10.0
	settingsKnobRadius  = 11.0
	settingsRowX        = 40.0
)

// SettingsPanelModule 设置面板模块
//
// 职责：
//   - 管理设置 UI 元素（音效开关、音量、全屏）
//   - 修改立即生效（音量在下一次播放时读取），关闭面板时持久化
//   - 面板可见时是模态的，消费全部指针输入
//
// 模块持有自己的实体管理器和系统，与场景的控件互不干扰。
type SettingsPanelModule struct {
	entityManager   *ecs.EntityManager
	settingsManager *game.SettingsManager

	checkboxSystem *systems.CheckboxSystem
	sliderSystem   *systems.SliderSystem
	buttonSystem   *systems.ButtonSystem
	checkboxRender *systems.CheckboxRenderSystem
	sliderRender   *systems.SliderRenderSystem
	buttonRender   *systems.ButtonRenderSystem
	fonts          *utils.Fonts

	// UI 元素实体
	soundEntity      ecs.EntityID
	volumeEntity     ecs.EntityID
	fullscreenEntity ecs.EntityID
	closeEntity      ecs.EntityID

	callbacks SettingsPanelCallbacks
	visible   bool

	// 屏幕尺寸
	windowWidth  float64
	windowHeight float64
}

// SettingsPanelCallbacks 设置面板回调函数集合，全部可选
type SettingsPanelCallbacks struct {
	OnFullscreenToggle func(enabled bool) // 实际切换窗口全屏
	OnPreview          func()             // 打开音效或松开音量滑块时试听
	OnClose            func()
}

// NewSettingsPanelModule 创建设置面板（初始隐藏）
//
// 参数：
//   - sm: 设置管理器，不能为 nil
//   - fonts: 字体，可为 nil
//   - windowWidth, windowHeight: 屏幕尺寸
//   - callbacks: 回调
//
// 返回：
//   - *SettingsPanelModule: 模块实例
func NewSettingsPanelModule(sm *game.SettingsManager, fonts *utils.Fonts, windowWidth, windowHeight float64, callbacks SettingsPanelCallbacks) *SettingsPanelModule {
	em := ecs.NewEntityManager()
	return &SettingsPanelModule{
		entityManager:   em,
		settingsManager: sm,
		checkboxSystem:  systems.NewCheckboxSystem(em),
		sliderSystem:    systems.NewSliderSystem(em),
		buttonSystem:    systems.NewButtonSystem(em),
		checkboxRender:  systems.NewCheckboxRenderSystem(em, fonts),
		sliderRender:    systems.NewSliderRenderSystem(em, fonts),
		buttonRender:    systems.NewButtonRenderSystem(em, fonts),
		fonts:           fonts,
		callbacks:       callbacks,
		windowWidth:     windowWidth,
		windowHeight:    windowHeight,
	}
}

// PanelRect 面板矩形（屏幕居中）
func (m *SettingsPanelModule) PanelRect() utils.Rect {
	return utils.CenteredRect(m.windowWidth/2, m.windowHeight/2, settingsPanelWidth, settingsPanelHeight)
}

// Show 显示面板，控件按当前设置创建
func (m *SettingsPanelModule) Show() {
	if m.visible {
		return
	}
	m.visible = true
	m.createWidgets()
	log.Printf("[SettingsPanelModule] Shown")
}

func (m *SettingsPanelModule) createWidgets() {
	settings := m.settingsManager.GetSettings()
	panel := m.PanelRect()
	em := m.entityManager
	rowWidth := panel.W - settingsRowX*2

	m.soundEntity = em.CreateEntity()
	em.AddComponent(m.soundEntity, &components.PositionComponent{X: panel.X + settingsRowX, Y: panel.Y + 80})
	em.AddComponent(m.soundEntity, &components.CheckboxComponent{
		Label:     SettingsSound,
		Size:      settingsCheckSize,
		HitWidth:  rowWidth,
		IsChecked: settings.SoundEnabled,
		OnToggle:  m.onSoundToggle,
	})

	m.volumeEntity = em.CreateEntity()
	em.AddComponent(m.volumeEntity, &components.PositionComponent{X: panel.X + settingsRowX, Y: panel.Y + 170})
	em.AddComponent(m.volumeEntity, &components.SliderComponent{
		Label:         SettingsVolume,
		SlotWidth:     rowWidth,
		SlotHeight:    settingsSliderH,
		KnobRadius:    settingsKnobRadius,
		Value:         settings.SoundVolume,
		OnValueChange: m.settingsManager.SetSoundVolume,
		OnRelease: func(float64) {
			m.preview()
		},
	})

	m.fullscreenEntity = em.CreateEntity()
	em.AddComponent(m.fullscreenEntity, &components.PositionComponent{X: panel.X + settingsRowX, Y: panel.Y + 215})
	em.AddComponent(m.fullscreenEntity, &components.CheckboxComponent{
		Label:     SettingsFullscreen,
		Size:      settingsCheckSize,
		HitWidth:  rowWidth,
		IsChecked: settings.Fullscreen,
		OnToggle:  m.onFullscreenToggle,
	})

	m.closeEntity = entities.NewCenteredButton(em, panel.X+panel.W/2, panel.Y+panel.H-config.ButtonHeight-24, 160,
		SettingsClose, components.ButtonPrimary, m.Hide)
}

func (m *SettingsPanelModule) onSoundToggle(enabled bool) {
	m.settingsManager.SetSoundEnabled(enabled)
	if enabled {
		m.preview()
	}
}

func (m *SettingsPanelModule) onFullscreenToggle(enabled bool) {
	m.settingsManager.SetFullscreen(enabled)
	if m.callbacks.OnFullscreenToggle != nil {
		m.callbacks.OnFullscreenToggle(enabled)
	}
}

func (m *SettingsPanelModule) preview() {
	if m.callbacks.OnPreview != nil {
		m.callbacks.OnPreview()
	}
}

// Hide 隐藏面板并保存设置
func (m *SettingsPanelModule) Hide() {
	if !m.visible {
		return
	}
	m.visible = false
	m.entityManager.Clear()

	if err := m.settingsManager.Save(); err != nil {
		log.Printf("[SettingsPanelModule] Warning: Failed to save settings: %v", err)
	}
	if m.callbacks.OnClose != nil {
		m.callbacks.OnClose()
	}
}

// IsVisible 面板是否可见
func (m *SettingsPanelModule) IsVisible() bool {
	return m.visible
}

// HandlePointer 处理指针
//
// 返回：
//   - bool: 面板可见时总是 true（模态）
func (m *SettingsPanelModule) HandlePointer(p utils.Pointer) bool {
	if !m.visible {
		return false
	}
	// 拖动滑块时不触发其他控件
	if !m.sliderSystem.HandlePointer(p) {
		if !m.checkboxSystem.HandlePointer(p) {
			m.buttonSystem.HandlePointer(p)
		}
	}
	m.entityManager.RemoveMarkedEntities()
	return true
}

// HandleEscape Esc 关闭面板
//
// 返回：
//   - bool: 面板是否处理了 Esc
func (m *SettingsPanelModule) HandleEscape() bool {
	if !m.visible {
		return false
	}
	m.Hide()
	return true
}

// Draw 绘制遮罩、面板和控件
func (m *SettingsPanelModule) Draw(screen *ebiten.Image) {
	if !m.visible {
		return
	}
	utils.Dim(screen, 120)

	panel := m.PanelRect()
	utils.FillRoundRect(screen, utils.Rect{X: panel.X, Y: panel.Y + 4, W: panel.W, H: panel.H}, 20, config.ColorShadow)
	utils.FillRoundRect(screen, panel, 20, config.ColorPanel)
	utils.DrawCentered(screen, SettingsTitle, m.fonts.Bold(26), panel.X+panel.W/2, panel.Y+40, config.ColorPrimary)

	m.checkboxRender.Draw(screen)
	m.sliderRender.Draw(screen)
	m.buttonRender.Draw(screen)
}

// SoundEntity / VolumeEntity / FullscreenEntity / CloseEntity 控件实体（测试用）
func (m *SettingsPanelModule) SoundEntity() ecs.EntityID      { return m.soundEntity }
func (m *SettingsPanelModule) VolumeEntity() ecs.EntityID     { return m.volumeEntity }
func (m *SettingsPanelModule) FullscreenEntity() ecs.EntityID { return m.fullscreenEntity }
func (m *SettingsPanelModule) CloseEntity() ecs.EntityID      { return m.closeEntity }

// EntityManager 面板的实体管理器
func (m *SettingsPanelModule) EntityManager() *ecs.EntityManager {
	return m.entityManager
}
