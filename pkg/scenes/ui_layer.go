package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/entities"
	"github.com/hbd-sarah/journey/pkg/systems"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// overlay 盖在场景控件之上的模态面板（设置面板）
type overlay interface {
	IsVisible() bool
	HandlePointer(p utils.Pointer) bool
	HandleEscape() bool
	Draw(screen *ebiten.Image)
}

// uiLayer 场景的控件层：按钮、点击区域、对话框、输入框和虚拟键盘
//
// 指针事件从上到下依次交给：虚拟键盘 → 面板 → 对话框（模态）→ 输入框 → 按钮。
// 没有被消费的指针交还给场景处理游戏逻辑。
type uiLayer struct {
	em *ecs.EntityManager

	buttons        *systems.ButtonSystem
	buttonRender   *systems.ButtonRenderSystem
	dialogs        *systems.DialogInputSystem
	dialogRender   *systems.DialogRenderSystem
	inputs         *systems.TextInputSystem
	inputRender    *systems.TextInputRenderSystem
	keyboard       *systems.VirtualKeyboardSystem
	keyboardRender *systems.VirtualKeyboardRenderSystem

	// widgets 当前模式下的按钮、点击区域和输入框，切换模式时整体销毁
	widgets []ecs.EntityID
	mode    string

	alertShown bool
	overlay    overlay
}

func newUILayer(fonts *utils.Fonts) *uiLayer {
	em := ecs.NewEntityManager()
	l := &uiLayer{
		em:             em,
		buttons:        systems.NewButtonSystem(em),
		buttonRender:   systems.NewButtonRenderSystem(em, fonts),
		dialogs:        systems.NewDialogInputSystem(em),
		dialogRender:   systems.NewDialogRenderSystem(em, fonts),
		inputs:         systems.NewTextInputSystem(em),
		inputRender:    systems.NewTextInputRenderSystem(em, fonts),
		keyboard:       systems.NewVirtualKeyboardSystem(em),
		keyboardRender: systems.NewVirtualKeyboardRenderSystem(em, fonts),
	}
	if utils.IsMobile() {
		entities.NewVirtualKeyboardEntity(em, config.GameWindowWidth, config.GameWindowHeight)
		l.inputs.SetFocusHandler(func(id ecs.EntityID, focused bool) {
			if focused {
				l.keyboard.ShowKeyboard(id)
			}
		})
	}
	return l
}

// update 推进控件并分发本帧输入
//
// 返回：
//   - frameInput: 本帧输入
//   - bool: 指针是否仍可由场景使用（没有被控件消费，也没有模态对话框）
func (l *uiLayer) update(dt float64) (frameInput, bool) {
	in := readInput()

	l.keyboard.Update(dt)
	l.dialogs.Update(dt)
	l.inputs.Update(dt)

	panelOpen := l.overlay != nil && l.overlay.IsVisible()
	if in.Escape {
		if !panelOpen || !l.overlay.HandleEscape() {
			l.dialogs.HandleEscape()
		}
	}

	free := true
	switch {
	case l.keyboard.HandlePointer(in.Pointer):
		free = false
	case panelOpen && l.overlay.HandlePointer(in.Pointer):
		free = false
		l.buttons.ResetStates()
	case l.dialogs.HandlePointer(in.Pointer):
		free = false
		l.buttons.ResetStates()
	case l.inputs.HandlePointer(in.Pointer):
		free = false
	case l.buttons.HandlePointer(in.Pointer):
		free = false
	}

	l.em.RemoveMarkedEntities()
	return in, free
}

// setMode 切换控件模式
//
// 模式变化时销毁旧控件并调用 build 创建新控件；模式不变时什么也不做。
func (l *uiLayer) setMode(mode string, build func()) {
	if l.mode == mode && l.widgets != nil {
		return
	}
	l.clearWidgets()
	l.mode = mode
	l.widgets = []ecs.EntityID{}
	if build != nil {
		build()
	}
}

func (l *uiLayer) clearWidgets() {
	for _, id := range l.widgets {
		l.em.DestroyEntity(id)
	}
	l.em.RemoveMarkedEntities()
	l.widgets = nil
	l.keyboard.HideKeyboard()
}

func (l *uiLayer) button(x, y, w float64, label string, style components.ButtonStyle, onClick func()) ecs.EntityID {
	id := entities.NewButton(l.em, x, y, w, label, style, onClick)
	l.widgets = append(l.widgets, id)
	return id
}

func (l *uiLayer) centeredButton(cx, y, w float64, label string, style components.ButtonStyle, onClick func()) ecs.EntityID {
	return l.button(cx-w/2, y, w, label, style, onClick)
}

func (l *uiLayer) hitArea(r utils.Rect, onClick func()) ecs.EntityID {
	id := entities.NewHitArea(l.em, r.X, r.Y, r.W, r.H, onClick)
	l.widgets = append(l.widgets, id)
	return id
}

func (l *uiLayer) textInput(r utils.Rect, text, placeholder string, onChange func(string)) ecs.EntityID {
	id := entities.NewTextInputEntity(l.em, r.X, r.Y, r.W, r.H, text, placeholder, onChange)
	l.widgets = append(l.widgets, id)
	return id
}

// moveWidget 移动控件（躲避的按钮、飞行的小鸭）
func (l *uiLayer) moveWidget(id ecs.EntityID, x, y float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](l.em, id); ok {
		pos.X, pos.Y = x, y
	}
}

// widgetRect 控件当前的屏幕矩形
func (l *uiLayer) widgetRect(id ecs.EntityID) (utils.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](l.em, id)
	if !ok {
		return utils.Rect{}, false
	}
	if b, ok := ecs.GetComponent[*components.ButtonComponent](l.em, id); ok {
		return utils.Rect{X: pos.X, Y: pos.Y, W: b.Width, H: b.Height}, true
	}
	if c, ok := ecs.GetComponent[*components.ClickableComponent](l.em, id); ok {
		return utils.Rect{X: pos.X, Y: pos.Y, W: c.Width, H: c.Height}, true
	}
	return utils.Rect{}, false
}

// setEnabled 启用/禁用点击区域
func (l *uiLayer) setEnabled(id ecs.EntityID, enabled bool) {
	if c, ok := ecs.GetComponent[*components.ClickableComponent](l.em, id); ok {
		c.IsEnabled = enabled
	}
	if b, ok := ecs.GetComponent[*components.ButtonComponent](l.em, id); ok {
		b.Enabled = enabled
	}
}

// alert 弹出提示框，点击“Oke”后调用 onOK
func (l *uiLayer) alert(message string, onOK func()) {
	entities.NewAlertDialog(l.em, message, onOK)
}

// syncAlert 把模型的阻塞提示同步为对话框，每条提示只弹一次
func (l *uiLayer) syncAlert(message string, dismiss func()) {
	if message == "" {
		l.alertShown = false
		return
	}
	if l.alertShown {
		return
	}
	l.alertShown = true
	l.alert(message, dismiss)
}

// confirm 弹出确认框
func (l *uiLayer) confirm(message string, onYes, onNo func()) {
	entities.NewConfirmDialog(l.em, message, onYes, onNo)
}

// dialogOpen 是否有可见对话框
func (l *uiLayer) dialogOpen() bool {
	return l.dialogs.Active()
}

func (l *uiLayer) draw(screen *ebiten.Image) {
	l.buttonRender.Draw(screen)
	l.inputRender.Draw(screen)
	l.dialogRender.Draw(screen)
	if l.overlay != nil {
		l.overlay.Draw(screen)
	}
	l.keyboardRender.Draw(screen)
}

// teardown 销毁全部控件
func (l *uiLayer) teardown() {
	l.widgets = nil
	l.em.Clear()
}
