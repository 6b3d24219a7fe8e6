// Package utils 提供场景共用的输入、绘制和平台工具
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer 当前帧的指针状态
// 统一鼠标左键和第一个触摸点，优先使用触摸
type Pointer struct {
	X, Y         float64
	Pressed      bool // 正在按住
	JustPressed  bool // 本帧刚按下
	JustReleased bool // 本帧刚释放
	Touch        bool // 来自触摸屏
}

// 触摸释放时触摸点已经消失，保留最后位置
var lastTouchX, lastTouchY int

// ReadPointer 读取当前帧的指针状态
func ReadPointer() Pointer {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		lastTouchX, lastTouchY = x, y
		return Pointer{X: float64(x), Y: float64(y), Pressed: true, JustPressed: true, Touch: true}
	}
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		lastTouchX, lastTouchY = x, y
		return Pointer{X: float64(x), Y: float64(y), Pressed: true, Touch: true}
	}
	if ids := inpututil.AppendJustReleasedTouchIDs(nil); len(ids) > 0 {
		return Pointer{X: float64(lastTouchX), Y: float64(lastTouchY), JustReleased: true, Touch: true}
	}

	x, y := ebiten.CursorPosition()
	return Pointer{
		X:            float64(x),
		Y:            float64(y),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

// IsKeyRepeated 按键本帧是否触发：第 1 帧立即触发，按住 30 帧后每 3 帧触发一次
func IsKeyRepeated(key ebiten.Key) bool {
	return repeatTick(inpututil.KeyPressDuration(key))
}

func repeatTick(duration int) bool {
	return duration == 1 || (duration >= 30 && duration%3 == 0)
}

// IsAnyKeyJustPressed 任意一个按键本帧刚按下
func IsAnyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// ============================================================================
// 拖拽状态 - 拼图块的拖放
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放），只持续一帧
	DragStateEnded
)

// DragInfo 拖拽信息
type DragInfo struct {
	State              DragState
	StartX, StartY     float64
	CurrentX, CurrentY float64
	Touch              bool
}

// DragTracker 跟踪一次拖拽的开始、移动和释放
//
// 每个场景持有自己的实例，每帧用 ReadPointer 的结果调用 Update。
type DragTracker struct {
	info DragInfo
}

// NewDragTracker 创建拖拽跟踪器
func NewDragTracker() *DragTracker {
	return &DragTracker{}
}

// Update 用本帧指针状态推进拖拽
func (d *DragTracker) Update(p Pointer) {
	switch d.info.State {
	case DragStateNone, DragStateEnded:
		d.info = DragInfo{}
		if p.JustPressed {
			d.info = DragInfo{
				State:    DragStateStarted,
				StartX:   p.X,
				StartY:   p.Y,
				CurrentX: p.X,
				CurrentY: p.Y,
				Touch:    p.Touch,
			}
		}

	case DragStateStarted, DragStateDragging:
		if p.Pressed {
			d.info.State = DragStateDragging
			d.info.CurrentX, d.info.CurrentY = p.X, p.Y
			return
		}
		d.info.State = DragStateEnded
		if p.JustReleased || !p.Touch {
			d.info.CurrentX, d.info.CurrentY = p.X, p.Y
		}
	}
}

// Reset 放弃当前拖拽
func (d *DragTracker) Reset() {
	d.info = DragInfo{}
}

// Info 当前拖拽信息
func (d *DragTracker) Info() DragInfo {
	return d.info
}

// State 当前拖拽状态
func (d *DragTracker) State() DragState {
	return d.info.State
}

// JustStarted 本帧刚开始拖拽
func (d *DragTracker) JustStarted() bool {
	return d.info.State == DragStateStarted
}

// Dragging 正在拖拽
func (d *DragTracker) Dragging() bool {
	return d.info.State == DragStateStarted || d.info.State == DragStateDragging
}

// JustEnded 本帧刚释放
func (d *DragTracker) JustEnded() bool {
	return d.info.State == DragStateEnded
}

// Distance 从起点到当前位置的位移
func (d *DragTracker) Distance() (dx, dy float64) {
	return d.info.CurrentX - d.info.StartX, d.info.CurrentY - d.info.StartY
}
