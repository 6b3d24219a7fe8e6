package systems

import (
	"testing"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/entities"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// clickAt 模拟一次完整的点击（按下 + 释放）
func clickAt(sys *DialogInputSystem, x, y float64) bool {
	sys.HandlePointer(utils.Pointer{X: x, Y: y, Pressed: true, JustPressed: true})
	return sys.HandlePointer(utils.Pointer{X: x, Y: y, JustReleased: true})
}

func buttonCenter(t *testing.T, em *ecs.EntityManager, id ecs.EntityID, index int) (float64, float64) {
	t.Helper()
	dialog, _ := ecs.GetComponent[*components.DialogComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	return DialogButtonRects(dialog, pos)[index].Center()
}

func TestDialogButtonRectsLayout(t *testing.T) {
	dialog := &components.DialogComponent{
		Width:   400,
		Height:  200,
		Buttons: []components.DialogButton{{Label: "a"}, {Label: "b"}},
	}
	pos := &components.PositionComponent{X: 100, Y: 50}
	rects := DialogButtonRects(dialog, pos)
	if len(rects) != 2 {
		t.Fatalf("rects = %d, want 2", len(rects))
	}
	if rects[0].X != 100+config.DialogPadding {
		t.Errorf("first button X = %v", rects[0].X)
	}
	right := rects[1].X + rects[1].W
	if right != 100+400-config.DialogPadding {
		t.Errorf("last button right edge = %v, want %v", right, 100+400-config.DialogPadding)
	}
	if rects[0].W != rects[1].W {
		t.Error("buttons should share the width")
	}
	if bottom := rects[0].Y + rects[0].H; bottom != 50+200-config.DialogPadding {
		t.Errorf("button bottom = %v", bottom)
	}
	if DialogButtonRects(&components.DialogComponent{}, pos) != nil {
		t.Error("no buttons should give nil rects")
	}
}

func TestDialogSwallowsInputAndClosesOnButton(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewDialogInputSystem(em)
	if sys.HandlePointer(utils.Pointer{X: 1, Y: 1, JustPressed: true}) {
		t.Error("No dialog: input should pass through")
	}

	ok := 0
	id := entities.NewAlertDialog(em, "Halo", func() { ok++ })

	// 弹出动画期间不响应
	cx, cy := buttonCenter(t, em, id, 0)
	if !clickAt(sys, cx, cy) || ok != 0 {
		t.Fatalf("Click during pop-in should be swallowed without firing (ok=%d)", ok)
	}

	sys.Update(config.DialogPopSeconds)
	if !clickAt(sys, 1, 1) {
		t.Error("Click outside should still be swallowed")
	}
	if ok != 0 || !sys.Active() {
		t.Error("Click outside must not close an alert")
	}

	clickAt(sys, cx, cy)
	if ok != 1 {
		t.Errorf("ok = %d, want 1", ok)
	}
	em.RemoveMarkedEntities()
	if sys.Active() {
		t.Error("Auto-close dialog should be destroyed")
	}
}

func TestDialogOnlyTopmostResponds(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewDialogInputSystem(em)
	var fired []string
	first := entities.NewAlertDialog(em, "bawah", func() { fired = append(fired, "bottom") })
	entities.NewAlertDialog(em, "atas", func() { fired = append(fired, "top") })
	sys.Update(1)

	cx, cy := buttonCenter(t, em, first, 0)
	clickAt(sys, cx, cy)
	if len(fired) != 1 || fired[0] != "top" {
		t.Errorf("fired = %v, want [top]", fired)
	}
}

func TestDialogEscapeTriggersLastButton(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewDialogInputSystem(em)
	answer := ""
	entities.NewConfirmDialog(em, "Yakin?", func() { answer = "yes" }, func() { answer = "no" })

	if !sys.HandleEscape() {
		t.Fatal("Escape should be handled")
	}
	if answer != "no" {
		t.Errorf("answer = %q, want no", answer)
	}
	em.RemoveMarkedEntities()
	if sys.HandleEscape() {
		t.Error("Escape with no dialog should not be handled")
	}
}
