package systems

import (
	"testing"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/utils"
)

func newTestCheckbox(em *ecs.EntityManager, onToggle func(bool)) *components.CheckboxComponent {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: 100, Y: 50})
	checkbox := &components.CheckboxComponent{Label: "Suara", Size: 30, HitWidth: 200, OnToggle: onToggle}
	em.AddComponent(id, checkbox)
	return checkbox
}

func TestCheckboxSystemTogglesOnRelease(t *testing.T) {
	em := ecs.NewEntityManager()
	var got []bool
	checkbox := newTestCheckbox(em, func(on bool) { got = append(got, on) })
	sys := NewCheckboxSystem(em)

	if sys.HandlePointer(utils.Pointer{X: 115, Y: 65, Pressed: true, JustPressed: true}) {
		t.Error("Press alone should not toggle")
	}
	if !checkbox.IsHovered {
		t.Error("Expected hover while the mouse is over the box")
	}
	if !sys.HandlePointer(utils.Pointer{X: 115, Y: 65, JustReleased: true}) {
		t.Fatal("Release inside should toggle")
	}
	if !checkbox.IsChecked {
		t.Error("Expected checked after the first toggle")
	}

	// 点标签也能切换
	sys.HandlePointer(utils.Pointer{X: 280, Y: 70, JustReleased: true})
	if checkbox.IsChecked {
		t.Error("Expected unchecked after clicking the label")
	}
	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("OnToggle calls = %v, want [true false]", got)
	}
}

func TestCheckboxSystemIgnoresOutside(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"左边界外", 99, 65},
		{"右边界外", 301, 65},
		{"上边界外", 115, 49},
		{"下边界外", 115, 81},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			checkbox := newTestCheckbox(em, nil)
			if NewCheckboxSystem(em).HandlePointer(utils.Pointer{X: tt.x, Y: tt.y, JustReleased: true}) {
				t.Error("Release outside should not toggle")
			}
			if checkbox.IsChecked || checkbox.IsHovered {
				t.Errorf("Checkbox changed: %+v", checkbox)
			}
		})
	}
}

func TestCheckboxRectUsesSizeWhenHitWidthIsSmaller(t *testing.T) {
	pos := &components.PositionComponent{X: 10, Y: 20}
	r := CheckboxRect(pos, &components.CheckboxComponent{Size: 30, HitWidth: 5})
	if r != (utils.Rect{X: 10, Y: 20, W: 30, H: 30}) {
		t.Errorf("CheckboxRect = %+v", r)
	}
}
