package entities

import (
	"testing"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
)

func TestNewCenteredButton(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewCenteredButton(em, 400, 500, 200, "Lanjut", components.ButtonPrimary, nil)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	button, ok := ecs.GetComponent[*components.ButtonComponent](em, id)
	if !ok {
		t.Fatal("Expected ButtonComponent")
	}
	if pos.X != 300 || pos.Y != 500 {
		t.Errorf("position = (%v, %v), want (300, 500)", pos.X, pos.Y)
	}
	if button.Height != config.ButtonHeight || !button.Enabled || button.State != components.UINormal {
		t.Errorf("unexpected button defaults: %+v", button)
	}
}

func TestNewHitArea(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewHitArea(em, 10, 20, 30, 40, func() {})

	area, ok := ecs.GetComponent[*components.ClickableComponent](em, id)
	if !ok {
		t.Fatal("Expected ClickableComponent")
	}
	if !area.IsEnabled || area.Width != 30 || area.Height != 40 {
		t.Errorf("unexpected hit area: %+v", area)
	}
}
