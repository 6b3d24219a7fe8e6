package utils

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{110, 70, true},
		{60, 45, true},
		{9, 45, false},
		{60, 71, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(400, 300, 200, 100)
	if r.X != 300 || r.Y != 250 {
		t.Errorf("CenteredRect = %+v", r)
	}
	if cx, cy := r.Center(); cx != 400 || cy != 300 {
		t.Errorf("Center = (%v, %v)", cx, cy)
	}
	in := r.Inset(10)
	if in.W != 180 || in.H != 80 || in.X != 310 {
		t.Errorf("Inset = %+v", in)
	}
}

func TestPercentRect(t *testing.T) {
	area := Rect{X: 100, Y: 0, W: 600, H: 400}
	r := PercentRect(area, 50, 25, 10, 50)
	want := Rect{X: 400, Y: 100, W: 60, H: 200}
	if r != want {
		t.Errorf("PercentRect = %+v, want %+v", r, want)
	}
}
