package utils

import (
	"testing"
)

func TestDragTrackerInitialState(t *testing.T) {
	d := NewDragTracker()

	if d.State() != DragStateNone {
		t.Errorf("Expected initial state to be DragStateNone, got %v", d.State())
	}
	if d.Dragging() || d.JustStarted() || d.JustEnded() {
		t.Error("Expected no drag initially")
	}
}

func TestDragTrackerLifecycle(t *testing.T) {
	d := NewDragTracker()

	d.Update(Pointer{X: 10, Y: 20, Pressed: true, JustPressed: true})
	if !d.JustStarted() {
		t.Fatalf("Expected DragStateStarted, got %v", d.State())
	}

	d.Update(Pointer{X: 40, Y: 60, Pressed: true})
	if d.State() != DragStateDragging {
		t.Fatalf("Expected DragStateDragging, got %v", d.State())
	}
	if dx, dy := d.Distance(); dx != 30 || dy != 40 {
		t.Errorf("Distance = (%v, %v), want (30, 40)", dx, dy)
	}

	d.Update(Pointer{X: 50, Y: 70, JustReleased: true})
	if !d.JustEnded() {
		t.Fatalf("Expected DragStateEnded, got %v", d.State())
	}
	info := d.Info()
	if info.CurrentX != 50 || info.CurrentY != 70 {
		t.Errorf("Release position = (%v, %v), want (50, 70)", info.CurrentX, info.CurrentY)
	}

	// 结束状态只持续一帧
	d.Update(Pointer{X: 50, Y: 70})
	if d.State() != DragStateNone {
		t.Errorf("Expected DragStateNone after the ended frame, got %v", d.State())
	}
}

func TestDragTrackerRestartAfterEnd(t *testing.T) {
	d := NewDragTracker()
	d.Update(Pointer{JustPressed: true, Pressed: true})
	d.Update(Pointer{JustReleased: true})
	d.Update(Pointer{X: 5, Y: 5, JustPressed: true, Pressed: true})
	if !d.JustStarted() {
		t.Errorf("A new press right after release should start a drag, got %v", d.State())
	}
}

func TestDragTrackerReset(t *testing.T) {
	d := NewDragTracker()
	d.Update(Pointer{X: 100, Y: 200, Pressed: true, JustPressed: true})
	d.Reset()

	info := d.Info()
	if info.State != DragStateNone || info.StartX != 0 || info.StartY != 0 {
		t.Errorf("Expected a zero drag after reset, got %+v", info)
	}
}

func TestRepeatTick(t *testing.T) {
	tests := []struct {
		duration int
		want     bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{29, false},
		{30, true},
		{31, false},
		{33, true},
	}
	for _, tt := range tests {
		if got := repeatTick(tt.duration); got != tt.want {
			t.Errorf("repeatTick(%d) = %v, want %v", tt.duration, got, tt.want)
		}
	}
}
