package minigame

import (
	"math/rand"
	"testing"

	"github.com/hbd-sarah/journey/pkg/config"
)

func TestFlowersFullFlow(t *testing.T) {
	store := newOpenedStore(t)
	store.UnlockLevel(FlowersLevel)
	store.SelectLevel(FlowersLevel)
	f := NewFlowers(loadFlowerList(t), store, rand.New(rand.NewSource(1)))

	if f.Yes() || f.Next() {
		t.Fatal("Yes/Next must be ignored while picking")
	}
	if f.Pick(99) {
		t.Error("Unknown flower should be rejected")
	}
	if !f.Pick(2) {
		t.Fatal("Pick(2) failed")
	}
	if got := store.Record().FlowerChoice; got != "Sunflower" {
		t.Errorf("FlowerChoice = %q, want Sunflower", got)
	}
	if f.Pick(3) {
		t.Error("Second pick should be ignored")
	}

	run(f.Update, 0.4)
	if f.ProposalOpen() {
		t.Error("Proposal opened too early")
	}
	run(f.Update, 0.2)
	if !f.ProposalOpen() {
		t.Fatal("Proposal should be open after 0.5s")
	}

	if !f.Yes() {
		t.Fatal("Yes failed")
	}
	run(f.Update, 0.6)
	if !f.StoryOpen() {
		t.Fatal("Story should be open")
	}

	if !f.Next() {
		t.Fatal("Next failed")
	}
	run(f.Update, 1.4)
	if store.Record().IsCompleted(FlowersLevel) {
		t.Error("Level completed before the exit animation")
	}
	run(f.Update, 0.2)
	r := store.Record()
	if !r.IsCompleted(FlowersLevel) || !r.IsUnlocked(3) || r.CurrentLevel != 0 {
		t.Errorf("After exit: %+v", r)
	}
}

func TestFlowersDodgeNo(t *testing.T) {
	f := NewFlowers(loadFlowerList(t), newOpenedStore(t), rand.New(rand.NewSource(9)))
	if x, y := f.DodgeNo(); x != 0 || y != 0 {
		t.Error("No button should not move before the proposal")
	}

	f.Pick(1)
	run(f.Update, 0.6)
	half := config.FlowerDodgeRange / 2
	for i := 0; i < 50; i++ {
		x, y := f.DodgeNo()
		if x < -half || x > half || y < -half || y > half {
			t.Fatalf("Offset out of range: (%v, %v)", x, y)
		}
		if nx, ny := f.NoOffset(); nx != x || ny != y {
			t.Fatal("NoOffset should report the last dodge")
		}
	}
}

func TestFlowersTeardownCancelsExit(t *testing.T) {
	store := newOpenedStore(t)
	f := NewFlowers(loadFlowerList(t), store, nil)
	f.Pick(1)
	run(f.Update, 0.6)
	f.Yes()
	run(f.Update, 0.6)
	f.Next()

	f.Teardown()
	run(f.Update, 3)
	if store.Record().IsCompleted(FlowersLevel) {
		t.Error("Level completed after teardown")
	}
}
