package minigame

import (
	"testing"

	"github.com/hbd-sarah/journey/pkg/game"
)

func TestLetterJourney(t *testing.T) {
	store := game.NewProgressStore(game.NewSaveManager(game.NewMemoryStorage()))
	l := NewLetter(store)

	if l.StartJourney() {
		t.Fatal("StartJourney must wait for the letter to open")
	}
	if !l.Open() || l.Open() {
		t.Fatal("Open should succeed exactly once")
	}
	if l.Phase() != LetterOpening {
		t.Errorf("Phase = %d, want opening", l.Phase())
	}

	run(l.Update, 0.75)
	if p := l.PhaseProgress(); p < 0.45 || p > 0.55 {
		t.Errorf("PhaseProgress = %v, want ~0.5", p)
	}
	run(l.Update, 0.85)
	if l.Phase() != LetterOpened {
		t.Fatalf("Phase = %d, want opened", l.Phase())
	}

	if !l.StartJourney() {
		t.Fatal("StartJourney failed")
	}
	run(l.Update, 1.1)
	if l.Phase() != LetterClosing {
		t.Errorf("Phase = %d, want closing", l.Phase())
	}
	run(l.Update, 0.8)
	if l.Phase() != LetterExiting {
		t.Errorf("Phase = %d, want exiting", l.Phase())
	}
	if store.Record().IsLetterOpened {
		t.Error("Letter marked opened before the exit animation finished")
	}
	run(l.Update, 1.5)
	if l.Phase() != LetterDone || !store.Record().IsLetterOpened {
		t.Errorf("Phase = %d, opened = %v", l.Phase(), store.Record().IsLetterOpened)
	}
}

func TestLetterTeardown(t *testing.T) {
	store := game.NewProgressStore(nil)
	l := NewLetter(store)
	l.Open()
	run(l.Update, 2)
	l.StartJourney()
	l.Teardown()
	run(l.Update, 5)
	if store.Record().IsLetterOpened {
		t.Error("Letter opened after teardown")
	}
}

func TestComingSoonBackToMap(t *testing.T) {
	store := newOpenedStore(t)
	store.UnlockLevel(7)
	store.SelectLevel(7)

	c := NewComingSoon(store)
	if c.Level() != 7 {
		t.Errorf("Level = %d, want 7", c.Level())
	}
	c.BackToMap()
	if store.Record().CurrentLevel != 0 {
		t.Error("BackToMap should return to the map")
	}

	store.SelectLevel(7)
	c.Teardown()
	c.BackToMap()
	if store.Record().CurrentLevel != 7 {
		t.Error("BackToMap after teardown should be ignored")
	}
}
