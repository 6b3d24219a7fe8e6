package minigame

import (
	"math/rand"
	"testing"

	"github.com/hbd-sarah/journey/pkg/components"
)

func phoneAt(x float64) SpawnSpec {
	return SpawnSpec{Kind: components.ItemPhone, X: x, Speed: 0.5}
}

func bombAt(x float64) SpawnSpec {
	return SpawnSpec{Kind: components.ItemBomb, X: x, Speed: 0.5}
}

// runCatch 推进直到离开 Running 或超时
func runCatch(c *Catch, maxSeconds float64) {
	for i := 0; i < int(maxSeconds*60) && c.Snapshot().State == Running; i++ {
		c.Update(frame)
	}
}

func TestCatchFivePhonesWinsOnce(t *testing.T) {
	store := newOpenedStore(t)
	store.SelectLevel(CatchLevel)
	c := NewCatch(store, &ScriptedSpawner{Specs: []SpawnSpec{phoneAt(50)}})

	wins := 0
	c.life.OnWon(func() { wins++ })
	c.Start()
	runCatch(c, 60)

	snap := c.Snapshot()
	if snap.State != Won {
		t.Fatalf("State = %s, want won", snap.State)
	}
	if snap.Score != 5 || snap.Lives != 4 {
		t.Errorf("Score = %d, Lives = %d", snap.Score, snap.Lives)
	}

	run(c.Update, 5)
	if wins != 1 {
		t.Errorf("OnWon fired %d times, want 1", wins)
	}
	if c.Snapshot().Score != 5 {
		t.Error("Score changed after winning")
	}

	if !c.Continue() {
		t.Fatal("Continue should succeed after winning")
	}
	r := store.Record()
	if !r.IsCompleted(CatchLevel) || !r.IsUnlocked(4) || r.CurrentLevel != 0 {
		t.Errorf("After continue: unlocked=%v completed=%v", r.Unlocked(), r.Completed())
	}
}

func TestCatchMissedItemsDespawn(t *testing.T) {
	c := NewCatch(newOpenedStore(t), &ScriptedSpawner{Specs: []SpawnSpec{phoneAt(90)}})
	c.Start()
	c.MovePlayer(10)

	run(c.Update, 10)
	snap := c.Snapshot()
	if snap.Score != 0 {
		t.Errorf("Score = %d, want 0", snap.Score)
	}
	for _, item := range snap.Items {
		if item.Y >= 105 {
			t.Errorf("Item below despawn line still present: %+v", item)
		}
	}
}

func TestCatchFoodIgnored(t *testing.T) {
	c := NewCatch(newOpenedStore(t), &ScriptedSpawner{Specs: []SpawnSpec{{Kind: components.ItemFood, X: 50, Speed: 0.5}}})
	c.Start()
	run(c.Update, 10)

	snap := c.Snapshot()
	if snap.Score != 0 || snap.Lives != 4 || snap.State != Running {
		t.Errorf("Food should have no effect: %+v", snap)
	}
}

func TestCatchBombsLoseThenRetry(t *testing.T) {
	store := newOpenedStore(t)
	store.SelectLevel(CatchLevel)
	before := store.Record().Unlocked()

	c := NewCatch(store, &ScriptedSpawner{Specs: []SpawnSpec{bombAt(50)}})
	c.Start()
	runCatch(c, 60)

	snap := c.Snapshot()
	if snap.State != Lost || snap.Lives != 0 {
		t.Fatalf("State = %s, Lives = %d", snap.State, snap.Lives)
	}
	if c.Continue() {
		t.Error("Continue must fail after losing")
	}

	if !c.Retry() {
		t.Fatal("Retry should succeed after losing")
	}
	snap = c.Snapshot()
	if snap.State != Running || snap.Score != 0 || snap.Lives != 4 || len(snap.Items) != 0 {
		t.Errorf("Retry should reset the round: %+v", snap)
	}

	after := store.Record().Unlocked()
	if len(after) != len(before) {
		t.Errorf("Unlocked changed: %v -> %v", before, after)
	}
}

func TestCatchMovePlayerClamped(t *testing.T) {
	c := NewCatch(newOpenedStore(t), &ScriptedSpawner{})
	c.MovePlayer(30)
	if c.Snapshot().PlayerX != 50 {
		t.Error("Player should not move before the game starts")
	}
	c.Start()
	c.MovePlayer(-20)
	if c.Snapshot().PlayerX != 0 {
		t.Errorf("PlayerX = %v, want 0", c.Snapshot().PlayerX)
	}
	c.MovePlayer(140)
	if c.Snapshot().PlayerX != 100 {
		t.Errorf("PlayerX = %v, want 100", c.Snapshot().PlayerX)
	}
}

func TestCatchTeardownStopsLoop(t *testing.T) {
	store := newOpenedStore(t)
	c := NewCatch(store, &ScriptedSpawner{Specs: []SpawnSpec{phoneAt(50)}})
	c.Start()
	run(c.Update, 3)

	changes := countingObserver(store)
	c.Teardown()
	run(c.Update, 60)

	if c.Snapshot().Score != 0 {
		t.Error("Loop kept running after teardown")
	}
	if c.Continue() || *changes != 0 {
		t.Error("Progress changed after teardown")
	}
}

func TestRandomSpawnerDistribution(t *testing.T) {
	s := NewRandomSpawner(rand.New(rand.NewSource(7)))
	counts := map[components.ItemKind]int{}
	for i := 0; i < 2000; i++ {
		spec := s.Next()
		counts[spec.Kind]++
		if spec.X < 5 || spec.X > 95 {
			t.Fatalf("X out of range: %v", spec.X)
		}
		if spec.Speed < 0.3 || spec.Speed > 0.6 {
			t.Fatalf("Speed out of range: %v", spec.Speed)
		}
	}
	for _, kind := range []components.ItemKind{components.ItemPhone, components.ItemBomb, components.ItemFood} {
		if counts[kind] == 0 {
			t.Errorf("No %s spawned", kind)
		}
	}
	if counts[components.ItemPhone] < counts[components.ItemBomb] {
		t.Errorf("Phones (%d) should outnumber bombs (%d)", counts[components.ItemPhone], counts[components.ItemBomb])
	}
}

func TestCatchCaughtReturnsCopy(t *testing.T) {
	store := newOpenedStore(t)
	store.SelectLevel(CatchLevel)
	c := NewCatch(store, &ScriptedSpawner{Specs: []SpawnSpec{phoneAt(50)}})
	c.Start()

	var first []components.ItemKind
	for i := 0; i < 60*60 && first == nil; i++ {
		c.Update(frame)
		if got := c.Caught(); len(got) > 0 {
			first = got
		}
	}
	if len(first) != 1 || first[0] != components.ItemPhone {
		t.Fatalf("Caught() = %v, want one phone", first)
	}

	first[0] = components.ItemBomb
	if again := c.Caught(); len(again) != 1 || again[0] != components.ItemPhone {
		t.Errorf("Caught() after caller edit = %v, want [phone]", again)
	}

	c.Update(frame)
	if len(c.Caught()) != 0 {
		t.Errorf("Caught() after next frame = %v, want empty", c.Caught())
	}
}
