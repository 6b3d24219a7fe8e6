package minigame

import (
	"math"
	"math/rand"
	"testing"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/ecs"
	"github.com/hbd-sarah/journey/pkg/game"
)

func newTestFlappy(t *testing.T) (*Flappy, *game.ProgressStore) {
	t.Helper()
	store := newOpenedStore(t)
	return NewFlappy(store, rand.New(rand.NewSource(1))), store
}

// placeObstacle 在指定横坐标放一根管道
func placeObstacle(f *Flappy, topHeight, x float64) {
	id := f.spawnObstacle(topHeight)
	pos, _ := ecs.GetComponent[*components.PositionComponent](f.em, id)
	pos.X = x
}

// startFlying 点击开始并跳过倒计时
func startFlying(f *Flappy) {
	f.Tap()
	run(f.Update, 3.1)
}

// pinBird 让小鸭停在缝隙中间，专注测试管道逻辑
func pinBird(f *Flappy) {
	f.birdY = 50
	f.velocity = 0
}

func TestFlappyCountdownThenImmunity(t *testing.T) {
	f, _ := newTestFlappy(t)

	if f.Snapshot().State != NotStarted {
		t.Fatal("Should start in NotStarted")
	}
	f.Tap()
	snap := f.Snapshot()
	if snap.State != Running || snap.Countdown != 3 {
		t.Fatalf("After tap: %+v", snap)
	}

	run(f.Update, 1.5)
	if f.Snapshot().Countdown != 2 {
		t.Errorf("Countdown = %d, want 2", f.Snapshot().Countdown)
	}
	if f.Snapshot().BirdY != 50 {
		t.Error("Bird should not move during the countdown")
	}

	run(f.Update, 1.6)
	snap = f.Snapshot()
	if snap.Countdown != 0 || !snap.Immune {
		t.Errorf("After countdown: %+v", snap)
	}
}

func TestFlappyImmuneFloorThenCrash(t *testing.T) {
	f, _ := newTestFlappy(t)
	startFlying(f)

	// 无敌期间落地不会失败
	run(f.Update, 2.5)
	snap := f.Snapshot()
	if snap.State != Running || snap.BirdY != 90 {
		t.Fatalf("During immunity: state=%s y=%v", snap.State, snap.BirdY)
	}

	run(f.Update, 1.0)
	if f.Snapshot().State != Lost {
		t.Errorf("State = %s, want lost after immunity ends", f.Snapshot().State)
	}
}

func TestFlappyJump(t *testing.T) {
	f, _ := newTestFlappy(t)
	startFlying(f)
	pinBird(f)

	f.Tap()
	f.Update(frame)
	snap := f.Snapshot()
	if snap.Velocity >= 0 || snap.BirdY >= 50 {
		t.Errorf("Jump should move the bird up: %+v", snap)
	}
}

func TestFlappyCeilingClamp(t *testing.T) {
	f, _ := newTestFlappy(t)
	startFlying(f)
	f.birdY = 1
	f.velocity = -2
	f.Update(frame)
	if f.Snapshot().BirdY != 0 || f.Snapshot().Velocity != 0 {
		t.Errorf("Bird should stop at the ceiling: %+v", f.Snapshot())
	}
}

func TestFlappyPassingObstacleScores(t *testing.T) {
	f, _ := newTestFlappy(t)
	startFlying(f)
	pinBird(f)

	// 右边缘刚好在小鸭左侧 0.1 处，一帧后越过
	placeObstacle(f, 30, 20-15+0.1)
	f.Update(frame)

	snap := f.Snapshot()
	if snap.Score != 1 {
		t.Fatalf("Score = %d, want 1", snap.Score)
	}
	if len(snap.Obstacles) != 1 || !snap.Obstacles[0].Passed {
		t.Errorf("Obstacle should be marked passed: %+v", snap.Obstacles)
	}

	pinBird(f)
	f.Update(frame)
	if f.Snapshot().Score != 1 {
		t.Error("Obstacle scored twice")
	}
}

func TestFlappyTenPointsWins(t *testing.T) {
	f, store := newTestFlappy(t)
	startFlying(f)
	pinBird(f)
	f.score = 9

	placeObstacle(f, 30, 5.1)
	f.Update(frame)

	if f.Snapshot().State != Won {
		t.Fatalf("State = %s, want won", f.Snapshot().State)
	}
	f.Tap()
	if f.Snapshot().State != Won {
		t.Error("Tap after winning must not restart")
	}
	if !f.Continue() {
		t.Fatal("Continue should succeed")
	}
	if !store.Record().IsCompleted(FlappyLevel) || !store.Record().IsUnlocked(5) {
		t.Errorf("Level 4 not completed: %v", store.Record().Completed())
	}
}

func TestFlappyObstacleCollision(t *testing.T) {
	f, _ := newTestFlappy(t)
	startFlying(f)
	run(func(dt float64) {
		pinBird(f)
		f.Update(dt)
	}, 3.1)
	if f.Immune() {
		t.Fatal("Immunity should be over")
	}

	// 缝隙在 70..115，小鸭在 50 撞到上管道
	pinBird(f)
	placeObstacle(f, 70, 20)
	f.Update(frame)
	if f.Snapshot().State != Lost {
		t.Errorf("State = %s, want lost", f.Snapshot().State)
	}
}

func TestFlappyRetryKeepsScoreAndObstacles(t *testing.T) {
	f, _ := newTestFlappy(t)
	startFlying(f)
	f.score = 4
	placeObstacle(f, 30, 60)
	placeObstacle(f, 30, 90)
	f.immunity = 0
	f.birdY = 95
	f.Update(frame)
	if f.Snapshot().State != Lost {
		t.Fatalf("State = %s, want lost", f.Snapshot().State)
	}

	f.Tap()
	snap := f.Snapshot()
	if snap.State != Running || snap.Countdown != 3 {
		t.Fatalf("Retry should restart the countdown: %+v", snap)
	}
	if snap.Score != 4 {
		t.Errorf("Score = %d, want 4 kept", snap.Score)
	}
	if len(snap.Obstacles) != 2 {
		t.Errorf("Obstacles = %d, want 2 kept", len(snap.Obstacles))
	}
	if snap.BirdY != 50 || snap.Velocity != 0 {
		t.Errorf("Bird should be reset: %+v", snap)
	}
}

func TestFlappySpawnsObstacles(t *testing.T) {
	f, _ := newTestFlappy(t)
	startFlying(f)
	run(func(dt float64) {
		pinBird(f)
		f.Update(dt)
	}, 3.2)

	snap := f.Snapshot()
	if len(snap.Obstacles) != 1 {
		t.Fatalf("Obstacles = %d, want 1", len(snap.Obstacles))
	}
	top := snap.Obstacles[0].TopHeight
	if top < 10 || top > 35 {
		t.Errorf("TopHeight = %v, want 10..35", top)
	}
}

func TestFlappyLargeDtClamped(t *testing.T) {
	f, _ := newTestFlappy(t)
	startFlying(f)
	pinBird(f)

	f.Update(1.0) // 60 帧的间隔按 4 帧处理
	snap := f.Snapshot()
	// velocity = 0.1*4 = 0.4, y = 50 + 0.4*4
	if math.Abs(snap.Velocity-0.4) > 1e-9 || math.Abs(snap.BirdY-51.6) > 1e-9 {
		t.Errorf("Velocity = %v, BirdY = %v", snap.Velocity, snap.BirdY)
	}
}

func TestFlappyTeardown(t *testing.T) {
	f, store := newTestFlappy(t)
	startFlying(f)
	changes := countingObserver(store)
	f.Teardown()
	f.Tap()
	run(f.Update, 5)
	if f.Continue() || *changes != 0 {
		t.Error("Progress changed after teardown")
	}
}
