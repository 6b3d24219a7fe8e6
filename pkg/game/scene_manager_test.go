package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	screen         ScreenID
	updateCalled   bool
	drawCalled     bool
	teardownCalled int
	deltaTime      float64
	onUpdate       func()
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
	if m.onUpdate != nil {
		m.onUpdate()
	}
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) Teardown() {
	m.teardownCalled++
}

// recordingFactory 记录每次创建的场景
type recordingFactory struct {
	created []*MockScene
}

func (f *recordingFactory) build(screen ScreenID) Scene {
	s := &MockScene{screen: screen}
	f.created = append(f.created, s)
	return s
}

func (f *recordingFactory) last() *MockScene {
	return f.created[len(f.created)-1]
}

func newTestSceneManager(t *testing.T) (*ProgressStore, *SceneManager, *recordingFactory) {
	t.Helper()
	store := NewProgressStore(NewSaveManager(NewMemoryStorage()))
	factory := &recordingFactory{}
	sm := NewSceneManager(store, factory.build)
	sm.Start()
	return store, sm, factory
}

// TestSceneManagerStartMountsLetter verifies the initial route is the letter.
func TestSceneManagerStartMountsLetter(t *testing.T) {
	_, sm, factory := newTestSceneManager(t)

	if len(factory.created) != 1 {
		t.Fatalf("Expected 1 scene, got %d", len(factory.created))
	}
	if sm.CurrentScreen() != ScreenLetter {
		t.Errorf("Expected letter screen, got %s", sm.CurrentScreen())
	}
	if sm.GetCurrentScene() != factory.last() {
		t.Error("Current scene should be the created scene")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	_, sm, factory := newTestSceneManager(t)

	deltaTime := 0.016
	sm.Update(deltaTime)

	scene := factory.last()
	if !scene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if scene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, scene.deltaTime)
	}
}

// TestSceneManagerUpdateNoScene verifies that Update handles nil scene gracefully.
func TestSceneManagerUpdateNoScene(t *testing.T) {
	sm := NewSceneManager(nil, nil)
	sm.Update(0.016) // Should not panic
	sm.Draw(ebiten.NewImage(10, 10))
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	_, sm, factory := newTestSceneManager(t)

	sm.Draw(ebiten.NewImage(100, 100))

	if !factory.last().drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerRoutesOnProgressChange verifies teardown and re-route on a screen change.
func TestSceneManagerRoutesOnProgressChange(t *testing.T) {
	store, sm, factory := newTestSceneManager(t)
	letter := factory.last()

	store.OpenLetter()
	sm.Update(0.016)

	if letter.teardownCalled != 1 {
		t.Errorf("Letter teardown called %d times, want 1", letter.teardownCalled)
	}
	if sm.CurrentScreen() != ScreenMap {
		t.Fatalf("Expected map screen, got %s", sm.CurrentScreen())
	}

	store.SelectLevel(1)
	sm.Update(0.016)
	if sm.CurrentScreen() != ScreenChat {
		t.Errorf("Expected chat screen, got %s", sm.CurrentScreen())
	}
}

// TestSceneManagerKeepsSceneOnSameScreen verifies in-screen updates do not remount.
func TestSceneManagerKeepsSceneOnSameScreen(t *testing.T) {
	store, sm, factory := newTestSceneManager(t)
	store.OpenLetter()
	store.SelectLevel(1)
	store.CompleteLevel(1)
	store.SelectLevel(2)
	sm.Update(0.016)

	count := len(factory.created)
	store.SetFlowerChoice("rose")
	sm.Update(0.016)

	if len(factory.created) != count {
		t.Errorf("Scene was rebuilt on an in-screen change")
	}
	if factory.last().teardownCalled != 0 {
		t.Error("Current scene should not be torn down")
	}
}

// TestSceneManagerDefersSwitchUntilAfterUpdate verifies a scene finishing its own frame.
func TestSceneManagerDefersSwitchUntilAfterUpdate(t *testing.T) {
	store, sm, factory := newTestSceneManager(t)
	letter := factory.last()

	letter.onUpdate = func() {
		store.OpenLetter()
		if letter.teardownCalled != 0 {
			t.Error("Scene torn down while its Update was running")
		}
	}
	sm.Update(0.016)

	if letter.teardownCalled != 1 {
		t.Errorf("Letter teardown called %d times, want 1", letter.teardownCalled)
	}
	if sm.CurrentScreen() != ScreenMap {
		t.Errorf("Expected map screen, got %s", sm.CurrentScreen())
	}
}

// TestSceneManagerRebuildsOnReset verifies Reset remounts even when the screen repeats.
func TestSceneManagerRebuildsOnReset(t *testing.T) {
	store, sm, factory := newTestSceneManager(t)
	first := factory.last()

	store.Reset()
	sm.Update(0.016)

	if len(factory.created) != 2 {
		t.Fatalf("Expected scene rebuild after reset, got %d scenes", len(factory.created))
	}
	if first.teardownCalled != 1 {
		t.Error("Old scene should be torn down on reset")
	}
	if sm.CurrentScreen() != ScreenLetter {
		t.Errorf("Expected letter screen after reset, got %s", sm.CurrentScreen())
	}
}

// TestSceneManagerClose verifies Close tears down the mounted scene and unsubscribes.
func TestSceneManagerClose(t *testing.T) {
	store, sm, factory := newTestSceneManager(t)
	scene := factory.last()

	sm.Close()
	if scene.teardownCalled != 1 {
		t.Error("Close should tear down the mounted scene")
	}

	store.OpenLetter()
	if sm.pending {
		t.Error("Closed manager should not receive progress updates")
	}
}
