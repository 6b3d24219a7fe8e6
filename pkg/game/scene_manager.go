package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 根据路由结果创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(screen ScreenID) Scene

// SceneManager manages which scene is mounted.
// It ensures only one scene's Update and Draw methods are called at any given time,
// and re-routes whenever the progress store reports a change.
type SceneManager struct {
	currentScene  Scene
	currentScreen ScreenID
	generation    int
	mounted       bool
	pending       bool

	store        *ProgressStore
	sceneFactory SceneFactory
	unsubscribe  func()
}

// NewSceneManager creates a SceneManager bound to the progress store.
// No scene is mounted until Start (or the first Update) is called.
func NewSceneManager(store *ProgressStore, factory SceneFactory) *SceneManager {
	sm := &SceneManager{
		store:        store,
		sceneFactory: factory,
	}
	if store != nil {
		sm.unsubscribe = store.Subscribe(func(ProgressRecord) {
			sm.pending = true
		})
	}
	return sm
}

// Start 挂载初始场景
func (sm *SceneManager) Start() {
	sm.pending = true
	sm.sync()
}

// SwitchTo mounts the provided scene, tearing down the previous one.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene != nil {
		sm.currentScene.Teardown()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentScreen 返回当前挂载的界面
func (sm *SceneManager) CurrentScreen() ScreenID {
	return sm.currentScreen
}

// sync 在有挂起的进度变更时重新路由
//
// 只有界面变化或进度被重置时才重建场景；同一界面内的进度变更
// （例如选花、写愿望）不会打断当前场景。
func (sm *SceneManager) sync() {
	if !sm.pending || sm.store == nil {
		return
	}
	sm.pending = false

	screen := Route(sm.store.Record())
	generation := sm.store.Generation()
	if sm.mounted && screen == sm.currentScreen && generation == sm.generation {
		return
	}

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	log.Printf("[SceneManager] 切换界面: %s -> %s", sm.currentScreen, screen)
	sm.SwitchTo(sm.sceneFactory(screen))
	sm.currentScreen = screen
	sm.generation = generation
	sm.mounted = true
}

// Update updates the currently active scene.
// Progress changes made during the frame take effect after the scene's Update returns.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	sm.sync()
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
	sm.sync()
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Close 卸载当前场景并取消订阅
func (sm *SceneManager) Close() {
	sm.SwitchTo(nil)
	sm.mounted = false
	if sm.unsubscribe != nil {
		sm.unsubscribe()
		sm.unsubscribe = nil
	}
}
