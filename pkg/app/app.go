// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/game"
	"github.com/hbd-sarah/journey/pkg/scenes"
	"github.com/hbd-sarah/journey/pkg/share"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// audioSampleRate 音效合成采样率
const audioSampleRate = 44100

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	store                    *game.ProgressStore
	settings                 *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	data, err := loadGameData()
	if err != nil {
		return nil, fmt.Errorf("数据加载失败: %w", err)
	}

	fonts, err := utils.LoadFonts()
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	storage := openStorage(cfg.AppName)
	settings := game.NewSettingsManager(storage)
	if cfg.Mute {
		settings.SetSoundEnabled(false)
	}
	store := game.NewProgressStore(game.NewSaveManager(storage))
	if cfg.ResetSave {
		log.Printf("[App] Reset requested, clearing saved progress")
		store.Reset()
	}
	if cfg.Level > 0 {
		applyStartLevel(store, data.levels, cfg.Level)
	}

	// 初始化音频上下文
	audioManager := game.NewAudioManager(audio.NewContext(audioSampleRate), settings)
	log.Printf("[App] AudioManager initialized")

	deps := &scenes.Deps{
		Store:   store,
		Audio:   audioManager,
		Fonts:   fonts,
		Levels:  data.levels,
		Chat:    data.chat,
		Flowers: data.flowers,
		Sharer:  share.New(),

		Settings: settings,
	}
	a := &App{
		store:    store,
		settings: settings,
		verbose:  cfg.Verbose,
	}
	deps.SetFullscreen = a.setFullscreen

	// 创建场景管理器，进度变化时自动切换场景
	sceneManager := game.NewSceneManager(store, scenes.NewFactory(deps))
	sceneManager.Start()
	log.Printf("[App] Starting at screen %v", sceneManager.CurrentScreen())

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	a.sceneManager = sceneManager
	return a, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（仅内存进度）
func openStorage(appName string) game.Storage {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v (progress will not be saved)", err)
		return nil
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Warning: Failed to open gdata storage: %v (progress will not be saved)", err)
		// 返回无类型的 nil，避免接口持有 nil 指针
		return nil
	}
	return manager
}

// applyStartLevel 调试入口：打开信封并直接进入指定关卡
func applyStartLevel(store *game.ProgressStore, table *config.LevelTable, level int) {
	store.OpenLetter()
	if _, ok := table.Node(level); !ok {
		store.UnlockLevel(level)
	} else {
		for id := config.FirstLevel; id <= level; id++ {
			store.UnlockLevel(id)
		}
	}
	if store.SelectLevel(level) {
		log.Printf("[App] Jumped to level %d", level)
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(1.0 / config.TicksPerSecond)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	a.setFullscreen(fullscreen)
	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// setFullscreen 切换窗口全屏，退出全屏后恢复默认窗口大小
func (a *App) setFullscreen(fullscreen bool) {
	if !fullscreen {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 卸载当前场景
// 进度在每次变化时已经写入存储，这里只需要停止计时
func (a *App) Close() {
	a.sceneManager.Close()
}

// Store 返回进度存储
func (a *App) Store() *game.ProgressStore {
	return a.store
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
