// Package scenes 把小游戏模型接到 ebiten 的输入和绘制上
//
// 每个界面一个场景：场景拥有自己的模型、控件层和计时，
// 被卸载（Teardown）后不再修改进度。
package scenes

import (
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/game"
	"github.com/hbd-sarah/journey/pkg/minigame"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// Deps 场景共享的依赖
type Deps struct {
	Store   *game.ProgressStore
	Audio   *game.AudioManager // 可为 nil（静音）
	Fonts   *utils.Fonts       // 可为 nil（不绘制文字）
	Levels  *config.LevelTable
	Chat    *config.ChatScript
	Flowers *config.FlowerList
	Sharer  minigame.Sharer

	// Settings 为 nil 时地图不显示设置按钮
	Settings *game.SettingsManager
	// SetFullscreen 切换窗口全屏，可为 nil
	SetFullscreen func(enabled bool)
}

// NewFactory 创建路由到场景的工厂
//
// 参数：
//   - deps: 场景依赖
//
// 返回：
//   - game.SceneFactory: 供 SceneManager 使用
func NewFactory(deps *Deps) game.SceneFactory {
	return func(screen game.ScreenID) game.Scene {
		switch screen {
		case game.ScreenLetter:
			return NewLetterScene(deps)
		case game.ScreenMap:
			return NewMapScene(deps)
		case game.ScreenChat:
			return NewChatScene(deps)
		case game.ScreenFlowers:
			return NewFlowersScene(deps)
		case game.ScreenCatch:
			return NewCatchScene(deps)
		case game.ScreenFlappy:
			return NewFlappyScene(deps)
		case game.ScreenPuzzle:
			return NewPuzzleScene(deps)
		case game.ScreenCake:
			return NewCakeScene(deps)
		default:
			return NewComingSoonScene(deps)
		}
	}
}

// play 播放音效，没有音频时静默
func (d *Deps) play(id game.SoundID) {
	if d.Audio != nil {
		d.Audio.PlaySound(id)
	}
}

// userName 信中称呼
func (d *Deps) userName() string {
	if d.Store == nil {
		return config.DefaultUserName
	}
	if name := d.Store.Record().UserName; name != "" {
		return name
	}
	return config.DefaultUserName
}
