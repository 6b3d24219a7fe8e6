package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hbd-sarah/journey/pkg/app"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	level := flag.Int("level", 0, "直接进入指定关卡（调试用）")
	reset := flag.Bool("reset", false, "启动时清空存档")
	appName := flag.String("app-name", app.DefaultAppName, "存档目录名")
	mute := flag.Bool("mute", false, "关闭音效")
	flag.Parse()

	cfg, err := app.ApplyEnv(app.Config{
		Verbose:   *verbose,
		Level:     *level,
		ResetSave: *reset,
		AppName:   *appName,
		Mute:      *mute,
	})
	if err != nil {
		log.Fatalf("配置错误: %v", err)
	}

	// 初始化嵌入数据（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Happy Birthday Journey")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
