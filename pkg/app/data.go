package app

import (
	"fmt"

	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/embedded"
)

// gameData 启动时加载的数据表
type gameData struct {
	levels  *config.LevelTable
	chat    *config.ChatScript
	flowers *config.FlowerList
}

// loadGameData 从嵌入文件系统读取并校验全部数据表
func loadGameData() (*gameData, error) {
	levelsYAML, err := embedded.ReadFile(config.LevelTablePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", config.LevelTablePath, err)
	}
	levels, err := config.ParseLevelTable(levelsYAML)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.LevelTablePath, err)
	}

	chatYAML, err := embedded.ReadFile(config.ChatScriptPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", config.ChatScriptPath, err)
	}
	chat, err := config.ParseChatScript(chatYAML)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ChatScriptPath, err)
	}

	flowersYAML, err := embedded.ReadFile(config.FlowerListPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", config.FlowerListPath, err)
	}
	flowers, err := config.ParseFlowerList(flowersYAML)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.FlowerListPath, err)
	}

	return &gameData{levels: levels, chat: chat, flowers: flowers}, nil
}
