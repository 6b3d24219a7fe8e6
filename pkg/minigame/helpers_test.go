package minigame

import (
	"path/filepath"
	"testing"

	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/game"
)

const frame = 1.0 / 60

// newOpenedStore 返回信封已打开、停在地图的进度
func newOpenedStore(t *testing.T) *game.ProgressStore {
	t.Helper()
	store := game.NewProgressStore(game.NewSaveManager(game.NewMemoryStorage()))
	store.OpenLetter()
	return store
}

// countingObserver 统计进度变更次数
func countingObserver(store *game.ProgressStore) *int {
	n := 0
	store.Subscribe(func(game.ProgressRecord) { n++ })
	return &n
}

func loadChatScript(t *testing.T) *config.ChatScript {
	t.Helper()
	script, err := config.LoadChatScript(filepath.Join("..", "..", config.ChatScriptPath))
	if err != nil {
		t.Fatalf("LoadChatScript() error: %v", err)
	}
	return script
}

func loadLevelTable(t *testing.T) *config.LevelTable {
	t.Helper()
	table, err := config.LoadLevelTable(filepath.Join("..", "..", config.LevelTablePath))
	if err != nil {
		t.Fatalf("LoadLevelTable() error: %v", err)
	}
	return table
}

func loadFlowerList(t *testing.T) *config.FlowerList {
	t.Helper()
	list, err := config.LoadFlowerList(filepath.Join("..", "..", config.FlowerListPath))
	if err != nil {
		t.Fatalf("LoadFlowerList() error: %v", err)
	}
	return list
}

// run 以固定帧长推进 seconds 秒
func run(update func(float64), seconds float64) {
	frames := int(seconds*60 + 0.5)
	for i := 0; i < frames; i++ {
		update(frame)
	}
}
