package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

// TestLoadLevelTable_ProjectData 加载项目自带的关卡表
func TestLoadLevelTable_ProjectData(t *testing.T) {
	table, err := LoadLevelTable(filepath.Join("..", "..", LevelTablePath))
	if err != nil {
		t.Fatalf("LoadLevelTable() failed: %v", err)
	}

	if len(table.Levels) != LastLevel+1 {
		t.Fatalf("Expected %d levels, got %d", LastLevel+1, len(table.Levels))
	}
	if table.Title != "Perjalanan Kita" {
		t.Errorf("Expected title 'Perjalanan Kita', got %q", table.Title)
	}

	playable := table.Playable()
	if len(playable) != LastLevel {
		t.Fatalf("Expected %d playable nodes, got %d", LastLevel, len(playable))
	}
	if playable[0].ID != FirstLevel || playable[0].Label != "Permulaan" {
		t.Errorf("Unexpected first playable node: %+v", playable[0])
	}

	node, ok := table.Node(6)
	if !ok || node.Label != "Harapan Kita" {
		t.Errorf("Node(6) = %+v, %v", node, ok)
	}
	if _, ok := table.Node(7); ok {
		t.Error("Node(7) should not exist")
	}
}

func TestParseLevelTable_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "levels: []\n"},
		{"gap in ids", "levels:\n  - id: 0\n  - id: 2\n    label: b\n"},
		{"missing label", "levels:\n  - id: 0\n  - id: 1\n"},
		{"too short", "levels:\n  - id: 0\n  - id: 1\n    label: a\n"},
		{"bad yaml", "levels: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLevelTable([]byte(tt.yaml)); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestLoadLevelTable_MissingFile(t *testing.T) {
	_, err := LoadLevelTable(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}
