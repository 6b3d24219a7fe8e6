package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LevelNode 地图上的一个关卡节点
type LevelNode struct {
	ID    int     `yaml:"id"`    // 关卡编号，0 为起点
	Label string  `yaml:"label"` // 节点名称，如 "Permulaan"
	X     float64 `yaml:"x"`     // 屏幕横向百分比 (0-100)
	Y     float64 `yaml:"y"`     // 屏幕纵向百分比 (0-100，可超出表示屏幕外)
}

// LevelTable 固定关卡表
// 决定地图节点的顺序、名称和位置
type LevelTable struct {
	Title  string      `yaml:"title"`  // 地图标题
	Levels []LevelNode `yaml:"levels"` // 按 id 升序排列的节点
}

// LoadLevelTable 从 YAML 文件加载关卡表
//
// 参数：
//   - path: 文件路径
//
// 返回：
//   - *LevelTable: 解析并校验后的关卡表
//   - error: 读取、解析或校验失败
func LoadLevelTable(path string) (*LevelTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level table %s: %w", path, err)
	}
	return ParseLevelTable(data)
}

// ParseLevelTable 解析关卡表 YAML 数据
func ParseLevelTable(data []byte) (*LevelTable, error) {
	var table LevelTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse level table YAML: %w", err)
	}

	if table.Title == "" {
		table.Title = "Perjalanan Kita"
	}

	if err := validateLevelTable(&table); err != nil {
		return nil, fmt.Errorf("invalid level table: %w", err)
	}
	return &table, nil
}

// validateLevelTable 校验关卡表
// 规则：id 从 0 开始连续递增，且覆盖 1..LastLevel
func validateLevelTable(table *LevelTable) error {
	if len(table.Levels) == 0 {
		return fmt.Errorf("at least one level is required")
	}
	for i, node := range table.Levels {
		if node.ID != i {
			return fmt.Errorf("level %d: expected id %d, got %d", i, i, node.ID)
		}
		if node.ID != MapLevel && node.Label == "" {
			return fmt.Errorf("level %d: label is required", node.ID)
		}
	}
	if last := table.Levels[len(table.Levels)-1].ID; last < LastLevel {
		return fmt.Errorf("level table ends at %d, need at least %d", last, LastLevel)
	}
	return nil
}

// Playable 返回可在地图上点击的节点（排除起点 0）
func (t *LevelTable) Playable() []LevelNode {
	if len(t.Levels) <= 1 {
		return nil
	}
	return t.Levels[1:]
}

// IDs 返回所有关卡编号（包含起点 0）
func (t *LevelTable) IDs() []int {
	ids := make([]int, len(t.Levels))
	for i, node := range t.Levels {
		ids[i] = node.ID
	}
	return ids
}

// Node 按编号查找节点
func (t *LevelTable) Node(id int) (LevelNode, bool) {
	if id < 0 || id >= len(t.Levels) {
		return LevelNode{}, false
	}
	return t.Levels[id], true
}
