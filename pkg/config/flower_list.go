package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Flower 第 2 关的一种花
type Flower struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Desc  string `yaml:"desc"`
	Color string `yaml:"color"` // 十六进制颜色，如 "#e0143c"
}

// FlowerList 花束列表
type FlowerList struct {
	Flowers []Flower `yaml:"flowers"`
}

// LoadFlowerList 从 YAML 文件加载花束列表
func LoadFlowerList(path string) (*FlowerList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read flower list %s: %w", path, err)
	}
	return ParseFlowerList(data)
}

// ParseFlowerList 解析花束列表 YAML 数据
func ParseFlowerList(data []byte) (*FlowerList, error) {
	var list FlowerList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse flower list YAML: %w", err)
	}
	if len(list.Flowers) == 0 {
		return nil, fmt.Errorf("invalid flower list: at least one flower is required")
	}
	seen := make(map[int]bool, len(list.Flowers))
	for _, f := range list.Flowers {
		if seen[f.ID] {
			return nil, fmt.Errorf("invalid flower list: duplicate id %d", f.ID)
		}
		seen[f.ID] = true
		if _, err := ParseHexColor(f.Color); err != nil {
			return nil, fmt.Errorf("invalid flower list: flower %d: %w", f.ID, err)
		}
	}
	return &list, nil
}

// Find 按 id 查找花
func (l *FlowerList) Find(id int) (Flower, bool) {
	for _, f := range l.Flowers {
		if f.ID == id {
			return f, true
		}
	}
	return Flower{}, false
}

// ParseHexColor 解析 "#rrggbb" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
