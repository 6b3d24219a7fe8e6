package config

import (
	"image/color"
	"path/filepath"
	"testing"
)

func TestLoadFlowerList_ProjectData(t *testing.T) {
	list, err := LoadFlowerList(filepath.Join("..", "..", FlowerListPath))
	if err != nil {
		t.Fatalf("LoadFlowerList() failed: %v", err)
	}
	if len(list.Flowers) != 8 {
		t.Fatalf("Expected 8 flowers, got %d", len(list.Flowers))
	}
	rose, ok := list.Find(1)
	if !ok || rose.Name != "Red Rose" {
		t.Errorf("Find(1) = %+v, %v", rose, ok)
	}
	if _, ok := list.Find(99); ok {
		t.Error("Find(99) should fail")
	}
}

func TestParseFlowerList_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "flowers: []\n"},
		{"duplicate id", "flowers:\n  - id: 1\n    color: '#000000'\n  - id: 1\n    color: '#000000'\n"},
		{"bad color", "flowers:\n  - id: 1\n    color: 'red'\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFlowerList([]byte(tt.yaml)); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#e0143c", color.RGBA{R: 0xe0, G: 0x14, B: 0x3c, A: 255}, false},
		{"ffffff", color.RGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"#fff", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
