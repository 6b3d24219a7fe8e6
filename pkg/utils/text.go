package utils

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts 场景使用的两套字体（常规 / 粗体），按字号缓存字体面
type Fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	cache   map[string]*text.GoTextFace
}

// LoadFonts 加载内置的 Go 字体
//
// 返回：
//   - *Fonts: 字体集
//   - error: 字体数据解析失败时返回错误
func LoadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}
	return &Fonts{
		regular: regular,
		bold:    bold,
		cache:   make(map[string]*text.GoTextFace),
	}, nil
}

// Regular 指定字号的常规字体，字体集为 nil 时返回 nil（绘制函数会跳过）
func (f *Fonts) Regular(size float64) *text.GoTextFace {
	if f == nil {
		return nil
	}
	return f.face("r", f.regular, size)
}

// Bold 指定字号的粗体
func (f *Fonts) Bold(size float64) *text.GoTextFace {
	if f == nil {
		return nil
	}
	return f.face("b", f.bold, size)
}

func (f *Fonts) face(kind string, src *text.GoTextFaceSource, size float64) *text.GoTextFace {
	key := fmt.Sprintf("%s:%.1f", kind, size)
	if face, ok := f.cache[key]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source:    src,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	f.cache[key] = face
	return face
}

// DrawText 以 (x, y) 为左上角绘制单行文字
func DrawText(dst *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	if face == nil || str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}

// DrawCentered 以 (cx, cy) 为中心绘制文字，支持多行
func DrawCentered(dst *ebiten.Image, str string, face *text.GoTextFace, cx, cy float64, clr color.Color) {
	if face == nil || str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.LayoutOptions.LineSpacing = face.Size * 1.3
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}

// DrawWrapped 在 maxWidth 宽度内自动换行绘制，返回占用的高度
func DrawWrapped(dst *ebiten.Image, str string, face *text.GoTextFace, x, y, maxWidth float64, clr color.Color) float64 {
	if face == nil {
		return 0
	}
	lineHeight := face.Size * 1.3
	lines := 0
	for _, para := range strings.Split(str, "\n") {
		for _, line := range WrapText(para, face, maxWidth) {
			DrawText(dst, line, face, x, y+float64(lines)*lineHeight, clr)
			lines++
		}
	}
	return float64(lines) * lineHeight
}

// WrapText 将文本按指定宽度自动换行
//
// 优先在空格处断行；单个单词超过最大宽度时按字符强制断行。
//
// 参数:
//   - str: 要换行的文本（单段，不含换行符）
//   - face: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 每个元素为一行
func WrapText(str string, face *text.GoTextFace, maxWidth float64) []string {
	if str == "" || face == nil || maxWidth <= 0 {
		return []string{str}
	}
	if MeasureText(str, face) <= maxWidth {
		return []string{str}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(str) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if MeasureText(candidate, face) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = ""
		// 单词本身太长：按字符拆开
		for MeasureText(word, face) > maxWidth {
			cut := fitPrefix(word, face, maxWidth)
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		lines = []string{str}
	}
	return lines
}

// fitPrefix 能放进 maxWidth 的最长前缀的字节长度（至少一个字符）
func fitPrefix(word string, face *text.GoTextFace, maxWidth float64) int {
	end := 0
	for end < len(word) {
		_, size := utf8.DecodeRuneInString(word[end:])
		if end > 0 && MeasureText(word[:end+size], face) > maxWidth {
			break
		}
		end += size
	}
	return end
}

// MeasureText 测量单行文本宽度
func MeasureText(str string, face *text.GoTextFace) float64 {
	if str == "" || face == nil {
		return 0
	}
	w, _ := text.Measure(str, face, 0)
	return w
}

// StripEmoji 去掉内置字体无法显示的表情符号，并合并由此产生的多余空格
func StripEmoji(str string) string {
	var b strings.Builder
	for _, r := range str {
		if isEmoji(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.FieldsFunc(b.String(), func(r rune) bool { return r == ' ' }), " ")
}

func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r == 0xFE0F || r == 0x200D:
		return true
	}
	return false
}
