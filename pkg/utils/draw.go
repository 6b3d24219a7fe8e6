package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Rect 屏幕上的矩形区域（像素）
type Rect struct {
	X, Y, W, H float64
}

// Contains 点是否落在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Center 矩形中心
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset 四边各内缩 d
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// CenteredRect 以 (cx, cy) 为中心、w×h 大小的矩形
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// PercentRect 把游戏区域内的百分比坐标换算为像素矩形
//
// 参数：
//   - area: 游戏区域
//   - px, py, pw, ph: 百分比坐标和尺寸（0-100）
func PercentRect(area Rect, px, py, pw, ph float64) Rect {
	return Rect{
		X: area.X + area.W*px/100,
		Y: area.Y + area.H*py/100,
		W: area.W * pw / 100,
		H: area.H * ph / 100,
	}
}

// FillRect 填充矩形
func FillRect(dst *ebiten.Image, r Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, true)
}

// StrokeRect 描边矩形
func StrokeRect(dst *ebiten.Image, r Rect, width float64, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), clr, true)
}

// FillRoundRect 填充圆角矩形（十字形两个矩形 + 四个角的圆）
func FillRoundRect(dst *ebiten.Image, r Rect, radius float64, clr color.Color) {
	if radius*2 > r.W {
		radius = r.W / 2
	}
	if radius*2 > r.H {
		radius = r.H / 2
	}
	if radius <= 0 {
		FillRect(dst, r, clr)
		return
	}
	FillRect(dst, Rect{X: r.X + radius, Y: r.Y, W: r.W - 2*radius, H: r.H}, clr)
	FillRect(dst, Rect{X: r.X, Y: r.Y + radius, W: r.W, H: r.H - 2*radius}, clr)
	for _, c := range [][2]float64{
		{r.X + radius, r.Y + radius},
		{r.X + r.W - radius, r.Y + radius},
		{r.X + radius, r.Y + r.H - radius},
		{r.X + r.W - radius, r.Y + r.H - radius},
	} {
		FillCircle(dst, c[0], c[1], radius, clr)
	}
}

// FillCircle 填充圆
func FillCircle(dst *ebiten.Image, cx, cy, radius float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(radius), clr, true)
}

// StrokeCircle 描边圆
func StrokeCircle(dst *ebiten.Image, cx, cy, radius, width float64, clr color.Color) {
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(radius), float32(width), clr, true)
}

// StrokeLine 画线段
func StrokeLine(dst *ebiten.Image, x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// FillHeart 画一颗以 (cx, cy) 为中心、宽约 2*size 的爱心
func FillHeart(dst *ebiten.Image, cx, cy, size float64, clr color.Color) {
	r := size / 2
	FillCircle(dst, cx-r, cy-r/2, r, clr)
	FillCircle(dst, cx+r, cy-r/2, r, clr)
	FillTriangle(dst, cx-size, cy-r/4, cx+size, cy-r/4, cx, cy+size, clr)
}

// FillTriangle 填充三角形
func FillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float64, clr color.Color) {
	r, g, b, a := clr.RGBA()
	vs := []ebiten.Vertex{
		{DstX: float32(x0), DstY: float32(y0)},
		{DstX: float32(x1), DstY: float32(y1)},
		{DstX: float32(x2), DstY: float32(y2)},
	}
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vs, []uint16{0, 1, 2}, whitePixel(), &ebiten.DrawTrianglesOptions{})
}

var whiteImage *ebiten.Image

// whitePixel 3x3 白色图，取中心像素作为纯色纹理
func whitePixel() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
	}
	return whiteImage
}

// Dim 全屏半透明遮罩（弹窗背景）
func Dim(dst *ebiten.Image, alpha uint8) {
	b := dst.Bounds()
	FillRect(dst, Rect{W: float64(b.Dx()), H: float64(b.Dy())}, color.RGBA{A: alpha})
}
