package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hbd-sarah/journey/pkg/utils"
)

// frameInput 一帧内场景关心的输入
type frameInput struct {
	Pointer utils.Pointer
	Escape  bool
	Jump    bool    // 空格 / 上箭头
	Axis    float64 // 左右方向键：-1 左，1 右
}

// readInput 读取本帧输入，测试中替换为固定输入
var readInput = readFrameInput

func readFrameInput() frameInput {
	in := frameInput{
		Pointer: utils.ReadPointer(),
		Escape:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Jump:    utils.IsAnyKeyJustPressed(ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW),
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Axis--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Axis++
	}
	return in
}
