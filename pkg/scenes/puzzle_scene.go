package scenes

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/game"
	"github.com/hbd-sarah/journey/pkg/minigame"
	"github.com/hbd-sarah/journey/pkg/utils"
)

// 拼图布局
const (
	puzzleCell     = 120.0
	puzzleGridX    = 80.0
	puzzleGridY    = 120.0
	puzzlePoolCell = 90.0
	puzzlePoolGap  = 10.0
	puzzlePoolX    = 470.0
	puzzlePoolY    = 120.0
	// 位移小于该值视为点击
	puzzleTapSlop = 6.0
)

var (
	puzzleSlotFill = color.RGBA{R: 252, G: 231, B: 243, A: 255}
	puzzleTop      = color.RGBA{R: 244, G: 114, B: 182, A: 255}
	puzzleBottom   = color.RGBA{R: 124, G: 58, B: 237, A: 255}
)

// PuzzleScene 第 5 关：拼图
type PuzzleScene struct {
	deps   *Deps
	puzzle *minigame.Puzzle
	ui     *uiLayer
	drag   *utils.DragTracker

	// 正在拖拽的拼图块和来源格子（来自候选池时为 EmptySlot）
	dragPiece int
	dragFrom  int

	picture *ebiten.Image
}

// NewPuzzleScene 创建拼图场景
func NewPuzzleScene(deps *Deps) *PuzzleScene {
	s := &PuzzleScene{
		deps:      deps,
		puzzle:    minigame.NewPuzzle(deps.Store, nil),
		ui:        newUILayer(deps.Fonts),
		drag:      utils.NewDragTracker(),
		dragPiece: minigame.EmptySlot,
		dragFrom:  minigame.EmptySlot,
	}
	s.puzzle.OnWon(func() {
		s.deps.play(game.SoundWin)
	})
	return s
}

func slotRect(i int) utils.Rect {
	n := config.PuzzleGridSize
	return utils.Rect{
		X: puzzleGridX + float64(i%n)*puzzleCell,
		Y: puzzleGridY + float64(i/n)*puzzleCell,
		W: puzzleCell,
		H: puzzleCell,
	}
}

func poolRect(i int) utils.Rect {
	n := config.PuzzleGridSize
	return utils.Rect{
		X: puzzlePoolX + float64(i%n)*(puzzlePoolCell+puzzlePoolGap),
		Y: puzzlePoolY + float64(i/n)*(puzzlePoolCell+puzzlePoolGap),
		W: puzzlePoolCell,
		H: puzzlePoolCell,
	}
}

// slotAt 指针所在的格子，不在网格内返回 -1
func slotAt(x, y float64) int {
	for i := 0; i < config.PuzzlePieceCount; i++ {
		if slotRect(i).Contains(x, y) {
			return i
		}
	}
	return -1
}

// Update 处理拖放
func (s *PuzzleScene) Update(deltaTime float64) {
	if s.puzzle.Won() {
		s.ui.setMode("won", func() {
			s.ui.centeredButton(screenRect.W/2, storyButtonY(), 260, "Lanjut ke Penutup", components.ButtonPrimary, func() {
				s.puzzle.Continue()
			})
		})
	} else {
		s.ui.setMode("playing", nil)
	}

	in, free := s.ui.update(deltaTime)
	if !free && !s.drag.Dragging() {
		return
	}
	s.drag.Update(in.Pointer)

	switch {
	case s.drag.JustStarted():
		s.pick(in.Pointer.X, in.Pointer.Y)
	case s.drag.JustEnded():
		s.drop()
	}
}

// pick 按下时选中候选池或格子里的拼图块
func (s *PuzzleScene) pick(x, y float64) {
	s.dragPiece, s.dragFrom = minigame.EmptySlot, minigame.EmptySlot
	for i, piece := range s.puzzle.Pool() {
		if poolRect(i).Contains(x, y) {
			s.dragPiece = piece
			return
		}
	}
	if slot := slotAt(x, y); slot >= 0 {
		if piece := s.puzzle.Slots()[slot]; piece != minigame.EmptySlot {
			s.dragPiece, s.dragFrom = piece, slot
		}
	}
}

// drop 松开时放进格子；点击格子里的拼图块或拖出网格则放回候选池
func (s *PuzzleScene) drop() {
	piece, from := s.dragPiece, s.dragFrom
	s.dragPiece, s.dragFrom = minigame.EmptySlot, minigame.EmptySlot
	if piece == minigame.EmptySlot {
		return
	}

	info := s.drag.Info()
	dx, dy := s.drag.Distance()
	tap := math.Hypot(dx, dy) < puzzleTapSlop

	target := slotAt(info.CurrentX, info.CurrentY)
	switch {
	case from != minigame.EmptySlot && (tap || target < 0):
		s.puzzle.Return(from)
	case target >= 0:
		if s.puzzle.Place(piece, target) {
			s.deps.play(game.SoundNice)
		}
	}
}

// Draw 绘制网格、候选池和拖拽中的拼图块
func (s *PuzzleScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)
	fonts := s.deps.Fonts
	drawTitle(screen, fonts, "Puzzle Hati")
	utils.DrawCentered(screen, "Susun kembali kenangan kita...", fonts.Regular(config.SmallFontSize), screenRect.W/2, 78, config.ColorMuted)

	for i, piece := range s.puzzle.Slots() {
		r := slotRect(i)
		utils.FillRect(screen, r.Inset(1), puzzleSlotFill)
		if piece != minigame.EmptySlot && !(s.drag.Dragging() && s.dragFrom == i) {
			s.drawPiece(screen, piece, r)
		}
		utils.StrokeRect(screen, r, 1, config.ColorPrimary)
	}

	pool := s.puzzle.Pool()
	for i, piece := range pool {
		if s.drag.Dragging() && s.dragFrom == minigame.EmptySlot && s.dragPiece == piece {
			continue
		}
		s.drawPiece(screen, piece, poolRect(i))
	}
	if len(pool) == 0 && !s.puzzle.Won() {
		utils.DrawWrapped(screen, "Semua kepingan sudah ditaruh...\n(Klik kepingan di grid untuk mengembalikan ke sini jika salah)",
			fonts.Regular(config.SmallFontSize), puzzlePoolX, puzzlePoolY, 3*puzzlePoolCell+2*puzzlePoolGap, config.ColorMuted)
	}

	if s.drag.Dragging() && s.dragPiece != minigame.EmptySlot {
		info := s.drag.Info()
		s.drawPiece(screen, s.dragPiece, utils.CenteredRect(info.CurrentX, info.CurrentY, puzzlePoolCell, puzzlePoolCell))
	}

	if s.puzzle.Won() {
		drawStoryCard(screen, fonts, "Sempurna, Sayang!", puzzleStory)
	}
	s.ui.draw(screen)
}

// drawPiece 把完整图片的第 piece 块缩放绘制到 r
func (s *PuzzleScene) drawPiece(screen *ebiten.Image, piece int, r utils.Rect) {
	pic := s.pictureImage()
	n := config.PuzzleGridSize
	size := int(puzzleCell)
	sx, sy := (piece%n)*size, (piece/n)*size
	sub := pic.SubImage(image.Rect(sx, sy, sx+size, sy+size)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/puzzleCell, r.H/puzzleCell)
	op.GeoM.Translate(r.X, r.Y)
	screen.DrawImage(sub, op)
}

// pictureImage 懒加载拼图图片：渐变背景上的一颗心
func (s *PuzzleScene) pictureImage() *ebiten.Image {
	if s.picture != nil {
		return s.picture
	}
	size := puzzleCell * config.PuzzleGridSize
	img := ebiten.NewImage(int(size), int(size))
	for y := 0; y < int(size); y += 4 {
		t := float64(y) / size
		c := color.RGBA{
			R: uint8(utils.Lerp(float64(puzzleTop.R), float64(puzzleBottom.R), t)),
			G: uint8(utils.Lerp(float64(puzzleTop.G), float64(puzzleBottom.G), t)),
			B: uint8(utils.Lerp(float64(puzzleTop.B), float64(puzzleBottom.B), t)),
			A: 255,
		}
		utils.FillRect(img, utils.Rect{Y: float64(y), W: size, H: 4}, c)
	}
	utils.FillHeart(img, size/2, size/2, size*0.36, color.RGBA{R: 255, G: 241, B: 242, A: 255})
	utils.FillHeart(img, size/2, size/2, size*0.28, config.ColorDanger)
	s.picture = img
	return img
}

// Teardown 屏蔽后续操作
func (s *PuzzleScene) Teardown() {
	s.puzzle.Teardown()
	s.ui.teardown()
	if s.picture != nil {
		s.picture.Deallocate()
	}
}
