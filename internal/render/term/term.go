// Package term is a terminal backend for the render interfaces, built on
// tcell. Each character cell stands for a block of logical pixels; walls are
// painted as cell backgrounds.
package term

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/render"
)

// TermRenderer implements the Renderer interface on a tcell screen.
type TermRenderer struct{}

// NewRenderer creates a new terminal renderer.
func NewRenderer() render.Renderer {
	return &TermRenderer{}
}

// FillRect paints the background of every cell the rectangle touches.
func (r *TermRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	img := dst.(*TermImage)
	style := tcell.StyleDefault.Background(tcellColor(clr))

	x0, y0 := img.cell(float64(x), float64(y))
	x1, y1 := img.cellCeil(float64(x+width), float64(y+height))
	for cy := max(y0, 0); cy < min(y1, img.rows); cy++ {
		for cx := max(x0, 0); cx < min(x1, img.cols); cx++ {
			img.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

// StrokeLine marks the cells along the line, keeping their background.
func (r *TermRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	img := dst.(*TermImage)
	cx0, cy0 := img.cell(float64(x0), float64(y0))
	cx1, cy1 := img.cell(float64(x1), float64(y1))

	steps := max(abs(cx1-cx0), abs(cy1-cy0))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		cx := cx0 + int(math.Round(t*float64(cx1-cx0)))
		cy := cy0 + int(math.Round(t*float64(cy1-cy0)))
		img.setRune(cx, cy, '·', clr)
	}
}

// FillCircle marks the cell under the circle's center.
func (r *TermRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	img := dst.(*TermImage)
	cx, cy := img.cell(float64(x), float64(y))
	img.setRune(cx, cy, '@', clr)
}

// DrawText writes text starting at the cell under (x, y).
func (r *TermRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color) {
	img := dst.(*TermImage)
	cx, cy := img.cell(float64(x), float64(y))
	for _, ch := range str {
		img.setRune(cx, cy, ch, clr)
		cx++
	}
}

// TermImage is a logical surface mapped onto the terminal's cells.
type TermImage struct {
	screen        tcell.Screen
	width, height int // Logical size
	cols, rows    int
}

// NewImage maps a logical width x height surface onto the whole screen.
func NewImage(screen tcell.Screen, width, height int) *TermImage {
	cols, rows := screen.Size()
	return &TermImage{screen: screen, width: width, height: height, cols: cols, rows: rows}
}

// Bounds returns the logical bounds of the image.
func (i *TermImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.width, i.height)
}

// Size returns the logical width and height.
func (i *TermImage) Size() (width, height int) {
	return i.width, i.height
}

// Fill paints every cell's background.
func (i *TermImage) Fill(clr color.Color) {
	i.screen.Fill(' ', tcell.StyleDefault.Background(tcellColor(clr)))
}

// cell returns the cell containing logical point (x, y).
func (i *TermImage) cell(x, y float64) (int, int) {
	return int(math.Floor(x * float64(i.cols) / float64(i.width))),
		int(math.Floor(y * float64(i.rows) / float64(i.height)))
}

// cellCeil returns the first cell boundary at or after logical point (x, y).
func (i *TermImage) cellCeil(x, y float64) (int, int) {
	return int(math.Ceil(x * float64(i.cols) / float64(i.width))),
		int(math.Ceil(y * float64(i.rows) / float64(i.height)))
}

func (i *TermImage) setRune(cx, cy int, ch rune, clr color.Color) {
	if cx < 0 || cy < 0 || cx >= i.cols || cy >= i.rows {
		return
	}
	_, _, style, _ := i.screen.GetContent(cx, cy)
	i.screen.SetContent(cx, cy, ch, nil, style.Foreground(tcellColor(clr)))
}

func tcellColor(clr color.Color) tcell.Color {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
