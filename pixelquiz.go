// Package pixelquiz turns a picture into a sheet of OX quiz numbers.
//
// An image is reduced to a small square grid of dark and light cells, then
// every cell is filled with the number of a quiz: dark cells get a quiz whose
// answer is O, light cells one whose answer is X. Colouring the cells answered
// O reveals the picture.
package pixelquiz

import (
	"errors"
	"image"
	"strings"

	"go.afab.re/pixelquiz/monochrome"
)

var (
	// ErrInvalidSize is returned for a grid size below 1.
	ErrInvalidSize = errors.New("pixelquiz: grid size must be at least 1")
	// ErrInvalidThreshold is returned for a threshold outside [0, 255] that isn't AutoThreshold.
	ErrInvalidThreshold = errors.New("pixelquiz: threshold out of range")
	// ErrEmptyImage is returned when the source image has no pixels.
	ErrEmptyImage = errors.New("pixelquiz: empty image")
	// ErrNotBuildable is returned when a puzzle can't be built from the given grid and pools.
	ErrNotBuildable = errors.New("pixelquiz: puzzle not buildable")
	// ErrInputMissing is returned when a step runs before the steps it depends on.
	ErrInputMissing = errors.New("pixelquiz: input missing")
)

// PixelGrid is a binarized picture indexed [row][column].
// True cells are foreground (darker than the threshold).
type PixelGrid [][]bool

// Rows returns the number of rows.
func (g PixelGrid) Rows() int {
	return len(g)
}

// Cols returns the number of columns, taken from the first row.
func (g PixelGrid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Foreground counts the foreground cells.
func (g PixelGrid) Foreground() int {
	var n int
	for _, row := range g {
		for _, fg := range row {
			if fg {
				n++
			}
		}
	}
	return n
}

// Image draws the grid one pixel per cell.
func (g PixelGrid) Image() *monochrome.Image {
	mono := monochrome.New(image.Rect(0, 0, g.Cols(), g.Rows()))
	for y, row := range g {
		for x, fg := range row {
			mono.SetBlack(x, y, fg)
		}
	}
	return mono
}

// String renders the grid as text, '#' for foreground and '.' for background.
func (g PixelGrid) String() string {
	var b strings.Builder
	for _, row := range g {
		for _, fg := range row {
			if fg {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func gridFrom(mono *monochrome.Image) PixelGrid {
	r := mono.Bounds()

	grid := make(PixelGrid, r.Dy())
	for y := range grid {
		grid[y] = make([]bool, r.Dx())
		for x := range grid[y] {
			grid[y][x] = mono.BlackAt(r.Min.X+x, r.Min.Y+y)
		}
	}

	return grid
}
