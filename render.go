package pixelquiz

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type RenderOptions struct {
	// CellSize is the side of a cell, in pixels.
	CellSize int
	DPI      int
	// Font for the identifiers, Go Regular if nil.
	Font *opentype.Font
	// Key, if set, shades its foreground cells: an answer sheet.
	Key PixelGrid
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		CellSize: 32,
		DPI:      72,
	}
}

var keyShade = color.Gray{Y: 0xC0}

// Render draws a puzzle as a printable sheet, one square per cell with its identifier in it.
func Render(puzzle PuzzleGrid, opts RenderOptions) (*image.Gray, error) {
	var cols int
	labels := make(map[string]struct{})
	for _, row := range puzzle {
		cols = max(cols, len(row))
		for _, id := range row {
			labels[id] = struct{}{}
		}
	}
	if len(puzzle) == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: empty puzzle", ErrNotBuildable)
	}
	if opts.CellSize < 1 {
		return nil, fmt.Errorf("%w: cell size %d", ErrInvalidSize, opts.CellSize)
	}

	ft := opts.Font
	if ft == nil {
		var err error
		if ft, err = opentype.Parse(goregular.TTF); err != nil {
			return nil, err
		}
	}

	cell := opts.CellSize
	margin := max(1, cell/8)
	face, err := face(px(cell-2*margin), labels, ft, opts.DPI)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	// One extra pixel for the closing grid lines.
	dst := image.NewGray(image.Rect(0, 0, cols*cell+1, len(puzzle)*cell+1))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: face,
	}
	m := face.Metrics()

	for r, row := range puzzle {
		for c, id := range row {
			box := image.Rect(c*cell, r*cell, (c+1)*cell, (r+1)*cell)

			if r < len(opts.Key) && c < len(opts.Key[r]) && opts.Key[r][c] {
				draw.Draw(dst, box, &image.Uniform{keyShade}, image.Point{}, draw.Src)
			}
			outline(dst, box)

			// Center the line box, not the glyphs, so every label sits on the same baseline.
			d.Dot = fixed.Point26_6{
				X: fixed.I(box.Min.X) + (fixed.I(cell)-d.MeasureString(id))/2,
				Y: fixed.I(box.Min.Y) + (fixed.I(cell)-m.Ascent-m.Descent)/2 + m.Ascent,
			}
			d.DrawString(id)
		}
	}

	return dst, nil
}

func outline(dst *image.Gray, r image.Rectangle) {
	for x := r.Min.X; x <= r.Max.X; x++ {
		dst.SetGray(x, r.Min.Y, color.Gray{})
		dst.SetGray(x, r.Max.Y, color.Gray{})
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		dst.SetGray(r.Min.X, y, color.Gray{})
		dst.SetGray(r.Max.X, y, color.Gray{})
	}
}

type px int

// Find the biggest font where a line fits in size, and so does the widest label.
func face(size px, labels map[string]struct{}, ft *opentype.Font, dpi int) (font.Face, error) {
	if dpi <= 0 {
		dpi = 72
	}

	var best font.Face

	for i := float64(1); ; i++ {
		face, err := opentype.NewFace(ft, &opentype.FaceOptions{
			Size:    i,
			DPI:     float64(dpi),
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, err
		}

		if face.Metrics().Height.Ceil() > int(size) || widest(face, labels).Ceil() > int(size) {
			face.Close()
			if best == nil {
				return nil, fmt.Errorf("%dpx is too small for text", size)
			}
			return best, nil
		}

		if best != nil {
			best.Close()
		}
		best = face
	}
}

func widest(face font.Face, labels map[string]struct{}) fixed.Int26_6 {
	var w fixed.Int26_6
	for l := range labels {
		w = max(w, font.MeasureString(face, l))
	}
	return w
}
