package monochrome

import (
	"image"
	"image/color"
	"image/draw"
)

func Model() color.Palette {
	return color.Palette{color.White, color.Black}
}

// Image is an image with black (foreground) data on a white background.
type Image struct {
	// Index 0 is the background, index 1 the foreground.
	// We could use a single bit per pixel, but puzzles are small.
	p *image.Paletted
}

// Make sure we implement PalettedImage - some encoders like png,
// handle PalettedImages with two colors and encode them as 1 bit images.
var (
	_ image.PalettedImage = &Image{}
	_ draw.Image          = &Image{}
)

func New(r image.Rectangle) *Image {
	return &Image{
		p: image.NewPaletted(r, Model()),
	}
}

func (m *Image) ColorModel() color.Model {
	return m.p.ColorModel()
}

func (m *Image) Bounds() image.Rectangle {
	return m.p.Bounds()
}

func (m *Image) At(x, y int) color.Color {
	return m.p.At(x, y)
}

// Set snaps c to the nearest of the two palette colors.
func (m *Image) Set(x, y int, c color.Color) {
	m.p.Set(x, y, c)
}

func (m *Image) ColorIndexAt(x, y int) uint8 {
	return m.p.ColorIndexAt(x, y)
}

func (m *Image) BlackAt(x, y int) bool {
	return m.p.ColorIndexAt(x, y) == 1
}

func (m *Image) SetBlack(x, y int, isBlack bool) {
	if isBlack {
		m.p.SetColorIndex(x, y, 1)
	} else {
		m.p.SetColorIndex(x, y, 0)
	}
}

// WithPalette returns a view of m drawn with fg for black pixels and bg for white ones.
// The pixel data is shared with m.
func (m *Image) WithPalette(fg, bg color.Color) *Image {
	return &Image{
		p: &image.Paletted{
			Pix:     m.p.Pix,
			Stride:  m.p.Stride,
			Rect:    m.p.Rect,
			Palette: color.Palette{bg, fg},
		},
	}
}
