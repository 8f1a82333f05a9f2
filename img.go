package pixelquiz

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"go.afab.re/pixelquiz/monochrome"
)

// AutoThreshold picks the threshold with Otsu's method.
const AutoThreshold = -1

type Options struct {
	// Size is the number of cells along each side of the grid.
	Size int
	// Threshold is the luminance (0-255) below which a cell is foreground,
	// or AutoThreshold.
	Threshold int
}

func DefaultOptions() Options {
	return Options{
		Size:      30,
		Threshold: 128,
	}
}

// Result of binarizing an image.
type Result struct {
	Grid PixelGrid
	// Preview is the grid scaled back up to the bounds of the source image.
	Preview *monochrome.Image
	// Samples is the resampled luminance the grid was thresholded from.
	Samples *image.Gray
	// Threshold actually used, resolved if AutoThreshold was requested.
	Threshold int
}

// Binarize reduces an image to an opts.Size square grid of foreground / background cells.
// The source is resampled with a bicubic kernel, so each cell is a weighted average
// of the area it covers rather than a single sampled pixel.
func Binarize(img image.Image, opts Options) (*Result, error) {
	if opts.Size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, opts.Size)
	}
	if opts.Threshold != AutoThreshold && (opts.Threshold < 0 || opts.Threshold > 255) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreshold, opts.Threshold)
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	samples := resample(monochrome.Gray(img), opts.Size)

	threshold := opts.Threshold
	if threshold == AutoThreshold {
		// Otsu puts its threshold in the dark class, ours is exclusive.
		threshold = int(monochrome.OtsuThreshold(samples)) + 1
	}

	small := monochrome.Threshold(samples, threshold)

	return &Result{
		Grid:      gridFrom(small),
		Preview:   upscale(small, img.Bounds()),
		Samples:   samples,
		Threshold: threshold,
	}, nil
}

// Preview scales a grid up to r with hard edged blocks.
func Preview(grid PixelGrid, r image.Rectangle) *monochrome.Image {
	return upscale(grid.Image(), r)
}

func resample(gray *image.Gray, size int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), gray, gray.Bounds(), draw.Src, nil)
	return dst
}

func upscale(small *monochrome.Image, r image.Rectangle) *monochrome.Image {
	dst := monochrome.New(r)
	if small.Bounds().Empty() {
		return dst
	}
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), small, small.Bounds(), draw.Src, nil)
	return dst
}
