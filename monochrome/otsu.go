package monochrome

import (
	"image"
	"image/draw"

	"gonum.org/v1/gonum/floats"
)

// Gray converts an image to 8 bit luminance.
func Gray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}

	gray := image.NewGray(img.Bounds())
	draw.Draw(gray, gray.Bounds(), img, img.Bounds().Min, draw.Src)
	return gray
}

// Threshold converts a grayscale image to monochrome.
// Pixels strictly darker than threshold are black, everything else is white.
func Threshold(gray *image.Gray, threshold int) *Image {
	mono := New(gray.Bounds())

	for x := gray.Bounds().Min.X; x < gray.Bounds().Max.X; x++ {
		for y := gray.Bounds().Min.Y; y < gray.Bounds().Max.Y; y++ {
			mono.SetBlack(x, y, int(gray.GrayAt(x, y).Y) < threshold)
		}
	}

	return mono
}

// OtsuThreshold returns the intensity that maximises the between-class
// variance of the image histogram. Pixels <= the returned value are the dark class.
// An image with a single intensity has no split and gets 0.
// https://en.wikipedia.org/wiki/Otsu%27s_method
func OtsuThreshold(gray *image.Gray) uint8 {
	hist := histogram(gray)

	total := floats.Sum(hist[:])
	sum := floats.Dot(levels[:], hist[:])

	var (
		best    uint8
		bestVar float64
		dark    float64
		darkSum float64
	)
	for v := 0; v < len(hist)-1; v++ {
		dark += hist[v]
		darkSum += levels[v] * hist[v]

		light := total - dark
		if dark == 0 || light == 0 {
			continue
		}

		diff := darkSum/dark - (sum-darkSum)/light
		if between := dark * light * diff * diff; between > bestVar {
			best, bestVar = uint8(v), between
		}
	}

	return best
}

// levels holds every 8 bit intensity, as weights for the histogram.
var levels = func() (l [256]float64) {
	for i := range l {
		l[i] = float64(i)
	}
	return l
}()

func histogram(gray *image.Gray) [256]float64 {
	var hist [256]float64

	b := gray.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := gray.Pix[gray.PixOffset(b.Min.X, y):][:b.Dx()]
		for _, v := range row {
			hist[v]++
		}
	}

	return hist
}
