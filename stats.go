package pixelquiz

import (
	"gonum.org/v1/gonum/stat"
)

// Stats describes a binarized image, to help picking a threshold.
type Stats struct {
	Cells      int
	Foreground int
	// Coverage is the fraction of foreground cells.
	Coverage float64
	// Luminance of the resampled cells, before thresholding.
	Mean   float64
	StdDev float64
}

func Summarize(res *Result) Stats {
	st := Stats{
		Cells:      res.Grid.Rows() * res.Grid.Cols(),
		Foreground: res.Grid.Foreground(),
	}
	if st.Cells > 0 {
		st.Coverage = float64(st.Foreground) / float64(st.Cells)
	}

	if res.Samples == nil {
		return st
	}

	b := res.Samples.Bounds()
	lum := make([]float64, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			lum = append(lum, float64(res.Samples.GrayAt(x, y).Y))
		}
	}

	switch len(lum) {
	case 0:
	case 1:
		// The sample standard deviation of a single value is undefined.
		st.Mean = lum[0]
	default:
		st.Mean, st.StdDev = stat.MeanStdDev(lum, nil)
	}

	return st
}
