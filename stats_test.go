package pixelquiz_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.afab.re/pixelquiz"
)

func TestSummarize(t *testing.T) {
	res, err := pixelquiz.Binarize(halves(40, 40), pixelquiz.Options{Size: 4, Threshold: 128})
	require.NoError(t, err)

	st := pixelquiz.Summarize(res)
	assert.Equal(t, 16, st.Cells)
	assert.Equal(t, 8, st.Foreground)
	assert.InDelta(t, 0.5, st.Coverage, 1e-9)
	assert.InDelta(t, 127.5, st.Mean, 10)
	assert.Greater(t, st.StdDev, 100.0)
}

func TestSummarize_Uniform(t *testing.T) {
	res, err := pixelquiz.Binarize(uniform(60, image.Rect(0, 0, 9, 9)), pixelquiz.Options{Size: 3, Threshold: 128})
	require.NoError(t, err)

	st := pixelquiz.Summarize(res)
	assert.Equal(t, 9, st.Foreground)
	assert.InDelta(t, 1.0, st.Coverage, 1e-9)
	assert.InDelta(t, 60, st.Mean, 0.5)
	assert.InDelta(t, 0, st.StdDev, 1e-9)
}

func TestSummarize_SingleCell(t *testing.T) {
	res, err := pixelquiz.Binarize(uniform(200, image.Rect(0, 0, 4, 4)), pixelquiz.Options{Size: 1, Threshold: 128})
	require.NoError(t, err)

	st := pixelquiz.Summarize(res)
	assert.Equal(t, 1, st.Cells)
	assert.Zero(t, st.Foreground)
	assert.InDelta(t, 200, st.Mean, 0.5)
	assert.Zero(t, st.StdDev)
}

func TestSummarize_NoSamples(t *testing.T) {
	st := pixelquiz.Summarize(&pixelquiz.Result{Grid: pixelquiz.PixelGrid{{true, false}}})
	assert.Equal(t, 2, st.Cells)
	assert.InDelta(t, 0.5, st.Coverage, 1e-9)
	assert.Zero(t, st.Mean)
}
