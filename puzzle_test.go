package pixelquiz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.afab.re/pixelquiz"
	"go.afab.re/pixelquiz/quiz"
)

func filled(size int, fg bool) pixelquiz.PixelGrid {
	grid := make(pixelquiz.PixelGrid, size)
	for r := range grid {
		grid[r] = make([]bool, size)
		for c := range grid[r] {
			grid[r][c] = fg
		}
	}
	return grid
}

// checkered alternates foreground and background cells.
func checkered(size int) pixelquiz.PixelGrid {
	grid := filled(size, false)
	for r := range grid {
		for c := range grid[r] {
			grid[r][c] = (r+c)%2 == 0
		}
	}
	return grid
}

func TestBuildPuzzleMap_AllBackground(t *testing.T) {
	pools := quiz.BuildPools([]quiz.Entry{
		{ID: "A", Correct: true},
		{ID: "B", Correct: false},
		{ID: "C", Correct: false},
	})
	require.Equal(t, []string{"A"}, pools.Correct)
	require.Equal(t, []string{"B", "C"}, pools.Incorrect)

	puzzle, err := pixelquiz.BuildPuzzleMap(filled(4, false), pools, pixelquiz.NewRand(1))
	require.NoError(t, err)
	require.Len(t, puzzle, 4)

	for _, row := range puzzle {
		require.Len(t, row, 4)
		for _, id := range row {
			assert.Contains(t, []string{"B", "C"}, id)
		}
	}
}

func TestBuildPuzzleMap_PoolMembership(t *testing.T) {
	grid := checkered(9)
	pools := quiz.BuildPools([]quiz.Entry{
		{ID: "1", Correct: true},
		{ID: "2", Correct: true},
		{ID: "3", Correct: false},
		{ID: "4", Correct: false},
		{ID: "5", Correct: true},
		{ID: "4", Correct: false},
	})

	for seed := int64(1); seed <= 50; seed++ {
		puzzle, err := pixelquiz.BuildPuzzleMap(grid, pools, pixelquiz.NewRand(seed))
		require.NoError(t, err)
		require.Len(t, puzzle, len(grid))

		for r, row := range puzzle {
			require.Len(t, row, len(grid[r]))
			for c, id := range row {
				if grid[r][c] {
					assert.Contains(t, pools.Correct, id, "seed %d (%d, %d)", seed, r, c)
				} else {
					assert.Contains(t, pools.Incorrect, id, "seed %d (%d, %d)", seed, r, c)
				}
			}
		}
	}
}

func TestBuildPuzzleMap_UsesWholePool(t *testing.T) {
	pools := quiz.BuildPools([]quiz.Entry{
		{ID: "A", Correct: true},
		{ID: "B", Correct: false},
		{ID: "C", Correct: false},
	})

	puzzle, err := pixelquiz.BuildPuzzleMap(filled(30, false), pools, pixelquiz.NewRand(7))
	require.NoError(t, err)

	seen := map[string]int{}
	for _, row := range puzzle {
		for _, id := range row {
			seen[id]++
		}
	}
	assert.Len(t, seen, 2)
	assert.Positive(t, seen["B"])
	assert.Positive(t, seen["C"])
}

func TestBuildPuzzleMap_Sentinel(t *testing.T) {
	// Nothing answered O: the picture is drawn with the sentinel.
	pools := quiz.BuildPools([]quiz.Entry{
		{ID: "11", Correct: false},
		{ID: "12", Correct: false},
	})

	for seed := int64(1); seed <= 10; seed++ {
		puzzle, err := pixelquiz.BuildPuzzleMap(checkered(5), pools, pixelquiz.NewRand(seed))
		require.NoError(t, err)

		for r, row := range puzzle {
			for c, id := range row {
				if (r+c)%2 == 0 {
					assert.Equal(t, quiz.Unknown, id)
				} else {
					assert.NotEqual(t, quiz.Unknown, id)
				}
			}
		}
	}
}

func TestBuildPuzzleMap_NotBuildable(t *testing.T) {
	pools := quiz.BuildPools([]quiz.Entry{{ID: "1", Correct: true}})

	cases := []struct {
		name  string
		grid  pixelquiz.PixelGrid
		pools *quiz.Pools
	}{
		{"NilGrid", nil, pools},
		{"EmptyGrid", pixelquiz.PixelGrid{}, pools},
		{"NilPools", filled(2, true), nil},
		{"NoEntries", filled(2, true), quiz.BuildPools(nil)},
		{"ZeroPools", filled(2, true), &quiz.Pools{}},
		{"OnlyUnknown", filled(2, true), &quiz.Pools{Correct: []string{quiz.Unknown}, Incorrect: []string{quiz.Unknown}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			puzzle, err := pixelquiz.BuildPuzzleMap(tc.grid, tc.pools, nil)
			assert.ErrorIs(t, err, pixelquiz.ErrNotBuildable)
			assert.Nil(t, puzzle)
		})
	}
}

func TestBuildPuzzleMap_Reproducible(t *testing.T) {
	grid := checkered(6)
	pools := quiz.BuildPools([]quiz.Entry{
		{ID: "1", Correct: true},
		{ID: "2", Correct: true},
		{ID: "3", Correct: false},
		{ID: "4", Correct: false},
	})

	a, err := pixelquiz.BuildPuzzleMap(grid, pools, pixelquiz.NewRand(42))
	require.NoError(t, err)
	b, err := pixelquiz.BuildPuzzleMap(grid, pools, pixelquiz.NewRand(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// Each build gets its own grid.
	a[0][0] = "changed"
	assert.NotEqual(t, "changed", b[0][0])
}

func TestBuildPuzzleMap_GlobalRand(t *testing.T) {
	pools := quiz.BuildPools([]quiz.Entry{{ID: "1", Correct: true}, {ID: "2", Correct: false}})

	puzzle, err := pixelquiz.BuildPuzzleMap(checkered(3), pools, nil)
	require.NoError(t, err)
	assert.Equal(t, pixelquiz.PuzzleGrid{
		{"1", "2", "1"},
		{"2", "1", "2"},
		{"1", "2", "1"},
	}, puzzle)
}

func TestBuildPuzzleMap_HandBuiltPools(t *testing.T) {
	pools := &quiz.Pools{Correct: []string{"7"}, Entries: 1}

	puzzle, err := pixelquiz.BuildPuzzleMap(checkered(2), pools, pixelquiz.NewRand(1))
	require.NoError(t, err)
	assert.Equal(t, pixelquiz.PuzzleGrid{{"7", quiz.Unknown}, {quiz.Unknown, "7"}}, puzzle)
}

func TestBuildPuzzleMap_PoolLiteral(t *testing.T) {
	pools := &quiz.Pools{Correct: []string{"A"}, Incorrect: []string{"B", "C"}}

	for seed := int64(1); seed <= 20; seed++ {
		puzzle, err := pixelquiz.BuildPuzzleMap(filled(4, false), pools, pixelquiz.NewRand(seed))
		require.NoError(t, err, "seed %d", seed)
		require.Len(t, puzzle, 4)
		for _, row := range puzzle {
			require.Len(t, row, 4)
			for _, id := range row {
				assert.Contains(t, []string{"B", "C"}, id, "seed %d", seed)
			}
		}
	}
}
