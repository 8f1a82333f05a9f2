package pixelquiz

import (
	"fmt"
	"math/rand"

	"go.afab.re/pixelquiz/quiz"
)

// PuzzleGrid holds one quiz identifier per cell, indexed [row][column].
type PuzzleGrid [][]string

// Rand is the source of the per cell draws. *rand.Rand implements it.
type Rand interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// NewRand returns a deterministic source, for reproducible puzzles.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// globalRand uses the process wide math/rand source.
type globalRand struct{}

func (globalRand) Intn(n int) int {
	return rand.Intn(n)
}

// BuildPuzzleMap picks a quiz for every cell of grid: a random correct one
// for foreground cells, a random incorrect one for the others.
// Draws are independent, so the same quiz can appear any number of times.
// A nil rnd uses the process wide source.
//
// Returns ErrNotBuildable if the grid has no rows or the pools no entries.
func BuildPuzzleMap(grid PixelGrid, pools *quiz.Pools, rnd Rand) (PuzzleGrid, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: empty pixel grid", ErrNotBuildable)
	}
	if pools.Empty() {
		return nil, fmt.Errorf("%w: no quizzes", ErrNotBuildable)
	}
	if rnd == nil {
		rnd = globalRand{}
	}

	puzzle := make(PuzzleGrid, len(grid))
	for r, row := range grid {
		puzzle[r] = make([]string, len(row))
		for c, fg := range row {
			if fg {
				puzzle[r][c] = pick(pools.Correct, rnd)
			} else {
				puzzle[r][c] = pick(pools.Incorrect, rnd)
			}
		}
	}

	return puzzle, nil
}

func pick(pool []string, rnd Rand) string {
	// Only hand built Pools can be empty here, BuildPools never is.
	if len(pool) == 0 {
		return quiz.Unknown
	}
	return pool[rnd.Intn(len(pool))]
}
