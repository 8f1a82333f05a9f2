package pixelquiz

import (
	"fmt"
	"image"
	"slices"
	"sync"

	"go.afab.re/pixelquiz/quiz"
)

// Session carries the pixelated image and the quiz list from the steps that
// produce them to the one building the puzzle.
// It is safe for concurrent use.
type Session struct {
	mu      sync.RWMutex
	result  *Result
	entries []quiz.Entry
}

func NewSession() *Session {
	return &Session{}
}

// SetImage binarizes img, replacing any previous result.
// The previous result is kept if binarizing fails.
func (s *Session) SetImage(img image.Image, opts Options) (*Result, error) {
	res, err := Binarize(img, opts)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.result = res
	s.mu.Unlock()

	return res, nil
}

// SetQuiz replaces the quiz list.
func (s *Session) SetQuiz(entries []quiz.Entry) error {
	if len(entries) == 0 {
		return quiz.ErrEmptyData
	}

	s.mu.Lock()
	s.entries = slices.Clone(entries)
	s.mu.Unlock()

	return nil
}

// Result returns the last binarized image, or nil.
func (s *Session) Result() *Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// Entries returns a copy of the quiz list.
func (s *Session) Entries() []quiz.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

// Build draws a fresh puzzle from the current image and quiz list.
func (s *Session) Build(rnd Rand) (PuzzleGrid, error) {
	s.mu.RLock()
	res, entries := s.result, s.entries
	s.mu.RUnlock()

	switch {
	case res == nil:
		return nil, fmt.Errorf("%w: no pixelated image", ErrInputMissing)
	case len(entries) == 0:
		return nil, fmt.Errorf("%w: no quiz data", ErrInputMissing)
	}

	return BuildPuzzleMap(res.Grid, quiz.BuildPools(entries), rnd)
}
