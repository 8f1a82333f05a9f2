// Package quiz reads OX quiz lists and splits them into answer pools.
package quiz

import (
	"errors"
	"strings"
)

// Unknown stands in for an answer class with no quizzes at all.
// Cells drawn from it are visibly wrong but the puzzle still builds.
const Unknown = "??"

const (
	MarkCorrect   = "O"
	MarkIncorrect = "X"
)

var (
	// ErrInvalidSheet is returned when the quiz workbook doesn't have the expected sheet.
	ErrInvalidSheet = errors.New("quiz: sheet not found")
	// ErrEmptyData is returned when no row of a quiz list is usable.
	ErrEmptyData = errors.New("quiz: no quiz data")
)

// Entry is a single quiz: its identifier and whether its answer is O.
type Entry struct {
	ID      string
	Correct bool
}

// Pools holds quiz identifiers split by answer.
type Pools struct {
	// Correct and Incorrect keep the order and duplicates of the entries.
	Correct   []string
	Incorrect []string
	// Entries is the number of entries the pools were built from.
	Entries int
}

// BuildPools splits entries by answer.
// A side without any entry gets the single identifier Unknown.
func BuildPools(entries []Entry) *Pools {
	p := &Pools{Entries: len(entries)}

	for _, e := range entries {
		if e.Correct {
			p.Correct = append(p.Correct, e.ID)
		} else {
			p.Incorrect = append(p.Incorrect, e.ID)
		}
	}

	if len(p.Correct) == 0 {
		p.Correct = []string{Unknown}
	}
	if len(p.Incorrect) == 0 {
		p.Incorrect = []string{Unknown}
	}

	return p
}

// Empty reports whether the pools hold no quiz at all.
// Pools built by hand are judged by their contents, Unknown not counting as a quiz.
func (p *Pools) Empty() bool {
	if p == nil {
		return true
	}
	if p.Entries > 0 {
		return false
	}
	return onlyUnknown(p.Correct) && onlyUnknown(p.Incorrect)
}

func onlyUnknown(ids []string) bool {
	for _, id := range ids {
		if id != Unknown {
			return false
		}
	}
	return true
}

// ParseMarker interprets an answer marker, ignoring case and surrounding space.
func ParseMarker(s string) (correct bool, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case MarkCorrect:
		return true, true
	case MarkIncorrect:
		return false, true
	default:
		return false, false
	}
}

// ParseRow reads an identifier from the first column and a marker from the second.
// Rows with a blank identifier or a missing / unknown marker are rejected.
func ParseRow(row []string) (Entry, bool) {
	if len(row) < 2 {
		return Entry{}, false
	}

	id := strings.TrimSpace(row[0])
	if id == "" {
		return Entry{}, false
	}

	correct, ok := ParseMarker(row[1])
	if !ok {
		return Entry{}, false
	}

	return Entry{ID: id, Correct: correct}, true
}

// Report is the outcome of parsing a quiz list.
type Report struct {
	Entries []Entry
	// Skipped counts the rows that were dropped.
	Skipped int
}

// ParseReport parses every row, skipping the ones ParseRow rejects.
func ParseReport(rows [][]string) (Report, error) {
	var r Report
	for _, row := range rows {
		e, ok := ParseRow(row)
		if !ok {
			r.Skipped++
			continue
		}
		r.Entries = append(r.Entries, e)
	}

	if len(r.Entries) == 0 {
		return r, ErrEmptyData
	}
	return r, nil
}

// Parse is ParseReport without the skipped row count.
func Parse(rows [][]string) ([]Entry, error) {
	r, err := ParseReport(rows)
	return r.Entries, err
}
