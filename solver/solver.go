// Package solver turns a board search into a report: the words found,
// filtered and ordered the way the caller asked, with scores and a summary.
package solver

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/wordsearch/board"
	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/dict"
	"github.com/domino14/wordsearch/score"
	"github.com/domino14/wordsearch/stats"
)

const (
	SortNone   = "none"
	SortAlpha  = "alpha"
	SortLength = "length"
	SortScore  = "score"
)

var ErrUnknownSort = errors.New("unknown sort order")

type Options struct {
	// MinLength drops words with fewer letters than this.
	MinLength int
	// Unique keeps only the first path found for each spelling.
	Unique bool
	Sort   string
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		MinLength: cfg.GetInt(config.ConfigMinLength),
		Unique:    cfg.GetBool(config.ConfigUnique),
		Sort:      cfg.GetString(config.ConfigSort),
	}
}

type Found struct {
	Word  string     `json:"word" yaml:"word"`
	Path  board.Path `json:"path" yaml:"path,flow"`
	Score int        `json:"score" yaml:"score"`
}

type Result struct {
	Board   string        `json:"board" yaml:"board"`
	Found   []Found       `json:"found" yaml:"found"`
	Summary stats.Summary `json:"summary" yaml:"summary"`
}

// Words returns the found words in report order.
func (r *Result) Words() []string {
	return lo.Map(r.Found, func(f Found, _ int) string { return f.Word })
}

// Paths returns every path that spells word, in report order.
func (r *Result) Paths(word string) []board.Path {
	return lo.FilterMap(r.Found, func(f Found, _ int) (board.Path, bool) {
		return f.Path, f.Word == word
	})
}

func byWord(a, b Found) int {
	return cmp.Or(cmp.Compare(a.Word, b.Word), slices.Compare(a.Path, b.Path))
}

func sortFound(found []Found, order string) error {
	switch order {
	case SortNone, "":
	case SortAlpha:
		slices.SortFunc(found, byWord)
	case SortLength:
		slices.SortFunc(found, func(a, b Found) int {
			return cmp.Or(cmp.Compare(len(b.Path), len(a.Path)), byWord(a, b))
		})
	case SortScore:
		slices.SortFunc(found, func(a, b Found) int {
			return cmp.Or(cmp.Compare(b.Score, a.Score), byWord(a, b))
		})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSort, order)
	}
	return nil
}

// Solve searches b for the words in d and builds a report. The search
// itself finds every path; opts only shape what is reported.
func Solve(b *board.Board, d dict.WordGraph, opts Options) (*Result, error) {
	paths := b.Search(d)

	found := make([]Found, 0, len(paths))
	for _, p := range paths {
		w := b.PathToWord(p)
		if utf8.RuneCountInString(w) < opts.MinLength {
			continue
		}
		found = append(found, Found{Word: w, Path: p, Score: score.Word(w)})
	}
	if opts.Unique {
		found = lo.UniqBy(found, func(f Found) string { return f.Word })
	}
	if err := sortFound(found, opts.Sort); err != nil {
		return nil, err
	}

	r := &Result{Board: b.String(), Found: found}
	r.Summary = stats.Summarize(r.Words())
	log.Debug().Str("board", r.Board).Int("num-paths", len(paths)).
		Int("num-reported", len(found)).Msg("solved")
	return r, nil
}

// SolveString parses text as a board and solves it.
func SolveString(text string, d dict.WordGraph, opts Options) (*Result, error) {
	b, err := board.ParseBoard(text)
	if err != nil {
		return nil, err
	}
	return Solve(b, d, opts)
}
