package solver

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/domino14/wordsearch/board"
	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/dict"
)

var testDict = dict.FromWords([]string{
	"an", "and", "ant", "anti", "bad", "banana", "bat", "bot", "boy",
})

func TestSolve(t *testing.T) {
	is := is.New(t)
	r, err := SolveString("ba tn", testDict, Options{Sort: SortAlpha})
	is.NoErr(err)
	is.Equal(r.Board, "ba tn")
	is.Equal(r.Words(), []string{"an", "ant", "bat"})
	is.Equal(r.Found[0], Found{Word: "an", Path: board.Path{1, 3}, Score: 0})
	is.Equal(r.Found[1], Found{Word: "ant", Path: board.Path{1, 3, 2}, Score: 1})
	is.Equal(r.Found[2], Found{Word: "bat", Path: board.Path{0, 1, 2}, Score: 1})
	is.Equal(r.Summary.Count, 3)
	is.Equal(r.Summary.TotalScore, 2)
}

func TestSolveParseError(t *testing.T) {
	is := is.New(t)
	_, err := SolveString("abc", testDict, Options{})
	is.True(errors.Is(err, board.ErrTooFewRows))
}

func TestSolveSortNoneKeepsSearchOrder(t *testing.T) {
	is := is.New(t)
	r, err := SolveString("ba tn", testDict, Options{Sort: SortNone})
	is.NoErr(err)
	is.Equal(r.Words(), []string{"bat", "ant", "an"})
}

func TestSolveSortLengthAndScore(t *testing.T) {
	is := is.New(t)
	d := dict.FromWords([]string{"at", "tan", "stand", "and", "ta"})
	b, err := board.ParseBoard("sta dna")
	is.NoErr(err)

	r, err := Solve(b, d, Options{Sort: SortLength, Unique: true})
	is.NoErr(err)
	words := r.Words()
	is.Equal(words[0], "stand")
	for i := 1; i < len(words); i++ {
		is.True(len(words[i-1]) >= len(words[i]))
	}

	r, err = Solve(b, d, Options{Sort: SortScore, Unique: true})
	is.NoErr(err)
	is.Equal(r.Found[0].Word, "stand")
	is.Equal(r.Found[0].Score, 2)
	for i := 1; i < len(r.Found); i++ {
		is.True(r.Found[i-1].Score >= r.Found[i].Score)
	}
}

func TestSolveUnknownSort(t *testing.T) {
	is := is.New(t)
	_, err := SolveString("ba tn", testDict, Options{Sort: "random"})
	is.True(errors.Is(err, ErrUnknownSort))
}

func TestSolveUniqueAndMinLength(t *testing.T) {
	is := is.New(t)
	d := dict.FromWords([]string{"at", "a"})
	b, err := board.ParseBoard("at ta")
	is.NoErr(err)

	r, err := Solve(b, d, Options{Sort: SortAlpha})
	is.NoErr(err)
	is.Equal(r.Words(), []string{"a", "a", "at", "at", "at", "at"})
	is.Equal(len(r.Paths("at")), 4)

	r, err = Solve(b, d, Options{Sort: SortAlpha, Unique: true})
	is.NoErr(err)
	is.Equal(r.Words(), []string{"a", "at"})

	r, err = Solve(b, d, Options{Sort: SortAlpha, Unique: true, MinLength: 2})
	is.NoErr(err)
	is.Equal(r.Words(), []string{"at"})
	is.Equal(r.Summary.Unique, 1)
}

func TestSolveEmptyDict(t *testing.T) {
	is := is.New(t)
	r, err := SolveString("abc def ghi", dict.New(), Options{Sort: SortAlpha})
	is.NoErr(err)
	is.Equal(len(r.Found), 0)
	is.Equal(r.Summary.Count, 0)
}

func TestOptionsFromConfig(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{}
	is.NoErr(cfg.Load([]string{"--min-length", "4", "--unique", "--sort", "score"}))
	is.Equal(OptionsFromConfig(cfg), Options{MinLength: 4, Unique: true, Sort: SortScore})
}

func TestEncodeText(t *testing.T) {
	is := is.New(t)
	r, err := SolveString("ba tn", testDict, Options{Sort: SortAlpha})
	is.NoErr(err)
	var buf bytes.Buffer
	is.NoErr(Encode(&buf, r, FormatText))
	is.Equal(buf.String(), "an\nant\nbat\n")
}

func TestEncodeJSON(t *testing.T) {
	r, err := SolveString("ba tn", testDict, Options{Sort: SortAlpha})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, r, FormatJSON))

	decoded := &Result{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), decoded))
	assert.Equal(t, r, decoded)
}

func TestEncodeYAML(t *testing.T) {
	r, err := SolveString("ba tn", testDict, Options{Sort: SortAlpha})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, r, FormatYAML))
	assert.Contains(t, buf.String(), "board: ba tn")
	assert.Contains(t, buf.String(), "path: [1, 3, 2]")

	decoded := &Result{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), decoded))
	assert.Equal(t, r.Words(), decoded.Words())
}

func TestEncodeUnknownFormat(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	err := Encode(&buf, &Result{}, "xml")
	is.True(errors.Is(err, ErrUnknownFormat))
}
