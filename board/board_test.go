package board

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
	"unicode"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/wordsearch/dict"
	"github.com/domino14/wordsearch/graph"
)

var searchWords = []string{
	"an", "and", "ant", "anti", "bad", "banana", "bat", "bot", "boy",
}

func sortPaths(paths []Path) {
	slices.SortFunc(paths, func(a, b Path) int {
		return slices.Compare(a, b)
	})
}

func TestParseBoard(t *testing.T) {
	is := is.New(t)
	b, err := ParseBoard("abc def ghi")
	is.NoErr(err)

	expected := New(3, 3, map[uint32]rune{
		0: 'a', 1: 'b', 2: 'c',
		3: 'd', 4: 'e', 5: 'f',
		6: 'g', 7: 'h', 8: 'i',
	})
	is.True(b.Equal(expected))
	is.True(b.Grid().Equal(graph.Grid(3, 3)))
	is.Equal(b.Width(), uint32(3))
	is.Equal(b.Height(), uint32(3))
	is.Equal(b.Size(), 9)
}

func TestParseBoardWhitespace(t *testing.T) {
	is := is.New(t)
	b, err := ParseBoard("  ab\n\tcd  \n")
	is.NoErr(err)
	is.Equal(b.String(), "ab cd")
}

func TestParseBoardMultibyte(t *testing.T) {
	is := is.New(t)
	b, err := ParseBoard("ñb cd")
	is.NoErr(err)
	is.Equal(b.Width(), uint32(2))
	r, ok := b.Char(0)
	is.True(ok)
	is.Equal(r, 'ñ')
}

func TestParseBoardErrors(t *testing.T) {
	is := is.New(t)
	testcases := []struct {
		text string
		err  error
	}{
		{"a b c", ErrTooNarrow},
		{"abc", ErrTooFewRows},
		{"", ErrTooFewRows},
		{"abc de fghi", ErrUnevenRows},
		{"ab abc", ErrUnevenRows},
	}
	for _, tc := range testcases {
		b, err := ParseBoard(tc.text)
		is.True(b == nil)
		is.True(errors.Is(err, tc.err))
	}
}

func TestParseBoardErrorMessage(t *testing.T) {
	is := is.New(t)
	_, err := ParseBoard("abc")
	is.True(strings.HasPrefix(err.Error(), "must have at least two rows"))
}

func TestSearch(t *testing.T) {
	is := is.New(t)
	d := dict.FromWords(searchWords)
	b := New(2, 2, map[uint32]rune{0: 'b', 1: 'a', 2: 't', 3: 'n'})

	paths := b.Search(d)
	sortPaths(paths)
	is.Equal(paths, []Path{{0, 1, 2}, {1, 3}, {1, 3, 2}})

	words := []string{}
	for _, p := range paths {
		words = append(words, b.PathToWord(p))
	}
	is.Equal(words, []string{"bat", "an", "ant"})
}

func TestSearchOrder(t *testing.T) {
	is := is.New(t)
	d := dict.FromWords(searchWords)
	b, err := ParseBoard("ba tn")
	is.NoErr(err)
	// Longer words found from a cell come before the shorter word ending
	// there.
	is.Equal(b.Search(d), []Path{{0, 1, 2}, {1, 3, 2}, {1, 3}})
}

func TestSearchSingleLetterWord(t *testing.T) {
	is := is.New(t)
	d := dict.FromWords([]string{"a", "i"})
	b, err := ParseBoard("ab ca")
	is.NoErr(err)
	paths := b.Search(d)
	sortPaths(paths)
	is.Equal(paths, []Path{{0}, {3}})
}

func TestSearchNoRevisit(t *testing.T) {
	is := is.New(t)
	d := dict.FromWords([]string{"aa", "aaa", "aaaa", "aaaaa"})
	b, err := ParseBoard("aa aa")
	is.NoErr(err)
	paths := b.Search(d)
	for _, p := range paths {
		is.True(len(p) <= 4)
		is.True(b.ValidPath(p))
	}
	// 4*3 two-cell paths, 4*3*2 three-cell, 4*3*2*1 four-cell.
	is.Equal(len(paths), 12+24+24)
}

func TestSearchDuplicateSpellings(t *testing.T) {
	is := is.New(t)
	d := dict.FromWords([]string{"at"})
	b, err := ParseBoard("at ta")
	is.NoErr(err)
	paths := b.Search(d)
	assert.ElementsMatch(t, paths, []Path{{0, 1}, {0, 2}, {3, 1}, {3, 2}})
	for _, p := range paths {
		is.Equal(b.PathToWord(p), "at")
	}
}

func TestSearchEmptyDict(t *testing.T) {
	is := is.New(t)
	b, err := ParseBoard("abcd efgh ijkl mnop")
	is.NoErr(err)
	is.Equal(len(b.Search(dict.New())), 0)
}

func TestSearchPathsAndWordsValid(t *testing.T) {
	is := is.New(t)
	d := dict.Builtin()
	b, err := ParseBoard("tane sdor ilpe hcat")
	is.NoErr(err)
	paths := b.Search(d)
	is.True(len(paths) > 0)
	seen := map[string]bool{}
	for _, p := range paths {
		is.True(b.ValidPath(p))
		is.True(d.Has(b.PathToWord(p)))
		key := fmt.Sprint(p)
		is.True(!seen[key])
		seen[key] = true
	}
}

func TestSearchIdempotent(t *testing.T) {
	d := dict.Builtin()
	b, err := ParseBoard("tane sdor ilpe hcat")
	if err != nil {
		t.Fatal(err)
	}
	assert.ElementsMatch(t, b.Search(d), b.Search(d))
}

func TestPathToWordUnknownCell(t *testing.T) {
	is := is.New(t)
	b, err := ParseBoard("ab cd")
	is.NoErr(err)
	is.Equal(b.PathToWord(Path{0, 3, 17}), "ad?")
	is.Equal(b.PathToWord(Path{}), "")
}

func TestValidPath(t *testing.T) {
	is := is.New(t)
	b, err := ParseBoard("abc def ghi")
	is.NoErr(err)
	is.True(b.ValidPath(Path{0, 4, 8}))
	is.True(b.ValidPath(Path{2}))
	is.True(!b.ValidPath(Path{}))
	is.True(!b.ValidPath(Path{0, 2}))
	is.True(!b.ValidPath(Path{0, 1, 0}))
	is.True(!b.ValidPath(Path{8, 9}))
}

func TestDisplay(t *testing.T) {
	is := is.New(t)
	b, err := ParseBoard("abc def")
	is.NoErr(err)
	is.Equal(b.Rows(), []string{"abc", "def"})
	is.Equal(b.String(), "abc def")
	is.Equal(b.Display(), "a b c\nd e f\n")

	again, err := ParseBoard(b.String())
	is.NoErr(err)
	is.True(again.Equal(b))
}

func TestDiceFacesLowerCase(t *testing.T) {
	is := is.New(t)
	hasQ := false
	for _, die := range classicDice {
		for _, r := range die {
			is.True(unicode.IsLower(r))
			hasQ = hasQ || r == 'q'
		}
	}
	is.True(hasQ)
}

func TestRoll(t *testing.T) {
	is := is.New(t)
	faces := map[rune]bool{}
	for _, die := range classicDice {
		for _, r := range die {
			faces[r] = true
		}
	}
	for _, dims := range [][2]int{{4, 4}, {5, 5}, {2, 3}} {
		b, err := Roll(dims[0], dims[1])
		is.NoErr(err)
		is.Equal(b.Size(), dims[0]*dims[1])
		for id := 0; id < b.Size(); id++ {
			r, ok := b.Char(uint32(id))
			is.True(ok)
			is.True(faces[r])
		}
		again, err := ParseBoard(b.String())
		is.NoErr(err)
		is.True(again.Equal(b))
	}
}

func TestRollTooSmall(t *testing.T) {
	is := is.New(t)
	_, err := Roll(1, 4)
	is.True(errors.Is(err, ErrTooNarrow))
	_, err = Roll(4, 1)
	is.True(errors.Is(err, ErrTooFewRows))
}

func BenchmarkSearch(b *testing.B) {
	d := dict.Builtin()
	bd, err := ParseBoard("tane sdor ilpe hcat")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bd.Search(d)
	}
}
