package stats

import (
	"io"
	"slices"
	"unicode/utf8"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/domino14/wordsearch/score"
)

// Summary describes a list of found words. Lengths are in letters.
type Summary struct {
	Count        int     `json:"count" yaml:"count"`
	Unique       int     `json:"unique" yaml:"unique"`
	TotalScore   int     `json:"total_score" yaml:"total_score"`
	MeanLength   float64 `json:"mean_length" yaml:"mean_length"`
	StdevLength  float64 `json:"stdev_length" yaml:"stdev_length"`
	MedianLength float64 `json:"median_length" yaml:"median_length"`
	Longest      string  `json:"longest" yaml:"longest"`
}

func lengths(words []string) []float64 {
	return lo.Map(words, func(w string, _ int) float64 {
		return float64(utf8.RuneCountInString(w))
	})
}

// Summarize computes a Summary of words. Repeated words are counted each
// time they appear, except in Unique. Ties for the longest word go to the
// first one in words.
func Summarize(words []string) Summary {
	sm := Summary{
		Count:      len(words),
		Unique:     len(lo.Uniq(words)),
		TotalScore: score.Total(words),
	}
	if len(words) == 0 {
		return sm
	}

	ls := lengths(words)
	st := &Statistic{}
	for i, l := range ls {
		st.Push(l)
		if l > float64(utf8.RuneCountInString(sm.Longest)) {
			sm.Longest = words[i]
		}
	}
	sm.MeanLength = st.Mean()
	sm.StdevLength = st.Stdev()

	sorted := slices.Clone(ls)
	slices.Sort(sorted)
	sm.MedianLength = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	return sm
}

// LengthHistogram draws a histogram of word lengths to w.
func LengthHistogram(w io.Writer, words []string, bins int) error {
	if len(words) == 0 {
		_, err := io.WriteString(w, "no words\n")
		return err
	}
	hist := histogram.Hist(bins, lengths(words))
	return histogram.Fprint(w, hist, histogram.Linear(40))
}
