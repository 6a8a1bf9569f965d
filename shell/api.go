package shell

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsearch/board"
	"github.com/domino14/wordsearch/dict"
	"github.com/domino14/wordsearch/solver"
	"github.com/domino14/wordsearch/stats"
)

const (
	defaultRollSize = 4
	histogramBins   = 8
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(usage()), nil
	}
	text, err := usageTopic(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return msg(text), nil
}

func (sc *ShellController) newBoard(b *board.Board) {
	sc.curBoard = b
	sc.lastResult = nil
	log.Debug().Str("board", b.String()).Msg("new-board")
}

func (sc *ShellController) setBoard(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: board <row> <row> ...")
	}
	b, err := board.ParseBoard(strings.Join(cmd.args, " "))
	if err != nil {
		return nil, err
	}
	sc.newBoard(b)
	return msg(b.Display()), nil
}

func (sc *ShellController) roll(cmd *shellcmd) (*Response, error) {
	width, height := defaultRollSize, defaultRollSize
	var err error
	switch len(cmd.args) {
	case 0:
	case 2:
		if width, err = strconv.Atoi(cmd.args[0]); err != nil {
			return nil, err
		}
		if height, err = strconv.Atoi(cmd.args[1]); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("usage: roll [width height]")
	}
	b, err := board.Roll(width, height)
	if err != nil {
		return nil, err
	}
	sc.newBoard(b)
	return msg(b.Display()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.curBoard == nil {
		return nil, errNoBoard
	}
	return msg(sc.curBoard.Display()), nil
}

// solveOptions applies any per-command -option overrides to the shell's
// current options.
func (sc *ShellController) solveOptions(cmd *shellcmd) (solver.Options, string, error) {
	opts := sc.options
	format := sc.format
	for k, v := range cmd.options {
		if err := setOption(&opts, &format, k, v); err != nil {
			return opts, format, err
		}
	}
	return opts, format, nil
}

func setOption(opts *solver.Options, format *string, key, value string) error {
	switch key {
	case "min-length":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		opts.MinLength = n
	case "unique":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		opts.Unique = b
	case "sort":
		switch value {
		case solver.SortNone, solver.SortAlpha, solver.SortLength, solver.SortScore:
		default:
			return fmt.Errorf("%w: %q", solver.ErrUnknownSort, value)
		}
		opts.Sort = value
	case "format":
		switch value {
		case solver.FormatText, solver.FormatYAML, solver.FormatJSON:
		default:
			return fmt.Errorf("%w: %q", solver.ErrUnknownFormat, value)
		}
		*format = value
	default:
		return fmt.Errorf("unknown option %q", key)
	}
	return nil
}

func (sc *ShellController) solve(cmd *shellcmd) (*Response, error) {
	if sc.curBoard == nil {
		return nil, errNoBoard
	}
	opts, format, err := sc.solveOptions(cmd)
	if err != nil {
		return nil, err
	}
	r, err := solver.Solve(sc.curBoard, sc.curDict, opts)
	if err != nil {
		return nil, err
	}
	sc.lastResult = r

	var buf bytes.Buffer
	if err := solver.Encode(&buf, r, format); err != nil {
		return nil, err
	}
	if format == solver.FormatText {
		fmt.Fprintf(&buf, "%d words, %d points\n", r.Summary.Count, r.Summary.TotalScore)
	}
	return msg(buf.String()), nil
}

func (sc *ShellController) lexName() string {
	if sc.curDictPath == "" {
		return "(built-in)"
	}
	return sc.curDictPath
}

func (sc *ShellController) lex(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 {
		path := cmd.args[0]
		if path == "builtin" {
			path = ""
		}
		d, err := dict.Get(sc.config, path)
		if err != nil {
			return nil, err
		}
		sc.curDict = d
		sc.curDictPath = path
		sc.lastResult = nil
	}
	return msg(fmt.Sprintf("lexicon %s: %d words, %d nodes, fingerprint %016x",
		sc.lexName(), sc.curDict.NumWords(), sc.curDict.NumNodes(),
		sc.curDict.Fingerprint())), nil
}

func (sc *ShellController) stats(cmd *shellcmd) (*Response, error) {
	if sc.lastResult == nil {
		return nil, errNoResult
	}
	sm := sc.lastResult.Summary
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "words:          %d (%d unique)\n", sm.Count, sm.Unique)
	fmt.Fprintf(&buf, "total score:    %d\n", sm.TotalScore)
	fmt.Fprintf(&buf, "mean length:    %.2f (stdev %.2f)\n", sm.MeanLength, sm.StdevLength)
	fmt.Fprintf(&buf, "median length:  %.0f\n", sm.MedianLength)
	fmt.Fprintf(&buf, "longest:        %s\n\n", sm.Longest)
	if err := stats.LengthHistogram(&buf, sc.lastResult.Words(), histogramBins); err != nil {
		return nil, err
	}
	return msg(buf.String()), nil
}

// pathDisplay draws the board with each cell of p replaced by its 1-based
// position in the path, and other cells shown as dots.
func pathDisplay(b *board.Board, p board.Path) string {
	order := map[uint32]int{}
	for i, id := range p {
		order[id] = i + 1
	}
	var sb strings.Builder
	for row := uint32(0); row < b.Height(); row++ {
		for col := uint32(0); col < b.Width(); col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if n, ok := order[row*b.Width()+col]; ok {
				fmt.Fprintf(&sb, "%2d", n)
			} else {
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (sc *ShellController) path(cmd *shellcmd) (*Response, error) {
	if sc.lastResult == nil {
		return nil, errNoResult
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: path <word>")
	}
	word := cmd.args[0]
	paths := sc.lastResult.Paths(word)
	if len(paths) == 0 {
		return nil, fmt.Errorf("%q was not found on this board", word)
	}
	var sb strings.Builder
	for _, p := range paths {
		fmt.Fprintf(&sb, "%s %v\n", word, p)
		sb.WriteString(pathDisplay(sc.curBoard, p))
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(fmt.Sprintf("min-length %d\nunique %v\nsort %s\nformat %s",
			sc.options.MinLength, sc.options.Unique, sc.options.Sort, sc.format)), nil
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <option> <value>")
	}
	if err := setOption(&sc.options, &sc.format, cmd.args[0], cmd.args[1]); err != nil {
		return nil, err
	}
	return msg("set " + cmd.args[0] + " to " + cmd.args[1]), nil
}
