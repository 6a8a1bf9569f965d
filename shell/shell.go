package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsearch/board"
	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/dict"
	"github.com/domino14/wordsearch/solver"
)

var (
	errNoData            = errors.New("no data in command")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errQuit              = errors.New("sending quit signal")
	errNoBoard           = errors.New("please set a board first with the `board` or `roll` command")
	errNoResult          = errors.New("please `solve` the board first")
)

type ShellController struct {
	l   *readline.Instance
	out io.Writer

	config  *config.Config
	options solver.Options
	format  string

	curBoard    *board.Board
	curDict     *dict.Dict
	curDictPath string
	lastResult  *solver.Result
}

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("board"),
	readline.PcItem("roll"),
	readline.PcItem("show"),
	readline.PcItem("solve"),
	readline.PcItem("lex"),
	readline.PcItem("stats"),
	readline.PcItem("path"),
	readline.PcItem("set",
		readline.PcItem("min-length"),
		readline.PcItem("unique"),
		readline.PcItem("sort",
			readline.PcItem(solver.SortNone),
			readline.PcItem(solver.SortAlpha),
			readline.PcItem(solver.SortLength),
			readline.PcItem(solver.SortScore)),
		readline.PcItem("format",
			readline.PcItem(solver.FormatText),
			readline.PcItem(solver.FormatYAML),
			readline.PcItem(solver.FormatJSON))),
	readline.PcItem("help"),
	readline.PcItem("exit"),
)

// newController builds a controller without a terminal, writing to out.
func newController(cfg *config.Config, out io.Writer) (*ShellController, error) {
	sc := &ShellController{
		out:         out,
		config:      cfg,
		options:     solver.OptionsFromConfig(cfg),
		format:      cfg.GetString(config.ConfigFormat),
		curDictPath: cfg.GetString(config.ConfigWordList),
	}
	d, err := dict.Get(cfg, sc.curDictPath)
	if err != nil {
		return nil, err
	}
	sc.curDict = d
	return sc, nil
}

func NewShellController(cfg *config.Config) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mwordsearch>\033[0m ",
		HistoryFile:     "/tmp/wordsearch_readline.tmp",
		AutoComplete:    completer,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc, err := newController(cfg, l.Stdout())
	if err != nil {
		l.Close()
		return nil, err
	}
	sc.l = l
	return sc, nil
}

func (sc *ShellController) showMessage(msg string) {
	io.WriteString(sc.out, msg)
	if !strings.HasSuffix(msg, "\n") {
		io.WriteString(sc.out, "\n")
	}
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// isOption reports whether field names an option. Negative numbers are
// plain arguments.
func isOption(field string) bool {
	if len(field) < 2 || field[0] != '-' {
		return false
	}
	_, err := strconv.ParseFloat(field, 64)
	return err != nil
}

// extractFields splits a line into a command, its positional arguments,
// and its -name value options. Quoting works as in a POSIX shell.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}

	for idx := 1; idx < len(fields); idx++ {
		if isOption(fields[idx]) {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[strings.TrimLeft(fields[idx], "-")] = fields[idx+1]
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{
		cmd:     cmd,
		args:    args,
		options: options,
	}, nil
}

func (sc *ShellController) standardModeSwitch(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "bye":
		return nil, errQuit
	case "help":
		return sc.help(cmd)
	case "board":
		return sc.setBoard(cmd)
	case "roll":
		return sc.roll(cmd)
	case "show":
		return sc.show(cmd)
	case "solve":
		return sc.solve(cmd)
	case "lex":
		return sc.lex(cmd)
	case "stats":
		return sc.stats(cmd)
	case "path":
		return sc.path(cmd)
	case "set":
		return sc.set(cmd)
	default:
		log.Debug().Msgf("you said: %v", line)
		return nil, fmt.Errorf("unknown command %q; try `help`", cmd.cmd)
	}
}

// Execute runs a single command line. It returns false once the user has
// asked to quit.
func (sc *ShellController) Execute(sig chan os.Signal, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	resp, err := sc.standardModeSwitch(line)
	if errors.Is(err, errQuit) {
		if sig != nil {
			sig <- syscall.SIGINT
		}
		return false
	}
	if err != nil {
		sc.showError(err)
		return true
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return true
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		if !sc.Execute(sig, line) {
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

func (sc *ShellController) Cleanup() {
	if sc.l != nil {
		sc.l.Close()
	}
}
