// Command wordsearch finds every dictionary word that can be traced on a
// board given on the command line.
//
//	wordsearch [flags] <row> <row> ...
//	wordsearch "abc def ghi"
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/wordsearch/board"
	"github.com/domino14/wordsearch/bot"
	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/dict"
	"github.com/domino14/wordsearch/solver"
)

var errNoBoard = errors.New("expected a board, e.g. \"abc def ghi\"")

// argError marks failures caused by what the user typed.
type argError struct{ err error }

func (e argError) Error() string { return e.err.Error() }
func (e argError) Unwrap() error { return e.err }

func setupLogging(w io.Writer, debug bool) {
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
}

// solveRemote asks a running bot to solve the board. With --remote,
// --word-list names a list in the bot's word-list-dir, not a local path.
func solveRemote(ctx context.Context, cfg *config.Config, text string, stdout io.Writer) error {
	nc, err := bot.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer nc.Close()
	opts := solver.OptionsFromConfig(cfg)
	c := bot.NewClient(nc, cfg.GetString(config.ConfigNatsSubject))
	resp, err := c.Solve(ctx, &bot.Request{
		Board:     text,
		WordList:  cfg.GetString(config.ConfigWordList),
		MinLength: lo.ToPtr(opts.MinLength),
		Unique:    lo.ToPtr(opts.Unique),
		Sort:      opts.Sort,
	})
	if err != nil {
		return err
	}
	if cfg.GetString(config.ConfigFormat) == solver.FormatJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	for _, w := range resp.Words {
		fmt.Fprintln(stdout, w)
	}
	return nil
}

func loadConfig(args []string) (*config.Config, error) {
	cfg := &config.Config{}
	if err := cfg.Load(args); err != nil {
		return nil, argError{err}
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	text := strings.TrimSpace(strings.Join(cfg.Args(), " "))
	if text == "" {
		return argError{errNoBoard}
	}
	if cfg.GetBool(config.ConfigRemote) {
		return solveRemote(ctx, cfg, text, stdout)
	}

	b, err := board.ParseBoard(text)
	if err != nil {
		return argError{err}
	}
	d, err := dict.Get(cfg, cfg.GetString(config.ConfigWordList))
	if err != nil {
		return err
	}
	r, err := solver.Solve(b, d, solver.OptionsFromConfig(cfg))
	if err != nil {
		return argError{err}
	}
	if err := solver.Encode(stdout, r, cfg.GetString(config.ConfigFormat)); err != nil {
		if errors.Is(err, solver.ErrUnknownFormat) {
			return argError{err}
		}
		return err
	}
	return nil
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err == nil {
		setupLogging(os.Stderr, cfg.GetBool(config.ConfigDebug))
		err = run(context.Background(), cfg, os.Stdout)
	}
	var ae argError
	switch {
	case err == nil:
	case errors.As(err, &ae):
		fmt.Fprintln(os.Stderr, "Argument error:", ae.err)
		os.Exit(1)
	default:
		log.Error().Err(err).Msg("wordsearch-failed")
		os.Exit(1)
	}
}
