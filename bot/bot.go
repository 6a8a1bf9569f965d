// Package bot serves board solves over NATS. A request is a JSON document
// naming a board; the reply carries the words found on it.
package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/dict"
	"github.com/domino14/wordsearch/solver"
)

const connectAttempts = 5

var (
	errBadWordListName = errors.New("word list must be a bare file name")
	errNoWordListDir   = errors.New("this bot does not serve named word lists")
)

type Request struct {
	Board string `json:"board"`
	// WordList names a file in the bot's word-list-dir. Empty means the
	// list the bot was configured with.
	WordList string `json:"word_list,omitempty"`
	// Unset options fall back to the bot's config.
	MinLength *int   `json:"min_length,omitempty"`
	Unique    *bool  `json:"unique,omitempty"`
	Sort      string `json:"sort,omitempty"`
}

type Response struct {
	Board       string   `json:"board,omitempty"`
	Words       []string `json:"words"`
	Score       int      `json:"score"`
	Fingerprint string   `json:"fingerprint,omitempty"`
	Error       string   `json:"error,omitempty"`
}

type Bot struct {
	config *config.Config
}

func NewBot(cfg *config.Config) *Bot {
	return &Bot{config: cfg}
}

func errorResponse(message string, err error) *Response {
	msg := message
	if err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.Error())
	}
	return &Response{Words: []string{}, Error: msg}
}

func (bot *Bot) options(req *Request) solver.Options {
	opts := solver.OptionsFromConfig(bot.config)
	if req.MinLength != nil {
		opts.MinLength = *req.MinLength
	}
	if req.Unique != nil {
		opts.Unique = *req.Unique
	}
	if req.Sort != "" {
		opts.Sort = req.Sort
	}
	return opts
}

// wordListPath turns a requested list name into a path inside the
// configured word list directory.
func (bot *Bot) wordListPath(name string) (string, error) {
	if name == "" {
		return bot.config.GetString(config.ConfigWordList), nil
	}
	if name != filepath.Base(name) || strings.ContainsAny(name, `/\`) ||
		strings.Contains(name, "..") {
		return "", fmt.Errorf("%w: %q", errBadWordListName, name)
	}
	dir := bot.config.GetString(config.ConfigWordListDir)
	if dir == "" {
		return "", errNoWordListDir
	}
	return filepath.Join(dir, name), nil
}

// Solve answers a single request. Failures are reported in the response
// rather than returned.
func (bot *Bot) Solve(req *Request) *Response {
	path, err := bot.wordListPath(req.WordList)
	if err != nil {
		return errorResponse("Could not load word list", err)
	}
	d, err := dict.Get(bot.config, path)
	if err != nil {
		return errorResponse("Could not load word list", err)
	}
	r, err := solver.SolveString(req.Board, d, bot.options(req))
	if err != nil {
		return errorResponse("Could not solve board", err)
	}
	return &Response{
		Board:       r.Board,
		Words:       r.Words(),
		Score:       r.Summary.TotalScore,
		Fingerprint: fmt.Sprintf("%016x", d.Fingerprint()),
	}
}

// Handle decodes a JSON request and returns the encoded response.
func (bot *Bot) Handle(data []byte) []byte {
	var resp *Response
	req := &Request{}
	if err := json.Unmarshal(data, req); err != nil {
		resp = errorResponse("Could not parse request", err)
	} else {
		resp = bot.Solve(req)
	}
	out, err := json.Marshal(resp)
	if err != nil {
		// A Response always marshals; keep the reply well-formed anyway.
		return []byte(`{"words":[],"score":0,"error":"could not encode response"}`)
	}
	return out
}

// Connect dials the configured NATS server, backing off between attempts.
func Connect(ctx context.Context, cfg *config.Config) (*nats.Conn, error) {
	url := cfg.GetString(config.ConfigNatsURL)
	return retry.DoWithData(
		func() (*nats.Conn, error) {
			return nats.Connect(url, nats.Name("wordsearch"))
		},
		retry.Context(ctx),
		retry.Attempts(connectAttempts),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			log.Err(err).Uint("n", n).Str("url", url).
				Msg("nats-connect-failed-try-again")
			return retry.BackOffDelay(n, err, config)
		}),
	)
}

// Run answers requests on the configured subject until ctx is done, then
// drains the connection.
func (bot *Bot) Run(ctx context.Context) error {
	nc, err := Connect(ctx, bot.config)
	if err != nil {
		return err
	}
	subject := bot.config.GetString(config.ConfigNatsSubject)
	_, err = nc.Subscribe(subject, func(m *nats.Msg) {
		log.Debug().Int("bytes", len(m.Data)).Msg("recv")
		if err := m.Respond(bot.Handle(m.Data)); err != nil {
			log.Err(err).Msg("respond-failed")
		}
	})
	if err != nil {
		nc.Close()
		return err
	}
	if err := nc.Flush(); err != nil {
		nc.Close()
		return err
	}
	if err := nc.LastError(); err != nil {
		nc.Close()
		return err
	}
	log.Info().Str("subject", subject).Msg("listening")

	<-ctx.Done()
	log.Info().Msg("draining")
	return nc.Drain()
}
