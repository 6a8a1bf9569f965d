package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsearch/bot"
	"github.com/domino14/wordsearch/config"
)

var cfg *config.Config

type LambdaEvent struct {
	Board string `json:"board"`
	// Optional overrides; see bot.Request.
	MinLength *int   `json:"min_length,omitempty"`
	Unique    *bool  `json:"unique,omitempty"`
	Sort      string `json:"sort,omitempty"`
}

func HandleRequest(ctx context.Context, evt LambdaEvent) (*bot.Response, error) {
	logger := zerolog.Ctx(ctx).With().Str("board", evt.Board).Logger()

	resp := bot.NewBot(cfg).Solve(&bot.Request{
		Board:     evt.Board,
		MinLength: evt.MinLength,
		Unique:    evt.Unique,
		Sort:      evt.Sort,
	})
	if resp.Error != "" {
		logger.Info().Str("error", resp.Error).Msg("solve-failed")
	} else {
		logger.Info().Int("num-words", len(resp.Words)).Int("score", resp.Score).Msg("solved")
	}
	return resp, nil
}

func main() {
	cfg = &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-arguments")
	}
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	zerolog.DefaultContextLogger = &log.Logger
	log.Info().Interface("config", cfg.SanitizedSettings()).Msg("loaded-config")

	lambda.Start(HandleRequest)
}
