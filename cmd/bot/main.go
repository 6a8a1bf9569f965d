package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/wordsearch/bot"
	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/dict"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-arguments")
	}
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Info().Interface("config", cfg.SanitizedSettings()).Msg("loaded-config")

	// Load the default word list up front so a bad path fails at startup
	// instead of on the first request.
	if _, err := dict.Get(cfg, cfg.GetString(config.ConfigWordList)); err != nil {
		log.Fatal().Err(err).Msg("could-not-load-word-list")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return bot.NewBot(cfg).Run(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("got quit signal...")
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("bot-exited")
	}
	log.Info().Msg("server gracefully shutting down")
}
