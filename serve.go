package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/vancezuo/adversary-hangman/internal/config"
	"github.com/vancezuo/adversary-hangman/internal/httpserver"
	"github.com/vancezuo/adversary-hangman/internal/randutil"
	"github.com/vancezuo/adversary-hangman/internal/store"
)

// ServeCmd runs the HTTP API. Unset flags fall back to the environment.
type ServeCmd struct {
	Port  string `short:"p" help:"Listen port (overrides PORT)"`
	Words string `short:"w" type:"path" help:"Word list file (overrides WORDS_FILE)"`
	Seed  *int64 `help:"Deterministic RNG seed (overrides SEED)"`
}

func (c *ServeCmd) Run(cfg *config.Config) error {
	dict, err := loadDictionary(firstNonEmpty(c.Words, cfg.WordsFile))
	if err != nil {
		return err
	}
	log.Info().
		Int("words", dict.TotalWordCount()).
		Int("min_length", dict.MinLength()).
		Int("max_length", dict.MaxLength()).
		Msg("dictionary loaded")

	seed := randutil.NewSeed()
	switch {
	case c.Seed != nil:
		seed = *c.Seed
	case cfg.Seed != nil:
		seed = *cfg.Seed
	}
	log.Info().Int64("seed", seed).Msg("master seed")

	mem := store.NewMemoryStore(cfg.SessionTTL, store.WithLogger(log.Logger))
	srv := httpserver.New(mem, dict, randutil.New(seed), httpserver.Options{
		DefaultMode:   cfg.Mode(),
		DefaultLength: cfg.DefaultLength,
		DefaultLives:  cfg.DefaultLives,
		MaxLives:      cfg.MaxLives,
		RandomLength:  cfg.RandomLength,
		DailySalt:     cfg.DailySalt,
		ClientOrigin:  cfg.ClientOrigin,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	port := firstNonEmpty(c.Port, cfg.Port)
	g.Go(func() error {
		log.Info().Str("port", port).Str("mode", string(cfg.Mode())).Msg("starting hangman server")
		if err := srv.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return mem.Run(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
