package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/vancezuo/adversary-hangman/internal/config"
	"github.com/vancezuo/adversary-hangman/internal/logging"
	"github.com/vancezuo/adversary-hangman/internal/words"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `help:"Log level (overrides LOG_LEVEL)"`
	Pretty   bool             `help:"Human-readable logs (overrides LOG_PRETTY)"`

	Serve ServeCmd `cmd:"" help:"Run the hangman HTTP server"`
	Play  PlayCmd  `cmd:"" help:"Play hangman in the terminal"`
	Words WordsCmd `cmd:"" help:"Show word-length statistics for a dictionary"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hangman"),
		kong.Description("Hangman with a word source that can fight back"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		ctx.Exit(1)
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.Pretty {
		cfg.Pretty = true
	}
	logging.Setup(cfg.LogLevel, cfg.Pretty)

	err = ctx.Run(cfg)
	ctx.FatalIfErrorf(err)
}

// loadDictionary reads path, or the embedded corpus when path is empty.
func loadDictionary(path string) (*words.Dictionary, error) {
	if path == "" {
		return words.Default()
	}
	return words.LoadFile(path)
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
