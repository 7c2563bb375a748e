package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/api/option"

	"ytscrape"
	"ytscrape/config"
	ythttp "ytscrape/http"
	"ytscrape/prompt"
	"ytscrape/youtube"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			fmt.Fprintln(os.Stderr, "Cancelled.")
		} else {
			fmt.Fprintln(os.Stderr, prompt.Failure("Error: "+err.Error()))
		}
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("ytscrape", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to a JSON config file (default: ytscrape.json or ~/.config/ytscrape/ytscrape.json)")
	channel := fs.String("channel", "", "Channel ID, /channel/ URL or @handle")
	outputDir := fs.String("dir", "", "Output directory (prompted for when empty)")
	sqlitePath := fs.String("sqlite", "", "Also record the run in this SQLite database")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn or error")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ytscrape - export a YouTube channel's uploads as Shorts and regular videos

Usage:
  ytscrape [flags]

The API key is read from YTSCRAPE_API_KEY or the config file.

Flags:
`)
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	// Load config
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Flags override file and env
	if *channel != "" {
		cfg.Channel = *channel
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *sqlitePath != "" {
		cfg.SQLitePath = *sqlitePath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.ValidateForRun(); err != nil {
		return err
	}

	level, _ := config.ParseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpCfg := ythttp.DefaultConfig()
	httpCfg.Timeout = cfg.RequestTimeout
	httpCfg.APIKey = cfg.APIKey
	httpCfg.Logger = logger

	src, err := youtube.NewAPISource(ctx, cfg.APIKey, logger,
		option.WithHTTPClient(ythttp.New(httpCfg)))
	if err != nil {
		return err
	}

	s := ytscrape.New(cfg, src, logger)

	ch, err := s.Channel(ctx)
	if err != nil {
		return err
	}

	dir := cfg.OutputDir
	if dir == "" {
		dir, err = prompt.AskDirectory(ctx, ch.Title, nil, nil)
		if err != nil {
			return err
		}
	}

	res, err := s.Run(ctx, ch, dir)
	if err != nil {
		return err
	}
	logger.Debug("api quota used", "units", src.QuotaUsed())

	fmt.Println(prompt.Success(fmt.Sprintf("Data for %s was saved successfully!", res.Channel.Title)))
	fmt.Println(prompt.Success(fmt.Sprintf("Found %d Regular videos and %d Shorts!",
		len(res.Collection.Regular), len(res.Collection.Short))))
	return nil
}
