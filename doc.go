// Package ytscrape exports every upload of a YouTube channel, split into
// Shorts and regular videos.
//
// Overview
//
// A run resolves the channel, walks its uploads playlist through the YouTube
// Data API v3 and writes one set of files per category:
//
//   - shorts.txt and regular_videos.txt: one text block per video
//   - short_videos.xlsx and regular_videos.xlsx: one row per video
//   - manifest.json: run summary (optional, on by default)
//   - a SQLite catalog of every run (optional)
//
// A video is a Short when its duration is at most 60 seconds.
//
// Quick Start
//
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	src, err := youtube.NewAPISource(ctx, cfg.APIKey, slog.Default())
//	if err != nil {
//		log.Fatal(err)
//	}
//	s := ytscrape.New(cfg, src, slog.Default())
//	ch, err := s.Channel(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, err := s.Run(ctx, ch, "exports")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d regular, %d shorts\n", len(res.Collection.Regular), len(res.Collection.Short))
//
// Configuration
//
// Settings load from, in priority order:
//
//  1. Environment variables (highest priority)
//  2. Config file (ytscrape.json or ~/.config/ytscrape/ytscrape.json)
//  3. Default values (lowest priority)
//
// Environment variables:
//
//   - YTSCRAPE_API_KEY: YouTube Data API key (required)
//   - YTSCRAPE_CHANNEL: channel ID, /channel/ URL or @handle (required)
//   - YTSCRAPE_OUTPUT_DIR: output directory; prompts when empty
//   - YTSCRAPE_PAGE_SIZE: playlist page size, 1 to 50
//   - YTSCRAPE_PAGE_DELAY: pause between page fetches (default 1s)
//   - YTSCRAPE_REQUEST_TIMEOUT: per-request timeout (default 30s)
//   - YTSCRAPE_SQLITE_PATH: enables the SQLite catalog
//   - YTSCRAPE_WRITE_MANIFEST: write manifest.json (true/false)
//   - YTSCRAPE_LOG_LEVEL: debug, info, warn or error
//
// Error Handling
//
// A failed API call aborts the run without retry and without writing any
// file. Videos that cannot be turned into a record are skipped and listed in
// Collection.Skipped.
//
//	var walkErr *ytscrape.WalkError
//	if errors.As(err, &walkErr) {
//		fmt.Printf("failed on page %d: %v\n", walkErr.Page, walkErr.Err)
//	}
package ytscrape
