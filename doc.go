// Package showlog builds wrestling show recap documents.
//
// It collects a show's metadata and recap text, extracts YouTube caption
// transcripts for the night's highlight videos, optionally reformats the
// assembled document with an OpenAI model, and publishes the result as a
// Google Doc.
//
// Overview
//
// The work is split across sub-packages:
//
//   - youtube: yt-dlp backed metadata lookup and transcript extraction
//   - aiformat: document chunking and the AI formatting pass
//   - gdoc: document assembly and Google Docs publication
//   - config: configuration management
//
// Quick Start
//
// Extract transcripts for a batch of videos:
//
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fetcher := youtube.NewFetcher(cfg, nil)
//	results := fetcher.FetchAll(ctx, []string{"dQw4w9WgXcQ"}, nil)
//	for _, r := range results {
//		fmt.Println(r.VideoID, r.Success)
//	}
//
// Build and publish a recap document:
//
//	body := gdoc.BuildBody(meta, recapText, personalNotes, results)
//	ts, err := gdoc.Authorize(ctx, cfg.CredentialsFile, cfg.TokenFile)
//	if err != nil {
//		log.Fatal(err)
//	}
//	store, err := gdoc.NewStore(ctx, ts)
//	if err != nil {
//		log.Fatal(err)
//	}
//	docID, err := store.CreateDoc(ctx, meta.DocTitle())
//
// Configuration
//
// showlog loads settings from multiple sources:
//
//   1. Environment variables (highest priority)
//   2. Config file (showlog.json or ~/.config/showlog/showlog.json)
//   3. Default values (lowest priority)
//
// Environment variables:
//
//   - SHOWLOG_YTDLP_PATH: Path to yt-dlp executable
//   - SHOWLOG_YTDLP_TIMEOUT: Timeout for yt-dlp operations
//   - SHOWLOG_LANGUAGES: Comma-separated caption language preference
//   - SHOWLOG_COOKIES_FILE: Cookies file passed to yt-dlp
//   - SHOWLOG_COOKIES_FROM_BROWSER: Browser whose cookies yt-dlp should use
//   - SHOWLOG_MODEL: Completion model for AI formatting
//   - OPENAI_API_KEY: OpenAI API credential
//
// Error Handling
//
// All operations return errors that implement standard Go error handling:
//
//	if errors.Is(err, showlog.ErrYtdlpNotInstalled) {
//		fmt.Println("install yt-dlp first")
//	}
//
//	var dlErr *showlog.DownloadError
//	if errors.As(err, &dlErr) {
//		fmt.Printf("yt-dlp failed for %s: %s\n", dlErr.VideoID, dlErr.Stderr)
//	}
//
// Dependencies
//
// showlog requires yt-dlp to be installed and available in PATH or
// specified via SHOWLOG_YTDLP_PATH.
//
// Install yt-dlp: https://github.com/yt-dlp/yt-dlp
//
package showlog
