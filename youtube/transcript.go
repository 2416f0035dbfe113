// Package youtube provides video metadata lookup and caption-based
// transcript extraction backed by yt-dlp.
package youtube

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"showlog/config"
	httpclient "showlog/http"
)

// TranscriptResult is the outcome of one video's transcript lookup.
// Exactly one of Text and Error is populated, determined by Success.
type TranscriptResult struct {
	// VideoID is the video this result belongs to.
	VideoID string `json:"video_id"`
	// Success reports whether a transcript was extracted.
	Success bool `json:"success"`
	// Text is the extracted transcript. Set only on success.
	Text string `json:"text,omitempty"`
	// Error is a human-readable failure reason. Set only on failure.
	Error string `json:"error,omitempty"`
}

// MetadataFetcher looks up caption-bearing metadata for one video.
type MetadataFetcher interface {
	Fetch(ctx context.Context, videoID string, languages []string) (*VideoMetadata, error)
}

// Fetcher drives per-video transcript extraction for a batch of videos.
//
// Videos are processed strictly sequentially, one lookup in flight at a
// time. A failure on one video never aborts the rest of the batch: the
// result list always has exactly one entry per input ID, in input order.
type Fetcher struct {
	// Metadata looks up video metadata. Defaults to a yt-dlp backed client.
	Metadata MetadataFetcher

	// Resolver searches caption catalogs for transcript text.
	Resolver *Resolver

	// DefaultLanguages is appended to any caller-provided language list.
	DefaultLanguages []string

	log *logrus.Logger
}

// NewFetcher wires a transcript fetcher from application configuration.
func NewFetcher(cfg *config.Config, log *logrus.Logger) *Fetcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	metadata := NewMetadataClient()
	metadata.Path = cfg.YtdlpPath
	metadata.Timeout = cfg.YtdlpTimeout
	metadata.CookiesFile = cfg.CookiesFile
	metadata.CookiesFromBrowser = cfg.CookiesFromBrowser

	return &Fetcher{
		Metadata:         metadata,
		Resolver:         NewResolver(httpclient.New(nil)),
		DefaultLanguages: cfg.DefaultLanguages,
		log:              log,
	}
}

// FetchAll extracts transcripts for every video ID, in order. The languages
// argument extends the configured default preference list; pass nil to use
// the defaults alone.
func (f *Fetcher) FetchAll(ctx context.Context, videoIDs []string, languages []string) []TranscriptResult {
	preferred := normalizeLanguages(languages, f.DefaultLanguages)

	results := make([]TranscriptResult, 0, len(videoIDs))
	f.log.WithField("count", len(videoIDs)).Info("fetching transcripts")
	for _, videoID := range videoIDs {
		result := f.fetchOne(ctx, videoID, preferred)
		if result.Success {
			f.log.WithField("video_id", videoID).Info("transcript found")
		} else {
			f.log.WithFields(logrus.Fields{
				"video_id": videoID,
				"reason":   result.Error,
			}).Warn("transcript failed")
		}
		results = append(results, result)
	}
	return results
}

// fetchOne performs a single video lookup and classifies the outcome.
// Panics from the metadata or resolver layers are converted into failure
// results so one bad video cannot take down the batch.
func (f *Fetcher) fetchOne(ctx context.Context, videoID string, languages []string) (result TranscriptResult) {
	result = TranscriptResult{VideoID: videoID}
	defer func() {
		if r := recover(); r != nil {
			result.Success = false
			result.Text = ""
			result.Error = fmt.Sprintf("unexpected error: %v", r)
		}
	}()

	meta, err := f.Metadata.Fetch(ctx, videoID, languages)
	if err != nil {
		result.Error = classifyLookupError(err)
		return result
	}
	if meta == nil {
		result.Error = "unable to fetch video metadata"
		return result
	}

	text, ok := f.Resolver.Resolve(ctx, meta, languages)
	if !ok {
		result.Error = "transcript unavailable in requested languages"
		return result
	}

	result.Success = true
	result.Text = text
	return result
}

// classifyLookupError turns a metadata lookup error into a failure reason.
func classifyLookupError(err error) string {
	var dlErr *DownloadError
	switch {
	case errors.Is(err, ErrNoMetadata):
		return "unable to fetch video metadata"
	case errors.Is(err, ErrYtdlpNotInstalled):
		return "yt-dlp not installed"
	case errors.As(err, &dlErr):
		if dlErr.Stderr != "" {
			return "yt-dlp error: " + dlErr.Stderr
		}
		return "yt-dlp error: " + dlErr.Err.Error()
	default:
		return "unexpected error: " + err.Error()
	}
}

// normalizeLanguages merges the caller's language preferences with the
// defaults, deduplicating while preserving first occurrence.
func normalizeLanguages(languages, defaults []string) []string {
	merged := make([]string, 0, len(languages)+len(defaults))
	merged = append(merged, languages...)
	merged = append(merged, defaults...)

	seen := make(map[string]bool, len(merged))
	ordered := make([]string, 0, len(merged))
	for _, lang := range merged {
		if lang == "" || seen[lang] {
			continue
		}
		seen[lang] = true
		ordered = append(ordered, lang)
	}
	return ordered
}
