package youtube

import (
	"context"
	"sort"

	httpclient "showlog/http"
)

// PayloadFetcher downloads the raw payload behind a caption track URL.
type PayloadFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// httpPayloadFetcher fetches caption payloads over HTTP.
type httpPayloadFetcher struct {
	client *httpclient.Client
}

func (f *httpPayloadFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Resolver searches a video's caption catalogs for a usable transcript.
//
// The search runs in two phases. The primary phase walks the language
// preference list, checking every catalog in priority order for each
// language. The fallback phase abandons language preference and tries every
// remaining track in every catalog, so a transcript in an unexpected
// language still beats no transcript at all.
type Resolver struct {
	fetcher PayloadFetcher
}

// NewResolver creates a resolver that downloads caption payloads with the
// given HTTP client.
func NewResolver(client *httpclient.Client) *Resolver {
	return &Resolver{fetcher: &httpPayloadFetcher{client: client}}
}

// NewResolverWithFetcher creates a resolver with a custom payload fetcher.
func NewResolverWithFetcher(fetcher PayloadFetcher) *Resolver {
	return &Resolver{fetcher: fetcher}
}

// Resolve searches the video's catalogs for caption text, preferring the
// given languages. It reports ok=false only when no track anywhere in any
// catalog yields text.
func (r *Resolver) Resolve(ctx context.Context, meta *VideoMetadata, languages []string) (string, bool) {
	catalogs := meta.Catalogs()
	if len(catalogs) == 0 {
		return "", false
	}

	// Primary: language preference dominates catalog priority.
	for _, lang := range languages {
		for _, catalog := range catalogs {
			for _, track := range catalog.Tracks[lang] {
				if text := r.tryTrack(ctx, track); text != "" {
					return text, true
				}
			}
		}
	}

	// Fallback: any remaining track in any catalog, catalog priority first.
	// Languages within a catalog are visited in sorted order so the result
	// is stable across runs.
	for _, catalog := range catalogs {
		for _, lang := range sortedLanguages(catalog.Tracks) {
			for _, track := range catalog.Tracks[lang] {
				if text := r.tryTrack(ctx, track); text != "" {
					return text, true
				}
			}
		}
	}

	return "", false
}

// tryTrack downloads and decodes one caption track. Download and parse
// failures are swallowed: the caller moves on to the next candidate.
func (r *Resolver) tryTrack(ctx context.Context, track CaptionTrack) string {
	if track.URL == "" {
		return ""
	}
	data, err := r.fetcher.Fetch(ctx, track.URL)
	if err != nil {
		return ""
	}
	return DecodeCaption(data, track.Ext)
}

func sortedLanguages(tracks map[string]TrackList) []string {
	langs := make([]string, 0, len(tracks))
	for lang := range tracks {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
