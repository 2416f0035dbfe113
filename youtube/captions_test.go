package youtube

import (
	"context"
	"errors"
	"testing"
)

// fakeFetcher serves canned payloads by URL and records the order of fetches.
type fakeFetcher struct {
	payloads map[string][]byte
	fetched  []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.fetched = append(f.fetched, url)
	payload, ok := f.payloads[url]
	if !ok {
		return nil, errors.New("not found")
	}
	return payload, nil
}

func json3Text(text string) []byte {
	return []byte(`{"events":[{"segs":[{"utf8":"` + text + `"}]}]}`)
}

// TestResolvePrefersRequestedCatalog tests that the requested-subtitles
// catalog wins over manual subtitles for the same language.
func TestResolvePrefersRequestedCatalog(t *testing.T) {
	fetcher := &fakeFetcher{payloads: map[string][]byte{
		"urlA": json3Text("from requested"),
		"urlB": json3Text("from manual"),
	}}
	resolver := NewResolverWithFetcher(fetcher)

	meta := &VideoMetadata{
		ID:                 "vid1",
		RequestedSubtitles: map[string]TrackList{"en": {{URL: "urlA", Ext: "json3"}}},
		Subtitles:          map[string]TrackList{"en": {{URL: "urlB", Ext: "json3"}}},
	}

	text, ok := resolver.Resolve(context.Background(), meta, []string{"en"})
	if !ok {
		t.Fatal("Resolve() ok = false, want true")
	}
	if text != "from requested" {
		t.Errorf("Resolve() = %q, want %q", text, "from requested")
	}
}

// TestResolveLanguagePreferenceBeatsCatalogPriority tests that the first
// preferred language is exhausted across all catalogs before the second
// is considered.
func TestResolveLanguagePreferenceBeatsCatalogPriority(t *testing.T) {
	fetcher := &fakeFetcher{payloads: map[string][]byte{
		"urlES": json3Text("spanish auto"),
		"urlEN": json3Text("english manual"),
	}}
	resolver := NewResolverWithFetcher(fetcher)

	// "es" only exists in the lowest-priority catalog, "en" in a higher one.
	meta := &VideoMetadata{
		ID:                "vid2",
		Subtitles:         map[string]TrackList{"en": {{URL: "urlEN", Ext: "json3"}}},
		AutomaticCaptions: map[string]TrackList{"es": {{URL: "urlES", Ext: "json3"}}},
	}

	text, ok := resolver.Resolve(context.Background(), meta, []string{"es", "en"})
	if !ok {
		t.Fatal("Resolve() ok = false, want true")
	}
	if text != "spanish auto" {
		t.Errorf("Resolve() = %q, want %q", text, "spanish auto")
	}
}

// TestResolveFallsBackToAnyLanguage tests the second phase: when no
// preferred language matches, any track in any catalog is acceptable.
func TestResolveFallsBackToAnyLanguage(t *testing.T) {
	fetcher := &fakeFetcher{payloads: map[string][]byte{
		"urlDE": json3Text("german only"),
	}}
	resolver := NewResolverWithFetcher(fetcher)

	meta := &VideoMetadata{
		ID:        "vid3",
		Subtitles: map[string]TrackList{"de": {{URL: "urlDE", Ext: "json3"}}},
	}

	text, ok := resolver.Resolve(context.Background(), meta, []string{"en", "en-US"})
	if !ok {
		t.Fatal("Resolve() ok = false, want true")
	}
	if text != "german only" {
		t.Errorf("Resolve() = %q, want %q", text, "german only")
	}
}

// TestResolveSkipsFailedTracks tests that a failing or empty track does not
// stop the search from reaching a later working track.
func TestResolveSkipsFailedTracks(t *testing.T) {
	fetcher := &fakeFetcher{payloads: map[string][]byte{
		"urlBad":   []byte(`not json`),
		"urlGood":  json3Text("finally"),
		"urlEmpty": []byte(`{"events":[]}`),
	}}
	resolver := NewResolverWithFetcher(fetcher)

	meta := &VideoMetadata{
		ID: "vid4",
		RequestedSubtitles: map[string]TrackList{
			"en": {
				{URL: "urlMissing", Ext: "json3"},
				{URL: "urlBad", Ext: "json3"},
				{URL: "urlEmpty", Ext: "json3"},
				{URL: "urlGood", Ext: "json3"},
			},
		},
	}

	text, ok := resolver.Resolve(context.Background(), meta, []string{"en"})
	if !ok {
		t.Fatal("Resolve() ok = false, want true")
	}
	if text != "finally" {
		t.Errorf("Resolve() = %q, want %q", text, "finally")
	}
}

// TestResolveNoUsableTracks tests the not-found outcome.
func TestResolveNoUsableTracks(t *testing.T) {
	resolver := NewResolverWithFetcher(&fakeFetcher{payloads: map[string][]byte{}})

	cases := []struct {
		name string
		meta *VideoMetadata
	}{
		{"no catalogs", &VideoMetadata{ID: "vid5"}},
		{"empty track URL", &VideoMetadata{
			ID:        "vid6",
			Subtitles: map[string]TrackList{"en": {{URL: "", Ext: "json3"}}},
		}},
		{"all fetches fail", &VideoMetadata{
			ID:        "vid7",
			Subtitles: map[string]TrackList{"en": {{URL: "urlGone", Ext: "json3"}}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, ok := resolver.Resolve(context.Background(), tc.meta, []string{"en"})
			if ok {
				t.Errorf("Resolve() ok = true, want false (text %q)", text)
			}
		})
	}
}

// TestResolveFallbackOrderIsStable tests that the any-language phase visits
// languages in sorted order so repeated runs pick the same track.
func TestResolveFallbackOrderIsStable(t *testing.T) {
	fetcher := &fakeFetcher{payloads: map[string][]byte{
		"urlDE": json3Text("de"),
		"urlFR": json3Text("fr"),
	}}
	resolver := NewResolverWithFetcher(fetcher)

	meta := &VideoMetadata{
		ID: "vid8",
		Subtitles: map[string]TrackList{
			"fr": {{URL: "urlFR", Ext: "json3"}},
			"de": {{URL: "urlDE", Ext: "json3"}},
		},
	}

	for i := 0; i < 5; i++ {
		text, ok := resolver.Resolve(context.Background(), meta, nil)
		if !ok {
			t.Fatal("Resolve() ok = false, want true")
		}
		if text != "de" {
			t.Errorf("run %d: Resolve() = %q, want %q", i, text, "de")
		}
	}
}
