package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const (
	defaultYtdlpPath    = "yt-dlp"
	defaultYtdlpTimeout = 5 * time.Minute
)

// CaptionTrack describes a single retrievable caption track.
type CaptionTrack struct {
	// URL is the download location for the caption payload.
	URL string `json:"url"`
	// Ext is the declared payload format ("json3", "vtt", "srt", ...).
	Ext string `json:"ext"`
	// Name is the human-readable track name, when YouTube provides one.
	Name string `json:"name,omitempty"`
}

// TrackList holds the caption tracks available for one language.
// yt-dlp emits either a single track object or an array depending on
// the catalog, so unmarshalling accepts both shapes.
type TrackList []CaptionTrack

// UnmarshalJSON accepts both a single track object and an array of tracks.
func (t *TrackList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*t = nil
		return nil
	}

	if trimmed[0] == '[' {
		var tracks []CaptionTrack
		if err := json.Unmarshal(trimmed, &tracks); err != nil {
			return err
		}
		*t = tracks
		return nil
	}

	var single CaptionTrack
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return err
	}
	*t = TrackList{single}
	return nil
}

// Catalog is a named collection of caption tracks for one video, keyed by language.
type Catalog struct {
	// Name identifies the catalog ("requested", "manual", "automatic").
	Name string
	// Tracks maps language code to the tracks available in that language.
	Tracks map[string]TrackList
}

// VideoMetadata is the caption-relevant slice of yt-dlp's JSON output for one video.
type VideoMetadata struct {
	// ID is the YouTube video ID (e.g., "dQw4w9WgXcQ").
	ID string `json:"id"`
	// Title is the video title.
	Title string `json:"title"`
	// Duration is the video length in seconds.
	Duration float64 `json:"duration"`
	// Uploader is the channel name/display name.
	Uploader string `json:"uploader"`

	// RequestedSubtitles are the tracks yt-dlp selected for the requested languages.
	RequestedSubtitles map[string]TrackList `json:"requested_subtitles"`
	// Subtitles are manually authored caption tracks.
	Subtitles map[string]TrackList `json:"subtitles"`
	// AutomaticCaptions are auto-generated caption tracks.
	AutomaticCaptions map[string]TrackList `json:"automatic_captions"`

	// FetchedAt is the timestamp when this metadata was retrieved.
	FetchedAt time.Time `json:"fetched_at"`
}

// Catalogs returns the video's caption catalogs in priority order:
// requested subtitles, then manual subtitles, then automatic captions.
// Absent or empty catalogs are skipped entirely.
func (m *VideoMetadata) Catalogs() []Catalog {
	var catalogs []Catalog
	if len(m.RequestedSubtitles) > 0 {
		catalogs = append(catalogs, Catalog{Name: "requested", Tracks: m.RequestedSubtitles})
	}
	if len(m.Subtitles) > 0 {
		catalogs = append(catalogs, Catalog{Name: "manual", Tracks: m.Subtitles})
	}
	if len(m.AutomaticCaptions) > 0 {
		catalogs = append(catalogs, Catalog{Name: "automatic", Tracks: m.AutomaticCaptions})
	}
	return catalogs
}

// MetadataClient fetches video metadata, including caption catalogs, using yt-dlp.
type MetadataClient struct {
	// Path is the path to the yt-dlp executable. Defaults to "yt-dlp".
	Path string

	// Timeout is the maximum time to wait for yt-dlp. Defaults to 5 minutes.
	Timeout time.Duration

	// CookiesFile is passed to yt-dlp as --cookies when set.
	// Takes precedence over CookiesFromBrowser.
	CookiesFile string

	// CookiesFromBrowser is passed to yt-dlp as --cookies-from-browser when set.
	CookiesFromBrowser string
}

// NewMetadataClient creates a metadata client with default settings.
func NewMetadataClient() *MetadataClient {
	return &MetadataClient{
		Path:    defaultYtdlpPath,
		Timeout: defaultYtdlpTimeout,
	}
}

// Fetch retrieves metadata for a video, asking yt-dlp to surface caption
// tracks for the given languages in json3 format. No media is downloaded.
func (mc *MetadataClient) Fetch(ctx context.Context, videoID string, languages []string) (*VideoMetadata, error) {
	if videoID == "" {
		return nil, fmt.Errorf("video ID is required")
	}

	args := []string{
		"-J",
		"--no-warnings",
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-format", "json3",
	}
	if len(languages) > 0 {
		args = append(args, "--sub-langs", strings.Join(languages, ","))
	}
	if mc.CookiesFile != "" {
		args = append(args, "--cookies", mc.CookiesFile)
	} else if mc.CookiesFromBrowser != "" {
		args = append(args, "--cookies-from-browser", mc.CookiesFromBrowser)
	}
	args = append(args, "https://www.youtube.com/watch?v="+videoID)

	timeout := mc.Timeout
	if timeout == 0 {
		timeout = defaultYtdlpTimeout
	}
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, mc.path(), args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if execErr, ok := err.(*exec.Error); ok && execErr.Err == exec.ErrNotFound {
			return nil, ErrYtdlpNotInstalled
		}
		return nil, &DownloadError{
			VideoID: videoID,
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}

	var metadata VideoMetadata
	if err := json.Unmarshal(stdout.Bytes(), &metadata); err != nil {
		return nil, fmt.Errorf("parse metadata JSON: %w", err)
	}
	if metadata.ID == "" {
		return nil, ErrNoMetadata
	}
	metadata.FetchedAt = time.Now().UTC()

	return &metadata, nil
}

func (mc *MetadataClient) path() string {
	if mc.Path != "" {
		return mc.Path
	}
	return defaultYtdlpPath
}
