package showlog

import (
	"showlog/gdoc"
	"showlog/youtube"
)

// Error handling types exported for library users.
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, showlog.ErrNoTranscript) {
//		fmt.Println("no captions for this video")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var dlErr *showlog.DownloadError
//	if errors.As(err, &dlErr) {
//		fmt.Printf("yt-dlp failed for %s: %s\n", dlErr.VideoID, dlErr.Stderr)
//	}

// Type aliases for convenient error handling.
type (
	// DownloadError wraps a yt-dlp metadata lookup failure.
	DownloadError = youtube.DownloadError
	// TranscriptError wraps errors during transcript extraction.
	TranscriptError = youtube.TranscriptError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrNoMetadata indicates video metadata could not be fetched.
	ErrNoMetadata = youtube.ErrNoMetadata
	// ErrNoTranscript indicates no caption track yielded text.
	ErrNoTranscript = youtube.ErrNoTranscript
	// ErrYtdlpNotInstalled indicates the yt-dlp binary was not found.
	ErrYtdlpNotInstalled = youtube.ErrYtdlpNotInstalled
	// ErrDocsAPIDisabled indicates the Docs API is off for the project.
	ErrDocsAPIDisabled = gdoc.ErrDocsAPIDisabled
)
