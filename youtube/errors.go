package youtube

import "errors"

// Sentinel errors for transcript extraction.
var (
	ErrNoMetadata        = errors.New("youtube: unable to fetch video metadata")
	ErrNoTranscript      = errors.New("youtube: transcript unavailable in requested languages")
	ErrYtdlpNotInstalled = errors.New("youtube: yt-dlp not installed")
)

// DownloadError wraps a yt-dlp failure with the provider-supplied message.
// Use errors.As() to extract this error type and get operation details:
//
//	var dlErr *youtube.DownloadError
//	if errors.As(err, &dlErr) {
//		fmt.Printf("yt-dlp failed for %s: %s\n", dlErr.VideoID, dlErr.Stderr)
//	}
type DownloadError struct {
	// VideoID is the video that was being looked up.
	VideoID string
	// Stderr is yt-dlp's error output, when available.
	Stderr string
	// Err is the underlying error that occurred.
	Err error
}

// Error returns a string representation of the download error.
func (e *DownloadError) Error() string {
	if e.Stderr != "" {
		return "youtube: yt-dlp " + e.VideoID + ": " + e.Stderr
	}
	return "youtube: yt-dlp " + e.VideoID + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *DownloadError) Unwrap() error { return e.Err }

// TranscriptError wraps transcript extraction errors with the video that failed.
type TranscriptError struct {
	// VideoID is the video whose transcript could not be extracted.
	VideoID string
	// Err is the underlying error that occurred.
	Err error
}

// Error returns a string representation of the transcript error.
func (e *TranscriptError) Error() string {
	return "youtube: transcript " + e.VideoID + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *TranscriptError) Unwrap() error { return e.Err }
