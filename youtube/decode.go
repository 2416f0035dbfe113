package youtube

import (
	"encoding/json"
	"regexp"
	"strings"
)

// json3Payload is YouTube's internal timedtext structure: a list of timed
// events, each carrying zero or more text segments.
type json3Payload struct {
	Events []json3Event `json:"events"`
}

type json3Event struct {
	Segs []json3Segment `json:"segs"`
}

type json3Segment struct {
	UTF8 string `json:"utf8"`
}

var (
	timestampRe = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}[.,]\d{3} --> `)
	cueIndexRe  = regexp.MustCompile(`^\d+$`)
)

// DecodeCaption extracts plain transcript text from a raw caption payload.
// json3 payloads are decoded structurally; any other declared format is
// treated as line-oriented subtitle markup and stripped. An empty string
// means the payload yielded no usable text.
func DecodeCaption(data []byte, format string) string {
	if strings.EqualFold(format, "json3") || format == "" {
		return decodeJSON3(data)
	}
	return stripCaptionMarkup(decodePermissive(data))
}

// decodeJSON3 flattens a json3 payload into space-joined segment text.
// Unparseable payloads yield an empty string.
func decodeJSON3(data []byte) string {
	var payload json3Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}

	var segments []string
	for _, event := range payload.Events {
		for _, seg := range event.Segs {
			chunk := strings.TrimSpace(strings.ReplaceAll(seg.UTF8, "\n", " "))
			if chunk != "" {
				segments = append(segments, chunk)
			}
		}
	}
	return strings.Join(segments, " ")
}

// stripCaptionMarkup removes subtitle-file scaffolding from VTT/SRT-style
// text: headers, comments, timestamp ranges, and bare cue indexes.
func stripCaptionMarkup(raw string) string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if strings.HasPrefix(stripped, "WEBVTT") || strings.HasPrefix(stripped, "NOTE") {
			continue
		}
		if timestampRe.MatchString(stripped) || cueIndexRe.MatchString(stripped) {
			continue
		}
		lines = append(lines, stripped)
	}
	return strings.Join(lines, " ")
}

// decodePermissive interprets bytes as UTF-8, dropping invalid sequences
// rather than failing on them.
func decodePermissive(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}
