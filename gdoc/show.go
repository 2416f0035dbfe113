// Package gdoc builds recap documents and publishes them to Google Docs.
package gdoc

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// ShowMetadata identifies one wrestling show episode.
type ShowMetadata struct {
	// EventDate is the air date in YYYY-MM-DD form.
	EventDate string `json:"event_date"`
	// Promotion is the promotion name, e.g. "WWE".
	Promotion string `json:"promotion"`
	// ShowName is the show name, e.g. "RAW".
	ShowName string `json:"show_name"`
	// ShowType is "TV" or "PPV". Empty means TV.
	ShowType string `json:"show_type"`
}

// DocTitle derives the document title from the show identity:
// DATE_PROMOTION_TYPE_SHOW, uppercased with interior whitespace collapsed
// to underscores. Blank fields fall back to placeholder tokens so the
// title always has all four parts.
func (m ShowMetadata) DocTitle() string {
	promo := slugify(m.Promotion, "PROMO")
	show := slugify(m.ShowName, "SHOW")
	showType := "TV"
	if m.ShowType != "" {
		showType = slugify(m.ShowType, "TV")
	}
	return m.EventDate + "_" + promo + "_" + showType + "_" + show
}

func slugify(s, fallback string) string {
	s = whitespaceRe.ReplaceAllString(strings.ToUpper(strings.TrimSpace(s)), "_")
	if s == "" {
		return fallback
	}
	return s
}
