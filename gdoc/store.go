package gdoc

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const docMimeType = "application/vnd.google-apps.document"

// ErrDocsAPIDisabled reports that the Docs API is turned off for the
// OAuth client's cloud project.
var ErrDocsAPIDisabled = errors.New(
	"Google Docs API is disabled for this project; enable it at " +
		"https://console.developers.google.com/apis/api/docs.googleapis.com and retry")

// Store publishes recap documents through the Drive and Docs APIs.
type Store struct {
	drive *drive.Service
	docs  *docs.Service
}

// NewStore builds Drive and Docs services from an authorized token source.
func NewStore(ctx context.Context, ts oauth2.TokenSource) (*Store, error) {
	driveService, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, errors.Wrap(err, "create drive service")
	}
	docsService, err := docs.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, errors.Wrap(err, "create docs service")
	}
	return &Store{drive: driveService, docs: docsService}, nil
}

// CreateDoc creates an empty Google Doc with the given title and returns
// its file ID. Creation goes through Drive so the document lands in the
// user's own storage under the drive.file scope.
func (s *Store) CreateDoc(ctx context.Context, title string) (string, error) {
	file, err := s.drive.Files.Create(&drive.File{
		Name:     title,
		MimeType: docMimeType,
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", errors.Wrap(err, "unable to create Google Doc")
	}
	return file.Id, nil
}

// WriteContent appends the full document body to an existing doc with a
// single batch insert at the end of the body segment.
func (s *Store) WriteContent(ctx context.Context, docID, content string) error {
	_, err := s.docs.Documents.BatchUpdate(docID, &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{
			{
				InsertText: &docs.InsertTextRequest{
					EndOfSegmentLocation: &docs.EndOfSegmentLocation{},
					Text:                 content,
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		if errorReason(err) == "SERVICE_DISABLED" {
			return ErrDocsAPIDisabled
		}
		return errors.Wrap(err, "unable to write Google Doc content")
	}
	return nil
}

// DeleteDoc removes a document, used to clean up a placeholder whose
// content write failed.
func (s *Store) DeleteDoc(ctx context.Context, docID string) error {
	return s.drive.Files.Delete(docID).Context(ctx).Do()
}

// DocURL returns the browser URL for a document ID.
func DocURL(docID string) string {
	return "https://docs.google.com/document/d/" + docID + "/edit"
}

// errorReason digs the machine-readable reason out of a Google API error.
// Reasons live in the error details list; the top-level status is the
// fallback.
func errorReason(err error) string {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return ""
	}
	for _, detail := range apiErr.Details {
		raw, marshalErr := json.Marshal(detail)
		if marshalErr != nil {
			continue
		}
		var parsed struct {
			Reason   string `json:"reason"`
			Metadata struct {
				Reason string `json:"reason"`
			} `json:"metadata"`
		}
		if json.Unmarshal(raw, &parsed) != nil {
			continue
		}
		if parsed.Reason != "" {
			return parsed.Reason
		}
		if parsed.Metadata.Reason != "" {
			return parsed.Metadata.Reason
		}
	}
	return apiErr.Status
}
