package gdoc

import (
	"errors"
	"testing"

	"google.golang.org/api/googleapi"
)

var errPlain = errors.New("plain failure")

// TestErrorReasonFromDetails tests extraction of the machine-readable
// reason from an API error's details list.
func TestErrorReasonFromDetails(t *testing.T) {
	err := &googleapi.Error{
		Code:   403,
		Status: "PERMISSION_DENIED",
		Details: []interface{}{
			map[string]interface{}{
				"@type":  "type.googleapis.com/google.rpc.ErrorInfo",
				"reason": "SERVICE_DISABLED",
			},
		},
	}

	if got := errorReason(err); got != "SERVICE_DISABLED" {
		t.Errorf("errorReason() = %q, want %q", got, "SERVICE_DISABLED")
	}
}

// TestErrorReasonFromMetadata tests the nested metadata fallback shape.
func TestErrorReasonFromMetadata(t *testing.T) {
	err := &googleapi.Error{
		Code: 403,
		Details: []interface{}{
			map[string]interface{}{
				"metadata": map[string]interface{}{"reason": "SERVICE_DISABLED"},
			},
		},
	}

	if got := errorReason(err); got != "SERVICE_DISABLED" {
		t.Errorf("errorReason() = %q, want %q", got, "SERVICE_DISABLED")
	}
}

// TestErrorReasonFallsBackToStatus tests the top-level status fallback when
// no detail carries a reason.
func TestErrorReasonFallsBackToStatus(t *testing.T) {
	err := &googleapi.Error{Code: 403, Status: "PERMISSION_DENIED"}

	if got := errorReason(err); got != "PERMISSION_DENIED" {
		t.Errorf("errorReason() = %q, want %q", got, "PERMISSION_DENIED")
	}
}

// TestErrorReasonNonAPIError tests that ordinary errors yield no reason.
func TestErrorReasonNonAPIError(t *testing.T) {
	if got := errorReason(errPlain); got != "" {
		t.Errorf("errorReason() = %q, want empty", got)
	}
}

// TestDocURL tests the browser URL for a document ID.
func TestDocURL(t *testing.T) {
	want := "https://docs.google.com/document/d/abc123/edit"
	if got := DocURL("abc123"); got != want {
		t.Errorf("DocURL() = %q, want %q", got, want)
	}
}
