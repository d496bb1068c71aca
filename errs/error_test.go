package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"reelfinder/errs"
)

func TestError_Error(t *testing.T) {
	err := &errs.Error{Code: errs.EUPSTREAM, Message: "Movie not found!"}

	want := "application error: code=upstream message=Movie not found!"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "blank query", err: errs.Errorf(errs.EINVALID, "Please enter a movie title to search."), expected: errs.EINVALID},
		{name: "catalog said no", err: errs.Errorf(errs.EUPSTREAM, "Too many results."), expected: errs.EUPSTREAM},
		{name: "catalog unreachable", err: errs.Errorf(errs.EUNAVAILABLE, "Failed to search movies. Please try again."), expected: errs.EUNAVAILABLE},
		{name: "unknown title", err: errs.Errorf(errs.ENOTFOUND, "Incorrect IMDb ID."), expected: errs.ENOTFOUND},
		{
			name:     "wrapped",
			err:      fmt.Errorf("details tt0372784: %w", errs.Errorf(errs.ENOTFOUND, "Incorrect IMDb ID.")),
			expected: errs.ENOTFOUND,
		},
		{name: "joined", err: errors.Join(errs.Errorf(errs.EINVALID, "invalid page number")), expected: errs.EINVALID},
		{name: "plain error is internal", err: errors.New("dial tcp: i/o timeout"), expected: errs.EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errs.ErrorCode(tt.err); got != tt.expected {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "upstream message kept verbatim", err: errs.Errorf(errs.EUPSTREAM, "Movie not found!"), expected: "Movie not found!"},
		{
			name:     "wrapped",
			err:      fmt.Errorf("search: %w", errs.Errorf(errs.EUNAVAILABLE, "Failed to search movies. Please try again.")),
			expected: "Failed to search movies. Please try again.",
		},
		{name: "plain error is hidden", err: errors.New("json: cannot unmarshal"), expected: "Internal error."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errs.ErrorMessage(tt.err); got != tt.expected {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorf(t *testing.T) {
	err := errs.Errorf(errs.EINVALID, "page %d is out of range (1-%d)", 12, 10)

	if err.Code != errs.EINVALID {
		t.Errorf("Errorf().Code = %q, want %q", err.Code, errs.EINVALID)
	}
	if want := "page 12 is out of range (1-10)"; err.Message != want {
		t.Errorf("Errorf().Message = %q, want %q", err.Message, want)
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "transport failure", err: errs.Errorf(errs.EUNAVAILABLE, "try again"), expected: true},
		{name: "wrapped transport failure", err: fmt.Errorf("search: %w", errs.Errorf(errs.EUNAVAILABLE, "try again")), expected: true},
		{name: "upstream failure", err: errs.Errorf(errs.EUPSTREAM, "Movie not found!"), expected: false},
		{name: "validation failure", err: errs.Errorf(errs.EINVALID, "blank"), expected: false},
		{name: "plain error", err: errors.New("boom"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errs.Retryable(tt.err); got != tt.expected {
				t.Errorf("Retryable() = %v, want %v", got, tt.expected)
			}
		})
	}
}
