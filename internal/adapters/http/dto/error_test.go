package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asfuyao/outcome"
	"github.com/asfuyao/outcome/internal/adapters/http/dto"
	"github.com/asfuyao/outcome/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{
			name:       "ErrNotFound maps to 404",
			err:        outcome.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
		{
			name:       "validation error maps to 400",
			err:        &domain.ValidationError{Fields: map[string]string{"name": "is required"}},
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
		},
		{
			name:       "ErrInvalidState maps to 503",
			err:        outcome.ErrInvalidState,
			wantStatus: http.StatusServiceUnavailable,
			wantTitle:  "Service Unavailable",
		},
		{
			name:       "ErrDataCorrupt maps to 500",
			err:        outcome.ErrDataCorrupt,
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("oops"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
		},
		{
			name:       "not-found fault preserves mapping",
			err:        outcome.NewFault(outcome.KindNotFound, "customer 42 not found"),
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
		{
			name:       "wrapped fault preserves mapping",
			err:        fmt.Errorf("notifying customer 42: %w", outcome.NewFault(outcome.KindInvalidState, "mail gateway unavailable")),
			wantStatus: http.StatusServiceUnavailable,
			wantTitle:  "Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/customers/42", nil)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}

func TestNewErrorResponse_Fields(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/customers", nil)
	err := outcome.ErrNotFound

	got := dto.NewErrorResponse(r, err)

	if got.Type != "about:blank" {
		t.Errorf("Type = %q, want %q", got.Type, "about:blank")
	}
	if got.Instance != "/api/v1/customers" {
		t.Errorf("Instance = %q, want %q", got.Instance, "/api/v1/customers")
	}
	if got.Detail != err.Error() {
		t.Errorf("Detail = %q, want %q", got.Detail, err.Error())
	}
}

func TestNewErrorResponse_ValidationErrors(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"name":   "is required",
		"email":  "is required",
		"status": "invalid: \"bad\"",
	}}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/customers", nil)
	got := dto.NewErrorResponse(r, verr)

	if len(got.Errors) != 3 {
		t.Fatalf("len(Errors) = %d, want 3", len(got.Errors))
	}

	// Verify sorted by location.
	for i := 1; i < len(got.Errors); i++ {
		if got.Errors[i-1].Location > got.Errors[i].Location {
			t.Errorf("Errors not sorted: %q > %q", got.Errors[i-1].Location, got.Errors[i].Location)
		}
	}

	for _, d := range got.Errors {
		if d.Location == "body.email" && d.Message != "is required" {
			t.Errorf("body.email message = %q, want %q", d.Message, "is required")
		}
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/customers/42", nil)

	dto.WriteErrorResponse(w, r, outcome.NewFault(outcome.KindNotFound, "customer 42 not found"))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if got := w.Header().Get("Content-Type"); got != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", got, "application/problem+json")
	}

	var body dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Status != http.StatusNotFound {
		t.Errorf("body.Status = %d, want %d", body.Status, http.StatusNotFound)
	}
	if body.Detail != "not_found: customer 42 not found" {
		t.Errorf("body.Detail = %q", body.Detail)
	}
}
