package mailgw

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/asfuyao/outcome"
	"github.com/asfuyao/outcome/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// problemDetail represents an RFC 9457 Problem Details response from the
// gateway.
type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

// errorDetail represents a single field-level error within a Problem Details
// response.
type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a gateway error response onto the fault taxonomy.
// It parses the response body as Problem Details when the content type is
// application/problem+json, using the detail field for fault messages.
//
// Mapping:
//   - 400/422 with field errors: *domain.ValidationError
//   - 400/422 otherwise: invalid-argument fault
//   - 404: not-found fault (unknown recipient address)
//   - 5xx and everything else: invalid-state fault (gateway cannot take
//     the message right now)
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return outcome.NewFault(outcome.KindInvalidArgument,
			fmt.Sprintf("mail gateway rejected payload: %s", detail))

	case resp.StatusCode == http.StatusNotFound:
		return outcome.NewFault(outcome.KindNotFound,
			fmt.Sprintf("mail gateway: %s", detail))

	case resp.StatusCode >= http.StatusInternalServerError:
		return outcome.NewFault(outcome.KindInvalidState,
			fmt.Sprintf("mail gateway unavailable: %s", detail))

	default:
		return outcome.NewFault(outcome.KindInvalidState,
			fmt.Sprintf("mail gateway: unexpected status %d: %s", resp.StatusCode, detail))
	}
}

// parseProblemDetail attempts to read and parse a Problem Details body from
// the response. Returns an empty problemDetail if parsing fails.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError converts Problem Details field errors to a
// ValidationError. It strips the "body." prefix from locations to produce
// clean field names.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "body.")
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
