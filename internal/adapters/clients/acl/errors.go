// Package acl implements the Anti-Corruption Layer that translates between
// the task API's wire representations and domain types. Resource
// translators live in subpackages (acl/task); shared request handling and
// error mapping live here.
package acl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/tasksync/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// maxPlainDetail bounds how much of a non-JSON body is used as a message.
const maxPlainDetail = 200

// errorBody covers the error shapes the API has been seen to return:
// RFC 7807 problem details (detail, errors[].location/message) and the
// Spring Boot default error body (message, error, errors[].field/defaultMessage).
type errorBody struct {
	Detail  string        `json:"detail"`
	Message string        `json:"message"`
	Error   string        `json:"error"`
	Errors  []errorDetail `json:"errors"`
}

// errorDetail represents a single field-level error.
type errorDetail struct {
	Location       string `json:"location"`
	Field          string `json:"field"`
	Message        string `json:"message"`
	DefaultMessage string `json:"defaultMessage"`
}

// TranslateHTTPError maps a non-2xx response to a domain error.
//
//   - 401, 403 → domain.ErrUnauthenticated
//   - 404 → domain.ErrNotFound
//   - 400, 422 → *domain.ValidationError
//   - anything else → *domain.ServerError
//
// The body is decoded best-effort for a human-readable message; a body that
// cannot be parsed falls back to the status text.
func TranslateHTTPError(resp *http.Response) error {
	body := parseErrorBody(resp)
	detail := body.message(resp.StatusCode)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnauthenticated)

	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if len(body.Errors) > 0 {
			return toValidationError(body.Errors)
		}
		return &domain.ValidationError{Fields: map[string]string{"request": detail}}

	default:
		return &domain.ServerError{Status: resp.StatusCode, Detail: detail}
	}
}

// message picks the most specific message available.
func (b errorBody) message(status int) string {
	for _, s := range []string{b.Detail, b.Message, b.Error} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return http.StatusText(status)
}

// parseErrorBody reads the response body and decodes it as JSON when
// possible. A short plain-text body becomes the message. Returns an empty
// errorBody when nothing usable is found.
func parseErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return errorBody{}
	}

	var eb errorBody
	if raw[0] == '{' {
		if err := json.Unmarshal(raw, &eb); err != nil {
			return errorBody{}
		}
		return eb
	}

	if strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain") && len(raw) <= maxPlainDetail {
		eb.Detail = string(raw)
	}
	return eb
}

// toValidationError converts field error details to a domain ValidationError.
// It strips the "body." prefix from locations to produce clean field names.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := d.Field
		if field == "" {
			field = strings.TrimPrefix(d.Location, "body.")
		}
		if field == "" {
			field = "request"
		}
		msg := d.Message
		if msg == "" {
			msg = d.DefaultMessage
		}
		fields[field] = msg
	}
	return &domain.ValidationError{Fields: fields}
}
