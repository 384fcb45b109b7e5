package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/tasksync/internal/domain"
)

// ProblemContentType is the media type of every error body (RFC 9457).
const ProblemContentType = "application/problem+json"

// ErrorResponse is an RFC 9457 problem document. Errors lists field
// failures for 400 responses, each located as "body.<field>"; the task
// client reads them back into a domain.ValidationError.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field failure.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusFor lists the error kinds clients can act on. Anything else is a
// 500 whose detail is withheld.
var statusFor = []struct {
	kind   error
	status int
}{
	{domain.ErrUnauthenticated, http.StatusUnauthorized},
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// NewErrorResponse describes err for the request r.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := http.StatusInternalServerError
	for _, s := range statusFor {
		if errors.Is(err, s.kind) {
			status = s.status
			break
		}
	}

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	switch status {
	case http.StatusInternalServerError, http.StatusGatewayTimeout:
		// Driver messages and wrapped context errors stay in the logs.
		resp.Detail = resp.Title
	case http.StatusBadRequest:
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			resp.Errors = fieldDetails(verr.Fields)
		}
	}

	return resp
}

// WriteErrorResponse writes err as a problem document with the matching
// status code.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", ProblemContentType)
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "writing problem response", slog.Any("error", encErr))
	}
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	sort.Slice(details, func(i, j int) bool { return details[i].Location < details[j].Location })
	return details
}
