package viewsync

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/domain/task"
)

// State is the synchronization state shown to the user.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateError   State = "error"
)

// Status is the current synchronization status. Err keeps the typed error
// of the last failure so callers can test it with errors.Is; Message is the
// text meant for the user.
type Status struct {
	State   State
	Err     error
	Message string
}

// Snapshot is a copy of everything the presentation needs to render the
// view. Listeners receive snapshots by value; mutating one has no effect on
// the controller.
type Snapshot struct {
	// Version increases with every change. Presentations may drop a
	// snapshot whose version is not newer than the last one rendered.
	Version uint64

	Tasks      []task.Task
	Page       int
	TotalPages int
	PageSize   int
	Filter     task.Filter

	Loading bool
	Error   string
	Status  Status

	Draft task.Draft
}

// Listener receives a snapshot after every change. Listeners are called
// one at a time and must not call back into the controller synchronously.
type Listener func(Snapshot)

// userMessage renders err for display.
func userMessage(err error) string {
	switch domain.KindOf(err) {
	case domain.KindUnauthenticated:
		return "Your session has expired. Please sign in again."
	case domain.KindNetwork:
		return "Cannot reach the task server. Check your connection and try again."
	case domain.KindNotFound:
		return "That task no longer exists."
	case domain.KindDecode:
		return "The task server sent a response that could not be read."
	case domain.KindValidation:
		return validationMessage(err)
	case domain.KindServer:
		var serr *domain.ServerError
		if errors.As(err, &serr) && serr.Detail != "" {
			return fmt.Sprintf("The task server failed (%d): %s", serr.Status, serr.Detail)
		}
		return "The task server failed to process the request."
	default:
		return err.Error()
	}
}

func validationMessage(err error) string {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || len(verr.Fields) == 0 {
		return "The request was rejected as invalid."
	}

	fields := make([]string, 0, len(verr.Fields))
	for f := range verr.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "request" {
			parts = append(parts, verr.Fields[f])
			continue
		}
		parts = append(parts, capitalize(f)+" "+verr.Fields[f])
	}
	return strings.Join(parts, "; ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
