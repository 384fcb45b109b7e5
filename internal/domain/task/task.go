// Package task holds the task record, the draft used to create one, and the
// filter predicate applied to listings.
package task

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/tasksync/internal/domain"
)

// Field limits enforced by the task API.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// Task is a single task record. ID is assigned by the server and never
// changes after creation.
type Task struct {
	ID          int64
	Title       string
	Description string
	Category    string
	Status      Status
}

// Toggled returns a copy of the task with its status flipped
// (PENDING <-> DONE). The receiver is not modified.
func (t Task) Toggled() Task {
	t.Status = t.Status.Toggle()
	return t
}

// Validate checks business rules for a full task record.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Task) Validate() error {
	fields := validateText(t.Title, t.Description)
	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Draft carries the user-entered fields for a task that does not exist yet.
type Draft struct {
	Title       string
	Description string
	Category    string
	Status      Status
}

// IsZero reports whether every field of the draft is empty.
func (d Draft) IsZero() bool {
	return d == Draft{}
}

// Normalize trims surrounding whitespace and defaults the status to PENDING.
func (d Draft) Normalize() Draft {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.Category = strings.TrimSpace(d.Category)
	if d.Status == "" {
		d.Status = StatusPending
	}
	return d
}

// Validate checks the draft before it is sent anywhere. A blank title is
// the only client-side rule callers rely on; the length limits mirror what
// the server enforces.
func (d *Draft) Validate() error {
	fields := validateText(d.Title, d.Description)
	if d.Status != "" && !d.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", d.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func validateText(title, description string) map[string]string {
	fields := make(map[string]string)

	switch {
	case strings.TrimSpace(title) == "":
		fields["title"] = domain.MsgRequired
	case utf8.RuneCountInString(title) > MaxTitleLength:
		fields["title"] = fmt.Sprintf("must be at most %d characters", MaxTitleLength)
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		fields["description"] = fmt.Sprintf("must be at most %d characters", MaxDescriptionLength)
	}

	return fields
}
