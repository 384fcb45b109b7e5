package task

import "strings"

// Status represents the completion state of a Task.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusDone    Status = "DONE"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusDone:
		return true
	default:
		return false
	}
}

// Toggle returns the opposite status. Any status other than DONE becomes DONE.
func (s Status) Toggle() Status {
	if s == StatusDone {
		return StatusPending
	}
	return StatusDone
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a wire value to a Status. Matching is
// case-insensitive ("Pending", "done") because older servers stored the
// status as free text. The second return value is false for unknown input.
func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", false
	}
	return s, true
}
