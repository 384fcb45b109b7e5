// Package query models the view query state (filter plus pagination cursor)
// and the page result returned for it.
package query

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/domain/task"
)

// DefaultPageSize matches the page size the task API uses when none is sent.
const DefaultPageSize = 5

// State is the user-controlled filter and pagination cursor currently in
// effect. It is a value type; the With* methods return modified copies.
type State struct {
	Filter task.Filter
	Page   int
	Size   int
}

// New returns a State on page 0 with no filter. A non-positive size falls
// back to DefaultPageSize.
func New(size int) State {
	if size <= 0 {
		size = DefaultPageSize
	}
	return State{Size: size}
}

// WithFilter replaces the filter and resets the page to 0: page numbers from
// the old filter set mean nothing under the new one.
func (s State) WithFilter(f task.Filter) State {
	s.Filter = f
	s.Page = 0
	return s
}

// WithPage moves the cursor. Filters are left untouched.
func (s State) WithPage(page int) State {
	s.Page = page
	return s
}

// Clamp pulls the page back inside [0, max(totalPages, 1)).
func (s State) Clamp(totalPages int) State {
	last := max(totalPages, 1) - 1
	if s.Page > last {
		s.Page = last
	}
	if s.Page < 0 {
		s.Page = 0
	}
	return s
}

// InRange reports whether page is a valid index given the last known total.
func InRange(page, totalPages int) bool {
	return page >= 0 && page < max(totalPages, 1)
}

// Validate checks the structural invariants of the state.
func (s State) Validate() error {
	fields := make(map[string]string)

	if s.Page < 0 {
		fields["page"] = fmt.Sprintf("must be >= 0, got %d", s.Page)
	}
	if s.Size <= 0 {
		fields["size"] = fmt.Sprintf("must be positive, got %d", s.Size)
	}
	if s.Filter.Status != "" && !s.Filter.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", s.Filter.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Values renders the state as list query parameters. Unset filter
// dimensions are omitted.
func (s State) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(s.Page))
	v.Set("size", strconv.Itoa(s.Size))
	if s.Filter.Status != "" {
		v.Set("status", s.Filter.Status.String())
	}
	if s.Filter.Category != "" {
		v.Set("category", s.Filter.Category)
	}
	return v
}

// Page is one page of tasks in server order plus the total page count for
// the query that produced it.
type Page struct {
	Tasks      []task.Task
	TotalPages int
}

// TotalPagesFor computes the page count for total matching records.
func TotalPagesFor(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Clone returns a copy whose task slice does not alias the receiver's.
func (p Page) Clone() Page {
	if p.Tasks == nil {
		return p
	}
	tasks := make([]task.Task, len(p.Tasks))
	copy(tasks, p.Tasks)
	return Page{Tasks: tasks, TotalPages: p.TotalPages}
}

// Index returns the position of the task with the given ID, or -1.
func (p Page) Index(id int64) int {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}
