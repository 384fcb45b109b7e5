package task

// Filter holds optional filter criteria for listing tasks.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Status   Status
	Category string
}

// IsZero reports whether no filter dimension is set.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Matches reports whether t satisfies every set dimension of the filter.
func (f Filter) Matches(t Task) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	return true
}
