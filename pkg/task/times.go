package task

// Times is a partial overlay of the four user-entered HH:MM timestamps.
// Nil fields are "not edited"; set fields win over the base task at read
// time. The base Task is never mutated in place, which is what makes
// "discard overlay on re-upload" a one-key delete.
type Times struct {
	EstStart *string `json:"estimatedStart,omitempty"`
	EstEnd   *string `json:"estimatedEnd,omitempty"`
	ActStart *string `json:"actualStart,omitempty"`
	ActEnd   *string `json:"actualEnd,omitempty"`
}

// Merge folds a newer partial edit into e, field by field.
func (e *Times) Merge(next Times) {
	if next.EstStart != nil {
		e.EstStart = next.EstStart
	}
	if next.EstEnd != nil {
		e.EstEnd = next.EstEnd
	}
	if next.ActStart != nil {
		e.ActStart = next.ActStart
	}
	if next.ActEnd != nil {
		e.ActEnd = next.ActEnd
	}
}

// Empty reports whether no field is set.
func (e *Times) Empty() bool {
	return e.EstStart == nil && e.EstEnd == nil && e.ActStart == nil && e.ActEnd == nil
}

// Apply overlays the set fields onto t.
func (t *Task) Apply(e Times) {
	if e.EstStart != nil {
		t.EstStart = *e.EstStart
	}
	if e.EstEnd != nil {
		t.EstEnd = *e.EstEnd
	}
	if e.ActStart != nil {
		t.ActStart = *e.ActStart
	}
	if e.ActEnd != nil {
		t.ActEnd = *e.ActEnd
	}
}
