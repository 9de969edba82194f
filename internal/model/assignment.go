package model

// Assignment is a piece of coursework with a due date.
// Course references a Course by name; nothing enforces that it exists.
type Assignment struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Course   string   `json:"course"`
	DueDate  Date     `json:"dueDate"`
	Priority Priority `json:"priority"`
	Progress int      `json:"progress"`
	Notes    string   `json:"notes"`
}

// GetID returns the assignment id.
func (a Assignment) GetID() int64 {
	return a.ID
}

// Done reports whether the assignment is fully complete.
func (a Assignment) Done() bool {
	return a.Progress >= 100
}

// AssignmentPatch carries the fields of an edit. Nil fields are left as-is.
type AssignmentPatch struct {
	Title    *string
	Course   *string
	DueDate  *Date
	Priority *Priority
	Progress *int
	Notes    *string
}

// Apply merges the patch into a copy of a, preserving its id.
func (p AssignmentPatch) Apply(a Assignment) Assignment {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Course != nil {
		a.Course = *p.Course
	}
	if p.DueDate != nil {
		a.DueDate = *p.DueDate
	}
	if p.Priority != nil {
		a.Priority = *p.Priority
	}
	if p.Progress != nil {
		a.Progress = *p.Progress
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	return a
}
