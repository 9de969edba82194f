package model

// DefaultCredits is used when a new course does not specify credits.
const DefaultCredits = 3

// Course is a class the student is enrolled in.
type Course struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Lecturer string `json:"lecturer"`
	Room     string `json:"room"`
	Credits  int    `json:"credits"`
	Notes    string `json:"notes"`
}

// GetID returns the course id.
func (c Course) GetID() int64 {
	return c.ID
}

// CoursePatch carries the fields of an edit. Nil fields are left as-is.
type CoursePatch struct {
	Name     *string
	Code     *string
	Lecturer *string
	Room     *string
	Credits  *int
	Notes    *string
}

// Apply merges the patch into a copy of c, preserving its id.
func (p CoursePatch) Apply(c Course) Course {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Code != nil {
		c.Code = *p.Code
	}
	if p.Lecturer != nil {
		c.Lecturer = *p.Lecturer
	}
	if p.Room != nil {
		c.Room = *p.Room
	}
	if p.Credits != nil {
		c.Credits = *p.Credits
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	return c
}
