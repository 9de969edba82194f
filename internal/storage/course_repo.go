package storage

import (
	"strconv"
	"time"

	"github.com/manav03panchal/studinest/internal/errors"
	"github.com/manav03panchal/studinest/internal/model"
	"github.com/manav03panchal/studinest/internal/validate"
)

// CourseRepo provides operations on the courses slice.
type CourseRepo struct {
	slot *Slot[[]model.Course]
	now  func() time.Time
}

// NewCourseRepo creates a new course repository.
func NewCourseRepo(store *Store, def []model.Course) *CourseRepo {
	return &CourseRepo{
		slot: NewSlot(store, model.SliceCourses, def),
		now:  store.now,
	}
}

// List returns all courses in insertion order.
func (r *CourseRepo) List() []model.Course {
	return clone(r.slot.Get())
}

// Get retrieves a course by id.
func (r *CourseRepo) Get(id int64) (model.Course, error) {
	items := r.slot.Get()
	i := indexOf(items, id)
	if i < 0 {
		return model.Course{}, courseNotFound(id)
	}
	return items[i], nil
}

// FindByName returns the first course with the given name.
func (r *CourseRepo) FindByName(name string) (model.Course, bool) {
	for _, c := range r.slot.Get() {
		if c.Name == name {
			return c, true
		}
	}
	return model.Course{}, false
}

// Create validates c and appends it with a fresh id.
func (r *CourseRepo) Create(c model.Course) (model.Course, error) {
	c = sanitizeCourse(c)
	if err := validateCourse(c); err != nil {
		return model.Course{}, err
	}

	r.slot.Update(func(items []model.Course) []model.Course {
		c.ID = nextID(items, r.now())
		return appended(items, c)
	})
	return c, nil
}

// Update merges patch into the course with the given id.
func (r *CourseRepo) Update(id int64, patch model.CoursePatch) (model.Course, error) {
	current, err := r.Get(id)
	if err != nil {
		return model.Course{}, err
	}

	updated := sanitizeCourse(patch.Apply(current))
	if err := validateCourse(updated); err != nil {
		return model.Course{}, err
	}

	var missing bool
	r.slot.Update(func(items []model.Course) []model.Course {
		i := indexOf(items, id)
		if i < 0 {
			missing = true
			return items
		}
		return replaceAt(items, i, updated)
	})
	if missing {
		return model.Course{}, courseNotFound(id)
	}
	return updated, nil
}

// Delete removes the course with the given id. Assignments naming the
// course keep the dangling name.
func (r *CourseRepo) Delete(id int64) error {
	if _, err := r.Get(id); err != nil {
		return err
	}
	r.slot.Update(func(items []model.Course) []model.Course {
		if i := indexOf(items, id); i >= 0 {
			return removeAt(items, i)
		}
		return items
	})
	return nil
}

// Reload re-reads the slice from the medium.
func (r *CourseRepo) Reload() {
	r.slot.Reload()
}

// LastWriteErr reports whether the last change failed to persist.
func (r *CourseRepo) LastWriteErr() error {
	return r.slot.LastWriteErr()
}

func sanitizeCourse(c model.Course) model.Course {
	c.Name = validate.SanitizeText(c.Name)
	c.Code = validate.SanitizeText(c.Code)
	c.Lecturer = validate.SanitizeText(c.Lecturer)
	c.Room = validate.SanitizeText(c.Room)
	c.Notes = validate.SanitizeNote(c.Notes)
	return c
}

func validateCourse(c model.Course) error {
	if err := validate.Title("name", c.Name); err != nil {
		return err
	}
	if err := validate.Credits(c.Credits); err != nil {
		return err
	}
	return validate.Note(c.Notes)
}

func courseNotFound(id int64) error {
	return errors.NewUserErrorWithField("id", strconv.FormatInt(id, 10),
		"Course not found",
		"Run 'studinest course list' to see ids").WithCause(errors.ErrCourseNotFound)
}
