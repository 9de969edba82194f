package storage

import (
	"sort"
	"strconv"
	"time"

	"github.com/manav03panchal/studinest/internal/errors"
	"github.com/manav03panchal/studinest/internal/model"
	"github.com/manav03panchal/studinest/internal/validate"
)

// AssignmentRepo provides operations on the assignments slice.
type AssignmentRepo struct {
	slot *Slot[[]model.Assignment]
	now  func() time.Time
}

// NewAssignmentRepo creates a new assignment repository. def is used when
// nothing is stored yet.
func NewAssignmentRepo(store *Store, def []model.Assignment) *AssignmentRepo {
	return &AssignmentRepo{
		slot: NewSlot(store, model.SliceAssignments, def),
		now:  store.now,
	}
}

// List returns all assignments in insertion order.
func (r *AssignmentRepo) List() []model.Assignment {
	return clone(r.slot.Get())
}

// SortedByDue returns all assignments ordered by due date, earliest first.
// Assignments without a usable date come last.
func (r *AssignmentRepo) SortedByDue() []model.Assignment {
	items := r.List()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueDate.Before(items[j].DueDate)
	})
	return items
}

// Upcoming returns unfinished assignments ordered by due date, at most
// limit of them. A limit of zero or less returns all.
func (r *AssignmentRepo) Upcoming(limit int) []model.Assignment {
	var out []model.Assignment
	for _, a := range r.SortedByDue() {
		if a.Done() {
			continue
		}
		out = append(out, a)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Get retrieves an assignment by id.
func (r *AssignmentRepo) Get(id int64) (model.Assignment, error) {
	items := r.slot.Get()
	i := indexOf(items, id)
	if i < 0 {
		return model.Assignment{}, assignmentNotFound(id)
	}
	return items[i], nil
}

// Create validates a and appends it with a fresh id.
func (r *AssignmentRepo) Create(a model.Assignment) (model.Assignment, error) {
	a.Title = validate.SanitizeText(a.Title)
	a.Course = validate.SanitizeText(a.Course)
	a.Notes = validate.SanitizeNote(a.Notes)
	if a.Priority == "" {
		a.Priority = model.PriorityMedium
	}
	if err := validateAssignment(a); err != nil {
		return model.Assignment{}, err
	}

	r.slot.Update(func(items []model.Assignment) []model.Assignment {
		a.ID = nextID(items, r.now())
		return appended(items, a)
	})
	return a, nil
}

// Update merges patch into the assignment with the given id. The id is
// kept. A missing id leaves the list untouched.
func (r *AssignmentRepo) Update(id int64, patch model.AssignmentPatch) (model.Assignment, error) {
	current, err := r.Get(id)
	if err != nil {
		return model.Assignment{}, err
	}

	updated := patch.Apply(current)
	updated.Title = validate.SanitizeText(updated.Title)
	updated.Course = validate.SanitizeText(updated.Course)
	updated.Notes = validate.SanitizeNote(updated.Notes)
	if err := validateAssignment(updated); err != nil {
		return model.Assignment{}, err
	}

	var missing bool
	r.slot.Update(func(items []model.Assignment) []model.Assignment {
		i := indexOf(items, id)
		if i < 0 {
			missing = true
			return items
		}
		return replaceAt(items, i, updated)
	})
	if missing {
		return model.Assignment{}, assignmentNotFound(id)
	}
	return updated, nil
}

// Delete removes the assignment with the given id. A missing id leaves
// the list untouched and performs no write.
func (r *AssignmentRepo) Delete(id int64) error {
	if _, err := r.Get(id); err != nil {
		return err
	}
	r.slot.Update(func(items []model.Assignment) []model.Assignment {
		if i := indexOf(items, id); i >= 0 {
			return removeAt(items, i)
		}
		return items
	})
	return nil
}

// Reload re-reads the slice from the medium.
func (r *AssignmentRepo) Reload() {
	r.slot.Reload()
}

// LastWriteErr reports whether the last change failed to persist.
func (r *AssignmentRepo) LastWriteErr() error {
	return r.slot.LastWriteErr()
}

func validateAssignment(a model.Assignment) error {
	if err := validate.Title("title", a.Title); err != nil {
		return err
	}
	if !a.DueDate.Valid() {
		return errors.NewUserErrorWithField("due date", a.DueDate.Raw,
			"Assignment needs a valid due date",
			"Use a date like 2024-06-01 or +3d").WithCause(errors.ErrInvalidDate)
	}
	if _, err := model.ParsePriority(string(a.Priority)); err != nil {
		return err
	}
	if err := validate.Progress(a.Progress); err != nil {
		return err
	}
	return validate.Note(a.Notes)
}

func assignmentNotFound(id int64) error {
	return errors.NewUserErrorWithField("id", strconv.FormatInt(id, 10),
		"Assignment not found",
		"Run 'studinest assignment list' to see ids").WithCause(errors.ErrAssignmentNotFound)
}
