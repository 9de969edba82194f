package storage

import (
	"strconv"
	"time"

	"github.com/manav03panchal/studinest/internal/errors"
	"github.com/manav03panchal/studinest/internal/model"
	"github.com/manav03panchal/studinest/internal/validate"
)

// DailyTaskRepo provides operations on the daily tasks slice.
type DailyTaskRepo struct {
	slot *Slot[[]model.DailyTask]
	now  func() time.Time
}

// NewDailyTaskRepo creates a new daily task repository.
func NewDailyTaskRepo(store *Store, def []model.DailyTask) *DailyTaskRepo {
	return &DailyTaskRepo{
		slot: NewSlot(store, model.SliceDailyTasks, def),
		now:  store.now,
	}
}

// List returns all tasks in insertion order.
func (r *DailyTaskRepo) List() []model.DailyTask {
	return clone(r.slot.Get())
}

// Remaining counts tasks not yet completed.
func (r *DailyTaskRepo) Remaining() int {
	n := 0
	for _, t := range r.slot.Get() {
		if !t.Completed {
			n++
		}
	}
	return n
}

// Add appends an open task. Blank text is rejected.
func (r *DailyTaskRepo) Add(text string) (model.DailyTask, error) {
	text = validate.SanitizeText(text)
	if err := validate.Title("task", text); err != nil {
		return model.DailyTask{}, err
	}

	var task model.DailyTask
	r.slot.Update(func(items []model.DailyTask) []model.DailyTask {
		task = model.DailyTask{ID: nextID(items, r.now()), Text: text}
		return appended(items, task)
	})
	return task, nil
}

// Toggle flips the completed flag of the task with the given id.
func (r *DailyTaskRepo) Toggle(id int64) (model.DailyTask, error) {
	if indexOf(r.slot.Get(), id) < 0 {
		return model.DailyTask{}, taskNotFound(id)
	}

	var toggled model.DailyTask
	r.slot.Update(func(items []model.DailyTask) []model.DailyTask {
		i := indexOf(items, id)
		if i < 0 {
			return items
		}
		toggled = items[i]
		toggled.Completed = !toggled.Completed
		return replaceAt(items, i, toggled)
	})
	return toggled, nil
}

// Delete removes the task with the given id.
func (r *DailyTaskRepo) Delete(id int64) error {
	if indexOf(r.slot.Get(), id) < 0 {
		return taskNotFound(id)
	}
	r.slot.Update(func(items []model.DailyTask) []model.DailyTask {
		if i := indexOf(items, id); i >= 0 {
			return removeAt(items, i)
		}
		return items
	})
	return nil
}

// Reload re-reads the slice from the medium.
func (r *DailyTaskRepo) Reload() {
	r.slot.Reload()
}

func taskNotFound(id int64) error {
	return errors.NewUserErrorWithField("id", strconv.FormatInt(id, 10),
		"Task not found",
		"Run 'studinest remind list' to see ids").WithCause(errors.ErrTaskNotFound)
}

// LastWriteErr reports whether the last change failed to persist.
func (r *DailyTaskRepo) LastWriteErr() error {
	return r.slot.LastWriteErr()
}
