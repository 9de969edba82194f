package storage

import (
	"github.com/manav03panchal/studinest/internal/model"
)

// ScheduleRepo provides read access to the weekly schedule.
type ScheduleRepo struct {
	slot *Slot[model.WeeklySchedule]
}

// NewScheduleRepo creates a new schedule repository.
func NewScheduleRepo(store *Store, def model.WeeklySchedule) *ScheduleRepo {
	return &ScheduleRepo{slot: NewSlot(store, model.SliceSchedule, def)}
}

// Get returns the whole week.
func (r *ScheduleRepo) Get() model.WeeklySchedule {
	return r.slot.Get()
}

// Day returns the entries of one weekday in display order.
func (r *ScheduleRepo) Day(name string) []model.ScheduleEntry {
	return clone(r.slot.Get().Day(name))
}

// Reload re-reads the slice from the medium.
func (r *ScheduleRepo) Reload() {
	r.slot.Reload()
}

// LastWriteErr reports whether the last change failed to persist.
func (r *ScheduleRepo) LastWriteErr() error {
	return r.slot.LastWriteErr()
}
