package storage

import (
	"encoding/json"
	"time"

	"github.com/manav03panchal/studinest/internal/model"
)

// SliceState describes how a stored slice would load.
type SliceState string

const (
	SliceOK      SliceState = "ok"
	SliceMissing SliceState = "missing"
	SliceCorrupt SliceState = "corrupt"
	SliceError   SliceState = "error"
)

// SliceStatus is the health of one stored slice.
type SliceStatus struct {
	Slice string     `json:"slice"`
	Key   string     `json:"key"`
	State SliceState `json:"state"`
	Bytes int        `json:"bytes"`
	Error string     `json:"error,omitempty"`
}

// HealthReport represents the result of a storage health check.
type HealthReport struct {
	Healthy   bool          `json:"healthy"`
	CheckedAt time.Time     `json:"checked_at"`
	Slices    []SliceStatus `json:"slices"`
}

// CheckIntegrity inspects every known slice: it must be valid JSON that
// fits the slice's model. A corrupt slice would silently load as its
// default, so this is the only place the condition becomes visible.
func CheckIntegrity(s *Store) *HealthReport {
	report := &HealthReport{
		Healthy:   true,
		CheckedAt: s.now(),
	}

	for _, slice := range model.Slices() {
		status := SliceStatus{Slice: slice, Key: s.Key(slice)}

		raw, err := s.Raw(slice)
		switch {
		case IsErrKeyNotFound(err):
			status.State = SliceMissing
		case err != nil:
			status.State = SliceError
			status.Error = err.Error()
		case !json.Valid(raw):
			status.State = SliceCorrupt
			status.Bytes = len(raw)
			status.Error = "not valid JSON"
		case json.Unmarshal(raw, sliceTarget(slice)) != nil:
			status.State = SliceCorrupt
			status.Bytes = len(raw)
			status.Error = "does not match the " + slice + " shape"
		default:
			status.State = SliceOK
			status.Bytes = len(raw)
		}

		if status.State == SliceCorrupt || status.State == SliceError {
			report.Healthy = false
		}
		report.Slices = append(report.Slices, status)
	}

	return report
}

// sliceTarget returns a pointer to the model a slice decodes into.
func sliceTarget(slice string) any {
	switch slice {
	case model.SliceTheme:
		return new(model.Theme)
	case model.SlicePage:
		return new(model.Page)
	case model.SliceAssignments:
		return new([]model.Assignment)
	case model.SliceCourses:
		return new([]model.Course)
	case model.SliceSchedule:
		return new(model.WeeklySchedule)
	case model.SliceDailyTasks:
		return new([]model.DailyTask)
	}
	return new(any)
}

// Reset removes a stored slice so the next load falls back to its default.
func Reset(s *Store, slice string) error {
	err := s.medium.Delete(s.Key(slice))
	if IsErrKeyNotFound(err) {
		return nil
	}
	return err
}
