// Package model defines the domain records for Studinest.
package model

// Identified is implemented by every record stored in an id-addressed list.
type Identified interface {
	GetID() int64
}

// Slice names. Each names one independently persisted top-level state slice;
// the storage layer prefixes them to form the medium key.
const (
	SliceTheme       = "theme"
	SlicePage        = "page"
	SliceAssignments = "assignments"
	SliceCourses     = "courses"
	SliceSchedule    = "schedule"
	SliceDailyTasks  = "dailyTasks"
)

// Slices returns all slice names in a stable order.
func Slices() []string {
	return []string{
		SliceTheme,
		SlicePage,
		SliceAssignments,
		SliceCourses,
		SliceSchedule,
		SliceDailyTasks,
	}
}
