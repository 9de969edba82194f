package model

// DailyTask is a checklist reminder with no due date.
type DailyTask struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// GetID returns the task id.
func (t DailyTask) GetID() int64 {
	return t.ID
}
