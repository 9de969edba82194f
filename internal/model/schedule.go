package model

// ScheduleEntry is a recurring class slot on one weekday.
// Start and End are "HH:MM" times of day.
type ScheduleEntry struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Course string `json:"course"`
	Room   string `json:"room"`
}

// WeeklySchedule maps a weekday name ("Monday".."Sunday") to its entries in
// display order.
type WeeklySchedule map[string][]ScheduleEntry

// Day returns the entries for a weekday name, or nil.
func (w WeeklySchedule) Day(name string) []ScheduleEntry {
	if w == nil {
		return nil
	}
	return w[name]
}
