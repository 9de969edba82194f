// Package seed holds the sample data shown on first run.
package seed

import (
	"time"

	"github.com/manav03panchal/studinest/internal/model"
)

// Data is the full set of initial values, one per stored slice.
type Data struct {
	Theme       model.Theme
	Page        model.Page
	Assignments []model.Assignment
	Courses     []model.Course
	Schedule    model.WeeklySchedule
	DailyTasks  []model.DailyTask
}

// Sample returns the first-run sample data. Due dates are relative to now.
func Sample(now time.Time) Data {
	return Data{
		Theme:       model.ThemeLight,
		Page:        model.PageDashboard,
		Assignments: Assignments(now),
		Courses:     Courses(),
		Schedule:    Schedule(),
		DailyTasks:  DailyTasks(),
	}
}

// Empty returns initial values with no sample records.
func Empty() Data {
	return Data{
		Theme:       model.ThemeLight,
		Page:        model.PageDashboard,
		Assignments: []model.Assignment{},
		Courses:     []model.Course{},
		Schedule:    emptyWeek(),
		DailyTasks:  []model.DailyTask{},
	}
}

// Assignments returns the sample assignments.
func Assignments(now time.Time) []model.Assignment {
	in := func(days int) model.Date {
		return model.NewDate(now.AddDate(0, 0, days))
	}
	return []model.Assignment{
		{ID: 1, Title: "Essay Analisis Puisi", Course: "Sastra Indonesia", DueDate: in(2), Priority: model.PriorityHigh, Progress: 25, Notes: "Fokus pada analisis metafora dan citraan."},
		{ID: 2, Title: "Laporan Praktikum Kimia", Course: "Kimia Dasar", DueDate: in(5), Priority: model.PriorityHigh, Progress: 80, Notes: "Jangan lupa lampirkan data hasil percobaan."},
		{ID: 3, Title: "Presentasi Kelompok", Course: "Pengantar Sosiologi", DueDate: in(7), Priority: model.PriorityMedium, Progress: 50, Notes: "Bagian saya adalah teori konflik."},
		{ID: 4, Title: "Mengerjakan Latihan Soal", Course: "Kalkulus I", DueDate: in(10), Priority: model.PriorityLow, Progress: 10, Notes: "Bab 3 tentang turunan."},
	}
}

// Courses returns the sample courses.
func Courses() []model.Course {
	return []model.Course{
		{ID: 1, Name: "Sastra Indonesia", Code: "SI101", Lecturer: "Dr. Anisa Lestari", Room: "Gedung A, R. 301", Credits: 3, Notes: `Buku wajib: "Sejarah Sastra" oleh H.B. Jassin.`},
		{ID: 2, Name: "Kimia Dasar", Code: "KD202", Lecturer: "Prof. Budi Santoso", Room: "Lab Kimia Terpadu", Credits: 4, Notes: "Jas lab wajib dipakai setiap praktikum."},
		{ID: 3, Name: "Pengantar Sosiologi", Code: "PS301", Lecturer: "Dr. Rina Puspita", Room: "Online via Zoom", Credits: 3, Notes: "Link Zoom ada di portal akademik."},
		{ID: 4, Name: "Kalkulus I", Code: "KL101", Lecturer: "Dr. Iwan Setiawan", Room: "Gedung C, R. 105", Credits: 4, Notes: "Bawa kalkulator scientific."},
	}
}

// Schedule returns the sample week. Every weekday is present.
func Schedule() model.WeeklySchedule {
	return model.WeeklySchedule{
		"Monday": {
			{Start: "08:00", End: "10:00", Course: "Kalkulus I", Room: "C-105"},
		},
		"Tuesday": {
			{Start: "10:00", End: "12:00", Course: "Sastra Indonesia", Room: "A-301"},
			{Start: "14:00", End: "16:00", Course: "Pengantar Sosiologi", Room: "Zoom"},
		},
		"Wednesday": {
			{Start: "08:00", End: "10:00", Course: "Kalkulus I", Room: "C-105"},
		},
		"Thursday": {
			{Start: "13:00", End: "16:00", Course: "Kimia Dasar (Praktikum)", Room: "Lab Kimia"},
		},
		"Friday": {},
		"Saturday": {
			{Start: "13:00", End: "15:00", Course: "Workshop Penulisan Kreatif", Room: "Gedung D, R. 202"},
		},
		"Sunday": {},
	}
}

// DailyTasks returns the sample daily reminders.
func DailyTasks() []model.DailyTask {
	return []model.DailyTask{
		{ID: 1, Text: "Review catatan Kalkulus", Completed: true},
		{ID: 2, Text: "Beli alat tulis untuk praktikum", Completed: false},
		{ID: 3, Text: "Email Prof. Budi tentang laporan", Completed: false},
	}
}

func emptyWeek() model.WeeklySchedule {
	week := model.WeeklySchedule{}
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		week[day] = []model.ScheduleEntry{}
	}
	return week
}
