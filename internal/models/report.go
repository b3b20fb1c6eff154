package models

import "time"

// WeeklyReport is one week of logbook narratives. Unique per
// (student, week, report date) so re-submitting a week replaces it in place.
type WeeklyReport struct {
	ID          string    `db:"id" json:"id"`
	StudentID   string    `db:"student_id" json:"studentID"`
	Monday      string    `db:"monday" json:"monday"`
	Tuesday     string    `db:"tuesday" json:"tuesday"`
	Wednesday   string    `db:"wednesday" json:"wednesday"`
	Thursday    string    `db:"thursday" json:"thursday"`
	Friday      string    `db:"friday" json:"friday"`
	Week        string    `db:"week" json:"week"`
	ReportDate  string    `db:"report_date" json:"date"`
	SubmittedAt time.Time `db:"submitted_at" json:"submittedAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
