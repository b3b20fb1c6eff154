package models

import "time"

// PlacementDetails holds the company placement a student reported.
// One live record per student, enforced by a unique constraint on student_id.
// Dates stay free-form strings; the legacy frontend submits them unparsed.
type PlacementDetails struct {
	ID                 string    `db:"id" json:"id"`
	StudentID          string    `db:"student_id" json:"studentID"`
	CompanyName        string    `db:"company_name" json:"companyName"`
	CompanyAddress     string    `db:"company_address" json:"companyAddress"`
	State              string    `db:"state" json:"state"`
	Lga                string    `db:"lga" json:"lga"`
	CompanyEmail       string    `db:"company_email" json:"companyEmail"`
	CompanyPhoneNumber string    `db:"company_phone_number" json:"companyPhoneNumber"`
	ResumptionDate     string    `db:"resumption_date" json:"resumptionDate"`
	TerminationDate    string    `db:"termination_date" json:"terminationDate"`
	AssignedDepartment string    `db:"assigned_department" json:"assignedDepartment"`
	JobDesc            string    `db:"job_desc" json:"jobDesc"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `db:"updated_at" json:"updatedAt"`
}
