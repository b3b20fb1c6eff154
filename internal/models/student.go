package models

import "time"

// Student represents a student account stored in the students table.
//
// SupervisorID is the authoritative reference to the assigned supervisor;
// SupervisorName carries the denormalized "Lastname Firstname" display value
// the frontend renders without a second lookup.
type Student struct {
	ID             string    `db:"id" json:"id"`
	Username       string    `db:"username" json:"username"`
	FirstName      string    `db:"first_name" json:"firstName"`
	LastName       string    `db:"last_name" json:"lastName"`
	MiddleName     string    `db:"middle_name" json:"middleName"`
	School         string    `db:"school" json:"school"`
	Level          string    `db:"level" json:"level"`
	Course         string    `db:"course" json:"course"`
	MatricNumber   string    `db:"matric_number" json:"matricNumber"`
	Gender         string    `db:"gender" json:"gender"`
	PhoneNumber    string    `db:"phone_number" json:"phoneNumber"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	SupervisorID   *string   `db:"supervisor_id" json:"supervisorId,omitempty"`
	SupervisorName *string   `db:"supervisor_name" json:"supervisorName,omitempty"`
	HitsNum        int       `db:"hits_num" json:"hitsNum"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}
