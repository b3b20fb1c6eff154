package models

import "time"

// Supervisor represents an institution-based supervisor account. The roster
// of assigned students is not stored on this row; it is derived by querying
// students.supervisor_id so assignment stays a single atomic write.
type Supervisor struct {
	ID           string    `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	FirstName    string    `db:"first_name" json:"firstName"`
	LastName     string    `db:"last_name" json:"lastName"`
	MiddleName   string    `db:"middle_name" json:"middleName"`
	School       string    `db:"school" json:"school"`
	Region       string    `db:"region" json:"region"`
	Gender       string    `db:"gender" json:"gender"`
	PhoneNumber  string    `db:"phone_number" json:"phoneNumber"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// DisplayName is the "Lastname Firstname" form the frontend shows and the
// student record denormalizes on assignment.
func (s *Supervisor) DisplayName() string {
	return s.LastName + " " + s.FirstName
}

// SupervisorLoad pairs a supervisor with their derived roster size.
type SupervisorLoad struct {
	Supervisor
	RosterCount int `db:"roster_count" json:"rosterCount"`
}
