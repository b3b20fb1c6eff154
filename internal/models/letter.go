package models

import "time"

// AcceptanceLetter records the stored scan of a student's acceptance letter.
// FileURL is the durable signed retrieval URL handed to the frontend;
// FilePath is the storage-relative location and never leaves the service.
type AcceptanceLetter struct {
	ID        string    `db:"id" json:"id"`
	StudentID string    `db:"student_id" json:"studentID"`
	FileURL   string    `db:"file_url" json:"fileURL"`
	FilePath  string    `db:"file_path" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
