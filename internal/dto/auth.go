package dto

// RegisterStudentRequest carries the student registration payload.
type RegisterStudentRequest struct {
	Username     string `json:"username" validate:"required"`
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	MiddleName   string `json:"middleName"`
	School       string `json:"school" validate:"required"`
	Level        string `json:"level"`
	Course       string `json:"course"`
	MatricNumber string `json:"matricNumber" validate:"required"`
	Gender       string `json:"gender"`
	PhoneNumber  string `json:"phoneNumber"`
	Password     string `json:"password" validate:"required,min=1"`
}

// RegisterSupervisorRequest carries the supervisor registration payload.
type RegisterSupervisorRequest struct {
	Username    string `json:"username" validate:"required"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	MiddleName  string `json:"middleName"`
	School      string `json:"school" validate:"required"`
	Region      string `json:"region" validate:"required"`
	Gender      string `json:"gender"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" validate:"required,min=1"`
}

// LoginRequest carries the identity and secret for either account kind.
// Students are resolved by matric number, supervisors by username.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest re-authenticates the student and replaces the listed
// profile fields.
type UpdateProfileRequest struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	School      string `json:"school"`
	Level       string `json:"level"`
	Course      string `json:"course"`
	PhoneNumber string `json:"phoneNumber"`
}

// DecrementHitsRequest drives the vestigial counter endpoint.
type DecrementHitsRequest struct {
	Username string `json:"username" validate:"required"`
}
