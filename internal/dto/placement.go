package dto

// UploadDetailsRequest upserts a student's company placement. State doubles
// as the region used for supervisor assignment.
type UploadDetailsRequest struct {
	StudentID          string `json:"studentID" validate:"required"`
	CompanyName        string `json:"companyName" validate:"required"`
	CompanyAddress     string `json:"companyAddress"`
	State              string `json:"state" validate:"required"`
	Lga                string `json:"lga"`
	CompanyEmail       string `json:"companyEmail"`
	CompanyPhoneNumber string `json:"companyPhoneNumber"`
	ResumptionDate     string `json:"resumptionDate"`
	TerminationDate    string `json:"terminationDate"`
	AssignedDepartment string `json:"assignedDepartment"`
	JobDesc            string `json:"jobDesc"`
}

// UploadReportRequest upserts one week of logbook narratives.
type UploadReportRequest struct {
	StudentID string `json:"studentID" validate:"required"`
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Week      string `json:"week" validate:"required"`
	Date      string `json:"date" validate:"required"`
}

// StudentRef keys the single-record read endpoints.
type StudentRef struct {
	StudentID string `json:"studentID" validate:"required"`
}

// SupervisorRef keys the supervisor profile endpoint.
type SupervisorRef struct {
	SupervisorID string `json:"supervisorID" validate:"required"`
}
