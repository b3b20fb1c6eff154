package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SIWES Placement API",
        "description": "Internship placement tracking backend",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Student accounts and profiles"},
        {"name": "Supervisors", "description": "Supervisor accounts and rosters"},
        {"name": "Placements", "description": "Company placement details"},
        {"name": "Reports", "description": "Weekly logbook reports"},
        {"name": "Letters", "description": "Acceptance letter uploads"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/student/register": {
            "post": {
                "tags": ["Students"],
                "summary": "Register student account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "Envelope with success flag"}
                }
            }
        },
        "/student/login": {
            "post": {
                "tags": ["Students"],
                "summary": "Authenticate student by matric number",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Envelope with student and token"}
                }
            }
        },
        "/student/profile": {
            "post": {
                "tags": ["Students"],
                "summary": "Fetch student profile",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRef"}}
                ],
                "responses": {
                    "200": {"description": "Envelope with student"}
                }
            }
        },
        "/student/upload-details": {
            "post": {
                "tags": ["Placements"],
                "summary": "Upsert placement details and run supervisor assignment",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UploadDetailsRequest"}}
                ],
                "responses": {
                    "200": {"description": "Envelope with details and assignment outcome"}
                }
            }
        },
        "/student/company": {
            "post": {
                "tags": ["Placements"],
                "summary": "Fetch placement details",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRef"}}
                ],
                "responses": {
                    "200": {"description": "Envelope with details"}
                }
            }
        },
        "/student/upload-report": {
            "post": {
                "tags": ["Reports"],
                "summary": "Upsert weekly report",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UploadReportRequest"}}
                ],
                "responses": {
                    "200": {"description": "Envelope with report"}
                }
            }
        },
        "/student/reports": {
            "post": {
                "tags": ["Reports"],
                "summary": "List weekly reports for a student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRef"}}
                ],
                "responses": {
                    "200": {"description": "Envelope with reports"}
                }
            }
        },
        "/student/logbook/export": {
            "get": {
                "tags": ["Reports"],
                "summary": "Export the authenticated student's logbook as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Rendered logbook file"},
                    "401": {"description": "Missing or invalid token"}
                }
            }
        },
        "/supervisor/register": {
            "post": {
                "tags": ["Supervisors"],
                "summary": "Register supervisor account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterSupervisorRequest"}}
                ],
                "responses": {
                    "200": {"description": "Envelope with success flag"}
                }
            }
        },
        "/supervisor/login": {
            "post": {
                "tags": ["Supervisors"],
                "summary": "Authenticate supervisor",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Envelope with supervisor and token"}
                }
            }
        },
        "/supervisor/profile": {
            "post": {
                "tags": ["Supervisors"],
                "summary": "Fetch supervisor profile",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SupervisorRef"}}
                ],
                "responses": {
                    "200": {"description": "Envelope with supervisor"}
                }
            },
            "get": {
                "tags": ["Supervisors"],
                "summary": "Fetch supervisor profile",
                "parameters": [
                    {"name": "supervisorID", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Envelope with supervisor"}
                }
            }
        },
        "/supervisor/students": {
            "get": {
                "tags": ["Supervisors"],
                "summary": "List the authenticated supervisor's assigned students",
                "responses": {
                    "200": {"description": "Envelope with students"},
                    "401": {"description": "Missing or invalid token"}
                }
            }
        },
        "/upload-acceptance-letter": {
            "post": {
                "tags": ["Letters"],
                "summary": "Upload acceptance letter scan",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "studentID", "in": "formData", "type": "string", "required": true},
                    {"name": "file", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {
                    "200": {"description": "Envelope with letter record"},
                    "500": {"description": "File intake failure"}
                }
            }
        },
        "/letters/download": {
            "get": {
                "tags": ["Letters"],
                "summary": "Download a stored letter through its signed token",
                "parameters": [
                    {"name": "token", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Letter file"}
                }
            }
        },
        "/update": {
            "patch": {
                "tags": ["Students"],
                "summary": "Re-authenticate and update profile fields",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "Envelope with updated student"}
                }
            }
        },
        "/api/delete": {
            "post": {
                "tags": ["Students"],
                "summary": "Decrement the hits counter on a student record",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DecrementHitsRequest"}}
                ],
                "responses": {
                    "200": {"description": "Envelope with updated student"}
                }
            }
        }
    },
    "definitions": {
        "RegisterStudentRequest": {
            "type": "object",
            "required": ["username", "firstName", "lastName", "school", "matricNumber", "password"],
            "properties": {
                "username": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "middleName": {"type": "string"},
                "school": {"type": "string"},
                "level": {"type": "string"},
                "course": {"type": "string"},
                "matricNumber": {"type": "string"},
                "gender": {"type": "string"},
                "phoneNumber": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "RegisterSupervisorRequest": {
            "type": "object",
            "required": ["username", "firstName", "lastName", "school", "region", "password"],
            "properties": {
                "username": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "middleName": {"type": "string"},
                "school": {"type": "string"},
                "region": {"type": "string"},
                "gender": {"type": "string"},
                "phoneNumber": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "UpdateProfileRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "school": {"type": "string"},
                "level": {"type": "string"},
                "course": {"type": "string"},
                "phoneNumber": {"type": "string"}
            }
        },
        "DecrementHitsRequest": {
            "type": "object",
            "required": ["username"],
            "properties": {
                "username": {"type": "string"}
            }
        },
        "StudentRef": {
            "type": "object",
            "required": ["studentID"],
            "properties": {
                "studentID": {"type": "string"}
            }
        },
        "SupervisorRef": {
            "type": "object",
            "required": ["supervisorID"],
            "properties": {
                "supervisorID": {"type": "string"}
            }
        },
        "UploadDetailsRequest": {
            "type": "object",
            "required": ["studentID", "companyName", "state"],
            "properties": {
                "studentID": {"type": "string"},
                "companyName": {"type": "string"},
                "companyAddress": {"type": "string"},
                "state": {"type": "string"},
                "lga": {"type": "string"},
                "companyEmail": {"type": "string"},
                "companyPhoneNumber": {"type": "string"},
                "resumptionDate": {"type": "string"},
                "terminationDate": {"type": "string"},
                "assignedDepartment": {"type": "string"},
                "jobDesc": {"type": "string"}
            }
        },
        "UploadReportRequest": {
            "type": "object",
            "required": ["studentID", "week", "date"],
            "properties": {
                "studentID": {"type": "string"},
                "monday": {"type": "string"},
                "tuesday": {"type": "string"},
                "wednesday": {"type": "string"},
                "thursday": {"type": "string"},
                "friday": {"type": "string"},
                "week": {"type": "string"},
                "date": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
