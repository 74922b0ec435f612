package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Outpass API",
        "description": "Hostel outing request approval backend",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Student", "description": "Directory lookup and request submission"},
        {"name": "Warden", "description": "Approval dashboards and decisions"},
        {"name": "Guard", "description": "Gate logs and passage recording"},
        {"name": "Authentication", "description": "Warden and guard login"}
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
        "/metrics": {
            "get": {
                "summary": "Prometheus metrics",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/fetch_student": {
            "post": {
                "tags": ["Student"],
                "summary": "Fetch student directory record",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentIdPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/fetch_student_requests": {
            "post": {
                "tags": ["Student"],
                "summary": "List a student's outing requests",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentIdPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No requests found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/submit_out_request": {
            "post": {
                "tags": ["Student"],
                "summary": "Submit an outing request",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitOutRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Duplicate request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/submit_in_request": {
            "post": {
                "tags": ["Student"],
                "summary": "Declare re-entry",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitInRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No matching entry", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/warden/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate warden",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/WardenLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/warden/out_request_dashboard": {
            "get": {
                "tags": ["Warden"],
                "summary": "List pending OUT requests",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/warden/in_request_dashboard": {
            "get": {
                "tags": ["Warden"],
                "summary": "List pending IN requests",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/warden/update_out_status": {
            "post": {
                "tags": ["Warden"],
                "summary": "Decide an OUT request",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DecisionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Matching request not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Already decided", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/warden/update_in_status": {
            "post": {
                "tags": ["Warden"],
                "summary": "Decide an IN request",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DecisionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Matching request not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Already decided", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/warden/register_export": {
            "get": {
                "tags": ["Warden"],
                "summary": "Download the outing register",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File"}
                }
            }
        },
        "/guard/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate gate guard",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GuardLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid PIN", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/guard/out_dashboard": {
            "get": {
                "tags": ["Guard"],
                "summary": "List decided OUT requests",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/guard/in_dashboard": {
            "get": {
                "tags": ["Guard"],
                "summary": "List decided IN requests",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/guard/search": {
            "post": {
                "tags": ["Guard"],
                "summary": "Look up a student's decided request",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentIdPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found or not approved", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/guard/update_out_status": {
            "post": {
                "tags": ["Guard"],
                "summary": "Record gate exit",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GateUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Matching request not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/guard/update_in_status": {
            "post": {
                "tags": ["Guard"],
                "summary": "Record gate entry",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GateUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Matching request not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "StudentIdPayload": {
            "type": "object",
            "properties": {
                "StudentId": {"type": "string"}
            },
            "required": ["StudentId"]
        },
        "StudentDetails": {
            "type": "object",
            "properties": {
                "StudentId": {"type": "string"},
                "FaceId": {"type": "string"},
                "Name": {"type": "string"},
                "MobileNumber": {"type": "string"},
                "Gender": {"type": "string"},
                "HostelName": {"type": "string"},
                "RoomNo": {"type": "string"},
                "Batch": {"type": "string"},
                "Course": {"type": "string"},
                "NEET_JEE": {"type": "string"}
            }
        },
        "SubmitOutRequest": {
            "type": "object",
            "properties": {
                "studentDetails": {"$ref": "#/definitions/StudentDetails"},
                "leaveRequest": {
                    "type": "object",
                    "properties": {
                        "reason": {"type": "string"},
                        "outDate": {"type": "string"}
                    }
                }
            }
        },
        "SubmitInRequest": {
            "type": "object",
            "properties": {
                "studentDetails": {"$ref": "#/definitions/StudentDetails"},
                "leaveRequest": {
                    "type": "object",
                    "properties": {
                        "inDate": {"type": "string"}
                    }
                }
            }
        },
        "DecisionRequest": {
            "type": "object",
            "properties": {
                "StudentId": {"type": "string"},
                "OutDate": {"type": "string"},
                "InDate": {"type": "string"},
                "ApprovalStatus": {"type": "string"},
                "WardenName": {"type": "string"},
                "Remarks": {"type": "string"}
            },
            "required": ["StudentId", "ApprovalStatus", "WardenName"]
        },
        "GateUpdateRequest": {
            "type": "object",
            "properties": {
                "StudentId": {"type": "string"},
                "Status": {"type": "string"},
                "Time": {"type": "string"}
            },
            "required": ["StudentId", "Time"]
        },
        "WardenLoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["username", "password"]
        },
        "GuardLoginRequest": {
            "type": "object",
            "properties": {
                "pin": {"type": "string"}
            },
            "required": ["pin"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
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
