package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Naraigoto Planner API",
        "description": "Household extracurricular lesson planner",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Document", "description": "Full planning document"},
        {"name": "Lessons", "description": "Lesson catalog"},
        {"name": "Patterns", "description": "Selection patterns A/B/C"},
        {"name": "Family", "description": "Family members and conditions"},
        {"name": "Export", "description": "Catalog downloads"}
    ],
    "paths": {
        "/document": {
            "get": {
                "tags": ["Document"],
                "summary": "Get the planning document",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Document"],
                "summary": "Replace the planning document",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Document"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/lessons": {
            "post": {
                "tags": ["Lessons"],
                "summary": "Add a lesson",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Lesson"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error"}
                }
            }
        },
        "/lessons/renumber": {
            "post": {
                "tags": ["Lessons"],
                "summary": "Renumber all lesson identifiers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/lessons/{index}": {
            "patch": {
                "tags": ["Lessons"],
                "summary": "Update one lesson field",
                "parameters": [
                    {"name": "index", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LessonFieldUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No lesson at index"}
                }
            },
            "delete": {
                "tags": ["Lessons"],
                "summary": "Delete a lesson",
                "parameters": [
                    {"name": "index", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "No lesson at index"}
                }
            }
        },
        "/lessons/{index}/duplicate": {
            "post": {
                "tags": ["Lessons"],
                "summary": "Duplicate a lesson",
                "parameters": [
                    {"name": "index", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/patterns/{key}": {
            "put": {
                "tags": ["Patterns"],
                "summary": "Update pattern name or memo",
                "parameters": [
                    {"name": "key", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PatternUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/patterns/{key}/toggle": {
            "post": {
                "tags": ["Patterns"],
                "summary": "Toggle a lesson in a pattern",
                "parameters": [
                    {"name": "key", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PatternToggle"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown pattern or lesson"}
                }
            }
        },
        "/patterns/{key}/stats": {
            "get": {
                "tags": ["Patterns"],
                "summary": "Pattern statistics",
                "parameters": [
                    {"name": "key", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/patterns/{key}/schedule": {
            "get": {
                "tags": ["Patterns"],
                "summary": "Pattern weekly schedule layout",
                "parameters": [
                    {"name": "key", "in": "path", "type": "string", "required": true},
                    {"name": "days", "in": "query", "type": "string", "description": "Comma-separated weekday filter"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/family/{member}": {
            "put": {
                "tags": ["Family"],
                "summary": "Update one family member field",
                "parameters": [
                    {"name": "member", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FamilyMemberUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown member"}
                }
            }
        },
        "/conditions": {
            "put": {
                "tags": ["Family"],
                "summary": "Replace planning conditions",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Conditions"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/export/csv": {
            "get": {
                "tags": ["Export"],
                "summary": "Download the lesson catalog as CSV",
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "CSV file"}
                }
            }
        },
        "/export/pdf": {
            "get": {
                "tags": ["Export"],
                "summary": "Download the lesson catalog as PDF",
                "produces": ["application/pdf"],
                "responses": {
                    "200": {"description": "PDF file"}
                }
            }
        }
    },
    "definitions": {
        "Lesson": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "school": {"type": "string"},
                "address": {"type": "string"},
                "who": {"type": "string"},
                "day": {"type": "string"},
                "start": {"type": "string"},
                "end": {"type": "string"},
                "fee": {"type": "string"},
                "status": {"type": "string"},
                "url": {"type": "string"},
                "memo": {"type": "string"}
            }
        },
        "LessonFieldUpdate": {
            "type": "object",
            "required": ["field"],
            "properties": {
                "field": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "PatternUpdate": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "memo": {"type": "string"}
            }
        },
        "PatternToggle": {
            "type": "object",
            "required": ["lesson_id"],
            "properties": {
                "lesson_id": {"type": "string"}
            }
        },
        "FamilyMemberUpdate": {
            "type": "object",
            "required": ["field"],
            "properties": {
                "field": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "Conditions": {
            "type": "object",
            "properties": {
                "budget": {"type": "string"},
                "travel_limit": {"type": "string"},
                "pickup_time": {"type": "string"},
                "weekday_available": {"type": "string"},
                "weekend_available": {"type": "string"},
                "papa_days": {"type": "string"}
            }
        },
        "Document": {
            "type": "object",
            "properties": {
                "family": {"type": "object"},
                "conditions": {"$ref": "#/definitions/Conditions"},
                "lessons": {"type": "array", "items": {"$ref": "#/definitions/Lesson"}},
                "patterns": {"type": "object"}
            }
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
