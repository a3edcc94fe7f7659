package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Liceo Connect API",
        "description": "Registro de usuarios, asistencia, calificaciones y mensajería interna",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Usuarios", "description": "Registro e inicio de sesión"},
        {"name": "Asistencia", "description": "Marcas de asistencia por estudiante"},
        {"name": "Calificaciones", "description": "Notas por estudiante y exportación"},
        {"name": "Mensajes", "description": "Mensajería interna entre usuarios"},
        {"name": "System", "description": "Probes and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["System"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["System"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unavailable", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": ["System"],
                "summary": "Prometheus metrics",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/registro": {
            "post": {
                "tags": ["Usuarios"],
                "summary": "Register user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "200": {"description": "Registered", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "400": {"description": "Duplicate email or invalid payload", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Usuarios"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Authenticated", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/asistencia": {
            "post": {
                "tags": ["Asistencia"],
                "summary": "Mark attendance",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MarkAttendanceRequest"}}
                ],
                "responses": {
                    "200": {"description": "Recorded", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            }
        },
        "/asistencia/{estudiante_id}": {
            "get": {
                "tags": ["Asistencia"],
                "summary": "List attendance for a student",
                "parameters": [
                    {"name": "estudiante_id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/AttendanceItem"}}}
                }
            }
        },
        "/calificaciones": {
            "post": {
                "tags": ["Calificaciones"],
                "summary": "Record a grade",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddGradeRequest"}}
                ],
                "responses": {
                    "200": {"description": "Saved", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            }
        },
        "/calificaciones/{estudiante_id}": {
            "get": {
                "tags": ["Calificaciones"],
                "summary": "List grades for a student",
                "parameters": [
                    {"name": "estudiante_id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/GradeItem"}}}
                }
            }
        },
        "/calificaciones/{estudiante_id}/export": {
            "get": {
                "tags": ["Calificaciones"],
                "summary": "Download a student's grade sheet",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "estudiante_id", "in": "path", "required": true, "type": "integer"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/mensajes": {
            "post": {
                "tags": ["Mensajes"],
                "summary": "Send a message",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SendMessageRequest"}}
                ],
                "responses": {
                    "200": {"description": "Sent", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            }
        },
        "/mensajes/{usuario_id}": {
            "get": {
                "tags": ["Mensajes"],
                "summary": "List messages sent or received by a user",
                "parameters": [
                    {"name": "usuario_id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/MessageItem"}}}
                }
            }
        }
    },
    "definitions": {
        "RegisterRequest": {
            "type": "object",
            "required": ["nombre", "rol", "email", "password"],
            "properties": {
                "nombre": {"type": "string"},
                "rol": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "UserInfo": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nombre": {"type": "string"},
                "rol": {"type": "string"}
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "mensaje": {"type": "string"},
                "usuario": {"$ref": "#/definitions/UserInfo"}
            }
        },
        "MessageResponse": {
            "type": "object",
            "properties": {
                "mensaje": {"type": "string"}
            }
        },
        "MarkAttendanceRequest": {
            "type": "object",
            "required": ["estudiante_id"],
            "properties": {
                "estudiante_id": {"type": "integer"},
                "presente": {"type": "boolean", "default": true}
            }
        },
        "AttendanceItem": {
            "type": "object",
            "properties": {
                "fecha": {"type": "string", "example": "2024-03-11"},
                "presente": {"type": "boolean"}
            }
        },
        "AddGradeRequest": {
            "type": "object",
            "required": ["estudiante_id", "materia", "nota"],
            "properties": {
                "estudiante_id": {"type": "integer"},
                "materia": {"type": "string"},
                "nota": {"type": "number"}
            }
        },
        "GradeItem": {
            "type": "object",
            "properties": {
                "materia": {"type": "string"},
                "nota": {"type": "number"}
            }
        },
        "SendMessageRequest": {
            "type": "object",
            "required": ["emisor_id", "receptor_id", "contenido"],
            "properties": {
                "emisor_id": {"type": "integer"},
                "receptor_id": {"type": "integer"},
                "contenido": {"type": "string"}
            }
        },
        "MessageItem": {
            "type": "object",
            "properties": {
                "emisor": {"type": "integer"},
                "receptor": {"type": "integer"},
                "contenido": {"type": "string"},
                "fecha": {"type": "string", "example": "2024-03-11 08:30:15.123456"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"}
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
