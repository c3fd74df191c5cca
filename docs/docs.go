// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/ticketflow/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "CookieAuth": {"type": "apiKey", "in": "header", "name": "Cookie", "description": "auth-token session cookie"}
    },
    "paths": {
        "/api/auth/register": {
            "post": {
                "tags": ["auth"], "summary": "Register a new user",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/registerRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["auth"], "summary": "Login",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/userResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "tags": ["auth"], "summary": "Logout", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}}}
            }
        },
        "/api/auth/me": {
            "get": {
                "security": [{"CookieAuth": []}],
                "tags": ["auth"], "summary": "Current user", "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/meResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/users": {
            "get": {
                "security": [{"CookieAuth": []}],
                "tags": ["users"], "summary": "List users", "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/usersResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"CookieAuth": []}],
                "tags": ["users"], "summary": "Create a user",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/createUserRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/userResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/users/{id}/role": {
            "patch": {
                "security": [{"CookieAuth": []}],
                "tags": ["users"], "summary": "Change a user's role",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/changeRoleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/userResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/users/{id}": {
            "delete": {
                "security": [{"CookieAuth": []}],
                "tags": ["users"], "summary": "Delete a user", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/tickets": {
            "get": {
                "security": [{"CookieAuth": []}],
                "tags": ["tickets"], "summary": "List tickets", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ticketsResponse"}}}
            }
        },
        "/api/audit-logs": {
            "get": {
                "security": [{"CookieAuth": []}],
                "tags": ["audit"], "summary": "Recent audit records", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/auditLogsResponse"}}}
            }
        }
    },
    "definitions": {
        "ErrorResponse": {"type": "object", "properties": {
            "success": {"type": "boolean"}, "error": {"type": "string"},
            "fields": {"type": "object", "additionalProperties": {"type": "string"}},
            "retryAfter": {"type": "string"}
        }},
        "messageResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}}},
        "registerRequest": {"type": "object", "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}}},
        "loginRequest": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "createUserRequest": {"type": "object", "properties": {
            "name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"},
            "role": {"type": "string", "enum": ["demandeur", "agent", "manager", "admin"]}
        }},
        "changeRoleRequest": {"type": "object", "properties": {"role": {"type": "string", "enum": ["demandeur", "agent", "manager", "admin"]}}},
        "PublicUser": {"type": "object", "properties": {
            "id": {"type": "string"}, "email": {"type": "string"}, "name": {"type": "string"},
            "role": {"type": "string"}, "avatar": {"type": "string"},
            "twoFactorEnabled": {"type": "boolean"}, "tutorialCompleted": {"type": "boolean"},
            "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
        }},
        "userResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "user": {"$ref": "#/definitions/PublicUser"}}},
        "meResponse": {"type": "object", "properties": {
            "success": {"type": "boolean"}, "user": {"$ref": "#/definitions/PublicUser"},
            "permissions": {"type": "array", "items": {"type": "string"}}
        }},
        "usersResponse": {"type": "object", "properties": {
            "success": {"type": "boolean"}, "users": {"type": "array", "items": {"$ref": "#/definitions/PublicUser"}}
        }},
        "Ticket": {"type": "object", "properties": {
            "id": {"type": "string"}, "title": {"type": "string"}, "status": {"type": "string"},
            "priority": {"type": "string"}, "createdById": {"type": "string"}, "assignedToId": {"type": "string"},
            "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
        }},
        "ticketsResponse": {"type": "object", "properties": {
            "success": {"type": "boolean"},
            "tickets": {"type": "array", "items": {"$ref": "#/definitions/Ticket"}},
            "pagination": {"type": "object", "properties": {
                "page": {"type": "integer"}, "limit": {"type": "integer"},
                "total": {"type": "integer"}, "totalPages": {"type": "integer"}
            }}
        }},
        "AuditRecord": {"type": "object", "properties": {
            "id": {"type": "string"}, "action": {"type": "string"}, "actorId": {"type": "string"},
            "subject": {"type": "string"}, "ip": {"type": "string"}, "userAgent": {"type": "string"},
            "details": {"type": "object", "additionalProperties": {"type": "string"}},
            "createdAt": {"type": "string"}
        }},
        "auditLogsResponse": {"type": "object", "properties": {
            "success": {"type": "boolean"}, "logs": {"type": "array", "items": {"$ref": "#/definitions/AuditRecord"}}
        }}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "TicketFlow API",
	Description:      "Authentication and authorization API of the TicketFlow helpdesk.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
