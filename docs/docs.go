// Package docs registers the Swagger spec served at /swagger/*any.
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
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/webhook/telegram": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Telegram"],
                "summary": "Telegram webhook",
                "parameters": [
                    {"type": "string", "description": "Webhook secret token", "name": "X-Telegram-Bot-Api-Secret-Token", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "Update accepted or ignored", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Malformed update", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Invalid secret token", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/calendar.ics": {
            "get": {
                "produces": ["text/calendar"],
                "tags": ["Calendar"],
                "summary": "Upcoming events as iCalendar",
                "parameters": [
                    {"type": "string", "description": "Feed token", "name": "token", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "VCALENDAR body", "schema": {"type": "string"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Calendar not found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Calendar"],
                "summary": "List upcoming events",
                "parameters": [
                    {"type": "integer", "description": "Number of events (default: 10, max: 100)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Feed token", "name": "token", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Calendar not found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "trace_id": {"type": "string"}
            }
        },
        "http.eventResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "summary": {"type": "string"},
                "description": {"type": "string"},
                "location": {"type": "string"},
                "start": {"type": "string"},
                "end": {"type": "string"},
                "all_day": {"type": "boolean"},
                "when": {"type": "string"},
                "link": {"type": "string"}
            }
        },
        "http.listResp": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/http.eventResp"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Calendar Assistant API",
	Description:      "Telegram bot that turns chat and voice messages into Google Calendar changes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
