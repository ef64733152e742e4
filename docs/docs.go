// Package docs registers the Swagger document served at /swagger/doc.json.
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
        "/": {
            "get": {
                "description": "Serves the HTML form that posts queries to /route-task.",
                "produces": ["text/html"],
                "tags": ["Director"],
                "summary": "Chat page",
                "responses": {
                    "200": {"description": "HTML page", "schema": {"type": "string"}}
                }
            }
        },
        "/debug": {
            "get": {
                "description": "Lists the configured bindings and whether the AI binding is present.",
                "produces": ["application/json"],
                "tags": ["Director"],
                "summary": "Binding diagnostics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.debugResp"}}
                }
            }
        },
        "/route-task": {
            "post": {
                "description": "Classifies the query into calendar, financial, audience or touring and returns the agent's answer.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Director"],
                "summary": "Route a query to an agent",
                "parameters": [
                    {
                        "description": "User query",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.routeTaskReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.routeTaskResp"}},
                    "400": {"description": "Invalid classifier reply", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "500": {"description": "Malformed body, inference failure or missing AI binding", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        }
    },
    "definitions": {
        "agent.Result": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "llmReasoning": {"type": "string"}
            }
        },
        "http.debugResp": {
            "type": "object",
            "properties": {
                "AI": {"type": "string"},
                "availableBindings": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.routeTaskReq": {
            "type": "object",
            "properties": {
                "userQuery": {"type": "string"}
            }
        },
        "http.routeTaskResp": {
            "type": "object",
            "properties": {
                "agent": {"type": "string"},
                "response": {"$ref": "#/definitions/agent.Result"}
            }
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "errors": {},
                "message": {"type": "string"}
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
	Title:            "Director Agent API",
	Description:      "Routes free-text queries to calendar, financial, audience and touring agents via an LLM classifier.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
