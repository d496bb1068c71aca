// Package docs holds the OpenAPI document served under /swagger. It has the
// shape `swag init -g cmd/httpserver/main.go` writes; regenerate it after
// changing the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/search": {
            "get": {
                "description": "One page of OMDb results for a title query",
                "produces": ["application/json"],
                "tags": ["titles"],
                "summary": "Search Titles",
                "parameters": [
                    {"type": "string", "description": "Title to search for", "name": "q", "in": "query", "required": true},
                    {"type": "integer", "description": "Result page (1-100), default 1", "name": "page", "in": "query"},
                    {"type": "string", "description": "all, movie, series or episode", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.APIResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/httpserver.APIResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/httpserver.APIResponse"}}
                }
            }
        },
        "/api/titles/{id}": {
            "get": {
                "description": "Full record of one title by IMDb id",
                "produces": ["application/json"],
                "tags": ["titles"],
                "summary": "Get Title",
                "parameters": [
                    {"type": "string", "description": "IMDb id, e.g. tt0372784", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/httpserver.APIResponse"},
                                {"type": "object", "properties": {"result": {"$ref": "#/definitions/movie.Detail"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpserver.APIResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/httpserver.APIResponse"}}
                }
            }
        },
        "/healthcheck": {
            "get": {
                "description": "Check if server is alive; never calls the catalog",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "httpserver.APIResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "info": {"type": "string"},
                "message": {"type": "string"},
                "result": {}
            }
        },
        "movie.Detail": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "year": {"type": "string"},
                "kind": {"type": "string"},
                "poster": {"type": "string"},
                "plot": {"type": "string"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "director": {"type": "string"},
                "actors": {"type": "string"},
                "runtime": {"type": "string"},
                "rating": {"type": "string"},
                "released": {"type": "string"},
                "country": {"type": "string"},
                "language": {"type": "string"},
                "awards": {"type": "string"},
                "boxOffice": {"type": "string"},
                "production": {"type": "string"},
                "website": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ReelFinder API",
	Description:      "Movie and TV series search over the OMDb catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
