// Package docs registers the OpenAPI document of the productos API with
// swag so gin-swagger can serve it. Keep it in sync with the @ annotations
// in internal/handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/rogelioGuerrero/apisupabase"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/hello": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handlers.HelloResponse"}
                    }
                }
            }
        },
        "/productos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "List productos",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Producto"}}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}
                    }
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "Update a producto",
                "parameters": [
                    {
                        "description": "id plus the fields to change",
                        "name": "producto",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.ProductoPatch"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Producto"}}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "Create a producto",
                "parameters": [
                    {
                        "description": "Producto data",
                        "name": "producto",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.ProductoInput"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Producto"}}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}
                    }
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "Delete a producto",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Producto ID",
                        "name": "id",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Producto"}}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.HelloResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "method": {"type": "string"}
            }
        },
        "models.Producto": {
            "type": "object",
            "properties": {
                "descripcion": {"type": "string"},
                "id": {"type": "string"},
                "nombre": {"type": "string"},
                "precio": {"type": "number"}
            }
        },
        "models.ProductoInput": {
            "type": "object",
            "required": ["nombre", "precio"],
            "properties": {
                "descripcion": {"type": "string"},
                "nombre": {"type": "string"},
                "precio": {"type": "number"}
            }
        },
        "models.ProductoPatch": {
            "type": "object",
            "required": ["id"],
            "properties": {
                "id": {"type": "string"},
                "descripcion": {"type": "string"},
                "nombre": {"type": "string"},
                "precio": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8888",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Productos API",
	Description:      "CRUD over the Supabase productos table, served as Netlify functions\nand by a local gin server for development.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
