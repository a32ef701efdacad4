// Package docs registers the OpenAPI description of the desk JSON API.
// It is kept by hand in the layout swag init writes; update it with the routes.
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
        "/reference": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "Form dropdown options",
                "responses": {
                    "200": {"description": "Shipment, service, payment and invoice options"}
                }
            }
        },
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Consignments"],
                "summary": "Consignments, users and invoices in one call",
                "responses": {
                    "200": {"description": "Dashboard; a failed list is empty with its error reported"}
                }
            }
        },
        "/consignments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Consignments"],
                "summary": "List consignments",
                "parameters": [
                    {"type": "integer", "name": "skip", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query", "maximum": 1000},
                    {"type": "string", "name": "start_date", "in": "query", "description": "YYYY-MM-DD"},
                    {"type": "string", "name": "end_date", "in": "query", "description": "YYYY-MM-DD"},
                    {"type": "string", "name": "zone", "in": "query"},
                    {"type": "string", "name": "user_id", "in": "query"},
                    {"type": "string", "name": "invoice_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Consignments"},
                    "400": {"description": "Bad filter", "schema": {"$ref": "#/definitions/httpt.ErrorResponse"}},
                    "502": {"description": "Backend failure", "schema": {"$ref": "#/definitions/httpt.ErrorResponse"}}
                }
            }
        },
        "/consignments/export": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/csv"],
                "tags": ["Consignments"],
                "summary": "Export consignments as CSV",
                "responses": {
                    "200": {"description": "CSV attachment"},
                    "400": {"description": "Empty selection or bad range", "schema": {"$ref": "#/definitions/httpt.ErrorResponse"}}
                }
            }
        },
        "/consignments/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Consignments"],
                "summary": "Get a consignment",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Consignment"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/httpt.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Consignments"],
                "summary": "Delete a consignment",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/httpt.SuccessResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/httpt.ErrorResponse"}}
                }
            }
        },
        "/drafts": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Drafts"],
                "summary": "Open a consignment draft",
                "responses": {
                    "201": {"description": "Draft view"}
                }
            }
        },
        "/drafts/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Drafts"],
                "summary": "Get a draft",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Draft view"},
                    "404": {"description": "Unknown or expired draft", "schema": {"$ref": "#/definitions/httpt.ErrorResponse"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Drafts"],
                "summary": "Apply form edits in order",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "changes", "in": "body", "required": true, "schema": {"$ref": "#/definitions/httpt.UpdateDraftRequest"}}
                ],
                "responses": {
                    "200": {"description": "Draft view"},
                    "400": {"description": "Unknown field or bad value", "schema": {"$ref": "#/definitions/httpt.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Drafts"],
                "summary": "Discard a draft",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "Discarded"}
                }
            }
        },
        "/drafts/{id}/rate-card/retry": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Drafts"],
                "summary": "Retry a failed rate card lookup",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Draft view"}
                }
            }
        },
        "/drafts/{id}/submit": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Drafts"],
                "summary": "Submit a draft as a consignment",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created consignment and reset draft in data", "schema": {"$ref": "#/definitions/httpt.SuccessResponse"}},
                    "400": {"description": "Submission blocked", "schema": {"$ref": "#/definitions/httpt.ErrorResponse"}}
                }
            }
        },
        "/track/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Storefront"],
                "summary": "Track a shipment",
                "parameters": [{"type": "string", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Tracking view"},
                    "404": {"description": "Unknown tracking code", "schema": {"$ref": "#/definitions/httpt.ErrorResponse"}}
                }
            }
        },
        "/quote": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Storefront"],
                "summary": "Calculate a shipping quote",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/httpt.QuoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "Quote"},
                    "400": {"description": "Bad pincode or weight", "schema": {"$ref": "#/definitions/httpt.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "httpt.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "data": {}
            }
        },
        "httpt.SuccessResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "data": {}
            }
        },
        "httpt.UpdateDraftRequest": {
            "type": "object",
            "required": ["changes"],
            "properties": {
                "changes": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "field": {"type": "string"},
                            "value": {"type": "string"}
                        }
                    }
                }
            }
        },
        "httpt.QuoteRequest": {
            "type": "object",
            "properties": {
                "origin_pincode": {"type": "string"},
                "destination_pincode": {"type": "string"},
                "weight_kg": {"type": "string", "example": "2.5"},
                "shipment_type": {"type": "string"},
                "service_type": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Consignment Desk API",
	Description:      "Draft, submit and export consignments; track and quote for the storefront.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
