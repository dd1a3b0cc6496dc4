// Package docs registers the swagger spec served at /swagger.
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
        "/rooms": {
            "get": {
                "description": "Paginated room catalog, 4 rooms per page, filtered by keyword, category and guest capacity.",
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "List rooms",
                "parameters": [
                    {"type": "string", "description": "Room name contains", "name": "keyword", "in": "query"},
                    {"type": "string", "description": "King, Single or Twins", "name": "category", "in": "query"},
                    {"type": "integer", "description": "Exact guest capacity", "name": "guestCapacity", "in": "query"},
                    {"type": "integer", "description": "Page, starting at 1", "name": "page", "in": "query"}
                ],
                "responses": {}
            }
        },
        "/rooms/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Get a room with its reviews",
                "parameters": [
                    {"type": "integer", "description": "Room ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {}
            }
        },
        "/reviews": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "List the reviews of a room",
                "parameters": [
                    {"type": "integer", "description": "Room ID", "name": "roomId", "in": "query", "required": true}
                ],
                "responses": {}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Create or update the current user's review of a room",
                "parameters": [
                    {"description": "Review", "name": "review", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.ReviewInput"}}
                ],
                "responses": {}
            }
        },
        "/bookings/check": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Check whether a room is free for [checkInDate, checkOutDate)",
                "parameters": [
                    {"type": "integer", "description": "Room ID", "name": "roomId", "in": "query", "required": true},
                    {"type": "string", "description": "YYYY-MM-DD", "name": "checkInDate", "in": "query", "required": true},
                    {"type": "string", "description": "YYYY-MM-DD", "name": "checkOutDate", "in": "query", "required": true}
                ],
                "responses": {}
            }
        },
        "/bookings/booked-dates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "List the booked nights of a room",
                "parameters": [
                    {"type": "integer", "description": "Room ID", "name": "roomId", "in": "query", "required": true}
                ],
                "responses": {}
            }
        },
        "/admin/rooms": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create a room, uploading its images",
                "parameters": [
                    {"description": "Room", "name": "room", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.RoomInput"}}
                ],
                "responses": {}
            }
        },
        "/admin/rooms/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update a room; new images replace the old ones",
                "parameters": [
                    {"type": "integer", "description": "Room ID", "name": "id", "in": "path", "required": true},
                    {"description": "Room", "name": "room", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.RoomInput"}}
                ],
                "responses": {}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete a room with its reviews, bookings and images",
                "parameters": [
                    {"type": "integer", "description": "Room ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {}
            }
        },
        "/reviews/check": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Whether the current user has a confirmed booking of the room",
                "parameters": [
                    {"type": "integer", "description": "Room ID", "name": "roomId", "in": "query", "required": true}
                ],
                "responses": {}
            }
        },
        "/admin/reviews": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete a review and recompute the room rating",
                "parameters": [
                    {"type": "integer", "description": "Room ID", "name": "roomId", "in": "query", "required": true},
                    {"type": "integer", "description": "Review ID", "name": "id", "in": "query", "required": true}
                ],
                "responses": {}
            }
        },
        "/bookings": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Book a room for [checkInDate, checkOutDate)",
                "parameters": [
                    {"description": "Booking", "name": "booking", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateBookingRequest"}}
                ],
                "responses": {}
            }
        },
        "/bookings/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "List the current user's bookings",
                "responses": {}
            }
        },
        "/bookings/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Get a booking of the current user (any booking for admins)",
                "parameters": [
                    {"type": "integer", "description": "Booking ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {}
            }
        },
        "/bookings/{id}/cancel": {
            "put": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Cancel a booking; it stops blocking the calendar",
                "parameters": [
                    {"type": "integer", "description": "Booking ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {}
            }
        },
        "/admin/bookings": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List all bookings",
                "responses": {}
            }
        },
        "/admin/bookings/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete a booking",
                "parameters": [
                    {"type": "integer", "description": "Booking ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {}
            }
        }
    },
    "definitions": {
        "services.RoomInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "address": {"type": "string"},
                "pricePerNight": {"type": "integer"},
                "guestCapacity": {"type": "integer"},
                "numOfBeds": {"type": "integer"},
                "internet": {"type": "boolean"},
                "breakfast": {"type": "boolean"},
                "airConditioned": {"type": "boolean"},
                "petsAllowed": {"type": "boolean"},
                "roomCleaning": {"type": "boolean"},
                "category": {"type": "string", "enum": ["King", "Single", "Twins"]},
                "images": {"type": "array", "items": {"type": "string"}}
            }
        },
        "services.ReviewInput": {
            "type": "object",
            "required": ["roomId"],
            "properties": {
                "roomId": {"type": "integer"},
                "rating": {"type": "integer", "minimum": 1, "maximum": 5},
                "comment": {"type": "string", "maxLength": 2000}
            }
        },
        "controllers.CreateBookingRequest": {
            "type": "object",
            "required": ["roomId", "checkInDate", "checkOutDate"],
            "properties": {
                "roomId": {"type": "integer"},
                "checkInDate": {"type": "string", "example": "2024-01-01"},
                "checkOutDate": {"type": "string", "example": "2024-01-05"},
                "amountPaid": {"type": "integer"},
                "paymentRef": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "BookIt API",
	Description:      "Room catalog, reviews and reservations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
