// Package docs contains the generated OpenAPI description served by the
// Swagger UI route. Regenerate with: swag init -g cmd/server/main.go
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
        "/workouts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Workouts"],
                "summary": "Aggregated day view",
                "operationId": "getWorkoutDay",
                "parameters": [
                    {"type": "integer", "name": "uid", "in": "query", "required": true},
                    {"type": "string", "name": "date", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.WorkoutDay"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Workouts"],
                "summary": "Record a workout",
                "operationId": "createWorkout",
                "parameters": [
                    {"description": "Workout payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateWorkoutRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Workout"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/workouts/{id}": {
            "delete": {
                "tags": ["Workouts"],
                "summary": "Delete a workout row",
                "operationId": "deleteWorkout",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/sets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Sets"],
                "summary": "Batch-fetch sets",
                "operationId": "listSets",
                "parameters": [
                    {"type": "string", "name": "ids", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Set"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sets"],
                "summary": "Create a set",
                "operationId": "createSet",
                "parameters": [
                    {"description": "Set payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateSetRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Set"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/sets/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Sets"],
                "summary": "Fetch a set",
                "operationId": "getSet",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Set"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "tags": ["Sets"],
                "summary": "Update a set",
                "operationId": "updateSet",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "New values", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateSetRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Sets"],
                "summary": "Delete a set",
                "description": "Removes a set and, atomically, every workout row referencing it.",
                "operationId": "deleteSet",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Create a user",
                "operationId": "createUser",
                "parameters": [
                    {"description": "User payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Fetch a user",
                "operationId": "getUser",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "tags": ["Users"],
                "summary": "Update a user",
                "operationId": "updateUser",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "New values", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateUserRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Users"],
                "summary": "Delete a user",
                "operationId": "deleteUser",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/exercises": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Exercises"],
                "summary": "List exercises",
                "operationId": "listExercises",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Exercise"}}}
                }
            }
        },
        "/exercises/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Exercises"],
                "summary": "Fetch an exercise",
                "operationId": "getExercise",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Exercise"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/seed": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Seed"],
                "summary": "Generate random workout data",
                "operationId": "seed",
                "parameters": [
                    {"type": "integer", "name": "count", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SeedResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Exercise": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "muscle_group": {"type": "string"},
                "icon": {"type": "string"}
            }
        },
        "domain.Set": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "reps": {"type": "integer"},
                "weight": {"type": "number"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "firstname": {"type": "string"},
                "lastname": {"type": "string"},
                "dob": {"type": "string"}
            }
        },
        "domain.Workout": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "uid": {"type": "integer"},
                "date": {"type": "string"},
                "eid": {"type": "integer"},
                "sid": {"type": "integer"}
            }
        },
        "domain.WorkoutDay": {
            "type": "object",
            "additionalProperties": {"$ref": "#/definitions/domain.ExerciseGroup"}
        },
        "domain.ExerciseGroup": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "muscle_group": {"type": "string"},
                "icon": {"type": "string"},
                "sets": {"type": "object", "additionalProperties": {"$ref": "#/definitions/domain.SetEntry"}}
            }
        },
        "domain.SetEntry": {
            "type": "object",
            "properties": {
                "reps": {"type": "integer"},
                "weight": {"type": "number"}
            }
        },
        "handlers.CreateWorkoutRequest": {
            "type": "object",
            "required": ["uid", "date", "eid", "sid"],
            "properties": {
                "uid": {"type": "integer", "example": 1},
                "date": {"type": "string", "example": "2024/01/01"},
                "eid": {"type": "integer", "example": 7},
                "sid": {"type": "integer", "example": 101}
            }
        },
        "handlers.CreateSetRequest": {
            "type": "object",
            "required": ["reps", "weight"],
            "properties": {
                "reps": {"type": "integer", "example": 10},
                "weight": {"type": "number", "example": 60.255}
            }
        },
        "handlers.UpdateSetRequest": {
            "type": "object",
            "required": ["reps", "weight"],
            "properties": {
                "reps": {"type": "integer", "example": 12},
                "weight": {"type": "number", "example": 62.5}
            }
        },
        "handlers.CreateUserRequest": {
            "type": "object",
            "required": ["firstname", "lastname"],
            "properties": {
                "firstname": {"type": "string", "example": "Ada"},
                "lastname": {"type": "string", "example": "Lovelace"},
                "dob": {"type": "string", "example": "1990/06/15"}
            }
        },
        "handlers.UpdateUserRequest": {
            "type": "object",
            "required": ["firstname", "lastname"],
            "properties": {
                "firstname": {"type": "string", "example": "Ada"},
                "lastname": {"type": "string", "example": "Byron"},
                "dob": {"type": "string", "example": "1990/06/15"}
            }
        },
        "handlers.SeedResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "generated": {"type": "array", "items": {"$ref": "#/definitions/services.GeneratedWorkout"}}
            }
        },
        "services.GeneratedWorkout": {
            "type": "object",
            "properties": {
                "uid": {"type": "integer"},
                "date": {"type": "string"},
                "eid": {"type": "integer"},
                "sid": {"type": "integer"},
                "reps": {"type": "integer"},
                "weight": {"type": "number"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string", "example": "123e4567-e89b-12d3-a456-426614174000"},
                "code": {"type": "string", "example": "not_found"},
                "message": {"type": "string", "example": "exercise not found"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Workout Tracker API",
	Description:      "CRUD endpoints over users, exercises, sets, and workouts plus the aggregated per-day workout view.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
