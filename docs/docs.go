// Package docs registers the Movie API's Swagger 2.0 document with swag.
// The /spec endpoint and the Swagger UI both read it from the registry.
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
        "/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["Health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "Welcome message", "schema": {"type": "string"}}
                }
            }
        },
        "/movies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Full dump"],
                "summary": "Retrieve all movies",
                "description": "All supplied filters are combined with AND. runtime and gross bounds compare the stored text.",
                "parameters": [
                    {"type": "string", "name": "series_title", "in": "query", "description": "case-insensitive substring"},
                    {"type": "integer", "name": "released_year", "in": "query"},
                    {"type": "string", "name": "runtime", "in": "query"},
                    {"type": "string", "name": "runtime_lt", "in": "query"},
                    {"type": "string", "name": "runtime_gt", "in": "query"},
                    {"type": "string", "name": "genre", "in": "query", "description": "case-insensitive substring"},
                    {"type": "number", "name": "imdb_rating", "in": "query"},
                    {"type": "number", "name": "imdb_rating_lt", "in": "query"},
                    {"type": "number", "name": "imdb_rating_gt", "in": "query"},
                    {"type": "integer", "name": "no_of_votes", "in": "query"},
                    {"type": "integer", "name": "no_of_votes_lt", "in": "query"},
                    {"type": "integer", "name": "no_of_votes_gt", "in": "query"},
                    {"type": "string", "name": "gross", "in": "query"},
                    {"type": "string", "name": "gross_lt", "in": "query"},
                    {"type": "string", "name": "gross_gt", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "A list of movies", "schema": {"type": "array", "items": {"$ref": "#/definitions/Movie"}}},
                    "400": {"description": "Malformed numeric filter", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Create entry"],
                "summary": "Add a new movie",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MovieInput"}}
                ],
                "responses": {
                    "201": {"description": "The created movie", "schema": {"$ref": "#/definitions/Movie"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/movies/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Single entry"],
                "summary": "Retrieve a movie by ID",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true, "description": "ID of the movie to retrieve"}
                ],
                "responses": {
                    "200": {"description": "A movie", "schema": {"$ref": "#/definitions/Movie"}},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Update entry"],
                "summary": "Update a movie by ID",
                "description": "Only the supplied fields are changed.",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true, "description": "ID of the movie to update"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MovieInput"}}
                ],
                "responses": {
                    "200": {"description": "The updated movie", "schema": {"$ref": "#/definitions/Movie"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "tags": ["Delete entry"],
                "summary": "Delete a movie by ID",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true, "description": "ID of the movie to delete"}
                ],
                "responses": {
                    "204": {"description": "No content, movie deleted."},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "Movie not found"}}
        },
        "MovieInput": {
            "type": "object",
            "properties": {
                "poster_link": {"type": "string", "example": "https://example.com/poster.jpg"},
                "series_title": {"type": "string", "example": "New Movie"},
                "released_year": {"type": "integer", "example": 2021},
                "certificate": {"type": "string", "example": "A"},
                "runtime": {"type": "string", "example": "120 min"},
                "genre": {"type": "string", "example": "Drama"},
                "imdb_rating": {"type": "number", "example": 8.5},
                "overview": {"type": "string", "example": "A new movie overview..."},
                "meta_score": {"type": "integer", "example": 75},
                "director": {"type": "string", "example": "Some Director"},
                "star1": {"type": "string", "example": "Actor One"},
                "star2": {"type": "string", "example": "Actor Two"},
                "star3": {"type": "string", "example": "Actor Three"},
                "star4": {"type": "string", "example": "Actor Four"},
                "no_of_votes": {"type": "integer", "example": 123456},
                "gross": {"type": "string", "example": "10,000,000"}
            }
        },
        "Movie": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "poster_link": {"type": "string", "x-nullable": true},
                "series_title": {"type": "string", "example": "The Shawshank Redemption"},
                "released_year": {"type": "integer", "x-nullable": true, "example": 1994},
                "certificate": {"type": "string", "x-nullable": true, "example": "A"},
                "runtime": {"type": "string", "x-nullable": true, "example": "142 min"},
                "genre": {"type": "string", "x-nullable": true, "example": "Drama"},
                "imdb_rating": {"type": "number", "x-nullable": true, "example": 9.3},
                "overview": {"type": "string", "x-nullable": true},
                "meta_score": {"type": "integer", "x-nullable": true, "example": 80},
                "director": {"type": "string", "x-nullable": true, "example": "Frank Darabont"},
                "star1": {"type": "string", "x-nullable": true},
                "star2": {"type": "string", "x-nullable": true},
                "star3": {"type": "string", "x-nullable": true},
                "star4": {"type": "string", "x-nullable": true},
                "no_of_votes": {"type": "integer", "x-nullable": true, "example": 2343110},
                "gross": {"type": "string", "x-nullable": true, "example": "28,341,469"}
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
	Title:            "Movie API",
	Description:      "CRUD and filtering over the IMDb top-1000 movie catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
