// Package docs hosts the generated swagger spec. Code generated by swag. DO NOT EDIT.
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
        "/auction/players/{playerID}/unsold": {
            "post": {
                "tags": ["auction"],
                "summary": "Mark a player unsold",
                "parameters": [
                    {"type": "string", "name": "playerID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/auction/sell": {
            "post": {
                "tags": ["auction"],
                "summary": "Settle a sale",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"},
                    "422": {"description": "Unprocessable Entity"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/auction/{tournamentID}/live": {
            "get": {
                "tags": ["auction"],
                "summary": "Live auction feed",
                "parameters": [
                    {"type": "string", "name": "tournamentID", "in": "path", "required": true}
                ],
                "responses": {
                    "101": {"description": "Switching Protocols"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/players": {
            "get": {
                "tags": ["players"],
                "summary": "List players",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["players"],
                "summary": "Create a player",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/players/{playerID}": {
            "get": {
                "tags": ["players"],
                "summary": "Get a player",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "tags": ["players"],
                "summary": "Update a player",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["players"],
                "summary": "Delete a player",
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/team-players": {
            "get": {
                "tags": ["auction"],
                "summary": "List settled purchases",
                "parameters": [
                    {"type": "string", "name": "tournament_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/teams": {
            "get": {
                "tags": ["teams"],
                "summary": "List teams",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["teams"],
                "summary": "Create a team",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/teams/{teamID}": {
            "get": {
                "tags": ["teams"],
                "summary": "Get a team",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "tags": ["teams"],
                "summary": "Update a team",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["teams"],
                "summary": "Delete a team",
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/tournaments": {
            "get": {
                "tags": ["tournaments"],
                "summary": "List tournaments",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["tournaments"],
                "summary": "Create a tournament",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/tournaments/{tournamentID}": {
            "get": {
                "tags": ["tournaments"],
                "summary": "Get a tournament",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "tags": ["tournaments"],
                "summary": "Update a tournament",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["tournaments"],
                "summary": "Delete a tournament",
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/tournaments/{tournamentID}/dashboard": {
            "get": {
                "tags": ["tournaments"],
                "summary": "Tournament dashboard",
                "parameters": [
                    {"type": "string", "name": "tournamentID", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
