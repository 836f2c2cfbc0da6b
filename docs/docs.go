// Package docs holds the Swagger document served under /swagger in local mode.
// It follows the swag annotations on the controllers and is kept in step by hand.
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
        "/api/admin/awards/period": {
            "put": {
                "security": [{"AdminToken": []}],
                "description": "Omitted dates keep their previous value",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Open or close voting",
                "parameters": [
                    {"description": "Voting period", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SetVotingPeriodRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/awards.VotingPeriod"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/admin/awards/votes/reset": {
            "post": {
                "security": [{"AdminToken": []}],
                "description": "Irreversible. The voting period and catalog are untouched.",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete every vote",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/awards/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["awards"],
                "summary": "List the award catalog",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/awards.AwardCategory"}}}
                }
            }
        },
        "/api/awards/period": {
            "get": {
                "produces": ["application/json"],
                "tags": ["awards"],
                "summary": "Get the voting period",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/awards.VotingPeriod"}}
                }
            }
        },
        "/api/awards/leaderboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["awards"],
                "summary": "Top nominees of every category, in catalog order",
                "parameters": [
                    {"type": "integer", "default": 3, "description": "Leaderboard size", "name": "top", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.CategoryLeaderboardResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/awards/leaderboard/{categoryId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["awards"],
                "summary": "Top nominees of one category",
                "parameters": [
                    {"type": "string", "description": "Category ID", "name": "categoryId", "in": "path", "required": true},
                    {"type": "integer", "default": 3, "description": "Leaderboard size", "name": "top", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CategoryLeaderboardResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/awards/nominees/{nomineeId}/votes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["awards"],
                "summary": "List the votes received by a nominee",
                "parameters": [
                    {"type": "string", "description": "Nominee ID", "name": "nomineeId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/awards.Vote"}}}
                }
            }
        },
        "/api/awards/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["awards"],
                "summary": "Aggregate voting statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/awards.Statistics"}}
                }
            }
        },
        "/api/awards/tally": {
            "get": {
                "produces": ["application/json"],
                "tags": ["awards"],
                "summary": "Vote tallies per category and nominee",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/awards.VoteCount"}}}}
                }
            }
        },
        "/api/awards/voters/{voterId}/categories/{categoryId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["awards"],
                "summary": "Check whether a voter already nominated someone in a category",
                "parameters": [
                    {"type": "string", "description": "Voter ID", "name": "voterId", "in": "path", "required": true},
                    {"type": "string", "description": "Category ID", "name": "categoryId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HasVotedResponse"}}
                }
            }
        },
        "/api/awards/voters/{voterId}/votes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["awards"],
                "summary": "List the votes cast by a voter",
                "parameters": [
                    {"type": "string", "description": "Voter ID", "name": "voterId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/awards.Vote"}}}
                }
            }
        },
        "/api/awards/votes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["awards"],
                "summary": "List all votes in the order they were first cast",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/awards.Vote"}}}
                }
            },
            "post": {
                "description": "Casting again in the same category replaces the voter's previous nomination",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["awards"],
                "summary": "Nominate someone for an award",
                "parameters": [
                    {"description": "Nomination", "name": "vote", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CastVoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/awards.Vote"}},
                    "400": {"description": "Invalid request or unknown category", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Voting is closed", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Unexpected internal error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/awards/votes/recent": {
            "get": {
                "produces": ["application/json"],
                "tags": ["awards"],
                "summary": "List the first votes of the log, as shown on the admin dashboard",
                "parameters": [
                    {"type": "integer", "default": 10, "description": "Maximum number of votes", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/awards.Vote"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "awards.AwardCategory": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "icon": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "awards.CategoryVoteCount": {
            "type": "object",
            "properties": {
                "categoryId": {"type": "string"},
                "categoryName": {"type": "string"},
                "voteCount": {"type": "integer"}
            }
        },
        "awards.LeaderboardEntry": {
            "type": "object",
            "properties": {
                "nomineeId": {"type": "string"},
                "percentage": {"type": "number"},
                "rank": {"type": "integer"},
                "voteCount": {"type": "integer"}
            }
        },
        "awards.Statistics": {
            "type": "object",
            "properties": {
                "categoriesCount": {"type": "integer"},
                "totalVotes": {"type": "integer"},
                "uniqueNominees": {"type": "integer"},
                "uniqueVoters": {"type": "integer"},
                "votesByCategory": {"type": "array", "items": {"$ref": "#/definitions/awards.CategoryVoteCount"}}
            }
        },
        "awards.Vote": {
            "type": "object",
            "properties": {
                "categoryId": {"type": "string"},
                "id": {"type": "string"},
                "nomineeId": {"type": "string"},
                "reason": {"type": "string"},
                "timestamp": {"type": "string"},
                "voterId": {"type": "string"}
            }
        },
        "awards.VoteCount": {
            "type": "object",
            "properties": {
                "categoryId": {"type": "string"},
                "count": {"type": "integer"},
                "nomineeId": {"type": "string"},
                "voters": {"type": "array", "items": {"type": "string"}}
            }
        },
        "awards.VotingPeriod": {
            "type": "object",
            "properties": {
                "endDate": {"type": "string"},
                "isOpen": {"type": "boolean"},
                "startDate": {"type": "string"}
            }
        },
        "models.CastVoteRequest": {
            "type": "object",
            "required": ["categoryId", "nomineeId", "voterId"],
            "properties": {
                "categoryId": {"type": "string"},
                "nomineeId": {"type": "string"},
                "reason": {"type": "string"},
                "voterId": {"type": "string"}
            }
        },
        "models.CategoryLeaderboardResponse": {
            "type": "object",
            "properties": {
                "category": {"$ref": "#/definitions/awards.AwardCategory"},
                "entries": {"type": "array", "items": {"$ref": "#/definitions/awards.LeaderboardEntry"}}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "models.HasVotedResponse": {
            "type": "object",
            "properties": {
                "categoryId": {"type": "string"},
                "hasVoted": {"type": "boolean"},
                "voterId": {"type": "string"}
            }
        },
        "models.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "models.SetVotingPeriodRequest": {
            "type": "object",
            "required": ["isOpen"],
            "properties": {
                "endDate": {"type": "string"},
                "isOpen": {"type": "boolean"},
                "startDate": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "AdminToken": {
            "type": "apiKey",
            "name": "x-admin-token",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Elevate Awards API",
	Description:      "Peer-recognition award voting: nominations, tallies, leaderboards and statistics",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
