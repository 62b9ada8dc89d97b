package api

import (
	"net/http"

	"github.com/newsroom-dev/newsroom-api/internal/api/shared"
)

// EndpointDescription documents one route of the API for the catalog
// served at GET /api.
type EndpointDescription struct {
	Description string         `json:"description"`
	Queries     []string       `json:"queries,omitempty"`
	ExampleBody map[string]any `json:"exampleRequestBody,omitempty"`
}

// endpointCatalog is the static description of every endpoint the API
// exposes. Kept in code rather than a data file so the compiler keeps
// it honest when routes change.
var endpointCatalog = map[string]EndpointDescription{
	"GET /api": {
		Description: "serves a json representation of all the available endpoints of the api",
	},
	"GET /api/topics": {
		Description: "serves an array of all topics",
	},
	"GET /api/articles": {
		Description: "serves an array of all articles, each with its comment count",
		Queries:     []string{"sort_by", "order", "topic"},
	},
	"GET /api/articles/:article_id": {
		Description: "serves the article with the given id, including its comment count",
	},
	"PATCH /api/articles/:article_id": {
		Description: "adjusts the votes on the article with the given id and serves the updated article",
		ExampleBody: map[string]any{"inc_votes": 1},
	},
	"GET /api/articles/:article_id/comments": {
		Description: "serves an array of comments for the given article, newest first",
	},
	"POST /api/articles/:article_id/comments": {
		Description: "adds a comment to the given article and serves the created comment",
		ExampleBody: map[string]any{"username": "butter_bridge", "body": "What a cool article"},
	},
	"DELETE /api/comments/:comment_id": {
		Description: "deletes the comment with the given id",
	},
	"GET /api/users": {
		Description: "serves an array of all users",
	},
}

// GetEndpoints handles GET /api requests, serving the endpoint catalog.
func GetEndpoints(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, endpointCatalog)
}
