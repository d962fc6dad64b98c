package api

import (
	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
	"github.com/jonesrussell/north-cloud/techintel/internal/pipeline"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNoArticles     = "NO_ARTICLES"
	CodeRateLimited    = "RATE_LIMITED"
	CodeInternal       = "INTERNAL_ERROR"
)

// AnalyzeRequest is the body of POST /api/v1/analyze. Omitting sources
// selects every configured source; an empty list selects none, so a custom
// URL is then required.
type AnalyzeRequest struct {
	Sources     []string `json:"sources"`
	CustomURL   string   `json:"custom_url"`
	MaxArticles int      `json:"max_articles"`
}

// SourcesResponse lists the configured sources.
type SourcesResponse struct {
	Sources []domain.Source `json:"sources"`
	Total   int             `json:"total"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error   string                  `json:"error"`
	Code    string                  `json:"code"`
	Sources []pipeline.SourceReport `json:"sources,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
}
