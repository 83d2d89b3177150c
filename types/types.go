// Package types defines the data structures used in the slug shortener service.
package types

// URLRecord is a stored slug to original URL mapping.
type URLRecord struct {
	Slug string
	URL  string
}

// ShortenRequest represents the request body of the shorten endpoint.
type ShortenRequest struct {
	URL string `json:"url" validate:"required"`
}

// URLResponse represents the response body of both the shorten and fetch endpoints.
type URLResponse struct {
	Slug string `json:"slug"`
	URL  string `json:"url"`
}

// ErrorResponse represents an error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewURLResponse builds the response body for a stored record.
func NewURLResponse(record URLRecord) URLResponse {
	return URLResponse{Slug: record.Slug, URL: record.URL}
}
