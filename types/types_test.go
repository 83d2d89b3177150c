package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLResponseJSONTags(t *testing.T) {
	response := NewURLResponse(URLRecord{Slug: "abc123", URL: "https://example.com"})

	jsonData, err := json.Marshal(response)
	require.NoError(t, err, "Failed to marshal URLResponse")

	assert.JSONEq(t, `{"slug":"abc123","url":"https://example.com"}`, string(jsonData))
}

func TestShortenRequestDecoding(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"With url", `{"url":"https://example.com"}`, "https://example.com"},
		{"Empty object", `{}`, ""},
		{"Null url", `{"url":null}`, ""},
		{"Extra fields", `{"url":"https://example.com","slug":"ignored"}`, "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var request ShortenRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &request))
			assert.Equal(t, tt.expected, request.URL)
		})
	}
}

func TestErrorResponseJSONTags(t *testing.T) {
	jsonData, err := json.Marshal(ErrorResponse{Error: "URL not found"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"URL not found"}`, string(jsonData))
}
