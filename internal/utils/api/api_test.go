package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/ldxinsight/ldx-cli/internal/utils/test/assert"
)

func TestIncludeQuery(t *testing.T) {
	for _, tc := range []struct {
		description string
		query       url.Values
		expected    string
	}{
		{
			description: "Should leave the url untouched with no query",
			expected:    "",
		},
		{
			description: "Should encode every provided value",
			query:       url.Values{"q": {"health"}, "page": {"2"}},
			expected:    "page=2&q=health",
		},
		{
			description: "Should skip blank values",
			query:       url.Values{"q": {""}, "category": {"Finance"}},
			expected:    "category=Finance",
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "http://localhost:8080/api/v1/datasets", nil)
			assert.Nil(t, err)

			IncludeQuery(req, tc.query)

			assert.Equal(t, tc.expected, req.URL.RawQuery)
		})
	}
}

func TestErrUnexpectedStatusCode(t *testing.T) {
	err := ErrUnexpectedStatusCode{"download dataset", http.StatusTeapot}
	assert.Equal(t, "failed to download dataset: unexpected status code 418", err.Error())
}
