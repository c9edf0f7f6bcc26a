package api

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// set of supported api header keys
const (
	HeaderAppCode       = "App-Code"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

// set of supported api media types
const (
	MediaTypeJSON = "application/json"
)

// RequestOptions are options to configure an *http.Request
type RequestOptions struct {
	Body        io.Reader
	ContentType string
	Query       url.Values
}

// IncludeQuery encodes the provided query values onto the request url
func IncludeQuery(req *http.Request, query url.Values) {
	if len(query) == 0 {
		return
	}

	q := req.URL.Query()
	for key, values := range query {
		for _, value := range values {
			if value == "" {
				continue
			}
			q.Add(key, value)
		}
	}
	req.URL.RawQuery = q.Encode()
}

// ErrUnexpectedStatusCode is an error for when a response returns
// a status code the caller did not expect
type ErrUnexpectedStatusCode struct {
	Action     string
	StatusCode int
}

func (err ErrUnexpectedStatusCode) Error() string {
	return fmt.Sprintf("failed to %s: unexpected status code %d", err.Action, err.StatusCode)
}
