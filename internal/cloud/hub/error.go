package hub

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/ldxinsight/ldx-cli/internal/utils/api"
)

// set of client errors
var (
	// ErrTokenRefresh is returned once a rejected session could not be refreshed
	// and the user has been logged out
	ErrTokenRefresh = errors.New("token refresh failed")

	// ErrSessionRefreshed is returned by a request rejected with an expired session
	// after the session was refreshed and the declared data reloaded
	ErrSessionRefreshed = errors.New("session refreshed")
)

// ServerError is an API error response
type ServerError struct {
	StatusCode int
	Code       int
	Message    string
}

func (se ServerError) Error() string {
	return se.Message
}

type sessionRefreshedError struct {
	cause error
}

func (err sessionRefreshedError) Error() string {
	return fmt.Sprintf("%s after: %s", ErrSessionRefreshed, err.cause)
}

func (err sessionRefreshedError) Is(target error) bool { return target == ErrSessionRefreshed }

func (err sessionRefreshedError) Unwrap() error { return err.cause }

// parseResponseError reads the error envelope from the provided *http.Response
func parseResponseError(res *http.Response) error {
	mediaType, _, _ := mime.ParseMediaType(res.Header.Get(api.HeaderContentType))
	if mediaType != api.MediaTypeJSON {
		return ServerError{StatusCode: res.StatusCode, Code: res.StatusCode, Message: res.Status}
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(res.Body); err != nil {
		return err
	}

	serverError := ServerError{StatusCode: res.StatusCode, Code: res.StatusCode, Message: res.Status}

	payload := buf.String()
	if payload == "" {
		return serverError
	}

	var env struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(buf).Decode(&env); err != nil {
		serverError.Message = payload
		return serverError
	}

	if env.Code != 0 {
		serverError.Code = env.Code
	}
	switch {
	case env.Error != "":
		serverError.Message = env.Error
	case env.Message != "" && env.Message != messageError:
		serverError.Message = env.Message
	}
	return serverError
}
