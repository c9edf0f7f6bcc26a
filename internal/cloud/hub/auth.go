package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ldxinsight/ldx-cli/internal/auth"
	"github.com/ldxinsight/ldx-cli/internal/utils/api"
)

const (
	authLoginPath    = "/auth/login"
	authRegisterPath = "/auth/register"
	authRefreshPath  = "/auth/refresh"
)

// set of envelope messages
const (
	messageSuccess = "success"
	messageError   = "error"
)

var errMissingAccessToken = errors.New("no access token was issued")

// Credentials are the user credentials
// The portal logs in with an email, the DTI Predictor registers with a username
type Credentials struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

type authEnvelope struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Data    authData `json:"data"`
	Error   string   `json:"error"`
}

type authData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Token        string `json:"token"`
}

func (env authEnvelope) session() (auth.Session, error) {
	if env.Message == messageError {
		msg := env.Error
		if msg == "" {
			msg = messageError
		}
		return auth.Session{}, ServerError{StatusCode: http.StatusOK, Code: env.Code, Message: msg}
	}

	session := auth.Session{AccessToken: env.Data.AccessToken, RefreshToken: env.Data.RefreshToken}
	if session.AccessToken == "" {
		// the DTI Predictor issues a single token with no refresh token
		session.AccessToken = env.Data.Token
	}
	if session.AccessToken == "" {
		return auth.Session{}, errMissingAccessToken
	}
	return session, nil
}

type refreshPayload struct {
	RefreshToken string `json:"refreshToken"`
}

func (c *client) Login(ctx context.Context, creds Credentials) (auth.Session, error) {
	return c.authenticate(ctx, authLoginPath, creds)
}

func (c *client) Register(ctx context.Context, creds Credentials) (auth.Session, error) {
	return c.authenticate(ctx, authRegisterPath, creds)
}

func (c *client) authenticate(ctx context.Context, path string, creds Credentials) (auth.Session, error) {
	res, err := c.doJSON(ctx, http.MethodPost, path, creds, api.RequestOptions{})
	if err != nil {
		return auth.Session{}, err
	}
	defer res.Body.Close()

	var env authEnvelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return auth.Session{}, err
	}
	return env.session()
}

// Refresh exchanges the refresh token for a new session
// The call is sent without the current access token and never triggers another refresh
func (c *client) Refresh(ctx context.Context, refreshToken string) (auth.Session, error) {
	body, err := json.Marshal(refreshPayload{refreshToken})
	if err != nil {
		return auth.Session{}, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, authRefreshPath, api.RequestOptions{
		Body:        bytes.NewReader(body),
		ContentType: api.MediaTypeJSON,
	})
	if err != nil {
		return auth.Session{}, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return auth.Session{}, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return auth.Session{}, fmt.Errorf("%w: %s", api.ErrUnexpectedStatusCode{Action: "refresh session", StatusCode: res.StatusCode}, parseResponseError(res))
	}

	var env authEnvelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return auth.Session{}, err
	}
	return env.session()
}
