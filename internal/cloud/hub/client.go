package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ldxinsight/ldx-cli/internal/auth"
	"github.com/ldxinsight/ldx-cli/internal/utils/api"

	"golang.org/x/sync/singleflight"
)

// set of default client settings
const (
	DefaultBaseURL = "http://localhost:8080/api/v1"
	DefaultAppCode = "hit-members"
	DefaultTimeout = 20 * time.Second
)

const (
	// requests to paths containing this segment never trigger a session refresh
	authPathMarker = "/auth"

	refreshKey = "refresh"
)

// Client is an Open Linked Hub client
type Client interface {
	Login(ctx context.Context, creds Credentials) (auth.Session, error)
	Register(ctx context.Context, creds Credentials) (auth.Session, error)
	Refresh(ctx context.Context, refreshToken string) (auth.Session, error)

	Metadata(ctx context.Context) (Metadata, error)

	Datasets(ctx context.Context, filter DatasetFilter) (DatasetPage, error)
	Dataset(ctx context.Context, id string) (Dataset, error)
	DatasetCategories(ctx context.Context) ([]string, error)
	DatasetsByCategory(ctx context.Context, category string, pagination Pagination) (DatasetPage, error)
	CreateDataset(ctx context.Context, req DatasetRequest) (Dataset, error)
	UpdateDataset(ctx context.Context, id string, req DatasetRequest) (Dataset, error)
	DeleteDataset(ctx context.Context, id string) error
	RecordDatasetView(ctx context.Context, id string) error
	DatasetDownloadURL(ctx context.Context, id string) (string, error)

	StatsSummary(ctx context.Context) (StatsSummary, error)
	StatsByCategory(ctx context.Context) ([]CategoryStat, error)
	TopViewedDatasets(ctx context.Context, limit int) ([]Dataset, error)
	TopDownloadedDatasets(ctx context.Context, limit int) ([]Dataset, error)

	Users(ctx context.Context) ([]User, error)
	User(ctx context.Context, studentCode string) (User, error)
	UserByID(ctx context.Context, id string) (User, error)

	Forecast(ctx context.Context, req ForecastRequest) (Forecast, error)
	Simulate(ctx context.Context, req SimulationRequest) (Forecast, error)
}

// SessionStore is the session the client authenticates with
type SessionStore interface {
	Session() auth.Session
	Route() auth.Route
	Pages() auth.Pages
	LogIn(session auth.Session, opts auth.LogInOptions) error
	LogOut(opts auth.LogOutOptions) error
}

// Config is the client config
type Config struct {
	BaseURL string
	AppCode string
	Timeout time.Duration
	Logger  *log.Logger
}

// NewClient creates a new client without a session
func NewClient(config Config) Client {
	return newClient(config, noopSession{}, nil)
}

// NewAuthClient creates a new client that authenticates with, and manages, the provided session
// Once an expired session is refreshed, the reloader (if any) reloads the declared data
func NewAuthClient(config Config, session SessionStore, reloader Reloader) Client {
	return newClient(config, session, reloader)
}

func newClient(config Config, session SessionStore, reloader Reloader) *client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.AppCode == "" {
		config.AppCode = DefaultAppCode
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.Logger == nil {
		config.Logger = log.New(ioutil.Discard, "", 0)
	}

	return &client{
		baseURL:    strings.TrimSuffix(config.BaseURL, "/"),
		appCode:    config.AppCode,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     config.Logger,
		session:    session,
		reloader:   reloader,
		refreshes:  &singleflight.Group{},
	}
}

type client struct {
	baseURL    string
	appCode    string
	httpClient *http.Client
	logger     *log.Logger
	session    SessionStore
	reloader   Reloader
	refreshes  *singleflight.Group
}

func (c *client) doJSON(ctx context.Context, method, path string, payload interface{}, options api.RequestOptions) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	options.Body = bytes.NewReader(body)
	options.ContentType = api.MediaTypeJSON

	return c.do(ctx, method, path, options)
}

func (c *client) newRequest(ctx context.Context, method, path string, options api.RequestOptions) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, options.Body)
	if err != nil {
		return nil, err
	}

	api.IncludeQuery(req, options.Query)

	req.Header.Set(api.HeaderAppCode, c.appCode)

	if options.ContentType != "" {
		req.Header.Set(api.HeaderContentType, options.ContentType)
	}

	return req, nil
}

func (c *client) do(ctx context.Context, method, path string, options api.RequestOptions) (*http.Response, error) {
	req, err := c.newRequest(ctx, method, path, options)
	if err != nil {
		return nil, err
	}

	// read at request time so a refreshed session is picked up
	token := c.session.Session().AccessToken
	if token != "" {
		req.Header.Set(api.HeaderAuthorization, "Bearer "+token)
	}

	res, resErr := c.httpClient.Do(req)
	if resErr != nil {
		return nil, resErr
	}

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return res, nil
	}
	defer res.Body.Close()

	parsedErr := parseResponseError(res)
	if res.StatusCode != http.StatusUnauthorized {
		return nil, parsedErr
	}

	return nil, c.handleUnauthorized(ctx, path, token, parsedErr)
}

// postLoginTarget keeps the pending target of a login page,
// so failed logins do not nest redirects nor point back at the login page
func postLoginTarget(route auth.Route, pages auth.Pages) string {
	if redirect := route.Redirect(); redirect != "" {
		return redirect
	}
	if route.Path == pages.Login {
		return pages.Home
	}
	return route.String()
}

func (c *client) handleUnauthorized(ctx context.Context, path, token string, cause error) error {
	if strings.Contains(path, authPathMarker) {
		c.logger.Printf("%s %s", path, cause)
		if err := c.session.LogOut(auth.LogOutOptions{Redirect: postLoginTarget(c.session.Route(), c.session.Pages())}); err != nil {
			return err
		}
		return cause
	}

	if refreshPrevented(ctx) {
		return cause
	}

	if changed, err := c.sessionChanged(token, cause); changed {
		if err != nil {
			return err
		}
		return sessionRefreshedError{cause}
	}

	// the refresh outlives any single caller, each waiter only stops waiting on its own cancellation
	refresh := c.refreshes.DoChan(refreshKey, func() (interface{}, error) {
		if changed, err := c.sessionChanged(token, cause); changed {
			return nil, err
		}
		return nil, c.refreshSession(detachedContext{ctx})
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-refresh:
		if res.Err != nil {
			return res.Err
		}
	}
	return sessionRefreshedError{cause}
}

// sessionChanged reports whether the session changed since the request was sent with token
// A rotated session needs no refresh, an ended session cannot be refreshed
func (c *client) sessionChanged(token string, cause error) (bool, error) {
	current := c.session.Session().AccessToken
	switch {
	case current == token:
		return false, nil
	case current == "":
		return true, fmt.Errorf("%w: %s", ErrTokenRefresh, cause)
	default:
		return true, nil
	}
}

func (c *client) refreshSession(ctx context.Context) error {
	session, err := c.Refresh(ctx, c.session.Session().RefreshToken)
	if err != nil {
		c.logger.Printf("failed to refresh session: %s", err)
		if logOutErr := c.session.LogOut(auth.LogOutOptions{}); logOutErr != nil {
			return logOutErr
		}
		return fmt.Errorf("%w: %s", ErrTokenRefresh, err)
	}

	if err := c.session.LogIn(session, auth.LogInOptions{NoRedirect: true}); err != nil {
		return err
	}

	if c.reloader == nil {
		return nil
	}
	return c.reloader.Reload(preventRefresh(ctx))
}

type refreshPreventedKey struct{}

func preventRefresh(ctx context.Context) context.Context {
	return context.WithValue(ctx, refreshPreventedKey{}, true)
}

func refreshPrevented(ctx context.Context) bool {
	prevented, _ := ctx.Value(refreshPreventedKey{}).(bool)
	return prevented
}

// detachedContext keeps the values of its parent, the refresh-prevented marker included,
// but none of its deadline or cancellation
type detachedContext struct {
	parent context.Context
}

func (detachedContext) Deadline() (time.Time, bool) { return time.Time{}, false }

func (detachedContext) Done() <-chan struct{} { return nil }

func (detachedContext) Err() error { return nil }

func (dc detachedContext) Value(key interface{}) interface{} { return dc.parent.Value(key) }

type noopSession struct{}

func (noopSession) Session() auth.Session { return auth.Session{} }

func (noopSession) Route() auth.Route { return auth.Route{} }

func (noopSession) Pages() auth.Pages { return auth.Pages{} }

func (noopSession) LogIn(session auth.Session, opts auth.LogInOptions) error { return nil }

func (noopSession) LogOut(opts auth.LogOutOptions) error { return nil }

func decodeJSON(res *http.Response, out interface{}) error {
	defer res.Body.Close()
	return json.NewDecoder(res.Body).Decode(out)
}
