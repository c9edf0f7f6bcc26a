package hub_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ldxinsight/ldx-cli/internal/auth"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/cookie"
	"github.com/ldxinsight/ldx-cli/internal/utils/test/assert"
	"github.com/ldxinsight/ldx-cli/internal/utils/test/mock"
)

const (
	oldAccessToken  = "old-access"
	oldRefreshToken = "old-refresh"
	newAccessToken  = "new-access"
	newRefreshToken = "new-refresh"
)

// hubServer is a fake portal api that only accepts the new access token
type hubServer struct {
	*httptest.Server

	refreshes     int32
	refreshStatus int
	refreshBody   string
	refreshDelay  time.Duration
	alwaysReject  bool

	mu            sync.Mutex
	refreshTokens []string
	refreshAuth   []string
}

func newHubServer(t *testing.T) *hubServer {
	t.Helper()

	s := &hubServer{
		refreshStatus: http.StatusOK,
		refreshBody:   `{"code":200,"message":"success","data":{"accessToken":"new-access","refreshToken":"new-refresh"}}`,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.refreshes, 1)

		var payload struct {
			RefreshToken string `json:"refreshToken"`
		}
		json.NewDecoder(r.Body).Decode(&payload)

		s.mu.Lock()
		s.refreshTokens = append(s.refreshTokens, payload.RefreshToken)
		s.refreshAuth = append(s.refreshAuth, r.Header.Get("Authorization"))
		s.mu.Unlock()

		time.Sleep(s.refreshDelay)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.refreshStatus)
		w.Write([]byte(s.refreshBody))
	})
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":401,"message":"error","error":"invalid credentials"}`))
	})
	mux.HandleFunc("/stats/summary", func(w http.ResponseWriter, r *http.Request) {
		if s.alwaysReject || r.Header.Get("Authorization") != "Bearer "+newAccessToken {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"code":401,"message":"error","error":"token expired"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"totalDatasets":12,"totalViews":340,"totalDownloads":56}`))
	})
	mux.HandleFunc("/stats/by-category", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"code":500,"message":"error","error":"something went wrong"}`))
	})

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func (s *hubServer) refreshCount() int {
	return int(atomic.LoadInt32(&s.refreshes))
}

type sessionSetup struct {
	store     *auth.Store
	jar       *cookie.Jar
	navigator *mock.Navigator
}

func newSession(t *testing.T, current string) sessionSetup {
	t.Helper()

	jar, err := cookie.New(&cookie.MemoryStrategy{})
	assert.Nil(t, err)

	navigator := mock.NewNavigator(current)
	store := auth.NewStore(jar, navigator, auth.Config{})
	assert.Nil(t, store.LogIn(auth.Session{oldAccessToken, oldRefreshToken}, auth.LogInOptions{NoRedirect: true}))

	return sessionSetup{store, jar, navigator}
}

func TestClientRequestHeaders(t *testing.T) {
	var appCode, authorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCode = r.Header.Get("App-Code")
		authorization = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"totalDatasets":1}`))
	}))
	defer server.Close()

	setup := newSession(t, "/")
	client := hub.NewAuthClient(hub.Config{BaseURL: server.URL}, setup.store, nil)

	t.Run("Should attach the app code and current access token", func(t *testing.T) {
		_, err := client.StatsSummary(context.Background())
		assert.Nil(t, err)
		assert.Equal(t, "hit-members", appCode)
		assert.Equal(t, "Bearer old-access", authorization)
	})

	t.Run("Should read the access token at request time", func(t *testing.T) {
		assert.Nil(t, setup.store.LogIn(auth.Session{AccessToken: "rotated"}, auth.LogInOptions{NoRedirect: true}))

		_, err := client.StatsSummary(context.Background())
		assert.Nil(t, err)
		assert.Equal(t, "Bearer rotated", authorization)
	})

	t.Run("Should not attach a bearer token without a session", func(t *testing.T) {
		_, err := hub.NewClient(hub.Config{BaseURL: server.URL}).StatsSummary(context.Background())
		assert.Nil(t, err)
		assert.Equal(t, "", authorization)
	})
}

func TestClientUnauthorized(t *testing.T) {
	t.Run("Should refresh the session and stay on the current page", func(t *testing.T) {
		server := newHubServer(t)
		setup := newSession(t, "/data")

		var reloads int32
		reloader := reloaderFunc(func(ctx context.Context) error {
			atomic.AddInt32(&reloads, 1)
			return nil
		})

		client := hub.NewAuthClient(hub.Config{BaseURL: server.URL}, setup.store, reloader)

		_, err := client.StatsSummary(context.Background())
		assert.True(t, errors.Is(err, hub.ErrSessionRefreshed), "expected session refreshed error, got: %v", err)

		var serverErr hub.ServerError
		assert.True(t, errors.As(err, &serverErr), "expected the original server error to be wrapped")
		assert.Equal(t, http.StatusUnauthorized, serverErr.StatusCode)

		assert.Equal(t, 1, server.refreshCount())
		assert.Equal(t, []string{oldRefreshToken}, server.refreshTokens)
		assert.Equal(t, []string{""}, server.refreshAuth)
		assert.Equal(t, int32(1), atomic.LoadInt32(&reloads))

		assert.Equal(t, auth.Session{newAccessToken, newRefreshToken}, setup.store.Session())
		assert.Equal(t, newAccessToken, setup.jar.Get(auth.DefaultAccessTokenCookie))
		assert.Equal(t, newRefreshToken, setup.jar.Get(auth.DefaultRefreshTokenCookie))
		assert.Equal(t, []string{}, setup.navigator.History())
	})

	for _, tc := range []struct {
		description   string
		refreshStatus int
		refreshBody   string
	}{
		{
			description:   "Should log out when the refresh is rejected",
			refreshStatus: http.StatusForbidden,
			refreshBody:   `{"code":403,"message":"error","error":"refresh token revoked"}`,
		},
		{
			description:   "Should log out when the refresh issues no access token",
			refreshStatus: http.StatusOK,
			refreshBody:   `{"code":200,"message":"success","data":{}}`,
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			server := newHubServer(t)
			server.refreshStatus = tc.refreshStatus
			server.refreshBody = tc.refreshBody

			setup := newSession(t, "/data")
			client := hub.NewAuthClient(hub.Config{BaseURL: server.URL}, setup.store, nil)

			_, err := client.StatsSummary(context.Background())
			assert.True(t, errors.Is(err, hub.ErrTokenRefresh), "expected token refresh error, got: %v", err)

			assert.False(t, setup.store.LoggedIn(), "expected store to be logged out")
			assert.Equal(t, "", setup.jar.Get(auth.DefaultAccessTokenCookie))
			assert.Equal(t, "", setup.jar.Get(auth.DefaultRefreshTokenCookie))
			assert.Equal(t, []string{"/login"}, setup.navigator.History())
		})
	}

	t.Run("Should log out without refreshing when an auth request is rejected", func(t *testing.T) {
		server := newHubServer(t)
		setup := newSession(t, "/data")
		client := hub.NewAuthClient(hub.Config{BaseURL: server.URL}, setup.store, nil)

		_, err := client.Login(context.Background(), hub.Credentials{Email: "student@hit.edu.vn", Password: "password"})
		assert.Equal(t, hub.ServerError{StatusCode: http.StatusUnauthorized, Code: 401, Message: "invalid credentials"}, err)

		assert.Equal(t, 0, server.refreshCount())
		assert.False(t, setup.store.LoggedIn(), "expected store to be logged out")
		assert.Equal(t, []string{"/login?redirect=%2Fdata"}, setup.navigator.History())
	})

	t.Run("Should keep the pending redirect when a login from the login page is rejected", func(t *testing.T) {
		server := newHubServer(t)
		setup := newSession(t, "/login?redirect=%2Fdata")
		client := hub.NewAuthClient(hub.Config{BaseURL: server.URL}, setup.store, nil)

		_, err := client.Login(context.Background(), hub.Credentials{Email: "student@hit.edu.vn", Password: "wrong"})
		assert.NotNil(t, err)

		assert.Equal(t, []string{"/login?redirect=%2Fdata"}, setup.navigator.History())
	})

	t.Run("Should send the user home after logging in when a login from the bare login page is rejected", func(t *testing.T) {
		server := newHubServer(t)
		setup := newSession(t, "/login")
		client := hub.NewAuthClient(hub.Config{BaseURL: server.URL}, setup.store, nil)

		_, err := client.Login(context.Background(), hub.Credentials{Email: "student@hit.edu.vn", Password: "wrong"})
		assert.NotNil(t, err)
		assert.Equal(t, []string{"/login?redirect=%2F"}, setup.navigator.History())

		redirect := setup.store.Route().Redirect()
		assert.Nil(t, setup.store.LogIn(auth.Session{newAccessToken, newRefreshToken}, auth.LogInOptions{RedirectTo: redirect}))
		assert.Equal(t, []string{"/login?redirect=%2F", "/"}, setup.navigator.History())
	})

	t.Run("Should not refresh a session that ended after the request was sent", func(t *testing.T) {
		server := newHubServer(t)
		setup := newSession(t, "/data")

		// the session ends while the request is in flight
		late := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/auth/refresh" {
				server.Config.Handler.ServeHTTP(w, r)
				return
			}
			assert.Nil(t, setup.store.LogOut(auth.LogOutOptions{}))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"code":401,"message":"error","error":"token expired"}`))
		}))
		defer late.Close()

		client := hub.NewAuthClient(hub.Config{BaseURL: late.URL}, setup.store, nil)

		_, err := client.StatsSummary(context.Background())
		assert.True(t, errors.Is(err, hub.ErrTokenRefresh), "expected token refresh error, got: %v", err)

		assert.Equal(t, 0, server.refreshCount())
		assert.Equal(t, []string{"/login"}, setup.navigator.History())
	})

	t.Run("Should finish the refresh for other requests when the first caller gives up", func(t *testing.T) {
		server := newHubServer(t)
		server.refreshDelay = 200 * time.Millisecond

		setup := newSession(t, "/")
		client := hub.NewAuthClient(hub.Config{BaseURL: server.URL}, setup.store, nil)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		firstErr := make(chan error, 1)
		go func() {
			_, err := client.StatsSummary(ctx)
			firstErr <- err
		}()

		for server.refreshCount() == 0 {
			time.Sleep(5 * time.Millisecond)
		}

		secondErr := make(chan error, 1)
		go func() {
			_, err := client.StatsSummary(context.Background())
			secondErr <- err
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		assert.True(t, errors.Is(<-firstErr, context.Canceled), "expected the first caller to be cancelled")

		err := <-secondErr
		assert.True(t, err == nil || errors.Is(err, hub.ErrSessionRefreshed), "expected the refresh to succeed, got: %v", err)

		assert.Equal(t, 1, server.refreshCount())
		assert.Equal(t, auth.Session{newAccessToken, newRefreshToken}, setup.store.Session())
	})

	t.Run("Should share a single refresh between concurrent requests", func(t *testing.T) {
		server := newHubServer(t)
		server.refreshDelay = 50 * time.Millisecond

		setup := newSession(t, "/")
		client := hub.NewAuthClient(hub.Config{BaseURL: server.URL}, setup.store, nil)

		var wg sync.WaitGroup
		errs := make([]error, 5)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = client.StatsSummary(context.Background())
			}(i)
		}
		wg.Wait()

		for _, err := range errs {
			if err != nil {
				assert.True(t, errors.Is(err, hub.ErrSessionRefreshed), "expected session refreshed error, got: %v", err)
			}
		}
		assert.Equal(t, 1, server.refreshCount())
		assert.Equal(t, auth.Session{newAccessToken, newRefreshToken}, setup.store.Session())
	})

	t.Run("Should not refresh again when a reloaded request is rejected", func(t *testing.T) {
		server := newHubServer(t)
		server.alwaysReject = true

		setup := newSession(t, "/")
		deps := hub.NewDependencies()
		client := hub.NewAuthClient(hub.Config{BaseURL: server.URL}, setup.store, deps)

		err := deps.Load(context.Background(), "summary", func(ctx context.Context) error {
			_, err := client.StatsSummary(ctx)
			return err
		})

		var serverErr hub.ServerError
		assert.True(t, errors.As(err, &serverErr), "expected a server error, got: %v", err)
		assert.False(t, errors.Is(err, hub.ErrSessionRefreshed), "expected the reload failure to surface")
		assert.Equal(t, "token expired", serverErr.Message)
		assert.Equal(t, 1, server.refreshCount())
		assert.True(t, setup.store.LoggedIn(), "expected store to stay logged in")
	})
}

func TestClientErrors(t *testing.T) {
	server := newHubServer(t)
	setup := newSession(t, "/")
	client := hub.NewAuthClient(hub.Config{BaseURL: server.URL}, setup.store, nil)

	t.Run("Should propagate other server errors unchanged", func(t *testing.T) {
		_, err := client.StatsByCategory(context.Background())
		assert.Equal(t, hub.ServerError{StatusCode: http.StatusInternalServerError, Code: 500, Message: "something went wrong"}, err)
		assert.Equal(t, 0, server.refreshCount())
		assert.True(t, setup.store.LoggedIn(), "expected store to stay logged in")
	})

	t.Run("Should propagate transport errors unchanged", func(t *testing.T) {
		unreachable := hub.NewAuthClient(hub.Config{BaseURL: "http://127.0.0.1:0"}, setup.store, nil)

		_, err := unreachable.StatsSummary(context.Background())
		assert.NotNil(t, err)

		var serverErr hub.ServerError
		assert.False(t, errors.As(err, &serverErr), "expected a transport error")
		assert.True(t, setup.store.LoggedIn(), "expected store to stay logged in")
	})

	t.Run("Should fail once the timeout elapses", func(t *testing.T) {
		slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer slow.Close()

		client := hub.NewAuthClient(hub.Config{BaseURL: slow.URL, Timeout: 20 * time.Millisecond}, setup.store, nil)

		_, err := client.StatsSummary(context.Background())
		assert.NotNil(t, err)
		assert.True(t, setup.store.LoggedIn(), "expected store to stay logged in")
	})
}

type reloaderFunc func(ctx context.Context) error

func (f reloaderFunc) Reload(ctx context.Context) error { return f(ctx) }
