package auth

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/ldxinsight/ldx-cli/internal/cookie"
)

// set of default store settings
const (
	DefaultAccessTokenCookie  = "open-linked-hub:access-token"
	DefaultRefreshTokenCookie = "open-linked-hub:refresh-token"
	DefaultHomePage           = "/"
	DefaultLoginPage          = "/login"
)

// CookieJar is the cookie storage backing the session
type CookieJar interface {
	Get(key string, def ...string) string
	Set(key, value string, opts ...cookie.Options) error
	Remove(key string) error
}

// CookieKeys are the names of the session cookies
type CookieKeys struct {
	AccessToken  string
	RefreshToken string
}

// Pages are the routes the store navigates to
type Pages struct {
	Home  string
	Login string
}

// Config is the session store config
type Config struct {
	CookieKeys CookieKeys
	Pages      Pages
}

func (c Config) withDefaults() Config {
	if c.CookieKeys.AccessToken == "" {
		c.CookieKeys.AccessToken = DefaultAccessTokenCookie
	}
	if c.CookieKeys.RefreshToken == "" {
		c.CookieKeys.RefreshToken = DefaultRefreshTokenCookie
	}
	if c.Pages.Home == "" {
		c.Pages.Home = DefaultHomePage
	}
	if c.Pages.Login == "" {
		c.Pages.Login = DefaultLoginPage
	}
	return c
}

// LogInOptions are the options for Store.LogIn
type LogInOptions struct {
	// RedirectTo is the page to land on after login, defaults to the home page
	RedirectTo string

	// NoRedirect keeps the user on the current page
	NoRedirect bool
}

// LogOutOptions are the options for Store.LogOut
type LogOutOptions struct {
	// Redirect is attached to the login page as the post-login target
	Redirect string
}

// Store holds the current session and persists it to cookies
type Store struct {
	mu        sync.RWMutex
	session   Session
	jar       CookieJar
	navigator Navigator
	config    Config
}

// NewStore creates a session store hydrated from the jar's cookies
func NewStore(jar CookieJar, navigator Navigator, config Config) *Store {
	config = config.withDefaults()
	return &Store{
		session: Session{
			AccessToken:  jar.Get(config.CookieKeys.AccessToken),
			RefreshToken: jar.Get(config.CookieKeys.RefreshToken),
		},
		jar:       jar,
		navigator: navigator,
		config:    config,
	}
}

// Pages returns the home and login pages the store navigates to
func (s *Store) Pages() Pages {
	return s.config.Pages
}

// Session returns the current session
func (s *Store) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// LoggedIn reports whether the current session has an access token
func (s *Store) LoggedIn() bool {
	return s.Session().LoggedIn()
}

// Route returns the page the user is currently on
func (s *Store) Route() Route {
	return s.navigator.Current()
}

// LogIn replaces the session with the provided tokens and persists them
func (s *Store) LogIn(session Session, opts LogInOptions) error {
	if err := s.setSession(session); err != nil {
		return err
	}

	if opts.NoRedirect {
		return nil
	}

	target := opts.RedirectTo
	if target == "" {
		target = s.config.Pages.Home
	}
	s.navigator.NavigateTo(NewRoute(target))
	return nil
}

func (s *Store) setSession(session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = session

	if err := s.jar.Set(s.config.CookieKeys.AccessToken, session.AccessToken); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	// sessions from the register endpoint carry no refresh token
	if session.RefreshToken == "" {
		if err := s.jar.Remove(s.config.CookieKeys.RefreshToken); err != nil {
			return fmt.Errorf("failed to persist session: %w", err)
		}
		return nil
	}
	if err := s.jar.Set(s.config.CookieKeys.RefreshToken, session.RefreshToken); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// LogOut clears the session and sends the user to the login page
func (s *Store) LogOut(opts LogOutOptions) error {
	if err := s.clearSession(); err != nil {
		return err
	}

	route := Route{Path: s.config.Pages.Login}
	if opts.Redirect != "" {
		route.Query = url.Values{QueryRedirect: {opts.Redirect}}
	}
	s.navigator.NavigateTo(route)
	return nil
}

func (s *Store) clearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = Session{}

	if err := s.jar.Remove(s.config.CookieKeys.AccessToken); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if err := s.jar.Remove(s.config.CookieKeys.RefreshToken); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
