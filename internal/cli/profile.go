package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ldxinsight/ldx-cli/internal/auth"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/telemetry"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	envPrefix   = "ldx"
	profileType = "yaml"

	cookiesFile = "cookies.yaml"
	eventsFile  = "events.jsonl"
)

// set of supported CLI profile keys
const (
	keyAPIBaseURL     = "api_base_url"
	keyAccessCookie   = "access_cookie"
	keyRefreshCookie  = "refresh_cookie"
	keyHomePage       = "home_page"
	keyLoginPage      = "login_page"
	keyRequestTimeout = "request_timeout"
	keyTelemetryMode  = "telemetry_mode"
	keyRoute          = "route"
)

// set of environment variables read by the CLI profile
const (
	envAPIBaseURL    = "LDX_API_URL"
	envTelemetryMode = "LDX_TELEMETRY"
)

// Profile is the CLI profile
type Profile struct {
	Name string

	dir    string
	fs     afero.Fs
	config *viper.Viper

	// flag overrides, applied for the current execution only
	apiBaseURL    string
	telemetryMode telemetry.Mode
}

// NewDefaultProfile creates a new default CLI profile
func NewDefaultProfile() (*Profile, error) {
	return NewProfile(DefaultProfile)
}

// NewProfile creates a new CLI profile stored in the CLI home directory
func NewProfile(name string) (*Profile, error) {
	dir, dirErr := homeDir()
	if dirErr != nil {
		return nil, fmt.Errorf("failed to create CLI profile: %s", dirErr)
	}
	return NewProfileWithFs(name, dir, afero.NewOsFs()), nil
}

// NewProfileWithFs creates a new CLI profile stored in the provided directory and filesystem
func NewProfileWithFs(name, dir string, fs afero.Fs) *Profile {
	config := viper.New()
	config.SetFs(fs)

	return &Profile{
		Name:   name,
		dir:    dir,
		fs:     fs,
		config: config,
	}
}

// Dir returns the CLI profile directory
func (p *Profile) Dir() string { return p.dir }

// Fs returns the filesystem the CLI profile is stored in
func (p *Profile) Fs() afero.Fs { return p.fs }

// Path returns the CLI profile filepath
func (p *Profile) Path() string {
	return filepath.Join(p.dir, fmt.Sprintf("%s.%s", p.Name, profileType))
}

// CookiesPath returns the filepath of the session cookie jar
func (p *Profile) CookiesPath() string {
	return filepath.Join(p.dir, cookiesFile)
}

// EventsPath returns the filepath telemetry events are appended to
func (p *Profile) EventsPath() string {
	return filepath.Join(p.dir, eventsFile)
}

// SetString sets the specified CLI profile property
func (p *Profile) SetString(name, value string) {
	p.config.Set(p.propertyKey(name), value)
}

// GetString gets the specified CLI profile property
func (p *Profile) GetString(name string) string {
	return p.config.GetString(p.propertyKey(name))
}

func (p *Profile) propertyKey(name string) string {
	return fmt.Sprintf("%s.%s", p.Name, name)
}

// Load loads the CLI profile
func (p *Profile) Load() error {
	p.config.SetConfigName(p.Name)
	p.config.AddConfigPath(p.dir)
	p.config.SetConfigPermissions(0600)
	p.config.SetConfigType(profileType)

	p.config.SetEnvPrefix(envPrefix)
	for key, env := range map[string]string{
		keyAPIBaseURL:    envAPIBaseURL,
		keyTelemetryMode: envTelemetryMode,
	} {
		if err := p.config.BindEnv(p.propertyKey(key), env); err != nil {
			return fmt.Errorf("failed to load CLI profile: %s", err)
		}
	}

	if err := p.config.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil // proceed if profile doesn't exist
		}
		return fmt.Errorf("failed to load CLI profile: %s", err)
	}
	return nil
}

// Save saves the CLI profile
func (p *Profile) Save() error {
	exists, existsErr := afero.DirExists(p.fs, p.dir)
	if existsErr != nil {
		return fmt.Errorf("failed to save CLI profile: %s", existsErr)
	}

	if !exists {
		if err := p.fs.MkdirAll(p.dir, 0700); err != nil {
			return fmt.Errorf("failed to save CLI profile: %s", err)
		}
	}

	if err := p.config.WriteConfigAs(p.Path()); err != nil {
		return fmt.Errorf("failed to save CLI profile: %s", err)
	}
	return nil
}

// ResolveFlags applies the global flag values to the CLI profile
// A telemetry mode provided by flag is remembered by the profile
func (p *Profile) ResolveFlags() error {
	if p.telemetryMode == telemetry.ModeEmpty {
		return nil
	}
	if p.telemetryMode == telemetry.NewMode(p.GetString(keyTelemetryMode)) {
		return nil
	}

	p.SetString(keyTelemetryMode, p.telemetryMode.String())
	return p.Save()
}

// APIBaseURL returns the Open Linked Hub API base url
func (p *Profile) APIBaseURL() string {
	if p.apiBaseURL != "" {
		return p.apiBaseURL
	}
	if url := p.GetString(keyAPIBaseURL); url != "" {
		return url
	}
	return hub.DefaultBaseURL
}

// CookieKeys returns the names of the session cookies
func (p *Profile) CookieKeys() auth.CookieKeys {
	return auth.CookieKeys{
		AccessToken:  p.GetString(keyAccessCookie),
		RefreshToken: p.GetString(keyRefreshCookie),
	}
}

// Pages returns the portal pages the session navigates to
func (p *Profile) Pages() auth.Pages {
	return auth.Pages{
		Home:  p.GetString(keyHomePage),
		Login: p.GetString(keyLoginPage),
	}
}

// RequestTimeout returns the API request timeout
func (p *Profile) RequestTimeout() time.Duration {
	if timeout := p.config.GetDuration(p.propertyKey(keyRequestTimeout)); timeout > 0 {
		return timeout
	}
	return hub.DefaultTimeout
}

// TelemetryMode returns the telemetry mode
func (p *Profile) TelemetryMode() telemetry.Mode {
	if p.telemetryMode != telemetry.ModeEmpty {
		return p.telemetryMode
	}
	return telemetry.NewMode(p.GetString(keyTelemetryMode))
}

// Route returns the portal page the user last landed on
func (p *Profile) Route() string {
	return p.GetString(keyRoute)
}

// SetRoute sets the portal page the user landed on
func (p *Profile) SetRoute(route string) {
	p.SetString(keyRoute, route)
}
