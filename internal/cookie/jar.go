// Package cookie is a small persisted cookie jar holding the CLI session cookies.
//
// Values are stored as plain YAML through a Strategy. Nothing is encrypted,
// and the only expiry policy is the one carried by each cookie's Options.
package cookie

import (
	"fmt"
	"sync"
	"time"

	"gopkg.in/yaml.v2"
)

// Options are the per-cookie options
type Options struct {
	Path string

	// MaxAge is the cookie lifetime in seconds; a negative value expires the cookie immediately
	MaxAge int

	// Expires is used when MaxAge is unset
	Expires time.Time
}

type entry struct {
	Value   string `yaml:"value"`
	Path    string `yaml:"path,omitempty"`
	Expires int64  `yaml:"expires,omitempty"` // unix seconds, zero for session cookies
}

func (e entry) expired(now time.Time) bool {
	return e.Expires != 0 && now.Unix() >= e.Expires
}

// Jar is a key/value cookie jar
type Jar struct {
	mu       sync.RWMutex
	strategy Strategy
	entries  map[string]entry
	now      func() time.Time
}

// New loads a Jar from the provided Strategy
func New(strategy Strategy) (*Jar, error) {
	raw, err := strategy.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read cookies: %w", err)
	}

	entries := map[string]entry{}
	if len(raw) > 0 {
		if err := yaml.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("failed to parse cookies: %w", err)
		}
	}

	return &Jar{
		strategy: strategy,
		entries:  entries,
		now:      time.Now,
	}, nil
}

// Get returns the stored cookie value, or the default value (if provided) when absent or expired
func (j *Jar) Get(key string, def ...string) string {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if e, ok := j.entries[key]; ok && !e.expired(j.now()) {
		return e.Value
	}
	if len(def) > 0 {
		return def[0]
	}
	return ""
}

// Set stores the cookie value and persists the jar
func (j *Jar) Set(key, value string, opts ...Options) error {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if o.MaxAge < 0 {
		delete(j.entries, key)
		return j.save()
	}

	e := entry{Value: value, Path: o.Path}
	switch {
	case o.MaxAge > 0:
		e.Expires = j.now().Add(time.Duration(o.MaxAge) * time.Second).Unix()
	case !o.Expires.IsZero():
		e.Expires = o.Expires.Unix()
	}

	j.entries[key] = e
	return j.save()
}

// Remove clears the cookie value and persists the jar
func (j *Jar) Remove(key string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if _, ok := j.entries[key]; !ok {
		return nil
	}
	delete(j.entries, key)
	return j.save()
}

func (j *Jar) save() error {
	raw, err := yaml.Marshal(j.entries)
	if err != nil {
		return err
	}
	if err := j.strategy.Write(raw); err != nil {
		return fmt.Errorf("failed to save cookies: %w", err)
	}
	return nil
}
