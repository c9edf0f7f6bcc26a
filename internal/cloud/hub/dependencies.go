package hub

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Loader loads a piece of data a command depends on
type Loader func(ctx context.Context) error

// Reloader reloads all declared data once the session is refreshed
type Reloader interface {
	Reload(ctx context.Context) error
}

// Dependencies is the registry of data loaders declared by a command
type Dependencies struct {
	mu      sync.Mutex
	loaders map[string]Loader
}

// NewDependencies creates an empty data dependencies registry
func NewDependencies() *Dependencies {
	return &Dependencies{loaders: map[string]Loader{}}
}

// Load registers the loader under the provided key and runs it
// A load interrupted by a session refresh is considered successful,
// since the refresh already reloaded every registered loader
func (d *Dependencies) Load(ctx context.Context, key string, loader Loader) error {
	d.mu.Lock()
	d.loaders[key] = loader
	d.mu.Unlock()

	if err := loader(ctx); err != nil && !errors.Is(err, ErrSessionRefreshed) {
		return err
	}
	return nil
}

// Reload runs every registered loader concurrently and returns the first error
func (d *Dependencies) Reload(ctx context.Context) error {
	d.mu.Lock()
	loaders := make([]Loader, 0, len(d.loaders))
	for _, loader := range d.loaders {
		loaders = append(loaders, loader)
	}
	d.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	for _, loader := range loaders {
		loader := loader
		g.Go(func() error { return loader(ctx) })
	}
	return g.Wait()
}
