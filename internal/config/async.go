package config

import "sync"

// Source yields the configuration once it is available.
// Poll never blocks: it returns nil, nil while loading is in progress.
type Source interface {
	Poll() (*Config, error)
}

// Static is a Source that is ready immediately.
type Static struct {
	cfg Config
}

// Ready wraps an already loaded configuration.
func Ready(cfg Config) *Static {
	return &Static{cfg: cfg}
}

// Poll returns the configuration.
func (s *Static) Poll() (*Config, error) {
	return &s.cfg, nil
}

// AsyncLoader loads the configuration in the background.
type AsyncLoader struct {
	load func() (Config, error)

	once sync.Once
	mu   sync.Mutex
	done bool
	cfg  Config
	err  error
}

// NewAsyncLoader creates a loader that runs Load(path) when started.
func NewAsyncLoader(path string) *AsyncLoader {
	return NewAsyncLoaderFunc(func() (Config, error) { return Load(path) })
}

// NewAsyncLoaderFunc creates a loader around an arbitrary load function.
func NewAsyncLoaderFunc(load func() (Config, error)) *AsyncLoader {
	return &AsyncLoader{load: load}
}

// Start begins loading. Calling Start more than once has no effect.
func (l *AsyncLoader) Start() {
	l.once.Do(func() {
		go func() {
			cfg, err := l.load()
			l.mu.Lock()
			l.cfg, l.err, l.done = cfg, err, true
			l.mu.Unlock()
		}()
	})
}

// Poll reports the load result without blocking. Poll starts the loader
// if it was not started yet.
func (l *AsyncLoader) Poll() (*Config, error) {
	l.Start()
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.done {
		return nil, nil
	}
	if l.err != nil {
		return nil, l.err
	}
	cfg := l.cfg
	return &cfg, nil
}
