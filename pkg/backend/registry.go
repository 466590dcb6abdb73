// pkg/backend/registry.go
package backend

import (
	"fmt"
	"os/exec"
	"runtime"
	"sync"
)

// Registry holds the closed set of backends for this host in priority
// order and caches which probe binaries resolve. It is built once at
// startup and never mutated afterwards.
type Registry struct {
	backends []Backend
	lookPath func(file string) (string, error)

	mu     sync.Mutex
	paths  map[string]string // backend name -> resolved binary path
	probed map[string]bool
}

// NewRegistry builds the registry for the current operating system, probing
// with exec.LookPath.
func NewRegistry() *Registry {
	return newRegistry(backendsFor(runtime.GOOS), exec.LookPath)
}

// NewRegistryWithLookPath builds the registry for a given operating system
// with a custom binary resolver, for callers that resolve binaries
// themselves.
func NewRegistryWithLookPath(goos string, lookPath func(string) (string, error)) *Registry {
	return newRegistry(backendsFor(goos), lookPath)
}

func newRegistry(backends []Backend, lookPath func(string) (string, error)) *Registry {
	return &Registry{
		backends: backends,
		lookPath: lookPath,
		paths:    make(map[string]string),
		probed:   make(map[string]bool),
	}
}

// backendsFor returns the backends eligible on the given OS, most preferred
// first. The order decides auto-selection when no backend is configured.
func backendsFor(goos string) []Backend {
	switch goos {
	case "darwin":
		return []Backend{NewBrew(), NewNix(), NewPip(), NewNpm()}
	case "windows":
		return []Backend{NewChoco(), NewWinget(), NewScoop(), NewPip(), NewNpm()}
	default: // linux and the other unixes
		return []Backend{
			NewApt(), NewDnf(), NewPacman(), NewZypper(), NewApk(),
			NewBrew(), NewNix(), NewPip(), NewNpm(),
		}
	}
}

// All returns every backend known on this host, available or not.
func (r *Registry) All() []Backend {
	out := make([]Backend, len(r.backends))
	copy(out, r.backends)
	return out
}

// Available returns the backends whose probe binary resolves, in priority
// order.
func (r *Registry) Available() []Backend {
	var out []Backend
	for _, b := range r.backends {
		if _, ok := r.BinaryPath(b); ok {
			out = append(out, b)
		}
	}
	return out
}

// BinaryPath resolves and caches the backend's probe binary. The lookup
// happens at most once per backend per process.
func (r *Registry) BinaryPath(b Backend) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.probed[b.Name()] {
		path, ok := r.paths[b.Name()]
		return path, ok
	}
	r.probed[b.Name()] = true
	path, err := r.lookPath(b.Binary())
	if err != nil {
		return "", false
	}
	r.paths[b.Name()] = path
	return path, true
}

// Select picks the effective backend. With an override the named backend is
// used without fallback; otherwise the first available backend wins.
func (r *Registry) Select(override string) (Backend, error) {
	if override != "" {
		for _, b := range r.backends {
			if b.Name() != override {
				continue
			}
			if _, ok := r.BinaryPath(b); !ok {
				return nil, fmt.Errorf("backend %s: binary %q not found: %w",
					override, b.Binary(), ErrNoBackendAvailable)
			}
			return b, nil
		}
		return nil, fmt.Errorf("unknown backend %q: %w", override, ErrNoBackendAvailable)
	}

	for _, b := range r.backends {
		if _, ok := r.BinaryPath(b); ok {
			return b, nil
		}
	}
	return nil, ErrNoBackendAvailable
}
