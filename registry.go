package viewfinder

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Registry maps file extensions to bound engines. It is meant to be created
// once per process and shared across all View constructions; every View built
// against it sees bindings made by earlier (or concurrent) constructions.
// Keys are normalized to carry a leading dot, so "html" and ".html" address
// the same entry. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]Engine
	sf      singleflight.Group
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{engines: make(map[string]Engine)}
}

// normalizeExt prefixes a dot when ext lacks one. Empty stays empty.
func normalizeExt(ext string) string {
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// Bind associates ext with e, replacing any previous binding. Last bind wins.
func (r *Registry) Bind(ext string, e Engine) {
	key := normalizeExt(ext)
	r.mu.Lock()
	r.engines[key] = e
	r.mu.Unlock()
}

// Engine returns the engine bound to ext, if any.
func (r *Registry) Engine(ext string) (Engine, bool) {
	key := normalizeExt(ext)
	r.mu.RLock()
	e, ok := r.engines[key]
	r.mu.RUnlock()
	return e, ok
}

// Ensure returns the engine bound to ext, loading and binding one through
// loader when the extension is unbound. The provider name passed to loader
// is ext without its leading dot. Concurrent calls for the same unbound
// extension share a single load. A load failure is returned as a LoadError
// wrapping ErrEngineLoad and is not cached; a later call may retry.
func (r *Registry) Ensure(ext string, loader Loader) (Engine, error) {
	key := normalizeExt(ext)
	if e, ok := r.Engine(key); ok {
		return e, nil
	}
	provider := strings.TrimPrefix(key, ".")
	v, err, _ := r.sf.Do(key, func() (any, error) {
		// Another flight may have bound the key between the miss and here.
		if e, ok := r.Engine(key); ok {
			return e, nil
		}
		if loader == nil {
			return nil, &LoadError{Provider: provider, Err: fmt.Errorf("%w: no loader configured", ErrEngineLoad)}
		}
		e, err := loader.Load(provider)
		if err != nil {
			return nil, &LoadError{Provider: provider, Err: fmt.Errorf("%w: %w", ErrEngineLoad, err)}
		}
		if e == nil {
			return nil, &LoadError{Provider: provider, Err: fmt.Errorf("%w: provider yielded no engine", ErrEngineLoad)}
		}
		r.Bind(key, e)
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Engine), nil
}
