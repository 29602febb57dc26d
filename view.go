package viewfinder

import (
	"context"
	"io"
	"path/filepath"
	"slices"
)

type config struct {
	roots         []string
	defaultEngine string
	engines       *Registry
	loader        Loader
	exists        ExistsFunc
}

// View is a single name→path resolution with its bound engine. Build one per
// logical lookup with New; a View is immutable after construction and there
// is no re-resolution, so a fresh lookup means a fresh View.
type View struct {
	// Name is the logical view name as requested. It stays unchanged even
	// when the extension was derived from the default engine hint.
	Name string
	// Ext is the view's file extension, always with its leading dot.
	Ext string

	fileName string
	roots    []string
	path     string
	engine   Engine
}

// New builds a View for name. Construction validates the name, infers the
// extension, ensures an engine is bound in the registry (loading one through
// the configured Loader if absent), and runs the root lookup synchronously;
// all filesystem probes complete before New returns.
//
// A lookup miss is not an error: the View is simply unresolved (see Path)
// and a later Render forwards the empty path to the engine, which surfaces
// the failure. New fails only on ErrNoExtension and ErrEngineLoad.
func New(name string, opts ...Option) (*View, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	ext, fileName, err := inferExtension(name, cfg.defaultEngine)
	if err != nil {
		return nil, err
	}
	engines := cfg.engines
	if engines == nil {
		engines = NewRegistry()
	}
	engine, err := engines.Ensure(ext, cfg.loader)
	if err != nil {
		return nil, err
	}
	v := &View{
		Name:     name,
		Ext:      ext,
		fileName: fileName,
		roots:    slices.Clone(cfg.roots),
		engine:   engine,
	}
	if path, ok := (Resolver{Exists: cfg.exists}).Lookup(fileName, v.roots); ok {
		v.path = path
	}
	return v, nil
}

// inferExtension is the pure validation step of construction: no I/O, no
// registry access. It extracts the extension from name's trailing suffix,
// falling back to the default engine hint, and returns the augmented file
// name used for lookup. Returns ErrNoExtension when neither is available.
func inferExtension(name, defaultEngine string) (ext, fileName string, err error) {
	ext = filepath.Ext(name)
	fileName = name
	if ext == "" {
		if defaultEngine == "" {
			return "", "", ErrNoExtension
		}
		ext = normalizeExt(defaultEngine)
		fileName = name + ext
	}
	return ext, fileName, nil
}

// Path returns the absolute file path found by lookup. ok is false when no
// root yielded a match; the path was verified to be a regular file at
// construction time but may have changed since.
func (v *View) Path() (string, bool) {
	return v.path, v.path != ""
}

// Resolved reports whether lookup found a file.
func (v *View) Resolved() bool {
	return v.path != ""
}

// Render forwards the resolved path and data to the bound engine, writing
// output to w. It delegates even when the view is unresolved: the engine
// receives an empty path and its error is the not-found surface. Render does
// not inspect or transform the engine's outcome.
func (v *View) Render(ctx context.Context, w io.Writer, data any) error {
	return v.engine.Render(ctx, w, v.path, data)
}
