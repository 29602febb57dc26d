package gotext

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"text/template"

	"github.com/ryumina/viewfinder"
)

// Ensures Engine implements viewfinder.Engine.
var _ viewfinder.Engine = (*Engine)(nil)

// Engine renders template files with text/template. Parsed templates are
// cached by path for the lifetime of the engine.
type Engine struct {
	funcs template.FuncMap
	mu    sync.RWMutex
	cache map[string]*template.Template
}

// New creates an Engine. Options add template functions.
func New(opts ...Option) *Engine {
	e := &Engine{cache: make(map[string]*template.Template)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Option configures an Engine.
type Option func(*Engine)

// WithFuncs adds functions available to all templates rendered by this engine.
func WithFuncs(funcs template.FuncMap) Option {
	return func(e *Engine) { e.funcs = funcs }
}

// Render parses the file at path (cached after the first parse) and executes
// it with data.
func (e *Engine) Render(ctx context.Context, w io.Writer, path string, data any) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	tpl, err := e.parse(path)
	if err != nil {
		return err
	}
	return tpl.Execute(w, data)
}

func (e *Engine) parse(path string) (*template.Template, error) {
	e.mu.RLock()
	tpl, ok := e.cache[path]
	e.mu.RUnlock()
	if ok {
		return tpl, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if tpl, ok = e.cache[path]; ok {
		return tpl, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tpl, err = template.New(filepath.Base(path)).Funcs(e.funcs).Parse(string(src))
	if err != nil {
		return nil, err
	}
	e.cache[path] = tpl
	return tpl, nil
}

// Reload clears the parsed-template cache.
func (e *Engine) Reload() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = make(map[string]*template.Template)
}
