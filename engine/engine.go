package engine

import (
	"errors"
	"fmt"

	"github.com/ryumina/viewfinder"
	"github.com/ryumina/viewfinder/engine/gotext"
	"github.com/ryumina/viewfinder/engine/gotmpl"
	"github.com/ryumina/viewfinder/engine/raw"
)

// ErrUnknownProvider indicates the table has no constructor for the
// requested provider name. The registry wraps it in viewfinder.ErrEngineLoad.
var ErrUnknownProvider = errors.New("engine: unknown provider")

// Ensures Table implements viewfinder.Loader.
var _ viewfinder.Loader = Table(nil)

// Table is a static provider table mapping extension names (without the
// leading dot) to engine constructors. Constructors run once per extension
// per registry, so per-engine caches are shared by all views of that
// extension.
type Table map[string]func() viewfinder.Engine

// Load implements viewfinder.Loader.
func (t Table) Load(name string) (viewfinder.Engine, error) {
	ctor, ok := t[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
	return ctor(), nil
}

// Default returns the stock provider table: html/template for "html" and
// "gohtml", text/template for "tmpl" and "text", and verbatim pass-through
// for the raw extensions (txt, css, js, json, xml, svg).
func Default() Table {
	t := make(Table)
	for _, name := range raw.Extensions {
		t[name] = func() viewfinder.Engine { return raw.New() }
	}
	for _, name := range []string{"tmpl", "text"} {
		t[name] = func() viewfinder.Engine { return gotext.New() }
	}
	for _, name := range []string{"html", "gohtml"} {
		t[name] = func() viewfinder.Engine { return gotmpl.New() }
	}
	return t
}
