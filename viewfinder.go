package viewfinder

import (
	"context"
	"io"
)

// Engine renders the template file at path into w using data. path is the
// absolute path stored by a View at construction time; when the view did not
// resolve, path is empty and the engine is expected to surface the resulting
// failure (typically a file-open error). Implementations may render
// synchronously or fan out internally; this package never interprets the
// outcome beyond returning it.
type Engine interface {
	Render(ctx context.Context, w io.Writer, path string, data any) error
}

// EngineFunc adapts a plain function to the Engine interface.
type EngineFunc func(ctx context.Context, w io.Writer, path string, data any) error

// Render implements Engine.
func (f EngineFunc) Render(ctx context.Context, w io.Writer, path string, data any) error {
	return f(ctx, w, path, data)
}

// Loader supplies an Engine for a provider name, which is the file extension
// text without its leading dot (e.g. "html" for ".html"). Returning an error
// marks the provider as unloadable for the construction that requested it;
// the Registry does not cache failures.
type Loader interface {
	Load(name string) (Engine, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(name string) (Engine, error)

// Load implements Loader.
func (f LoaderFunc) Load(name string) (Engine, error) {
	return f(name)
}
