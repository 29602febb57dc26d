package raw

import (
	"context"
	"io"
	"os"

	"github.com/ryumina/viewfinder"
)

// Extensions lists the extension names Default wires to this engine.
var Extensions = []string{
	"txt",
	"css",
	"js",
	"json",
	"xml",
	"svg",
}

// Ensures Engine implements viewfinder.Engine.
var _ viewfinder.Engine = (*Engine)(nil)

// Engine copies the file at path to the writer unchanged.
type Engine struct{}

// New creates an Engine.
func New() *Engine {
	return &Engine{}
}

// Render streams the file verbatim. data is ignored.
func (*Engine) Render(ctx context.Context, w io.Writer, path string, _ any) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}
