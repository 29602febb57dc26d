package viewfinder

import (
	"errors"
	"fmt"
)

// Sentinel errors for view construction.
// All use prefix "viewfinder:" for identification. Callers should use errors.Is/errors.As.
var (
	// ErrNoExtension is returned when the view name carries no extension and
	// no default engine hint was configured. Raised before any filesystem access.
	ErrNoExtension = errors.New("viewfinder: no extension on view name and no default engine")
	// ErrEngineLoad is returned when the engine provider for an extension
	// cannot be loaded or does not yield a usable engine.
	ErrEngineLoad = errors.New("viewfinder: engine provider load failed")
)

// LoadError wraps ErrEngineLoad with the provider name that failed to load.
// Use errors.Is(err, ErrEngineLoad) and errors.As(err, &loadErr) to inspect.
type LoadError struct {
	Provider string
	Err      error
}

// Error implements error.
func (e *LoadError) Error() string {
	return fmt.Sprintf("viewfinder: engine provider %q: %v", e.Provider, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/errors.As.
func (e *LoadError) Unwrap() error { return e.Err }

// Compile-time check that LoadError implements error.
var _ error = (*LoadError)(nil)
