package viewfinder

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadError_Error(t *testing.T) {
	t.Parallel()
	err := &LoadError{
		Provider: "pug",
		Err:      ErrEngineLoad,
	}
	assert.Contains(t, err.Error(), "pug")
	assert.Contains(t, err.Error(), "viewfinder:")
}

func TestLoadError_Unwrap(t *testing.T) {
	t.Parallel()
	err := &LoadError{
		Provider: "pug",
		Err:      ErrEngineLoad,
	}
	require.ErrorIs(t, err, ErrEngineLoad)
	unwrapped := errors.Unwrap(err)
	require.Error(t, unwrapped)
	assert.ErrorIs(t, unwrapped, ErrEngineLoad)
}

func TestLoadError_errorsAs(t *testing.T) {
	t.Parallel()
	cause := errors.New("provider exploded")
	wrapped := &LoadError{
		Provider: "mustache",
		Err:      fmt.Errorf("%w: %w", ErrEngineLoad, cause),
	}
	// Wrap again to simulate an error chain.
	outer := fmt.Errorf("outer: %w", wrapped)

	var le *LoadError
	require.ErrorAs(t, outer, &le)
	assert.Equal(t, "mustache", le.Provider)
	assert.ErrorIs(t, outer, ErrEngineLoad)
	assert.ErrorIs(t, outer, cause)
}
