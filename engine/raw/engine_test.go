package raw

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Render_Verbatim(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "app.js")
	require.NoError(t, os.WriteFile(path, []byte("console.log({{ not a template }})"), 0600))

	var buf bytes.Buffer
	err := New().Render(context.Background(), &buf, path, map[string]any{"ignored": true})
	require.NoError(t, err)
	assert.Equal(t, "console.log({{ not a template }})", buf.String())
}

func TestEngine_Render_EmptyPath(t *testing.T) {
	t.Parallel()
	err := New().Render(context.Background(), &bytes.Buffer{}, "", nil)
	require.Error(t, err)
}

func TestEngine_Render_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := New().Render(ctx, &bytes.Buffer{}, "ignored", nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestExtensions_NonEmpty(t *testing.T) {
	t.Parallel()
	assert.NotEmpty(t, Extensions)
}
