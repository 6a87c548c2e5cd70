package logging

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordnet.log")

	ctx, err := Init(context.Background(),
		WithLogLevel("info"),
		WithLogFormat(LogFormatJSON),
		WithOutputPaths([]string{path}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	l := ctxzap.Extract(ctx)
	l.Debug("hidden")
	l.Info("visible", zap.Int("synsets", 3))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"visible"`)
	assert.Contains(t, out, `"synsets":3`)
	assert.NotContains(t, out, "hidden")
	assert.Same(t, l, zap.L())
}

func TestWithLogLevel_Unknown(t *testing.T) {
	zc := zap.NewProductionConfig()
	WithLogLevel("chatty")(&zc)
	assert.Equal(t, "debug", zc.Level.String())

	WithLogLevel("warn")(&zc)
	assert.Equal(t, "warn", zc.Level.String())
}

func TestWithLogFormat(t *testing.T) {
	zc := zap.NewProductionConfig()
	WithLogFormat(LogFormatConsole)(&zc)
	assert.Equal(t, LogFormatConsole, zc.Encoding)

	WithLogFormat("xml")(&zc)
	assert.Equal(t, LogFormatJSON, zc.Encoding)
}

func TestWithOutputPaths_EmptyKeepsDefault(t *testing.T) {
	zc := zap.NewProductionConfig()
	WithOutputPaths(nil)(&zc)
	assert.Equal(t, []string{"stderr"}, zc.OutputPaths)

	WithOutputPaths([]string{"stdout"})(&zc)
	assert.Equal(t, []string{"stdout"}, zc.OutputPaths)
}
