package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"vado.sa/internal/content"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "public", cfg.AssetDir)
	assert.Empty(t, cfg.CatalogFile)
	assert.Empty(t, cfg.NATSURL)
	assert.Equal(t, "vado.contact.received", cfg.NATSSubject)
	assert.Equal(t, 3*time.Second, cfg.ContactReset)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.Verbose)
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(map[string]string{
		"VADO_SERVER_ADDR":   "127.0.0.1:9000",
		"VADO_NATS_URL":      "nats://broker:4222",
		"VADO_CONTACT_RESET": "500ms",
		"VADO_VERBOSE":       "true",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.ServerAddr)
	assert.Equal(t, "nats://broker:4222", cfg.NATSURL)
	assert.Equal(t, 500*time.Millisecond, cfg.ContactReset)
	assert.True(t, cfg.Verbose)
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]map[string]string{
		"bad duration":   {"VADO_CONTACT_RESET": "soon"},
		"zero reset":     {"VADO_CONTACT_RESET": "0s"},
		"bad bool":       {"VADO_VERBOSE": "maybe"},
		"negative grace": {"VADO_SHUTDOWN_TIMEOUT": "-1s"},
	}
	for name, environ := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(environ)
			assert.Error(t, err)
		})
	}
}

func TestLoadProjects(t *testing.T) {
	t.Run("built-in", func(t *testing.T) {
		cfg := &Config{}
		projects, err := cfg.LoadProjects()
		require.NoError(t, err)
		assert.Equal(t, content.Projects(), projects)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("projects:\n  - slug: only\n    title: Only\n"), 0o644))
		projects, err := (&Config{CatalogFile: path}).LoadProjects()
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "Only", projects[0].Title)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := (&Config{CatalogFile: filepath.Join(t.TempDir(), "none.yaml")}).LoadProjects()
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(".env", []byte("VADO_TEST_DOTENV=fromfile\nVADO_TEST_KEEP=fromfile\n"), 0o644))
	t.Setenv("VADO_TEST_KEEP", "fromenv")
	os.Unsetenv("VADO_TEST_DOTENV")
	t.Cleanup(func() { os.Unsetenv("VADO_TEST_DOTENV") })

	loaded := LoadDotEnv()
	assert.Equal(t, []string{".env"}, loaded)
	assert.Equal(t, "fromfile", os.Getenv("VADO_TEST_DOTENV"))
	assert.Equal(t, "fromenv", os.Getenv("VADO_TEST_KEEP"))
}

func TestLogger(t *testing.T) {
	logger, err := (&Config{}).Logger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = (&Config{Verbose: true}).Logger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
