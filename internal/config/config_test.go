package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TRIPY_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "http://localhost:8000/api/v1", cfg.API.BaseURL)
	require.Equal(t, 45, cfg.API.TimeoutSeconds)
	require.Equal(t, "auto", cfg.UI.Locale)
	require.Equal(t, "admin", cfg.UI.DefaultUsername)
	require.Equal(t, "ChangeMe123!", cfg.UI.DefaultPassword)
	require.Contains(t, cfg.State.DatabasePath, "tripy.db")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[api]
base_url = "https://tripy.example.com/api/v1"
timeout_seconds = 10

[ui]
locale = "zh"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("TRIPY_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "https://tripy.example.com/api/v1", cfg.API.BaseURL)
	require.Equal(t, 10, cfg.API.TimeoutSeconds)
	require.Equal(t, "zh", cfg.UI.Locale)
	// untouched keys keep their defaults
	require.Equal(t, "admin", cfg.UI.DefaultUsername)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\nbase_url = \"https://file.example.com\"\n"), 0o644))
	t.Setenv("TRIPY_CONFIG", path)
	t.Setenv("TRIPY_API_BASE_URL", "https://env.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://env.example.com", cfg.API.BaseURL)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("TRIPY_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.UI.Locale = "zh"
	cfg.API.TimeoutSeconds = 90

	require.NoError(t, Save(cfg))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, "zh", got.UI.Locale)
	require.Equal(t, 90, got.API.TimeoutSeconds)
	require.Equal(t, cfg.API.BaseURL, got.API.BaseURL)
}
