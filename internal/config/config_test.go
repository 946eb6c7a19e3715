package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromPathMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cs := &configService{}
	cfg, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	cs := &configService{filePath: path}

	cfg := DefaultConfig()
	cfg.SyncScroll = false
	cfg.IndicatorDelayMs = 250
	cfg.Summary.Model = "gpt-4o"
	require.NoError(t, cs.SaveToPath(cfg, path))

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoadFromPathBackfillsDroppedFields(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\nsync_scroll = true\n"), 0o644))

	cs := &configService{}
	cfg, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, 400, cfg.IndicatorDelayMs)
	require.Equal(t, "gpt-4o-mini", cfg.Summary.Model)
	require.Equal(t, "OPENAI_API_KEY", cfg.Summary.APIKeyEnv)
}

func TestLoadFromPathBadToml(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [broken"), 0o644))

	cs := &configService{}
	_, err := cs.LoadFromPath(path)
	require.Error(t, err)
}
