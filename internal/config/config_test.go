package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	require.Equal(t, 10*time.Second, cfg.API.Timeout)
	require.Equal(t, "info", cfg.Log.Level)
	require.Zero(t, cfg.User.Seq)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "story-memory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  path: /tmp/stories.db
api:
  base_url: http://localhost:9000
  timeout: 3s
user:
  seq: 4
log:
  level: debug
  file: /tmp/story-memory.log
`), 0644))

	t.Setenv("STORY_MEMORY_USER_SEQ", "9")
	t.Setenv("STORY_MEMORY_SERVER_PORT", "9100")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/stories.db", cfg.Storage.Path)
	require.Equal(t, "http://localhost:9000", cfg.API.BaseURL)
	require.Equal(t, 3*time.Second, cfg.API.Timeout)
	require.Equal(t, int64(9), cfg.User.Seq)
	require.Equal(t, 9100, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "/tmp/story-memory.log", cfg.Log.File)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Setenv("STORY_MEMORY_SERVER_PORT", "70000")
	_, err = Load("")
	require.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	require.NoError(t, LoadDotEnv(), "missing files are fine")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORY_MEMORY_LOG_LEVEL=warn\n"), 0644))
	t.Setenv("STORY_MEMORY_LOG_LEVEL", "")
	os.Unsetenv("STORY_MEMORY_LOG_LEVEL")

	require.NoError(t, LoadDotEnv())
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
}
