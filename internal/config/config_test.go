package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(kv map[string]string) func(string) string {
	return func(k string) string { return kv[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.False(t, cfg.NoColor)
	assert.Empty(t, cfg.BankDir)
}

func TestFromEnv_LogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg, err := FromEnv(envMap(map[string]string{EnvLogLevel: tt.value}))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.LogLevel)
		})
	}
}

func TestFromEnv_InvalidLogLevel(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{EnvLogLevel: "loud"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvLogLevel)
}

func TestFromEnv_NoColor(t *testing.T) {
	for _, k := range []string{EnvNoColorStd, EnvNoColor} {
		cfg, err := FromEnv(envMap(map[string]string{k: "1"}))
		require.NoError(t, err)
		assert.True(t, cfg.NoColor, k)
	}
}

func TestStyled(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	cfg := &Config{}
	assert.False(t, cfg.Styled(f.Fd()), "regular files are not terminals")

	cfg.NoColor = true
	assert.False(t, cfg.Styled(os.Stdout.Fd()))
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{}
	require.NoError(t, cfg.SetLogLevel("warn"))

	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "k=v")
}

func TestLoadCatalog_BuiltIn(t *testing.T) {
	cfg := &Config{}
	catalog, err := cfg.LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, 3, catalog.Len())
}

func TestLoadCatalog_Dir(t *testing.T) {
	dir := t.TempDir()
	raw := `{
  "id": "custom",
  "name": "Custom Test",
  "questions": [
    {"question": "Pick one", "choices": ["Yes", "No"], "correct": 0, "explanation": "Yes."}
  ]
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.json"), []byte(raw), 0o644))

	cfg, err := FromEnv(envMap(map[string]string{EnvBankDir: dir}))
	require.NoError(t, err)

	catalog, err := cfg.LoadCatalog()
	require.NoError(t, err)
	require.Equal(t, 1, catalog.Len())
	assert.Equal(t, "Custom Test", catalog.Tests()[0].Name)
}

func TestLoadCatalog_InvalidDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"id": "x"}`), 0o644))

	cfg := &Config{BankDir: dir}
	_, err := cfg.LoadCatalog()
	require.Error(t, err)
	assert.Contains(t, err.Error(), dir)
}
