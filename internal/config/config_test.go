package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func inTempDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	cwd, _ := os.Getwd()
	_ = os.Chdir(tmp)
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	return tmp
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)
	t.Setenv("LIBRARY_LOG_LEVEL", "")
	t.Setenv("LIBRARY_OUTPUT", "")

	cfg := Load()

	assert.Equal(t, slog.LevelError, cfg.LogLevel)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Empty(t, cfg.Rejected)
}

func TestLoad_FromEnv(t *testing.T) {
	inTempDir(t)
	t.Setenv("LIBRARY_LOG_LEVEL", "debug")
	t.Setenv("LIBRARY_OUTPUT", "JSON")

	cfg := Load()

	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestLoad_RejectsUnknownValues(t *testing.T) {
	inTempDir(t)
	t.Setenv("LIBRARY_LOG_LEVEL", "loud")
	t.Setenv("LIBRARY_OUTPUT", "xml")

	cfg := Load()

	assert.Equal(t, slog.LevelError, cfg.LogLevel)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, map[string]string{"LIBRARY_LOG_LEVEL": "loud", "LIBRARY_OUTPUT": "xml"}, cfg.Rejected)
}

func TestLoad_EnvFile(t *testing.T) {
	tmp := inTempDir(t)
	t.Setenv("LIBRARY_LOG_LEVEL", "")
	if err := os.WriteFile(filepath.Join(tmp, ".env"), []byte("LIBRARY_OUTPUT=json\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	// godotenv.Load sets the variable for the rest of the process.
	t.Setenv("LIBRARY_OUTPUT", "")
	_ = os.Unsetenv("LIBRARY_OUTPUT")

	cfg := Load()

	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestLoad_EnvFileDoesNotOverrideEnv(t *testing.T) {
	tmp := inTempDir(t)
	if err := os.WriteFile(filepath.Join(tmp, ".env"), []byte("LIBRARY_OUTPUT=json\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("LIBRARY_OUTPUT", "text")

	cfg := Load()

	assert.Equal(t, OutputText, cfg.Output)
}
