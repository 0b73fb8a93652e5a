package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerFromEnv_Defaults(t *testing.T) {
	t.Setenv("IMTGO_ADDR", "")
	t.Setenv("IMTGO_RULES_FILE", "")
	t.Setenv("IMTGO_CORS_ORIGINS", "")

	cfg, err := ServerFromEnv(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Empty(t, cfg.RulesFile)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestServerFromEnv_Environment(t *testing.T) {
	t.Setenv("IMTGO_ADDR", ":9090")
	t.Setenv("IMTGO_RULES_FILE", "rules.yaml")
	t.Setenv("IMTGO_CORS_ORIGINS", "https://a.pt, https://b.pt,")

	cfg, err := ServerFromEnv("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "rules.yaml", cfg.RulesFile)
	assert.Equal(t, []string{"https://a.pt", "https://b.pt"}, cfg.CORSOrigins)
}

func TestServerFromEnv_DotEnvFile(t *testing.T) {
	t.Setenv("IMTGO_ADDR", ":7070")
	t.Setenv("IMTGO_RULES_FILE", "")
	t.Setenv("IMTGO_CORS_ORIGINS", "")
	// Unset after Setenv so the original value is restored on cleanup
	require.NoError(t, os.Unsetenv("IMTGO_RULES_FILE"))

	path := writeFile(t, ".env", "IMTGO_ADDR=:1111\nIMTGO_RULES_FILE=custom.yaml\n")
	cfg, err := ServerFromEnv(path)
	require.NoError(t, err)

	assert.Equal(t, "custom.yaml", cfg.RulesFile)
	assert.Equal(t, ":7070", cfg.Addr, "variables already set win over the file")
}
