package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromYaml(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "config.yml")
	content := `
web:
  host: 127.0.0.1
  port: 9090
database:
  name: honeytest
seed:
  enabled: true
`
	require.NoError(t, os.WriteFile(cfile, []byte(content), 0o644))

	cfg := LoadConfig(cfile)
	assert.Equal(t, "127.0.0.1", cfg.Web.Host)
	assert.Equal(t, 9090, cfg.Web.Port)
	assert.Equal(t, "honeytest", cfg.Database.Name)
	assert.True(t, cfg.Seed.Enabled)
}

func TestGetLogDirUnderWorkdir(t *testing.T) {
	cfg := &AppConfig{System: SysConfig{Workdir: "/var/honeyexplorer"}}
	assert.Equal(t, "/var/honeyexplorer/logs", cfg.GetLogDir())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("HONEY_WEB_PORT", "7070")
	t.Setenv("HONEY_DB_HOST", "db.internal")
	t.Setenv("HONEY_SEED_ENABLED", "true")

	cfg := LoadConfig("")
	assert.Equal(t, 7070, cfg.Web.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.True(t, cfg.Seed.Enabled)
}
