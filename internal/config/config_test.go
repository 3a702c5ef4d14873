package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndValidation(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 1.5, cfg.Pipeline.OutlierK)
	assert.NotEmpty(t, cfg.Schedule.RefreshCron)
	assert.NotEmpty(t, cfg.Database.SQLitePath)

	// Product name is the one required field.
	assert.Error(t, cfg.Validate())
	cfg.Product.Name = "X Booster Box"
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
product:
  name: Evolving Skies Booster Box
pipeline:
  outlier_k: 2.0
database:
  sqlite_path: /tmp/from-file.db
`), 0o644))

	t.Setenv("SQLITE_PATH", "/tmp/from-env.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Evolving Skies Booster Box", cfg.Product.Name)
	assert.Equal(t, 2.0, cfg.Pipeline.OutlierK)
	assert.Equal(t, "/tmp/from-env.db", cfg.Database.SQLitePath)
}
