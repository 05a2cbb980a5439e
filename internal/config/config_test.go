package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o644))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "8050", cfg.Port)
	assert.Equal(t, "0.0.0.0:8050", cfg.ServerAddress())
	assert.Equal(t, "shapeName", cfg.BoundaryNameField)
	assert.Equal(t, "name", cfg.POINameField)
	assert.Equal(t, MatchSourceCompute, cfg.MatchSource)
}

func TestLoadConfig_FileAndEnvOverride(t *testing.T) {
	dir := writeEnvFile(t, "PORT=9000\nDATA_DIR=/srv/data\n")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/srv/data", cfg.DataDir)

	t.Setenv("PORT", "10000")
	cfg, err = LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "10000", cfg.Port)
	assert.Equal(t, "0.0.0.0:10000", cfg.ServerAddress())
}

func TestLoadConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "postgres source without db",
			content: "MATCH_SOURCE=postgres\n",
		},
		{
			name:    "unknown match source",
			content: "MATCH_SOURCE=redis\n",
		},
		{
			name:    "bucket without key",
			content: "ARCHIVE_S3_BUCKET=maps\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeEnvFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestConfig_GeoSources(t *testing.T) {
	dir := writeEnvFile(t, "ARCHIVE_S3_BUCKET=maps\nARCHIVE_S3_KEY=canada/data.zip\n")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	src := cfg.GeoSources()
	assert.Equal(t, "data", src.DataDir)
	assert.Equal(t, "data.zip", src.Archive)
	require.NotNil(t, src.S3)
	assert.Equal(t, "maps", src.S3.Bucket)
	assert.Equal(t, "canada/data.zip", src.S3.Key)
	assert.Equal(t, "us-east-1", src.S3.Region)

	cfg.ArchiveS3Bucket = ""
	assert.Nil(t, cfg.GeoSources().S3)
}
