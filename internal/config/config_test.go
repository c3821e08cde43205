package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niklasalamak0/PT-Bakat-Website/sheetmirror"
)

const sampleYAML = `
listen_addr: ":9000"
database_url: "postgres://localhost:5432/bakat"
admin_secret: "s3cret"
log:
  level: debug
  format: text
google:
  credentials_file: /etc/sitesync/sa.json
  drive_folder_id: folder-1
sheets:
  portfolios:
    spreadsheet_id: sheet-1
    sheet_name: Portfolios
  contact:
    spreadsheet_id: sheet-1
    sheet_name: Contact
    id_column: id
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "postgres://localhost:5432/bakat", cfg.DatabaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 50, cfg.Log.MaxSizeMB) // default survives partial log block
	assert.True(t, cfg.SheetsConfigured())

	mapping := cfg.MirrorMapping()
	sc, err := mapping.For(sheetmirror.SectionPortfolios)
	require.NoError(t, err)
	assert.Equal(t, "sheet-1", sc.SpreadsheetID)
	assert.Equal(t, "Portfolios", sc.SheetName)

	_, err = mapping.For(sheetmirror.SectionServices)
	assert.ErrorIs(t, err, sheetmirror.ErrNotConfigured)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SITESYNC_LISTEN_ADDR", ":7777")
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.ListenAddr)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.ErrorContains(t, cfg.Validate(), "database_url")

	cfg = &Config{
		DatabaseURL: "postgres://localhost/db",
		Sheets:      map[string]SheetSection{"blog": {SpreadsheetID: "x", SheetName: "y"}},
	}
	assert.ErrorContains(t, cfg.Validate(), "unknown section")

	cfg = &Config{
		DatabaseURL: "postgres://localhost/db",
		Sheets:      map[string]SheetSection{"services": {SheetName: "y"}},
	}
	assert.ErrorContains(t, cfg.Validate(), "spreadsheet_id")
}
