// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

// Package config loads the server configuration from config.yaml and
// SITESYNC_-prefixed environment variables. Environment variables win over
// the file, nested keys use underscores (SITESYNC_LOG_LEVEL).
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/niklasalamak0/PT-Bakat-Website/sheetmirror"
)

// SheetSection configures one mirrored spreadsheet tab.
type SheetSection struct {
	SpreadsheetID string `mapstructure:"spreadsheet_id"`
	SheetName     string `mapstructure:"sheet_name"`
	IDColumn      string `mapstructure:"id_column"`
}

// Log configures the slog output. File is optional; when set, output is
// rotated with lumberjack instead of going to stderr.
type Log struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Google configures the service-account integration. Both fields empty means
// the sheet mirror and image hosting are disabled; writes then stay DB-only.
type Google struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	DriveFolderID   string `mapstructure:"drive_folder_id"`
}

// Config is the full server configuration.
type Config struct {
	ListenAddr  string                  `mapstructure:"listen_addr"`
	DatabaseURL string                  `mapstructure:"database_url"`
	AdminSecret string                  `mapstructure:"admin_secret"`
	Log         Log                     `mapstructure:"log"`
	Google      Google                  `mapstructure:"google"`
	Sheets      map[string]SheetSection `mapstructure:"sheets"`
}

// Load reads the configuration. path may be empty, in which case only
// config.yaml in the working directory (if present) and environment
// variables are consulted. A missing config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 5)

	v.SetEnvPrefix("SITESYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the fields the server cannot run without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required")
	}
	for name, s := range c.Sheets {
		if !sheetmirror.Section(name).Valid() {
			return fmt.Errorf("sheets.%s: unknown section", name)
		}
		if s.SpreadsheetID == "" || s.SheetName == "" {
			return fmt.Errorf("sheets.%s: spreadsheet_id and sheet_name are required", name)
		}
	}
	return nil
}

// SheetsConfigured reports whether the Google integration can be wired up.
func (c *Config) SheetsConfigured() bool {
	return c.Google.CredentialsFile != "" && len(c.Sheets) > 0
}

// MirrorMapping converts the sheet sections to the mirror package's mapping.
func (c *Config) MirrorMapping() sheetmirror.Mapping {
	mapping := sheetmirror.Mapping{}
	for name, s := range c.Sheets {
		mapping[sheetmirror.Section(name)] = sheetmirror.SectionConfig{
			SpreadsheetID: s.SpreadsheetID,
			SheetName:     s.SheetName,
			IDColumn:      s.IDColumn,
		}
	}
	return mapping
}
