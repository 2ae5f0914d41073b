// Package project handles on-disk persistence of application configuration,
// project files and price book overrides.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gentrystinson/cabquote/internal/model"
)

// AppConfig holds application-wide preferences and defaults applied to new
// projects.
type AppConfig struct {
	DefaultTaxType          model.TaxType          `json:"default_tax_type"`
	DefaultInstallationType model.InstallationType `json:"default_installation_type"`
	DefaultSurcharge        float64                `json:"default_surcharge"`

	// QuoteDBPath locates the local quote store; empty means
	// ~/.cabquote/quotes.db.
	QuoteDBPath   string `json:"quote_db_path"`
	PriceBookPath string `json:"price_book_path"`
	LogLevel      string `json:"log_level"`
	LogFile       string `json:"log_file"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	settings := model.DefaultSettings()
	return AppConfig{
		DefaultTaxType:          settings.TaxType,
		DefaultInstallationType: settings.InstallationType,
		DefaultSurcharge:        settings.InstallationSurcharge,
		LogLevel:                "info",
	}
}

// Settings builds project settings from the configured defaults.
func (c AppConfig) Settings() model.Settings {
	return model.Settings{
		TaxType:               c.DefaultTaxType,
		InstallationType:      c.DefaultInstallationType,
		InstallationSurcharge: c.DefaultSurcharge,
	}
}

// DefaultConfigDir returns the default directory for application data.
// On all platforms this is ~/.cabquote/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".cabquote")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// DefaultQuoteDBPath returns the default path for the local quote store.
func DefaultQuoteDBPath() string {
	return filepath.Join(DefaultConfigDir(), "quotes.db")
}

// SaveAppConfig persists an AppConfig to the given path as JSON. It creates
// any missing parent directories automatically.
func SaveAppConfig(path string, config AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path. If the file does not
// exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return AppConfig{}, err
	}
	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return AppConfig{}, err
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.DefaultTaxType == "" {
		config.DefaultTaxType = model.TaxNone
	}
	if config.DefaultInstallationType == "" {
		config.DefaultInstallationType = model.InstallSelf
	}
	return config, nil
}
