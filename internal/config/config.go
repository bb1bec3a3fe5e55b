package config

import "time"

type Config struct {
	API        APIConfig      `mapstructure:"api"`
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	ConfigPath string         `mapstructure:"-"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
	Filter   string `mapstructure:"filter"`
}

func NewDefault() *Config {
	return &Config{
		API:      APIConfig{BaseURL: "http://localhost:5000/api", Timeout: 30 * time.Second},
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{Currency: "VND", Filter: "all"},
	}
}
