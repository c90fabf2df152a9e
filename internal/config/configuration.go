package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

const (
	DefaultPerPage    = 15
	DefaultMaxPerPage = 100
)

type Configuration struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Pagination PaginationConfig `yaml:"pagination"`
	Cleanup    CleanupConfig    `yaml:"cleanup"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	LogConfig     LogConfig     `yaml:"log"`
	RequestConfig RequestConfig `yaml:"request"`
}

type LogConfig struct {
	Format  string `yaml:"format"`
	Level   string `yaml:"level"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type RequestConfig struct {
	// SizeLimit is in megabytes.
	SizeLimit int `yaml:"sizeLimit"`
}

type DatabaseConfig struct {
	// Driver is either "postgres" or "sqlite".
	Driver  string `yaml:"driver"`
	Path    string `yaml:"path"`
	EnvFile string `yaml:"envFile"`
	Migrate bool   `yaml:"migrate"`
	LogSQL  bool   `yaml:"logSql"`
}

type PaginationConfig struct {
	PerPage    int `yaml:"perPage"`
	MaxPerPage int `yaml:"maxPerPage"`
}

type CleanupConfig struct {
	Schedule  string `yaml:"schedule"`
	Retention string `yaml:"retention"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Configuration) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Concurrency == 0 {
		c.Server.Concurrency = 256
	}
	if c.Server.RequestConfig.SizeLimit == 0 {
		c.Server.RequestConfig.SizeLimit = 4
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Pagination.PerPage < 1 {
		c.Pagination.PerPage = DefaultPerPage
	}
	if c.Pagination.MaxPerPage < 1 {
		c.Pagination.MaxPerPage = DefaultMaxPerPage
	}
	if c.Cleanup.Retention == "" {
		c.Cleanup.Retention = "720h"
	}
}
