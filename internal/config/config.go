package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Dataset DatasetConfig `yaml:"dataset" envconfig:"DATASET"`
	Security SecurityConfig `yaml:"security" envconfig:"SECURITY"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/app.log"`
}

// DatasetConfig describes where the candidate sheet comes from and how
// strictly it is parsed.
type DatasetConfig struct {
	// Path is the local CSV or XLSX export. Ignored when SheetID is set.
	Path string `yaml:"path" envconfig:"PATH" default:"data/candidates.csv"`

	// SheetID, when set, makes the server fetch the sheet from Google
	// Sheets instead of reading Path. SheetRange defaults to the first
	// sheet.
	SheetID    string `yaml:"sheet_id" envconfig:"SHEET_ID"`
	SheetRange string `yaml:"sheet_range" envconfig:"SHEET_RANGE" default:"A:AZ"`

	// APIKey authenticates Sheets reads when SheetID is set. A service
	// account key file can be used instead via CredentialsFile.
	APIKey          string `yaml:"api_key" envconfig:"API_KEY"`
	CredentialsFile string `yaml:"credentials_file" envconfig:"CREDENTIALS_FILE"`

	// LenientHeader restores the legacy behavior of parsing from line 0
	// when no header anchor is found instead of failing the load.
	LenientHeader bool `yaml:"lenient_header" envconfig:"LENIENT_HEADER" default:"false"`

	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"data/reports"`
}

// SecurityConfig contains rate limiting and CORS configuration
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS" default:"http://localhost:8080"`
	RateLimit      RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"100"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"50"`
}

// Load loads configuration from environment variables and config file.
// Environment variables take precedence over the YAML file.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := configFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileCfg, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs lays file values over the env-derived config. An
// environment variable that is actually set always wins; defaults
// applied by envconfig do not, since they cannot be told apart from
// explicit values otherwise.
func mergeConfigs(fileCfg, envCfg Config) Config {
	if fileCfg.Server.Port != 0 && !envSet("SERVER_PORT") {
		envCfg.Server.Port = fileCfg.Server.Port
	}
	if fileCfg.Server.ReadTimeout != 0 && !envSet("SERVER_READ_TIMEOUT") {
		envCfg.Server.ReadTimeout = fileCfg.Server.ReadTimeout
	}
	if fileCfg.Server.WriteTimeout != 0 && !envSet("SERVER_WRITE_TIMEOUT") {
		envCfg.Server.WriteTimeout = fileCfg.Server.WriteTimeout
	}
	if fileCfg.Server.IdleTimeout != 0 && !envSet("SERVER_IDLE_TIMEOUT") {
		envCfg.Server.IdleTimeout = fileCfg.Server.IdleTimeout
	}
	if fileCfg.Server.ShutdownTimeout != 0 && !envSet("SERVER_SHUTDOWN_TIMEOUT") {
		envCfg.Server.ShutdownTimeout = fileCfg.Server.ShutdownTimeout
	}
	if fileCfg.Logging.Level != "" && !envSet("LOGGING_LEVEL") {
		envCfg.Logging.Level = fileCfg.Logging.Level
	}
	if fileCfg.Logging.Format != "" && !envSet("LOGGING_FORMAT") {
		envCfg.Logging.Format = fileCfg.Logging.Format
	}
	if fileCfg.Logging.Output != "" && !envSet("LOGGING_OUTPUT") {
		envCfg.Logging.Output = fileCfg.Logging.Output
	}
	if fileCfg.Dataset.Path != "" && !envSet("DATASET_PATH") {
		envCfg.Dataset.Path = fileCfg.Dataset.Path
	}
	if fileCfg.Dataset.SheetID != "" && !envSet("DATASET_SHEET_ID") {
		envCfg.Dataset.SheetID = fileCfg.Dataset.SheetID
	}
	if fileCfg.Dataset.SheetRange != "" && !envSet("DATASET_SHEET_RANGE") {
		envCfg.Dataset.SheetRange = fileCfg.Dataset.SheetRange
	}
	if fileCfg.Dataset.APIKey != "" && !envSet("DATASET_API_KEY") {
		envCfg.Dataset.APIKey = fileCfg.Dataset.APIKey
	}
	if fileCfg.Dataset.CredentialsFile != "" && !envSet("DATASET_CREDENTIALS_FILE") {
		envCfg.Dataset.CredentialsFile = fileCfg.Dataset.CredentialsFile
	}
	if fileCfg.Dataset.LenientHeader && !envSet("DATASET_LENIENT_HEADER") {
		envCfg.Dataset.LenientHeader = true
	}
	if fileCfg.Dataset.ReportsDir != "" && !envSet("DATASET_REPORTS_DIR") {
		envCfg.Dataset.ReportsDir = fileCfg.Dataset.ReportsDir
	}
	return envCfg
}

// envSet reports whether the prefixed environment variable is present.
func envSet(name string) bool {
	_, ok := os.LookupEnv(EnvPrefix + "_" + name)
	return ok
}

// validate checks the configuration using struct tags
func (c *Config) validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	if c.Dataset.Path == "" && c.Dataset.SheetID == "" {
		return fmt.Errorf("dataset: either path or sheet_id must be set")
	}
	return nil
}

// configFilePath returns the config file location, overridable via env
func configFilePath() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(".", "config.yaml")
}
