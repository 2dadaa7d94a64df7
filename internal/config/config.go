// Package config provides configuration loading and validation for the server and CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/storage"
)

// Config is the runtime configuration, loaded from an optional JSON file and overlaid with the environment.
// All fields are optional; MergeWithDefaults fills whatever is left empty.
type Config struct {
	// Server
	Port int `json:"port,omitempty" validate:"gte=0,lte=65535"`

	// Persistence
	StorageBackend  string `json:"storage_backend,omitempty" validate:"omitempty,oneof=file memory redis postgres"`
	StoragePath     string `json:"storage_path,omitempty"` // Directory for the file backend
	StorageKey      string `json:"storage_key,omitempty"`  // Key the document is saved under
	RedisURL        string `json:"redis_url,omitempty" validate:"required_if=StorageBackend redis"`
	DatabaseURL     string `json:"database_url,omitempty" validate:"required_if=StorageBackend postgres"`
	AutosaveDelayMS int    `json:"autosave_delay_ms,omitempty" validate:"gte=0"`

	// Rendering and export
	Language             string `json:"language,omitempty" validate:"omitempty,oneof=fa en"`
	Template             string `json:"template,omitempty" validate:"omitempty,oneof=visual ats"`
	OutputDir            string `json:"output_dir,omitempty"`
	ChromePath           string `json:"chrome_path,omitempty"` // Chrome binary; empty searches PATH
	ExportTimeoutSeconds int    `json:"export_timeout_seconds,omitempty" validate:"gte=0"`
	ExportsPerMinute     int    `json:"exports_per_minute,omitempty" validate:"gte=-1"`

	// Logging
	LogLevel  string `json:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn warning error"`
	LogFormat string `json:"log_format,omitempty" validate:"omitempty,oneof=json text"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Port:                 8080,
		StorageBackend:       string(storage.BackendFile),
		StoragePath:          ".resume-builder",
		StorageKey:           "resume-data",
		AutosaveDelayMS:      500,
		Language:             "fa",
		Template:             "visual",
		OutputDir:            ".",
		ExportTimeoutSeconds: 60,
		ExportsPerMinute:     6,
		LogLevel:             "info",
		LogFormat:            "json",
	}
}

// Load reads path (when non-empty), applies environment overrides, fills defaults and validates
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from environment variables that are set and non-empty
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *int) error {
		v, ok := lookup(name)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer, got %q", name, v)
		}
		*dst = n
		return nil
	}

	if err := num("PORT", &c.Port); err != nil {
		return err
	}
	str("STORAGE_BACKEND", &c.StorageBackend)
	str("STORAGE_PATH", &c.StoragePath)
	str("STORAGE_KEY", &c.StorageKey)
	str("REDIS_URL", &c.RedisURL)
	str("DATABASE_URL", &c.DatabaseURL)
	if err := num("AUTOSAVE_DELAY_MS", &c.AutosaveDelayMS); err != nil {
		return err
	}
	str("RESUME_LANGUAGE", &c.Language)
	str("RESUME_TEMPLATE", &c.Template)
	str("OUTPUT_DIR", &c.OutputDir)
	str("CHROME_PATH", &c.ChromePath)
	if err := num("EXPORT_TIMEOUT_SECONDS", &c.ExportTimeoutSeconds); err != nil {
		return err
	}
	if err := num("EXPORTS_PER_MINUTE", &c.ExportsPerMinute); err != nil {
		return err
	}
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names so messages match the config file
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config error: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("'%s' must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value()))
		case "required_if":
			msgs = append(msgs, fmt.Sprintf("'%s' is required when %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("'%s' failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		}
	}
	return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.StorageBackend == "" {
		result.StorageBackend = defaults.StorageBackend
	}
	if result.StoragePath == "" {
		result.StoragePath = defaults.StoragePath
	}
	if result.StorageKey == "" {
		result.StorageKey = defaults.StorageKey
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Language == "" {
		result.Language = defaults.Language
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Int fields: zero means unset
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.AutosaveDelayMS == 0 {
		result.AutosaveDelayMS = defaults.AutosaveDelayMS
	}
	if result.ExportTimeoutSeconds == 0 {
		result.ExportTimeoutSeconds = defaults.ExportTimeoutSeconds
	}
	if result.ExportsPerMinute == 0 {
		result.ExportsPerMinute = defaults.ExportsPerMinute
	}

	return result
}

// AutosaveDelay is the debounce quiet period
func (c *Config) AutosaveDelay() time.Duration {
	return time.Duration(c.AutosaveDelayMS) * time.Millisecond
}

// ExportTimeout bounds one browser session
func (c *Config) ExportTimeout() time.Duration {
	return time.Duration(c.ExportTimeoutSeconds) * time.Second
}

// StorageOptions selects and configures the storage backend
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:     storage.Backend(c.StorageBackend),
		Path:        c.StoragePath,
		RedisURL:    c.RedisURL,
		DatabaseURL: c.DatabaseURL,
	}
}
