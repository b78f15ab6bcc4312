package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	coreagg "github.com/ventus-lab/ventus/internal/core/aggregation"
	"github.com/ventus-lab/ventus/internal/core/fields"
)

// DefaultPath is read when no -config flag is given. Unlike an explicit
// path, it may be absent.
const DefaultPath = "ventus.yaml"

// MaxPageSize bounds page_size for both the API and the extractor.
const MaxPageSize = 1000

// Config is shared by the API server, the ETL job and the admin CLI.
// Each program validates only the sections it uses via the Require* methods.
type Config struct {
	Server  ServerConfig   `koanf:"server"`
	Source  DatabaseConfig `koanf:"source"`
	Target  DatabaseConfig `koanf:"target"`
	ETL     ETLConfig      `koanf:"etl"`
	Auth    AuthConfig     `koanf:"auth"`
	Log     LogConfig      `koanf:"log"`
	Signals SignalsConfig  `koanf:"signals"`
}

type ServerConfig struct {
	Port           int     `koanf:"port"`
	Host           string  `koanf:"host"`
	Mode           string  `koanf:"mode"` // debug | release
	RateLimitRPS   float64 `koanf:"rate_limit_rps"`
	RateLimitBurst int     `koanf:"rate_limit_burst"`
}

type DatabaseConfig struct {
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
}

type ETLConfig struct {
	APIBaseURL  string        `koanf:"api_base_url"`
	APIKey      string        `koanf:"api_key"`
	HTTPTimeout time.Duration `koanf:"http_timeout"`
	PageSize    int           `koanf:"page_size"`
	Fields      string        `koanf:"fields"`
	WindowSize  string        `koanf:"window_size"`
}

type AuthConfig struct {
	CacheSize int           `koanf:"cache_size"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
}

type LogConfig struct {
	Level string `koanf:"level"` // debug | info | warn | error
}

type SignalsConfig struct {
	CatalogPath string `koanf:"catalog_path"` // empty uses the built-in catalog
}

// SlogLevel maps the configured level name onto slog.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log.level %q: %w", c.Level, err)
	}
	return lvl, nil
}

// Window returns the parsed etl.window_size.
func (c ETLConfig) Window() (coreagg.WindowSpec, error) {
	return coreagg.ParseWindowSize(c.WindowSize)
}

// Validate checks the settings every program depends on.
func (c *Config) Validate() error {
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}
	if c.Server.RateLimitRPS < 0 {
		return fmt.Errorf("server.rate_limit_rps must be >= 0")
	}
	if c.Server.RateLimitRPS > 0 && c.Server.RateLimitBurst <= 0 {
		return fmt.Errorf("server.rate_limit_burst must be > 0 when rate limiting is enabled")
	}
	if c.Auth.CacheSize < 0 {
		return fmt.Errorf("auth.cache_size must be >= 0")
	}
	if c.ETL.PageSize < 1 || c.ETL.PageSize > MaxPageSize {
		return fmt.Errorf("invalid etl.page_size %d (must be 1-%d)", c.ETL.PageSize, MaxPageSize)
	}
	if _, err := c.ETL.Window(); err != nil {
		return fmt.Errorf("invalid etl.window_size: %w", err)
	}
	return nil
}

// RequireSource validates the source database section.
func (c *Config) RequireSource() error {
	return c.Source.validate("source")
}

// RequireTarget validates the target database section.
func (c *Config) RequireTarget() error {
	if err := c.Target.validate("target"); err != nil {
		return err
	}
	if c.Source.DSN != "" && c.Source.DSN == c.Target.DSN {
		return fmt.Errorf("source.dsn and target.dsn must point at different databases")
	}
	return nil
}

// RequireETL validates the extractor settings.
func (c *Config) RequireETL() error {
	if strings.TrimSpace(c.ETL.APIBaseURL) == "" {
		return fmt.Errorf("etl.api_base_url is required")
	}
	u, err := url.Parse(c.ETL.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid etl.api_base_url %q", c.ETL.APIBaseURL)
	}
	if strings.TrimSpace(c.ETL.APIKey) == "" {
		return fmt.Errorf("etl.api_key is required")
	}
	if c.ETL.HTTPTimeout <= 0 {
		return fmt.Errorf("etl.http_timeout must be > 0")
	}
	if len(fields.Parse(c.ETL.Fields)) == 0 {
		return fmt.Errorf("etl.fields must name at least one field")
	}
	return nil
}

func (c DatabaseConfig) validate(section string) error {
	if strings.TrimSpace(c.DSN) == "" {
		return fmt.Errorf("%s.dsn is required", section)
	}
	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("%s.max_open_conns must be > 0", section)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("%s.max_idle_conns must be > 0", section)
	}
	return nil
}

// Load parses config from defaults, the YAML file and VENTUS_ env vars, then validates it.
// VENTUS_SOURCE__DSN overrides source.dsn.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":             8000,
		"server.host":             "0.0.0.0",
		"server.mode":             "release",
		"server.rate_limit_rps":   0,
		"server.rate_limit_burst": 20,
		"source.max_open_conns":   25,
		"source.max_idle_conns":   25,
		"source.auto_migrate":     true,
		"target.max_open_conns":   10,
		"target.max_idle_conns":   10,
		"target.auto_migrate":     true,
		"etl.http_timeout":        "30s",
		"etl.page_size":           25,
		"etl.fields":              "wind_speed,power,ambient_temperature",
		"etl.window_size":         "10m",
		"auth.cache_size":         1024,
		"auth.cache_ttl":          "1m",
		"log.level":               "info",
		"signals.catalog_path":    "",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) && configPath == DefaultPath {
			slog.Debug("[Config] Default config file not found, using defaults and env", "path", configPath)
		} else if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("VENTUS_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "VENTUS_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
