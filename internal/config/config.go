package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Fixtures FixturesConfig `mapstructure:"fixtures"`
	Database DatabaseConfig `mapstructure:"database"`
	UI       UIConfig       `mapstructure:"ui"`
}

// LogConfig holds logrus settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
	File   string `mapstructure:"file"`   // required to see logs while the TUI runs
}

const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

var Sources = []string{SourceBuiltin, SourceFile, SourceHTTP, SourcePostgres}

// FixturesConfig selects where catalog items come from
type FixturesConfig struct {
	Source string `mapstructure:"source"`
	Dir    string `mapstructure:"dir"`

	// HTTP source
	BaseURL              string   `mapstructure:"base_url"`
	Mirrors              []string `mapstructure:"mirrors"` // tried after base_url, round-robin
	Proxy                string   `mapstructure:"proxy"`
	Timeout              int      `mapstructure:"timeout"`
	MaxRetries           int      `mapstructure:"max_retries"`
	MaxRequestsPerSecond int      `mapstructure:"max_requests_per_second"`
}

// DatabaseConfig holds database configuration for the postgres source
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Table    string `mapstructure:"table"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

const (
	ModeTUI   = "tui"
	ModePrint = "print"
)

// UIConfig holds rendering surface settings
type UIConfig struct {
	Mode string `mapstructure:"mode"`
	// Initial selection applied to every category that supports it
	Filter  string `mapstructure:"filter"`
	SortKey string `mapstructure:"sort_key"`
	Mouse   bool   `mapstructure:"mouse"`
}

// Load loads configuration from an optional config.yaml in the working
// directory with environment variable overrides (LOG_LEVEL, FIXTURES_SOURCE, ...).
func Load() (*Config, error) {
	return load(viper.New(), ".")
}

// LoadFrom reads configuration from the given directory.
func LoadFrom(dir string) (*Config, error) {
	return load(viper.New(), dir)
}

func load(v *viper.Viper, dir string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects unknown enumerated values. The initial filter and sort
// key are checked later against each catalog.
func (c *Config) Validate() error {
	if !slices.Contains(Sources, c.Fixtures.Source) {
		return fmt.Errorf("fixtures.source must be one of %s, got %q", strings.Join(Sources, ", "), c.Fixtures.Source)
	}
	if c.Fixtures.Source == SourceHTTP && c.Fixtures.BaseURL == "" {
		return fmt.Errorf("fixtures.base_url is required for the http source")
	}
	if c.Fixtures.Source == SourceHTTP && c.Fixtures.MaxRequestsPerSecond <= 0 {
		return fmt.Errorf("fixtures.max_requests_per_second must be positive")
	}
	if c.UI.Mode != ModeTUI && c.UI.Mode != ModePrint {
		return fmt.Errorf("ui.mode must be %s or %s, got %q", ModeTUI, ModePrint, c.UI.Mode)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	v.SetDefault("fixtures.source", SourceBuiltin)
	v.SetDefault("fixtures.dir", "./fixtures")
	v.SetDefault("fixtures.base_url", "")
	v.SetDefault("fixtures.mirrors", []string{})
	v.SetDefault("fixtures.proxy", "")
	v.SetDefault("fixtures.timeout", 30)
	v.SetDefault("fixtures.max_retries", 3)
	v.SetDefault("fixtures.max_requests_per_second", 5)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "showcase")
	v.SetDefault("database.user", "showcase_user")
	v.SetDefault("database.password", "showcase_pass")
	v.SetDefault("database.table", "showcase_items")

	v.SetDefault("ui.mode", ModeTUI)
	v.SetDefault("ui.filter", "")
	v.SetDefault("ui.sort_key", "top_rated")
	v.SetDefault("ui.mouse", true)
}
