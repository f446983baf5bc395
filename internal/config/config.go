package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultBanner is the body of GET /.
const DefaultBanner = "BD4-Assignment 1- Backend for a food discovery app called FoodieFinds."

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var ErrInvalidConfig = errors.New("invalid config")

// DatabaseConfig holds connection settings for the catalog database.
// Path is used by the sqlite driver; the host/port/user fields by postgres.
type DatabaseConfig struct {
	Driver             string `koanf:"driver"`
	Path               string `koanf:"path"`
	ReadOnly           bool   `koanf:"read_only"`
	Host               string `koanf:"host"`
	Port               string `koanf:"port"`
	User               string `koanf:"user"`
	Password           string `koanf:"password"`
	Name               string `koanf:"name"`
	SSLMode            string `koanf:"sslmode"`
	MaxOpenConns       int    `koanf:"max_open_conns"`
	MaxIdleConns       int    `koanf:"max_idle_conns"`
	ConnMaxLifetimeSec int    `koanf:"conn_max_lifetime_sec"`
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// AppConfig is the centralized configuration struct for the application.
type AppConfig struct {
	Port     string         `koanf:"port"`
	Banner   string         `koanf:"banner"`
	Log      LogConfig      `koanf:"log"`
	Database DatabaseConfig `koanf:"database"`
}

// envKeys maps the supported environment variables to koanf keys.
// Variables not listed here are ignored.
var envKeys = map[string]string{
	"PORT":                     "port",
	"APP_BANNER":               "banner",
	"LOG_LEVEL":                "log.level",
	"LOG_FORMAT":               "log.format",
	"DB_DRIVER":                "database.driver",
	"DB_PATH":                  "database.path",
	"DB_READ_ONLY":             "database.read_only",
	"DB_HOST":                  "database.host",
	"DB_PORT":                  "database.port",
	"DB_USER":                  "database.user",
	"DB_PASSWORD":              "database.password",
	"DB_NAME":                  "database.name",
	"DB_SSLMODE":               "database.sslmode",
	"DB_MAX_OPEN_CONNS":        "database.max_open_conns",
	"DB_MAX_IDLE_CONNS":        "database.max_idle_conns",
	"DB_CONN_MAX_LIFETIME_SEC": "database.conn_max_lifetime_sec",
}

// Default returns the configuration used when nothing is overridden.
func Default() *AppConfig {
	return &AppConfig{
		Port:   "3000",
		Banner: DefaultBanner,
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Database: DatabaseConfig{
			Driver:       DriverSQLite,
			Path:         "./database.sqlite",
			Port:         "5432",
			SSLMode:      "disable",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
	}
}

// Load builds the configuration by layering, from low to high precedence:
//  1. Default()
//  2. the YAML file named by CONFIG_FILE, if set
//  3. environment variables (a .env file can be auto-loaded by importing
//     _ "github.com/joho/godotenv/autoload")
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider("", ".", func(s string) string {
		return envKeys[s]
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields the server cannot start without.
func (c *AppConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("%w: port must not be empty", ErrInvalidConfig)
	}
	c.Database.Driver = strings.ToLower(c.Database.Driver)
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("%w: database path is required for sqlite", ErrInvalidConfig)
		}
	case DriverPostgres:
	default:
		return fmt.Errorf("%w: unsupported database driver %q", ErrInvalidConfig, c.Database.Driver)
	}
	return nil
}
