package core

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config contains all of the configuration options available to the objdefs
// commands and the lookup service.
type Config struct {
	// Full path to file to which logs will be written. Blank will write to stdout.
	LogFilePath string `mapstructure:"log_file_path"`
	// Minimum level of a log required to be written. Options: debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`

	Registry struct {
		// Header or data file (or doublestar glob of them) to load identifiers
		// from. Blank uses the table embedded in the binary.
		Source string `mapstructure:"source"`
		// Text encoding of header comments.
		Encoding string `mapstructure:"encoding"`
		// Reload the lookup service when the source file changes.
		Watch bool `mapstructure:"watch"`
	} `mapstructure:"registry"`

	Web struct {
		// Hostname or IP address on which the lookup service will listen.
		Hostname string `mapstructure:"hostname"`
		// HTTP endpoint port for the lookup API.
		HTTPPort int `mapstructure:"http_port"`
	} `mapstructure:"web"`

	Database struct {
		// Either sqlite or postgres.
		Engine string `mapstructure:"engine"`
		// SQLite database file, relative to the config directory.
		Filename string `mapstructure:"filename"`
		// Hostname of the Postgres database instance.
		Host string `mapstructure:"host"`
		// Port on db_host on which the Postgres instance is accepting connections.
		Port int `mapstructure:"port"`
		// Name of the database in Postgres for objdefs.
		Name string `mapstructure:"name"`
		// Username and password of a user with full RW privileges to ${db_name}.
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		// Set to verify-full if the Postgres instance supports SSL.
		SSLMode string `mapstructure:"sslmode"`
	} `mapstructure:"database"`

	Debugging struct {
		// Start a pprof server alongside the lookup service.
		PprofEnabled bool `mapstructure:"pprof_enabled"`
		// Port on which a pprof server will be started if debug mode is enabled.
		PprofPort int `mapstructure:"pprof_port"`
		// Enable database-level query logging.
		DatabaseLoggingEnabled bool `mapstructure:"database_logging_enabled"`
	} `mapstructure:"debugging"`

	configDir string
}

const envVarPrefix = "OBJDEFS"

var defaults = map[string]interface{}{
	"log_level":                          "info",
	"log_file_path":                      "",
	"registry.source":                    "",
	"registry.encoding":                  "euc-kr",
	"registry.watch":                     false,
	"web.hostname":                       "127.0.0.1",
	"web.http_port":                      8080,
	"database.engine":                    "sqlite",
	"database.filename":                  "objdefs.db",
	"database.host":                      "localhost",
	"database.port":                      5432,
	"database.name":                      "objdefs",
	"database.username":                  "",
	"database.password":                  "",
	"database.sslmode":                   "disable",
	"debugging.pprof_enabled":            false,
	"debugging.pprof_port":               4000,
	"debugging.database_logging_enabled": false,
}

// LoadConfig reads config.yaml from configPath. A missing file is not an
// error; defaults and OBJDEFS_* environment variables still apply.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	if configPath == "" {
		configPath = "."
	}
	v.AddConfigPath(configPath)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvPrefix(envVarPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// This allows us to set nested yaml config options through environment
	// variables. For example, database.host can be set using: <envVarPrefix>_DATABASE_HOST
	for _, k := range v.AllKeys() {
		envVar := envVarPrefix + "_" + strings.ReplaceAll(strings.ToUpper(k), ".", "_")
		if err := v.BindEnv(k, envVar); err != nil {
			return nil, fmt.Errorf("error binding %s to %s: %w", k, envVar, err)
		}
	}

	config := &Config{configDir: configPath}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config object: %w", err)
	}
	return config, nil
}

const databaseURITemplate = "host=%s port=%d dbname=%s user=%s password=%s sslmode=%s"

// DatabaseURL returns a database URL generated from the provided config values.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		databaseURITemplate,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.Username,
		c.Database.Password,
		c.Database.SSLMode,
	)
}

// QualifiedPath resolves a path from the config file relative to the
// directory the config was loaded from.
func (c *Config) QualifiedPath(path string) string {
	if path == "" || filepath.IsAbs(path) || c.configDir == "" {
		return path
	}
	return filepath.Join(c.configDir, path)
}

// WebAddress is the address the lookup service listens on.
func (c *Config) WebAddress() string {
	return fmt.Sprintf("%s:%d", c.Web.Hostname, c.Web.HTTPPort)
}
