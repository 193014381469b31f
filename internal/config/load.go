package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. STOREFRONT_SERVER_PORT.
const EnvPrefix = "STOREFRONT"

// ConfigFileEnv names a YAML config file when the --config flag is not given.
const ConfigFileEnv = EnvPrefix + "_CONFIG_FILE"

// flagBindings maps config keys to the command-line flags that override them.
var flagBindings = map[string]string{
	"server.port":       "port",
	"server.log_level":  "log-level",
	"server.log_format": "log-format",
	"server.base_path":  "base-path",
	"store.id_strategy": "id-strategy",
	"store.seed_file":   "seed-file",
	"metrics.enabled":   "metrics",
}

// RegisterFlags defines the command-line flags understood by Load.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file (env "+ConfigFileEnv+")")
	fs.Int("port", 8080, "HTTP listen port")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("log-format", "json", "log format: json or text")
	fs.String("base-path", "", "prefix for the resource routes, e.g. /api")
	fs.String("id-strategy", "sequential", "record id strategy: sequential, length or uuid")
	fs.String("seed-file", "", "YAML fixture file replacing the built-in seed records")
	fs.Bool("metrics", true, "expose Prometheus metrics")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("server.base_path", "")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("store.id_strategy", "sequential")
	v.SetDefault("store.seed_file", "")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// Load configuration from defaults, an optional YAML file, environment
// variables and command-line flags, in increasing order of precedence.
// flags may be nil. Returns a populated Config struct or an error if
// loading/validation fails.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path := configFilePath(flags); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagBindings {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("error binding flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags of cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("configuration is nil")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func configFilePath(flags *pflag.FlagSet) string {
	if flags != nil {
		if path, err := flags.GetString("config"); err == nil && path != "" {
			return path
		}
	}
	return os.Getenv(ConfigFileEnv)
}
