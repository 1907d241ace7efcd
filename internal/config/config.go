package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "NEUROHUS"

type AppConfig struct {
	API  APIConfig  `mapstructure:"api"`
	Gin  GinConfig  `mapstructure:"gin"`
	Log  LogConfig  `mapstructure:"log"`
	Seed SeedConfig `mapstructure:"seed"`
}

type APIConfig struct {
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	Environment        string   `mapstructure:"environment"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// SeedConfig controls whether the stores start with the demo records.
type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads the YAML file at path. Every key can be overridden from the
// environment, e.g. NEUROHUS_API_PORT overrides api.port.
func Load(path string) (*AppConfig, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	return decode(v)
}

// Watch re-reads the file at path whenever it changes on disk and hands the
// new config to onChange. Broken edits are logged and skipped.
func Watch(path string, onChange func(*AppConfig)) error {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name), zap.String("op", e.Op.String()))

		conf, err := decode(v)
		if err != nil {
			zap.L().Warn("ignoring invalid config", zap.Error(err))
			return
		}
		onChange(conf)
	})
	v.WatchConfig()

	return nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.port", "8000")
	v.SetDefault("api.base_url", "localhost:8000")
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("log.level", "info")
	v.SetDefault("seed.enabled", true)

	return v
}

func decode(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	return conf, nil
}
