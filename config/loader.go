package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/transit-catalogue/router"
)

// Config is the global application configuration
var Config AppConfig

// DefaultPaths are searched in order when LoadAppConfig gets no paths
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// Environment overrides
const (
	EnvPort         = "TRANSIT_PORT"
	EnvBusWaitTime  = "TRANSIT_BUS_WAIT_TIME"
	EnvBusVelocity  = "TRANSIT_BUS_VELOCITY"
	EnvLogLevel     = "TRANSIT_LOG_LEVEL"
	EnvInputPath    = "TRANSIT_INPUT"
	EnvOutputFormat = "TRANSIT_FORMAT"
)

// Defaults returns the configuration used when no file is found
func Defaults() AppConfig {
	return AppConfig{
		Server:  ServerConfig{Port: 16181, AllowedOrigins: []string{"*"}, CacheSize: 1024},
		Routing: router.Settings{BusWaitTime: 6, BusVelocity: 40},
		Output:  OutputConfig{Format: "json"},
		Log:     LogConfig{Level: "info"},
	}
}

// LoadAppConfig loads and validates the application configuration. The first
// readable path wins; if none exists the defaults are used. A .env file in the
// working directory is read but never overrides variables already set.
func LoadAppConfig(paths ...string) error {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	_ = godotenv.Load()

	cfg := Defaults()
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read config %s: %w", p, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parse config %s: %w", p, err)
		}
		break
	}

	if err := applyEnv(&cfg); err != nil {
		return err
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16181
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	Config = cfg
	return nil
}

func applyEnv(cfg *AppConfig) error {
	if s := os.Getenv(EnvPort); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
		cfg.Server.Port = n
	}
	if s := os.Getenv(EnvBusWaitTime); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBusWaitTime, err)
		}
		cfg.Routing.BusWaitTime = n
	}
	if s := os.Getenv(EnvBusVelocity); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBusVelocity, err)
		}
		cfg.Routing.BusVelocity = f
	}
	if s := os.Getenv(EnvLogLevel); s != "" {
		cfg.Log.Level = s
	}
	if s := os.Getenv(EnvInputPath); s != "" {
		cfg.Input.Path = s
	}
	if s := os.Getenv(EnvOutputFormat); s != "" {
		cfg.Output.Format = s
	}
	return nil
}
