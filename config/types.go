package config

import "github.com/theoremus-urban-solutions/transit-catalogue/router"

// ServerConfig contains server configuration
type ServerConfig struct {
	Port           int      `yaml:"port" validate:"gt=0,lte=65535"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
	CacheSize      int      `yaml:"cacheSize" validate:"gte=0"`
}

// InputConfig names the network document to load at startup
type InputConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig controls how stat responses are serialized
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=json xml"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig    `yaml:"server" validate:"required"`
	Routing router.Settings `yaml:"routing"`
	Input   InputConfig     `yaml:"input"`
	Output  OutputConfig    `yaml:"output"`
	Log     LogConfig       `yaml:"log"`
}
