// Package config provides application configuration loading.
// Configuration lives in a TOML file looked up across several paths.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// MainConfig holds the basic application settings.
type MainConfig struct {
	AppName string `toml:"appName"` // application name, used for log tagging
	Host    string `toml:"host"`    // listen address, e.g. "0.0.0.0"
	Port    int    `toml:"port"`    // listen port, e.g. 9000
	Mode    string `toml:"mode"`    // "dev" or "release"
}

// MysqlConfig holds the MySQL connection settings.
type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Password string `toml:"password"` // empty when auth is disabled
	Db       int    `toml:"db"`
}

// LogConfig configures zap output and lumberjack rotation.
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // log directory
	FileName   string `toml:"fileName"`   // log file name
	MaxSize    int    `toml:"maxSize"`    // max size of one file in MB
	MaxBackups int    `toml:"maxBackups"` // max rotated files kept
	MaxAge     int    `toml:"maxAge"`     // max age of rotated files in days
	Level      string `toml:"level"`      // debug, info, warn, error
}

// JWTConfig holds the token signing settings.
type JWTConfig struct {
	Secret             string `toml:"secret"`             // HS256 signing key, 32+ chars recommended
	AccessTokenExpiry  int    `toml:"accessTokenExpiry"`  // access token lifetime in minutes
	RefreshTokenExpiry int    `toml:"refreshTokenExpiry"` // refresh token lifetime in hours
}

// UploadConfig configures pet image storage.
type UploadConfig struct {
	StaticUploadPath string `toml:"staticUploadPath"` // directory images are written to
	PublicBaseURL    string `toml:"publicBaseURL"`    // URL prefix stored on the pet record
}

// TLSConfig configures the optional HTTPS redirect.
type TLSConfig struct {
	RedirectEnabled bool   `toml:"redirectEnabled"` // redirect plain HTTP to HTTPS
	SSLHost         string `toml:"sslHost"`         // host:port redirected to
}

// Config aggregates all sub-configurations.
type Config struct {
	MainConfig   `toml:"mainConfig"`
	MysqlConfig  `toml:"mysqlConfig"`
	RedisConfig  `toml:"redisConfig"`
	LogConfig    `toml:"logConfig"`
	JWTConfig    `toml:"jwtConfig"`
	UploadConfig `toml:"uploadConfig"`
	TLSConfig    `toml:"tlsConfig"`
}

// config is the lazily loaded singleton.
var config *Config

// LoadConfig tries the candidate paths in order and stops at the first
// file that parses. A local override file wins over the default.
func LoadConfig() error {
	paths := []string{
		"configs/config_local.toml",
		"configs/config.toml",
		"../../configs/config_local.toml",
		"../../configs/config.toml",
	}

	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			return nil
		}
	}

	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig returns the global configuration, loading it on first use.
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig() // missing file leaves zero values, caller defaults apply
	}
	return config
}
