// Package config loads the service configuration: defaults first, then
// an optional wharfd.yml, then WHARFD_* environment variables. A .env
// file in the working directory is folded into the environment before
// any of that happens.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/wharfd/wharfd/pkg/duration"
	"github.com/wharfd/wharfd/pkg/logger"
)

// EnvPrefix is the prefix of every environment override,
// e.g. WHARFD_SERVER_LISTEN_ADDR.
const EnvPrefix = "WHARFD"

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	ListenAddr string          `mapstructure:"listen_addr"`
	LogLevel   string          `mapstructure:"log_level"`
	CORS       CORSConfig      `mapstructure:"cors"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
}

// CORSConfig gates cross-origin requests.
type CORSConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Origins []string `mapstructure:"origins"`
}

// RateLimitConfig gates per-client request throttling.
type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps"`
	Burst   int     `mapstructure:"burst"`
}

// EngineConfig holds the engine connection settings. An empty Host
// falls back to the environment and then the default socket.
type EngineConfig struct {
	Host        string `mapstructure:"host"`
	PingTimeout string `mapstructure:"ping_timeout"`
}

// ActivityConfig holds the audit-log settings.
type ActivityConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
}

// Config is the top-level configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Activity ActivityConfig `mapstructure:"activity"`
}

// PingTimeout parses the configured probe timeout, falling back to 2s
// on a bad value.
func (c *Config) PingTimeout() time.Duration {
	d, err := duration.Parse(c.Engine.PingTimeout)
	if err != nil || d <= 0 {
		logger.Warn("invalid engine.ping_timeout, using 2s", "value", c.Engine.PingTimeout)
		return 2 * time.Second
	}
	return d
}

// SetDefaults installs every default on the given viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.listen_addr", ":5000")
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors.enabled", true)
	v.SetDefault("server.cors.origins", []string{"*"})
	v.SetDefault("server.rate_limit.enabled", false)
	v.SetDefault("server.rate_limit.rps", 20.0)
	v.SetDefault("server.rate_limit.burst", 40)
	v.SetDefault("engine.host", "")
	v.SetDefault("engine.ping_timeout", "2s")
	v.SetDefault("activity.enabled", true)
	v.SetDefault("activity.dir", defaultActivityDir())
}

// Load reads the configuration. cfgFile "" means look for wharfd.yml in
// the working directory; a named file that cannot be read is an error,
// a missing default file is not.
func Load(cfgFile string) (*Config, error) {
	// .env values become plain environment variables, so they go
	// through the same WHARFD_ override path.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Debug("no .env file loaded", "error", err)
	}

	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("wharfd")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// defaultActivityDir prefers the XDG data directory and falls back to
// a local one when no home can be resolved.
func defaultActivityDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./data"
	}
	return filepath.Join(home, ".local", "share", "wharfd")
}
