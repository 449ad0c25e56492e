package main

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const defaultConfigFile = "config.yaml"

type Config struct {
	Port        int         `mapstructure:"port"`
	Bind        string      `mapstructure:"bind"`
	JenkinsUser string      `mapstructure:"jenkins_user"`
	JenkinsPass string      `mapstructure:"jenkins_pass"`
	HTTP        HTTPConfig  `mapstructure:"http"`
	Cache       CacheConfig `mapstructure:"cache"`
	Log         LogConfig   `mapstructure:"log"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type CacheConfig struct {
	Type          string        `mapstructure:"type"`
	TTL           time.Duration `mapstructure:"ttl"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("bind", "127.0.0.1")
	v.SetDefault("jenkins_user", "")
	v.SetDefault("jenkins_pass", "")
	v.SetDefault("http.timeout", "10s")
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "5m")
	v.SetDefault("cache.redis_addr", "127.0.0.1:6379")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
}

// loadConfig reads path (or ./config.yaml) with environment overrides such
// as JENKINS_USER or CACHE_TTL. When no config file exists a default one is
// written next to the working directory and loading continues without it.
func loadConfig(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if e := v.ReadInConfig(); e != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(e, &notFound) {
			return nil, errors.Wrap(e, "read config")
		}
		writeDefaultConfig(defaultConfigFile)
	}

	var c Config
	if e := v.Unmarshal(&c); e != nil {
		return nil, errors.Wrap(e, "decode config")
	}
	if e := c.validate(); e != nil {
		return nil, e
	}
	return &c, nil
}

// writeDefaultConfig uses a separate viper so values picked up from the
// environment, credentials included, never reach the file.
func writeDefaultConfig(path string) {
	d := viper.New()
	setDefaults(d)
	d.SetConfigType("yaml")
	if e := d.SafeWriteConfigAs(path); e != nil {
		log.Warn().Err(e).Str("file", path).Msg("could not write default config")
		return
	}
	log.Info().Str("file", path).Msg("wrote default config")
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.Errorf("invalid port %d", c.Port)
	}
	switch c.Cache.Type {
	case "memory", "redis", "none":
	default:
		return errors.Errorf("unknown cache type %q", c.Cache.Type)
	}
	if c.JenkinsUser == "" && c.JenkinsPass != "" {
		log.Warn().Msg("jenkins_pass is set without jenkins_user and will not be sent")
	}
	return nil
}

func setupLogging(c *LogConfig) {
	level, e := zerolog.ParseLevel(strings.ToLower(c.Level))
	if e != nil || c.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if c.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}
