// Package config centralises configuration parsing for the signup service.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config captures runtime configuration values for the signup service.
type Config struct {
	HTTPAddress  string
	LogLevel     string
	LogFormat    string
	CORSOrigin   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load reads the optional .env file and environment variables into Config,
// applying sensible defaults for local dev.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDRESS", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("READ_TIMEOUT", 5*time.Second)
	v.SetDefault("WRITE_TIMEOUT", 10*time.Second)
	v.SetDefault("IDLE_TIMEOUT", 60*time.Second)

	return Config{
		HTTPAddress:  v.GetString("HTTP_ADDRESS"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		LogFormat:    v.GetString("LOG_FORMAT"),
		CORSOrigin:   v.GetString("CORS_ORIGIN"),
		ReadTimeout:  v.GetDuration("READ_TIMEOUT"),
		WriteTimeout: v.GetDuration("WRITE_TIMEOUT"),
		IdleTimeout:  v.GetDuration("IDLE_TIMEOUT"),
	}
}
