package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/nkiryanov/cardcheck/internal/handlers"
	"github.com/nkiryanov/cardcheck/internal/logger"
)

const (
	defaultListenAddr      = "localhost:8000"
	defaultLoggingLevel    = logger.LevelInfo
	defaultEnvironment     = logger.EnvProduction
	defaultMaxBodyBytes    = handlers.DefaultMaxBodyBytes
	defaultShutdownTimeout = 5 * time.Second
)

type Config struct {
	// Default logging level
	LogLevel string

	// Address on which the cardcheck service will be run
	ListenAddr string

	// Environment (dev, prod): text logs for dev, JSON for prod
	Environment string

	// Requests with larger body are rejected
	MaxBodyBytes int64

	// How long to wait for in-flight requests on shutdown
	ShutdownTimeout time.Duration
}

func NewConfig() *Config {
	return &Config{
		LogLevel:        defaultLoggingLevel,
		ListenAddr:      defaultListenAddr,
		Environment:     defaultEnvironment,
		MaxBodyBytes:    defaultMaxBodyBytes,
		ShutdownTimeout: defaultShutdownTimeout,
	}
}

// Load variable from '.env' file (should be located at working directory)
func (c *Config) LoadDotEnv(getwd func() (string, error)) error {
	wd, err := getwd()
	if err != nil {
		return err
	}

	envMap, err := godotenv.Read(filepath.Join(wd, ".env"))

	switch {
	case err == nil:
		return c.LoadEnv(func(key string) string {
			return envMap[key]
		})
	case errors.Is(err, os.ErrNotExist):
		return nil
	default:
		return err
	}
}

func (c *Config) LoadEnv(getenv func(string) string) error {
	// Set option to value if it not empty
	setString := func(o *string) func(value string) error {
		return func(value string) error {
			if value != "" {
				*o = value
			}
			return nil
		}
	}
	setInt64 := func(o *int64) func(value string) error {
		return func(value string) error {
			if value == "" {
				return nil
			}
			v, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return err
			}
			*o = v
			return nil
		}
	}
	setDuration := func(o *time.Duration) func(value string) error {
		return func(value string) error {
			if value == "" {
				return nil
			}
			v, err := time.ParseDuration(value)
			if err != nil {
				return err
			}
			*o = v
			return nil
		}
	}

	envMap := map[string]func(string) error{
		"RUN_ADDRESS":      setString(&c.ListenAddr),
		"LOG_LEVEL":        setString(&c.LogLevel),
		"ENVIRONMENT":      setString(&c.Environment),
		"MAX_BODY_BYTES":   setInt64(&c.MaxBodyBytes),
		"SHUTDOWN_TIMEOUT": setDuration(&c.ShutdownTimeout),
	}

	for key, parseFn := range envMap {
		if err := parseFn(getenv(key)); err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
	}

	return nil
}

func (c *Config) ParseFlags(args []string) error {
	fs := pflag.NewFlagSet("cardcheck", pflag.ContinueOnError)

	fs.StringVarP(&c.ListenAddr, "address", "a", c.ListenAddr, "Server listen address")
	fs.StringVarP(&c.LogLevel, "log-level", "l", c.LogLevel, "Logging level (debug, info, warn, error)")
	fs.StringVarP(&c.Environment, "environment", "e", c.Environment, "Environment (dev, prod)")
	fs.Int64Var(&c.MaxBodyBytes, "max-body-bytes", c.MaxBodyBytes, "Max request body size in bytes")
	fs.DurationVar(&c.ShutdownTimeout, "shutdown-timeout", c.ShutdownTimeout, "Graceful shutdown timeout")

	return fs.Parse(args)
}
