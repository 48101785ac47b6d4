package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	OrderAscending  = "asc"
	OrderDescending = "desc"
)

var ErrInvalidHistoryOrder = errors.New("invalid history order")

type Config struct {
	LogLevel        string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort        string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	HistoryOrder    string        `yaml:"history-order" env:"HISTORY_ORDER" env-default:"asc"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the config file at path. When the file does not exist only the environment is used.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err = config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) validate() error {
	switch that.HistoryOrder {
	case OrderAscending, OrderDescending:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidHistoryOrder, that.HistoryOrder)
	}
}

// IsAscending reports whether new games list their history oldest first.
func (that *Config) IsAscending() bool {
	return that.HistoryOrder != OrderDescending
}
