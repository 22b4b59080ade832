package util

import (
	"fmt"
	"io"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// EnvPrefix namespaces every environment variable read by Config.
const EnvPrefix = "DIRTIDY"

// Config holds settings shared by all subcommands. Values come from the
// environment first and are then overridden by command-line flags.
type Config struct {
	NoColor   bool   `envconfig:"NO_COLOR"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	ChunkSize int    `envconfig:"CHUNK_SIZE" default:"8192"`
	MinSize   string `envconfig:"MIN_SIZE" default:"0"`
}

// LoadConfig reads Config from DIRTIDY_* environment variables.
func LoadConfig() (Config, error) {
	var c Config
	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return Config{}, fmt.Errorf("loading environment config: %w", err)
	}
	if c.ChunkSize < 1 {
		c.ChunkSize = DefaultChunkSize
	}
	return c, nil
}

// NewLogger returns a text logger writing to w at the configured level.
// Timestamps are dropped so warnings read like the rest of the report.
func (c Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrInvalidLogLevel, c.LogLevel)
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    c.NoColor,
	})
	return log, nil
}
