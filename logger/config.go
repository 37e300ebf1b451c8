package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config is the logging configuration read from the environment.
type Config struct {
	// JSON selects the JSON handler instead of the text one.
	JSON bool `env:"LOG_JSON" envDefault:"false"`
	// Level is the minimum level, in slog syntax (DEBUG, INFO, WARN+2...).
	Level slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	// LegacyLevel is the level given to output of the standard log package.
	LegacyLevel slog.Level `env:"LEGACY_LOG_LEVEL" envDefault:"INFO"`
	// Output is "stdout" or "stderr".
	Output string `env:"LOG_OUTPUT" envDefault:"stdout"`
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("logging config: %w", err)
	}

	return cfg, nil
}

// LoadConfigFrom reads Config from the given variables instead of the
// process environment.
func LoadConfigFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("logging config: %w", err)
	}

	return cfg, nil
}

// Options converts the configuration into Options for the given subsystem.
func (c Config) Options(app string) (Options, error) {
	out, err := c.writer()
	if err != nil {
		return Options{}, err
	}

	return Options{
		Subsystem:   app,
		JSON:        c.JSON,
		MinLevel:    c.Level,
		LegacyLevel: c.LegacyLevel,
		Output:      out,
	}, nil
}

func (c Config) writer() (io.Writer, error) {
	switch c.Output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogOutput, c.Output)
	}
}
