package internal

import (
	"fmt"
	"time"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"go.uber.org/zap"
)

const (
	defaultRunAddress      = "localhost:8080"
	defaultShutdownTimeout = 5 * time.Second
)

type Config struct {
	RunAddress      string
	Development     bool
	ShutdownTimeout time.Duration
}

// NewConfig reads flags from args, falling back to environment variables
// named after the long flag (run-address -> RUN_ADDRESS).
func NewConfig(args []string) (*Config, error) {
	fs := ff.NewFlagSet("receipt-processor")
	var (
		runAddress      = fs.String('a', "run-address", defaultRunAddress, "host to listen on")
		development     = fs.BoolLong("development", "human-readable debug logging")
		shutdownTimeout = fs.DurationLong("shutdown-timeout", defaultShutdownTimeout, "graceful shutdown timeout")
	)

	if err := ff.Parse(fs, args, ff.WithEnvVars()); err != nil {
		return nil, fmt.Errorf("%w\n\n%s", err, ffhelp.Flags(fs))
	}

	return &Config{
		RunAddress:      *runAddress,
		Development:     *development,
		ShutdownTimeout: *shutdownTimeout,
	}, nil
}

func NewLogger(c *Config) (*zap.SugaredLogger, error) {
	var (
		z   *zap.Logger
		err error
	)
	if c.Development {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return z.Sugar(), nil
}
