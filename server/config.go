package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrInvalidConfig indicates an unusable [Config].
var ErrInvalidConfig = errors.New("invalid server config")

// Defaults applied by [NewConfig] and [Config.RegisterFlags].
const (
	DefaultAddress           = ":8080"
	DefaultReadTimeout       = 15 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultWriteTimeout      = 15 * time.Second
	DefaultIdleTimeout       = 60 * time.Second
	DefaultShutdownTimeout   = 30 * time.Second
)

// Flags holds CLI flag names for server configuration.
type Flags struct {
	Address           string
	ReadTimeout       string
	ReadHeaderTimeout string
	WriteTimeout      string
	IdleTimeout       string
	ShutdownTimeout   string
	Pprof             string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:             f,
		Address:           DefaultAddress,
		ReadTimeout:       DefaultReadTimeout,
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
		WriteTimeout:      DefaultWriteTimeout,
		IdleTimeout:       DefaultIdleTimeout,
		ShutdownTimeout:   DefaultShutdownTimeout,
	}
}

// Config holds CLI flag values for the HTTP server.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewServer] to create a [Server].
type Config struct {
	Flags Flags

	Address string

	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration

	// ShutdownTimeout bounds how long in-flight requests may run once
	// shutdown begins.
	ShutdownTimeout time.Duration

	// Pprof mounts the runtime profiling handlers under /debug.
	Pprof bool
}

// NewConfig returns a new [Config] with default flag names and values.
func NewConfig() *Config {
	f := Flags{
		Address:           "address",
		ReadTimeout:       "read-timeout",
		ReadHeaderTimeout: "read-header-timeout",
		WriteTimeout:      "write-timeout",
		IdleTimeout:       "idle-timeout",
		ShutdownTimeout:   "shutdown-timeout",
		Pprof:             "pprof",
	}

	return f.NewConfig()
}

// RegisterFlags adds server flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Address, c.Flags.Address, DefaultAddress, "listen address")
	flags.DurationVar(&c.ReadTimeout, c.Flags.ReadTimeout, DefaultReadTimeout,
		"maximum duration for reading a request")
	flags.DurationVar(&c.ReadHeaderTimeout, c.Flags.ReadHeaderTimeout, DefaultReadHeaderTimeout,
		"maximum duration for reading request headers")
	flags.DurationVar(&c.WriteTimeout, c.Flags.WriteTimeout, DefaultWriteTimeout,
		"maximum duration for writing a response")
	flags.DurationVar(&c.IdleTimeout, c.Flags.IdleTimeout, DefaultIdleTimeout,
		"maximum keep-alive idle duration")
	flags.DurationVar(&c.ShutdownTimeout, c.Flags.ShutdownTimeout, DefaultShutdownTimeout,
		"grace period for in-flight requests on shutdown")
	flags.BoolVar(&c.Pprof, c.Flags.Pprof, false,
		"serve runtime profiling under /debug")
}

// RegisterCompletions registers shell completions for server flags on cmd.
// None of the flags take file paths.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, name := range []string{
		c.Flags.Address,
		c.Flags.ReadTimeout,
		c.Flags.ReadHeaderTimeout,
		c.Flags.WriteTimeout,
		c.Flags.IdleTimeout,
		c.Flags.ShutdownTimeout,
	} {
		err := cmd.RegisterFlagCompletionFunc(name, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", name, err)
		}
	}

	return nil
}

// Validate reports an [ErrInvalidConfig] for an empty address or a negative
// duration.
func (c *Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, c.Flags.Address)
	}

	for name, d := range map[string]time.Duration{
		c.Flags.ReadTimeout:       c.ReadTimeout,
		c.Flags.ReadHeaderTimeout: c.ReadHeaderTimeout,
		c.Flags.WriteTimeout:      c.WriteTimeout,
		c.Flags.IdleTimeout:       c.IdleTimeout,
		c.Flags.ShutdownTimeout:   c.ShutdownTimeout,
	} {
		if d < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %s", ErrInvalidConfig, name, d)
		}
	}

	return nil
}

// NewServer validates c and creates a [Server] for handler.
func (c *Config) NewServer(handler http.Handler, logger *slog.Logger) (*Server, error) {
	err := c.Validate()
	if err != nil {
		return nil, err
	}

	return New(*c, handler, logger)
}
