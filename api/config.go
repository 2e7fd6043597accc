package api

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrInvalidConfig indicates an unusable [Config].
var ErrInvalidConfig = errors.New("invalid api config")

// DefaultMaxBodyBytes is the default request body limit.
const DefaultMaxBodyBytes int64 = 1 << 20

// Flags holds CLI flag names for API configuration.
type Flags struct {
	APIKey             string
	MaxBodyBytes       string
	TreatAllAsStrings  string
	TreatAllAsRequired string
	PrettySchema       string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:             f,
		MaxBodyBytes:      DefaultMaxBodyBytes,
		TreatAllAsStrings: true,
		PrettySchema:      true,
	}
}

// Config holds CLI flag values for the HTTP API.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewHandler] to build the handler.
type Config struct {
	Flags Flags

	// APIKey, when set, is required by every operation.
	APIKey string

	MaxBodyBytes int64

	// Schema inference defaults. Requests wrapped as {"sample": ...} may
	// override both.
	TreatAllAsStrings  bool
	TreatAllAsRequired bool

	// PrettySchema indents generated schemas by two spaces.
	PrettySchema bool
}

// NewConfig returns a new [Config] with default flag names and values.
func NewConfig() *Config {
	f := Flags{
		APIKey:             "api-key",
		MaxBodyBytes:       "max-body-bytes",
		TreatAllAsStrings:  "treat-all-as-strings",
		TreatAllAsRequired: "treat-all-as-required",
		PrettySchema:       "pretty-schema",
	}

	return f.NewConfig()
}

// RegisterFlags adds API flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.APIKey, c.Flags.APIKey, "",
		"shared key required by API operations (empty disables the check)")
	flags.Int64Var(&c.MaxBodyBytes, c.Flags.MaxBodyBytes, DefaultMaxBodyBytes,
		"maximum request body size in bytes")
	flags.BoolVar(&c.TreatAllAsStrings, c.Flags.TreatAllAsStrings, true,
		"type numbers and booleans as string in generated schemas")
	flags.BoolVar(&c.TreatAllAsRequired, c.Flags.TreatAllAsRequired, false,
		"list every object key as required in generated schemas")
	flags.BoolVar(&c.PrettySchema, c.Flags.PrettySchema, true,
		"indent generated schemas")
}

// RegisterCompletions registers shell completions for API flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, name := range []string{c.Flags.APIKey, c.Flags.MaxBodyBytes} {
		err := cmd.RegisterFlagCompletionFunc(name, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", name, err)
		}
	}

	return nil
}

// Validate reports an [ErrInvalidConfig] for a non-positive body limit.
func (c *Config) Validate() error {
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, c.Flags.MaxBodyBytes, c.MaxBodyBytes)
	}

	return nil
}

// NewHandler validates c and builds the API [Handler].
func (c *Config) NewHandler(logger *slog.Logger) (*Handler, error) {
	err := c.Validate()
	if err != nil {
		return nil, err
	}

	return NewHandler(*c, logger)
}
