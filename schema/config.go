package schema

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Output dialects.
const (
	// DialectLegacy emits the {"schema": ...} document with property
	// descriptors.
	DialectLegacy = "legacy"
	// DialectDraft7 emits a standard Draft 7 JSON Schema.
	DialectDraft7 = "draft-07"
)

// Dialects returns every supported dialect name.
func Dialects() []string {
	return []string{DialectLegacy, DialectDraft7}
}

// Flags holds CLI flag names for schema inference configuration, allowing
// callers to customize flag names while keeping sensible defaults.
type Flags struct {
	Output             string
	Indent             string
	Dialect            string
	TreatAllAsStrings  string
	TreatAllAsRequired string
}

// Config holds CLI flag values for schema inference configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewGenerator] to create a [Generator].
type Config struct {
	Flags              Flags
	Output             string
	Dialect            string
	Indent             int
	TreatAllAsStrings  bool
	TreatAllAsRequired bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Output:             "output",
		Indent:             "indent",
		Dialect:            "dialect",
		TreatAllAsStrings:  "treat-all-as-strings",
		TreatAllAsRequired: "treat-all-as-required",
	}

	return &Config{Flags: f, TreatAllAsStrings: true, Dialect: DialectLegacy, Indent: 2}
}

// RegisterFlags adds schema inference flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
	flags.IntVar(&c.Indent, c.Flags.Indent, 2,
		"JSON indentation spaces (0 for compact output)")
	flags.StringVar(&c.Dialect, c.Flags.Dialect, DialectLegacy,
		fmt.Sprintf("output dialect, one of: %s", Dialects()))
	flags.BoolVar(&c.TreatAllAsStrings, c.Flags.TreatAllAsStrings, true,
		"type numbers and booleans as string")
	flags.BoolVar(&c.TreatAllAsRequired, c.Flags.TreatAllAsRequired, false,
		"list every object key as required")
}

// RegisterCompletions registers shell completions for schema inference flags
// on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Dialect,
		cobra.FixedCompletions(Dialects(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Dialect, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Indent,
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		})
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Indent, err)
	}

	return nil
}

// Validate reports an [ErrInvalidOption] for unknown dialects or a negative
// indent.
func (c *Config) Validate() error {
	if !slices.Contains(Dialects(), c.Dialect) {
		return fmt.Errorf("%w: unknown dialect %q", ErrInvalidOption, c.Dialect)
	}

	if c.Indent < 0 {
		return fmt.Errorf("%w: indent must not be negative", ErrInvalidOption)
	}

	return nil
}

// NewGenerator creates a [Generator] using this [Config].
func (c *Config) NewGenerator() (*Generator, error) {
	err := c.Validate()
	if err != nil {
		return nil, err
	}

	return NewGenerator(
		WithTreatAllAsStrings(c.TreatAllAsStrings),
		WithTreatAllAsRequired(c.TreatAllAsRequired),
	), nil
}
