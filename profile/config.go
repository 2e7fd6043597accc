package profile

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiling configuration.
type Flags struct {
	CPUProfile       string
	HeapProfile      string
	GoroutineProfile string
	BlockProfile     string
	MutexProfile     string

	BlockProfileRate     string
	MutexProfileFraction string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:                f,
		BlockProfileRate:     1,
		MutexProfileFraction: 1,
	}
}

// Config holds output paths and sampling rates. An empty path disables the
// profile.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.Start] to begin a [Session].
type Config struct {
	Flags Flags

	CPUProfile       string
	HeapProfile      string
	GoroutineProfile string
	BlockProfile     string
	MutexProfile     string

	// BlockProfileRate is in nanoseconds of blocking per sample.
	BlockProfileRate int
	// MutexProfileFraction samples 1/N contention events.
	MutexProfileFraction int
}

// NewConfig returns a new [Config] with default flag names and every
// profile disabled.
func NewConfig() *Config {
	f := Flags{
		CPUProfile:           "cpu-profile",
		HeapProfile:          "heap-profile",
		GoroutineProfile:     "goroutine-profile",
		BlockProfile:         "block-profile",
		MutexProfile:         "mutex-profile",
		BlockProfileRate:     "block-profile-rate",
		MutexProfileFraction: "mutex-profile-fraction",
	}

	return f.NewConfig()
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPUProfile, c.Flags.CPUProfile, "", "write a CPU profile to file")
	flags.StringVar(&c.HeapProfile, c.Flags.HeapProfile, "", "write a heap profile to file")
	flags.StringVar(&c.GoroutineProfile, c.Flags.GoroutineProfile, "", "write a goroutine profile to file")
	flags.StringVar(&c.BlockProfile, c.Flags.BlockProfile, "", "write a block profile to file")
	flags.StringVar(&c.MutexProfile, c.Flags.MutexProfile, "", "write a mutex profile to file")

	flags.IntVar(&c.BlockProfileRate, c.Flags.BlockProfileRate, 1,
		"block profile rate in nanoseconds, used with --"+c.Flags.BlockProfile)
	flags.IntVar(&c.MutexProfileFraction, c.Flags.MutexProfileFraction, 1,
		"mutex profile fraction (1/N sampling), used with --"+c.Flags.MutexProfile)
}

// RegisterCompletions registers shell completions for profiling flags on
// cmd. Path flags complete profile files; rate flags complete nothing.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, name := range []string{c.Flags.BlockProfileRate, c.Flags.MutexProfileFraction} {
		err := cmd.RegisterFlagCompletionFunc(name, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", name, err)
		}
	}

	profileFiles := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"prof", "pprof"}, cobra.ShellCompDirectiveFilterFileExt
	}

	for _, name := range []string{
		c.Flags.CPUProfile,
		c.Flags.HeapProfile,
		c.Flags.GoroutineProfile,
		c.Flags.BlockProfile,
		c.Flags.MutexProfile,
	} {
		err := cmd.RegisterFlagCompletionFunc(name, profileFiles)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", name, err)
		}
	}

	return nil
}

// Enabled reports whether any profile is requested.
func (c *Config) Enabled() bool {
	return c.CPUProfile != "" ||
		c.HeapProfile != "" ||
		c.GoroutineProfile != "" ||
		c.BlockProfile != "" ||
		c.MutexProfile != ""
}
