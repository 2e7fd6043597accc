package schema_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jsonops/schema"
)

func TestConfig(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args         []string
		wantErr      error
		wantStrings  bool
		wantRequired bool
	}{
		"defaults": {
			wantStrings: true,
		},
		"typed and required": {
			args:         []string{"--treat-all-as-strings=false", "--treat-all-as-required"},
			wantStrings:  false,
			wantRequired: true,
		},
		"draft-07": {
			args:        []string{"--dialect", "draft-07", "--indent", "0"},
			wantStrings: true,
		},
		"unknown dialect": {
			args:        []string{"--dialect", "openapi"},
			wantErr:     schema.ErrInvalidOption,
			wantStrings: true,
		},
		"negative indent": {
			args:        []string{"--indent", "-1"},
			wantErr:     schema.ErrInvalidOption,
			wantStrings: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := schema.NewConfig()
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			cfg.RegisterFlags(flags)
			require.NoError(t, flags.Parse(tc.args))

			assert.Equal(t, tc.wantStrings, cfg.TreatAllAsStrings)
			assert.Equal(t, tc.wantRequired, cfg.TreatAllAsRequired)

			gen, err := cfg.NewGenerator()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, gen)
		})
	}
}

func TestConfigRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := schema.NewConfig()
	cmd := &cobra.Command{Use: "schema"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))

	fn, ok := cmd.GetFlagCompletionFunc("dialect")
	require.True(t, ok)

	got, directive := fn(cmd, nil, "")
	assert.Equal(t, schema.Dialects(), got)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}
