package log_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jsonops/log"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		want    log.Level
		wantErr bool
	}{
		"error":            {input: "error", want: log.LevelError},
		"warn":             {input: "warn", want: log.LevelWarn},
		"warning alias":    {input: "warning", want: log.LevelWarn},
		"info":             {input: "info", want: log.LevelInfo},
		"debug":            {input: "debug", want: log.LevelDebug},
		"case insensitive": {input: "DeBuG", want: log.LevelDebug},
		"unknown":          {input: "trace", wantErr: true},
		"empty":            {input: "", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.ParseLevel(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, log.ErrUnknownLogLevel)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		want    log.Format
		wantErr bool
	}{
		"json":             {input: "json", want: log.FormatJSON},
		"logfmt":           {input: "logfmt", want: log.FormatLogfmt},
		"text":             {input: "text", want: log.FormatText},
		"case insensitive": {input: "LOGFMT", want: log.FormatLogfmt},
		"unknown":          {input: "xml", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.ParseFormat(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, log.ErrUnknownLogFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		check  func(t *testing.T, out string)
		format log.Format
	}{
		"json": {
			format: log.FormatJSON,
			check: func(t *testing.T, out string) {
				t.Helper()

				var rec struct {
					Source *struct {
						File string `json:"file"`
					} `json:"source"`
					Msg       string `json:"msg"`
					Level     string `json:"level"`
					Operation string `json:"operation"`
				}

				require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &rec))
				assert.Equal(t, "merged", rec.Msg)
				assert.Equal(t, "INFO", rec.Level)
				assert.Equal(t, "merge", rec.Operation)
				require.NotNil(t, rec.Source)
				assert.NotEmpty(t, rec.Source.File)
			},
		},
		"logfmt": {
			format: log.FormatLogfmt,
			check: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, "level=INFO")
				assert.Contains(t, out, "msg=merged")
				assert.Contains(t, out, "operation=merge")
				assert.Contains(t, out, "source=")
			},
		},
		"text": {
			format: log.FormatText,
			check: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, "INFO")
				assert.Contains(t, out, "merged")
				assert.Contains(t, out, "operation=merge")
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := slog.New(log.NewHandler(&buf, log.LevelInfo, tc.format))
			logger.Debug("hidden")
			logger.Info("merged", slog.String("operation", "merge"))

			assert.NotContains(t, buf.String(), "hidden")
			tc.check(t, buf.String())
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	tcs := map[log.Level][]string{
		log.LevelError: {"e"},
		log.LevelWarn:  {"w", "e"},
		log.LevelInfo:  {"i", "w", "e"},
		log.LevelDebug: {"d", "i", "w", "e"},
	}

	for lvl, want := range tcs {
		t.Run(string(lvl), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := slog.New(log.NewHandler(&buf, lvl, log.FormatJSON))
			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")
			logger.Error("e")

			var got []string

			for line := range strings.Lines(buf.String()) {
				var rec struct {
					Msg string `json:"msg"`
				}

				require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(line)), &rec))

				got = append(got, rec.Msg)
			}

			assert.ElementsMatch(t, want, got)
		})
	}
}

func TestNewHandlerFromStrings(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level   string
		format  string
		wantErr error
	}{
		"valid":          {level: "warn", format: "json"},
		"unknown level":  {level: "loud", format: "json", wantErr: log.ErrUnknownLogLevel},
		"unknown format": {level: "info", format: "yaml", wantErr: log.ErrUnknownLogFormat},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			h, err := log.NewHandlerFromStrings(&buf, tc.level, tc.format)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, log.ErrInvalidArgument)
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, h)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, h)
		})
	}
}

func TestConfigRegisterCompletions(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		flag string
		want []string
	}{
		"level":  {flag: "log-level", want: log.GetAllLevelStrings()},
		"format": {flag: "log-format", want: log.GetAllFormatStrings()},
	}

	cfg := log.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fn, ok := cmd.GetFlagCompletionFunc(tc.flag)
			require.True(t, ok)

			values, directive := fn(cmd, nil, "")
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
			assert.Equal(t, tc.want, values)
		})
	}
}

func TestConfigNewLogger(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args    []string
		want    string
		wantErr bool
	}{
		"defaults": {
			want: "hello",
		},
		"json debug": {
			args: []string{"--log-format=json", "--log-level=debug"},
			want: `"msg":"hello"`,
		},
		"logfmt": {
			args: []string{"--log-format=logfmt"},
			want: "msg=hello",
		},
		"unknown level": {
			args:    []string{"--log-level=loud"},
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := log.NewConfig()
			cmd := &cobra.Command{Use: "test"}
			cfg.RegisterFlags(cmd.Flags())
			require.NoError(t, cmd.Flags().Parse(tc.args))

			var buf bytes.Buffer

			logger, err := cfg.NewLogger(&buf)
			if tc.wantErr {
				require.ErrorIs(t, err, log.ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			logger.Info("hello")
			assert.Contains(t, buf.String(), tc.want)
		})
	}
}
