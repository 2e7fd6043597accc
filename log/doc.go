// Package log builds the [log/slog] handlers used by jsonops.
//
// Three formats are supported: [FormatJSON] and [FormatLogfmt] for log
// shipping, and [FormatText], a human-readable terminal format rendered by
// [charm.land/log/v2]. Structured formats include the source location of
// each record.
//
// Commands register --log-level and --log-format through [Config]:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	logger, err := cfg.NewLogger(os.Stderr)
package log
