package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jsonops/log"
	"go.jacobcolvin.com/jsonops/profile"
)

var (
	// ErrReadInput indicates an input file or stdin could not be read.
	ErrReadInput = errors.New("read input")
	// ErrWriteOutput indicates the result could not be written.
	ErrWriteOutput = errors.New("write output")
)

// cli holds state shared by every subcommand for one invocation.
type cli struct {
	root    *cobra.Command
	logCfg  *log.Config
	profCfg *profile.Config
	session *profile.Session
	logger  *slog.Logger
}

func newCLI() *cli {
	c := &cli{
		logCfg:  log.NewConfig(),
		profCfg: profile.NewConfig(),
		logger:  slog.New(slog.DiscardHandler),
	}

	c.root = &cobra.Command{
		Use:   "jsonops",
		Short: "Stateless JSON transformations over HTTP and the command line",
		Long: `jsonops transforms JSON documents: it adds properties, joins and merges
objects, renders templates, infers schemas, and converts JSON to XML.

Run "jsonops serve" to expose the operations as an HTTP API, or use the other
subcommands to apply them to local files.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	c.logCfg.RegisterFlags(c.root.PersistentFlags())
	c.profCfg.RegisterFlags(c.root.PersistentFlags())

	c.root.AddCommand(
		c.newServeCmd(),
		c.newSchemaCmd(),
		c.newToXMLCmd(),
		c.newMergeCmd(),
		c.newVersionCmd(),
	)

	for _, register := range []func(*cobra.Command) error{
		c.logCfg.RegisterCompletions,
		c.profCfg.RegisterCompletions,
	} {
		err := register(c.root)
		if err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	return c
}

// execute runs the command line args and stops any profiling session,
// whether or not the command failed.
func (c *cli) execute(ctx context.Context, args []string) error {
	c.root.SetArgs(args)

	err := c.root.ExecuteContext(ctx)

	return errors.Join(err, c.session.Stop())
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	logger, err := c.logCfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	c.logger = logger

	if !c.profCfg.Enabled() {
		return nil
	}

	c.session, err = c.profCfg.Start()
	if err != nil {
		return fmt.Errorf("start profiling: %w", err)
	}

	return nil
}

// readInput reads the file named by the first argument, or stdin when
// there is none or it is "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}

		return data, nil
	}

	return readFile(args[0])
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Input path from CLI argument is expected.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return data, nil
}

// writeOutput writes out followed by a newline to path, or to the command's
// stdout when path is empty or "-".
func writeOutput(cmd *cobra.Command, path string, out []byte) error {
	out = append(out, '\n')

	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(out)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		return nil
	}

	err := os.WriteFile(path, out, 0o644) //nolint:gosec // Output is not sensitive.
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}
