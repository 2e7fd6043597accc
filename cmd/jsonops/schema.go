package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jsonops/schema"
)

func (*cli) newSchemaCmd() *cobra.Command {
	cfg := schema.NewConfig()

	cmd := &cobra.Command{
		Use:   "schema [file|-]",
		Short: "Infer a schema from a sample JSON document",
		Long: `Schema infers a schema from a sample document read from file, or from stdin
when no file or "-" is given. A document of the form {"sample": ...} is
unwrapped first; a string sample is parsed as JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := cfg.NewGenerator()
			if err != nil {
				return err
			}

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			node, err := gen.Generate(data)
			if err != nil {
				return err
			}

			out, err := schema.Render(node, cfg.Dialect, cfg.Indent)
			if err != nil {
				return err
			}

			return writeOutput(cmd, cfg.Output, out)
		},
	}

	cfg.RegisterFlags(cmd.Flags())

	err := cfg.RegisterCompletions(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	return cmd
}
