package main

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jsonops/version"
)

func (*cli) newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()

			if !asJSON {
				return writeOutput(cmd, "-", []byte(info.String()))
			}

			out, err := json.Marshal(info, jsontext.WithIndent("  "))
			if err != nil {
				return fmt.Errorf("encode version: %w", err)
			}

			return writeOutput(cmd, "-", out)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
