package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jsonops/jsonvalue"
	"go.jacobcolvin.com/jsonops/toxml"
)

func (*cli) newToXMLCmd() *cobra.Command {
	var encode bool

	cmd := &cobra.Command{
		Use:   "to-xml [file|-]",
		Short: "Convert a JSON document to XML",
		Long: `To-xml converts a JSON document read from file, or from stdin when no file
or "-" is given, to XML. A top-level object has no root element; any other
value is wrapped in <root>.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			v, err := jsonvalue.Parse(data)
			if err != nil {
				return fmt.Errorf("parse input: %w", err)
			}

			return writeOutput(cmd, "-", []byte(toxml.Convert(v, encode)))
		},
	}

	cmd.Flags().BoolVar(&encode, "encode", false, "percent-encode the XML")

	return cmd
}
