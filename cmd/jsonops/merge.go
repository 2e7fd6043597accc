package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jsonops/jsonvalue"
	"go.jacobcolvin.com/jsonops/transform"
)

// ErrStdinReused indicates both merge inputs were asked to read stdin.
var ErrStdinReused = errors.New("--template and --data cannot both read stdin")

func (c *cli) newMergeCmd() *cobra.Command {
	var templatePath, dataPath string

	cmd := &cobra.Command{
		Use:   "merge --template <file> --data <file>",
		Short: "Merge a template with data",
		Long: `Merge combines a template with a JSON data document.

A template that is not JSON is rendered as text, replacing {{path}}
placeholders with values from the data. A JSON object template whose string
values mostly name keys of the data has those values substituted; any other
object template is deep-merged with the data.

Either file, but not both, may be "-" to read stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if templatePath == "-" && dataPath == "-" {
				return ErrStdinReused
			}

			tmpl, err := readInput(cmd, []string{templatePath})
			if err != nil {
				return err
			}

			data, err := readInput(cmd, []string{dataPath})
			if err != nil {
				return err
			}

			res, err := transform.Merge(jsonvalue.String(string(tmpl)), jsonvalue.String(string(data)))
			if err != nil {
				return err
			}

			c.logger.DebugContext(cmd.Context(), "merged", slog.String("mode", res.Mode.String()))

			out, err := res.Text()
			if err != nil {
				return err
			}

			return writeOutput(cmd, "-", []byte(out))
		},
	}

	cmd.Flags().StringVar(&templatePath, "template", "", "template file")
	cmd.Flags().StringVar(&dataPath, "data", "", "JSON data file")

	for _, name := range []string{"template", "data"} {
		err := cmd.MarkFlagRequired(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mark %s required: %v\n", name, err)
		}
	}

	return cmd
}
