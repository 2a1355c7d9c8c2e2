package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/bamlkit/baml"
	"github.com/dhamidi/bamlkit/format"
)

func newTreeCmd() *cobra.Command {
	var outputFormat string
	var inputFormat string
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "tree <file|->",
		Short: "Build the element tree of a record dump and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("bamltree.tree")

			records, err := readRecords(args[0], inputFormat)
			if err != nil {
				return fmt.Errorf("read records: %w", err)
			}
			log.Debugf("read %d records from %s", len(records), args[0])

			root, err := baml.Build(records, baml.WithMaxDepth(maxDepth))
			if err != nil {
				return fmt.Errorf("build tree: %w", err)
			}

			enc, err := format.New(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := enc.Encode(root); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json, dot)")
	cmd.Flags().StringVarP(&inputFormat, "input", "i", "", "input format (line, json); defaults to the file extension")
	cmd.Flags().IntVar(&maxDepth, "max-depth", baml.DefaultMaxDepth, "maximum element nesting depth (0 for no limit)")

	return cmd
}
