package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/bamlkit/baml"
)

func newStatsCmd() *cobra.Command {
	var inputFormat string
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "stats <file|->",
		Short: "Summarize the element tree of a record dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readRecords(args[0], inputFormat)
			if err != nil {
				return fmt.Errorf("read records: %w", err)
			}
			root, err := baml.Build(records, baml.WithMaxDepth(maxDepth))
			if err != nil {
				return fmt.Errorf("build tree: %w", err)
			}

			s := baml.Summarize(root)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "elements\t%d\n", s.Elements)
			fmt.Fprintf(out, "records\t%d\n", s.Records)
			fmt.Fprintf(out, "max depth\t%d\n", s.MaxDepth)
			fmt.Fprintf(out, "unterminated\t%d\n", s.Unterminated)
			for _, row := range s.Histogram() {
				fmt.Fprintf(out, "type\t%s\t%d\n", row.Type, row.Count)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFormat, "input", "i", "", "input format (line, json); defaults to the file extension")
	cmd.Flags().IntVar(&maxDepth, "max-depth", baml.DefaultMaxDepth, "maximum element nesting depth (0 for no limit)")

	return cmd
}
