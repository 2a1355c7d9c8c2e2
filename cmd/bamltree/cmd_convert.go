package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/bamlkit/stream"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a record dump between the line and JSON formats",
		Long: "Convert a record dump between the line and JSON formats.\n" +
			"Formats are chosen by extension: .json is JSON, anything else is the line format.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := stream.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read records: %w", err)
			}
			if err := stream.WriteFile(args[1], records); err != nil {
				return fmt.Errorf("write records: %w", err)
			}
			return nil
		},
	}
}
