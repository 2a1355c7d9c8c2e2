package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/bamlkit/baml"
	"github.com/dhamidi/bamlkit/batch"
)

func newCheckCmd() *cobra.Command {
	var workers int
	var timeout time.Duration
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "check <file|dir>...",
		Short: "Build the trees of many record dumps and report which ones fail",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := batch.Collect(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no record dumps found")
			}

			results := batch.Check(context.Background(), paths, batch.Options{
				Workers:      workers,
				Timeout:      timeout,
				BuildOptions: []baml.Option{baml.WithMaxDepth(maxDepth)},
				Logger:       commonlog.GetLogger("bamltree.check"),
			})

			out := cmd.OutOrStdout()
			for _, r := range results {
				switch r.Status {
				case batch.StatusOK:
					fmt.Fprintf(out, "[OK] %s (%d elements, %d unterminated)\n", r.Path, r.Stats.Elements, r.Stats.Unterminated)
				default:
					fmt.Fprintf(out, "[%s] %s: %v\n", r.Status, r.Path, r.Err)
				}
			}

			if batch.Failed(results) {
				counts := batch.Summarize(results)
				return fmt.Errorf("%d of %d files did not build", len(results)-counts[batch.StatusOK], len(results))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "files processed in parallel (default: number of CPUs)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 10*time.Second, "timeout per file")
	cmd.Flags().IntVar(&maxDepth, "max-depth", baml.DefaultMaxDepth, "maximum element nesting depth (0 for no limit)")

	return cmd
}
