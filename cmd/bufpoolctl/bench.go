package main

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"bufpool/pkg/buffer"
	"bufpool/pkg/storage/disk"
	"bufpool/pkg/storage/page"
)

func newBenchCmd() *cobra.Command {
	var numInstances int
	var poolSize int
	var workers int
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "bench <db-file>",
		Short: "Drive concurrent fetch/mutate/unpin traffic against a pool and report throughput",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dm, err := disk.NewFileManager(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer dm.Close()

			pool, err := buffer.NewParallelPool(numInstances, poolSize, dm, nil)
			if err != nil {
				return err
			}

			pids := make([]page.PageID, 0, numInstances*poolSize)
			for i := 0; i < numInstances*poolSize; i++ {
				_, pid, err := pool.NewPage()
				if err != nil {
					break
				}
				pids = append(pids, pid)
				if err := pool.UnpinPage(pid, false); err != nil {
					return err
				}
			}
			if len(pids) == 0 {
				return fmt.Errorf("bench: pool produced no pages to work against")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), duration)
			defer cancel()

			var ops int64
			g, gctx := errgroup.WithContext(ctx)
			for w := 0; w < workers; w++ {
				w := w
				g.Go(func() error {
					for i := 0; ; i++ {
						select {
						case <-gctx.Done():
							return nil
						default:
						}

						pid := pids[(w+i)%len(pids)]
						fr, err := pool.FetchPage(pid)
						if err != nil {
							return err
						}
						fr.Data[0]++
						if err := pool.UnpinPage(pid, true); err != nil {
							return err
						}
						atomic.AddInt64(&ops, 1)
					}
				})
			}

			start := time.Now()
			if err := g.Wait(); err != nil {
				return err
			}
			elapsed := time.Since(start)

			fmt.Fprintf(cmd.OutOrStdout(), "%d ops in %s (%.0f ops/sec) across %d workers\n",
				ops, elapsed, float64(ops)/elapsed.Seconds(), workers)
			return nil
		},
	}

	cmd.Flags().IntVar(&numInstances, "instances", 4, "number of buffer pool instances")
	cmd.Flags().IntVar(&poolSize, "pool-size", 8, "frames per instance")
	cmd.Flags().IntVar(&workers, "workers", 8, "concurrent worker goroutines")
	cmd.Flags().DurationVar(&duration, "duration", 5*time.Second, "how long to run")
	return cmd
}
