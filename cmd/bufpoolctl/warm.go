package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bufpool/pkg/buffer"
	"bufpool/pkg/storage/disk"
	"bufpool/pkg/storage/page"
)

func newWarmCmd() *cobra.Command {
	var numInstances int
	var poolSize int

	cmd := &cobra.Command{
		Use:   "warm <db-file>",
		Short: "Allocate pages until a parallel pool reports exhaustion, per shard",
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

			// Pages stay pinned until the loop ends: an unpinned page
			// would be evicted for the next one and exhaustion never reached.
			counts := make([]int, numInstances)
			var pids []page.PageID
			for {
				_, pid, err := pool.NewPage()
				if err != nil {
					break
				}
				counts[int(pid)%numInstances]++
				pids = append(pids, pid)
			}
			for _, pid := range pids {
				if err := pool.UnpinPage(pid, false); err != nil {
					return err
				}
			}

			total := 0
			for i, c := range counts {
				fmt.Fprintf(cmd.OutOrStdout(), "instance %d: %d pages\n", i, c)
				total += c
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total: %d pages across %d instances\n", total, numInstances)
			return nil
		},
	}

	cmd.Flags().IntVar(&numInstances, "instances", 4, "number of buffer pool instances")
	cmd.Flags().IntVar(&poolSize, "pool-size", 8, "frames per instance")
	return cmd
}
