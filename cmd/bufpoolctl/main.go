// Command bufpoolctl is an operator tool for exercising a disk-backed
// parallel buffer pool end to end — it is not part of the buffer
// pool's public contract, the way the teacher's own main.go is a
// concrete consumer of its buffer package rather than a piece of it.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.SetFlags(0)
		log.Fatalf("bufpoolctl: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bufpoolctl",
		Short: "Drive a disk-backed buffer pool for smoke testing and benchmarking",
	}
	root.AddCommand(newWarmCmd())
	root.AddCommand(newBenchCmd())
	return root
}
