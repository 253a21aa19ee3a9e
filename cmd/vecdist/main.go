// Package main provides the vecdist CLI: a capability report and a one-shot
// distance calculator for checking which kernels a machine runs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vecdist",
		Short:         "Runtime-dispatched vector distance kernels",
		Long:          `vecdist reports the SIMD capability of this machine and computes distances with the kernels it selects.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newCapsCmd())
	rootCmd.AddCommand(newTiersCmd())
	rootCmd.AddCommand(newComputeCmd())

	return rootCmd
}
