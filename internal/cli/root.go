// Package cli wires the simplefetch command-line interface: one
// subcommand per HTTP method, a suite runner, and a latency measurement
// command.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	simplefetch "github.com/derekvmcintire/simple-fetch-ts"
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:     "simplefetch",
	Short:   "A terminal client for the simplefetch request builder",
	Version: simplefetch.Version,
	Long: `Simplefetch issues HTTP requests through a fluent request builder,
printing typed response envelopes and structured errors. Suites of
requests with response checks can be run from a YAML file.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(postCmd)
	RootCmd.AddCommand(putCmd)
	RootCmd.AddCommand(patchCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(perfCmd)
}
