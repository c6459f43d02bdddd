package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:           "cparse",
	Short:         "A CLR(1) parser front end for K&R C",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(testCmd)
}

// Execute runs the CLI's root command.
func Execute() error {
	return rootCmd.Execute()
}
