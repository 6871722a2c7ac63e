package cmd

import "github.com/spf13/cobra"

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the seating batch",
	RunE:  run,
}

func init() {
	rootCmd.AddCommand(runCmd)
}
