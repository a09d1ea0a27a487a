package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kcmvp/oop/demo"
)

// rootCmd runs the whole walkthrough when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "oop",
	Short: "oop walks through object modelling in Go.",
	Long: `oop prints one example of every model in order: people, vehicles, a bank
account, shapes, the shared connection, pets from the factory and coloured vehicles.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return demo.Run(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(personCmd(), petCmd(), areaCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
