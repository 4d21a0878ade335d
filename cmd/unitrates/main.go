// Command unitrates runs the unit rates shopping and racing scenes.
//
//	unitrates scenes                       list built-in scenes
//	unitrates run --scene apples           open the interactive window
//	unitrates script steps.yaml --scene apples
//	                                       run a script headlessly
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "unitrates",
		Short: "Unit rates on a double number line",
		Long: `unitrates explores unit rates with a double number line.

Drag bags of fruit onto a scale, answer cost and quantity questions, or
race cars, and watch markers appear on the number line.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default ./unitrates.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().String("scenes", "", "YAML scene file replacing the built-in scenes")

	rootCmd.AddCommand(
		newVersionCmd(),
		newScenesCmd(),
		newRunCmd(),
		newScriptCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "unitrates version %s\n", version)
		},
	}
}
