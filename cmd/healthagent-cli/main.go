package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	pretty bool
)

var rootCmd = &cobra.Command{
	Use:   "healthagent-cli",
	Short: "Offline tools for intake forms, analysis payloads and chat replies",
	Long: `healthagent-cli runs the service's pure building blocks against local files:
intake validation, analysis response normalization and chat reply parsing.
Every command reads a file argument, or stdin when the argument is "-" or missing.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&pretty, "pretty", "p", false, "Indent JSON output")

	validateCmd.Flags().StringVar(&today, "today", "", "Reference date (YYYY-MM-DD), defaults to today")
	normalizeCmd.Flags().StringVar(&fieldMapFile, "field-map", "", "YAML file overriding the default field paths")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(parseReplyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
