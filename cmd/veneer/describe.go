package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <theme>",
	Short: "Print a theme's descriptor",
	Long: `Read and print a theme's theme.json descriptor as JSON.

A theme directory without a theme.json is reported as having no
descriptor; a descriptor that exists but fails to parse is an error.

Examples:
  veneer describe dark`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	d, err := registry.Describe(args[0])
	if err != nil {
		return err
	}
	if d == nil {
		fmt.Printf("theme %q has no descriptor\n", args[0])
		return nil
	}

	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
