package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeOpts struct {
	dryRun bool
}

var removeCmd = &cobra.Command{
	Use:   "remove <theme>",
	Short: "Delete a theme and its published assets",
	Long: `Delete a theme's published assets and then its source directory.

A directory without a theme.json manifest is not treated as an
installed theme and nothing is deleted.

Examples:
  # Preview what would be deleted
  veneer remove dark --dry-run

  # Delete for real
  veneer remove dark`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().BoolVar(&removeOpts.dryRun, "dry-run", false,
		"Show what would be deleted without deleting")
}

func runRemove(cmd *cobra.Command, args []string) error {
	id := args[0]

	d, err := registry.Describe(id)
	if err != nil {
		return err
	}
	if d == nil {
		fmt.Printf("theme %q has no manifest, nothing to remove\n", id)
		return nil
	}

	pub, _ := registry.PublicPath(id, "")
	src, _ := registry.Path(id, "")

	if removeOpts.dryRun {
		fmt.Println("Would delete:")
		fmt.Printf("  %s\n", pub)
		fmt.Printf("  %s\n", src)
		return nil
	}

	if err := registry.Remove(id); err != nil {
		return fmt.Errorf("remove %q: %w", id, err)
	}
	fmt.Printf("Removed %q\n", id)
	return nil
}
