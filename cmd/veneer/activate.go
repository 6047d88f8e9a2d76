package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var activateCmd = &cobra.Command{
	Use:   "activate <theme>",
	Short: "Activate a theme and publish its assets",
	Long: `Run the activation sequence for a theme: register its template
directory ahead of the application defaults, merge its config.json
into the "theme." configuration namespace, and link its assets into
the public root.

Activation inside a web application happens once at bootstrap; running
this command performs the same sequence from the shell, which is useful
to publish the asset link and validate a theme's config before
deploying.

Examples:
  veneer activate dark
  veneer activate dark --public-root /srv/app/public/themes`,
	Args: cobra.ExactArgs(1),
	RunE: runActivate,
}

func init() {
	rootCmd.AddCommand(activateCmd)
}

func runActivate(cmd *cobra.Command, args []string) error {
	id := args[0]
	if err := registry.Activate(id); err != nil {
		return err
	}

	fmt.Printf("Activated %q\n", id)

	merged := confStore.Sub("theme")
	if len(merged) == 0 {
		fmt.Println("No configuration entries merged")
	} else {
		fmt.Printf("Merged %d configuration entr%s:\n", len(merged), plural(len(merged), "y", "ies"))
		keys := make([]string, 0, len(merged))
		for k := range merged {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  theme.%s = %v\n", k, merged[k])
		}
	}

	if pub, ok := registry.PublicPath(id, ""); ok {
		fmt.Printf("Public assets path: %s\n", pub)
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
