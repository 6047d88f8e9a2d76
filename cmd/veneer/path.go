package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathOpts struct {
	theme  string
	public bool
}

var pathCmd = &cobra.Command{
	Use:   "path [subpath]",
	Short: "Resolve a path inside a theme",
	Long: `Resolve a subpath against a theme's source directory, or against its
web-servable public mirror with --public.

Path resolution is pure: nothing is checked on disk. Without --theme
the current theme would be used, but the CLI activates no theme, so
--theme is effectively required here.

Examples:
  veneer path css/app.css --theme dark
  veneer path logo.png --theme dark --public`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)

	pathCmd.Flags().StringVar(&pathOpts.theme, "theme", "",
		"Theme identifier (defaults to the current theme)")
	pathCmd.Flags().BoolVar(&pathOpts.public, "public", false,
		"Resolve against the public root instead of the themes root")
}

func runPath(cmd *cobra.Command, args []string) error {
	sub := ""
	if len(args) == 1 {
		sub = args[0]
	}

	resolve := registry.Path
	if pathOpts.public {
		resolve = registry.PublicPath
	}

	p, ok := resolve(pathOpts.theme, sub)
	if !ok {
		return fmt.Errorf("no theme given and none is active")
	}
	fmt.Println(p)
	return nil
}
