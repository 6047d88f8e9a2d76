package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var listOpts struct {
	long bool
}

var (
	listHeaderStyle    = lipgloss.NewStyle().Bold(true)
	listPublishedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	listMutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed themes",
	Long: `List the themes installed under the themes root.

Each immediate subdirectory of the themes root is one theme. With
--long, the descriptor fields from theme.json are shown alongside
publish state and last modification time.

Examples:
  # Theme identifiers only
  veneer list

  # Descriptor details, publish state and modification time
  veneer list --long`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVarP(&listOpts.long, "long", "l", false,
		"Show descriptor fields and publish state")
}

func runList(cmd *cobra.Command, args []string) error {
	if !listOpts.long {
		ids, err := registry.List()
		if err != nil {
			return fmt.Errorf("list themes: %w", err)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	}

	all, err := registry.DescribeAll()
	if err != nil {
		return fmt.Errorf("describe themes: %w", err)
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println(listHeaderStyle.Render(fmt.Sprintf("%-16s %-20s %-10s %-10s %s",
		"ID", "NAME", "VERSION", "PUBLISHED", "MODIFIED")))

	for _, id := range ids {
		d := all[id]
		name := listMutedStyle.Render("(no manifest)")
		ver := "-"
		if d != nil {
			if n := d.Name(); n != "" {
				name = n
			} else {
				name = "-"
			}
			if v := d.Version(); v != "" {
				ver = v
			}
		}

		published := listMutedStyle.Render("no")
		if pub, ok := registry.PublicPath(id, ""); ok {
			if _, err := os.Lstat(pub); err == nil {
				published = listPublishedStyle.Render("yes")
			}
		}

		modified := "-"
		if p, ok := registry.Path(id, ""); ok {
			if info, err := os.Stat(p); err == nil {
				modified = humanize.Time(info.ModTime())
			}
		}

		fmt.Printf("%-16s %-20s %-10s %-10s %s\n", id, name, ver, published, modified)
	}
	return nil
}
