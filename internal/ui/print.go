package ui

import (
	"fmt"
	"io"
	"strings"

	"projects/showcase/internal/display"
)

// Print writes every category as plain text, cards in display order. It is
// the non-interactive rendering surface.
func Print(w io.Writer, models []display.Model) error {
	for i, model := range models {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := printModel(w, model); err != nil {
			return err
		}
	}
	return nil
}

func printModel(w io.Writer, model display.Model) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", model.Title)
	fmt.Fprintf(&b, "Filter: %s | Sort: %s\n",
		display.SelectedLabel(model.FilterOptions), display.SelectedLabel(model.SortOptions))
	b.WriteString(strings.Repeat("-", 60) + "\n")

	if len(model.Cards) == 0 {
		b.WriteString("  (no projects match this filter)\n")
	}

	for _, c := range model.Cards {
		fmt.Fprintf(&b, "#%-3d %-40s ★ %s\n", c.ID, c.Title, c.Rating)
		if c.Description != "" {
			fmt.Fprintf(&b, "     %s\n", c.Description)
		}
		if c.Author != "" {
			fmt.Fprintf(&b, "     by %s\n", c.Author)
		}
		fmt.Fprintf(&b, "     %s · %d views", c.Tag, c.Views)
		if c.Likes != nil {
			fmt.Fprintf(&b, " · ♥ %d", *c.Likes)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
