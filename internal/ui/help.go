package ui

import (
	"fmt"
	"strings"
)

type helpItem struct {
	key  string
	desc string
}

type helpSection struct {
	title string
	items []helpItem
}

// renderHelp renders the help overlay. Any key closes it.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Collection",
			items: []helpItem{
				{"a", "Add book"},
				{"e", "Edit selected book"},
				{"space", "Toggle favorite"},
				{"x/d", "Delete (with confirmation)"},
				{"r", "Reload from server"},
			},
		},
		{
			title: "Filtering",
			items: []helpItem{
				{"/", "Search titles"},
				{"f", "Favorites only"},
				{"esc", "Clear search"},
			},
		},
		{
			title: "Navigation",
			items: []helpItem{
				{"j/k", "Move up/down"},
				{"g/G", "Go to top/bottom"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"h/?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				styles.WarningText.Render(fmt.Sprintf("%-9s", item.key)),
				styles.MutedText.Render(item.desc),
			))
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))

	return b.String()
}
