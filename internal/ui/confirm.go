package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmModal holds the pending-delete target. Nothing is sent to the
// server until the user affirms; cancelling leaves the collection untouched.
type confirmModal struct {
	id    int64
	title string
}

// Update handles a key while the confirmation is open. affirmed means the
// delete should be dispatched; dismissed means the dialog closes with no
// action taken.
func (c *confirmModal) Update(msg tea.KeyMsg) (affirmed, dismissed bool) {
	switch msg.String() {
	case "y", "enter":
		return true, false
	case "n", "esc":
		return false, true
	}
	return false, false
}

// View renders the confirmation centered in the given area.
func (c *confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Delete Book"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(fmt.Sprintf("Delete %q from the collection?", c.title)))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("y/enter delete · n/esc cancel"))

	box := styles.ModalBorder.
		BorderForeground(lipgloss.Color(theme.Danger)).
		Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
