package ui

import (
	"fmt"
	"strings"

	"github.com/aferrand/shelf/internal/view"
)

// renderHeader renders the top bar: logo, aggregate counts over the full
// collection (independent of the active filter), filter indicators, and the
// in-flight spinner.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	counts := view.Tally(m.books)

	parts := []string{
		styles.Logo.Render("shelf"),
		styles.MutedText.Render(fmt.Sprintf("%d books · %d favorites", counts.Total, counts.Favorites)),
	}

	if m.filter.FavoritesOnly {
		parts = append(parts, styles.WarningText.Render("[favorites]"))
	}
	if query := strings.TrimSpace(m.filter.Query); query != "" {
		parts = append(parts, styles.AccentText.Render(fmt.Sprintf("[/%s]", query)))
	}
	if m.inflight > 0 {
		parts = append(parts, styles.InfoText.Render(m.spinner.View()+" saving"))
	}

	return styles.Header.Width(max(m.width, 0)).Render(strings.Join(parts, "  "))
}

// renderFooter renders the notice when present, otherwise the key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	if m.notice.visible() {
		return styles.Footer.Width(max(m.width, 0)).Render(m.renderNotice())
	}

	hints := "a add · e edit · space favorite · x delete · / search · f favorites · r reload · ? help · q quit"
	return styles.Footer.Width(max(m.width, 0)).Render(styles.FaintText.Render(hints))
}
