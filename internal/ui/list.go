package ui

import (
	"fmt"
	"strings"

	"github.com/aferrand/shelf/internal/api"
	"github.com/aferrand/shelf/internal/view"
)

// visibleBooks returns the current projection of the collection through the
// active filter.
func (m Model) visibleBooks() []api.Book {
	return view.Apply(m.books, m.filter)
}

// selectedBook returns the record under the cursor, or nil when the
// projection is empty.
func (m Model) selectedBook() *api.Book {
	books := m.visibleBooks()
	if len(books) == 0 {
		return nil
	}
	idx := m.selected
	if idx >= len(books) {
		idx = len(books) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return &books[idx]
}

// clampSelection keeps the cursor inside the projection after the collection
// or filter changed underneath it.
func (m *Model) clampSelection() {
	count := len(m.visibleBooks())
	if count == 0 {
		m.selected = 0
		return
	}
	if m.selected >= count {
		m.selected = count - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// renderList renders the filtered collection with the selected row
// highlighted, followed by a detail line for the selection.
func (m Model) renderList() string {
	styles := m.theme.Styles()
	books := m.visibleBooks()

	if len(books) == 0 {
		if len(m.books) == 0 {
			return styles.MutedText.Render("  No books yet. Press 'a' to add one.")
		}
		return styles.MutedText.Render("  No books match the current filter.")
	}

	titleWidth := max(20, m.width/3)

	var b strings.Builder
	for i, book := range books {
		marker := "  "
		if book.IsFavorite {
			marker = styles.WarningText.Render("♥ ")
		}

		line := fmt.Sprintf("%-*s  %-20s  %s",
			titleWidth, truncate(book.Title, titleWidth),
			truncate(book.Author, 20),
			renderStars(book.Rating),
		)

		if i == m.selected {
			b.WriteString(marker + styles.Selected.Render(line))
		} else {
			b.WriteString(marker + styles.Text.Render(line))
		}
		b.WriteString("\n")
	}

	if selected := m.selectedBook(); selected != nil {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("  " + truncate(selected.CoverImage, m.width-4)))
		if selected.Description != "" {
			b.WriteString("\n")
			b.WriteString(styles.MutedText.Render("  " + truncate(selected.Description, m.width-4)))
		}
	}

	return b.String()
}
