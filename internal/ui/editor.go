package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aferrand/shelf/internal/api"
	"github.com/aferrand/shelf/internal/command"
)

// Editor field indexes.
const (
	fieldTitle = iota
	fieldAuthor
	fieldCover
	fieldDescription
	fieldRating
	fieldCount
)

var editorLabels = [fieldCount]string{"Title", "Author", "Cover URL", "Description", "Rating (0-5)"}

// editorModal is the create/edit form. It stages a mutable draft of the book
// fields between open and save/cancel; the draft is discarded on either
// outcome. The favorite flag is deliberately absent — only the dedicated
// toggle operation changes it.
type editorModal struct {
	id       int64 // 0 when creating
	creating bool
	inputs   [fieldCount]textinput.Model
	focus    int
}

// newEditor opens the form. A nil book starts a create; otherwise the form
// stages the record's current fields for editing.
func newEditor(book *api.Book) *editorModal {
	e := &editorModal{creating: book == nil}

	for i := range e.inputs {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = 256
		e.inputs[i] = input
	}
	e.inputs[fieldTitle].Placeholder = "required"
	e.inputs[fieldAuthor].Placeholder = "required"
	e.inputs[fieldCover].Placeholder = "blank for placeholder"
	e.inputs[fieldRating].CharLimit = 2

	if book != nil {
		e.id = book.ID
		e.inputs[fieldTitle].SetValue(book.Title)
		e.inputs[fieldAuthor].SetValue(book.Author)
		e.inputs[fieldCover].SetValue(book.CoverImage)
		e.inputs[fieldDescription].SetValue(book.Description)
		e.inputs[fieldRating].SetValue(strconv.Itoa(book.Rating))
	}

	e.inputs[fieldTitle].Focus()
	return e
}

// draft collects the staged field values. Rating text that fails to parse
// becomes zero; range clamping is the command layer's job.
func (e *editorModal) draft() command.Draft {
	rating, _ := strconv.Atoi(strings.TrimSpace(e.inputs[fieldRating].Value()))
	return command.Draft{
		Title:       e.inputs[fieldTitle].Value(),
		Author:      e.inputs[fieldAuthor].Value(),
		CoverImage:  e.inputs[fieldCover].Value(),
		Description: e.inputs[fieldDescription].Value(),
		Rating:      rating,
	}
}

// Update handles a key while the editor is open. It reports whether the user
// submitted or cancelled; the caller owns closing the modal.
func (e *editorModal) Update(msg tea.KeyMsg) (cmd tea.Cmd, submitted, cancelled bool) {
	switch msg.String() {
	case "esc":
		return nil, false, true
	case "enter":
		return nil, true, false
	case "tab", "down":
		e.setFocus((e.focus + 1) % fieldCount)
		return nil, false, false
	case "shift+tab", "up":
		e.setFocus((e.focus + fieldCount - 1) % fieldCount)
		return nil, false, false
	}

	var teaCmd tea.Cmd
	e.inputs[e.focus], teaCmd = e.inputs[e.focus].Update(msg)
	return teaCmd, false, false
}

func (e *editorModal) setFocus(idx int) {
	e.inputs[e.focus].Blur()
	e.focus = idx
	e.inputs[e.focus].Focus()
}

// View renders the form centered in the given area.
func (e *editorModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	title := "Add Book"
	if !e.creating {
		title = "Edit Book"
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n\n")

	for i := range e.inputs {
		label := editorLabels[i]
		if i == e.focus {
			b.WriteString(styles.AccentText.Render("▸ " + label))
		} else {
			b.WriteString(styles.MutedText.Render("  " + label))
		}
		b.WriteString("\n  ")
		b.WriteString(e.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("enter save · esc cancel · tab next field"))

	box := styles.ModalBorder.Width(min(60, max(20, width-4))).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
