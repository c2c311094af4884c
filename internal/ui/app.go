// Package ui provides the Bubble Tea terminal interface for shelf.
package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aferrand/shelf/internal/api"
	"github.com/aferrand/shelf/internal/command"
	"github.com/aferrand/shelf/internal/prefs"
	"github.com/aferrand/shelf/internal/store"
	"github.com/aferrand/shelf/internal/view"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Commander  *command.Commander
	Store      *store.Store
	ThemeName  string
	PrefsPath  string
	StartupErr error // non-nil when the initial collection load failed
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	commander *command.Commander
	store     *store.Store
	prefsPath string

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	// Data state: snapshot of the store plus the filter projection inputs.
	books    []api.Book
	filter   view.Filter
	selected int

	// Search input
	searching   bool
	searchInput textinput.Model

	// Transient UI slots
	editor         *editorModal
	editorPending  bool
	confirm        *confirmModal
	confirmPending bool
	notice         notice
	noticeSeq      int

	// In-flight operations
	inflight int
	spinner  spinner.Model

	// Help overlay
	showHelp bool

	startupErr error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "title"
	search.CharLimit = 128

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		ctx:         ctx,
		commander:   opts.Commander,
		store:       opts.Store,
		prefsPath:   prefsPath,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		searchInput: search,
		spinner:     spin,
		startupErr:  opts.StartupErr,
	}
	if opts.Store != nil {
		m.books = opts.Store.Books()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if m.startupErr != nil {
		// The collection starts empty; the app stays interactive.
		err := m.startupErr
		cmds = append(cmds, func() tea.Msg {
			return actionResultMsg{command.Outcome{Notice: err.Error(), Kind: command.NoticeError, Err: err}}
		})
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if m.inflight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case noticeExpiredMsg:
		m.handleNoticeExpired(msg)
		return m, nil

	case editorResultMsg:
		cmd := m.applyOutcome(msg.outcome)
		m.editorPending = false
		if msg.outcome.Err == nil {
			// Confirmed save closes the editor; failures keep it open so
			// the user can retry.
			m.editor = nil
		}
		return m, cmd

	case deleteResultMsg:
		cmd := m.applyOutcome(msg.outcome)
		// The confirmation dialog always closes after the attempt, whether
		// it succeeded or failed.
		m.confirm = nil
		m.confirmPending = false
		return m, cmd

	case actionResultMsg:
		return m, m.applyOutcome(msg.outcome)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}
	if m.editor != nil {
		return m.editor.View(m.theme, m.width, m.height)
	}
	if m.confirm != nil {
		return m.confirm.View(m.theme, m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if m.searching {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderList())
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay: any key closes it.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.editor != nil {
		return m.handleEditorKey(msg)
	}
	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue(m.filter.Query)
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.FavoritesOnly):
		m.filter.FavoritesOnly = !m.filter.FavoritesOnly
		m.clampSelection()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.filter.Query != "" {
			m.filter.Query = ""
			m.clampSelection()
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.editor = newEditor(nil)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if book := m.selectedBook(); book != nil {
			m.editor = newEditor(book)
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if book := m.selectedBook(); book != nil {
			m.confirm = &confirmModal{id: book.ID, title: book.Title}
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleFavorite):
		if book := m.selectedBook(); book != nil {
			id := book.ID
			return m, m.dispatch(func() tea.Msg {
				return actionResultMsg{m.commander.ToggleFavorite(m.ctx, id)}
			})
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.dispatch(func() tea.Msg {
			return actionResultMsg{m.commander.Reload(m.ctx)}
		})

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.visibleBooks())-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.selected = max(0, len(m.visibleBooks())-1)
		return m, nil
	}

	return m, nil
}

// handleEditorKey routes keys into the editor form and dispatches the save.
func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editorPending {
		// A save is in flight; the editor's close is gated on its result.
		return m, nil
	}

	cmd, submitted, cancelled := m.editor.Update(msg)
	if cancelled {
		// Draft discarded.
		m.editor = nil
		return m, nil
	}
	if !submitted {
		return m, cmd
	}

	draft := m.editor.draft()
	creating := m.editor.creating
	id := m.editor.id
	m.editorPending = true
	return m, m.dispatch(func() tea.Msg {
		if creating {
			return editorResultMsg{m.commander.Create(m.ctx, draft)}
		}
		return editorResultMsg{m.commander.Update(m.ctx, id, draft)}
	})
}

// handleConfirmKey routes keys into the delete confirmation.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmPending {
		return m, nil
	}

	affirmed, dismissed := m.confirm.Update(msg)
	if dismissed {
		// Never affirmed: no network call, store untouched.
		m.confirm = nil
		return m, nil
	}
	if !affirmed {
		return m, nil
	}

	id := m.confirm.id
	m.confirmPending = true
	return m, m.dispatch(func() tea.Msg {
		return deleteResultMsg{m.commander.Delete(m.ctx, id)}
	})
}

// handleSearchKey routes keys into the search input; the projection follows
// the input live.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.filter.Query = ""
		m.clampSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.filter.Query = m.searchInput.Value()
	m.clampSelection()
	return m, cmd
}

// dispatch runs one operation in the background. There is no cancellation:
// a dispatched call runs to completion and its result is applied in
// completion order, even if the related UI state has since changed.
func (m *Model) dispatch(run tea.Cmd) tea.Cmd {
	m.inflight++
	if m.inflight == 1 {
		return tea.Batch(run, m.spinner.Tick)
	}
	return run
}

// applyOutcome folds a completed operation back into the model: refresh the
// collection snapshot from the store and surface the notification.
func (m *Model) applyOutcome(outcome command.Outcome) tea.Cmd {
	if m.inflight > 0 {
		m.inflight--
	}
	m.books = m.store.Books()
	m.clampSelection()
	if outcome.Notice == "" {
		return nil
	}
	return m.setNotice(outcome.Notice, outcome.Kind)
}

// Messages

type editorResultMsg struct{ outcome command.Outcome }

type deleteResultMsg struct{ outcome command.Outcome }

type actionResultMsg struct{ outcome command.Outcome }

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
