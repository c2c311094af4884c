package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aferrand/shelf/internal/command"
)

// noticeDuration is how long a notification stays on screen.
const noticeDuration = 2200 * time.Millisecond

// notice is the transient notification slot. A zero notice means nothing is
// displayed. The seq field ties each notice to its scheduled clear so a
// newer notice invalidates the pending expiry of the one it replaced.
type notice struct {
	Text string
	Kind command.NoticeKind
	seq  int
}

func (n notice) visible() bool { return n.Text != "" }

// noticeExpiredMsg fires when a notice's display window elapses.
type noticeExpiredMsg struct {
	seq int
}

// setNotice replaces the current notice and schedules its clear. Replacing
// an unexpired notice resets the timer rather than stacking a second one.
func (m *Model) setNotice(text string, kind command.NoticeKind) tea.Cmd {
	m.noticeSeq++
	m.notice = notice{Text: text, Kind: kind, seq: m.noticeSeq}
	seq := m.noticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

// handleNoticeExpired clears the notice unless it was already replaced.
func (m *Model) handleNoticeExpired(msg noticeExpiredMsg) {
	if m.notice.seq == msg.seq {
		m.notice = notice{}
	}
}

func (m Model) renderNotice() string {
	if !m.notice.visible() {
		return ""
	}
	styles := m.theme.Styles()
	switch m.notice.Kind {
	case command.NoticeSuccess:
		return styles.SuccessText.Render("✓ " + m.notice.Text)
	case command.NoticeError:
		return styles.DangerText.Render("✗ " + m.notice.Text)
	default:
		return styles.InfoText.Render("• " + m.notice.Text)
	}
}
