package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// respondCmd runs the responder off the update loop and reports back
// with an assistantReplyMsg. The responder contract guarantees a reply
// string on every path, so there is no error message to route — a
// failed delegation already comes back as the canned apology.
func (m Model) respondCmd(text string, epoch int) tea.Cmd {
	responder := m.responder
	lang := m.lang
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		return assistantReplyMsg{
			epoch: epoch,
			text:  responder.Respond(ctx, text, lang),
		}
	}
}
