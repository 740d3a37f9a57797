package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vpetrenko/mailstore/internal/models"
)

func (m Model) updateMailbox(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc":
		// Logout: drop the session and fall back to the main menu.
		m.session = nil
		m.screen = screenMenu
		m.status = ""
		m.errText = ""
		m.loginInputs[1].SetValue("")
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.session.Messages())-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if len(m.session.Messages()) > 0 {
			m.screen = screenRead
		}
		return m, nil

	case "r":
		m.status = ""
		return m, m.reloadCmd()

	case "c":
		m.composeInputs[0].SetValue("")
		m.composeInputs[1].SetValue("")
		m.composeBody.SetValue("")
		m.composeFocus = 0
		m.composeInputs[0].Focus()
		m.composeInputs[1].Blur()
		m.composeBody.Blur()
		m.screen = screenCompose
		m.status = ""
		m.errText = ""
		return m, nil
	}
	return m, nil
}

func (m Model) viewMailbox() string {
	var b strings.Builder

	msgs := m.session.Messages()
	b.WriteString(titleStyle.Render(fmt.Sprintf("Mailbox of %s — %d message(s)", m.session.Email(), len(msgs))))
	b.WriteString("\n")

	if len(msgs) == 0 {
		b.WriteString(labelStyle.Render("No messages. Press r to refresh."))
		b.WriteString("\n")
	}

	for i, msg := range msgs {
		line := fmt.Sprintf("%s  %-24s  %s",
			msg.Date.Format("2006-01-02 15:04"), msg.Sender, msg.Header)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText))
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}

	b.WriteString(helpStyle.Render("\nenter read • c compose • r reload • q logout • ctrl+c quit"))
	return paneStyle.Render(b.String())
}

func (m Model) updateRead(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "enter":
			m.screen = screenMailbox
			return m, nil
		}
	}
	return m, nil
}

func (m Model) viewRead() string {
	msgs := m.session.Messages()
	if m.cursor >= len(msgs) {
		return paneStyle.Render(errorStyle.Render("message no longer exists"))
	}
	msg := msgs[m.cursor]

	var b strings.Builder
	b.WriteString(titleStyle.Render(msg.Header))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("From: ") + msg.Sender + "\n")
	b.WriteString(labelStyle.Render("Date: ") + msg.Date.Format("2006-01-02 15:04:05") + "\n")
	b.WriteString(labelStyle.Render("Box:  ") + boxLabel(msg) + "\n\n")
	b.WriteString(msg.Body)
	b.WriteString(helpStyle.Render("\n\nesc back"))
	return paneStyle.Render(b.String())
}

func boxLabel(m models.Message) string {
	if m.Box == "" {
		return models.BoxInbox
	}
	return m.Box
}
