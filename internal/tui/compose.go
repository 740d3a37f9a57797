package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// compose focus order: receiver, subject, body.
const composeFields = 3

func (m Model) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.screen = screenMailbox
			return m, nil

		case "tab", "shift+tab":
			if key.String() == "shift+tab" {
				m.composeFocus--
			} else {
				m.composeFocus++
			}
			if m.composeFocus < 0 {
				m.composeFocus = composeFields - 1
			}
			if m.composeFocus >= composeFields {
				m.composeFocus = 0
			}

			for i := range m.composeInputs {
				if i == m.composeFocus {
					m.composeInputs[i].Focus()
				} else {
					m.composeInputs[i].Blur()
				}
			}
			if m.composeFocus == 2 {
				m.composeBody.Focus()
			} else {
				m.composeBody.Blur()
			}
			return m, nil

		case "ctrl+s":
			receiver := strings.TrimSpace(m.composeInputs[0].Value())
			subject := m.composeInputs[1].Value()
			body := m.composeBody.Value()
			return m, m.sendCmd(receiver, subject, body)
		}

		// Enter moves on from the single-line fields; inside the body it
		// is a plain newline handled by the textarea below.
		if key.String() == "enter" && m.composeFocus < 2 {
			return m.updateCompose(tea.KeyMsg{Type: tea.KeyTab})
		}
	}

	var cmd tea.Cmd
	switch m.composeFocus {
	case 0, 1:
		m.composeInputs[m.composeFocus], cmd = m.composeInputs[m.composeFocus].Update(msg)
	case 2:
		m.composeBody, cmd = m.composeBody.Update(msg)
	}
	return m, cmd
}

func (m Model) viewCompose() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("New message"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("To"))
	b.WriteString("\n")
	b.WriteString(m.composeInputs[0].View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Subject"))
	b.WriteString("\n")
	b.WriteString(m.composeInputs[1].View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Body"))
	b.WriteString("\n")
	b.WriteString(m.composeBody.View())
	b.WriteString("\n")

	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText))
	}

	b.WriteString(helpStyle.Render("\nctrl+s send • tab next field • esc cancel"))
	return paneStyle.Render(b.String())
}
