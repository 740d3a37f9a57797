package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.screen = screenMenu
			m.errText = ""
			m.status = ""
			return m, nil

		case "tab", "shift+tab", "up", "down":
			if key.String() == "shift+tab" || key.String() == "up" {
				m.loginFocus--
			} else {
				m.loginFocus++
			}
			if m.loginFocus < 0 {
				m.loginFocus = len(m.loginInputs) - 1
			}
			if m.loginFocus >= len(m.loginInputs) {
				m.loginFocus = 0
			}
			for i := range m.loginInputs {
				if i == m.loginFocus {
					m.loginInputs[i].Focus()
				} else {
					m.loginInputs[i].Blur()
				}
			}
			return m, nil

		case "enter":
			email := strings.TrimSpace(m.loginInputs[0].Value())
			password := m.loginInputs[1].Value()
			return m, m.loginCmd(email, password)

		case "ctrl+r":
			email := strings.TrimSpace(m.loginInputs[0].Value())
			password := m.loginInputs[1].Value()
			return m, m.registerCmd(email, password)
		}
	}

	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

func (m Model) viewLogin() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("mailstore"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.loginInputs[0].View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.loginInputs[1].View())
	b.WriteString("\n")

	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText))
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}

	b.WriteString(helpStyle.Render("\nenter login • ctrl+r register • tab switch field • esc back"))
	return paneStyle.Render(b.String())
}
