package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var menuItems = []string{"Login", "Quit"}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
		return m, nil

	case "down", "j":
		if m.menuCursor < len(menuItems)-1 {
			m.menuCursor++
		}
		return m, nil

	case "enter":
		switch menuItems[m.menuCursor] {
		case "Login":
			m.screen = screenLogin
			m.loginFocus = 0
			m.loginInputs[0].Focus()
			m.loginInputs[1].Blur()
			m.status = ""
			m.errText = ""
			return m, nil
		case "Quit":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("mailstore"))
	b.WriteString("\n")

	for i, item := range menuItems {
		if i == m.menuCursor {
			b.WriteString(selectedStyle.Render("> " + item))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("\nenter select • up/down move • q quit"))
	return paneStyle.Render(b.String())
}
