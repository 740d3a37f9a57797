package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// The engine calls are synchronous file operations, fast enough to run
// inside tea commands without progress reporting.

func (m Model) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		session, err := m.service.Login(m.ctx, email, password)
		if err != nil {
			return errMsg{err}
		}
		return loginDoneMsg{session}
	}
}

func (m Model) registerCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		if err := m.service.CreateAccount(m.ctx, email, password); err != nil {
			return errMsg{err}
		}
		return registerDoneMsg{email}
	}
}

func (m Model) sendCmd(receiver, subject, body string) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		if err := session.Compose(m.ctx, receiver, subject, body); err != nil {
			return errMsg{err}
		}
		return sentMsg{receiver}
	}
}

func (m Model) reloadCmd() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		if err := session.Reload(m.ctx); err != nil {
			return errMsg{err}
		}
		return reloadedMsg{}
	}
}
