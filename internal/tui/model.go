// Package tui is the full-screen terminal front end: a main menu, a login
// screen, the mailbox view, and a compose form, all strictly callers of the
// mailbox service. The TUI owns the current session and passes it explicitly; there
// is no ambient shared state.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vpetrenko/mailstore/internal/mailbox"
)

// screen identifies which view the model is rendering.
type screen int

const (
	screenMenu screen = iota
	screenLogin
	screenMailbox
	screenRead
	screenCompose
)

// Model holds the whole TUI state.
type Model struct {
	ctx     context.Context
	service *mailbox.Service

	// session is nil until a login succeeds and is dropped on logout.
	session *mailbox.Session

	screen screen
	width  int
	height int

	// menu screen
	menuCursor int

	// login screen
	loginInputs [2]textinput.Model // email, password
	loginFocus  int

	// mailbox screen
	cursor int

	// compose screen
	composeInputs [2]textinput.Model // receiver, subject
	composeBody   textarea.Model
	composeFocus  int

	status  string
	errText string
}

// NewModel builds the initial model showing the main menu.
func NewModel(ctx context.Context, service *mailbox.Service) Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	receiver := textinput.New()
	receiver.Placeholder = "receiver email"

	subject := textinput.New()
	subject.Placeholder = "subject"

	body := textarea.New()
	body.Placeholder = "message body"

	return Model{
		ctx:           ctx,
		service:       service,
		screen:        screenMenu,
		loginInputs:   [2]textinput.Model{email, password},
		composeInputs: [2]textinput.Model{receiver, subject},
		composeBody:   body,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case errMsg:
		m.errText = msg.err.Error()
		m.status = ""
		return m, nil

	case loginDoneMsg:
		m.session = msg.session
		m.screen = screenMailbox
		m.cursor = 0
		m.errText = ""
		m.status = ""
		return m, nil

	case registerDoneMsg:
		m.errText = ""
		m.status = "Account " + msg.email + " is registered. You can log in now."
		return m, nil

	case sentMsg:
		// The send ran asynchronously; the user may have logged out before
		// the result landed.
		if m.session == nil {
			return m, nil
		}
		m.screen = screenMailbox
		m.errText = ""
		m.status = "Message sent to " + msg.receiver + "."
		return m, nil

	case reloadedMsg:
		if m.session == nil {
			return m, nil
		}
		m.errText = ""
		if m.cursor >= len(m.session.Messages()) {
			m.cursor = 0
		}
		return m, nil
	}

	switch m.screen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenMailbox:
		return m.updateMailbox(msg)
	case screenRead:
		return m.updateRead(msg)
	case screenCompose:
		return m.updateCompose(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.screen {
	case screenMenu:
		return m.viewMenu()
	case screenLogin:
		return m.viewLogin()
	case screenMailbox:
		return m.viewMailbox()
	case screenRead:
		return m.viewRead()
	case screenCompose:
		return m.viewCompose()
	}
	return ""
}

// Run starts the TUI and blocks until the user quits.
func Run(ctx context.Context, service *mailbox.Service) error {
	p := tea.NewProgram(NewModel(ctx, service), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
