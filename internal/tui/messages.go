package tui

import "github.com/vpetrenko/mailstore/internal/mailbox"

// Messages delivered back into Update by the command closures.

type errMsg struct {
	err error
}

type loginDoneMsg struct {
	session *mailbox.Session
}

type registerDoneMsg struct {
	email string
}

type sentMsg struct {
	receiver string
}

type reloadedMsg struct{}
