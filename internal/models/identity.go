// Package models defines the value types shared between the account
// directory, the message ledger, and the mailbox session.
package models

// Identity is an authenticated email/credential pair. It is a plain value:
// construct it, pass it around, never mutate it.
type Identity struct {
	Email      string
	Credential string
}
