package models

import "time"

// BoxInbox is the mailbox tag stamped on every delivered message. The
// persisted format reserves the field for future boxes (sent, archive),
// but the current engine only ever writes this value.
const BoxInbox = "inbox"

// Message is the in-memory form of one stored message. Instances are
// immutable once constructed and owned by the session that loaded them;
// a reload replaces the whole slice rather than patching in place.
type Message struct {
	Sender string
	Header string
	Body   string
	Box    string
	Date   time.Time
}

// NewMessage builds an outgoing inbox message from the sender's identity,
// stamped with the current UTC time.
func NewMessage(sender Identity, header, body string) Message {
	return Message{
		Sender: sender.Email,
		Header: header,
		Body:   body,
		Box:    BoxInbox,
		Date:   time.Now().UTC(),
	}
}
