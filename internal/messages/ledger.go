// Package messages implements the per-account message ledger: append with
// id assignment and ordered retrieval, layered on the ledger store.
package messages

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/vpetrenko/mailstore/internal/common"
	"github.com/vpetrenko/mailstore/internal/logging"
	"github.com/vpetrenko/mailstore/internal/models"
	"github.com/vpetrenko/mailstore/internal/store"
)

// dateLayouts are the timestamp shapes accepted on read. Historic stores
// were written by tooling that did not always include a zone offset or
// fractional seconds.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// Ledger provides message append and retrieval for all accounts.
type Ledger struct {
	store *store.FileStore
	log   logging.Logger
}

// NewLedger constructs a Ledger over the given store.
func NewLedger(s *store.FileStore, log logging.Logger) *Ledger {
	return &Ledger{store: s, log: log}
}

// Append stores rec under the receiver's next message id. It fails with
// common.ErrReceiverNotFound when the receiver has no account, in which case
// the ledger file is left untouched.
func (l *Ledger) Append(ctx context.Context, receiverEmail string, rec store.MessageRecord) error {
	return l.store.Update(ctx, func(ledger store.Ledger) error {
		account, ok := ledger[receiverEmail]
		if !ok {
			return fmt.Errorf("appending for %q: %w", receiverEmail, common.ErrReceiverNotFound)
		}

		id := account.NextID()
		account.Messages[id] = rec
		l.log.Debug(ctx, "message appended", "receiver", receiverEmail, "id", id)
		return nil
	})
}

// ListFor returns email's messages in ascending id order. An account that
// does not exist yields an empty slice, same as an empty account. A message
// whose date fails to parse gets the current UTC time substituted instead of
// failing the whole listing.
func (l *Ledger) ListFor(ctx context.Context, email string) ([]models.Message, error) {
	ledger, err := l.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}

	account, ok := ledger[email]
	if !ok {
		return nil, nil
	}

	ids := make([]int, 0, len(account.Messages))
	for id := range account.Messages {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]models.Message, 0, len(ids))
	for _, id := range ids {
		rec := account.Messages[id]
		out = append(out, l.toMessage(ctx, email, id, rec))
	}
	return out, nil
}

func (l *Ledger) toMessage(ctx context.Context, email string, id int, rec store.MessageRecord) models.Message {
	date, err := parseDate(rec.Date)
	if err != nil {
		l.log.Warn(ctx, "unparsable message date, substituting current time",
			"receiver", email, "id", id, "date", rec.Date)
		date = time.Now().UTC()
	}
	return models.Message{
		Sender: rec.Sender,
		Header: rec.Header,
		Body:   rec.Body,
		Box:    rec.Box,
		Date:   date,
	}
}

// Record converts an in-memory message to its persisted shape, serializing
// the timestamp as RFC 3339.
func Record(m models.Message) store.MessageRecord {
	return store.MessageRecord{
		Box:    m.Box,
		Sender: m.Sender,
		Date:   m.Date.Format(time.RFC3339Nano),
		Header: m.Header,
		Body:   m.Body,
	}
}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
