// Package store implements the persisted ledger: the schema types, the
// flat-JSON codec, and a file-backed store with advisory locking.
package store

import (
	"encoding/json"
	"strconv"
)

// credentialKey is the literal JSON key that has always held an account's
// credential. It shares the account object with the digit-only message keys,
// so the credential and the messages coexist in one flat mapping. The layout
// is an external interface; do not normalize it into a nested object.
const credentialKey = "mdp"

// Ledger is the whole persisted document: email → account record.
type Ledger map[string]*AccountRecord

// AccountRecord holds one account's credential and its received messages,
// keyed by their positive integer ids. Ids are not necessarily contiguous;
// the codec tolerates gaps.
type AccountRecord struct {
	Credential string
	Messages   map[int]MessageRecord
}

// MessageRecord is the persisted shape of one message. Date carries an
// ISO-8601 timestamp string; parsing happens at the ledger layer.
type MessageRecord struct {
	Box    string `json:"box"`
	Sender string `json:"sender"`
	Date   string `json:"date"`
	Header string `json:"header"`
	Body   string `json:"body"`
}

// NewAccountRecord returns an account record with the given credential and
// no messages.
func NewAccountRecord(credential string) *AccountRecord {
	return &AccountRecord{Credential: credential, Messages: make(map[int]MessageRecord)}
}

// NextID returns the id to assign to the next appended message:
// max(existing)+1, or 1 for an empty account. Ids are monotonic per account
// and never reused, even if earlier messages disappear out-of-band.
func (a *AccountRecord) NextID() int {
	next := 1
	for id := range a.Messages {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// MarshalJSON writes the historical flat layout: the "mdp" key next to one
// digit-string key per message.
func (a *AccountRecord) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(a.Messages)+1)
	flat[credentialKey] = a.Credential
	for id, rec := range a.Messages {
		flat[strconv.Itoa(id)] = rec
	}
	return json.Marshal(flat)
}

// UnmarshalJSON reads the flat layout back. Keys other than "mdp" that are
// not digit-only are ignored, as are digit keys whose value is not a message
// object; both are dropped on the next full rewrite.
func (a *AccountRecord) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}

	a.Credential = ""
	a.Messages = make(map[int]MessageRecord, len(flat))

	for key, raw := range flat {
		if key == credentialKey {
			// A non-string credential is treated as unset rather than
			// poisoning the whole account.
			_ = json.Unmarshal(raw, &a.Credential)
			continue
		}
		id, ok := parseMessageID(key)
		if !ok {
			continue
		}
		var rec MessageRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		a.Messages[id] = rec
	}
	return nil
}

// parseMessageID accepts digit-only keys that fit in an int. Anything else
// (including overflow) is skipped; skipping is the deterministic fallback
// for malformed id strings.
func parseMessageID(key string) (int, bool) {
	if key == "" {
		return 0, false
	}
	for _, r := range key {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(key)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
