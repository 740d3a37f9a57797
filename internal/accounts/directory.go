// Package accounts implements the account directory: the identity →
// credential mapping layered on the ledger store.
package accounts

import (
	"context"
	"fmt"

	"github.com/vpetrenko/mailstore/internal/common"
	"github.com/vpetrenko/mailstore/internal/logging"
	"github.com/vpetrenko/mailstore/internal/models"
	"github.com/vpetrenko/mailstore/internal/store"
)

// Directory provides create, lookup, and verify operations over the shared
// ledger file.
type Directory struct {
	store *store.FileStore
	log   logging.Logger
}

// NewDirectory constructs a Directory over the given store.
func NewDirectory(s *store.FileStore, log logging.Logger) *Directory {
	return &Directory{store: s, log: log}
}

// EnsureAccount makes sure an account exists for email.
//
// If the account is absent it is created with the given credential. If it
// exists with an empty credential, the credential is backfilled: this claims
// a pre-seeded account and is not an error. If it exists with a non-empty
// credential the call is a silent no-op; the stored credential is never
// overwritten, and "already exists" is not signalled.
func (d *Directory) EnsureAccount(ctx context.Context, email, credential string) error {
	if email == "" {
		return common.ErrEmptyEmail
	}

	return d.store.Update(ctx, func(ledger store.Ledger) error {
		rec, ok := ledger[email]
		if !ok {
			ledger[email] = store.NewAccountRecord(credential)
			d.log.Info(ctx, "account created", "email", email)
			return nil
		}
		if rec.Credential == "" {
			rec.Credential = credential
			d.log.Info(ctx, "account credential backfilled", "email", email)
		}
		return nil
	})
}

// Authenticate verifies the credential for email and returns the matching
// identity. It fails with common.ErrAccountNotFound for an unknown email and
// common.ErrInvalidCredential on a mismatch. Comparison is byte-for-byte on
// the stored plaintext; the store offers no stronger protection by design.
func (d *Directory) Authenticate(ctx context.Context, email, credential string) (models.Identity, error) {
	ledger, err := d.store.Load(ctx)
	if err != nil {
		return models.Identity{}, fmt.Errorf("loading ledger: %w", err)
	}

	rec, ok := ledger[email]
	if !ok {
		return models.Identity{}, common.ErrAccountNotFound
	}
	if rec.Credential != credential {
		return models.Identity{}, common.ErrInvalidCredential
	}

	return models.Identity{Email: email, Credential: credential}, nil
}
