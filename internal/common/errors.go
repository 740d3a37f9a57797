// Package common defines shared constants and sentinel errors used across
// the mailstore engine and its presentation layers. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Account directory errors.
	ErrAccountNotFound   = errors.New("account not found")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrEmptyEmail        = errors.New("email must not be empty")

	// Message ledger errors.
	ErrReceiverNotFound = errors.New("receiver not found")

	// Store errors. Missing or corrupt files are self-healed on read and
	// never surface through this sentinel; it covers everything else the
	// filesystem can throw at us.
	ErrStoreIO = errors.New("store i/o error")
)
