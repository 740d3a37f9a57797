package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/gofrs/flock"

	"github.com/vpetrenko/mailstore/internal/common"
	"github.com/vpetrenko/mailstore/internal/filex"
	"github.com/vpetrenko/mailstore/internal/logging"
)

// lockRetryDelay is how often lock acquisition is retried until the context
// expires.
const lockRetryDelay = 50 * time.Millisecond

// FileStore persists a Ledger as one JSON document at a fixed path.
//
// Writes are full-document overwrites and are not crash-atomic: a process
// kill mid-write can corrupt the file. That is accepted for the
// single-process interactive scope; a corrupt file self-heals to an empty
// ledger on the next load. An advisory lock (a .lock sibling file) guards
// the read-modify-write sequence against concurrent processes on a
// best-effort basis.
type FileStore struct {
	path string
	lock *flock.Flock
	log  logging.Logger
}

// NewFileStore binds a store to path. The file itself is created lazily on
// first save.
func NewFileStore(path string, log logging.Logger) *FileStore {
	return &FileStore{
		path: path,
		lock: flock.New(path + ".lock"),
		log:  log.With("store", path),
	}
}

// Path returns the ledger file path the store is bound to.
func (s *FileStore) Path() string {
	return s.path
}

// ensureDir creates the store's parent directories. The lock file lives
// next to the ledger file, so the directory must exist before any lock
// acquisition, including the one guarding a first read.
func (s *FileStore) ensureDir() error {
	if err := filex.EnsureParentDir(s.path); err != nil {
		return fmt.Errorf("preparing ledger directory: %w", errors.Join(common.ErrStoreIO, err))
	}
	return nil
}

// Load reads the whole ledger under a shared lock. A missing or malformed
// file yields an empty ledger, never an error; unexpected filesystem
// failures wrap common.ErrStoreIO.
func (s *FileStore) Load(ctx context.Context) (Ledger, error) {
	if err := s.ensureDir(); err != nil {
		return nil, err
	}

	locked, err := s.lock.TryRLockContext(ctx, lockRetryDelay)
	if err != nil || !locked {
		return nil, fmt.Errorf("acquiring read lock: %w", errors.Join(common.ErrStoreIO, err))
	}
	defer s.lock.Unlock()

	return s.load(ctx)
}

// Save overwrites the whole ledger under an exclusive lock, creating parent
// directories as needed.
func (s *FileStore) Save(ctx context.Context, ledger Ledger) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !locked {
		return fmt.Errorf("acquiring lock: %w", errors.Join(common.ErrStoreIO, err))
	}
	defer s.lock.Unlock()

	return s.save(ctx, ledger)
}

// Update runs fn on the current ledger and writes the result back, holding
// the exclusive lock across the whole read-modify-write. If fn returns an
// error the file is left untouched and the error is returned unchanged.
func (s *FileStore) Update(ctx context.Context, fn func(Ledger) error) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !locked {
		return fmt.Errorf("acquiring lock: %w", errors.Join(common.ErrStoreIO, err))
	}
	defer s.lock.Unlock()

	ledger, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(ledger); err != nil {
		return err
	}
	return s.save(ctx, ledger)
}

func (s *FileStore) load(ctx context.Context) (Ledger, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug(ctx, "ledger file missing, starting empty")
			return Ledger{}, nil
		}
		return nil, fmt.Errorf("reading ledger: %w", errors.Join(common.ErrStoreIO, err))
	}

	var ledger Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		s.log.Warn(ctx, "ledger file malformed, starting empty", "error", err)
		return Ledger{}, nil
	}
	if ledger == nil {
		ledger = Ledger{}
	}
	return ledger, nil
}

func (s *FileStore) save(ctx context.Context, ledger Ledger) error {
	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o660); err != nil {
		return fmt.Errorf("writing ledger: %w", errors.Join(common.ErrStoreIO, err))
	}

	s.log.Debug(ctx, "ledger saved", "accounts", len(ledger))
	return nil
}
