// Package mailbox provides the authenticated session handle: the only
// object presentation code works with directly.
package mailbox

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vpetrenko/mailstore/internal/accounts"
	"github.com/vpetrenko/mailstore/internal/logging"
	"github.com/vpetrenko/mailstore/internal/messages"
	"github.com/vpetrenko/mailstore/internal/models"
)

// Service composes the account directory and the message ledger into the
// two entry points the presentation layer starts from: CreateAccount and
// Login. Registration and login are deliberately separate steps; creating
// an account never logs the caller in.
type Service struct {
	directory *accounts.Directory
	ledger    *messages.Ledger
	log       logging.Logger
}

// NewService constructs a Service over the given directory and ledger.
func NewService(d *accounts.Directory, l *messages.Ledger, log logging.Logger) *Service {
	return &Service{directory: d, ledger: l, log: log}
}

// CreateAccount registers email with the directory. It is idempotent and
// never returns a session.
func (s *Service) CreateAccount(ctx context.Context, email, credential string) error {
	return s.directory.EnsureAccount(ctx, email, credential)
}

// Login authenticates and returns a live session with its message cache
// already loaded. Unknown emails fail with common.ErrAccountNotFound and
// wrong credentials with common.ErrInvalidCredential.
func (s *Service) Login(ctx context.Context, email, credential string) (*Session, error) {
	identity, err := s.directory.Authenticate(ctx, email, credential)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		id:       uuid.New(),
		identity: identity,
		ledger:   s.ledger,
	}
	sess.log = s.log.With("session_id", sess.id.String(), "user", identity.Email)

	if err := sess.Reload(ctx); err != nil {
		return nil, fmt.Errorf("initial reload: %w", err)
	}

	sess.log.Info(ctx, "session opened")
	return sess, nil
}

// Session binds one identity to a reload-able view of its messages. The
// cached slice is replaced wholesale by Reload and never patched in place.
// The caller owns the session and discards it on logout; there is no
// server-side state to tear down.
type Session struct {
	id       uuid.UUID
	identity models.Identity
	ledger   *messages.Ledger
	log      logging.Logger
	messages []models.Message
}

// ID returns the unique id assigned at login, used for log correlation.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Email returns the authenticated email.
func (s *Session) Email() string {
	return s.identity.Email
}

// Identity returns the authenticated identity value.
func (s *Session) Identity() models.Identity {
	return s.identity
}

// Messages returns the cached message view in ascending id order. The slice
// is only replaced by Reload; callers must not mutate it.
func (s *Session) Messages() []models.Message {
	return s.messages
}

// Send delivers msg to the receiver's account. The message is stored only
// in the receiver's record; the sender's own cache is untouched. An unknown
// receiver fails with common.ErrReceiverNotFound.
func (s *Session) Send(ctx context.Context, receiverEmail string, msg models.Message) error {
	if err := s.ledger.Append(ctx, receiverEmail, messages.Record(msg)); err != nil {
		return err
	}
	s.log.Info(ctx, "message sent", "receiver", receiverEmail)
	return nil
}

// Compose builds an outgoing message from this session's identity and sends
// it to the receiver.
func (s *Session) Compose(ctx context.Context, receiverEmail, header, body string) error {
	return s.Send(ctx, receiverEmail, models.NewMessage(s.identity, header, body))
}

// Reload re-fetches the full message view from the ledger, replacing the
// cache. Messages removed out-of-band disappear on the next call.
func (s *Session) Reload(ctx context.Context) error {
	msgs, err := s.ledger.ListFor(ctx, s.identity.Email)
	if err != nil {
		return err
	}
	s.messages = msgs
	return nil
}
