package messages

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vpetrenko/mailstore/internal/common"
	"github.com/vpetrenko/mailstore/internal/logging"
	"github.com/vpetrenko/mailstore/internal/models"
	"github.com/vpetrenko/mailstore/internal/store"
)

func setupLedger(t *testing.T) (*Ledger, *store.FileStore) {
	t.Helper()
	log := logging.New(io.Discard, "error", "text")
	s := store.NewFileStore(filepath.Join(t.TempDir(), "mail_store.json"), log)
	return NewLedger(s, log), s
}

func record(header string) store.MessageRecord {
	return store.MessageRecord{
		Box:    "inbox",
		Sender: "alice@x.com",
		Date:   "2026-08-28T10:00:00Z",
		Header: header,
		Body:   "body of " + header,
	}
}

func TestAppend_AssignsIncreasingIDsFromOne(t *testing.T) {
	l, s := setupLedger(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, store.Ledger{"bob@y.com": store.NewAccountRecord("pw")}))

	require.NoError(t, l.Append(ctx, "bob@y.com", record("first")))
	require.NoError(t, l.Append(ctx, "bob@y.com", record("second")))
	require.NoError(t, l.Append(ctx, "bob@y.com", record("third")))

	ledger, err := s.Load(ctx)
	require.NoError(t, err)
	msgs := ledger["bob@y.com"].Messages
	require.Equal(t, "first", msgs[1].Header)
	require.Equal(t, "second", msgs[2].Header)
	require.Equal(t, "third", msgs[3].Header)
}

func TestAppend_IDSequencesIndependentPerReceiver(t *testing.T) {
	l, s := setupLedger(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, store.Ledger{
		"bob@y.com":   store.NewAccountRecord("pw"),
		"carol@z.com": store.NewAccountRecord("pw"),
	}))

	require.NoError(t, l.Append(ctx, "bob@y.com", record("b1")))
	require.NoError(t, l.Append(ctx, "carol@z.com", record("c1")))
	require.NoError(t, l.Append(ctx, "bob@y.com", record("b2")))

	ledger, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "b2", ledger["bob@y.com"].Messages[2].Header)
	require.Equal(t, "c1", ledger["carol@z.com"].Messages[1].Header)
	require.NotContains(t, ledger["carol@z.com"].Messages, 2)
}

func TestAppend_ContinuesPastGaps(t *testing.T) {
	l, s := setupLedger(t)
	ctx := context.Background()

	bob := store.NewAccountRecord("pw")
	bob.Messages[5] = record("old")
	require.NoError(t, s.Save(ctx, store.Ledger{"bob@y.com": bob}))

	require.NoError(t, l.Append(ctx, "bob@y.com", record("new")))

	ledger, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "new", ledger["bob@y.com"].Messages[6].Header)
}

func TestAppend_UnknownReceiver_FileUnchanged(t *testing.T) {
	l, s := setupLedger(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, store.Ledger{"bob@y.com": store.NewAccountRecord("pw")}))

	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	err = l.Append(ctx, "ghost@z.com", record("lost"))
	require.ErrorIs(t, err, common.ErrReceiverNotFound)

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestListFor_AscendingIDOrder(t *testing.T) {
	l, s := setupLedger(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, store.Ledger{"bob@y.com": store.NewAccountRecord("pw")}))

	for _, h := range []string{"A", "B", "C"} {
		require.NoError(t, l.Append(ctx, "bob@y.com", record(h)))
	}

	got, err := l.ListFor(ctx, "bob@y.com")
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "A", got[0].Header)
	require.Equal(t, "B", got[1].Header)
	require.Equal(t, "C", got[2].Header)
}

func TestListFor_NumericOrderBeyondTen(t *testing.T) {
	l, s := setupLedger(t)
	ctx := context.Background()

	// Lexicographic ordering would put "10" before "2"; ids must sort
	// numerically regardless of count.
	bob := store.NewAccountRecord("pw")
	for id := 1; id <= 12; id++ {
		bob.Messages[id] = record(string(rune('a' + id - 1)))
	}
	require.NoError(t, s.Save(ctx, store.Ledger{"bob@y.com": bob}))

	got, err := l.ListFor(ctx, "bob@y.com")
	require.NoError(t, err)
	require.Len(t, got, 12)
	require.Equal(t, "j", got[9].Header)
	require.Equal(t, "k", got[10].Header)
	require.Equal(t, "l", got[11].Header)
}

func TestListFor_UnknownAccount_Empty(t *testing.T) {
	l, _ := setupLedger(t)

	got, err := l.ListFor(context.Background(), "ghost@z.com")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestListFor_ParsesStoredDate(t *testing.T) {
	l, s := setupLedger(t)
	ctx := context.Background()

	bob := store.NewAccountRecord("pw")
	bob.Messages[1] = store.MessageRecord{Date: "2026-08-28T10:00:00Z", Header: "h"}
	require.NoError(t, s.Save(ctx, store.Ledger{"bob@y.com": bob}))

	got, err := l.ListFor(ctx, "bob@y.com")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), got[0].Date.UTC())
}

func TestListFor_NaiveTimestampAccepted(t *testing.T) {
	l, s := setupLedger(t)
	ctx := context.Background()

	bob := store.NewAccountRecord("pw")
	bob.Messages[1] = store.MessageRecord{Date: "2026-08-28T10:00:00", Header: "h"}
	require.NoError(t, s.Save(ctx, store.Ledger{"bob@y.com": bob}))

	got, err := l.ListFor(ctx, "bob@y.com")
	require.NoError(t, err)
	require.Equal(t, 2026, got[0].Date.Year())
}

func TestListFor_UnparsableDate_SubstitutesNow(t *testing.T) {
	l, s := setupLedger(t)
	ctx := context.Background()

	bob := store.NewAccountRecord("pw")
	bob.Messages[1] = store.MessageRecord{Date: "not-a-date", Header: "h"}
	require.NoError(t, s.Save(ctx, store.Ledger{"bob@y.com": bob}))

	before := time.Now().Add(-time.Minute)
	got, err := l.ListFor(ctx, "bob@y.com")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.True(t, got[0].Date.After(before), "bad date must be replaced with the current time, not fail the reload")
}

func TestRecord_SerializesRFC3339(t *testing.T) {
	date := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)
	rec := Record(models.Message{
		Sender: "alice@x.com",
		Header: "Hi",
		Body:   "Hello",
		Box:    models.BoxInbox,
		Date:   date,
	})

	require.Equal(t, "2026-08-28T10:30:00Z", rec.Date)

	parsed, err := parseDate(rec.Date)
	require.NoError(t, err)
	require.True(t, parsed.Equal(date))
}
