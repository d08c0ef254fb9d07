package relayer

import (
	"testing"

	"github.com/minio/sha256-simd"
	"github.com/stretchr/testify/require"

	"github.com/zkmesh/relay/shared"
)

func TestJournalAppendGet(t *testing.T) {
	t.Parallel()
	journal, err := openJournal(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, journal.Close()) })

	account, err := shared.ParseAccountID("0xab")
	require.NoError(t, err)
	proof := []byte("payload")

	require.NoError(t, journal.append("job-1", account, proof))

	record, err := journal.get("job-1")
	require.NoError(t, err)
	require.Equal(t, "job-1", record.JobID)
	require.Equal(t, account.Bytes(), record.Account)
	digest := sha256.Sum256(proof)
	require.Equal(t, digest[:], record.Digest)
	require.NotZero(t, record.CreatedAt)
}

func TestJournalGetUnknownJob(t *testing.T) {
	t.Parallel()
	journal, err := openJournal(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, journal.Close()) })

	_, err = journal.get("nope")
	require.ErrorIs(t, err, ErrNotJournaled)
}

func TestJournalList(t *testing.T) {
	t.Parallel()
	journal, err := openJournal(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, journal.Close()) })

	account, err := shared.ParseAccountID("0xab")
	require.NoError(t, err)
	for _, jobID := range []string{"job-1", "job-2", "job-3"} {
		require.NoError(t, journal.append(jobID, account, []byte(jobID)))
	}

	records, err := journal.list(0)
	require.NoError(t, err)
	require.Len(t, records, 3)

	records, err = journal.list(2)
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestJournalSurvivesReopen(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	journal, err := openJournal(dir)
	require.NoError(t, err)

	account, err := shared.ParseAccountID("0xab")
	require.NoError(t, err)
	require.NoError(t, journal.append("job-1", account, []byte("payload")))
	require.NoError(t, journal.Close())

	journal, err = openJournal(dir)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, journal.Close()) })

	record, err := journal.get("job-1")
	require.NoError(t, err)
	require.Equal(t, "job-1", record.JobID)
}
