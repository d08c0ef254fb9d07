package shared_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkmesh/relay/shared"
)

func TestParseAccountID(t *testing.T) {
	t.Parallel()
	t.Run("short inputs are left-padded", func(t *testing.T) {
		t.Parallel()
		id, err := shared.ParseAccountID("12")
		require.NoError(t, err)
		require.Equal(t, "0x"+strings.Repeat("0", 62)+"12", id.String())
	})
	t.Run("single hex character", func(t *testing.T) {
		t.Parallel()
		id, err := shared.ParseAccountID("a")
		require.NoError(t, err)
		require.Equal(t, "0x"+strings.Repeat("0", 63)+"a", id.String())
		require.Equal(t, byte(0x0a), id.Bytes()[31])
	})
	t.Run("0x prefix is stripped", func(t *testing.T) {
		t.Parallel()
		withPrefix, err := shared.ParseAccountID("0xdeadbeef")
		require.NoError(t, err)
		bare, err := shared.ParseAccountID("deadbeef")
		require.NoError(t, err)
		require.Equal(t, bare, withPrefix)
	})
	t.Run("full length round trips", func(t *testing.T) {
		t.Parallel()
		full := strings.Repeat("ab", 32)
		id, err := shared.ParseAccountID(full)
		require.NoError(t, err)
		require.Equal(t, "0x"+full, id.String())
	})
	t.Run("too long is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := shared.ParseAccountID(strings.Repeat("a", 65))
		require.ErrorIs(t, err, shared.ErrMalformedAccount)
	})
	t.Run("non-hex is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := shared.ParseAccountID("0xzz12")
		require.ErrorIs(t, err, shared.ErrMalformedAccount)
	})
	t.Run("empty input decodes to the zero account", func(t *testing.T) {
		t.Parallel()
		id, err := shared.ParseAccountID("")
		require.NoError(t, err)
		require.Equal(t, shared.AccountID{}, id)
	})
}

func TestParseJobState(t *testing.T) {
	t.Parallel()
	require.Equal(t, shared.JobPending, shared.ParseJobState("PENDING"))
	require.Equal(t, shared.JobProcessing, shared.ParseJobState("PROCESSING"))
	require.Equal(t, shared.JobCompleted, shared.ParseJobState("COMPLETED"))
	require.Equal(t, shared.JobFailed, shared.ParseJobState("FAILED"))
	require.Equal(t, shared.JobUnknown, shared.ParseJobState("UNKNOWN"))
	require.Equal(t, shared.JobUnknown, shared.ParseJobState("something else"))
	require.Equal(t, shared.JobUnknown, shared.ParseJobState(""))
}
