package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibc-labs/loopback/modules/core/03-connection/types"
	"github.com/ibc-labs/loopback/modules/core/exported"
)

// tests ParseConnectionSequence and IsValidConnectionID
func TestParseConnectionSequence(t *testing.T) {
	testCases := []struct {
		name         string
		connectionID string
		expSeq       uint64
		expPass      bool
	}{
		{"valid 0", "connection-0", 0, true},
		{"valid 1", "connection-1", 1, true},
		{"valid large sequence", "connection-234568219356718293", 234568219356718293, true},
		// one above uint64 max
		{"invalid uint64", "connection-18446744073709551616", 0, false},
		{"invalid connection prefix", "connectionXXX-0", 0, false},
		{"no connection prefix", "0", 0, false},
		{"negative sequence", "connection--1", 0, false},
		{"sentinel localhost identifier", exported.LocalhostConnectionID, 0, false},
		{"blank id", "               ", 0, false},
	}

	for _, tc := range testCases {
		seq, err := types.ParseConnectionSequence(tc.connectionID)
		require.Equal(t, tc.expSeq, seq, tc.name)

		if tc.expPass {
			require.NoError(t, err, tc.name)
			require.True(t, types.IsValidConnectionID(tc.connectionID), tc.name)
		} else {
			require.Error(t, err, tc.name)
			require.False(t, types.IsValidConnectionID(tc.connectionID), tc.name)
		}
	}
}

func TestValidateConnectionID(t *testing.T) {
	require.NoError(t, types.ValidateConnectionID("connection-7"))

	// the sentinel identifier can never be minted through the generic path
	require.Error(t, types.ValidateConnectionID(exported.LocalhostConnectionID))
	require.Error(t, types.ValidateConnectionID("connection"))
}

func TestFormatConnectionIdentifier(t *testing.T) {
	require.Equal(t, "connection-0", types.FormatConnectionIdentifier(0))
	require.Equal(t, "connection-554", types.FormatConnectionIdentifier(554))
}
