package host_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	host "github.com/ibc-labs/loopback/modules/core/24-host"
)

type testCase struct {
	msg     string
	id      string
	expPass bool
}

func TestClientIdentifierValidator(t *testing.T) {
	testCases := []testCase{
		{"valid lowercase", "07-tendermint-0", true},
		{"valid id special chars", "._+-#[]<>._+-#[]<>", true},
		{"valid id lower and special chars", "lower._+-#[]<>", true},
		{"numeric id", "1234567890", true},
		{"uppercase id", "NOTLOWERCASE", true},
		{"blank id", "               ", false},
		{"id length out of range", "1", false},
		{"id is too long", strings.Repeat("a", host.DefaultMaxCharacterLength+1), false},
		{"path-like id", "lower/case/id", false},
		{"invalid id", "(clientid)", false},
		{"empty string", "", false},
	}

	for _, tc := range testCases {
		err := host.ClientIdentifierValidator(tc.id)
		if tc.expPass {
			require.NoError(t, err, tc.msg)
		} else {
			require.Error(t, err, tc.msg)
		}
	}
}

func TestConnectionIdentifierValidator(t *testing.T) {
	require.NoError(t, host.ConnectionIdentifierValidator("connection-0"))
	require.NoError(t, host.ConnectionIdentifierValidator("connection-localhost"))

	// shorter than the 10 character minimum
	require.Error(t, host.ConnectionIdentifierValidator("short"))
	require.Error(t, host.ConnectionIdentifierValidator(strings.Repeat("a", host.DefaultMaxCharacterLength+1)))
}

func TestParseIdentifier(t *testing.T) {
	testCases := []struct {
		name       string
		identifier string
		prefix     string
		expSeq     uint64
		expPass    bool
	}{
		{"valid 0", "connection-0", "connection-", 0, true},
		{"valid 1", "client-1", "client-", 1, true},
		{"valid large sequence", "channel-234568219356718293", "channel-", 234568219356718293, true},
		// one above uint64 max
		{"invalid uint64", "connection-18446744073709551616", "connection-", 0, false},
		{"missing prefix", "connection-0", "channel-", 0, false},
		{"negative sequence", "connection--1", "connection-", 0, false},
		{"no sequence", "connection-", "connection-", 0, false},
	}

	for _, tc := range testCases {
		seq, err := host.ParseIdentifier(tc.identifier, tc.prefix)
		require.Equal(t, tc.expSeq, seq, tc.name)

		if tc.expPass {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}
