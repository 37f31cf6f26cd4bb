package types_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibc-labs/loopback/modules/core/02-client/types"
	"github.com/ibc-labs/loopback/modules/core/exported"
)

// tests ParseClientIdentifier and IsValidClientID
func TestParseClientIdentifier(t *testing.T) {
	testCases := []struct {
		name       string
		clientID   string
		clientType string
		expSeq     uint64
		expPass    bool
	}{
		{"valid 0", "07-tendermint-0", "07-tendermint", 0, true},
		{"valid 1", "07-tendermint-1", "07-tendermint", 1, true},
		{"valid solemachine", "06-solomachine-0", "06-solomachine", 0, true},
		{"valid large sequence", types.FormatClientIdentifier("07-tendermint", math.MaxUint64), "07-tendermint", math.MaxUint64, true},
		{"valid short client type", "t-0", "t", 0, true},
		{"sentinel localhost client identifier", exported.LocalhostClientID, exported.Localhost, 0, true},
		// one above uint64 max
		{"invalid uint64", "07-tendermint-18446744073709551616", "07-tendermint", 0, false},
		{"missing sequence", "07-tendermint", "07-tendermint", 0, false},
		{"negative sequence", "07-tendermint--1", "07-tendermint", 0, false},
		{"invalid format", "07-tendermint-tm", "07-tendermint", 0, false},
		{"empty clientype", " -100", "", 0, false},
		{"with in the middle tabs", "a\t\t\t-100", "", 0, false},
		{"leading tabs", "\t\t\ta-100", "", 0, false},
	}

	for _, tc := range testCases {
		clientType, seq, err := types.ParseClientIdentifier(tc.clientID)

		if tc.expPass {
			require.NoError(t, err, tc.name)
			require.Equal(t, tc.expSeq, seq, tc.name)
			require.Equal(t, tc.clientType, clientType, tc.name)
			require.True(t, types.IsValidClientID(tc.clientID), tc.name)
		} else {
			require.Error(t, err, tc.name, tc.clientID)
			require.False(t, types.IsValidClientID(tc.clientID), tc.name)
		}
	}
}

func TestValidateClientID(t *testing.T) {
	testCases := []struct {
		name     string
		clientID string
		expPass  bool
	}{
		{"valid client identifier", "07-tendermint-7", true},
		{"reserved sentinel identifier", exported.LocalhostClientID, false},
		{"localhost client type with sequence", "09-localhost-0", false},
		{"invalid format", "07-tendermint", false},
	}

	for _, tc := range testCases {
		err := types.ValidateClientID(tc.clientID)
		if tc.expPass {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}
